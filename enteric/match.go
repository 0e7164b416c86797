// match
//
// Selects the reference record for a cohort from the catalog
/*
Copyright 2024 the herdCH4 authors

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/
package enteric

import (
	"fmt"

	"github.com/agrinord/herdCH4Model/herdCH4/catalog"
)

// attrMismatch remembers why a candidate was rejected, so single-record
// entries can report expected-vs-given instead of a bare no-match.
type attrMismatch struct {
	attr string
	want string
	got  string
}

// Match resolves the unique catalog record for an animal type and cohort.
// ageScale is true when no candidate's age basis equals the supplied age
// exactly, so the caller must rescale the matched record's values by the
// linear age law. With requireExact set, an inexact age hit is an error
// instead of a scaling baseline.
//
// Matching rules, in order:
//   - the species' required attributes must be supplied (checked before any
//     catalog read),
//   - an attribute present in both record and subject must be equal; absent
//     record attributes are wildcards,
//   - among matches, an exact age-basis hit wins; otherwise the first match
//     is the baseline and age scaling is signalled,
//   - more than one equally valid candidate with no tiebreak is a catalog
//     defect and fails loudly.
func Match(store *catalog.Store, animalType string, subj Subject, requireExact bool) (catalog.ReferenceRecord, bool, error) {
	for _, attr := range requiredAttributes[BaseType(animalType)] {
		if !subj.supplied(attr) {
			return catalog.ReferenceRecord{}, false, missingParameter(animalType, attr)
		}
	}

	entry, ok := store.Lookup(animalType)
	if !ok {
		return catalog.ReferenceRecord{}, false, unknownAnimalType(animalType)
	}

	var candidates []catalog.ReferenceRecord
	var lastMiss *attrMismatch
	for _, rec := range entry.Records {
		if m := recordMismatch(rec, subj); m != nil {
			lastMiss = m
			continue
		}
		candidates = append(candidates, rec)
	}

	if len(candidates) == 0 {
		if len(entry.Records) == 1 && lastMiss != nil {
			return catalog.ReferenceRecord{}, false,
				attributeMismatch(animalType, lastMiss.attr, lastMiss.want, lastMiss.got)
		}
		return catalog.ReferenceRecord{}, false, noMatchingRecord(animalType, subj.describe())
	}

	if subj.Age != nil {
		var exact []catalog.ReferenceRecord
		for _, rec := range candidates {
			if rec.Age.Kind == catalog.BasisFixed && rec.Age.Value() == *subj.Age {
				exact = append(exact, rec)
			}
		}
		switch {
		case len(exact) == 1:
			return exact[0], false, nil
		case len(exact) > 1:
			return catalog.ReferenceRecord{}, false,
				ambiguousMatch(animalType, len(exact), subj.describe())
		}
		// No exact age hit: the first match is the baseline and its values
		// must be rescaled to the supplied age, but only when the baseline
		// declares an age of its own. A record without an age basis is a
		// wildcard, not a scaling anchor.
		if requireExact {
			return catalog.ReferenceRecord{}, false, noMatchingRecord(animalType, subj.describe())
		}
		baseline := candidates[0]
		return baseline, !baseline.Age.Absent(), nil
	}

	if len(candidates) > 1 {
		return catalog.ReferenceRecord{}, false,
			ambiguousMatch(animalType, len(candidates), subj.describe())
	}
	return candidates[0], false, nil
}

// recordMismatch compares the discriminating attributes that are present on
// both sides. Age is handled separately by the tiebreak above.
func recordMismatch(rec catalog.ReferenceRecord, subj Subject) *attrMismatch {
	if rec.Reproduction != nil && subj.Reproduction != nil && *rec.Reproduction != *subj.Reproduction {
		return &attrMismatch{attrReproduction, fmt.Sprintf("%v", *rec.Reproduction), fmt.Sprintf("%v", *subj.Reproduction)}
	}
	if rec.Gender != "" && subj.Gender != "" && rec.Gender != subj.Gender {
		return &attrMismatch{attrGender, rec.Gender, subj.Gender}
	}
	if rec.Organic != nil && subj.Organic != nil && *rec.Organic != *subj.Organic {
		return &attrMismatch{attrOrganic, fmt.Sprintf("%v", *rec.Organic), fmt.Sprintf("%v", *subj.Organic)}
	}
	if rec.HPR != nil && subj.HPR != nil && *rec.HPR != *subj.HPR {
		return &attrMismatch{attrHPR, fmt.Sprintf("%v", *rec.HPR), fmt.Sprintf("%v", *subj.HPR)}
	}
	return nil
}
