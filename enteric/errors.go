// errors
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

import "github.com/cockroachdb/errors"

// Every failure of a cohort calculation is one of these, checkable with
// errors.Is. They are deterministic input failures: nothing is retried and
// no other cohort is affected.
var (
	ErrUnknownAnimalType   = errors.New("unknown animal type")
	ErrMissingParameter    = errors.New("missing required parameter")
	ErrNoMatchingRecord    = errors.New("no matching reference record")
	ErrAmbiguousMatch      = errors.New("ambiguous reference record match")
	ErrInvalidScalingBasis = errors.New("invalid scaling basis")
)

func unknownAnimalType(animalType string) error {
	return errors.Mark(
		errors.Newf("animal type %q is not in the Tier 1 or Tier 2 species list", animalType),
		ErrUnknownAnimalType)
}

func missingParameter(animalType, name string) error {
	return errors.Mark(
		errors.Newf("animal type %q requires the %q attribute", animalType, name),
		ErrMissingParameter)
}

func noMatchingRecord(animalType, attrs string) error {
	return errors.Mark(
		errors.Newf("no reference record for %q matches attributes {%s}", animalType, attrs),
		ErrNoMatchingRecord)
}

func attributeMismatch(animalType, attr, want, got string) error {
	return errors.Mark(
		errors.Newf("reference record for %q expects %s=%s, got %s", animalType, attr, want, got),
		ErrNoMatchingRecord)
}

func ambiguousMatch(animalType string, n int, attrs string) error {
	return errors.Mark(
		errors.Newf("%d reference records for %q match attributes {%s} with no tiebreak", n, animalType, attrs),
		ErrAmbiguousMatch)
}

func invalidScalingBasis(law string, ref, target float64) error {
	return errors.Mark(
		errors.Newf("%s scaling needs positive bases, got reference %v and target %v", law, ref, target),
		ErrInvalidScalingBasis)
}
