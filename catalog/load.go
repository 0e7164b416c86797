// load
//
// Reads the emission-factor catalog hjson file into the typed Store
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
package catalog

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	hjson "github.com/hjson/hjson-go"
)

// Load reads and parses a catalog hjson file. All string sentinels and
// range brackets are resolved here; downstream code only sees typed values.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog file %s", path)
	}

	var param map[string]interface{}
	if err := hjson.Unmarshal(raw, &param); err != nil {
		return nil, errors.Wrapf(err, "failed to parse catalog file %s", path)
	}

	return Parse(param)
}

// Parse builds a Store from an already-unmarshalled catalog mapping.
func Parse(param map[string]interface{}) (*Store, error) {
	section, ok := param["enteric"].(map[string]interface{})
	if !ok {
		return nil, errors.New("'enteric:' key not found in catalog")
	}

	enteric := make(map[string]Entry, len(section))
	for animalType, raw := range section {
		entry, err := parseEntry(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "catalog entry %q", animalType)
		}
		enteric[animalType] = entry
	}

	manure := make(map[string]ManureRecord)
	if msection, ok := param["manure"].(map[string]interface{}); ok {
		for animalType, raw := range msection {
			rec, err := parseManure(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "manure entry %q", animalType)
			}
			manure[animalType] = rec
		}
	}

	return NewStore(enteric, manure), nil
}

// parseEntry accepts either a single record map or a list of variant maps
// and always produces a slice.
func parseEntry(raw interface{}) (Entry, error) {
	switch v := raw.(type) {
	case map[string]interface{}:
		rec, err := parseRecord(v)
		if err != nil {
			return Entry{}, err
		}
		return Entry{Records: []ReferenceRecord{rec}}, nil
	case []interface{}:
		var entry Entry
		for i, item := range v {
			m, ok := item.(map[string]interface{})
			if !ok {
				return Entry{}, errors.Newf("variant %d is not a record", i)
			}
			rec, err := parseRecord(m)
			if err != nil {
				return Entry{}, errors.Wrapf(err, "variant %d", i)
			}
			entry.Records = append(entry.Records, rec)
		}
		if len(entry.Records) == 0 {
			return Entry{}, errors.New("variant list is empty")
		}
		return entry, nil
	default:
		return Entry{}, errors.Newf("entry has unsupported shape %T", raw)
	}
}

func parseRecord(m map[string]interface{}) (ReferenceRecord, error) {
	var rec ReferenceRecord
	var err error

	if rec.Weight, err = ParseBasis(m["weight"]); err != nil {
		return rec, errors.Wrap(err, "weight")
	}
	if rec.Age, err = ParseBasis(m["age"]); err != nil {
		return rec, errors.Wrap(err, "age")
	}

	if rec.Reproduction, err = optBool(m, "reproduction"); err != nil {
		return rec, err
	}
	if rec.Organic, err = optBool(m, "organic"); err != nil {
		return rec, err
	}
	if rec.HPR, err = optBool(m, "hpr"); err != nil {
		return rec, err
	}
	if rec.Gender, err = optGender(m); err != nil {
		return rec, err
	}

	if rec.FeedIntake, err = optFloat(m, "feedIntake"); err != nil {
		return rec, err
	}
	if rec.GEWinter, err = optFloat(m, "geWinter"); err != nil {
		return rec, err
	}
	if rec.GESummer, err = optFloat(m, "geSummer"); err != nil {
		return rec, err
	}
	if rec.CH4Rate, err = optFloat(m, "ch4Rate"); err != nil {
		return rec, err
	}
	if rec.ImpliedEF, err = optFloat(m, "impliedEF"); err != nil {
		return rec, err
	}

	if rec.ImpliedEF == nil && !rec.Seasonal() {
		return rec, errors.New("record carries neither an implied emission factor nor a full seasonal feed basis")
	}
	return rec, nil
}

func parseManure(raw interface{}) (ManureRecord, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return ManureRecord{}, errors.Newf("manure entry has unsupported shape %T", raw)
	}

	var rec ManureRecord
	for key, dst := range map[string]*float64{
		"vs":         &rec.VS,
		"b0":         &rec.B0,
		"mcfHousing": &rec.MCFHousing,
		"mcfGrazing": &rec.MCFGrazing,
	} {
		f, err := optFloat(m, key)
		if err != nil {
			return rec, err
		}
		if f == nil {
			return rec, errors.Newf("'%s:' key not found in manure entry", key)
		}
		*dst = *f
	}
	return rec, nil
}

// optFloat reads an optional numeric key. The sentinels "none"/"null" count
// as missing, matching the basis convention.
func optFloat(m map[string]interface{}, key string) (*float64, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case float64:
		return &v, nil
	case string:
		if strings.EqualFold(v, "none") || strings.EqualFold(v, "null") {
			return nil, nil
		}
	}
	return nil, errors.Newf("'%s:' is not numeric (%v)", key, raw)
}

func optBool(m map[string]interface{}, key string) (*bool, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case bool:
		return &v, nil
	case string:
		if strings.EqualFold(v, "none") || strings.EqualFold(v, "null") {
			return nil, nil
		}
	}
	return nil, errors.Newf("'%s:' is not a boolean (%v)", key, raw)
}

func optGender(m map[string]interface{}) (string, error) {
	raw, ok := m["gender"]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", errors.Newf("'gender:' is not a string (%v)", raw)
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "null":
		return "", nil
	case Male:
		return Male, nil
	case Female:
		return Female, nil
	}
	return "", errors.Newf("'gender:' must be %q or %q, got %q", Male, Female, s)
}
