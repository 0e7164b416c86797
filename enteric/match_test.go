// match_test
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
package enteric_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrinord/herdCH4Model/herdCH4/catalog"
	"github.com/agrinord/herdCH4Model/herdCH4/enteric"
)

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }

func fixed(v float64) catalog.Basis {
	return catalog.Basis{Kind: catalog.BasisFixed, Lo: v, Hi: v}
}

// henStore has two laying-hen variants discriminated by the hpr flag, both
// anchored at 140 days of age.
func henStore() *catalog.Store {
	return catalog.NewStore(map[string]catalog.Entry{
		"laying_hens": {Records: []catalog.ReferenceRecord{
			{Age: fixed(140), HPR: bptr(true), ImpliedEF: fptr(0.003561)},
			{Age: fixed(140), HPR: bptr(false), ImpliedEF: fptr(0.003216)},
		}},
	}, nil)
}

func TestMatchRequiredAttributePolicy(t *testing.T) {
	// The store deliberately has no turkeys entry: the policy check must
	// fire before any catalog read.
	store := catalog.NewStore(nil, nil)

	_, _, err := enteric.Match(store, "turkeys", enteric.Subject{}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, enteric.ErrMissingParameter))
	assert.Contains(t, err.Error(), `"gender"`)

	_, _, err = enteric.Match(henStore(), "laying_hens", enteric.Subject{HPR: bptr(true)}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, enteric.ErrMissingParameter))
	assert.Contains(t, err.Error(), `"age"`)
}

func TestMatchUnknownType(t *testing.T) {
	_, _, err := enteric.Match(catalog.NewStore(nil, nil), "sheep", enteric.Subject{}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, enteric.ErrUnknownAnimalType))
}

func TestMatchVariantByFlag(t *testing.T) {
	rec, ageScale, err := enteric.Match(henStore(), "laying_hens",
		enteric.Subject{Age: fptr(140), HPR: bptr(false)}, false)
	require.NoError(t, err)
	assert.False(t, ageScale, "exact age hit needs no scaling")
	assert.Equal(t, 0.003216, *rec.ImpliedEF)
}

func TestMatchSignalsAgeScaling(t *testing.T) {
	rec, ageScale, err := enteric.Match(henStore(), "laying_hens",
		enteric.Subject{Age: fptr(200), HPR: bptr(true)}, false)
	require.NoError(t, err)
	assert.True(t, ageScale, "no exact age hit selects a baseline and signals scaling")
	assert.Equal(t, 0.003561, *rec.ImpliedEF)
}

func TestMatchRequireExactRejectsInexactAge(t *testing.T) {
	_, _, err := enteric.Match(henStore(), "laying_hens",
		enteric.Subject{Age: fptr(200), HPR: bptr(true)}, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, enteric.ErrNoMatchingRecord))

	rec, ageScale, err := enteric.Match(henStore(), "laying_hens",
		enteric.Subject{Age: fptr(140), HPR: bptr(true)}, true)
	require.NoError(t, err, "an exact age hit satisfies requireExact")
	assert.False(t, ageScale)
	assert.Equal(t, 0.003561, *rec.ImpliedEF)
}

func TestMatchWildcardAgeDoesNotScale(t *testing.T) {
	store := catalog.NewStore(map[string]catalog.Entry{
		"pheasants": {Records: []catalog.ReferenceRecord{
			{ImpliedEF: fptr(0.012)},
		}},
	}, nil)

	rec, ageScale, err := enteric.Match(store, "pheasants", enteric.Subject{Age: fptr(8)}, false)
	require.NoError(t, err)
	assert.False(t, ageScale, "a record without an age basis is a wildcard, not a scaling anchor")
	assert.Equal(t, 0.012, *rec.ImpliedEF)
}

func TestMatchGenderConflictNamesValues(t *testing.T) {
	store := catalog.NewStore(map[string]catalog.Entry{
		"deer": {Records: []catalog.ReferenceRecord{
			{Gender: catalog.Male, FeedIntake: fptr(810), ImpliedEF: fptr(20.0)},
		}},
	}, nil)

	_, _, err := enteric.Match(store, "deer", enteric.Subject{Gender: catalog.Female}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, enteric.ErrNoMatchingRecord))
	assert.Contains(t, err.Error(), "gender=male")
	assert.Contains(t, err.Error(), "female")
}

func TestMatchNoCandidateListsAttributes(t *testing.T) {
	store := catalog.NewStore(map[string]catalog.Entry{
		"mink": {Records: []catalog.ReferenceRecord{
			{Reproduction: bptr(true), ImpliedEF: fptr(0.0014)},
			{Reproduction: bptr(true), Gender: catalog.Male, ImpliedEF: fptr(0.0016)},
		}},
	}, nil)

	_, _, err := enteric.Match(store, "mink", enteric.Subject{Reproduction: bptr(false)}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, enteric.ErrNoMatchingRecord))
	assert.Contains(t, err.Error(), "mink")
	assert.Contains(t, err.Error(), "reproduction=false")
}

func TestMatchAmbiguousFailsLoudly(t *testing.T) {
	store := catalog.NewStore(map[string]catalog.Entry{
		"goats": {Records: []catalog.ReferenceRecord{
			{FeedIntake: fptr(470), ImpliedEF: fptr(10.0)},
			{FeedIntake: fptr(520), ImpliedEF: fptr(11.0)},
		}},
	}, nil)

	_, _, err := enteric.Match(store, "goats", enteric.Subject{}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, enteric.ErrAmbiguousMatch))
}

func TestMatchSingleRecordPassesThrough(t *testing.T) {
	store := catalog.NewStore(map[string]catalog.Entry{
		"sheep": {Records: []catalog.ReferenceRecord{
			{Weight: fixed(55), FeedIntake: fptr(510), ImpliedEF: fptr(8.0)},
		}},
	}, nil)

	rec, ageScale, err := enteric.Match(store, "sheep", enteric.Subject{}, false)
	require.NoError(t, err)
	assert.False(t, ageScale)
	assert.Equal(t, 510.0, *rec.FeedIntake)
}
