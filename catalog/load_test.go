// load_test
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
package catalog_test

import (
	"testing"

	hjson "github.com/hjson/hjson-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrinord/herdCH4Model/herdCH4/catalog"
)

func parseCatalog(t *testing.T, src string) (*catalog.Store, error) {
	t.Helper()
	var param map[string]interface{}
	require.NoError(t, hjson.Unmarshal([]byte(src), &param))
	return catalog.Parse(param)
}

func TestParseNormalizesSingleAndList(t *testing.T) {
	store, err := parseCatalog(t, `
	{
	  enteric:
	  {
	    pheasants: { impliedEF: 0.012 }
	    mink:
	    [
	      { reproduction: true, impliedEF: 0.0014 }
	      { reproduction: false, impliedEF: 0.0010 }
	    ]
	  }
	}`)
	require.NoError(t, err)

	single, ok := store.Lookup("pheasants")
	require.True(t, ok)
	require.Len(t, single.Records, 1, "single record normalizes to a one-element slice")
	require.NotNil(t, single.Records[0].ImpliedEF)
	assert.Equal(t, 0.012, *single.Records[0].ImpliedEF)

	list, ok := store.Lookup("mink")
	require.True(t, ok)
	require.Len(t, list.Records, 2)
	require.NotNil(t, list.Records[0].Reproduction)
	assert.True(t, *list.Records[0].Reproduction)
}

func TestParseResolvesSentinelsAndRanges(t *testing.T) {
	store, err := parseCatalog(t, `
	{
	  enteric:
	  {
	    calves:
	    {
	      weight: none
	      age: 0-6 months
	      feedIntake: 620
	      geWinter: 18.5
	      geSummer: 18.4
	      ch4Rate: 6.5
	    }
	  }
	}`)
	require.NoError(t, err)

	entry, ok := store.Lookup("calves")
	require.True(t, ok)
	rec := entry.Records[0]
	assert.True(t, rec.Weight.Absent())
	assert.Equal(t, catalog.BasisRange, rec.Age.Kind)
	assert.Equal(t, 6.0, rec.Age.Upper())
	assert.Equal(t, "months", rec.Age.Unit)
	assert.True(t, rec.Seasonal())
	assert.Nil(t, rec.ImpliedEF)
}

func TestParseRejectsEmptyRecords(t *testing.T) {
	_, err := parseCatalog(t, `
	{
	  enteric:
	  {
	    ghosts: { weight: 100 }
	  }
	}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghosts")
}

func TestParseRejectsBadGender(t *testing.T) {
	_, err := parseCatalog(t, `
	{
	  enteric:
	  {
	    turkeys: { gender: "stag", impliedEF: 0.0095 }
	  }
	}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gender")
}

func TestParseManureSection(t *testing.T) {
	store, err := parseCatalog(t, `
	{
	  enteric:
	  {
	    dairy_cattle: { feedIntake: 7300, geWinter: 18.9, geSummer: 18.9, ch4Rate: 6.0 }
	  }
	  manure:
	  {
	    dairy_cattle: { vs: 1460, b0: 0.24, mcfHousing: 10, mcfGrazing: 1 }
	  }
	}`)
	require.NoError(t, err)

	rec, ok := store.Manure("dairy_cattle")
	require.True(t, ok)
	assert.Equal(t, 1460.0, rec.VS)
	assert.Equal(t, 0.24, rec.B0)

	_, ok = store.Manure("pheasants")
	assert.False(t, ok)
}

func TestParseManureRejectsMissingKeys(t *testing.T) {
	_, err := parseCatalog(t, `
	{
	  enteric:
	  {
	    sows: { feedIntake: 1510, geWinter: 18.2, geSummer: 18.2, ch4Rate: 0.6 }
	  }
	  manure:
	  {
	    sows: { vs: 330, b0: 0.45 }
	  }
	}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sows")
}

func TestLoadSampleCatalog(t *testing.T) {
	store, err := catalog.Load("../params/entericFactors.hjson")
	require.NoError(t, err)

	entry, ok := store.Lookup("dairy_cattle")
	require.True(t, ok)
	require.Len(t, entry.Records, 1)
	assert.True(t, entry.Records[0].Seasonal())

	_, ok = store.Lookup("laying_hens_")
	assert.True(t, ok, "variant-suffix keys are first-class catalog entries")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := catalog.Load("no/such/catalog.hjson")
	assert.Error(t, err)
}
