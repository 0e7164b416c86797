// catalog
//
// Defines the reference-record catalog the emission engine reads
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

const (
	Male   string = "male"
	Female string = "female"
)

// ReferenceRecord is one parameter row for an animal type. Presence of the
// optional fields varies by species: Tier 1 poultry and fur rows carry only
// an implied emission factor (plus whatever attributes discriminate between
// variant rows), Tier 2 rows carry the feed and energy basis for the
// seasonal computation.
type ReferenceRecord struct {
	Weight Basis // reference body mass, kg
	Age    Basis // reference age, months unless the Unit says otherwise

	Reproduction *bool  // reproducing variant flag
	Gender       string // Male, Female, or "" when not discriminated
	Organic      *bool  // poultry housing system flag
	HPR          *bool  // laying hen housing regime flag

	FeedIntake *float64 // feed units/yr, Tier 2 scaling basis
	GEWinter   *float64 // gross energy per feed unit, winter ration
	GESummer   *float64 // gross energy per feed unit, summer ration
	CH4Rate    *float64 // methane conversion rate, % of gross energy
	ImpliedEF  *float64 // kg CH4/head/yr
}

// Seasonal reports whether the row carries everything the Tier 2
// winter/summer computation needs.
func (r ReferenceRecord) Seasonal() bool {
	return r.FeedIntake != nil && r.GEWinter != nil && r.GESummer != nil && r.CH4Rate != nil
}

// ManureRecord holds the manure-management parameters for one animal type.
type ManureRecord struct {
	VS         float64 // volatile solids excreted, kg/head/yr
	B0         float64 // maximum CH4 producing capacity, m3 CH4/kg VS
	MCFHousing float64 // methane conversion factor in housing, %
	MCFGrazing float64 // methane conversion factor on pasture, %
}

// Entry is the set of parameter rows stored under one animal-type key.
// Catalog files may store a single record or a list of variants; the loader
// normalizes both shapes to a slice so the matcher has one code path.
type Entry struct {
	Records []ReferenceRecord
}

// Store is the parsed catalog. It is built once by Load (or NewStore in
// tests) and never mutated afterwards, so it is safe to share across
// concurrent cohort calculations.
type Store struct {
	enteric map[string]Entry
	manure  map[string]ManureRecord
}

// NewStore builds a Store from already-parsed entries. Test seam; production
// code goes through Load.
func NewStore(enteric map[string]Entry, manure map[string]ManureRecord) *Store {
	if enteric == nil {
		enteric = map[string]Entry{}
	}
	if manure == nil {
		manure = map[string]ManureRecord{}
	}
	return &Store{enteric: enteric, manure: manure}
}

// Lookup returns the enteric entry stored under the exact animal-type key.
func (s *Store) Lookup(animalType string) (Entry, bool) {
	e, ok := s.enteric[animalType]
	return e, ok
}

// Manure returns the manure parameters for an animal type, if any.
func (s *Store) Manure(animalType string) (ManureRecord, bool) {
	m, ok := s.manure[animalType]
	return m, ok
}

// Types lists the animal-type keys with enteric entries.
func (s *Store) Types() []string {
	keys := make([]string, 0, len(s.enteric))
	for k := range s.enteric {
		keys = append(keys, k)
	}
	return keys
}
