// subject
//
// The per-cohort query handed to the matching and scaling engine
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
	"sort"
	"strings"
)

// Subject describes one animal cohort to the engine. Every field is
// optional; which ones an animal type actually requires is fixed by
// requiredAttributes below. The scale directives are explicit opt-ins,
// distinct from the age tiebreak the matcher may signal on its own.
type Subject struct {
	Weight       *float64 // kg
	Age          *float64 // months unless the matched record says otherwise
	Reproduction *bool
	Gender       string // catalog.Male, catalog.Female, or ""
	Organic      *bool
	HPR          *bool

	ScaleByWeight bool
	ScaleByAge    bool

	// Tier 2 diet split. BeetFraction only matters for dairy cattle.
	GrassFraction float64
	BeetFraction  float64
}

// Attribute names as they appear in errors and catalog files.
const (
	attrAge          = "age"
	attrGender       = "gender"
	attrOrganic      = "organic"
	attrHPR          = "hpr"
	attrReproduction = "reproduction"
)

// requiredAttributes is the per-species matching policy: these attributes
// must be supplied before the catalog is even consulted. Keyed by base type
// so variant rows ("laying_hens_") share their species' policy.
var requiredAttributes = map[string][]string{
	"turkeys":     {attrGender},
	"deer":        {attrGender},
	"laying_hens": {attrAge, attrHPR},
	"broilers":    {attrAge, attrOrganic},
}

func (s Subject) supplied(attr string) bool {
	switch attr {
	case attrAge:
		return s.Age != nil
	case attrGender:
		return s.Gender != ""
	case attrOrganic:
		return s.Organic != nil
	case attrHPR:
		return s.HPR != nil
	case attrReproduction:
		return s.Reproduction != nil
	}
	return false
}

// describe renders the supplied discriminating attributes for error
// messages, in a stable order.
func (s Subject) describe() string {
	parts := map[string]string{}
	if s.Age != nil {
		parts[attrAge] = fmt.Sprintf("%v", *s.Age)
	}
	if s.Gender != "" {
		parts[attrGender] = s.Gender
	}
	if s.Organic != nil {
		parts[attrOrganic] = fmt.Sprintf("%v", *s.Organic)
	}
	if s.HPR != nil {
		parts[attrHPR] = fmt.Sprintf("%v", *s.HPR)
	}
	if s.Reproduction != nil {
		parts[attrReproduction] = fmt.Sprintf("%v", *s.Reproduction)
	}

	keys := make([]string, 0, len(parts))
	for k := range parts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%s", k, parts[k])
	}
	return b.String()
}
