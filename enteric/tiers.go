// tiers
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

import "strings"

// Methodology tiers per IPCC guidance. Tier 1 species report a tabulated
// implied emission factor; Tier 2 species get the seasonal feed-and-energy
// computation.
const (
	Tier1 = 1
	Tier2 = 2
)

// Poultry and fur species. Fixed membership, per the national inventory
// species list.
var tier1Types = map[string]bool{
	"laying_hens": true,
	"broilers":    true,
	"turkeys":     true,
	"geese":       true,
	"ducks":       true,
	"pheasants":   true,
	"ostriches":   true,
	"mink":        true,
	"foxes":       true,
	"rabbits":     true,
}

// Ruminants, pigs and other large species with a feed-energy basis.
var tier2Types = map[string]bool{
	"dairy_cattle": true,
	"suckler_cows": true,
	"calves":       true,
	"bulls":        true,
	"sows":         true,
	"piglets":      true,
	"finishers":    true,
	"sheep":        true,
	"goats":        true,
	"horses":       true,
	"deer":         true,
}

// BaseType strips the variant suffix from an animal-type key. Keys like
// "bulls_" are alternate parameter rows of the same logical species, so
// tier membership and attribute policy follow the base key.
func BaseType(animalType string) string {
	return strings.TrimRight(animalType, "_")
}

// Classify maps an animal type to its methodology tier.
func Classify(animalType string) (int, error) {
	base := BaseType(animalType)
	switch {
	case tier1Types[base]:
		return Tier1, nil
	case tier2Types[base]:
		return Tier2, nil
	}
	return 0, unknownAnimalType(animalType)
}
