// scale
//
// Allometric and linear rescaling of reference values
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
	"math"

	"github.com/agrinord/herdCH4Model/herdCH4/catalog"
)

const (
	// Metabolic (allometric) exponent for feed intake vs body mass.
	allometricExponent = 0.75

	// Engine defaults when a record carries no reference basis but scaling
	// was requested anyway.
	defaultRefWeightKg  = 600.0
	defaultRefAgeMonths = 12.0
)

// WeightScale rescales a reference quantity to a target body mass:
// q * (target/ref)^0.75. The reference weight is the range midpoint for
// bracketed bases, the literal value for fixed ones, and 600 kg when the
// record carries none.
func WeightScale(q float64, ref catalog.Basis, targetWeight float64) (float64, error) {
	refWeight := defaultRefWeightKg
	switch ref.Kind {
	case catalog.BasisFixed:
		refWeight = ref.Value()
	case catalog.BasisRange:
		refWeight = ref.Midpoint()
	}
	if refWeight <= 0 || targetWeight <= 0 {
		return 0, invalidScalingBasis("weight", refWeight, targetWeight)
	}
	return q * math.Pow(targetWeight/refWeight, allometricExponent), nil
}

// AgeScale rescales a reference quantity to a target age, strictly linearly:
// q * (target/ref). The reference age is the upper bound for bracketed bases
// like "0-6 months", the literal value for fixed ones, and 12 months when
// the record carries none.
func AgeScale(q float64, ref catalog.Basis, targetAge float64) (float64, error) {
	refAge := defaultRefAgeMonths
	switch ref.Kind {
	case catalog.BasisFixed:
		refAge = ref.Value()
	case catalog.BasisRange:
		refAge = ref.Upper()
	}
	if refAge <= 0 || targetAge <= 0 {
		return 0, invalidScalingBasis("age", refAge, targetAge)
	}
	return q * (targetAge / refAge), nil
}
