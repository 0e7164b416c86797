// basis
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
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"gonum.org/v1/gonum/stat"
)

// BasisKind tags the shape of a reference basis value.
type BasisKind int

const (
	BasisAbsent BasisKind = iota // "none"/"null" or key missing
	BasisFixed                   // single literal value
	BasisRange                   // "lo-hi" bracket
)

// Basis is a reference weight or age from the catalog. Catalog files encode
// these as literal numbers, "lo-hi" strings, or the sentinels "none"/"null";
// they are parsed into this form once at load so the calculation core never
// string-matches.
type Basis struct {
	Kind BasisKind
	Lo   float64
	Hi   float64 // equal to Lo for BasisFixed
	Unit string  // trailing unit word if the file carried one, e.g. "months"
}

// Absent reports whether no reference value was given.
func (b Basis) Absent() bool { return b.Kind == BasisAbsent }

// Value is the single reference value of a fixed basis.
func (b Basis) Value() float64 { return b.Lo }

// Midpoint is the arithmetic mean of a range basis. For a fixed basis it is
// the value itself.
func (b Basis) Midpoint() float64 {
	return stat.Mean([]float64{b.Lo, b.Hi}, nil)
}

// Upper is the high end of the bracket. Age scaling references the upper
// bound of age ranges like "0-6 months".
func (b Basis) Upper() float64 { return b.Hi }

// ParseBasis converts a raw catalog value into a Basis. Accepted shapes:
// nil or missing, a number, "none"/"null", "250", "400-600", "0-6 months",
// "140 days".
func ParseBasis(raw interface{}) (Basis, error) {
	switch v := raw.(type) {
	case nil:
		return Basis{Kind: BasisAbsent}, nil
	case float64:
		return Basis{Kind: BasisFixed, Lo: v, Hi: v}, nil
	case string:
		return parseBasisString(v)
	default:
		return Basis{}, errors.Newf("catalog basis has unsupported type %T (%v)", raw, raw)
	}
}

func parseBasisString(s string) (Basis, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") || strings.EqualFold(s, "null") {
		return Basis{Kind: BasisAbsent}, nil
	}

	// A trailing alphabetic word is a unit suffix ("0-6 months").
	var unit string
	if fields := strings.Fields(s); len(fields) == 2 {
		unit = fields[1]
		s = fields[0]
	}

	if lo, hi, ok := strings.Cut(s, "-"); ok {
		l, errLo := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		h, errHi := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if errLo != nil || errHi != nil {
			return Basis{}, errors.Newf("catalog basis %q is not a numeric range", s)
		}
		return Basis{Kind: BasisRange, Lo: l, Hi: h, Unit: unit}, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Basis{}, errors.Wrapf(err, "catalog basis %q is not numeric", s)
	}
	return Basis{Kind: BasisFixed, Lo: f, Hi: f, Unit: unit}, nil
}
