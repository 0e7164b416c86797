// manure_test
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
package manure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/agrinord/herdCH4Model/herdCH4/catalog"
	"github.com/agrinord/herdCH4Model/herdCH4/manure"
)

var dairyManure = catalog.ManureRecord{
	VS:         1460,
	B0:         0.24,
	MCFHousing: 10,
	MCFGrazing: 1,
}

func TestCH4AllHoused(t *testing.T) {
	f := manure.CH4(dairyManure, 100, 0)

	// 1460 * 0.24 * 0.67 * 0.10 per head, times 100 head.
	want := 100 * 1460 * 0.24 * 0.67 * 0.10
	assert.True(t, scalar.EqualWithinRel(want, f.Housing, 1e-12))
	assert.Zero(t, f.Grazing)
	assert.Equal(t, f.Housing, f.Total)
}

func TestCH4GrazingSplit(t *testing.T) {
	f := manure.CH4(dairyManure, 100, 0.3)

	wantHousing := 100 * (1460 * 0.7) * 0.24 * 0.67 * 0.10
	wantGrazing := 100 * (1460 * 0.3) * 0.24 * 0.67 * 0.01
	assert.True(t, scalar.EqualWithinRel(wantHousing, f.Housing, 1e-12))
	assert.True(t, scalar.EqualWithinRel(wantGrazing, f.Grazing, 1e-12))
	assert.True(t, scalar.EqualWithinRel(wantHousing+wantGrazing, f.Total, 1e-12))
}

func TestCH4GrazingLowersTotal(t *testing.T) {
	housed := manure.CH4(dairyManure, 100, 0)
	grazed := manure.CH4(dairyManure, 100, 0.5)

	// Pasture MCF is an order of magnitude below the housing MCF here, so
	// moving manure outdoors must lower the total.
	assert.Less(t, grazed.Total, housed.Total)
}

func TestCH4ScalesWithHeadcount(t *testing.T) {
	one := manure.CH4(dairyManure, 1, 0.3)
	many := manure.CH4(dairyManure, 250, 0.3)
	assert.True(t, scalar.EqualWithinRel(250*one.Total, many.Total, 1e-12))
}
