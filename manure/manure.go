// manure
//
// Manure-management CH4 from volatile solids
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
package manure

import "github.com/agrinord/herdCH4Model/herdCH4/catalog"

// Density of methane, kg per m3, converting B0 volumes to mass.
const ch4Density = 0.67

// Flows is the manure CH4 result for one cohort, kg CH4/yr, split by where
// the manure was deposited.
type Flows struct {
	Housing float64
	Grazing float64
	Total   float64
}

// CH4 computes manure-management methane for a cohort. The volatile-solids
// excretion splits between housing and pasture by the time the animals spend
// grazing, and each share gets its own methane conversion factor:
//
//	CH4 = VS * B0 * 0.67 * (MCF/100)
//
// grazingFraction is the share of the year on pasture, reusing the Tier 2
// grass-diet fraction for species without a separate housing split.
func CH4(rec catalog.ManureRecord, animalCount, grazingFraction float64) Flows {
	vsHousing := rec.VS * (1 - grazingFraction)
	vsGrazing := rec.VS * grazingFraction

	perHeadHousing := vsHousing * rec.B0 * ch4Density * (rec.MCFHousing / 100)
	perHeadGrazing := vsGrazing * rec.B0 * ch4Density * (rec.MCFGrazing / 100)

	f := Flows{
		Housing: animalCount * perHeadHousing,
		Grazing: animalCount * perHeadGrazing,
	}
	f.Total = f.Housing + f.Grazing
	return f
}
