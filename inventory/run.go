// run
//
// Per-cohort calculation loop and report rows
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
package inventory

import (
	"go.uber.org/zap"

	"github.com/agrinord/herdCH4Model/herdCH4/catalog"
	"github.com/agrinord/herdCH4Model/herdCH4/enteric"
	"github.com/agrinord/herdCH4Model/herdCH4/logger"
	"github.com/agrinord/herdCH4Model/herdCH4/manure"
)

// Result is one report row: the resolved factor and the CH4 flows for one
// cohort. Err is set when the cohort's calculation failed; failed cohorts
// never affect their siblings.
type Result struct {
	AnimalType string
	Count      float64
	Tier       int

	WinterEF float64
	SummerEF float64
	AnnualEF float64

	EntericCH4 float64 // kg CH4/yr
	ManureCH4  float64 // kg CH4/yr
	TotalCH4   float64 // kg CH4/yr

	Err error
}

// Run computes every cohort against the shared read-only catalog. The store
// is never written, so cohorts are independent; errors stay on their row.
func Run(store *catalog.Store, cohorts []Cohort) []Result {
	results := make([]Result, 0, len(cohorts))
	for _, c := range cohorts {
		results = append(results, runOne(store, c))
	}
	return results
}

func runOne(store *catalog.Store, c Cohort) Result {
	res := Result{AnimalType: c.AnimalType, Count: c.Count}

	if err := c.Validate(); err != nil {
		res.Err = err
		logger.L().Warn("cohort rejected", zap.String("animalType", c.AnimalType), zap.Error(err))
		return res
	}

	factor, err := enteric.ResolveEmissionFactor(store, c.AnimalType, c.Subject())
	if err != nil {
		res.Err = err
		logger.L().Warn("emission factor resolution failed",
			zap.String("animalType", c.AnimalType), zap.Error(err))
		return res
	}

	res.Tier = factor.Tier
	res.WinterEF = factor.WinterEF
	res.SummerEF = factor.SummerEF
	res.AnnualEF = factor.Annual
	res.EntericCH4 = enteric.CH4(c.Count, factor.Annual)

	if mrec, ok := store.Manure(c.AnimalType); ok {
		res.ManureCH4 = manure.CH4(mrec, c.Count, c.GrassFraction).Total
	}
	res.TotalCH4 = enteric.TotalCH4(res.EntericCH4, res.ManureCH4)

	logger.L().Debug("cohort computed",
		zap.String("animalType", c.AnimalType),
		zap.Int("tier", res.Tier),
		zap.Float64("annualEF", res.AnnualEF),
		zap.Float64("totalCH4", res.TotalCH4))
	return res
}
