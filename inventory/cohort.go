// cohort
//
// Validated cohort inputs for one inventory run
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
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/agrinord/herdCH4Model/herdCH4/catalog"
	"github.com/agrinord/herdCH4Model/herdCH4/enteric"
)

// Cohort is one animal group as written in the herd yaml file.
type Cohort struct {
	AnimalType string  `yaml:"animalType"`
	Count      float64 `yaml:"count"`

	Weight       *float64 `yaml:"weight,omitempty"`    // kg
	Age          *float64 `yaml:"age,omitempty"` // months unless the species' record says otherwise
	Reproduction *bool    `yaml:"reproduction,omitempty"`
	Gender       string   `yaml:"gender,omitempty"`
	Organic      *bool    `yaml:"organic,omitempty"`
	HPR          *bool    `yaml:"hpr,omitempty"`

	ScaleByWeight bool `yaml:"scaleByWeight,omitempty"`
	ScaleByAge    bool `yaml:"scaleByAge,omitempty"`

	GrassFraction float64 `yaml:"grassFraction,omitempty"`
	BeetFraction  float64 `yaml:"beetFraction,omitempty"`
}

type herdFile struct {
	Comment string   `yaml:"comment,omitempty"`
	Herd    []Cohort `yaml:"herd"`
}

// LoadHerd reads the cohort list from a herd yaml file.
func LoadHerd(path string) ([]Cohort, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open herd file %s", path)
	}
	var f herdFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrapf(err, "failed to parse herd file %s", path)
	}
	if len(f.Herd) == 0 {
		return nil, errors.Newf("'herd:' key not found or empty in %s", path)
	}
	return f.Herd, nil
}

// Validate checks the cohort before the engine sees it. The engine's own
// matching-policy failures (missing gender for turkeys and the like) are
// left to the engine; this catches inputs that are nonsense regardless of
// species.
func (c Cohort) Validate() error {
	if strings.TrimSpace(c.AnimalType) == "" {
		return errors.New("cohort has no animalType")
	}
	if c.Count <= 0 {
		return errors.Newf("cohort %q has non-positive count %v", c.AnimalType, c.Count)
	}
	if c.Weight != nil && *c.Weight <= 0 {
		return errors.Newf("cohort %q has non-positive weight %v", c.AnimalType, *c.Weight)
	}
	if c.Age != nil && *c.Age <= 0 {
		return errors.Newf("cohort %q has non-positive age %v", c.AnimalType, *c.Age)
	}
	if c.Gender != "" && c.Gender != catalog.Male && c.Gender != catalog.Female {
		return errors.Newf("cohort %q has gender %q, want %q or %q", c.AnimalType, c.Gender, catalog.Male, catalog.Female)
	}
	if c.GrassFraction < 0 || c.GrassFraction > 1 {
		return errors.Newf("cohort %q has grassFraction %v outside [0,1]", c.AnimalType, c.GrassFraction)
	}
	if c.BeetFraction < 0 || c.BeetFraction > 1 {
		return errors.Newf("cohort %q has beetFraction %v outside [0,1]", c.AnimalType, c.BeetFraction)
	}
	if c.GrassFraction+c.BeetFraction > 1 {
		return errors.Newf("cohort %q diet fractions sum to %v, above 1", c.AnimalType, c.GrassFraction+c.BeetFraction)
	}
	if c.ScaleByWeight && c.Weight == nil {
		return errors.Newf("cohort %q requests weight scaling without a weight", c.AnimalType)
	}
	if c.ScaleByAge && c.Age == nil {
		return errors.Newf("cohort %q requests age scaling without an age", c.AnimalType)
	}
	return nil
}

// Subject converts the validated cohort into the engine's query record.
func (c Cohort) Subject() enteric.Subject {
	return enteric.Subject{
		Weight:        c.Weight,
		Age:           c.Age,
		Reproduction:  c.Reproduction,
		Gender:        c.Gender,
		Organic:       c.Organic,
		HPR:           c.HPR,
		ScaleByWeight: c.ScaleByWeight,
		ScaleByAge:    c.ScaleByAge,
		GrassFraction: c.GrassFraction,
		BeetFraction:  c.BeetFraction,
	}
}
