// initInventory
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

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agrinord/herdCH4Model/herdCH4/catalog"
	"github.com/agrinord/herdCH4Model/herdCH4/inventory"
	"github.com/agrinord/herdCH4Model/herdCH4/logger"
)

var catalogFile string // Name of the emission-factor catalog file
var herdFile string    // Name of the herd (cohort list) file

// rootCmd wires the inventory run and the catalog validator.
func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "herdCH4",
		Short:         "Livestock CH4 inventory (IPCC Tier 1/Tier 2 enteric + manure)",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInventory()
		},
	}

	logger.OutputMode = root.PersistentFlags().String("outputMode", "verbose", "'verbose'(default) or 'model'")
	root.PersistentFlags().StringVar(&catalogFile, "catalog", "", "The emission-factor catalog hjson file (required)")
	root.Flags().StringVar(&herdFile, "herd", "", "The herd yaml file listing cohorts (required)")

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Load and type-check a catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateCatalog()
		},
	}
	root.AddCommand(validate)

	return root
}

func runInventory() error {
	if err := logger.Init(*logger.OutputMode); err != nil {
		return err
	}
	if logger.Verbose() {
		fmt.Printf("\n\t*** herdCH4 ver %v ***\n\n", version)
	}
	if catalogFile == "" || herdFile == "" {
		return fmt.Errorf("both -catalog and -herd file names must be provided")
	}

	store, err := catalog.Load(catalogFile)
	if err != nil {
		return err
	}
	logger.L().Debug("catalog loaded",
		zap.String("file", catalogFile), zap.Int("animalTypes", len(store.Types())))

	cohorts, err := inventory.LoadHerd(herdFile)
	if err != nil {
		return err
	}
	if logger.Verbose() {
		fmt.Printf("Number of cohorts: %d\n", len(cohorts))
	}

	printTables(inventory.Run(store, cohorts))
	return nil
}

func validateCatalog() error {
	if err := logger.Init(*logger.OutputMode); err != nil {
		return err
	}
	if catalogFile == "" {
		return fmt.Errorf("a -catalog file name must be provided")
	}

	store, err := catalog.Load(catalogFile)
	if err != nil {
		return err
	}
	if logger.Verbose() {
		fmt.Printf("%s: %d animal types OK\n", catalogFile, len(store.Types()))
	}
	return nil
}
