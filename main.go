// herdCH4 project main.go
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
	"os"

	"github.com/agrinord/herdCH4Model/herdCH4/inventory"
	"github.com/agrinord/herdCH4Model/herdCH4/logger"
)

var version = "beta0.2.1"

// Print the per-cohort emissions summary table
func printTables(results []inventory.Result) {
	if logger.Verbose() {
		fmt.Printf("\nType            Count  Tier  WinterEF  SummerEF  AnnualEF      Enteric       Manure        Total\n")
		fmt.Printf("                              kg/hd/yr  kg/hd/yr  kg/hd/yr        kg/yr        kg/yr        kg/yr\n")

		var enteric, man, total float64
		for _, r := range results {
			if r.Err != nil {
				fmt.Printf("%-15s %5.0f  FAILED: %v\n", r.AnimalType, r.Count, r.Err)
				continue
			}
			fmt.Printf("%-15s %5.0f  %4d  %8.3f  %8.3f  %8.3f  %11.1f  %11.1f  %11.1f\n",
				r.AnimalType,
				r.Count,
				r.Tier,
				r.WinterEF,
				r.SummerEF,
				r.AnnualEF,
				r.EntericCH4,
				r.ManureCH4,
				r.TotalCH4)
			enteric += r.EntericCH4
			man += r.ManureCH4
			total += r.TotalCH4
		}
		fmt.Printf("Total:                                                    %13.1f  %11.1f  %11.1f\n", enteric, man, total)
	} else {
		for _, r := range results {
			if r.Err != nil {
				fmt.Printf("error:%s:%v\n", r.AnimalType, r.Err)
				continue
			}
			fmt.Printf("%s %g %d %g %g %g %g\n",
				r.AnimalType, r.Count, r.Tier, r.AnnualEF, r.EntericCH4, r.ManureCH4, r.TotalCH4)
		}
	}
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
