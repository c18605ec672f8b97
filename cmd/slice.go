/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matmodlab/goelastic/elastic"
)

// sliceCmd represents the slice command
var sliceCmd = &cobra.Command{
	Use:   "slice",
	Short: "Sweep a directional property around a crystallographic plane",
	Long: `
Evaluates a directional property around the circle of directions lying in the
plane whose normal is a Miller-index vector [h k l] (--plane "h,k,l"), or in
one of the fixed coordinate planes (--plane xy|xz|yz), and writes
"theta phi min ave max" rows to a delimited text file.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			code, _  = cmd.Flags().GetString("property")
			plane, _ = cmd.Flags().GetString("plane")
			n, _     = cmd.Flags().GetInt("resolution")
			out, _   = cmd.Flags().GetString("output")
		)
		p, err := elastic.ParseProperty(code)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		for _, nm := range loadInputMatrices(cmd) {
			ev, err := elastic.NewEvaluator(nm.C, viper.GetInt("chi"))
			if err != nil {
				fmt.Printf("%s: error: %s\n", nm.Name, err.Error())
				continue
			}
			sw, err := sweepPlane(ev, p, plane, n)
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			base := out
			if len(base) == 0 {
				base = nm.Name
			}
			name := fmt.Sprintf("%s-%s-slice.dat", base, p.Code())
			if err = writeSweep(name, plane, sw); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				continue
			}
			fmt.Printf("wrote %s\n", name)
		}
	},
}

func sweepPlane(ev *elastic.Evaluator, p elastic.Property, plane string, n int) (elastic.Sweep, error) {
	if pl, err := elastic.ParsePlane(plane); err == nil {
		return ev.EvalPlane(p, pl, n)
	}
	var h, k, l float64
	if _, err := fmt.Sscanf(plane, "%g,%g,%g", &h, &k, &l); err != nil {
		return elastic.Sweep{}, fmt.Errorf("plane must be xy, xz, yz or \"h,k,l\", got %q", plane)
	}
	return ev.EvalSlice(p, h, k, l, n)
}

func writeSweep(path, plane string, sw elastic.Sweep) (err error) {
	fp, err := os.Create(path)
	if err != nil {
		return
	}
	defer fp.Close()
	w := bufio.NewWriter(fp)
	defer w.Flush()
	fmt.Fprintf(w, "# %s, plane %s\n", sw.Property, plane)
	fmt.Fprintf(w, "# theta phi min ave max\n")
	for i := range sw.Theta {
		fmt.Fprintf(w, "%.8g %.8g %.8g %.8g %.8g\n",
			sw.Theta[i], sw.Phi[i], sw.Min[i], sw.Ave[i], sw.Max[i])
	}
	return
}

func init() {
	rootCmd.AddCommand(sliceCmd)
	sliceCmd.Flags().StringP("file", "F", "", "delimited text file with one or more stiffness matrices")
	sliceCmd.Flags().StringP("material", "M", "", "material name from the database")
	sliceCmd.Flags().StringP("property", "p", "E", "property code: E, G, B, v or H")
	sliceCmd.Flags().StringP("plane", "P", "xy", "fixed plane (xy, xz, yz) or Miller normal \"h,k,l\"")
	sliceCmd.Flags().IntP("resolution", "n", 200, "samples around the circle")
	sliceCmd.Flags().StringP("output", "o", "", "output file base name (default is the material name)")
}
