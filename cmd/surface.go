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

// surfaceCmd represents the surface command
var surfaceCmd = &cobra.Command{
	Use:   "surface",
	Short: "Evaluate a directional property over the full sphere",
	Long: `
Evaluates a directional property on an n x n (theta, phi) grid covering the
sphere and writes "theta phi min ave max" rows to a delimited text file, one
block per grid row. The output is ready for any surface plotting tool.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			code, _ = cmd.Flags().GetString("property")
			n, _    = cmd.Flags().GetInt("resolution")
			out, _  = cmd.Flags().GetString("output")
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
			Theta, Phi := elastic.SphereGrid(n)
			field := ev.EvalGrid(p, Theta, Phi)
			base := out
			if len(base) == 0 {
				base = nm.Name
			}
			name := fmt.Sprintf("%s-%s-surface.dat", base, p.Code())
			if err = writeField(name, field); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				continue
			}
			fmt.Printf("wrote %s\n", name)
		}
	},
}

func writeField(path string, f elastic.Field) (err error) {
	fp, err := os.Create(path)
	if err != nil {
		return
	}
	defer fp.Close()
	w := bufio.NewWriter(fp)
	defer w.Flush()
	fmt.Fprintf(w, "# %s\n", f.Property)
	fmt.Fprintf(w, "# theta phi min ave max\n")
	for i := range f.Theta {
		for j := range f.Theta[i] {
			fmt.Fprintf(w, "%.8g %.8g %.8g %.8g %.8g\n",
				f.Theta[i][j], f.Phi[i][j], f.Min[i][j], f.Ave[i][j], f.Max[i][j])
		}
		fmt.Fprintln(w)
	}
	return
}

func init() {
	rootCmd.AddCommand(surfaceCmd)
	surfaceCmd.Flags().StringP("file", "F", "", "delimited text file with one or more stiffness matrices")
	surfaceCmd.Flags().StringP("material", "M", "", "material name from the database")
	surfaceCmd.Flags().StringP("property", "p", "E", "property code: E, G, B, v or H")
	surfaceCmd.Flags().IntP("resolution", "n", 100, "grid resolution per axis")
	surfaceCmd.Flags().StringP("output", "o", "", "output file base name (default is the material name)")
}
