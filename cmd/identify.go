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
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matmodlab/goelastic/symmetry"
)

// identifyCmd represents the identify command
var identifyCmd = &cobra.Command{
	Use:   "identify",
	Short: "Identify the crystal symmetry class of a stiffness matrix",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			tol      = viper.GetFloat64("tolerance")
			cells, _ = cmd.Flags().GetBool("cells")
		)
		for _, nm := range loadInputMatrices(cmd) {
			class, err := symmetry.Identify(reduceIfTwoD(nm.C), tol)
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				continue
			}
			fmt.Printf("%s: %s (%d independent constants)\n",
				nm.Name, class, class.NumIndependent())
			fmt.Printf("independent positions: %v\n", positionNames(class))
			if cells {
				printCellRoles(class)
			}
		}
	},
}

func positionNames(class symmetry.Class) (names []string) {
	// 2D classes index the in-plane (11,22,66) block; report the
	// conventional constant names either way.
	digits := []string{"1", "2", "3", "4", "5", "6"}
	if class.Dim() == 3 {
		digits = []string{"1", "2", "6"}
	}
	for _, pos := range class.Independent() {
		names = append(names, "c"+digits[pos.I]+digits[pos.J])
	}
	return
}

func printCellRoles(class symmetry.Class) {
	roles := class.CellRoles()
	for _, row := range roles {
		line := make([]string, len(row))
		for j, r := range row {
			line[j] = fmt.Sprintf("%-11s", r)
		}
		fmt.Println(strings.TrimRight(strings.Join(line, " "), " "))
	}
}

func init() {
	rootCmd.AddCommand(identifyCmd)
	identifyCmd.Flags().StringP("file", "F", "", "delimited text file with one or more stiffness matrices")
	identifyCmd.Flags().StringP("material", "M", "", "material name from the database")
	identifyCmd.Flags().Bool("cells", false, "print the independent/dependent/zero role of every matrix cell")
}
