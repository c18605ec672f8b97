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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matmodlab/goelastic/materials"
	"github.com/matmodlab/goelastic/symmetry"
	"github.com/matmodlab/goelastic/tensor"
	"github.com/matmodlab/goelastic/utils"
	"github.com/matmodlab/goelastic/vrh"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Full report: symmetry class, VRH averages, Born stability",
	Long: `
Loads a stiffness matrix from a text file (-F) or the material database (-M),
identifies its crystal symmetry class, evaluates the polycrystalline
Voigt-Reuss-Hill averages and checks Born mechanical stability. A 2D material
(3x3 input, or a 6x6 with zero out-of-plane block) is reduced automatically.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, nm := range loadInputMatrices(cmd) {
			fmt.Printf("==== %s ====\n", nm.Name)
			analyzeOne(nm.C)
		}
	},
}

func analyzeOne(C utils.Matrix) {
	var (
		tol = viper.GetFloat64("tolerance")
	)
	st, err := vrh.CheckStability(C)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		return
	}
	probe := reduceIfTwoD(C)
	class, err := symmetry.Identify(probe, tol)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		return
	}
	fmt.Printf("[%s]\t\t= Crystal symmetry class (%d independent constants)\n",
		class, class.NumIndependent())
	if st.TwoD {
		r, err := vrh.Average2D(probe)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			return
		}
		r.Print()
	} else {
		r, err := vrh.Average(C)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			return
		}
		r.Print()
	}
	st.Print()
}

// reduceIfTwoD maps an embedded 2D material to its 3x3 in-plane block
// so that it is classified against the 2D symmetry classes.
func reduceIfTwoD(C utils.Matrix) utils.Matrix {
	if tensor.Embedded2D(C, 1e-12) {
		return C.Subset(tensor.PlaneIndex)
	}
	return C
}

// loadInputMatrices resolves the -F / -M input flags shared by the
// analysis commands.
func loadInputMatrices(cmd *cobra.Command) (out []materials.NamedMatrix) {
	var (
		err      error
		file, _  = cmd.Flags().GetString("file")
		matName  string
		willExit bool
	)
	matName, _ = cmd.Flags().GetString("material")
	switch {
	case len(file) != 0:
		if out, err = materials.ReadMatrixFile(file); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			willExit = true
		}
	case len(matName) != 0:
		db, errL := materials.Load(viper.GetString("database"))
		if errL != nil {
			fmt.Printf("error: %s\n", errL.Error())
			willExit = true
			break
		}
		m, ok := db.Lookup(matName)
		if !ok {
			fmt.Printf("error: material %q not in database (try 'goelastic materials list')\n", matName)
			willExit = true
			break
		}
		C, errM := m.Matrix()
		if errM != nil {
			fmt.Printf("error: %s\n", errM.Error())
			willExit = true
			break
		}
		out = []materials.NamedMatrix{{Name: m.Name, C: C}}
	default:
		err = fmt.Errorf("must supply a matrix file (-F, --file) or a material name (-M, --material)")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
	return
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringP("file", "F", "", "delimited text file with one or more stiffness matrices")
	analyzeCmd.Flags().StringP("material", "M", "", "material name from the database")
}
