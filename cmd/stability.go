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

	"github.com/spf13/cobra"

	"github.com/matmodlab/goelastic/vrh"
)

// stabilityCmd represents the stability command
var stabilityCmd = &cobra.Command{
	Use:   "stability",
	Short: "Check Born mechanical stability of a stiffness matrix",
	Run: func(cmd *cobra.Command, args []string) {
		for _, nm := range loadInputMatrices(cmd) {
			st, err := vrh.CheckStability(nm.C)
			if err != nil {
				fmt.Printf("%s: error: %s\n", nm.Name, err.Error())
				continue
			}
			fmt.Printf("==== %s ====\n", nm.Name)
			st.Print()
		}
	},
}

func init() {
	rootCmd.AddCommand(stabilityCmd)
	stabilityCmd.Flags().StringP("file", "F", "", "delimited text file with one or more stiffness matrices")
	stabilityCmd.Flags().StringP("material", "M", "", "material name from the database")
}
