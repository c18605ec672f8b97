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
)

// materialsCmd represents the materials command
var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List or show entries of the material database",
}

var materialsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List database entries",
	Run: func(cmd *cobra.Command, args []string) {
		db := mustLoadDatabase()
		for _, m := range db.Materials {
			twoD := ""
			if m.TwoD {
				twoD = " (2D)"
			}
			fmt.Printf("%-16s %-12s %s%s\n", m.Name, m.Category, m.CrystalClass, twoD)
		}
	},
}

var materialsShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print the stiffness matrix of one entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := mustLoadDatabase()
		m, ok := db.Lookup(args[0])
		if !ok {
			fmt.Printf("error: material %q not in database\n", args[0])
			os.Exit(1)
		}
		C, err := m.Matrix()
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("%s (%s)\n%v\n", m.Name, m.CrystalClass, C)
	},
}

func mustLoadDatabase() *materials.Database {
	db, err := materials.Load(viper.GetString("database"))
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return db
}

func init() {
	rootCmd.AddCommand(materialsCmd)
	materialsCmd.AddCommand(materialsListCmd)
	materialsCmd.AddCommand(materialsShowCmd)
}
