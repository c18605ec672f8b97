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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "goelastic",
	Short: "Anisotropic elastic property analysis from stiffness matrices",
	Long: `
Computes direction dependent elastic properties (Young's modulus, shear
modulus, Poisson's ratio, bulk modulus, hardness) from a 6x6 (or 3x3 for 2D)
elastic stiffness matrix, identifies the crystal symmetry class, evaluates
polycrystalline Voigt-Reuss-Hill averages and checks Born mechanical
stability.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if on, _ := cmd.Flags().GetBool("profile"); on {
			profiler = profile.Start(profile.CPUProfile)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.goelastic.yaml)")
	rootCmd.PersistentFlags().Bool("profile", false, "write a CPU profile for this run")
	rootCmd.PersistentFlags().Float64("tolerance", 1e-6, "symmetry classification tolerance")
	rootCmd.PersistentFlags().Int("chi", 100, "in-plane rotation samples for shear/Poisson aggregation")
	rootCmd.PersistentFlags().String("database", "", "material database file (default is $HOME/.goelastic/materials.yaml)")
	_ = viper.BindPFlag("tolerance", rootCmd.PersistentFlags().Lookup("tolerance"))
	_ = viper.BindPFlag("chi", rootCmd.PersistentFlags().Lookup("chi"))
	_ = viper.BindPFlag("database", rootCmd.PersistentFlags().Lookup("database"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".goelastic" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".goelastic")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
