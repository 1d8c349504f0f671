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
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/fracviz/viz"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fracviz",
	Short: "Plot displacement and damage fields of phase-field fracture runs",
	Long: `
Plots finite element results of phase-field fracture simulations: the mesh
warped by the displacement next to the damage field, or a single warped mesh
coloured by a cell field.

fracviz damage -m bar.neu -u u.bin -a alpha.bin -l 0.125`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("profile") {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
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

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fracviz.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print progress while reading and plotting")
	rootCmd.PersistentFlags().Bool("offscreen", false, "never open a window, only write images")
	rootCmd.PersistentFlags().Bool("profile", false, "write a CPU profile to the current directory")
	for _, name := range []string{"verbose", "offscreen", "profile"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
	viper.SetDefault("display.hold", "0s")
	viper.SetDefault("window.width", 1024)
	viper.SetDefault("window.height", 768)
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

		// Search config in home directory with name ".fracviz" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".fracviz")
	}

	viper.SetEnvPrefix("fracviz")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// newDisplay is the window backend configured under display.*
func newDisplay() viz.Display {
	cd := viz.NewChartDisplay()
	cd.Hold = viper.GetDuration("display.hold")
	if cd.Hold < 0 {
		cd.Hold = time.Duration(0)
	}
	return cd
}

// windowSize is the configured window.width x window.height
func windowSize() (int, int) {
	return viper.GetInt("window.width"), viper.GetInt("window.height")
}
