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
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/notargets/fracviz/plots"
	"github.com/notargets/fracviz/viz"
)

type DamageOptions struct {
	MeshFile, UFile, AlphaFile string
	Components                 int
	Load                       *float64
	Output                     string // PNG written instead of opening a window
	OffScreen, Verbose         bool
	Display                    viz.Display
}

// DamageCmd represents the damage command
var DamageCmd = &cobra.Command{
	Use:   "damage",
	Short: "Plot the mesh warped by displacement next to the damage field",
	Long: `
Plots the displacement warped mesh (scaled by 0.1) and the damage field on a
fixed [0,1] colour scale side by side.

fracviz damage -m bar.neu -u u.bin -a alpha.bin -l 0.125 -o frame.png`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		do := &DamageOptions{
			OffScreen: viper.GetBool("offscreen"),
			Verbose:   viper.GetBool("verbose"),
			Display:   newDisplay(),
		}
		do.MeshFile, _ = cmd.Flags().GetString("meshFile")
		do.UFile, _ = cmd.Flags().GetString("displacement")
		do.AlphaFile, _ = cmd.Flags().GetString("damage")
		do.Components, _ = cmd.Flags().GetInt("components")
		do.Output, _ = cmd.Flags().GetString("output")
		if cmd.Flags().Changed("load") {
			load, _ := cmd.Flags().GetFloat64("load")
			do.Load = &load
		}
		return RunDamage(do)
	},
}

func init() {
	rootCmd.AddCommand(DamageCmd)
	DamageCmd.Flags().StringP("meshFile", "m", "", "mesh file in Gambit (.neu) or SU2 (.su2) format")
	DamageCmd.Flags().StringP("displacement", "u", "", "binary field file with the nodal displacement")
	DamageCmd.Flags().StringP("damage", "a", "", "binary field file with the nodal damage")
	DamageCmd.Flags().IntP("components", "k", 2, "number of displacement components per node")
	DamageCmd.Flags().Float64P("load", "l", 0, "load shown in the panel titles")
	DamageCmd.Flags().StringP("output", "o", "", "write a PNG to this file instead of opening a window")
}

func (do *DamageOptions) validate() (err error) {
	err = requireFlags(map[string]string{
		"meshFile":     do.MeshFile,
		"displacement": do.UFile,
		"damage":       do.AlphaFile,
	})
	err = multierr.Append(err, checkComponents(do.Components))
	return reportErrors(err)
}

func RunDamage(do *DamageOptions) (err error) {
	if err = do.validate(); err != nil {
		return
	}
	_, fields, err := loadFields(do.MeshFile, []fieldFile{
		{Name: "u", File: do.UFile, Components: do.Components},
		{Name: "alpha", File: do.AlphaFile, Components: 1},
	}, do.Verbose)
	if err != nil {
		return
	}
	u, alpha := fields[0], fields[1]
	if do.Output == "" {
		return plots.PlotDamageState(u, alpha, do.Load, plots.Config{
			OffScreen: do.OffScreen,
			Display:   do.Display,
		})
	}
	p, err := plots.NewDamageStatePlotter(u, alpha, do.Load, plots.Config{OffScreen: true})
	if err != nil {
		return
	}
	if err = p.Screenshot(do.Output); err != nil {
		return
	}
	if do.Verbose {
		fmt.Printf("Wrote %s\n", do.Output)
	}
	return
}
