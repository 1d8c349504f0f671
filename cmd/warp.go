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

	"github.com/notargets/fracviz/InputParameters"
	"github.com/notargets/fracviz/plots"
	"github.com/notargets/fracviz/viz"
)

type WarpOptions struct {
	MeshFile, UFile, CellFile string
	ParamFile                 string
	Params                    *InputParameters.PlotParameters
	OffScreen, Verbose        bool
	Display                   viz.Display
}

// WarpCmd represents the warp command
var WarpCmd = &cobra.Command{
	Use:   "warp",
	Short: "Plot the mesh warped by a vector field, optionally coloured by a cell field",
	Long: `
Warps the mesh by the displacement and colours it by an optional cell field.
Rendering options (show_edges, clim, color, ...) are read from the MeshOptions
map of the parameter file and passed to the renderer as is.

fracviz warp -m bar.neu -u u.bin -c energy.bin -n energy -f 10 -I plot.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		wo := &WarpOptions{
			Params:    InputParameters.NewPlotParameters(),
			OffScreen: viper.GetBool("offscreen"),
			Verbose:   viper.GetBool("verbose"),
			Display:   newDisplay(),
		}
		wo.Params.WindowSize[0], wo.Params.WindowSize[1] = windowSize()
		wo.MeshFile, _ = cmd.Flags().GetString("meshFile")
		wo.UFile, _ = cmd.Flags().GetString("displacement")
		wo.CellFile, _ = cmd.Flags().GetString("cellField")
		if wo.ParamFile, _ = cmd.Flags().GetString("inputParametersFile"); wo.ParamFile != "" {
			if err = wo.Params.ReadFile(wo.ParamFile); err != nil {
				return
			}
		}
		// Flags given on the command line win over the parameter file
		if cmd.Flags().Changed("fieldName") {
			wo.Params.FieldName, _ = cmd.Flags().GetString("fieldName")
		}
		if cmd.Flags().Changed("factor") {
			factor, _ := cmd.Flags().GetFloat64("factor")
			wo.Params.WarpFactor = &factor
		}
		if cmd.Flags().Changed("load") {
			load, _ := cmd.Flags().GetFloat64("load")
			wo.Params.Load = &load
		}
		if cmd.Flags().Changed("components") {
			wo.Params.Components, _ = cmd.Flags().GetInt("components")
		}
		if cmd.Flags().Changed("output") {
			wo.Params.Output, _ = cmd.Flags().GetString("output")
		}
		return RunWarp(wo)
	},
}

func init() {
	rootCmd.AddCommand(WarpCmd)
	WarpCmd.Flags().StringP("meshFile", "m", "", "mesh file in Gambit (.neu) or SU2 (.su2) format")
	WarpCmd.Flags().StringP("displacement", "u", "", "binary field file with the nodal vector field")
	WarpCmd.Flags().StringP("cellField", "c", "", "binary field file with one value per cell")
	WarpCmd.Flags().StringP("fieldName", "n", "Field", "name of the cell field")
	WarpCmd.Flags().Float64P("factor", "f", 1, "warp scale factor")
	WarpCmd.Flags().Float64P("load", "l", 0, "load shown in the title")
	WarpCmd.Flags().IntP("components", "k", 2, "number of vector components per node")
	WarpCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file with plot parameters like:\n\t- Title\n\t- Load\n\t- WarpFactor\n\t- MeshOptions")
	WarpCmd.Flags().StringP("output", "o", "", "write a PNG to this file instead of opening a window")
}

func (wo *WarpOptions) validate() (err error) {
	err = requireFlags(map[string]string{
		"meshFile":     wo.MeshFile,
		"displacement": wo.UFile,
	})
	err = multierr.Append(err, checkComponents(wo.Params.Components))
	err = multierr.Append(err, wo.Params.Validate())
	return reportErrors(err)
}

func RunWarp(wo *WarpOptions) (err error) {
	var (
		pp = wo.Params
	)
	if err = wo.validate(); err != nil {
		return
	}
	if wo.Verbose {
		pp.Print()
	}
	_, fields, err := loadFields(wo.MeshFile, []fieldFile{
		{Name: "u", File: wo.UFile, Components: pp.Components},
		{Name: pp.FieldName, File: wo.CellFile, Components: 1},
	}, wo.Verbose)
	if err != nil {
		return
	}
	offScreen := wo.OffScreen || pp.Output != ""
	p, err := plots.WarpPlot2D(fields[0], plots.WarpOptions{
		CellField:   fields[1],
		FieldName:   pp.FieldName,
		Factor:      pp.WarpFactor,
		MeshOptions: viz.MeshOptions(pp.MeshOptions),
		OffScreen:   offScreen,
		Display:     wo.Display,
	})
	if err != nil {
		return
	}
	p.Title = pp.PlotTitle()
	p.WindowSize = [2]int{pp.WindowSize[0], pp.WindowSize[1]}
	if p.Title != "" {
		p.AddText(p.Title, plots.TitleFontSize)
	}
	if err = p.SetCameraPosition(pp.Camera); err != nil {
		return
	}
	if pp.Output != "" {
		if err = p.Screenshot(pp.Output); err != nil {
			return
		}
		if wo.Verbose {
			fmt.Printf("Wrote %s\n", pp.Output)
		}
		return
	}
	return p.Show()
}
