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
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/notargets/fracviz/geometry2D"
	"github.com/notargets/fracviz/model_problems/PhaseField"
	"github.com/notargets/fracviz/plots"
	"github.com/notargets/fracviz/readfiles"
)

type DemoOptions struct {
	OutDir  string
	Steps   int
	NX, NY  int
	Model   string
	MaxLoad float64
	Verbose bool
}

// DemoCmd represents the demo command
var DemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Write a cracking bar mesh, its fields and damage plots for a series of loads",
	Long: `
Builds a triangulated bar, evaluates an analytic phase-field crack band for a
sequence of loads and writes, to the output directory:
	bar.neu              the mesh
	u_NNN.bin            displacement for each load step
	alpha_NNN.bin        damage for each load step
	damage_NNN.png       the damage state plot for each load step

fracviz demo -o frames -s 10`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		do := &DemoOptions{Verbose: viper.GetBool("verbose")}
		do.OutDir, _ = cmd.Flags().GetString("outDir")
		do.Steps, _ = cmd.Flags().GetInt("steps")
		do.NX, _ = cmd.Flags().GetInt("nx")
		do.NY, _ = cmd.Flags().GetInt("ny")
		do.Model, _ = cmd.Flags().GetString("model")
		do.MaxLoad, _ = cmd.Flags().GetFloat64("maxLoad")
		return RunDemo(do)
	},
}

func init() {
	rootCmd.AddCommand(DemoCmd)
	DemoCmd.Flags().StringP("outDir", "o", "demo", "directory for the mesh, fields and plots")
	DemoCmd.Flags().IntP("steps", "s", 5, "number of load steps")
	DemoCmd.Flags().Int("nx", 40, "divisions along the bar")
	DemoCmd.Flags().Int("ny", 10, "divisions across the bar")
	DemoCmd.Flags().String("model", "AT2", "damage profile: AT1 or AT2")
	DemoCmd.Flags().Float64("maxLoad", 1.5, "end displacement at the last step")
}

func (do *DemoOptions) validate() (err error) {
	if do.OutDir == "" {
		err = multierr.Append(err, fmt.Errorf("must supply --outDir"))
	}
	if do.Steps < 1 {
		err = multierr.Append(err, fmt.Errorf("--steps %d, need at least 1", do.Steps))
	}
	if do.NX < 1 || do.NY < 1 {
		err = multierr.Append(err, fmt.Errorf("--nx %d --ny %d, need at least 1 each", do.NX, do.NY))
	}
	if do.MaxLoad <= 0 {
		err = multierr.Append(err, fmt.Errorf("--maxLoad %g, must be positive", do.MaxLoad))
	}
	if _, merr := PhaseField.NewModel(do.Model); merr != nil {
		err = multierr.Append(err, merr)
	}
	return reportErrors(err)
}

func RunDemo(do *DemoOptions) (err error) {
	var (
		g     errgroup.Group
		model PhaseField.Model
	)
	if err = do.validate(); err != nil {
		return
	}
	model, _ = PhaseField.NewModel(do.Model)
	if err = os.MkdirAll(do.OutDir, 0755); err != nil {
		return
	}
	const lx, ly = 4., 1.
	mesh, err := geometry2D.NewRectangleMesh(lx, ly, do.NX, do.NY)
	if err != nil {
		return
	}
	if do.Verbose {
		mesh.PrintStatistics()
	}
	if err = readfiles.WriteGambit(filepath.Join(do.OutDir, "bar.neu"), mesh); err != nil {
		return
	}
	cb := PhaseField.NewCrackBand(model, lx)
	g.SetLimit(runtime.NumCPU())
	for step, load := range PhaseField.LoadSteps(do.Steps, do.MaxLoad) {
		step, load := step, load
		g.Go(func() (err error) {
			u, err := cb.Displacement(mesh, load)
			if err != nil {
				return
			}
			alpha, err := cb.Damage(mesh, load)
			if err != nil {
				return
			}
			name := func(prefix, ext string) string {
				return filepath.Join(do.OutDir, fmt.Sprintf("%s_%03d.%s", prefix, step, ext))
			}
			if err = readfiles.WriteField(name("u", "bin"), u.Values); err != nil {
				return
			}
			if err = readfiles.WriteField(name("alpha", "bin"), alpha.Values); err != nil {
				return
			}
			p, err := plots.NewDamageStatePlotter(u, alpha, &load, plots.Config{OffScreen: true})
			if err != nil {
				return
			}
			if err = p.Screenshot(name("damage", "png")); err != nil {
				return
			}
			if do.Verbose {
				fmt.Printf("step %3d, load %8.5f, peak damage %5.3f\n", step, load, cb.Amplitude(load))
			}
			return
		})
	}
	return g.Wait()
}
