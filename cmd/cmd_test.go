package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fracviz/InputParameters"
	"github.com/notargets/fracviz/plots"
	"github.com/notargets/fracviz/viz"
)

type countingDisplay struct {
	calls int
	last  *viz.Plotter
}

func (cd *countingDisplay) Show(p *viz.Plotter) error {
	cd.calls++
	cd.last = p
	return nil
}

// demoDir writes a small demo run and returns its directory
func demoDir(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, RunDemo(&DemoOptions{
		OutDir:  dir,
		Steps:   3,
		NX:      8,
		NY:      2,
		Model:   "AT1",
		MaxLoad: 1.5,
	}))
	return dir
}

func TestRunDemo(t *testing.T) {
	dir := demoDir(t)
	for _, name := range []string{
		"bar.neu",
		"u_000.bin", "u_001.bin", "u_002.bin",
		"alpha_000.bin", "alpha_002.bin",
		"damage_000.png", "damage_002.png",
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	require.NoError(t, RunMesh(filepath.Join(dir, "bar.neu"), false))

	err := RunDemo(&DemoOptions{OutDir: "", Steps: 0, NX: 1, NY: 1, Model: "AT9", MaxLoad: 1})
	assert.Error(t, err)
}

func TestRunDamage(t *testing.T) {
	var (
		dir  = demoDir(t)
		disp = &countingDisplay{}
		load = 0.5
	)
	do := &DamageOptions{
		MeshFile:   filepath.Join(dir, "bar.neu"),
		UFile:      filepath.Join(dir, "u_001.bin"),
		AlphaFile:  filepath.Join(dir, "alpha_001.bin"),
		Components: 2,
		Load:       &load,
		Display:    disp,
	}
	require.NoError(t, RunDamage(do))
	assert.Equal(t, 1, disp.calls)

	do.OffScreen = true
	require.NoError(t, RunDamage(do))
	assert.Equal(t, 1, disp.calls)

	do.Output = filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, RunDamage(do))
	assert.FileExists(t, do.Output)
	assert.Equal(t, 1, disp.calls)

	// Reading two component data as three fails on the reshape
	do.Components = 3
	assert.Error(t, RunDamage(do))
}

func TestRunDamageValidation(t *testing.T) {
	err := RunDamage(&DamageOptions{Components: 4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4 input errors")

	err = RunDamage(&DamageOptions{
		MeshFile:   "missing.neu",
		UFile:      "u.bin",
		AlphaFile:  "alpha.bin",
		Components: 2,
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunWarp(t *testing.T) {
	var (
		dir    = demoDir(t)
		disp   = &countingDisplay{}
		params = filepath.Join(t.TempDir(), "plot.yaml")
		out    = filepath.Join(t.TempDir(), "warp.png")
	)
	require.NoError(t, os.WriteFile(params, []byte(`
Title: opening crack
Load: 0.75
WarpFactor: 0.5
Camera: xy
MeshOptions:
  show_edges: true
  color: blue
`), 0644))
	pp := InputParameters.NewPlotParameters()
	require.NoError(t, pp.ReadFile(params))
	wo := &WarpOptions{
		MeshFile: filepath.Join(dir, "bar.neu"),
		UFile:    filepath.Join(dir, "u_002.bin"),
		Params:   pp,
		Display:  disp,
	}
	require.NoError(t, RunWarp(wo))
	assert.Equal(t, 1, disp.calls)
	require.NotNil(t, disp.last)
	assert.Equal(t, "opening crack - load 0.750", disp.last.Title)
	assert.Equal(t, []viz.Text{{Text: "opening crack - load 0.750", FontSize: plots.TitleFontSize}},
		disp.last.Viewports()[0].Texts)

	pp.Output = out
	require.NoError(t, RunWarp(wo))
	assert.FileExists(t, out)
	assert.Equal(t, 1, disp.calls)

	// A cell field needs one value per cell, nodal damage is the wrong size
	wo.CellFile = filepath.Join(dir, "alpha_002.bin")
	assert.Error(t, RunWarp(wo))

	wo.Params = InputParameters.NewPlotParameters()
	wo.Params.Camera = "top"
	wo.MeshFile = ""
	assert.Error(t, RunWarp(wo))
}

func TestRunMesh(t *testing.T) {
	assert.Error(t, RunMesh("", false))
	assert.Error(t, RunMesh(filepath.Join(t.TempDir(), "mesh.obj"), false))
}
