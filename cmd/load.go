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
	"sort"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/notargets/fracviz/fem"
	"github.com/notargets/fracviz/readfiles"
	"github.com/notargets/fracviz/types"
)

// fieldFile names a binary field file and how to interpret its values
type fieldFile struct {
	Name       string
	File       string
	Components int
}

// loadFields reads the mesh, then every field file concurrently, and wraps
// the values as functions on that mesh. Fields with an empty File come back
// nil.
func loadFields(meshFile string, files []fieldFile, verbose bool) (mesh *types.Mesh, fields []*fem.Function, err error) {
	var (
		values = make([][]float64, len(files))
		g      errgroup.Group
	)
	if mesh, err = readfiles.ReadMeshFile(meshFile, verbose); err != nil {
		return
	}
	for i, ff := range files {
		if ff.File == "" {
			continue
		}
		i, ff := i, ff
		g.Go(func() (err error) {
			values[i], err = readfiles.ReadField(ff.File, verbose)
			return
		})
	}
	if err = g.Wait(); err != nil {
		return
	}
	fields = make([]*fem.Function, len(files))
	for i, ff := range files {
		if ff.File == "" {
			continue
		}
		if fields[i], err = fem.NewFunction(ff.Name, mesh, ff.Components, values[i]); err != nil {
			return
		}
	}
	return
}

// requireFlags reports every missing flag at once
func requireFlags(flags map[string]string) (err error) {
	for _, name := range sortedKeys(flags) {
		if flags[name] == "" {
			err = multierr.Append(err, fmt.Errorf("must supply --%s", name))
		}
	}
	return
}

func checkComponents(k int) error {
	if k < 1 || k > 3 {
		return fmt.Errorf("--components %d: %w", k, fem.ErrComponents)
	}
	return nil
}

// reportErrors prints each accumulated input error on its own line
func reportErrors(err error) error {
	errs := multierr.Errors(err)
	if len(errs) < 2 {
		return err
	}
	for _, e := range errs {
		fmt.Printf("error: %s\n", e)
	}
	return fmt.Errorf("%d input errors", len(errs))
}

func sortedKeys(m map[string]string) (keys []string) {
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}
