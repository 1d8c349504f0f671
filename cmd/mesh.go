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

	"github.com/notargets/fracviz/readfiles"
	"github.com/notargets/fracviz/types"
)

// MeshCmd represents the mesh command
var MeshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Print statistics of a mesh file",
	Long: `
Reads a Gambit (.neu) or SU2 (.su2) mesh and prints its size, element types,
bounding box and edge counts.

fracviz mesh -m bar.neu`,
	RunE: func(cmd *cobra.Command, args []string) error {
		meshFile, _ := cmd.Flags().GetString("meshFile")
		return RunMesh(meshFile, viper.GetBool("verbose"))
	},
}

func init() {
	rootCmd.AddCommand(MeshCmd)
	MeshCmd.Flags().StringP("meshFile", "m", "", "mesh file in Gambit (.neu) or SU2 (.su2) format")
}

func RunMesh(meshFile string, verbose bool) (err error) {
	var (
		mesh *types.Mesh
	)
	if err = requireFlags(map[string]string{"meshFile": meshFile}); err != nil {
		return
	}
	if mesh, err = readfiles.ReadMeshFile(meshFile, verbose); err != nil {
		return
	}
	if !verbose {
		mesh.PrintStatistics()
	}
	all, boundary := types.CellEdges(mesh.Cells, mesh.CellTypes)
	fmt.Printf("  Edges: %d, %d used by a single cell\n", len(all), len(boundary))
	return
}
