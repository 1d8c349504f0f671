package main

import "github.com/notargets/fracviz/cmd"

func main() {
	cmd.Execute()
}
