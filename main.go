package main

import "github.com/matmodlab/goelastic/cmd"

func main() {
	cmd.Execute()
}
