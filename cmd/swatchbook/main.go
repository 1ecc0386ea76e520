// Swatchbook - An interactive colour palette editor
//
// Swatchbook loads palettes from a palette generation service, rotates and
// edits them, and previews text contrast and page layout roles.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/swatchbook/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
