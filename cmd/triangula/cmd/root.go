package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command; Execute is its sole entry point from main.
var RootCmd = &cobra.Command{
	Use:   "triangula",
	Short: "compute Delaunay triangulations of 2D point sets",
	Long: `triangula builds the Delaunay triangulation of a set of 2D points
using the Guibas-Stolfi divide-and-conquer algorithm.

Use "triangula generate" to produce a point set, and "triangula run" to
triangulate one.`,
}

// Execute runs RootCmd; its subcommands are registered by this package's
// init functions. Called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
