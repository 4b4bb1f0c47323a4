// Package cmd wires cobra subcommands for the triangula CLI. It contains
// no triangulation logic of its own: generate delegates to pointgen, run
// delegates to delaunay and distributed, and this package is responsible
// only for flag parsing, file I/O, and table rendering.
package cmd
