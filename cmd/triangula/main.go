// Command triangula is a thin composition root over the triangulation
// library: it parses arguments, reads and writes points, and prints
// results. All triangulation logic lives in packages delaunay and
// distributed.
package main

import "github.com/vhill-go/triangula/cmd/triangula/cmd"

func main() {
	cmd.Execute()
}
