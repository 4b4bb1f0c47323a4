package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vhill-go/triangula/delaunay"
	"github.com/vhill-go/triangula/distributed"
	"github.com/vhill-go/triangula/predicate"
	"github.com/vhill-go/triangula/quadedge"
)

var (
	runIn    string
	runSlabs int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "triangulate a point set",
	Long: `run reads a point set (written by "triangula generate" or any
"x,y" CSV file), triangulates it, and prints the resulting triangles and
hull edge count as a table.`,
	RunE: runRun,
}

func init() {
	RootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runIn, "in", "", "input CSV file (required)")
	runCmd.Flags().IntVar(&runSlabs, "slabs", 1, "number of x-slabs to triangulate concurrently")
	_ = runCmd.MarkFlagRequired("in")
}

func runRun(cmd *cobra.Command, _ []string) error {
	f, err := os.Open(runIn)
	if err != nil {
		return err
	}
	defer f.Close()

	pts, err := readPoints(f)
	if err != nil {
		return err
	}

	sub, err := triangulatePoints(cmd.Context(), pts, runSlabs)
	if err != nil {
		return err
	}

	printResult(sub)

	return nil
}

func triangulatePoints(ctx context.Context, pts []predicate.Point, slabs int) (*quadedge.Subdivision, error) {
	if slabs <= 1 {
		return delaunay.Triangulate(pts, delaunay.Options{})
	}

	return distributed.Triangulate(ctx, pts, distributed.Options{SlabCount: slabs, Logger: zap.NewNop()})
}

func printResult(sub *quadedge.Subdivision) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "P1", "P2", "P3"})

	for i, tri := range sub.Triangles() {
		p1, p2, p3 := sub.Point(tri[0]), sub.Point(tri[1]), sub.Point(tri[2])
		t.AppendRow(table.Row{i, fmt.Sprintf("%.3f,%.3f", p1.X, p1.Y), fmt.Sprintf("%.3f,%.3f", p2.X, p2.Y), fmt.Sprintf("%.3f,%.3f", p3.X, p3.Y)})
	}
	t.Render()

	fmt.Printf("hull edges: %d\n", hullEdgeCount(sub))
}

// hullEdgeCount walks the unbounded face starting at the subdivision's
// outer edge, counting edges until the walk returns to its start. This is
// the same Lnext-style face walk Triangles uses for bounded faces, applied
// to the one face with no fixed size: the hull.
func hullEdgeCount(sub *quadedge.Subdivision) int {
	if sub.NumEdges() == 0 {
		return 0
	}

	start := sub.Outer
	count := 0
	e := start
	for {
		count++
		e = sub.Onext(sub.Sym(e))
		if e == start {
			return count
		}
	}
}
