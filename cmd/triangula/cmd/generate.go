package cmd

import (
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vhill-go/triangula/pointgen"
)

var (
	genN       int
	genSeed    int64
	genLattice bool
	genRows    int
	genCols    int
	genOut     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate a point set",
	Long: `generate writes a point set to stdout (or --out) as "x,y" CSV rows,
suitable for feeding to "triangula run".`,
	RunE: runGenerate,
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVar(&genN, "n", 200, "number of points (uniform mode)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 1, "RNG seed (uniform mode)")
	generateCmd.Flags().BoolVar(&genLattice, "lattice", false, "generate an evenly spaced grid instead of uniform random points")
	generateCmd.Flags().IntVar(&genRows, "rows", 10, "grid rows (lattice mode)")
	generateCmd.Flags().IntVar(&genCols, "cols", 10, "grid cols (lattice mode)")
	generateCmd.Flags().StringVar(&genOut, "out", "", "output file (default stdout)")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	world := r2.Box{Min: r2.Vec{X: 0, Y: 0}, Max: r2.Vec{X: 1000, Y: 1000}}

	out, err := openOut(genOut)
	if err != nil {
		return err
	}
	defer out.Close()

	if genLattice {
		grid, gerr := pointgen.Lattice(genRows, genCols, world)
		if gerr != nil {
			return gerr
		}

		return writePoints(out, grid)
	}

	uniform, uerr := pointgen.Uniform(genN, world, genSeed)
	if uerr != nil {
		return uerr
	}

	return writePoints(out, uniform)
}
