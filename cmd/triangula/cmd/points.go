package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/vhill-go/triangula/predicate"
)

// writePoints emits pts as "x,y" CSV rows to w.
func writePoints(w io.Writer, pts []predicate.Point) error {
	cw := csv.NewWriter(w)
	for _, p := range pts {
		row := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// readPoints parses "x,y" CSV rows from r into points.
func readPoints(r io.Reader) ([]predicate.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	var pts []predicate.Point
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("triangula: invalid x coordinate %q: %w", row[0], err)
		}
		y, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("triangula: invalid y coordinate %q: %w", row[1], err)
		}

		pts = append(pts, predicate.Point{X: x, Y: y})
	}

	return pts, nil
}

// openOut resolves the --out destination: stdout if path is empty,
// otherwise a newly created file at path.
func openOut(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}

	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
