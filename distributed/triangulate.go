package distributed

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vhill-go/triangula/delaunay"
	"github.com/vhill-go/triangula/predicate"
	"github.com/vhill-go/triangula/quadedge"
)

// Triangulate computes the Delaunay triangulation of points by partitioning
// them into opts.SlabCount x-slabs, triangulating each slab concurrently,
// and reducing the results with the same pairwise merge package delaunay
// uses internally between its own base cases.
//
// ctx cancellation is checked before each slab's triangulation starts; it
// does not interrupt a slab's triangulation once started, and the final
// reduction does not check it.
func Triangulate(ctx context.Context, points []predicate.Point, opts Options) (*quadedge.Subdivision, error) {
	if opts.SlabCount < 1 {
		return nil, ErrInvalidSlabCount
	}

	log := opts.logger()

	sorted := make([]predicate.Point, len(points))
	copy(sorted, points)
	delaunay.SortPoints(sorted)

	slabs := partitionSlabs(sorted, opts.SlabCount)
	log.Debug("partitioned points into slabs", zap.Int("requested", opts.SlabCount), zap.Int("actual", len(slabs)))

	group, gctx := errgroup.WithContext(ctx)
	results := make([]*quadedge.Subdivision, len(slabs))

	for i, slab := range slabs {
		i, slab := i, slab
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			id := uuid.New()
			slabLog := log.With(zap.String("slab_id", id.String()), zap.Int("slab_index", i), zap.Int("slab_size", len(slab)))

			slabLog.Debug("triangulating slab")
			sub, err := delaunay.Triangulate(slab, delaunay.Options{})
			if err != nil {
				slabLog.Error("slab triangulation failed", zap.Error(err))

				return err
			}
			slabLog.Debug("slab triangulated", zap.Int("edges", sub.NumEdges()))
			results[i] = sub

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return delaunay.Reduce(results), nil
}
