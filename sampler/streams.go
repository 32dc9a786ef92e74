package sampler

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stratify/core"
)

// streamCheckEvery is how many points a stream generates between context checks.
const streamCheckEvery = 256

// Streams fills count independent sequences of n points each, one goroutine
// per stream. Stream k draws from its own *rand.Rand seeded with
// StreamSeed(seed, k), so no Source is ever shared and stream k equals a
// sequential run with that seed.
//
// Errors:
//   - ErrBadSize     if count < 1 or n < 0.
//   - ErrUnknownKind if kind is not built in.
//   - ctx.Err()      if ctx is cancelled before every stream finishes.
func Streams(ctx context.Context, kind Kind, count, n int, seed int64) ([][]core.Point, error) {
	if count < 1 || n < 0 {
		return nil, fmt.Errorf("sampler: Streams(count=%d, n=%d): %w", count, n, ErrBadSize)
	}
	if !kind.valid() {
		return nil, fmt.Errorf("sampler: Streams(%v): %w", kind, ErrUnknownKind)
	}

	var out = make([][]core.Point, count)
	eg, ctx := errgroup.WithContext(ctx)
	for k := 0; k < count; k++ {
		eg.Go(func() error {
			src := rand.New(rand.NewSource(StreamSeed(seed, k)))
			gen, err := New(kind, WithSource(src), WithCapacity(n))
			if err != nil {
				return err
			}
			pts := make([]core.Point, n)
			for idx := range pts {
				if idx%streamCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				pts[idx] = gen.Generate()
			}
			out[k] = pts
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
