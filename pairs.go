package vsf

import (
	"math"
	"runtime"
	"sync"

	vec2d "github.com/flywave/go3d/float64/vec2"
)

// AbsDiff is the difference statistic |a-b| used by the structure function.
func AbsDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

// Product is the product statistic a*b, the autocorrelation building block.
func Product(a, b float64) float64 {
	return a * b
}

// SubtractPairs enumerates every unordered pair of grid points with the
// difference statistic. See ApplyPairwise.
func SubtractPairs(input Grid) (PairList, error) {
	return ApplyPairwise(input, AbsDiff, 0)
}

// MultiplyPairs enumerates every unordered pair of grid points with the
// product statistic. See ApplyPairwise.
func MultiplyPairs(input Grid) (PairList, error) {
	return ApplyPairwise(input, Product, 0)
}

// ApplyPairwise visits every unordered pair of grid points exactly once,
// self-pairs at distance zero included, and collects the Euclidean separation
// distance together with stat applied to the two endpoint values. Pairs with
// a missing endpoint are skipped. The iteration space is split across a
// worker pool; each worker fills a private buffer, and buffers are
// concatenated under a lock, so the sample order across workers is
// unspecified. A workers value of zero or less selects runtime.NumCPU().
func ApplyPairwise(input Grid, stat PairStat, workers int) (PairList, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	height, width := input.Dims()
	cells := height * width

	// Upper bound on the pair count, split evenly across workers to keep
	// each private buffer from reallocating in the hot loop.
	reserve := cells * cells / 2 / workers

	out := make(PairList, 0, cells*cells/2)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			local := make(PairList, 0, reserve)
			for y := start; y < height; y += workers {
				for x := 0; x < width; x++ {
					a := input[y][x]
					if IsMissing(a) {
						continue
					}
					for j := y; j < height; j++ {
						i := 0
						if j == y {
							i = x // lag 0 is enumerated here
						}
						for ; i < width; i++ {
							b := input[j][i]
							if IsMissing(b) {
								continue
							}
							sep := vec2d.T{float64(i - x), float64(j - y)}
							local = append(local, PairSample{sep.Length(), stat(a, b)})
						}
					}
				}
			}
			mu.Lock()
			out = append(out, local...)
			mu.Unlock()
		}(w)
	}
	wg.Wait()
	return out, nil
}
