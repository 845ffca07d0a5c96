package vsf

import (
	"math"
	"runtime"
	"sync"
)

// Options tunes a structure-function computation.
type Options struct {
	// Workers sizes the pool used for the pairwise sweep, the regrouping
	// and the per-bucket reduction. Zero or less selects runtime.NumCPU().
	Workers int
	// Stat is the pairwise statistic. Nil selects AbsDiff, the
	// structure-function difference statistic.
	Stat PairStat
}

// StructureFunction computes the n-th order velocity structure function of a
// two-dimensional scalar field: pair differences are grouped by exact
// separation distance and, per distance, the mean of the order-th power of
// the differences is reported normalized by the field's population variance,
// with its sample standard error. Rows are unordered. Missing samples (NaN)
// exclude every pair touching them. An empty or ragged grid is rejected; an
// all-missing grid yields NaN-valued rows rather than an error.
func StructureFunction(input Grid, order int) (OutputRows, error) {
	return StructureFunctionWithOptions(input, order, nil)
}

func StructureFunctionWithOptions(input Grid, order int, o *Options) (OutputRows, error) {
	workers := runtime.NumCPU()
	pairStat := PairStat(AbsDiff)
	if o != nil {
		if o.Workers > 0 {
			workers = o.Workers
		}
		if o.Stat != nil {
			pairStat = o.Stat
		}
	}

	samples, err := ApplyPairwise(input, pairStat, workers)
	if err != nil {
		return nil, err
	}
	regrouped := RegroupByDistance(samples, workers)
	varianceVal := input.Variance()

	// Materialize the key set up front so workers can partition the map by
	// index while it stays read-only.
	dists := make([]float64, 0, len(regrouped))
	for dist := range regrouped {
		dists = append(dists, dist)
	}

	out := make(OutputRows, 0, len(regrouped))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			local := make(OutputRows, 0, len(dists)/workers+1)
			for i := start; i < len(dists); i += workers {
				dist := dists[i]
				if dist == 0 { // reject zero separation (self-pairs)
					continue
				}
				powVals := Pow(regrouped[dist], float64(order))
				n := len(powVals)
				if n == 1 { // sample variance undefined
					continue
				}
				meanVal := Mean(powVals)
				stdVal := StandardDeviation(powVals)
				local = append(local, OutputRow{
					dist,
					meanVal / varianceVal,
					stdVal / (varianceVal * math.Sqrt(float64(n-1))),
				})
			}
			mu.Lock()
			out = append(out, local...)
			mu.Unlock()
		}(w)
	}
	wg.Wait()
	return out, nil
}
