package vsf

import (
	"runtime"
	"sync"

	vec2d "github.com/flywave/go3d/float64/vec2"
)

// RegroupByDistance groups the statistic values of samples by their exact
// separation distance. Multiplicity is preserved. Every worker shards the
// sample list into a private map; the private maps are merged sequentially by
// key-wise concatenation after all workers join, so no lock is held during
// bucketing and the merge order only affects the in-bucket value order, which
// carries no meaning. A workers value of zero or less selects
// runtime.NumCPU().
func RegroupByDistance(samples PairList, workers int) map[float64][]float64 {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	locals := make([]map[float64][]float64, workers)
	var wg sync.WaitGroup
	for w := range locals {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			local := make(map[float64][]float64)
			for i := w; i < len(samples); i += workers {
				s := samples[i]
				local[s[0]] = append(local[s[0]], s[1])
			}
			locals[w] = local
		}(w)
	}
	wg.Wait()

	regrouped := make(map[float64][]float64)
	for _, local := range locals {
		for dist, vals := range local {
			regrouped[dist] = append(regrouped[dist], vals...)
		}
	}
	return regrouped
}

// RegroupByLag is the two-axis variant of RegroupByDistance: samples carry a
// (dx, dy) separation instead of a scalar distance and are grouped by that
// exact lag vector. The structure-function entry point does not call this;
// it backs direction-resolved analyses.
func RegroupByLag(samples []LagSample, workers int) map[vec2d.T][]float64 {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	locals := make([]map[vec2d.T][]float64, workers)
	var wg sync.WaitGroup
	for w := range locals {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			local := make(map[vec2d.T][]float64)
			for i := w; i < len(samples); i += workers {
				s := samples[i]
				key := vec2d.T{s[0], s[1]}
				local[key] = append(local[key], s[2])
			}
			locals[w] = local
		}(w)
	}
	wg.Wait()

	regrouped := make(map[vec2d.T][]float64)
	for _, local := range locals {
		for lag, vals := range local {
			regrouped[lag] = append(regrouped[lag], vals...)
		}
	}
	return regrouped
}
