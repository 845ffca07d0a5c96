package vsf

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// compactValid appends the non-missing entries of vals to dst and returns the
// extended slice. Reductions run on the compacted data so that missing samples
// count neither in the total nor in the denominator.
func compactValid(dst, vals []float64) []float64 {
	for _, v := range vals {
		if !IsMissing(v) {
			dst = append(dst, v)
		}
	}
	return dst
}

// Mean returns the arithmetic mean of the non-missing entries of vals.
// An all-missing input yields NaN.
func Mean(vals []float64) float64 {
	c := compactValid(make([]float64, 0, len(vals)), vals)
	return stat.Mean(c, nil)
}

// Sum returns the sum of the non-missing entries of vals.
func Sum(vals []float64) float64 {
	c := compactValid(make([]float64, 0, len(vals)), vals)
	return floats.Sum(c)
}

// Variance returns the population variance of the non-missing entries of
// vals. The denominator is the non-missing count N, not N-1.
func Variance(vals []float64) float64 {
	c := compactValid(make([]float64, 0, len(vals)), vals)
	return stat.MomentAbout(2, c, stat.Mean(c, nil), nil)
}

// StandardDeviation returns the square root of the population variance of the
// non-missing entries of vals.
func StandardDeviation(vals []float64) float64 {
	return math.Sqrt(Variance(vals))
}

// CountValid returns the number of non-missing entries of vals.
func CountValid(vals []float64) int {
	n := 0
	for _, v := range vals {
		if !IsMissing(v) {
			n++
		}
	}
	return n
}

// Pow raises every entry of vals to exponent. An exponent of 1 returns vals
// unchanged, without copying. Missing entries are not treated specially here;
// they propagate as NaN and are dropped by the downstream missing-aware
// reductions.
func Pow(vals []float64, exponent float64) []float64 {
	if exponent == 1.0 {
		return vals
	}
	powVals := make([]float64, len(vals))
	for i, v := range vals {
		powVals[i] = math.Pow(v, exponent)
	}
	return powVals
}

// Log returns the elementwise natural logarithm of vals.
func Log(vals []float64) []float64 {
	logVals := make([]float64, len(vals))
	for i, v := range vals {
		logVals[i] = math.Log(v)
	}
	return logVals
}

func (g Grid) compact() []float64 {
	height, width := g.Dims()
	c := make([]float64, 0, height*width)
	for _, row := range g {
		c = compactValid(c, row)
	}
	return c
}

// Mean returns the arithmetic mean of the grid's non-missing samples.
func (g Grid) Mean() float64 {
	return stat.Mean(g.compact(), nil)
}

// Sum returns the sum of the grid's non-missing samples.
func (g Grid) Sum() float64 {
	return floats.Sum(g.compact())
}

// SumOfSquares returns the sum of the squares of the grid's non-missing
// samples.
func (g Grid) SumOfSquares() float64 {
	c := g.compact()
	return floats.Dot(c, c)
}

// Variance returns the population variance of the grid's non-missing samples.
func (g Grid) Variance() float64 {
	c := g.compact()
	return stat.MomentAbout(2, c, stat.Mean(c, nil), nil)
}

// CountValid returns the number of non-missing samples in the grid.
func (g Grid) CountValid() int {
	n := 0
	for _, row := range g {
		n += CountValid(row)
	}
	return n
}

// SubtractMean subtracts the grid's global mean from every sample in place,
// with rows swept across a worker pool. Missing samples stay missing. The
// caller must not read the grid concurrently while centering runs. A workers
// value of zero or less selects runtime.NumCPU().
func (g Grid) SubtractMean(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	meanVal := g.Mean()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for y := start; y < len(g); y += workers {
				floats.AddConst(-meanVal, g[y])
			}
		}(w)
	}
	wg.Wait()
}
