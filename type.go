package vsf

import (
	"errors"
	"sort"
)

// Grid is a rectangular, row-major field of scalar samples. Missing samples
// are marked with NaN (see IsMissing) and excluded from every reduction.
type Grid [][]float64

func NewGrid(height, width int) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = make([]float64, width)
	}
	return g
}

// GridFromFlat builds a Grid from row-major flat raster data, converting the
// given no-data value to the missing sentinel.
func GridFromFlat(data []float64, width, height int, nodata float64) Grid {
	g := make(Grid, height)
	for y := 0; y < height; y++ {
		row := make([]float64, width)
		for x := 0; x < width; x++ {
			v := data[y*width+x]
			if isNoData(v, nodata) {
				v = Missing()
			}
			row[x] = v
		}
		g[y] = row
	}
	return g
}

func (g Grid) Dims() (height, width int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g), len(g[0])
}

func (g Grid) validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return errors.New("empty grid")
	}
	width := len(g[0])
	for _, row := range g {
		if len(row) != width {
			return errors.New("ragged grid")
		}
	}
	return nil
}

// PairSample holds the separation distance of one point pair and the value of
// the pairwise statistic computed over it.
type PairSample [2]float64

// PairList is sortable by separation distance.
type PairList []PairSample

func (t PairList) Len() int {
	return len(t)
}

func (t PairList) Less(i, j int) bool {
	return t[i][0] < t[j][0]
}

func (t PairList) Swap(i, j int) {
	tmp := t[i]
	t[i] = t[j]
	t[j] = tmp
}

// LagSample holds a two-axis separation (dx, dy) and the statistic value, for
// the 2D-lag regrouping variant.
type LagSample [3]float64

// OutputRow is one structure-function result: distance, structure value and
// its sampling uncertainty.
type OutputRow [3]float64

// OutputRows is the unordered result set of a structure-function computation.
// Row order is not fixed by the computation; call Sort for a distance-ordered
// view.
type OutputRows []OutputRow

func (t OutputRows) Len() int {
	return len(t)
}

func (t OutputRows) Less(i, j int) bool {
	return t[i][0] < t[j][0]
}

func (t OutputRows) Swap(i, j int) {
	tmp := t[i]
	t[i] = t[j]
	t[j] = tmp
}

func (t OutputRows) Sort() {
	sort.Sort(t)
}

// PairStat is the pairwise statistic applied to the two endpoint values of a
// point pair.
type PairStat func(a, b float64) float64
