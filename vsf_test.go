package vsf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructureFunctionTwoByTwo(t *testing.T) {
	a := assert.New(t)

	rows, err := StructureFunction(Grid{{1, 2}, {3, 4}}, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	rows.Sort()

	// Distance 1 bucket {1, 2, 2, 1}: mean 1.5, std 0.5, N=4.
	// Field variance is 1.25.
	a.Equal(1.0, rows[0][0])
	a.InDelta(1.2, rows[0][1], 1e-12)
	a.InDelta(0.5/(1.25*math.Sqrt(3)), rows[0][2], 1e-12)

	// Distance sqrt(2) bucket {3, 1}: mean 2, std 1, N=2.
	a.Equal(math.Sqrt2, rows[1][0])
	a.InDelta(1.6, rows[1][1], 1e-12)
	a.InDelta(0.8, rows[1][2], 1e-12)
}

func TestStructureFunctionNeverEmitsZeroDistance(t *testing.T) {
	a := assert.New(t)

	rows, err := StructureFunction(Grid{{1, 2, 3}, {4, 5, 6}}, 2)
	require.NoError(t, err)
	for _, row := range rows {
		a.NotEqual(0.0, row[0])
	}
}

func TestStructureFunctionSkipsSingleSampleBuckets(t *testing.T) {
	a := assert.New(t)

	// The missing corner leaves a single sample in the diagonal bucket.
	rows, err := StructureFunction(Grid{{1, 2}, {3, Missing()}}, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	a.Equal(1.0, rows[0][0])
}

func TestStructureFunctionOrderZero(t *testing.T) {
	a := assert.New(t)

	g := Grid{{1, 2}, {3, 4}}
	rows, err := StructureFunction(g, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		a.InDelta(1/g.Variance(), row[1], 1e-12)
		a.Equal(0.0, row[2])
	}
}

func TestStructureFunctionProductStatistic(t *testing.T) {
	a := assert.New(t)

	rows, err := StructureFunctionWithOptions(Grid{{1, 2}, {3, 4}}, 1, &Options{Stat: Product})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	rows.Sort()

	// Distance 1 products {2, 3, 8, 12}: mean 6.25. Diagonal {4, 6}: mean 5.
	a.InDelta(6.25/1.25, rows[0][1], 1e-12)
	a.InDelta(5.0/1.25, rows[1][1], 1e-12)
}

func TestStructureFunctionWorkerCountInvariance(t *testing.T) {
	a := assert.New(t)

	g := Grid{
		{0.5, 2.25, 4, 1},
		{3, 7.5, Missing(), 2},
		{9, 0.125, 6, 5.5},
		{1.75, 8, 2, 0.25},
	}
	single, err := StructureFunctionWithOptions(g, 2, &Options{Workers: 1})
	require.NoError(t, err)
	pooled, err := StructureFunctionWithOptions(g, 2, &Options{Workers: 8})
	require.NoError(t, err)

	single.Sort()
	pooled.Sort()
	require.Len(t, pooled, len(single))
	for i := range single {
		a.Equal(single[i][0], pooled[i][0])
		a.InDelta(single[i][1], pooled[i][1], 1e-12)
		a.InDelta(single[i][2], pooled[i][2], 1e-12)
	}
}

func TestStructureFunctionRejectsInvalidGrids(t *testing.T) {
	a := assert.New(t)

	_, err := StructureFunction(Grid{}, 1)
	a.Error(err)
	_, err = StructureFunction(Grid{{1, 2}, {3}}, 1)
	a.Error(err)
}

func TestStructureFunctionAllMissing(t *testing.T) {
	a := assert.New(t)

	rows, err := StructureFunction(Grid{{Missing(), Missing()}, {Missing(), Missing()}}, 1)
	require.NoError(t, err)
	a.Empty(rows)
}
