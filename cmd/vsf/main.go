package main

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	vsf "github.com/flywave/go-vsf"
)

var (
	order    int
	workers  int
	statName string
	center   bool
	nodata   float64
	output   string
)

var rootCmd = &cobra.Command{
	Use:   "vsf [raster]",
	Short: "Compute the n-th order velocity structure function of a 2D scalar field",
	Long: `vsf loads the first band of a GeoTIFF/COG raster, enumerates every pair of
grid points, groups the pairwise statistic by separation distance and writes
one CSV row per distance: distance, structure value (normalized by the field
variance) and its sample standard error.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVarP(&order, "order", "n", 1, "order of the structure function (exponent on the pairwise statistic)")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 0, "worker pool size (0 = number of CPUs)")
	rootCmd.Flags().StringVar(&statName, "stat", "difference", "pairwise statistic: difference or product")
	rootCmd.Flags().BoolVar(&center, "center", false, "subtract the global mean from the field before computing")
	rootCmd.Flags().Float64Var(&nodata, "nodata", -9999, "raster value marking missing samples")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output CSV path (default stdout)")
}

func run(cmd *cobra.Command, args []string) error {
	var pairStat vsf.PairStat
	switch statName {
	case "difference":
		pairStat = vsf.AbsDiff
	case "product":
		pairStat = vsf.Product
	default:
		return errors.Errorf("unknown statistic %q", statName)
	}

	grid, err := vsf.ReadRaster(args[0], nodata)
	if err != nil {
		return err
	}
	if center {
		grid.SubtractMean(workers)
	}

	rows, err := vsf.StructureFunctionWithOptions(grid, order, &vsf.Options{
		Workers: workers,
		Stat:    pairStat,
	})
	if err != nil {
		return err
	}
	rows.Sort()

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return errors.Wrapf(err, "create %s", output)
		}
		defer f.Close()
		out = f
	}
	return writeCSV(out, rows)
}

func writeCSV(f *os.File, rows vsf.OutputRows) error {
	w := csv.NewWriter(f)
	if err := w.Write([]string{"distance", "structure", "uncertainty"}); err != nil {
		return err
	}
	record := make([]string, 3)
	for _, row := range rows {
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
