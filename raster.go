package vsf

import (
	"image"

	"github.com/pkg/errors"

	vec2d "github.com/flywave/go3d/float64/vec2"

	"github.com/flywave/go-cog"
	"github.com/flywave/go-geo"
)

var epsg4326 geo.Proj

func init() {
	epsg4326 = geo.NewProj(4326)
}

// ReadRaster loads the first band of a GeoTIFF/COG raster as a Grid,
// converting the given no-data value to the missing sentinel. Pass NaN as
// nodata for rasters that already mark gaps with NaN.
func ReadRaster(path string, nodata float64) (Grid, error) {
	reader := cog.Read(path)
	if reader == nil {
		return nil, errors.Errorf("read raster %s", path)
	}
	si := reader.GetSize(0)
	width, height := int(si[0]), int(si[1])
	if width == 0 || height == 0 {
		return nil, errors.Errorf("raster %s has empty extent", path)
	}

	var data []float64
	switch band := reader.Data[0].(type) {
	case []float64:
		data = band
	case []float32:
		data = make([]float64, len(band))
		for i, v := range band {
			data[i] = float64(v)
		}
	default:
		return nil, errors.Errorf("raster %s: unsupported band type %T", path, band)
	}
	if len(data) < width*height {
		return nil, errors.Errorf("raster %s: band holds %d samples, expected %d", path, len(data), width*height)
	}
	return GridFromFlat(data, width, height, nodata), nil
}

// WriteRaster stores a Grid as a single-band LZW GeoTIFF covering bounds in
// EPSG:4326, converting missing samples to the given no-data value.
func WriteRaster(path string, g Grid, bounds vec2d.Rect, nodata float64) error {
	if err := g.validate(); err != nil {
		return err
	}
	height, width := g.Dims()

	data := make([]float64, 0, height*width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := g[y][x]
			if IsMissing(v) {
				v = nodata
			}
			data = append(data, v)
		}
	}

	si := [2]uint32{uint32(width), uint32(height)}
	rect := image.Rect(0, 0, width, height)
	src := cog.NewSource(data, &rect, cog.CTLZW)
	return errors.Wrapf(cog.WriteTile(path, src, bounds, epsg4326, si, nil), "write raster %s", path)
}
