package raster

import (
	"fmt"
	"math"

	"github.com/airbusgeo/godal"
)

// Raster is an in-memory multi-band image with its georeferencing.
type Raster struct {
	Width      int
	Height     int
	Bands      map[string][][]float64
	Transform  [6]float64
	Projection string
}

// FromDataset reads the named bands out of a godal dataset, row by row.
// The dataset must carry at least len(bandNames) bands, in order.
func FromDataset(ds *godal.Dataset, bandNames []string) (*Raster, error) {
	bands := ds.Bands()
	if len(bands) < len(bandNames) {
		return nil, fmt.Errorf("dataset has %d bands, need %d", len(bands), len(bandNames))
	}

	width := ds.Structure().SizeX
	height := ds.Structure().SizeY

	raster := &Raster{
		Width:  width,
		Height: height,
		Bands:  make(map[string][][]float64, len(bandNames)),
	}

	transform, err := ds.GeoTransform()
	if err != nil {
		return nil, fmt.Errorf("failed to get GeoTransform: %w", err)
	}
	raster.Transform = transform
	if sr := ds.SpatialRef(); sr != nil {
		if wkt, err := sr.WKT(); err == nil {
			raster.Projection = wkt
		}
	}

	for i, name := range bandNames {
		band := bands[i]
		data := make([][]float64, height)
		for y := 0; y < height; y++ {
			data[y] = make([]float64, width)
			if err := band.Read(0, y, data[y], width, 1); err != nil {
				return nil, fmt.Errorf("failed to read data for band %s: %w", name, err)
			}
		}
		raster.Bands[name] = data
	}

	return raster, nil
}

// Band returns the grid for one band name.
func (r *Raster) Band(name string) ([][]float64, error) {
	grid, ok := r.Bands[name]
	if !ok {
		return nil, fmt.Errorf("raster has no band %s", name)
	}
	return grid, nil
}

// NewGrid allocates a Height×Width grid filled with NaN.
func NewGrid(width, height int) [][]float64 {
	grid := make([][]float64, height)
	for y := range grid {
		grid[y] = make([]float64, width)
		for x := range grid[y] {
			grid[y][x] = math.NaN()
		}
	}
	return grid
}
