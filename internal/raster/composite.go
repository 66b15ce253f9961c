package raster

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyCollection is returned when a composite is requested over zero
// scenes. Callers are expected to treat the missing composite as all-nodata
// and fall back accordingly.
var ErrEmptyCollection = errors.New("raster: no scenes to composite")

// SCL classes masked out before compositing: 0 no-data, 3 cloud shadow,
// 8 cloud medium, 9 cloud high, 10 thin cirrus.
func sclMasked(scl float64) bool {
	return scl == 0 || scl == 3 || scl == 8 || scl == 9 || scl == 10
}

// MedianComposite reduces a stack of scenes to a per-pixel, per-band median.
// Pixels flagged by the SCL band are dropped from the stack before the
// median; a pixel with no usable observation stays NaN. All scenes must
// share dimensions; georeferencing is taken from the first scene.
func MedianComposite(scenes []*Raster, bandNames []string) (*Raster, error) {
	if len(scenes) == 0 {
		return nil, ErrEmptyCollection
	}

	first := scenes[0]
	for _, scene := range scenes[1:] {
		if scene.Width != first.Width || scene.Height != first.Height {
			return nil, errors.New("raster: scene dimensions differ")
		}
	}

	composite := &Raster{
		Width:      first.Width,
		Height:     first.Height,
		Bands:      make(map[string][][]float64, len(bandNames)),
		Transform:  first.Transform,
		Projection: first.Projection,
	}

	for _, name := range bandNames {
		if name == "SCL" {
			continue
		}
		grid := NewGrid(first.Width, first.Height)
		samples := make([]float64, 0, len(scenes))
		for y := 0; y < first.Height; y++ {
			for x := 0; x < first.Width; x++ {
				samples = samples[:0]
				for _, scene := range scenes {
					band, err := scene.Band(name)
					if err != nil {
						return nil, err
					}
					value := band[y][x]
					if math.IsNaN(value) {
						continue
					}
					if scl, err := scene.Band("SCL"); err == nil && sclMasked(scl[y][x]) {
						continue
					}
					samples = append(samples, value)
				}
				if len(samples) > 0 {
					grid[y][x] = median(samples)
				}
			}
		}
		composite.Bands[name] = grid
	}

	return composite, nil
}

// median mutates its argument while sorting.
func median(values []float64) float64 {
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return (values[mid-1] + values[mid]) / 2
}
