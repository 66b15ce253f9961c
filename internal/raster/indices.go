package raster

import "math"

// NormalizedDifference computes (a-b)/(a+b) pixel-wise. Zero denominators
// map to NaN so that downstream reductions skip them as nodata; everything
// else lands in [-1, 1].
func NormalizedDifference(a, b [][]float64) [][]float64 {
	height := len(a)
	width := 0
	if height > 0 {
		width = len(a[0])
	}

	result := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sum := a[y][x] + b[y][x]
			if sum == 0 || math.IsNaN(sum) {
				continue
			}
			result[y][x] = (a[y][x] - b[y][x]) / sum
		}
	}
	return result
}

// NDVI is the vegetation index (B08-B04)/(B08+B04).
func NDVI(r *Raster) ([][]float64, error) {
	nir, err := r.Band("B08")
	if err != nil {
		return nil, err
	}
	red, err := r.Band("B04")
	if err != nil {
		return nil, err
	}
	return NormalizedDifference(nir, red), nil
}

// NDBI is the built-up index (B11-B08)/(B11+B08).
func NDBI(r *Raster) ([][]float64, error) {
	swir, err := r.Band("B11")
	if err != nil {
		return nil, err
	}
	nir, err := r.Band("B08")
	if err != nil {
		return nil, err
	}
	return NormalizedDifference(swir, nir), nil
}
