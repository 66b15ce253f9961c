package raster

import (
	"errors"
	"math"
)

// ErrMaxPixelsExceeded is returned by strict reductions over grids larger
// than their pixel budget.
var ErrMaxPixelsExceeded = errors.New("raster: reduction exceeds maxPixels budget")

// ReduceOptions controls spatial reductions.
//
// BestEffort reductions never fail on the pixel budget: the grid is strided
// so the visited pixel count stays within MaxPixels, trading precision for
// completion. Strict reductions error out instead. Fallback is the value
// reported when no valid pixel remains (empty composites reduce to it).
type ReduceOptions struct {
	BestEffort bool
	MaxPixels  int64
	Fallback   float64
}

// DefaultMaxPixels mirrors the hand-picked cap used by the export and area
// reductions.
const DefaultMaxPixels = int64(1e10)

// RegionMean averages the valid pixels of a grid.
func RegionMean(grid [][]float64, opts ReduceOptions) (float64, error) {
	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}

	maxPixels := opts.MaxPixels
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	stride := 1
	total := int64(width) * int64(height)
	if total > maxPixels {
		if !opts.BestEffort {
			return 0, ErrMaxPixelsExceeded
		}
		stride = int(math.Ceil(math.Sqrt(float64(total) / float64(maxPixels))))
	}

	var sum float64
	var count int64
	for y := 0; y < height; y += stride {
		for x := 0; x < width; x += stride {
			value := grid[y][x]
			if math.IsNaN(value) {
				continue
			}
			sum += value
			count++
		}
	}

	if count == 0 {
		return opts.Fallback, nil
	}
	return sum / float64(count), nil
}

// CountPixels counts valid pixels per predicate under the same budget rules
// as RegionMean.
func CountPixels(grid [][]float64, opts ReduceOptions, match func(float64) bool) (int64, error) {
	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}

	maxPixels := opts.MaxPixels
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	if total := int64(width) * int64(height); total > maxPixels && !opts.BestEffort {
		return 0, ErrMaxPixelsExceeded
	}

	var count int64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			value := grid[y][x]
			if math.IsNaN(value) {
				continue
			}
			if match(value) {
				count++
			}
		}
	}
	return count, nil
}
