package training

import (
	"math"
	"testing"

	"github.com/geosentry/landcover-cli/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitThresholdBands(t *testing.T) {
	points := []Point{
		{Class: Urban, Random: 0.05},
		{Class: Urban, Random: 0.29},
		{Class: Water, Random: 0.30},
		{Class: Water, Random: 0.55},
		{Class: Water, Random: 0.69},
		{Class: Vegetation, Random: 0.70},
		{Class: Vegetation, Random: 0.95},
	}

	training, validation, report := Split(points, TrainBelow, ValidAtLeast)

	// random < 0.3: training only
	assert.Contains(t, training, points[0])
	assert.NotContains(t, validation, points[0])

	// random >= 0.7: validation only
	assert.Contains(t, validation, points[6])
	assert.NotContains(t, training, points[6])

	// [0.3, 0.7): both sides
	for _, p := range points[2:5] {
		assert.Contains(t, training, p)
		assert.Contains(t, validation, p)
	}

	assert.Equal(t, 5, report.Training)
	assert.Equal(t, 5, report.Validation)
	assert.Equal(t, 3, report.Overlap)
	assert.True(t, Overlapping(TrainBelow, ValidAtLeast))
	assert.False(t, Overlapping(0.7, 0.7))
}

func TestSplitFixedSeedIsReproducible(t *testing.T) {
	points := AttachRandom(DefaultPoints(), 42)
	again := AttachRandom(DefaultPoints(), 42)
	assert.Equal(t, points, again)

	for _, p := range points {
		assert.GreaterOrEqual(t, p.Random, 0.0)
		assert.Less(t, p.Random, 1.0)
	}

	training, validation, report := Split(points, TrainBelow, ValidAtLeast)
	assert.Equal(t, len(training), report.Training)
	assert.Equal(t, len(validation), report.Validation)
	assert.Equal(t, len(training)+len(validation)-report.Overlap, len(points))
}

func TestDefaultPointsClassBalance(t *testing.T) {
	points := DefaultPoints()
	counts := map[Class]int{}
	for _, p := range points {
		counts[p.Class]++
	}
	for _, class := range AllClasses {
		assert.Equal(t, 20, counts[class], "class %s", class)
	}
}

func TestSamplePointsSkipsOutOfBoundsAndNodata(t *testing.T) {
	composite := &raster.Raster{
		Width:  2,
		Height: 2,
		Bands: map[string][][]float64{
			"B08": {{0.5, math.NaN()}, {0.7, 0.8}},
			"B04": {{0.1, 0.2}, {0.3, 0.4}},
		},
		Transform: [6]float64{73.0, 0.1, 0, 31.5, 0, -0.1},
	}

	points := []Point{
		{Lon: 73.05, Lat: 31.45, Class: Vegetation}, // pixel (0,0)
		{Lon: 73.15, Lat: 31.45, Class: Water},      // pixel (1,0), NaN B08
		{Lon: 80.00, Lat: 31.45, Class: Urban},      // out of bounds
	}

	samples, skipped, err := SamplePoints(composite, points, []string{"B08", "B04"}, SampleOptions{Scale: 10, TileScale: 16})
	require.NoError(t, err)

	assert.Equal(t, 2, skipped)
	require.Len(t, samples, 1)
	assert.Equal(t, []float64{0.5, 0.1}, samples[0].Features)
	assert.Equal(t, Vegetation, samples[0].Class)
	assert.Equal(t, 0, samples[0].X)
	assert.Equal(t, 0, samples[0].Y)
}
