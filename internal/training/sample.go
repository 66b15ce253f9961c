package training

import (
	"math"

	"github.com/geosentry/landcover-cli/internal/logging"
	"github.com/geosentry/landcover-cli/internal/raster"
)

// Sample pairs one point's composite feature vector with its label.
type Sample struct {
	Features []float64
	Class    Class
	Lon      float64
	Lat      float64
	X        int
	Y        int
}

// SampleOptions tunes point sampling. Scale is the nominal resolution in
// meters; TileScale is a parallelism hint carried through to the model
// service, never a correctness parameter.
type SampleOptions struct {
	Scale     int
	TileScale float64
}

// SamplePoints extracts the band values of a composite at every point
// location. Points falling outside the composite or on nodata pixels are
// skipped; the skip count is returned alongside the samples.
func SamplePoints(composite *raster.Raster, points []Point, bandNames []string, opts SampleOptions) ([]Sample, int, error) {
	if opts.TileScale > 1 {
		logging.L().Debugf("sampling with tileScale hint %g", opts.TileScale)
	}

	var skipped int
	samples := make([]Sample, 0, len(points))
	for _, point := range points {
		x, y, err := raster.LonLatToPixel(composite.Transform, point.Lon, point.Lat, composite.Width, composite.Height)
		if err != nil {
			skipped++
			continue
		}

		features := make([]float64, 0, len(bandNames))
		valid := true
		for _, name := range bandNames {
			band, err := composite.Band(name)
			if err != nil {
				return nil, 0, err
			}
			value := band[y][x]
			if math.IsNaN(value) {
				valid = false
				break
			}
			features = append(features, value)
		}
		if !valid {
			skipped++
			continue
		}

		samples = append(samples, Sample{
			Features: features,
			Class:    point.Class,
			Lon:      point.Lon,
			Lat:      point.Lat,
			X:        x,
			Y:        y,
		})
	}
	return samples, skipped, nil
}
