package area

import (
	"math"

	"github.com/geosentry/landcover-cli/internal/raster"
	"github.com/geosentry/landcover-cli/internal/training"
)

// Report holds the rounded per-class areas for one classified raster.
type Report struct {
	Year     int
	ByClass  map[training.Class]int
	TotalKm2 int
}

// Row is the flat CSV shape of one class area.
type Row struct {
	Year    int    `csv:"year"`
	Class   string `csv:"class"`
	AreaKm2 int    `csv:"area_km2"`
}

// Rows flattens the report for CSV output, classes in label order.
func (r *Report) Rows() []Row {
	rows := make([]Row, 0, len(training.AllClasses))
	for _, class := range training.AllClasses {
		rows = append(rows, Row{Year: r.Year, Class: class.String(), AreaKm2: r.ByClass[class]})
	}
	return rows
}

// ClassAreaM2 sums the geodesic footprint of every pixel whose value equals
// the class index. The per-pixel area comes from the pixel's geographic
// footprint (cos-latitude scaled), not a flat scale factor.
func ClassAreaM2(classified [][]float64, transform [6]float64, class training.Class, opts raster.ReduceOptions) (float64, error) {
	height := len(classified)
	width := 0
	if height > 0 {
		width = len(classified[0])
	}

	maxPixels := opts.MaxPixels
	if maxPixels <= 0 {
		maxPixels = raster.DefaultMaxPixels
	}
	stride := 1
	if total := int64(width) * int64(height); total > maxPixels {
		if !opts.BestEffort {
			return 0, raster.ErrMaxPixelsExceeded
		}
		stride = int(math.Ceil(math.Sqrt(float64(total) / float64(maxPixels))))
	}

	// under a stride each visited pixel stands in for a stride x stride block
	var sum float64
	for y := 0; y < height; y += stride {
		pixelArea := raster.PixelAreaM2(transform, y) * float64(stride) * float64(stride)
		for x := 0; x < width; x += stride {
			value := classified[y][x]
			if math.IsNaN(value) {
				continue
			}
			if int(value) == int(class) {
				sum += pixelArea
			}
		}
	}
	return sum, nil
}

// Compute aggregates every class area in square kilometers, rounded to the
// nearest integer. The four class masks are mutually exclusive and cover the
// valid region, so the rounded areas partition the region total within
// rounding error.
func Compute(classified [][]float64, transform [6]float64, opts raster.ReduceOptions) (*Report, error) {
	report := &Report{ByClass: make(map[training.Class]int, len(training.AllClasses))}

	var totalM2 float64
	for _, class := range training.AllClasses {
		areaM2, err := ClassAreaM2(classified, transform, class, opts)
		if err != nil {
			return nil, err
		}
		report.ByClass[class] = int(math.Round(areaM2 / 1e6))
		totalM2 += areaM2
	}
	report.TotalKm2 = int(math.Round(totalM2 / 1e6))
	return report, nil
}
