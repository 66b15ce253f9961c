package accuracy

import (
	"fmt"
	"math"
	"strings"

	"github.com/geosentry/landcover-cli/internal/raster"
	"github.com/geosentry/landcover-cli/internal/training"
)

// ConfusionMatrix cross-tabulates reference labels (rows) against predicted
// labels (columns).
type ConfusionMatrix struct {
	Classes int
	Counts  [][]int
}

func NewConfusionMatrix(classes int) *ConfusionMatrix {
	counts := make([][]int, classes)
	for i := range counts {
		counts[i] = make([]int, classes)
	}
	return &ConfusionMatrix{Classes: classes, Counts: counts}
}

// Add records one (reference, predicted) pair. Labels outside the class
// range are ignored.
func (m *ConfusionMatrix) Add(reference, predicted int) {
	if reference < 0 || reference >= m.Classes || predicted < 0 || predicted >= m.Classes {
		return
	}
	m.Counts[reference][predicted]++
}

// Total is the number of recorded pairs.
func (m *ConfusionMatrix) Total() int {
	total := 0
	for _, row := range m.Counts {
		for _, n := range row {
			total += n
		}
	}
	return total
}

// OverallAccuracy is trace divided by total. Zero pairs yield zero rather
// than NaN.
func (m *ConfusionMatrix) OverallAccuracy() float64 {
	total := m.Total()
	if total == 0 {
		return 0
	}
	trace := 0
	for i := 0; i < m.Classes; i++ {
		trace += m.Counts[i][i]
	}
	return float64(trace) / float64(total)
}

// String renders the matrix as a fixed-width table with reference classes
// down the side.
func (m *ConfusionMatrix) String() string {
	var sb strings.Builder
	sb.WriteString("ref\\pred")
	for c := 0; c < m.Classes; c++ {
		sb.WriteString(fmt.Sprintf("%12s", training.Class(c)))
	}
	sb.WriteString("\n")
	for r := 0; r < m.Classes; r++ {
		sb.WriteString(fmt.Sprintf("%-8s", training.Class(r)))
		for c := 0; c < m.Classes; c++ {
			sb.WriteString(fmt.Sprintf("%12d", m.Counts[r][c]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Build cross-tabulates parallel prediction/reference slices.
func Build(predicted, reference []int, classes int) (*ConfusionMatrix, error) {
	if len(predicted) != len(reference) {
		return nil, fmt.Errorf("prediction count %d does not match reference count %d", len(predicted), len(reference))
	}
	matrix := NewConfusionMatrix(classes)
	for i := range predicted {
		matrix.Add(reference[i], predicted[i])
	}
	return matrix, nil
}

// Assess samples the classified grid at every validation point and builds
// the confusion matrix from (predicted, reference) pairs. Points outside
// the grid or over nodata predictions are skipped.
func Assess(classified [][]float64, transform [6]float64, validation []training.Point) (*ConfusionMatrix, int) {
	height := len(classified)
	width := 0
	if height > 0 {
		width = len(classified[0])
	}

	matrix := NewConfusionMatrix(len(training.AllClasses))
	skipped := 0
	for _, point := range validation {
		x, y, err := raster.LonLatToPixel(transform, point.Lon, point.Lat, width, height)
		if err != nil {
			skipped++
			continue
		}
		predicted := classified[y][x]
		if math.IsNaN(predicted) {
			skipped++
			continue
		}
		matrix.Add(int(point.Class), int(predicted))
	}
	return matrix, skipped
}
