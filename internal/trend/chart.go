package trend

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
)

const (
	chartWidth  = 900
	chartHeight = 500
	chartMargin = 60.0
)

// Chart draws one index of the series as a PNG line chart. pick selects the
// plotted value per year (NDVI or NDBI).
func Chart(series Series, title, outputPath string, pick func(IndexMeans) float64) error {
	if len(series) == 0 {
		return fmt.Errorf("nothing to chart: empty series")
	}

	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, means := range series {
		v := pick(means)
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	if maxV == minV {
		// flat series still needs a visible axis range
		maxV += 0.1
		minV -= 0.1
	}

	plotW := float64(chartWidth) - 2*chartMargin
	plotH := float64(chartHeight) - 2*chartMargin

	toXY := func(i int, v float64) (float64, float64) {
		x := chartMargin + plotW*float64(i)/float64(len(series)-1)
		y := chartMargin + plotH*(1-(v-minV)/(maxV-minV))
		return x, y
	}
	if len(series) == 1 {
		toXY = func(int, float64) (float64, float64) {
			return chartMargin + plotW/2, chartMargin + plotH/2
		}
	}

	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// axes
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1)
	dc.DrawLine(chartMargin, chartMargin, chartMargin, chartMargin+plotH)
	dc.DrawLine(chartMargin, chartMargin+plotH, chartMargin+plotW, chartMargin+plotH)
	dc.Stroke()

	dc.DrawStringAnchored(title, float64(chartWidth)/2, chartMargin/2, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.3f", maxV), chartMargin-8, chartMargin, 1, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.3f", minV), chartMargin-8, chartMargin+plotH, 1, 0.5)

	// series line
	dc.SetRGB(0.1, 0.45, 0.15)
	dc.SetLineWidth(2)
	for i, means := range series {
		x, y := toXY(i, pick(means))
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()

	// markers and year labels
	for i, means := range series {
		x, y := toXY(i, pick(means))
		dc.DrawCircle(x, y, 3)
		dc.Fill()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(fmt.Sprintf("%d", means.Year), x, chartMargin+plotH+16, 0.5, 0.5)
		dc.SetRGB(0.1, 0.45, 0.15)
	}

	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}
