package output

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/geosentry/landcover-cli/internal/properties"
	"github.com/geosentry/landcover-cli/internal/training"
)

// CreateClassifiedImage renders a classified grid as a paletted PNG under
// data/result. Nodata pixels stay transparent.
func CreateClassifiedImage(classified [][]float64, outputName string) (string, error) {
	height := len(classified)
	if height == 0 {
		return "", fmt.Errorf("empty classified grid")
	}
	width := len(classified[0])

	resultDir := filepath.Join(properties.RootPath(), "data", "result")
	if err := os.MkdirAll(resultDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create result directory: %w", err)
	}
	outputPath := filepath.Join(resultDir, outputName+".png")

	dc := gg.NewContext(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			value := classified[y][x]
			if math.IsNaN(value) {
				continue
			}
			classColor, ok := properties.ColorMap[training.Class(int(value)).String()]
			if !ok {
				classColor = properties.ColorMap["unknown"]
			}
			dc.SetRGB255(int(classColor.R), int(classColor.G), int(classColor.B))
			dc.SetPixel(x, y)
		}
	}

	if err := dc.SavePNG(outputPath); err != nil {
		return "", fmt.Errorf("failed to save classified image: %w", err)
	}
	return outputPath, nil
}
