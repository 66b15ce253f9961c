package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/geosentry/landcover-cli/internal/properties"
	"github.com/geosentry/landcover-cli/internal/training"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// CreatePointsGeoJSON writes the labeled points as a FeatureCollection under
// data/result, one feature per point with its class and split draw attached.
func CreatePointsGeoJSON(points []training.Point, outputName string) (string, error) {
	resultDir := filepath.Join(properties.RootPath(), "data", "result")
	if err := os.MkdirAll(resultDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create result directory: %w", err)
	}
	outputPath := filepath.Join(resultDir, outputName+".geojson")

	collection := geojson.NewFeatureCollection()
	for _, point := range points {
		feature := geojson.NewFeature(orb.Point{point.Lon, point.Lat})
		feature.Properties = geojson.Properties{
			"class":  int(point.Class),
			"label":  point.Class.String(),
			"random": point.Random,
		}
		collection.Append(feature)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create GeoJSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(collection); err != nil {
		return "", fmt.Errorf("failed to encode GeoJSON: %w", err)
	}
	return outputPath, nil
}
