package raster

import (
	"fmt"
	"math"
)

// PixelToLonLat returns the center coordinate of pixel (x, y) under the
// given geotransform. The transform is expected in lon/lat (EPSG:4326), the
// projection all scene downloads request.
func PixelToLonLat(transform [6]float64, x, y int) (float64, float64) {
	lon := transform[0] + transform[1]*(float64(x)+0.5) + transform[2]*(float64(y)+0.5)
	lat := transform[3] + transform[4]*(float64(x)+0.5) + transform[5]*(float64(y)+0.5)
	return lon, lat
}

// LonLatToPixel inverts PixelToLonLat for axis-aligned transforms.
func LonLatToPixel(transform [6]float64, lon, lat float64, width, height int) (int, int, error) {
	if transform[1] == 0 || transform[5] == 0 {
		return 0, 0, fmt.Errorf("degenerate geotransform %v", transform)
	}
	col := int(math.Floor((lon - transform[0]) / transform[1]))
	row := int(math.Floor((lat - transform[3]) / transform[5]))
	if col < 0 || col >= width || row < 0 || row >= height {
		return 0, 0, fmt.Errorf("coordinate (%f, %f) is out of image bounds", lon, lat)
	}
	return col, row, nil
}

const earthRadiusMeters = 6_371_008.8

// PixelAreaM2 returns the ground footprint of one pixel in square meters,
// from the pixel's geographic footprint rather than a flat scale: the
// east-west extent shrinks with cos(latitude).
func PixelAreaM2(transform [6]float64, y int) float64 {
	_, lat := PixelToLonLat(transform, 0, y)
	metersPerDegree := 2 * math.Pi * earthRadiusMeters / 360

	widthMeters := math.Abs(transform[1]) * metersPerDegree * math.Cos(lat*math.Pi/180)
	heightMeters := math.Abs(transform[5]) * metersPerDegree
	return widthMeters * heightMeters
}
