package boundary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

var (
	ErrRegionNotFound  = errors.New("boundary: no region matches the given names")
	ErrRegionAmbiguous = errors.New("boundary: more than one region matches the given names")
)

// Field names follow the GADM level-2 attribute table.
const (
	countryField = "NAME_0"
	level1Field  = "NAME_1"
	level2Field  = "NAME_2"
)

// Region is a resolved administrative unit.
type Region struct {
	Country  string
	Level1   string
	Level2   string
	Geometry orb.MultiPolygon
}

// Bound returns the region's bounding box in lon/lat.
func (r Region) Bound() orb.Bound {
	return r.Geometry.Bound()
}

// Centroid returns the planar centroid of the region polygon.
func (r Region) Centroid() (orb.Point, error) {
	centroid, area := planar.CentroidArea(r.Geometry)
	if area <= 0 {
		return orb.Point{}, errors.New("boundary: degenerate region geometry")
	}
	return centroid, nil
}

// Resolve scans the boundary shapefile for the administrative unit matching
// all three name fields exactly. Zero matches and multiple matches are both
// hard failures: downstream stages have no defined behavior for an ambiguous
// region.
func Resolve(shpPath, country, level1, level2 string) (*Region, error) {
	reader, err := shp.Open(shpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open boundary shapefile %s: %w", shpPath, err)
	}
	defer reader.Close()

	fields := reader.Fields()
	fieldIdx := make(map[string]int, len(fields))
	for i, f := range fields {
		name := strings.TrimRight(f.String(), "\x00")
		fieldIdx[strings.ToUpper(name)] = i
	}
	for _, required := range []string{countryField, level1Field, level2Field} {
		if _, ok := fieldIdx[required]; !ok {
			return nil, fmt.Errorf("boundary shapefile is missing attribute %s", required)
		}
	}

	var match *Region
	for reader.Next() {
		_, shape := reader.Shape()

		if !attributeEquals(reader, fieldIdx[countryField], country) ||
			!attributeEquals(reader, fieldIdx[level1Field], level1) ||
			!attributeEquals(reader, fieldIdx[level2Field], level2) {
			continue
		}

		geometry, err := shapeToMultiPolygon(shape)
		if err != nil {
			return nil, fmt.Errorf("invalid geometry for %s/%s/%s: %w", country, level1, level2, err)
		}
		if match != nil {
			return nil, fmt.Errorf("%w: %s/%s/%s", ErrRegionAmbiguous, country, level1, level2)
		}
		match = &Region{
			Country:  country,
			Level1:   level1,
			Level2:   level2,
			Geometry: geometry,
		}
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan boundary shapefile: %w", err)
	}

	if match == nil {
		return nil, fmt.Errorf("%w: %s/%s/%s", ErrRegionNotFound, country, level1, level2)
	}
	return match, nil
}

func attributeEquals(reader *shp.Reader, idx int, want string) bool {
	val := strings.TrimRight(reader.Attribute(idx), "\x00")
	return strings.TrimSpace(val) == want
}

// shapeToMultiPolygon converts a shapefile polygon record into an orb
// geometry. Shapefile polygons store all rings in one part list; rings are
// kept in order and grouped into a single polygon per part here, which is
// sufficient for administrative outlines.
func shapeToMultiPolygon(shape shp.Shape) (orb.MultiPolygon, error) {
	polygon, ok := shape.(*shp.Polygon)
	if !ok {
		return nil, fmt.Errorf("unexpected shape type %T", shape)
	}

	numParts := len(polygon.Parts)
	if numParts == 0 {
		return nil, errors.New("polygon record has no parts")
	}

	var multi orb.MultiPolygon
	for p := 0; p < numParts; p++ {
		start := int(polygon.Parts[p])
		end := len(polygon.Points)
		if p+1 < numParts {
			end = int(polygon.Parts[p+1])
		}
		if end <= start {
			continue
		}
		ring := make(orb.Ring, 0, end-start)
		for _, pt := range polygon.Points[start:end] {
			ring = append(ring, orb.Point{pt.X, pt.Y})
		}
		multi = append(multi, orb.Polygon{ring})
	}
	if len(multi) == 0 {
		return nil, errors.New("polygon record has no usable rings")
	}
	return multi, nil
}
