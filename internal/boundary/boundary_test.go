package boundary

import (
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestShapefile(t *testing.T, records []struct {
	country, level1, level2 string
	points                  []shp.Point
}) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "admin.shp")
	writer, err := shp.Create(path, shp.POLYGON)
	require.NoError(t, err)

	fields := []shp.Field{
		shp.StringField("NAME_0", 50),
		shp.StringField("NAME_1", 50),
		shp.StringField("NAME_2", 50),
	}
	writer.SetFields(fields)

	for i, rec := range records {
		writer.Write(&shp.Polygon{
			NumParts:  1,
			NumPoints: int32(len(rec.points)),
			Parts:     []int32{0},
			Points:    rec.points,
		})
		writer.WriteAttribute(i, 0, rec.country)
		writer.WriteAttribute(i, 1, rec.level1)
		writer.WriteAttribute(i, 2, rec.level2)
	}
	writer.Close()
	return path
}

func squareAround(lon, lat, half float64) []shp.Point {
	return []shp.Point{
		{X: lon - half, Y: lat - half},
		{X: lon - half, Y: lat + half},
		{X: lon + half, Y: lat + half},
		{X: lon + half, Y: lat - half},
		{X: lon - half, Y: lat - half},
	}
}

func TestResolveSingleMatch(t *testing.T) {
	path := writeTestShapefile(t, []struct {
		country, level1, level2 string
		points                  []shp.Point
	}{
		{"Pakistan", "Punjab", "Faisalabad", squareAround(73.0, 31.4, 0.5)},
		{"Pakistan", "Punjab", "Lahore", squareAround(74.3, 31.5, 0.5)},
	})

	region, err := Resolve(path, "Pakistan", "Punjab", "Faisalabad")
	require.NoError(t, err)
	assert.Equal(t, "Faisalabad", region.Level2)
	require.Len(t, region.Geometry, 1)

	bound := region.Bound()
	assert.InDelta(t, 72.5, bound.Min[0], 1e-9)
	assert.InDelta(t, 31.9, bound.Max[1], 1e-9)

	centroid, err := region.Centroid()
	require.NoError(t, err)
	assert.InDelta(t, 73.0, centroid[0], 1e-9)
	assert.InDelta(t, 31.4, centroid[1], 1e-9)
}

func TestResolveNoMatch(t *testing.T) {
	path := writeTestShapefile(t, []struct {
		country, level1, level2 string
		points                  []shp.Point
	}{
		{"Pakistan", "Punjab", "Faisalabad", squareAround(73.0, 31.4, 0.5)},
	})

	_, err := Resolve(path, "Pakistan", "Punjab", "Multan")
	assert.ErrorIs(t, err, ErrRegionNotFound)
}

func TestResolveAmbiguousMatch(t *testing.T) {
	path := writeTestShapefile(t, []struct {
		country, level1, level2 string
		points                  []shp.Point
	}{
		{"Pakistan", "Punjab", "Faisalabad", squareAround(73.0, 31.4, 0.5)},
		{"Pakistan", "Punjab", "Faisalabad", squareAround(73.1, 31.5, 0.5)},
	})

	_, err := Resolve(path, "Pakistan", "Punjab", "Faisalabad")
	assert.ErrorIs(t, err, ErrRegionAmbiguous)
}
