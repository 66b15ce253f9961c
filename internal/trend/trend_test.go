package trend

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/geosentry/landcover-cli/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatComposite(b08, b04, b11 float64) *raster.Raster {
	return &raster.Raster{
		Width:  1,
		Height: 1,
		Bands: map[string][][]float64{
			"B08": {{b08}},
			"B04": {{b04}},
			"B11": {{b11}},
		},
	}
}

func TestYearlyMeansOrderedAndFallsBack(t *testing.T) {
	load := func(year int) (*raster.Raster, error) {
		switch year {
		case 2017:
			return nil, raster.ErrEmptyCollection
		default:
			return flatComposite(0.8, 0.2, 0.4), nil
		}
	}

	series := YearlyMeans([]int{2018, 2016, 2017}, 2, load)

	require.Len(t, series, 3)
	assert.Equal(t, []int{2016, 2017, 2018}, []int{series[0].Year, series[1].Year, series[2].Year})

	// ndvi = (0.8-0.2)/(0.8+0.2), ndbi = (0.4-0.8)/(0.4+0.8)
	assert.InDelta(t, 0.6, series[0].NDVI, 1e-9)
	assert.InDelta(t, -1.0/3.0, series[0].NDBI, 1e-9)

	// 2017 had no scenes: fallback 0 for both indices
	assert.Equal(t, 0.0, series[1].NDVI)
	assert.Equal(t, 0.0, series[1].NDBI)
}

func TestFormat(t *testing.T) {
	table := Format(Series{
		{Year: 2016, NDVI: 0.41, NDBI: -0.12},
		{Year: 2023, NDVI: 0.37, NDBI: -0.05},
	})
	assert.Contains(t, table, "2016")
	assert.Contains(t, table, "0.4100")
	assert.Contains(t, table, "-0.0500")
}

func TestChartWritesPNG(t *testing.T) {
	series := Series{}
	for year := 2016; year <= 2023; year++ {
		series = append(series, IndexMeans{Year: year, NDVI: 0.3 + float64(year-2016)*0.01})
	}

	path := filepath.Join(t.TempDir(), "ndvi.png")
	err := Chart(series, fmt.Sprintf("NDVI %d-%d", 2016, 2023), path, func(m IndexMeans) float64 { return m.NDVI })
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestChartEmptySeries(t *testing.T) {
	err := Chart(nil, "NDVI", filepath.Join(t.TempDir(), "x.png"), func(m IndexMeans) float64 { return m.NDVI })
	require.Error(t, err)
}
