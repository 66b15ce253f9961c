package trend

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gammazero/workerpool"
	"github.com/geosentry/landcover-cli/internal/logging"
	"github.com/geosentry/landcover-cli/internal/raster"
	"github.com/schollz/progressbar/v3"
)

// IndexMeans is the regional NDVI/NDBI mean for one year.
type IndexMeans struct {
	Year int     `csv:"year"`
	NDVI float64 `csv:"ndvi"`
	NDBI float64 `csv:"ndbi"`
}

// Series is a year-ordered sequence of index means.
type Series []IndexMeans

// meanFallback is reported for years whose composite came back empty or
// whose reduction found no valid pixel.
const meanFallback = 0

// YearlyMeans computes the regional NDVI and NDBI means for every year,
// fanning the composite loads out over a worker pool. A year whose load
// fails is reported at the fallback value rather than failing the series;
// the trend chart is a report, not a gate.
func YearlyMeans(years []int, workers int, load func(year int) (*raster.Raster, error)) Series {
	if workers < 1 {
		workers = 1
	}

	wp := workerpool.New(workers)
	bar := progressbar.Default(int64(len(years)), "Computing yearly index means")

	var mu sync.Mutex
	series := make(Series, 0, len(years))

	for _, year := range years {
		year := year
		wp.Submit(func() {
			defer bar.Add(1)
			means := IndexMeans{Year: year, NDVI: meanFallback, NDBI: meanFallback}

			composite, err := load(year)
			if err != nil {
				logging.L().Warnf("year %d composite unavailable, using fallback: %v", year, err)
			} else {
				means.NDVI = indexMean(composite, raster.NDVI, year, "ndvi")
				means.NDBI = indexMean(composite, raster.NDBI, year, "ndbi")
			}

			mu.Lock()
			series = append(series, means)
			mu.Unlock()
		})
	}
	wp.StopWait()

	sort.Slice(series, func(i, j int) bool { return series[i].Year < series[j].Year })
	return series
}

func indexMean(composite *raster.Raster, index func(*raster.Raster) ([][]float64, error), year int, name string) float64 {
	grid, err := index(composite)
	if err != nil {
		logging.L().Warnf("year %d %s unavailable, using fallback: %v", year, name, err)
		return meanFallback
	}
	mean, err := raster.RegionMean(grid, raster.ReduceOptions{
		BestEffort: true,
		Fallback:   meanFallback,
	})
	if err != nil {
		return meanFallback
	}
	return mean
}

// Format renders the series as an aligned table.
func Format(series Series) string {
	var sb strings.Builder
	sb.WriteString("year        ndvi        ndbi\n")
	for _, means := range series {
		sb.WriteString(fmt.Sprintf("%d  %10.4f  %10.4f\n", means.Year, means.NDVI, means.NDBI))
	}
	return sb.String()
}
