package delivery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/geosentry/landcover-cli/internal/boundary"
	"github.com/geosentry/landcover-cli/internal/properties"
	"github.com/geosentry/landcover-cli/internal/raster"
	"github.com/geosentry/landcover-cli/internal/trend"
	"github.com/gocarina/gocsv"
)

// TrendOptions parameterizes the yearly index trend report.
type TrendOptions struct {
	Country       string
	Level1        string
	Level2        string
	StartYear     int
	EndYear       int
	MaxCloudCover float64
	Workers       int
}

// TrendResult holds the series and the rendered artifacts.
type TrendResult struct {
	Region    *boundary.Region
	Series    trend.Series
	NDVIChart string
	NDBIChart string
	CSVPath   string
}

// RunTrend computes the yearly NDVI/NDBI means over the region and renders
// both charts plus a CSV of the series.
func RunTrend(ctx context.Context, opts TrendOptions) (*TrendResult, error) {
	if opts.EndYear < opts.StartYear {
		return nil, fmt.Errorf("invalid year range %d-%d", opts.StartYear, opts.EndYear)
	}

	region, err := boundary.Resolve(properties.BoundaryShapefile(), opts.Country, opts.Level1, opts.Level2)
	if err != nil {
		return nil, err
	}

	years := make([]int, 0, opts.EndYear-opts.StartYear+1)
	for year := opts.StartYear; year <= opts.EndYear; year++ {
		years = append(years, year)
	}

	series := trend.YearlyMeans(years, opts.Workers, func(year int) (*raster.Raster, error) {
		return LoadComposite(ctx, region, year, opts.MaxCloudCover)
	})

	resultDir := filepath.Join(properties.RootPath(), "data", "result")
	if err := os.MkdirAll(resultDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create result directory: %w", err)
	}

	label := fmt.Sprintf("%s_%d_%d", strings.ToLower(strings.ReplaceAll(region.Level2, " ", "_")), opts.StartYear, opts.EndYear)
	result := &TrendResult{
		Region:    region,
		Series:    series,
		NDVIChart: filepath.Join(resultDir, label+"_ndvi.png"),
		NDBIChart: filepath.Join(resultDir, label+"_ndbi.png"),
		CSVPath:   filepath.Join(resultDir, label+"_trend.csv"),
	}

	title := fmt.Sprintf("NDVI %d-%d (%s)", opts.StartYear, opts.EndYear, region.Level2)
	if err := trend.Chart(series, title, result.NDVIChart, func(m trend.IndexMeans) float64 { return m.NDVI }); err != nil {
		return nil, err
	}
	title = fmt.Sprintf("NDBI %d-%d (%s)", opts.StartYear, opts.EndYear, region.Level2)
	if err := trend.Chart(series, title, result.NDBIChart, func(m trend.IndexMeans) float64 { return m.NDBI }); err != nil {
		return nil, err
	}

	file, err := os.Create(result.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create trend CSV: %w", err)
	}
	defer file.Close()
	if err := gocsv.MarshalFile(&series, file); err != nil {
		return nil, fmt.Errorf("failed to write trend CSV: %w", err)
	}

	return result, nil
}
