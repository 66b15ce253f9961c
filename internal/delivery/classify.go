package delivery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/geosentry/landcover-cli/internal/accuracy"
	"github.com/geosentry/landcover-cli/internal/area"
	"github.com/geosentry/landcover-cli/internal/boundary"
	"github.com/geosentry/landcover-cli/internal/export"
	"github.com/geosentry/landcover-cli/internal/logging"
	"github.com/geosentry/landcover-cli/internal/ml"
	"github.com/geosentry/landcover-cli/internal/notification"
	"github.com/geosentry/landcover-cli/internal/properties"
	"github.com/geosentry/landcover-cli/internal/raster"
	"github.com/geosentry/landcover-cli/internal/sentinel"
	"github.com/geosentry/landcover-cli/internal/training"
	"github.com/geosentry/landcover-cli/output"
)

// ClassificationOptions parameterizes one year's classification run. Every
// stage receives what it needs from here or from the previous stage's
// return value; nothing is shared through package state.
type ClassificationOptions struct {
	Country       string
	Level1        string
	Level2        string
	Year          int
	MaxCloudCover float64
	Seed          int64
	Trees         int
	TileScale     float64
	MaxPixels     int64
	Export        bool
	ExportFolder  string
}

// ClassificationResult collects the outputs of one run. ExportDone is nil
// unless an export was requested; otherwise it delivers the upload outcome
// and must be drained before the process exits.
type ClassificationResult struct {
	Region      *boundary.Region
	Year        int
	SplitReport training.SplitReport
	ModelID     string
	Matrix      *accuracy.ConfusionMatrix
	Areas       *area.Report
	RasterPath  string
	ImagePath   string
	PointsPath  string
	ExportDone  <-chan error
}

// FeatureBands are the composite bands fed to the classifier: the full
// spectral stack, without the SCL mask band.
var FeatureBands = []string{"B02", "B03", "B04", "B08", "B11"}

// YearRange returns the [start, end) interval covering one calendar year.
func YearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

// RegionLabel builds the cache/file label for a region and year.
func RegionLabel(region *boundary.Region, year int) string {
	return fmt.Sprintf("%s_%d", strings.ToLower(strings.ReplaceAll(region.Level2, " ", "_")), year)
}

// LoadComposite searches, downloads and composites one year of scenes over
// the region.
func LoadComposite(ctx context.Context, region *boundary.Region, year int, maxCloudCover float64) (*raster.Raster, error) {
	start, end := YearRange(year)
	scenes, err := sentinel.SearchScenes(ctx, sentinel.SceneQuery{
		Start:         start,
		End:           end,
		MaxCloudCover: maxCloudCover,
		Bound:         region.Bound(),
	})
	if err != nil {
		return nil, fmt.Errorf("scene search for %d failed: %w", year, err)
	}
	logging.L().Infof("year %d: %d scenes under %.0f%% cloud cover", year, len(scenes), maxCloudCover)

	images, err := sentinel.GetSceneImages(ctx, region.Geometry, RegionLabel(region, year), scenes)
	if err != nil {
		return nil, fmt.Errorf("scene download for %d failed: %w", year, err)
	}
	defer func() {
		for _, ds := range images {
			ds.Close()
		}
	}()

	stack := make([]*raster.Raster, 0, len(images))
	for _, ds := range images {
		scene, err := raster.FromDataset(ds, sentinel.SpectralBands)
		if err != nil {
			return nil, err
		}
		stack = append(stack, scene)
	}

	return raster.MedianComposite(stack, sentinel.SpectralBands)
}

// RunClassification executes the full pipeline for one year: resolve the
// region, composite the year's scenes, sample the training points, train
// and apply the Random Forest, assess accuracy on the validation points,
// aggregate per-class areas, and optionally export the classified raster.
func RunClassification(ctx context.Context, opts ClassificationOptions) (*ClassificationResult, error) {
	region, err := boundary.Resolve(properties.BoundaryShapefile(), opts.Country, opts.Level1, opts.Level2)
	if err != nil {
		return nil, err
	}
	logging.L().Infof("resolved region %s/%s/%s", region.Country, region.Level1, region.Level2)

	composite, err := LoadComposite(ctx, region, opts.Year, opts.MaxCloudCover)
	if err != nil {
		return nil, err
	}

	points := training.AttachRandom(training.DefaultPoints(), opts.Seed)
	trainingPoints, validationPoints, splitReport := training.Split(points, training.TrainBelow, training.ValidAtLeast)
	if training.Overlapping(training.TrainBelow, training.ValidAtLeast) {
		logging.L().Warnf("train/validation bands overlap: %d points used on both sides", splitReport.Overlap)
	}

	sampleOpts := training.SampleOptions{Scale: 10, TileScale: opts.TileScale}
	samples, skipped, err := training.SamplePoints(composite, trainingPoints, FeatureBands, sampleOpts)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		logging.L().Warnf("%d training points skipped (outside region or nodata)", skipped)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("no usable training samples for %d", opts.Year)
	}

	trees := opts.Trees
	if trees <= 0 {
		trees = ml.DefaultTrees
	}
	client := ml.NewClient(properties.ModelServiceURL())
	modelID, err := client.Train(ctx, ml.BuildTrainRequest(samples, FeatureBands, trees, opts.TileScale))
	if err != nil {
		return nil, err
	}
	logging.L().Infof("trained model %s on %d samples", modelID, len(samples))

	classified, err := client.Classify(ctx, modelID, composite, FeatureBands)
	if err != nil {
		return nil, err
	}

	matrix, skippedValidation := accuracy.Assess(classified, composite.Transform, validationPoints)
	if skippedValidation > 0 {
		logging.L().Warnf("%d validation points skipped", skippedValidation)
	}

	maxPixels := opts.MaxPixels
	if maxPixels <= 0 {
		maxPixels = raster.DefaultMaxPixels
	}
	areas, err := area.Compute(classified, composite.Transform, raster.ReduceOptions{MaxPixels: maxPixels})
	if err != nil {
		return nil, err
	}
	areas.Year = opts.Year

	label := RegionLabel(region, opts.Year)
	imagePath, err := output.CreateClassifiedImage(classified, label)
	if err != nil {
		return nil, err
	}
	pointsPath, err := output.CreatePointsGeoJSON(points, label+"_points")
	if err != nil {
		return nil, err
	}

	result := &ClassificationResult{
		Region:      region,
		Year:        opts.Year,
		SplitReport: splitReport,
		ModelID:     modelID,
		Matrix:      matrix,
		Areas:       areas,
		ImagePath:   imagePath,
		PointsPath:  pointsPath,
	}

	if opts.Export {
		params := export.Params{
			Folder:     opts.ExportFolder,
			NamePrefix: label,
			Region:     region.Level2,
			Scale:      10,
			MaxPixels:  maxPixels,
		}
		rasterPath, err := export.WriteGeoTIFF(classified, composite.Transform, params)
		if err != nil {
			return nil, err
		}
		result.RasterPath = rasterPath
		result.ExportDone = export.Submit(export.BuildJob(params, rasterPath))
	}

	notification.SendDiscordSuccessNotification(fmt.Sprintf(
		"Classification %d complete for %s: overall accuracy %.3f",
		opts.Year, region.Level2, matrix.OverallAccuracy()))
	return result, nil
}
