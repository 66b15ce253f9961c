package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/geosentry/landcover-cli/internal/delivery"
	"github.com/geosentry/landcover-cli/internal/training"
	"github.com/spf13/cobra"
)

var (
	flagYear         int
	flagSeed         int64
	flagTrees        int
	flagTileScale    float64
	flagMaxPixels    int64
	flagExport       bool
	flagExportFolder string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify land use for one year and report accuracy and per-class area",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := delivery.RunClassification(cmd.Context(), delivery.ClassificationOptions{
			Country:       flagCountry,
			Level1:        flagLevel1,
			Level2:        flagLevel2,
			Year:          flagYear,
			MaxCloudCover: flagCloud,
			Seed:          flagSeed,
			Trees:         flagTrees,
			TileScale:     flagTileScale,
			MaxPixels:     flagMaxPixels,
			Export:        flagExport,
			ExportFolder:  flagExportFolder,
		})
		if err != nil {
			return err
		}

		color.Green("\nClassification %d, %s", result.Year, result.Region.Level2)
		fmt.Printf("model: %s\n", result.ModelID)
		fmt.Printf("split: %d training, %d validation (%d overlapping)\n",
			result.SplitReport.Training, result.SplitReport.Validation, result.SplitReport.Overlap)
		if result.SplitReport.Overlap > 0 {
			color.Yellow("warning: the split thresholds double-assign %d points to both sides", result.SplitReport.Overlap)
		}

		fmt.Printf("\nconfusion matrix (%d validation samples):\n%s", result.Matrix.Total(), result.Matrix)
		fmt.Printf("overall accuracy: %.4f\n\n", result.Matrix.OverallAccuracy())

		for _, class := range training.AllClasses {
			fmt.Printf("%-12s %6d km²\n", class, result.Areas.ByClass[class])
		}
		fmt.Printf("%-12s %6d km²\n", "total", result.Areas.TotalKm2)

		fmt.Printf("\nclassified image: %s\n", result.ImagePath)
		fmt.Printf("training points:  %s\n", result.PointsPath)
		if result.RasterPath != "" {
			fmt.Printf("exported raster:  %s (uploading...)\n", result.RasterPath)
			if err := <-result.ExportDone; err != nil {
				color.Yellow("upload failed: %v", err)
			} else {
				fmt.Println("upload complete")
			}
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().IntVar(&flagYear, "year", 2023, "calendar year to classify")
	classifyCmd.Flags().Int64Var(&flagSeed, "seed", 42, "seed for the train/validation random column")
	classifyCmd.Flags().IntVar(&flagTrees, "trees", 50, "random forest tree count")
	classifyCmd.Flags().Float64Var(&flagTileScale, "tile-scale", 16, "sampling parallelism hint passed to the model service")
	classifyCmd.Flags().Int64Var(&flagMaxPixels, "max-pixels", 1e10, "pixel budget for area reductions and export")
	classifyCmd.Flags().BoolVar(&flagExport, "export", false, "write and upload the classified GeoTIFF")
	classifyCmd.Flags().StringVar(&flagExportFolder, "export-folder", "landcover", "remote storage folder for exports")
	rootCmd.AddCommand(classifyCmd)
}
