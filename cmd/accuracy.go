package main

import (
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/fatih/color"
	"github.com/geosentry/landcover-cli/internal/accuracy"
	"github.com/geosentry/landcover-cli/internal/raster"
	"github.com/geosentry/landcover-cli/internal/training"
	"github.com/spf13/cobra"
)

var flagAccuracySeed int64

var accuracyCmd = &cobra.Command{
	Use:   "accuracy <classified.tif>",
	Short: "Assess a classified raster against the validation point split",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		godal.RegisterAll()
		ds, err := godal.Open(args[0], godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
			if ec == godal.CE_Warning {
				return nil
			}
			return fmt.Errorf("gdal error %d: %s", code, msg)
		}))
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer ds.Close()

		classifiedRaster, err := raster.FromDataset(ds, []string{"class"})
		if err != nil {
			return err
		}
		classified, err := classifiedRaster.Band("class")
		if err != nil {
			return err
		}

		points := training.AttachRandom(training.DefaultPoints(), flagAccuracySeed)
		_, validation, report := training.Split(points, training.TrainBelow, training.ValidAtLeast)

		matrix, skipped := accuracy.Assess(classified, classifiedRaster.Transform, validation)

		color.Green("\nAccuracy assessment, %s", args[0])
		fmt.Printf("validation points: %d (%d shared with training)\n", report.Validation, report.Overlap)
		if skipped > 0 {
			fmt.Printf("skipped: %d points outside the raster or over nodata\n", skipped)
		}
		fmt.Printf("\n%s", matrix)
		fmt.Printf("overall accuracy: %.4f\n", matrix.OverallAccuracy())
		return nil
	},
}

func init() {
	accuracyCmd.Flags().Int64Var(&flagAccuracySeed, "seed", 42, "seed for the train/validation random column")
	rootCmd.AddCommand(accuracyCmd)
}
