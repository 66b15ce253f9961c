package main

import (
	"fmt"
	"os"

	"github.com/airbusgeo/godal"
	"github.com/fatih/color"
	"github.com/geosentry/landcover-cli/internal/area"
	"github.com/geosentry/landcover-cli/internal/raster"
	"github.com/geosentry/landcover-cli/internal/training"
	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var (
	flagAreaYear      int
	flagAreaMaxPixels int64
	flagAreaCSV       string
)

var areaCmd = &cobra.Command{
	Use:   "area <classified.tif>",
	Short: "Aggregate per-class area from a classified raster",
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

		report, err := area.Compute(classified, classifiedRaster.Transform, raster.ReduceOptions{MaxPixels: flagAreaMaxPixels})
		if err != nil {
			return err
		}
		report.Year = flagAreaYear

		color.Green("\nPer-class area, %s", args[0])
		for _, class := range training.AllClasses {
			fmt.Printf("%-12s %6d km²\n", class, report.ByClass[class])
		}
		fmt.Printf("%-12s %6d km²\n", "total", report.TotalKm2)

		if flagAreaCSV != "" {
			file, err := os.Create(flagAreaCSV)
			if err != nil {
				return fmt.Errorf("failed to create area CSV: %w", err)
			}
			defer file.Close()
			rows := report.Rows()
			if err := gocsv.MarshalFile(&rows, file); err != nil {
				return fmt.Errorf("failed to write area CSV: %w", err)
			}
			fmt.Printf("\narea CSV: %s\n", flagAreaCSV)
		}
		return nil
	},
}

func init() {
	areaCmd.Flags().IntVar(&flagAreaYear, "year", 0, "year recorded in the CSV output")
	areaCmd.Flags().Int64Var(&flagAreaMaxPixels, "max-pixels", 1e10, "pixel budget for the reduction")
	areaCmd.Flags().StringVar(&flagAreaCSV, "csv", "", "optional CSV output path")
	rootCmd.AddCommand(areaCmd)
}
