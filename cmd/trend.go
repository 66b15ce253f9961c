package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/geosentry/landcover-cli/internal/delivery"
	"github.com/geosentry/landcover-cli/internal/trend"
	"github.com/spf13/cobra"
)

var (
	flagStartYear int
	flagEndYear   int
	flagWorkers   int
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Compute yearly NDVI/NDBI means and render trend charts",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := delivery.RunTrend(cmd.Context(), delivery.TrendOptions{
			Country:       flagCountry,
			Level1:        flagLevel1,
			Level2:        flagLevel2,
			StartYear:     flagStartYear,
			EndYear:       flagEndYear,
			MaxCloudCover: flagCloud,
			Workers:       flagWorkers,
		})
		if err != nil {
			return err
		}

		color.Green("\nIndex trend %d-%d, %s", flagStartYear, flagEndYear, result.Region.Level2)
		fmt.Print(trend.Format(result.Series))
		fmt.Printf("\nNDVI chart: %s\nNDBI chart: %s\nseries CSV: %s\n",
			result.NDVIChart, result.NDBIChart, result.CSVPath)
		return nil
	},
}

func init() {
	trendCmd.Flags().IntVar(&flagStartYear, "start", 2016, "first year of the series")
	trendCmd.Flags().IntVar(&flagEndYear, "end", 2023, "last year of the series")
	trendCmd.Flags().IntVar(&flagWorkers, "workers", 4, "parallel composite loads")
	rootCmd.AddCommand(trendCmd)
}
