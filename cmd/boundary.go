package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/geosentry/landcover-cli/internal/boundary"
	"github.com/geosentry/landcover-cli/internal/properties"
	"github.com/spf13/cobra"
)

var boundaryCmd = &cobra.Command{
	Use:   "boundary",
	Short: "Resolve the target administrative region and print its extent",
	RunE: func(cmd *cobra.Command, args []string) error {
		region, err := boundary.Resolve(properties.BoundaryShapefile(), flagCountry, flagLevel1, flagLevel2)
		if err != nil {
			return err
		}

		color.Green("\nResolved %s / %s / %s", region.Country, region.Level1, region.Level2)
		bound := region.Bound()
		fmt.Printf("bbox: [%.5f, %.5f, %.5f, %.5f]\n", bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1])

		centroid, err := region.Centroid()
		if err != nil {
			return err
		}
		fmt.Printf("centroid: %.5f, %.5f\n", centroid[0], centroid[1])
		fmt.Printf("polygons: %d\n", len(region.Geometry))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boundaryCmd)
}
