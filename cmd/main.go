package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	bannercolor "github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagCountry string
	flagLevel1  string
	flagLevel2  string
	flagCloud   float64
)

var rootCmd = &cobra.Command{
	Use:   "landcover",
	Short: "Land-use classification over an administrative region from Sentinel-2 imagery",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		printBanner()
	},
}

func printBanner() {
	banner := figure.NewFigure("Landcover", "isometric1", true)
	bannercolor.Cyan(banner.String())
	fmt.Println()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCountry, "country", "Pakistan", "country name (NAME_0)")
	rootCmd.PersistentFlags().StringVar(&flagLevel1, "province", "Punjab", "first-level admin name (NAME_1)")
	rootCmd.PersistentFlags().StringVar(&flagLevel2, "district", "Faisalabad", "second-level admin name (NAME_2)")
	rootCmd.PersistentFlags().Float64Var(&flagCloud, "cloud", 10, "maximum scene cloud cover percentage (strict)")
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		// fall back to the parent directory, the layout used in development
		godotenv.Load("../.env")
	}

	if err := rootCmd.Execute(); err != nil {
		bannercolor.Red("Error: %s", err.Error())
		os.Exit(1)
	}
}
