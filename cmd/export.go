package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/geosentry/landcover-cli/internal/export"
	"github.com/spf13/cobra"
)

var (
	flagExportDestFolder string
	flagExportScale      int
	flagExportMaxPixels  int64
)

var exportCmd = &cobra.Command{
	Use:   "export <classified.tif>",
	Short: "Upload a classified raster to remote storage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		localPath := args[0]
		prefix := strings.TrimSuffix(filepath.Base(localPath), filepath.Ext(localPath))

		job := export.BuildJob(export.Params{
			Folder:     flagExportDestFolder,
			NamePrefix: prefix,
			Region:     flagLevel2,
			Scale:      flagExportScale,
			MaxPixels:  flagExportMaxPixels,
		}, localPath)

		// synchronous here: the command exists to perform this one upload
		if err := export.Upload(job); err != nil {
			return err
		}
		fmt.Printf("uploaded %s to %s\n", localPath, job.RemotePath)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagExportDestFolder, "folder", "landcover", "remote storage folder")
	exportCmd.Flags().IntVar(&flagExportScale, "scale", 10, "nominal resolution recorded with the job")
	exportCmd.Flags().Int64Var(&flagExportMaxPixels, "max-pixels", 1e10, "pixel cap recorded with the job")
	rootCmd.AddCommand(exportCmd)
}
