package export

import (
	"fmt"
	"math"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/airbusgeo/godal"
	"github.com/geosentry/landcover-cli/internal/logging"
	"github.com/geosentry/landcover-cli/internal/notification"
	"github.com/geosentry/landcover-cli/internal/properties"
	"github.com/geosentry/landcover-cli/internal/raster"
	"github.com/jlaffaye/ftp"
)

// Params parameterizes one raster export. Every field travels into the job
// unchanged; nothing is defaulted or clamped on the way through.
type Params struct {
	Folder     string
	NamePrefix string
	Region     string
	Scale      int
	MaxPixels  int64
}

// Job is a prepared upload. Jobs run in the background and are never
// awaited by the pipeline; completion is only reported via webhook.
type Job struct {
	Params     Params
	LocalPath  string
	RemotePath string
}

// BuildJob pairs export parameters with the local raster they describe.
func BuildJob(params Params, localPath string) Job {
	return Job{
		Params:     params,
		LocalPath:  localPath,
		RemotePath: path.Join(params.Folder, params.NamePrefix+".tif"),
	}
}

// WriteGeoTIFF persists a classified grid as a single-band float32 GeoTIFF
// under data/result, georeferenced by the composite's transform.
func WriteGeoTIFF(classified [][]float64, transform [6]float64, params Params) (string, error) {
	height := len(classified)
	width := 0
	if height > 0 {
		width = len(classified[0])
	}
	if total := int64(width) * int64(height); params.MaxPixels > 0 && total > params.MaxPixels {
		return "", raster.ErrMaxPixelsExceeded
	}

	resultDir := filepath.Join(properties.RootPath(), "data", "result")
	if err := os.MkdirAll(resultDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create result directory: %w", err)
	}
	outputPath := filepath.Join(resultDir, params.NamePrefix+".tif")

	ds, err := godal.Create(godal.GTiff, outputPath, 1, godal.Float32, width, height)
	if err != nil {
		return "", fmt.Errorf("failed to create GeoTIFF: %w", err)
	}
	defer ds.Close()

	if err := ds.SetGeoTransform(transform); err != nil {
		return "", fmt.Errorf("failed to set geotransform: %w", err)
	}
	sr, err := godal.NewSpatialRefFromEPSG(4326)
	if err != nil {
		return "", fmt.Errorf("failed to create spatial ref: %w", err)
	}
	defer sr.Close()
	if err := ds.SetSpatialRef(sr); err != nil {
		return "", fmt.Errorf("failed to set spatial ref: %w", err)
	}

	band := ds.Bands()[0]
	row := make([]float32, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			value := classified[y][x]
			if math.IsNaN(value) {
				row[x] = float32(math.NaN())
			} else {
				row[x] = float32(value)
			}
		}
		if err := band.Write(0, y, row, width, 1); err != nil {
			return "", fmt.Errorf("failed to write raster row %d: %w", y, err)
		}
	}

	return outputPath, nil
}

// Submit starts the remote upload in the background and returns a channel
// that delivers the outcome exactly once. The caller decides when to wait;
// a CLI process must drain the channel before exiting or the runtime kills
// the upload mid-flight.
func Submit(job Job) <-chan error {
	done := make(chan error, 1)
	go func() {
		err := Upload(job)
		if err != nil {
			logging.L().Errorf("export %s failed: %v", job.Params.NamePrefix, err)
			notification.SendDiscordErrorNotification(fmt.Sprintf("Export %s failed: %s", job.Params.NamePrefix, err.Error()))
		} else {
			logging.L().Infof("export %s uploaded to %s", job.Params.NamePrefix, job.RemotePath)
			notification.SendDiscordSuccessNotification(fmt.Sprintf("Export complete: %s → %s", job.Params.NamePrefix, job.RemotePath))
		}
		done <- err
	}()
	return done
}

// Upload pushes the job's local raster to remote storage synchronously.
func Upload(job Job) error {
	addr := properties.ExportFTPAddr()
	if addr == "" {
		return fmt.Errorf("missing required environment variable: EXPORT_FTP_ADDR")
	}

	conn, err := ftp.Dial(addr, ftp.DialWithTimeout(30*time.Second))
	if err != nil {
		return fmt.Errorf("failed to dial export storage: %w", err)
	}
	defer conn.Quit()

	if err := conn.Login(properties.ExportFTPUser(), properties.ExportFTPPassword()); err != nil {
		return fmt.Errorf("failed to log in to export storage: %w", err)
	}

	if job.Params.Folder != "" {
		// best effort; the folder usually exists already
		_ = conn.MakeDir(job.Params.Folder)
	}

	file, err := os.Open(job.LocalPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", job.LocalPath, err)
	}
	defer file.Close()

	if err := conn.Stor(job.RemotePath, file); err != nil {
		return fmt.Errorf("failed to store %s: %w", job.RemotePath, err)
	}
	return nil
}
