package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildJobCarriesParamsUnchanged(t *testing.T) {
	params := Params{
		Folder:     "landcover/2023",
		NamePrefix: "faisalabad_2023_rf50",
		Region:     "Faisalabad",
		Scale:      10,
		MaxPixels:  1e10,
	}

	job := BuildJob(params, "/tmp/faisalabad_2023_rf50.tif")

	// the caller's parameterization must survive into the job exactly
	assert.Equal(t, params, job.Params)
	assert.Equal(t, 10, job.Params.Scale)
	assert.Equal(t, int64(1e10), job.Params.MaxPixels)
	assert.Equal(t, "Faisalabad", job.Params.Region)
	assert.Equal(t, "/tmp/faisalabad_2023_rf50.tif", job.LocalPath)
	assert.Equal(t, "landcover/2023/faisalabad_2023_rf50.tif", job.RemotePath)
}

func TestBuildJobWithoutFolder(t *testing.T) {
	job := BuildJob(Params{NamePrefix: "classified"}, "/tmp/classified.tif")
	assert.Equal(t, "classified.tif", job.RemotePath)
}

func TestSubmitDeliversUploadOutcome(t *testing.T) {
	t.Setenv("EXPORT_FTP_ADDR", "")
	t.Setenv("DISCORD_ERROR_NOTIFICATION_URL", "")

	job := BuildJob(Params{NamePrefix: "classified"}, "/tmp/classified.tif")

	// callers must be able to wait for the upload; an unobservable
	// goroutine dies with the process
	select {
	case err := <-Submit(job):
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("submit never delivered an outcome")
	}
}
