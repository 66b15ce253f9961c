package delivery

import (
	"testing"
	"time"

	"github.com/geosentry/landcover-cli/internal/boundary"
	"github.com/stretchr/testify/assert"
)

func TestYearRange(t *testing.T) {
	start, end := YearRange(2016)
	assert.Equal(t, time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), start)
	// the end of the range is exclusive: Jan 1 of the next year
	assert.Equal(t, time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestRegionLabel(t *testing.T) {
	region := &boundary.Region{Country: "Pakistan", Level1: "Punjab", Level2: "Toba Tek Singh"}
	assert.Equal(t, "toba_tek_singh_2023", RegionLabel(region, 2023))
}

func TestFeatureBandsExcludeMask(t *testing.T) {
	assert.NotContains(t, FeatureBands, "SCL")
	assert.Contains(t, FeatureBands, "B08")
	assert.Contains(t, FeatureBands, "B11")
}
