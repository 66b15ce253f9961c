package sentinel

import (
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBound() orb.Bound {
	return orb.Bound{Min: orb.Point{72.8, 31.2}, Max: orb.Point{73.3, 31.7}}
}

func TestBuildSearchRequestCarriesAllPredicates(t *testing.T) {
	start := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)

	// Field assignment order must not matter: both literals produce the
	// same payload with all three predicates present.
	queries := []SceneQuery{
		{Start: start, End: end, MaxCloudCover: 10, Bound: testBound()},
		{Bound: testBound(), MaxCloudCover: 10, End: end, Start: start},
	}

	for _, query := range queries {
		payload := BuildSearchRequest(query)

		assert.Equal(t, "2016-01-01T00:00:00Z/2017-01-01T00:00:00Z", payload["datetime"])
		assert.Equal(t, "eo:cloud_cover < 10", payload["filter"])
		assert.Equal(t, []float64{72.8, 31.2, 73.3, 31.7}, payload["bbox"])
		assert.Equal(t, []string{"sentinel-2-l2a"}, payload["collections"])
	}
}

func TestFilterScenesEnforcesRangeAndCloud(t *testing.T) {
	query := SceneQuery{
		Start:         time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2016, 7, 1, 0, 0, 0, 0, time.UTC),
		MaxCloudCover: 10,
		Bound:         testBound(),
	}

	var parsed CatalogResponse
	add := func(id, datetime string, cloud float64) {
		var f CatalogFeature
		f.ID = id
		f.Properties.Datetime = datetime
		f.Properties.CloudCover = cloud
		parsed.Features = append(parsed.Features, f)
	}
	add("in-range", "2016-03-15T05:50:00Z", 4.2)
	add("on-end", "2016-07-01T00:00:00Z", 1.0)         // end is exclusive
	add("cloud-at-threshold", "2016-02-01T05:50:00Z", 10.0) // strict comparison
	add("before-start", "2015-12-31T05:50:00Z", 0.5)
	add("later-but-earlier-listed", "2016-01-20T05:50:00Z", 2.0)

	scenes, err := FilterScenes(parsed, query)
	require.NoError(t, err)

	require.Len(t, scenes, 2)
	assert.Equal(t, "later-but-earlier-listed", scenes[0].ID)
	assert.Equal(t, "in-range", scenes[1].ID)
}

func TestFilterScenesRejectsBadDatetime(t *testing.T) {
	var parsed CatalogResponse
	parsed.Features = []CatalogFeature{{ID: "bad"}}

	_, err := FilterScenes(parsed, SceneQuery{
		Start:         time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC),
		MaxCloudCover: 10,
	})
	require.Error(t, err)
}

func TestBuildProcessRequestClampsOutputSize(t *testing.T) {
	geometry := orb.MultiPolygon{{orb.Ring{
		{70.0, 30.0}, {70.0, 32.0}, {74.0, 32.0}, {74.0, 30.0}, {70.0, 30.0},
	}}}

	payload, err := BuildProcessRequest(
		time.Date(2016, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2016, 6, 2, 0, 0, 0, 0, time.UTC),
		geometry,
	)
	require.NoError(t, err)

	output := payload["output"].(map[string]interface{})
	assert.Equal(t, 2500, output["width"])
	assert.Equal(t, 2500, output["height"])
	assert.Equal(t, "mostRecent", payload["mosaicking"])
}
