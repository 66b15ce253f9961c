package ml

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geosentry/landcover-cli/internal/raster"
	"github.com/geosentry/landcover-cli/internal/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrainRequest(t *testing.T) {
	samples := []training.Sample{
		{Features: []float64{0.1, 0.2}, Class: training.Urban},
		{Features: []float64{0.3, 0.4}, Class: training.Water},
	}

	req := BuildTrainRequest(samples, []string{"B08", "B04"}, DefaultTrees, 16)

	assert.Equal(t, 50, req.Trees)
	assert.Equal(t, []string{"B08", "B04"}, req.Bands)
	assert.Equal(t, 16.0, req.TileScale)
	require.Len(t, req.Samples, 2)
	assert.Equal(t, 0, req.Samples[0].Label)
	assert.Equal(t, 2, req.Samples[1].Label)
}

func TestTrainRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models/train", r.URL.Path)

		var req TrainRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, DefaultTrees, req.Trees)

		json.NewEncoder(w).Encode(TrainResponse{ModelID: "rf-50-abc"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	modelID, err := client.Train(context.Background(), TrainRequest{Trees: DefaultTrees})
	require.NoError(t, err)
	assert.Equal(t, "rf-50-abc", modelID)
}

func TestTrainEmptyModelID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(TrainResponse{})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Train(context.Background(), TrainRequest{})
	require.Error(t, err)
}

func TestClassifyDecodesGridWithNodata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models/classify", r.URL.Path)

		var req ClassifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "rf-50-abc", req.ModelID)
		assert.Equal(t, 2, req.Width)
		// the NaN pixel must arrive as null
		assert.Nil(t, req.Pixels["B08"][0][1])

		one, three := 1, 3
		json.NewEncoder(w).Encode(ClassifyResponse{Classes: [][]*int{{&one, nil}, {&three, &three}}})
	}))
	defer server.Close()

	composite := &raster.Raster{
		Width:  2,
		Height: 2,
		Bands: map[string][][]float64{
			"B08": {{0.5, math.NaN()}, {0.7, 0.8}},
		},
	}

	classified, err := NewClient(server.URL).Classify(context.Background(), "rf-50-abc", composite, []string{"B08"})
	require.NoError(t, err)

	assert.Equal(t, 1.0, classified[0][0])
	assert.True(t, math.IsNaN(classified[0][1]))
	assert.Equal(t, 3.0, classified[1][1])
}

func TestClassifyRejectsShapeMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ClassifyResponse{Classes: [][]*int{}})
	}))
	defer server.Close()

	composite := &raster.Raster{
		Width:  1,
		Height: 1,
		Bands:  map[string][][]float64{"B08": {{0.5}}},
	}

	_, err := NewClient(server.URL).Classify(context.Background(), "m", composite, []string{"B08"})
	require.Error(t, err)
}
