package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/geosentry/landcover-cli/internal/raster"
	"github.com/geosentry/landcover-cli/internal/training"
)

// DefaultTrees is the fixed forest size the workflow trains with. There is
// no hyperparameter search: one split, one tree count.
const DefaultTrees = 50

// Client talks to the Random Forest model service.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 15 * time.Minute,
		},
	}
}

// TrainRequest carries the sampled (feature vector, label) pairs.
type TrainRequest struct {
	Trees     int               `json:"trees"`
	Bands     []string          `json:"bands"`
	TileScale float64           `json:"tile_scale,omitempty"`
	Samples   []TrainingExample `json:"samples"`
}

type TrainingExample struct {
	Features []float64 `json:"features"`
	Label    int       `json:"label"`
}

type TrainResponse struct {
	ModelID string `json:"model_id"`
}

// ClassifyRequest ships the composite band grids for full-raster inference.
// NaN cannot ride through JSON, so nodata pixels are sent as null.
type ClassifyRequest struct {
	ModelID string                  `json:"model_id"`
	Width   int                     `json:"width"`
	Height  int                     `json:"height"`
	Bands   []string                `json:"bands"`
	Pixels  map[string][][]*float64 `json:"pixels"`
}

type ClassifyResponse struct {
	Classes [][]*int `json:"classes"`
}

// BuildTrainRequest converts sampled points into the service payload.
func BuildTrainRequest(samples []training.Sample, bands []string, trees int, tileScale float64) TrainRequest {
	req := TrainRequest{
		Trees:     trees,
		Bands:     bands,
		TileScale: tileScale,
		Samples:   make([]TrainingExample, 0, len(samples)),
	}
	for _, sample := range samples {
		req.Samples = append(req.Samples, TrainingExample{
			Features: sample.Features,
			Label:    int(sample.Class),
		})
	}
	return req
}

// Train fits a Random Forest on the given samples and returns the remote
// model handle.
func (c *Client) Train(ctx context.Context, req TrainRequest) (string, error) {
	var resp TrainResponse
	if err := c.post(ctx, "/v1/models/train", req, &resp); err != nil {
		return "", fmt.Errorf("model training failed: %w", err)
	}
	if resp.ModelID == "" {
		return "", fmt.Errorf("model service returned an empty model id")
	}
	return resp.ModelID, nil
}

// Classify applies a trained model to every pixel of the composite and
// returns a class grid; nodata pixels come back as NaN.
func (c *Client) Classify(ctx context.Context, modelID string, composite *raster.Raster, bands []string) ([][]float64, error) {
	req := ClassifyRequest{
		ModelID: modelID,
		Width:   composite.Width,
		Height:  composite.Height,
		Bands:   bands,
		Pixels:  make(map[string][][]*float64, len(bands)),
	}
	for _, name := range bands {
		band, err := composite.Band(name)
		if err != nil {
			return nil, err
		}
		req.Pixels[name] = encodeGrid(band)
	}

	var resp ClassifyResponse
	if err := c.post(ctx, "/v1/models/classify", req, &resp); err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	if len(resp.Classes) != composite.Height {
		return nil, fmt.Errorf("model service returned %d rows, expected %d", len(resp.Classes), composite.Height)
	}

	classified := raster.NewGrid(composite.Width, composite.Height)
	for y, row := range resp.Classes {
		if len(row) != composite.Width {
			return nil, fmt.Errorf("model service returned %d columns in row %d, expected %d", len(row), y, composite.Width)
		}
		for x, class := range row {
			if class != nil {
				classified[y][x] = float64(*class)
			}
		}
	}
	return classified, nil
}

func (c *Client) post(ctx context.Context, path string, request, response interface{}) error {
	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("model service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return fmt.Errorf("failed to decode model service response: %w", err)
	}
	return nil
}

func encodeGrid(grid [][]float64) [][]*float64 {
	encoded := make([][]*float64, len(grid))
	for y, row := range grid {
		encoded[y] = make([]*float64, len(row))
		for x := range row {
			value := row[x]
			if !math.IsNaN(value) {
				v := value
				encoded[y][x] = &v
			}
		}
	}
	return encoded
}
