package sentinel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/airbusgeo/godal"
	"github.com/geosentry/landcover-cli/internal/logging"
	"github.com/geosentry/landcover-cli/internal/properties"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/oauth2/clientcredentials"
)

// SpectralBands is the band stack requested for every scene. SCL rides along
// for scene-classification masking during compositing.
var SpectralBands = []string{"B02", "B03", "B04", "B08", "B11", "SCL"}

const nominalResolutionMeters = 10

const evalscript = `
//VERSION=3
function setup() {
  return {
    input: ["B02", "B03", "B04", "B08", "B11", "SCL"],
    output: {
      id: "default",
      bands: 6,
      sampleType: SampleType.FLOAT32,
    },
  }
}

function evaluatePixel(sample) {
  return [sample.B02, sample.B03, sample.B04, sample.B08, sample.B11, sample.SCL];
}
`

func calculatePixels(distance float64, resolution float64) int {
	pixels := distance * (111_000.0 / resolution)
	if pixels < 1 {
		return 1
	}
	return int(pixels)
}

// BuildProcessRequest assembles the process-API payload for one scene window
// over the given geometry.
func BuildProcessRequest(start, end time.Time, geometry orb.MultiPolygon) (map[string]interface{}, error) {
	bound := geometry.Bound()

	widthPixels := calculatePixels(bound.Max[0]-bound.Min[0], nominalResolutionMeters)
	heightPixels := calculatePixels(bound.Max[1]-bound.Min[1], nominalResolutionMeters)
	// Clamp to the allowed range (1-2500)
	if widthPixels > 2500 {
		widthPixels = 2500
	}
	if heightPixels > 2500 {
		heightPixels = 2500
	}

	geometryJSON, err := json.Marshal(geojson.NewGeometry(geometry))
	if err != nil {
		return nil, fmt.Errorf("failed to export geometry to GeoJSON: %w", err)
	}
	var geojsonMap map[string]interface{}
	if err := json.Unmarshal(geometryJSON, &geojsonMap); err != nil {
		return nil, fmt.Errorf("failed to parse GeoJSON: %w", err)
	}

	return map[string]interface{}{
		"input": map[string]interface{}{
			"bounds": map[string]interface{}{
				"geometry": geojsonMap,
			},
			"data": []map[string]interface{}{
				{
					"dataFilter": map[string]interface{}{
						"timeRange": map[string]string{
							"from": start.UTC().Format(time.RFC3339),
							"to":   end.UTC().Format(time.RFC3339),
						},
					},
					"type": "sentinel-2-l2a",
				},
			},
		},
		"output": map[string]interface{}{
			"width":  widthPixels,
			"height": heightPixels,
			"responses": []map[string]interface{}{
				{
					"identifier": "default",
					"format": map[string]string{
						"type": "image/tiff",
					},
				},
			},
		},
		"evalscript": evalscript,
		"mosaicking": "mostRecent",
	}, nil
}

type clientCredentials struct {
	id     string
	secret string
}

// credentialPairs parses the comma-separated credential lists. Multiple
// pairs let a request fall through to the next account when the current
// one is rejected or rate-limited.
func credentialPairs() ([]clientCredentials, error) {
	ids := splitList(properties.CopernicusClientID())
	secrets := splitList(properties.CopernicusClientSecret())
	if len(ids) == 0 || len(secrets) == 0 || properties.CopernicusTokenURL() == "" {
		return nil, fmt.Errorf("missing required environment variables: COPERNICUS_CLIENT_ID, COPERNICUS_CLIENT_SECRET, or COPERNICUS_TOKEN_URL")
	}
	if len(ids) != len(secrets) {
		return nil, fmt.Errorf("COPERNICUS_CLIENT_ID lists %d entries but COPERNICUS_CLIENT_SECRET lists %d", len(ids), len(secrets))
	}

	pairs := make([]clientCredentials, len(ids))
	for i := range ids {
		pairs[i] = clientCredentials{id: ids[i], secret: secrets[i]}
	}
	return pairs, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func oauthClient(ctx context.Context, cred clientCredentials) *http.Client {
	config := &clientcredentials.Config{
		ClientID:     cred.id,
		ClientSecret: cred.secret,
		TokenURL:     properties.CopernicusTokenURL(),
	}
	return config.Client(ctx)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func requestImage(ctx context.Context, start, end time.Time, geometry orb.MultiPolygon) ([]byte, error) {
	requestPayload, err := BuildProcessRequest(start, end, geometry)
	if err != nil {
		return nil, err
	}
	requestBody, err := json.Marshal(requestPayload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	pairs, err := credentialPairs()
	if err != nil {
		return nil, err
	}

	const retries = 10
	var lastErr error
	for p, cred := range pairs {
		httpClient := oauthClient(ctx, cred)
		for attempt := 1; attempt <= retries; attempt++ {
			resp, err := httpClient.Post(properties.CopernicusProcessURL(), "application/json", bytes.NewBuffer(requestBody))
			if err != nil {
				lastErr = err
				logging.L().Warnf("process request attempt %d failed: %v", attempt, err)
				if err := sleepCtx(ctx, 5*time.Second); err != nil {
					return nil, err
				}
				continue
			}

			if resp.StatusCode == http.StatusOK {
				content, err := io.ReadAll(resp.Body)
				resp.Body.Close()
				if err != nil {
					return nil, fmt.Errorf("failed to read response body: %w", err)
				}
				return content, nil
			}

			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized {
				lastErr = fmt.Errorf("credentials %d of %d rejected with status %d", p+1, len(pairs), resp.StatusCode)
				logging.L().Warnf("%v, trying next pair", lastErr)
				break
			}
			lastErr = fmt.Errorf("process API status %d: %s", resp.StatusCode, string(body))
			logging.L().Warnf("process request attempt %d failed: %s", attempt, string(body))
			if err := sleepCtx(ctx, 5*time.Second); err != nil {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("failed to request image with %d credential pair(s): %w", len(pairs), lastErr)
}

// GetSceneImages downloads one multi-band image per scene and returns the
// opened datasets keyed by scene date. Downloads are cached under
// data/images/<regionLabel>; an existing file is reused as-is.
func GetSceneImages(ctx context.Context, geometry orb.MultiPolygon, regionLabel string, scenes []Scene) (map[time.Time]*godal.Dataset, error) {
	godal.RegisterAll()
	imageDir := filepath.Join(properties.RootPath(), "data", "images", regionLabel)
	if err := os.MkdirAll(imageDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	images := make(map[time.Time]*godal.Dataset, len(scenes))
	closeAll := func() {
		for _, ds := range images {
			ds.Close()
		}
	}

	bar := progressbar.Default(int64(len(scenes)), "Downloading scenes")
	for _, scene := range scenes {
		day := scene.Date.Truncate(24 * time.Hour)
		fileName := filepath.Join(imageDir, fmt.Sprintf("%s_%s.tif", regionLabel, day.Format("2006-01-02")))

		if _, err := os.Stat(fileName); os.IsNotExist(err) {
			imageBytes, err := requestImage(ctx, day, day.Add(time.Hour*23+time.Minute*59+time.Second*59), geometry)
			if err != nil {
				closeAll()
				return nil, fmt.Errorf("error requesting scene %s: %w", scene.ID, err)
			}
			if err := os.WriteFile(fileName, imageBytes, 0644); err != nil {
				closeAll()
				return nil, fmt.Errorf("failed to write image file: %w", err)
			}
		}

		ds, err := godal.Open(fileName, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
			if ec == godal.CE_Warning {
				return nil
			}
			return fmt.Errorf("gdal error %d: %s", code, msg)
		}))
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("failed to open %s: %w", fileName, err)
		}
		images[day] = ds
		bar.Add(1)
	}
	return images, nil
}
