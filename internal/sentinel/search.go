package sentinel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/geosentry/landcover-cli/internal/cache"
	"github.com/geosentry/landcover-cli/internal/properties"
	"github.com/paulmach/orb"
)

// SceneQuery selects Sentinel-2 L2A scenes. All three predicates (time range,
// cloud threshold, spatial intersection) are always applied; the end of the
// time range is exclusive and the cloud comparison is strict.
type SceneQuery struct {
	Start         time.Time
	End           time.Time
	MaxCloudCover float64
	Bound         orb.Bound
}

// Scene is one catalog result.
type Scene struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	CloudCover float64   `json:"cloud_cover"`
}

// BuildSearchRequest assembles the catalog request payload for a query. The
// payload always carries the bbox, the datetime interval and the cloud filter
// no matter how the query was put together.
func BuildSearchRequest(query SceneQuery) map[string]interface{} {
	return map[string]interface{}{
		"collections": []string{"sentinel-2-l2a"},
		"bbox": []float64{
			query.Bound.Min[0], query.Bound.Min[1],
			query.Bound.Max[0], query.Bound.Max[1],
		},
		"datetime": fmt.Sprintf("%s/%s",
			query.Start.UTC().Format(time.RFC3339),
			query.End.UTC().Format(time.RFC3339)),
		"filter":        fmt.Sprintf("eo:cloud_cover < %g", query.MaxCloudCover),
		"filter-lang":   "cql2-text",
		"fields":        map[string][]string{"include": {"id", "properties.datetime", "properties.eo:cloud_cover"}},
		"limit":         100,
		"distinct_date": true,
	}
}

type CatalogFeature struct {
	ID         string `json:"id"`
	Properties struct {
		Datetime   string  `json:"datetime"`
		CloudCover float64 `json:"eo:cloud_cover"`
	} `json:"properties"`
}

type CatalogResponse struct {
	Features []CatalogFeature `json:"features"`
}

// SearchScenes queries the Copernicus catalog and returns the matching
// scenes, oldest first. Results are cached on disk keyed by the full query.
func SearchScenes(ctx context.Context, query SceneQuery) ([]Scene, error) {
	searchCache := cache.NewFileCache[[]Scene]("catalog")
	cacheKey := searchCache.GenerateKey(
		query.Start.Format(time.RFC3339), query.End.Format(time.RFC3339),
		query.MaxCloudCover, query.Bound.Min, query.Bound.Max)
	if scenes, ok := searchCache.Get(cacheKey); ok {
		return scenes, nil
	}

	payload, err := json.Marshal(BuildSearchRequest(query))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog request: %w", err)
	}

	pairs, err := credentialPairs()
	if err != nil {
		return nil, err
	}
	httpClient := oauthClient(ctx, pairs[0])

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, properties.CopernicusCatalogURL(), bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("catalog returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed CatalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	scenes, err := FilterScenes(parsed, query)
	if err != nil {
		return nil, err
	}

	if err := searchCache.Set(cacheKey, scenes); err != nil {
		return nil, fmt.Errorf("failed to cache catalog results: %w", err)
	}
	return scenes, nil
}

// FilterScenes re-applies the query predicates to a catalog response. The
// server already filters, but the date-exclusivity and strict cloud
// comparison are enforced here so the contract does not depend on remote
// filter semantics.
func FilterScenes(parsed CatalogResponse, query SceneQuery) ([]Scene, error) {
	scenes := make([]Scene, 0, len(parsed.Features))
	for _, feature := range parsed.Features {
		date, err := time.Parse(time.RFC3339, feature.Properties.Datetime)
		if err != nil {
			return nil, fmt.Errorf("invalid scene datetime %q: %w", feature.Properties.Datetime, err)
		}
		if date.Before(query.Start) || !date.Before(query.End) {
			continue
		}
		if feature.Properties.CloudCover >= query.MaxCloudCover {
			continue
		}
		scenes = append(scenes, Scene{
			ID:         feature.ID,
			Date:       date,
			CloudCover: feature.Properties.CloudCover,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Date.Before(scenes[j].Date)
	})
	return scenes, nil
}
