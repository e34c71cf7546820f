package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"wayfare/config"
	"wayfare/models"
	"wayfare/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// PlacesService supplies the ordered attraction list for a destination city.
// Order is significant: it is the ranking the scheduling engine preserves.
type PlacesService interface {
	GetAttractions(ctx context.Context, city string, limit int) ([]models.Attraction, error)
}

// DefaultPlacesService is a concrete implementation backed by the places
// search API, with responses cached in Redis per city.
type DefaultPlacesService struct {
	Cache      *redis.Client
	HTTPClient *http.Client
}

// NewDefaultPlacesService wires the service with the shared cache client.
func NewDefaultPlacesService() *DefaultPlacesService {
	return &DefaultPlacesService{
		Cache:      utils.GetCacheClient(),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// searchResponse mirrors the places text-search API payload.
type searchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID  string   `json:"place_id"`
		Name     string   `json:"name"`
		Types    []string `json:"types"`
		Website  string   `json:"website"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// categoryDurations maps a place category to its estimated visit length in
// minutes. Categories not listed fall back to defaultDurationMinutes.
var categoryDurations = map[string]int{
	"museum":         120,
	"art_gallery":    90,
	"park":           60,
	"zoo":            180,
	"amusement_park": 240,
	"church":         45,
	"landmark":       60,
	"shopping_mall":  90,
}

const defaultDurationMinutes = 90

// GetAttractions returns the ranked attractions for a city, serving from the
// Redis cache when possible.
func (s *DefaultPlacesService) GetAttractions(ctx context.Context, city string, limit int) ([]models.Attraction, error) {
	cacheKey := "places:" + city
	if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
		var attractions []models.Attraction
		if err := json.Unmarshal([]byte(cached), &attractions); err == nil {
			return clip(attractions, limit), nil
		}
	}

	apiKey := config.AppConfig.PlacesAPIKey
	if apiKey == "" {
		return nil, fmt.Errorf("places API key is not configured")
	}

	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/textsearch/json?query=%s&key=%s",
		url.QueryEscape("top attractions in "+city), apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build places request: %w", err)
	}
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}
	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places API returned status %s", payload.Status)
	}

	attractions := make([]models.Attraction, 0, len(payload.Results))
	for _, r := range payload.Results {
		category := "attraction"
		if len(r.Types) > 0 {
			category = r.Types[0]
		}
		duration := defaultDurationMinutes
		if d, ok := categoryDurations[category]; ok {
			duration = d
		}
		attractions = append(attractions, models.Attraction{
			ID:              r.PlaceID,
			Name:            r.Name,
			Category:        category,
			DurationMinutes: duration,
			Latitude:        r.Geometry.Location.Lat,
			Longitude:       r.Geometry.Location.Lng,
			Website:         r.Website,
		})
	}

	if data, err := json.Marshal(attractions); err == nil {
		if err := s.Cache.Set(ctx, cacheKey, data, utils.PlacesCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache places response",
				zap.String("city", city), zap.Error(err))
		}
	}

	return clip(attractions, limit), nil
}

func clip(attractions []models.Attraction, limit int) []models.Attraction {
	if limit > 0 && len(attractions) > limit {
		return attractions[:limit]
	}
	return attractions
}
