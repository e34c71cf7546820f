package hotels

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

// HotelService resolves the "best hotel" for a city. Explicit per-day hotel
// assignments made through the API always win over this lookup; the service
// only fills days left without a choice.
type HotelService interface {
	BestHotel(ctx context.Context, city string) (*models.Hotel, error)
}

// DefaultHotelService is a concrete implementation backed by the places
// search API, with per-city Redis caching.
type DefaultHotelService struct {
	Cache      *redis.Client
	HTTPClient *http.Client
}

// NewDefaultHotelService wires the service with the shared cache client.
func NewDefaultHotelService() *DefaultHotelService {
	return &DefaultHotelService{
		Cache:      utils.GetCacheClient(),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type hotelSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID          string  `json:"place_id"`
		Name             string  `json:"name"`
		FormattedAddress string  `json:"formatted_address"`
		Rating           float64 `json:"rating"`
		PriceLevel       int     `json:"price_level"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// BestHotel returns the top-ranked hotel for a city, serving from the Redis
// cache when possible.
func (s *DefaultHotelService) BestHotel(ctx context.Context, city string) (*models.Hotel, error) {
	cacheKey := "hotel:" + city
	if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
		var hotel models.Hotel
		if err := json.Unmarshal([]byte(cached), &hotel); err == nil {
			return &hotel, nil
		}
	}

	apiKey := config.AppConfig.PlacesAPIKey
	if apiKey == "" {
		return nil, fmt.Errorf("places API key is not configured")
	}

	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/textsearch/json?query=%s&key=%s",
		url.QueryEscape("best hotel in "+city), apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build hotel request: %w", err)
	}
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hotel request failed: %w", err)
	}
	defer resp.Body.Close()

	var payload hotelSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode hotel response: %w", err)
	}
	if payload.Status != "OK" || len(payload.Results) == 0 {
		return nil, fmt.Errorf("no hotel found for %s (status %s)", city, payload.Status)
	}

	top := payload.Results[0]
	hotel := models.Hotel{
		ID:         top.PlaceID,
		Name:       top.Name,
		Address:    top.FormattedAddress,
		Latitude:   top.Geometry.Location.Lat,
		Longitude:  top.Geometry.Location.Lng,
		Rating:     top.Rating,
		PriceLevel: top.PriceLevel,
	}

	if data, err := json.Marshal(hotel); err == nil {
		if err := s.Cache.Set(ctx, cacheKey, data, utils.PlacesCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache hotel response",
				zap.String("city", city), zap.Error(err))
		}
	}

	return &hotel, nil
}
