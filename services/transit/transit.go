package transit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wayfare/config"
	"wayfare/models"
)

// Stop is one timed point on a day's route: the traveler departs it toward
// the next stop at Depart (seconds from midnight).
type Stop struct {
	Name      string
	Latitude  float64
	Longitude float64
	Depart    int
}

// TransitService generates the travel legs between a day's consecutive
// stops. Callers treat failure as soft: a day without transit legs is still
// a valid day.
type TransitService interface {
	RoutesBetween(ctx context.Context, stops []Stop) ([]models.TransitRoute, error)
}

// DefaultTransitService queries the directions API for each consecutive stop
// pair.
type DefaultTransitService struct {
	HTTPClient *http.Client
}

// NewDefaultTransitService returns a transit service with a bounded HTTP
// client.
func NewDefaultTransitService() *DefaultTransitService {
	return &DefaultTransitService{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Duration struct {
				Value int `json:"value"` // seconds
			} `json:"duration"`
			Distance struct {
				Value int `json:"value"` // meters
			} `json:"distance"`
		} `json:"legs"`
		Fare *struct {
			Value float64 `json:"value"`
		} `json:"fare"`
	} `json:"routes"`
}

// RoutesBetween builds one leg per consecutive stop pair. Each leg starts at
// the origin stop's departure time and ends after the API-reported travel
// duration. Fewer than two stops yields no legs.
func (s *DefaultTransitService) RoutesBetween(ctx context.Context, stops []Stop) ([]models.TransitRoute, error) {
	if len(stops) < 2 {
		return nil, nil
	}

	apiKey := config.AppConfig.DirectionsAPIKey
	if apiKey == "" {
		return nil, fmt.Errorf("directions API key is not configured")
	}

	legs := make([]models.TransitRoute, 0, len(stops)-1)
	for i := 0; i < len(stops)-1; i++ {
		from, to := stops[i], stops[i+1]

		endpoint := fmt.Sprintf(
			"https://maps.googleapis.com/maps/api/directions/json?origin=%f,%f&destination=%f,%f&mode=transit&key=%s",
			from.Latitude, from.Longitude, to.Latitude, to.Longitude, apiKey,
		)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build directions request: %w", err)
		}
		resp, err := s.HTTPClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("directions request failed: %w", err)
		}

		var payload directionsResponse
		err = json.NewDecoder(resp.Body).Decode(&payload)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode directions response: %w", err)
		}
		if payload.Status != "OK" || len(payload.Routes) == 0 || len(payload.Routes[0].Legs) == 0 {
			return nil, fmt.Errorf("no route from %s to %s (status %s)", from.Name, to.Name, payload.Status)
		}

		apiLeg := payload.Routes[0].Legs[0]
		leg := models.TransitRoute{
			StartLocation: from.Name,
			EndLocation:   to.Name,
			Mode:          "transit",
			Start:         from.Depart,
			End:           from.Depart + apiLeg.Duration.Value,
			DistanceKM:    float64(apiLeg.Distance.Value) / 1000,
		}
		if payload.Routes[0].Fare != nil {
			leg.Cost = payload.Routes[0].Fare.Value
		}
		legs = append(legs, leg)
	}

	return legs, nil
}
