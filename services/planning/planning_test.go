package planning

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"wayfare/models"
	"wayfare/services/itinerary"
	"wayfare/services/transit"
)

type memoryRepo struct {
	trips map[string]*models.Trip
}

func (r *memoryRepo) GetByID(id string) (*models.Trip, error) {
	trip, ok := r.trips[id]
	if !ok {
		return nil, fmt.Errorf("trip with id %s not found", id)
	}
	copied := *trip
	return &copied, nil
}

func (r *memoryRepo) GetAll() ([]models.Trip, error) { return nil, nil }

func (r *memoryRepo) Create(trip *models.Trip) error {
	r.trips[trip.ID] = trip
	return nil
}

func (r *memoryRepo) Update(trip *models.Trip) error {
	r.trips[trip.ID] = trip
	return nil
}

func (r *memoryRepo) Delete(id string) error {
	delete(r.trips, id)
	return nil
}

func (r *memoryRepo) SetHotel(id string, day int, hotel models.Hotel) error {
	trip, ok := r.trips[id]
	if !ok {
		return errors.New("not found")
	}
	if trip.Hotels == nil {
		trip.Hotels = map[string]models.Hotel{}
	}
	trip.Hotels[fmt.Sprint(day)] = hotel
	return nil
}

func (r *memoryRepo) SetPlan(id string, plan *models.TripPlan) error {
	trip, ok := r.trips[id]
	if !ok {
		return errors.New("not found")
	}
	trip.Plan = plan
	return nil
}

type stubPlaces struct {
	attractions []models.Attraction
	err         error
}

func (s *stubPlaces) GetAttractions(ctx context.Context, city string, limit int) ([]models.Attraction, error) {
	return s.attractions, s.err
}

type stubHotels struct {
	hotel *models.Hotel
	err   error
}

func (s *stubHotels) BestHotel(ctx context.Context, city string) (*models.Hotel, error) {
	return s.hotel, s.err
}

type stubTransit struct {
	err   error
	calls int
}

func (s *stubTransit) RoutesBetween(ctx context.Context, stops []transit.Stop) ([]models.TransitRoute, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if len(stops) < 2 {
		return nil, nil
	}
	legs := make([]models.TransitRoute, 0, len(stops)-1)
	for i := 0; i < len(stops)-1; i++ {
		legs = append(legs, models.TransitRoute{
			StartLocation: stops[i].Name,
			EndLocation:   stops[i+1].Name,
			Mode:          "transit",
			Start:         stops[i].Depart,
			End:           stops[i].Depart + 600,
		})
	}
	return legs, nil
}

func newService(repo *memoryRepo, p *stubPlaces, h *stubHotels, tr *stubTransit) *DefaultPlanningService {
	return &DefaultPlanningService{
		Repo:    repo,
		Places:  p,
		Hotels:  h,
		Transit: tr,
		Engine:  itinerary.NewDefaultEngine(),
	}
}

func seedTrip(repo *memoryRepo) *models.Trip {
	trip := &models.Trip{
		ID:              "t1",
		DestinationCity: "Lisbon",
		Window:          models.TripWindow{StartDate: "2026-09-01", EndDate: "2026-09-02"},
	}
	repo.trips = map[string]*models.Trip{trip.ID: trip}
	return trip
}

func someAttractions() []models.Attraction {
	return []models.Attraction{
		{ID: "a1", Name: "Belém Tower", Category: "landmark", DurationMinutes: 60},
		{ID: "a2", Name: "Alfama", Category: "landmark", DurationMinutes: 90},
		{ID: "a3", Name: "Oceanário", Category: "zoo", DurationMinutes: 120},
	}
}

func TestBuildForTripHappyPath(t *testing.T) {
	repo := &memoryRepo{}
	seedTrip(repo)
	svc := newService(repo,
		&stubPlaces{attractions: someAttractions()},
		&stubHotels{hotel: &models.Hotel{ID: "h1", Name: "Tejo Hotel"}},
		&stubTransit{},
	)

	trip, err := svc.BuildForTrip(context.Background(), "t1")
	if err != nil {
		t.Fatalf("BuildForTrip: %v", err)
	}
	if trip.Plan == nil || len(trip.Plan.Days) != 2 {
		t.Fatalf("expected a 2-day plan")
	}

	// The plan was persisted, not only returned.
	stored, _ := repo.GetByID("t1")
	if stored.Plan == nil {
		t.Fatalf("plan was not stored")
	}

	// Best-hotel lookup filled every day, so both days carry hotel events
	// on their boundary days and transit legs were generated.
	day1 := trip.Plan.Days[0]
	foundHotel := false
	for _, it := range day1.Items {
		if it.Kind == models.ItemHotel {
			foundHotel = true
		}
	}
	if !foundHotel {
		t.Fatalf("day 1 missing hotel check-in")
	}
}

func TestBuildForTripAttractionFailureAborts(t *testing.T) {
	repo := &memoryRepo{}
	seedTrip(repo)
	svc := newService(repo,
		&stubPlaces{err: errors.New("places API unavailable")},
		&stubHotels{hotel: &models.Hotel{ID: "h1"}},
		&stubTransit{},
	)

	if _, err := svc.BuildForTrip(context.Background(), "t1"); err == nil {
		t.Fatalf("expected attraction-supply failure to abort the build")
	}
	stored, _ := repo.GetByID("t1")
	if stored.Plan != nil {
		t.Fatalf("no plan should be stored after an aborted build")
	}
}

func TestBuildForTripHotelFailureDegrades(t *testing.T) {
	repo := &memoryRepo{}
	seedTrip(repo)
	svc := newService(repo,
		&stubPlaces{attractions: someAttractions()},
		&stubHotels{err: errors.New("no hotels")},
		&stubTransit{},
	)

	trip, err := svc.BuildForTrip(context.Background(), "t1")
	if err != nil {
		t.Fatalf("hotel lookup failure must not abort: %v", err)
	}
	for _, day := range trip.Plan.Days {
		for _, it := range day.Items {
			if it.Kind == models.ItemHotel {
				t.Fatalf("day %d carries a hotel item despite failed lookup", day.Day)
			}
		}
	}
}

func TestBuildForTripTransitFailureDegrades(t *testing.T) {
	repo := &memoryRepo{}
	seedTrip(repo)
	svc := newService(repo,
		&stubPlaces{attractions: someAttractions()},
		&stubHotels{hotel: &models.Hotel{ID: "h1", Name: "Tejo Hotel"}},
		&stubTransit{err: errors.New("directions API down")},
	)

	trip, err := svc.BuildForTrip(context.Background(), "t1")
	if err != nil {
		t.Fatalf("transit failure must not abort: %v", err)
	}
	for _, day := range trip.Plan.Days {
		for _, it := range day.Items {
			if it.Kind == models.ItemTransit {
				t.Fatalf("day %d carries transit despite failed generation", day.Day)
			}
		}
		// Attractions, meals and sleep are still present.
		if len(day.Items) < 4 {
			t.Fatalf("day %d lost its fixed events", day.Day)
		}
	}
}

func TestBuildForTripExplicitHotelWins(t *testing.T) {
	repo := &memoryRepo{}
	trip := seedTrip(repo)
	trip.Hotels = map[string]models.Hotel{"1": {ID: "mine", Name: "My Pick"}}

	svc := newService(repo,
		&stubPlaces{attractions: someAttractions()},
		&stubHotels{hotel: &models.Hotel{ID: "best", Name: "Lookup Pick"}},
		&stubTransit{},
	)

	built, err := svc.BuildForTrip(context.Background(), "t1")
	if err != nil {
		t.Fatalf("BuildForTrip: %v", err)
	}
	for _, it := range built.Plan.Days[0].Items {
		if it.Kind == models.ItemHotel && it.Hotel.ID != "mine" {
			t.Fatalf("day 1 hotel %s, want the explicit assignment", it.Hotel.ID)
		}
	}
}
