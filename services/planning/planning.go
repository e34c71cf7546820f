package planning

import (
	"context"
	"fmt"
	"strconv"

	"wayfare/config"
	tripRepo "wayfare/database/repository/trip"
	"wayfare/models"
	"wayfare/services/hotels"
	"wayfare/services/itinerary"
	"wayfare/services/places"
	"wayfare/services/transit"
	"wayfare/utils"

	"go.uber.org/zap"
)

// PlanningService orchestrates one full itinerary regeneration for a trip:
// fetch inputs from the external collaborators, snapshot them, run the
// scheduling engine, persist the result. It is the only write path for
// trip plans; there is no incremental patching.
type PlanningService interface {
	BuildForTrip(ctx context.Context, tripID string) (*models.Trip, error)
	RebuildTrip(ctx context.Context, tripID string) error
}

// DefaultPlanningService is the concrete implementation.
type DefaultPlanningService struct {
	Repo    tripRepo.TripRepository
	Places  places.PlacesService
	Hotels  hotels.HotelService
	Transit transit.TransitService
	Engine  itinerary.Engine
}

// BuildForTrip regenerates the trip's plan from scratch and stores it.
//
// Failure semantics follow the input taxonomy: an attraction-supply failure
// aborts the build (the engine is never invoked), a best-hotel lookup failure
// leaves the affected days hotel-less, and a transit failure leaves the
// affected day without transit legs. The last two degrade, never abort.
func (s *DefaultPlanningService) BuildForTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	logger := utils.GetLogger()

	trip, err := s.Repo.GetByID(tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip: %w", err)
	}

	numberOfDays, err := trip.Window.Days()
	if err != nil {
		return nil, fmt.Errorf("invalid trip window: %w", err)
	}

	attractions, err := s.Places.GetAttractions(ctx, trip.DestinationCity, config.AppConfig.AttractionFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attractions for %s: %w", trip.DestinationCity, err)
	}

	hotelByDay := s.resolveHotels(ctx, trip, numberOfDays)

	clock := itinerary.DefaultClock()
	transitByDay := s.generateTransit(ctx, attractions, hotelByDay, numberOfDays, clock)

	input := models.PlanInput{
		Window:      trip.Window,
		Attractions: attractions,
		Hotels:      hotelByDay,
		Transit:     transitByDay,
	}

	plan, err := s.Engine.BuildTrip(input)
	if err != nil {
		return nil, fmt.Errorf("failed to build itinerary: %w", err)
	}

	if err := s.Repo.SetPlan(trip.ID, plan); err != nil {
		return nil, fmt.Errorf("failed to store plan: %w", err)
	}

	trip.Plan = plan
	logger.Info("itinerary regenerated",
		zap.String("trip", trip.ID),
		zap.Int("days", numberOfDays),
		zap.Int("attractions", len(attractions)))
	return trip, nil
}

// RebuildTrip is the queue-facing variant: same regeneration, result
// discarded.
func (s *DefaultPlanningService) RebuildTrip(ctx context.Context, tripID string) error {
	_, err := s.BuildForTrip(ctx, tripID)
	return err
}

// resolveHotels merges the trip's explicit per-day hotel choices with a
// best-hotel lookup for days left unassigned. A failed lookup leaves those
// days hotel-less.
func (s *DefaultPlanningService) resolveHotels(ctx context.Context, trip *models.Trip, numberOfDays int) map[int]models.Hotel {
	hotelByDay := make(map[int]models.Hotel, numberOfDays)
	for key, hotel := range trip.Hotels {
		if day, err := strconv.Atoi(key); err == nil && day >= 1 && day <= numberOfDays {
			hotelByDay[day] = hotel
		}
	}
	if len(hotelByDay) == numberOfDays {
		return hotelByDay
	}

	best, err := s.Hotels.BestHotel(ctx, trip.DestinationCity)
	if err != nil {
		utils.GetLogger().Warn("best-hotel lookup failed, leaving days hotel-less",
			zap.String("trip", trip.ID), zap.Error(err))
		return hotelByDay
	}
	for day := 1; day <= numberOfDays; day++ {
		if _, ok := hotelByDay[day]; !ok {
			hotelByDay[day] = *best
		}
	}
	return hotelByDay
}

// generateTransit derives each day's stop sequence from the same
// deterministic partition/packing the engine will run, then asks the transit
// collaborator for the connecting legs. A failure for one day is soft: that
// day simply gets no transit items.
func (s *DefaultPlanningService) generateTransit(ctx context.Context, attractions []models.Attraction, hotelByDay map[int]models.Hotel, numberOfDays int, clock itinerary.Clock) map[int][]models.TransitRoute {
	logger := utils.GetLogger()
	buckets := itinerary.PartitionDays(attractions, numberOfDays)

	transitByDay := make(map[int][]models.TransitRoute, numberOfDays)
	for day := 1; day <= numberOfDays; day++ {
		placed, _ := itinerary.ScheduleDay(buckets[day-1], clock.Morning, clock.Afternoon)

		var stops []transit.Stop
		if hotel, ok := hotelByDay[day]; ok && len(placed) > 0 {
			stops = append(stops, transit.Stop{
				Name:      hotel.Name,
				Latitude:  hotel.Latitude,
				Longitude: hotel.Longitude,
				Depart:    clock.Breakfast.End,
			})
		}
		for _, sa := range placed {
			stops = append(stops, transit.Stop{
				Name:      sa.Attraction.Name,
				Latitude:  sa.Attraction.Latitude,
				Longitude: sa.Attraction.Longitude,
				Depart:    sa.End,
			})
		}

		legs, err := s.Transit.RoutesBetween(ctx, stops)
		if err != nil {
			logger.Warn("transit generation failed, day proceeds without legs",
				zap.Int("day", day), zap.Error(err))
			continue
		}
		if len(legs) > 0 {
			transitByDay[day] = legs
		}
	}
	return transitByDay
}
