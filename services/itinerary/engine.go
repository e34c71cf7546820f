package itinerary

import (
	"fmt"

	"wayfare/models"
)

// Engine defines the single entry point for itinerary generation. The whole
// pipeline (partition, slot packing, per-day merge, trip-wide flatten) is a
// pure function of the input snapshot: identical inputs produce identical
// output, so callers regenerate in full whenever any upstream input changes.
type Engine interface {
	BuildTrip(input models.PlanInput) (*models.TripPlan, error)
}

// DefaultEngine is the concrete implementation.
type DefaultEngine struct {
	Clock Clock
}

// NewDefaultEngine returns an engine using the standard daily clock.
func NewDefaultEngine() *DefaultEngine {
	return &DefaultEngine{Clock: DefaultClock()}
}

// BuildTrip generates the full multi-day plan. Degenerate inputs are totally
// defined: zero attractions yields days with only fixed events, a missing
// hotel yields no hotel events, and an absent transit list (the documented
// soft-fail of the transit collaborator) yields a day without transit items.
// The only error condition is an invalid trip window.
func (e *DefaultEngine) BuildTrip(input models.PlanInput) (*models.TripPlan, error) {
	numberOfDays, err := input.Window.Days()
	if err != nil {
		return nil, fmt.Errorf("invalid trip window: %w", err)
	}

	buckets := PartitionDays(input.Attractions, numberOfDays)

	days := make([]models.DaySchedule, 0, numberOfDays)
	for d := 1; d <= numberOfDays; d++ {
		placed, _ := ScheduleDay(buckets[d-1], e.Clock.Morning, e.Clock.Afternoon)

		var hotel *models.Hotel
		if h, ok := input.Hotels[d]; ok {
			hotel = &h
		}

		days = append(days, MergeDay(
			d,
			input.Window.DateOf(d),
			placed,
			input.Transit[d],
			hotel,
			d == 1,
			d == numberOfDays,
			e.Clock,
		))
	}

	return &models.TripPlan{Days: days, Flat: FlattenTrip(days)}, nil
}
