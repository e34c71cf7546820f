package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the wire format for calendar dates across the API and storage.
const DateLayout = "2006-01-02"

// TripWindow is an inclusive calendar range. EndDate must not precede StartDate.
type TripWindow struct {
	StartDate string `bson:"startDate" json:"startDate" binding:"required"`
	EndDate   string `bson:"endDate" json:"endDate" binding:"required"`
}

// Days returns the number of calendar days in the window, inclusive of both
// endpoints. A single-date window is one day.
func (w TripWindow) Days() (int, error) {
	start, err := time.Parse(DateLayout, w.StartDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", w.StartDate, err)
	}
	end, err := time.Parse(DateLayout, w.EndDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", w.EndDate, err)
	}
	if end.Before(start) {
		return 0, fmt.Errorf("end date %s precedes start date %s", w.EndDate, w.StartDate)
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// DateOf returns the calendar date of the given 1-based day index.
func (w TripWindow) DateOf(day int) string {
	start, err := time.Parse(DateLayout, w.StartDate)
	if err != nil {
		return w.StartDate
	}
	return start.AddDate(0, 0, day-1).Format(DateLayout)
}

// Trip is the persisted trip-planning session. Hotels is keyed by the
// 1-based day number (Mongo map keys must be strings).
type Trip struct {
	MongoID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	ID              string           `bson:"id" json:"id"`
	Name            string           `bson:"name" json:"name"`
	HomeCity        string           `bson:"homeCity" json:"homeCity"`
	DestinationCity string           `bson:"destinationCity" json:"destinationCity"`
	Window          TripWindow       `bson:"window" json:"window"`
	Hotels          map[string]Hotel `bson:"hotels,omitempty" json:"hotels,omitempty"`
	Plan            *TripPlan        `bson:"plan,omitempty" json:"plan,omitempty"`
	CreatedAt       time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// PlanInput is the immutable snapshot of everything the scheduling engine
// needs for one full regeneration. Any change to an upstream input (new hotel
// choice, new date range, refreshed attractions) produces a new snapshot and
// a full re-run; nothing is patched incrementally.
type PlanInput struct {
	Window      TripWindow
	Attractions []Attraction           // ordered as ranked by the places collaborator
	Hotels      map[int]Hotel          // 1-based day -> hotel; absent means none chosen
	Transit     map[int][]TransitRoute // 1-based day -> precomputed legs; may be empty
}
