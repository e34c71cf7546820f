package models

// Attraction is one candidate sight for a trip, as returned by the places
// collaborator. Immutable once fetched; the estimated visit duration is in
// minutes (the scheduling engine normalizes to seconds before any interval
// arithmetic).
type Attraction struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	Category        string  `bson:"category" json:"category"`
	DurationMinutes int     `bson:"durationMinutes" json:"durationMinutes"`
	Latitude        float64 `bson:"latitude" json:"latitude"`
	Longitude       float64 `bson:"longitude" json:"longitude"`
	Website         string  `bson:"website,omitempty" json:"website,omitempty"`
	Tips            string  `bson:"tips,omitempty" json:"tips,omitempty"`
}
