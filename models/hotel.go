package models

// Hotel is a per-day lodging assignment. At most one per day; an absent
// entry in a trip's hotel map means no hotel has been chosen for that day yet.
type Hotel struct {
	ID         string   `bson:"id" json:"id"`
	Name       string   `bson:"name" json:"name"`
	Address    string   `bson:"address" json:"address"`
	Latitude   float64  `bson:"latitude" json:"latitude"`
	Longitude  float64  `bson:"longitude" json:"longitude"`
	Rating     float64  `bson:"rating,omitempty" json:"rating,omitempty"`
	PriceLevel int      `bson:"priceLevel,omitempty" json:"priceLevel,omitempty"`
	Amenities  []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
}
