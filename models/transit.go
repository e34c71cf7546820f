package models

// TransitRoute is one precomputed travel leg within a day, supplied by the
// transit collaborator. The scheduling engine treats it as an opaque timed
// event; Start and End are seconds from midnight of the leg's day.
type TransitRoute struct {
	StartLocation string  `bson:"startLocation" json:"startLocation"`
	EndLocation   string  `bson:"endLocation" json:"endLocation"`
	Mode          string  `bson:"mode" json:"mode"`
	Start         int     `bson:"start" json:"start"`
	End           int     `bson:"end" json:"end"`
	DistanceKM    float64 `bson:"distanceKm" json:"distanceKm"`
	Cost          float64 `bson:"cost,omitempty" json:"cost,omitempty"`
	Instructions  string  `bson:"instructions,omitempty" json:"instructions,omitempty"`
}
