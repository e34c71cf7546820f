package models

// TimelineItemKind discriminates the closed set of event types that can
// appear on a day's timeline. Consumers (rendering, export) switch on it
// exhaustively.
type TimelineItemKind string

const (
	ItemTransit    TimelineItemKind = "transit"
	ItemAttraction TimelineItemKind = "attraction"
	ItemHotel      TimelineItemKind = "hotel"
	ItemMeal       TimelineItemKind = "meal"
	ItemSleep      TimelineItemKind = "sleep"
)

// Hotel event labels.
const (
	HotelCheckIn  = "check-in"
	HotelCheckOut = "check-out"
)

// TimelineItem is one tagged entry on a day's merged timeline. Start and End
// are seconds from midnight of the item's day; End may exceed 86400 for the
// overnight sleep window. Exactly one of the payload pointers is set for
// transit/attraction/hotel kinds; meal and sleep carry only the label and
// interval.
type TimelineItem struct {
	Kind  TimelineItemKind `bson:"kind" json:"kind"`
	Day   int              `bson:"day" json:"day"` // 1-based; authoritative for day labeling
	Start int              `bson:"start" json:"start"`
	End   int              `bson:"end" json:"end"`
	Label string           `bson:"label,omitempty" json:"label,omitempty"`

	Attraction *Attraction   `bson:"attraction,omitempty" json:"attraction,omitempty"`
	Hotel      *Hotel        `bson:"hotel,omitempty" json:"hotel,omitempty"`
	Transit    *TransitRoute `bson:"transit,omitempty" json:"transit,omitempty"`
}

// DaySchedule is one day's fully merged, time-ordered timeline. Immutable
// after construction.
type DaySchedule struct {
	Day   int            `bson:"day" json:"day"` // 1-based
	Date  string         `bson:"date" json:"date"`
	Items []TimelineItem `bson:"items" json:"items"`
}

// TripPlan is the complete generated itinerary: per-day schedules for
// rendering plus the flattened, day-tagged, trip-wide stream consumed by the
// XML exporter. The exporter performs no reordering, so Flat must already be
// in final display order.
type TripPlan struct {
	Days []DaySchedule  `bson:"days" json:"days"`
	Flat []TimelineItem `bson:"flat" json:"flat"`
}
