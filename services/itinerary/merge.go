package itinerary

import (
	"sort"

	"wayfare/models"
)

// daySeconds is the offset between consecutive day tags when ordering the
// flattened trip stream.
const daySeconds = 24 * 3600

// MergeDay combines a day's heterogeneous events into one time-ordered
// timeline. Items are first collected in a fixed insertion order
// (attractions, transit, meals, hotel events, sleep) and then stable-sorted
// by start time, so equal start times keep that insertion order as the
// tiebreak. The merge is domain-preserving: every event handed in appears in
// the output exactly once.
//
// Hotel events depend on day position: check-in appears on the first day of
// the trip, check-out on the last. A hotel assigned to a middle day
// contributes no timeline item of its own.
func MergeDay(day int, date string, placed []ScheduledAttraction, transit []models.TransitRoute, hotel *models.Hotel, first, last bool, clk Clock) models.DaySchedule {
	items := make([]models.TimelineItem, 0, len(placed)+len(transit)+6)

	for _, sa := range placed {
		a := sa.Attraction
		items = append(items, models.TimelineItem{
			Kind:       models.ItemAttraction,
			Day:        day,
			Start:      sa.Start,
			End:        sa.End,
			Label:      a.Name,
			Attraction: &a,
		})
	}

	for _, tr := range transit {
		t := tr
		items = append(items, models.TimelineItem{
			Kind:    models.ItemTransit,
			Day:     day,
			Start:   t.Start,
			End:     t.End,
			Label:   t.StartLocation + " → " + t.EndLocation,
			Transit: &t,
		})
	}

	meals := []struct {
		label  string
		window Window
	}{
		{"Breakfast", clk.Breakfast},
		{"Lunch", clk.Lunch},
		{"Dinner", clk.Dinner},
	}
	for _, m := range meals {
		items = append(items, models.TimelineItem{
			Kind:  models.ItemMeal,
			Day:   day,
			Start: m.window.Start,
			End:   m.window.End,
			Label: m.label,
		})
	}

	if hotel != nil {
		if first {
			items = append(items, hotelItem(day, *hotel, models.HotelCheckIn, clk.CheckIn))
		}
		if last {
			checkOut := clk.CheckOut
			if first {
				// One-day stay: the morning checkout slot precedes
				// check-in, so departure uses the late slot.
				checkOut = clk.LateCheckOut
			}
			items = append(items, hotelItem(day, *hotel, models.HotelCheckOut, checkOut))
		}
	}

	items = append(items, models.TimelineItem{
		Kind:  models.ItemSleep,
		Day:   day,
		Start: clk.Sleep.Start,
		End:   clk.Sleep.End,
		Label: "Sleep",
	})

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Start < items[j].Start
	})

	return models.DaySchedule{Day: day, Date: date, Items: items}
}

func hotelItem(day int, hotel models.Hotel, event string, w Window) models.TimelineItem {
	h := hotel
	return models.TimelineItem{
		Kind:  models.ItemHotel,
		Day:   day,
		Start: w.Start,
		End:   w.End,
		Label: event,
		Hotel: &h,
	}
}

// FlattenTrip concatenates the per-day timelines into one trip-wide stream,
// re-sorted by absolute start time. Trip days are consecutive calendar days,
// so (day-1)*86400 + start is the absolute ordering key; the day tag each
// item already carries stays authoritative for day labeling, which keeps day
// boundaries stable even for items whose interval crosses midnight.
func FlattenTrip(days []models.DaySchedule) []models.TimelineItem {
	var total int
	for _, d := range days {
		total += len(d.Items)
	}

	flat := make([]models.TimelineItem, 0, total)
	for _, d := range days {
		flat = append(flat, d.Items...)
	}

	sort.SliceStable(flat, func(i, j int) bool {
		return absStart(flat[i]) < absStart(flat[j])
	})
	return flat
}

func absStart(item models.TimelineItem) int {
	return (item.Day-1)*daySeconds + item.Start
}
