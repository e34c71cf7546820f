package itinerary

import "wayfare/models"

// ScheduledAttraction is an attraction with its assigned visit interval.
// Start and End are seconds from midnight, and End-Start always equals the
// attraction's estimated duration exactly.
type ScheduledAttraction struct {
	Attraction models.Attraction
	Start      int
	End        int
}

// packWindow runs one first-fit pass of the bucket against a single window.
// Attractions are visited in bucket order; each one either occupies the next
// contiguous interval from the cursor or, if it would run past the window's
// end, is returned as a leftover. The scan never terminates early: a later,
// shorter attraction may still fit after a longer one was skipped.
func packWindow(bucket []models.Attraction, w Window) (placed []ScheduledAttraction, leftover []models.Attraction) {
	cursor := w.Start
	for _, a := range bucket {
		duration := a.DurationMinutes * 60
		if duration > 0 && cursor+duration <= w.End {
			placed = append(placed, ScheduledAttraction{
				Attraction: a,
				Start:      cursor,
				End:        cursor + duration,
			})
			cursor += duration
			continue
		}
		leftover = append(leftover, a)
	}
	return placed, leftover
}

// ScheduleDay packs a day's bucket into the morning window, then retries the
// leftovers (in original order) against the afternoon window. Attractions
// that fit in neither window are dropped from the day; that is the documented
// overflow policy, not an error, and they are not re-queued to another day.
func ScheduleDay(bucket []models.Attraction, morning, afternoon Window) (placed []ScheduledAttraction, dropped []models.Attraction) {
	morningPlaced, leftover := packWindow(bucket, morning)
	afternoonPlaced, dropped := packWindow(leftover, afternoon)

	placed = make([]ScheduledAttraction, 0, len(morningPlaced)+len(afternoonPlaced))
	placed = append(placed, morningPlaced...)
	placed = append(placed, afternoonPlaced...)
	return placed, dropped
}
