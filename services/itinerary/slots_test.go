package itinerary

import (
	"testing"

	"wayfare/models"
)

func withDurations(minutes ...int) []models.Attraction {
	attractions := make([]models.Attraction, len(minutes))
	for i, m := range minutes {
		attractions[i] = models.Attraction{
			ID:              string(rune('a' + i)),
			Name:            string(rune('A' + i)),
			DurationMinutes: m,
		}
	}
	return attractions
}

func TestScheduleDayMorningOverflowDefersToAfternoon(t *testing.T) {
	// 180-minute morning: 60 and 60 fit, the 90 would run past 12:00 and
	// moves to the afternoon window.
	clk := DefaultClock()
	placed, dropped := ScheduleDay(withDurations(60, 60, 90), clk.Morning, clk.Afternoon)

	if len(dropped) != 0 {
		t.Fatalf("expected no drops, got %d", len(dropped))
	}
	if len(placed) != 3 {
		t.Fatalf("expected 3 placements, got %d", len(placed))
	}

	wantIntervals := [][2]int{
		{ClockTime(9, 0), ClockTime(10, 0)},
		{ClockTime(10, 0), ClockTime(11, 0)},
		{ClockTime(13, 0), ClockTime(14, 30)},
	}
	for i, want := range wantIntervals {
		if placed[i].Start != want[0] || placed[i].End != want[1] {
			t.Errorf("placement %d = [%d,%d), want [%d,%d)",
				i, placed[i].Start, placed[i].End, want[0], want[1])
		}
	}
}

func TestScheduleDaySkipDoesNotBlockLaterFits(t *testing.T) {
	// The 190-minute visit cannot fit the 180-minute morning, but the scan
	// continues and the following 60-minute visit is placed at 09:00. The
	// skipped one then fits the 240-minute afternoon.
	clk := DefaultClock()
	placed, dropped := ScheduleDay(withDurations(190, 60), clk.Morning, clk.Afternoon)

	if len(dropped) != 0 {
		t.Fatalf("expected no drops, got %d", len(dropped))
	}
	if len(placed) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(placed))
	}
	if placed[0].Attraction.DurationMinutes != 60 || placed[0].Start != ClockTime(9, 0) {
		t.Errorf("morning placement = %dmin at %d, want 60min at 09:00",
			placed[0].Attraction.DurationMinutes, placed[0].Start)
	}
	if placed[1].Attraction.DurationMinutes != 190 || placed[1].Start != ClockTime(13, 0) {
		t.Errorf("afternoon placement = %dmin at %d, want 190min at 13:00",
			placed[1].Attraction.DurationMinutes, placed[1].Start)
	}
}

func TestScheduleDayDropsWhatFitsNowhere(t *testing.T) {
	// 300 minutes exceeds both windows; it is silently dropped, not an error.
	clk := DefaultClock()
	placed, dropped := ScheduleDay(withDurations(300, 120), clk.Morning, clk.Afternoon)

	if len(placed) != 1 || placed[0].Attraction.DurationMinutes != 120 {
		t.Fatalf("expected only the 120-minute visit placed, got %d placements", len(placed))
	}
	if len(dropped) != 1 || dropped[0].DurationMinutes != 300 {
		t.Fatalf("expected the 300-minute visit dropped, got %v", dropped)
	}
}

func TestScheduleDayExactDurationAndOrder(t *testing.T) {
	clk := DefaultClock()
	bucket := withDurations(45, 30, 45, 30, 60)
	placed, _ := ScheduleDay(bucket, clk.Morning, clk.Afternoon)

	// Every assigned interval matches the estimated duration exactly.
	for _, sa := range placed {
		if sa.End-sa.Start != sa.Attraction.DurationMinutes*60 {
			t.Errorf("%s interval %d != duration %d",
				sa.Attraction.ID, sa.End-sa.Start, sa.Attraction.DurationMinutes*60)
		}
	}

	// Placement preserves the bucket's relative order.
	seen := map[string]int{}
	for i, sa := range placed {
		seen[sa.Attraction.ID] = i
	}
	last := -1
	for _, a := range bucket {
		idx, ok := seen[a.ID]
		if !ok {
			continue
		}
		if idx < last {
			t.Fatalf("placement order does not preserve bucket order")
		}
		last = idx
	}
}

func TestScheduleDayWindowContainment(t *testing.T) {
	clk := DefaultClock()
	placed, _ := ScheduleDay(withDurations(90, 90, 90, 90, 90), clk.Morning, clk.Afternoon)

	for _, sa := range placed {
		inMorning := sa.Start >= clk.Morning.Start && sa.End <= clk.Morning.End
		inAfternoon := sa.Start >= clk.Afternoon.Start && sa.End <= clk.Afternoon.End
		if !inMorning && !inAfternoon {
			t.Errorf("%s placed at [%d,%d) outside both windows", sa.Attraction.ID, sa.Start, sa.End)
		}
	}
}

func TestScheduleDayEmptyBucket(t *testing.T) {
	clk := DefaultClock()
	placed, dropped := ScheduleDay(nil, clk.Morning, clk.Afternoon)
	if len(placed) != 0 || len(dropped) != 0 {
		t.Fatalf("empty bucket should schedule nothing")
	}
}
