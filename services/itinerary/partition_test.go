package itinerary

import (
	"fmt"
	"reflect"
	"testing"

	"wayfare/models"
)

func makeAttractions(n int) []models.Attraction {
	attractions := make([]models.Attraction, n)
	for i := range attractions {
		attractions[i] = models.Attraction{
			ID:              fmt.Sprintf("a%d", i+1),
			Name:            fmt.Sprintf("Attraction %d", i+1),
			Category:        "landmark",
			DurationMinutes: 60,
		}
	}
	return attractions
}

func TestPartitionDaysBucketSizes(t *testing.T) {
	tests := []struct {
		name  string
		count int
		days  int
		want  []int
	}{
		{"seven across three", 7, 3, []int{3, 3, 1}},
		{"even split", 6, 3, []int{2, 2, 2}},
		{"single day", 5, 1, []int{5}},
		{"more days than attractions", 2, 4, []int{1, 1, 0, 0}},
		{"empty input", 0, 3, []int{0, 0, 0}},
		{"one each", 3, 3, []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := PartitionDays(makeAttractions(tt.count), tt.days)
			if len(buckets) != tt.days {
				t.Fatalf("got %d buckets, want %d", len(buckets), tt.days)
			}
			for i, want := range tt.want {
				if len(buckets[i]) != want {
					t.Errorf("bucket %d has %d attractions, want %d", i, len(buckets[i]), want)
				}
			}
		})
	}
}

func TestPartitionDaysCoverage(t *testing.T) {
	attractions := makeAttractions(11)
	buckets := PartitionDays(attractions, 4)

	var rejoined []models.Attraction
	for _, b := range buckets {
		rejoined = append(rejoined, b...)
	}
	if !reflect.DeepEqual(rejoined, attractions) {
		t.Fatalf("concatenated buckets do not reconstruct the input list")
	}
}

func TestPartitionDaysInvalidDayCount(t *testing.T) {
	if got := PartitionDays(makeAttractions(3), 0); got != nil {
		t.Fatalf("expected nil for zero days, got %v", got)
	}
}
