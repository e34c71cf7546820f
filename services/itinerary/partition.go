package itinerary

import "wayfare/models"

// PartitionDays splits an ordered attraction list into numberOfDays contiguous
// buckets of ceil(n/days) each. Relative order is preserved, every attraction
// lands in exactly one bucket, and days beyond the attraction supply receive
// an empty bucket. An empty input yields all-empty buckets, not an error.
func PartitionDays(attractions []models.Attraction, numberOfDays int) [][]models.Attraction {
	if numberOfDays < 1 {
		return nil
	}

	buckets := make([][]models.Attraction, numberOfDays)
	if len(attractions) == 0 {
		return buckets
	}

	perDay := (len(attractions) + numberOfDays - 1) / numberOfDays
	for d := 0; d < numberOfDays; d++ {
		lo := d * perDay
		if lo >= len(attractions) {
			break
		}
		hi := lo + perDay
		if hi > len(attractions) {
			hi = len(attractions)
		}
		buckets[d] = attractions[lo:hi]
	}
	return buckets
}
