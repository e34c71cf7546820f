package tripRepo

import "wayfare/models"

// TripRepository defines methods for trip data access.
type TripRepository interface {
	// GetByID retrieves a trip by its unique ID.
	GetByID(id string) (*models.Trip, error)
	// GetAll retrieves all trips.
	GetAll() ([]models.Trip, error)
	// Create inserts a new trip record.
	Create(trip *models.Trip) error
	// Update modifies an existing trip record.
	Update(trip *models.Trip) error
	// Delete removes a trip record by its ID.
	Delete(id string) error
	// SetHotel assigns a hotel to the given 1-based day of a trip.
	SetHotel(id string, day int, hotel models.Hotel) error
	// SetPlan stores a freshly generated plan on a trip.
	SetPlan(id string, plan *models.TripPlan) error
}
