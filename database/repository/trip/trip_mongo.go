package tripRepo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"wayfare/config"
	"wayfare/database"
	"wayfare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTripRepo implements TripRepository using MongoDB.
type MongoTripRepo struct {
	coll *mongo.Collection
}

// NewMongoTripRepo creates a new instance of TripRepository using MongoDB.
func NewMongoTripRepo() TripRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("trips")
	repo := &MongoTripRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoTripRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "destinationCity", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a trip by its unique ID.
func (r *MongoTripRepo) GetByID(id string) (*models.Trip, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var trip models.Trip
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&trip); err != nil {
		return nil, fmt.Errorf("failed to fetch trip with id %s: %w", id, err)
	}
	return &trip, nil
}

// GetAll retrieves all trips.
func (r *MongoTripRepo) GetAll() ([]models.Trip, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trips: %w", err)
	}
	defer cursor.Close(ctx)

	var trips []models.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %w", err)
	}
	return trips, nil
}

// Create inserts a new trip document.
func (r *MongoTripRepo) Create(trip *models.Trip) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, trip)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// Update modifies an existing trip document.
func (r *MongoTripRepo) Update(trip *models.Trip) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	trip.UpdatedAt = time.Now()
	filter := bson.M{"id": trip.ID}
	update := bson.M{"$set": trip}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update trip with id %s: %w", trip.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trip with id %s not found", trip.ID)
	}
	return nil
}

// Delete removes a trip document by its ID.
func (r *MongoTripRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete trip with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("trip with id %s not found", id)
	}
	return nil
}

// SetHotel assigns a hotel to one day of a trip.
func (r *MongoTripRepo) SetHotel(id string, day int, hotel models.Hotel) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"hotels." + strconv.Itoa(day): hotel,
		"updatedAt":                   time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set hotel on trip %s day %d: %w", id, day, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trip with id %s not found", id)
	}
	return nil
}

// SetPlan stores a freshly generated plan on a trip.
func (r *MongoTripRepo) SetPlan(id string, plan *models.TripPlan) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"plan":      plan,
		"updatedAt": time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to store plan on trip %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trip with id %s not found", id)
	}
	return nil
}
