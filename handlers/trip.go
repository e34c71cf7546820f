package handlers

import (
	"net/http"
	"strconv"

	"wayfare/cron"
	tripRepo "wayfare/database/repository/trip"
	"wayfare/models"
	"wayfare/services/planning"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TripHandler exposes trip CRUD and hotel assignment.
type TripHandler struct {
	Repo    tripRepo.TripRepository
	Planner planning.PlanningService
	Queue   *asynq.Client
	Logger  *zap.Logger
}

// NewTripHandler creates a TripHandler with its dependencies.
func NewTripHandler(repo tripRepo.TripRepository, planner planning.PlanningService, queue *asynq.Client, logger *zap.Logger) *TripHandler {
	return &TripHandler{Repo: repo, Planner: planner, Queue: queue, Logger: logger}
}

// CreateTripHandler registers a new trip-planning session.
func (h *TripHandler) CreateTripHandler(c *gin.Context) {
	var input struct {
		Name            string            `json:"name"`
		HomeCity        string            `json:"homeCity" binding:"required"`
		DestinationCity string            `json:"destinationCity" binding:"required"`
		Window          models.TripWindow `json:"window" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if _, err := input.Window.Days(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid trip window", err.Error())
		return
	}

	trip := &models.Trip{
		ID:              uuid.New().String(),
		Name:            input.Name,
		HomeCity:        input.HomeCity,
		DestinationCity: input.DestinationCity,
		Window:          input.Window,
	}
	if err := h.Repo.Create(trip); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create trip", err.Error())
		return
	}

	c.JSON(http.StatusCreated, trip)
}

// GetTripsHandler lists all trips.
func (h *TripHandler) GetTripsHandler(c *gin.Context) {
	trips, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch trips", err.Error())
		return
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	c.JSON(http.StatusOK, trips)
}

// GetTripByIDHandler fetches one trip.
func (h *TripHandler) GetTripByIDHandler(c *gin.Context) {
	trip, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "trip not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DeleteTripHandler removes a trip.
func (h *TripHandler) DeleteTripHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "trip not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip deleted"})
}

// AssignHotelHandler sets the hotel for one day of a trip and queues a full
// plan regeneration; the stored plan is stale until the worker finishes.
func (h *TripHandler) AssignHotelHandler(c *gin.Context) {
	tripID := c.Param("id")
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		utils.JSONError(c, http.StatusBadRequest, "invalid day", "day must be a positive 1-based index")
		return
	}

	trip, err := h.Repo.GetByID(tripID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "trip not found", err.Error())
		return
	}
	if numberOfDays, werr := trip.Window.Days(); werr == nil && day > numberOfDays {
		utils.JSONError(c, http.StatusBadRequest, "invalid day", "day is beyond the trip window")
		return
	}

	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel", err.Error())
		return
	}

	if err := h.Repo.SetHotel(tripID, day, hotel); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to assign hotel", err.Error())
		return
	}

	if err := cron.EnqueueRebuild(h.Queue, tripID); err != nil {
		// The assignment succeeded; the client can still rebuild synchronously.
		h.Logger.Warn("failed to enqueue plan rebuild",
			zap.String("trip", tripID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"message": "hotel assigned", "day": day})
}
