package handlers

import (
	"net/http"

	"wayfare/services/export"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
)

// BuildPlanHandler regenerates a trip's itinerary synchronously and returns
// the fresh plan. Every call is a full regeneration from the current input
// snapshot; there is no partial update path.
func (h *TripHandler) BuildPlanHandler(c *gin.Context) {
	tripID := c.Param("id")
	if _, err := h.Repo.GetByID(tripID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "trip not found", err.Error())
		return
	}

	trip, err := h.Planner.BuildForTrip(c.Request.Context(), tripID)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to build itinerary", err.Error())
		return
	}
	c.JSON(http.StatusOK, trip.Plan)
}

// GetPlanHandler returns the stored per-day timelines for a trip.
func (h *TripHandler) GetPlanHandler(c *gin.Context) {
	trip, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "trip not found", err.Error())
		return
	}
	if trip.Plan == nil {
		utils.JSONError(c, http.StatusNotFound, "no plan generated yet", "build the itinerary first")
		return
	}
	c.JSON(http.StatusOK, trip.Plan)
}

// ExportTripHandler returns the whole trip as an XML document built from the
// flattened, pre-sorted stream.
func (h *TripHandler) ExportTripHandler(c *gin.Context) {
	trip, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "trip not found", err.Error())
		return
	}

	doc, err := export.TripXML(trip)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "export failed", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="itinerary.xml"`)
	c.Data(http.StatusOK, "application/xml", doc)
}
