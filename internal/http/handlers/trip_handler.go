// README: Trip handlers for generate/list/get.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripgen/internal/modules/prompt"
	"tripgen/internal/modules/tripplan"
	"tripgen/internal/modules/trips"
	"tripgen/internal/service"
)

// TripService is the part of service.TripPlanner the handlers need.
type TripService interface {
	Generate(ctx context.Context, owner trips.Owner, in service.GenerateInput) (*trips.Trip, error)
	Get(ctx context.Context, owner trips.Owner, id string) (*trips.Trip, error)
	List(ctx context.Context, owner trips.Owner) ([]*trips.Trip, error)
}

type TripHandler struct {
	trips   TripService
	timeout time.Duration
}

// NewTripHandler bounds each generation by timeout; zero means the request context only.
func NewTripHandler(svc TripService, timeout time.Duration) *TripHandler {
	return &TripHandler{trips: svc, timeout: timeout}
}

// budget may arrive as a tier name or as a number.
type createTripReq struct {
	Destination   string        `json:"destination"`
	PlaceID       string        `json:"placeId"`
	Days          int           `json:"days"`
	TravelingWith string        `json:"travelingWith"`
	Budget        tripplan.Text `json:"budget"`
	Intensity     string        `json:"intensity"`
	Travelers     string        `json:"travelers"`
}

// Create handles POST /api/trips.
func (h *TripHandler) Create(c *gin.Context) {
	var req createTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	trip, err := h.trips.Generate(ctx, callerOwner(c), service.GenerateInput{
		Request: prompt.Request{
			Destination:   req.Destination,
			Days:          req.Days,
			TravelingWith: prompt.Companions(req.TravelingWith),
			Budget:        string(req.Budget),
			Intensity:     prompt.Intensity(req.Intensity),
		},
		PlaceID:   req.PlaceID,
		Travelers: req.Travelers,
	})
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"trip": trip})
}

// List handles GET /api/trips.
func (h *TripHandler) List(c *gin.Context) {
	list, err := h.trips.List(c.Request.Context(), callerOwner(c))
	if err != nil {
		writeTripError(c, err)
		return
	}
	if list == nil {
		list = []*trips.Trip{}
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": list})
}

// Get handles GET /api/trips/:id.
func (h *TripHandler) Get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing trip id")
		return
	}
	trip, err := h.trips.Get(c.Request.Context(), callerOwner(c), id)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"trip": trip})
}
