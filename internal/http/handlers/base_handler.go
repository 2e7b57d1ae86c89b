// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripgen/internal/http/middleware"
	"tripgen/internal/modules/trips"
	"tripgen/internal/service"
)

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func generationStatus(kind service.ErrorKind) int {
	switch kind {
	case service.KindBadRequest:
		return http.StatusBadRequest
	case service.KindQuota:
		return http.StatusTooManyRequests
	case service.KindOverloaded:
		return http.StatusServiceUnavailable
	case service.KindBackend:
		return http.StatusBadGateway
	case service.KindInvalidPlan:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeGenerationError(c *gin.Context, err error) {
	var gerr *service.GenerationError
	if !errors.As(err, &gerr) {
		log.Printf("request_id=%s generate: %v", middleware.RequestIDFromContext(c), err)
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if gerr.Err != nil && gerr.Kind != service.KindBadRequest {
		log.Printf("request_id=%s generate kind=%s: %v", middleware.RequestIDFromContext(c), gerr.Kind, gerr.Err)
	}
	writeJSON(c, generationStatus(gerr.Kind), errorResponse{Error: gerr.Message, Reason: gerr.Reason})
}

func writeTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trips.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		log.Printf("request_id=%s trips: %v", middleware.RequestIDFromContext(c), err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func callerOwner(c *gin.Context) trips.Owner {
	return trips.Owner{
		UID:   middleware.CallerUID(c),
		Email: middleware.CallerEmail(c),
		Name:  middleware.CallerName(c),
	}
}
