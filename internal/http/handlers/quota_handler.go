// README: Quota handler reporting the caller's remaining monthly generations.
package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripgen/internal/http/middleware"
)

// QuotaReader is the read side of aiusage.Service.
type QuotaReader interface {
	Remaining(ctx context.Context, uid string) (int, error)
	Limit() int
}

type QuotaHandler struct {
	quota QuotaReader
}

func NewQuotaHandler(q QuotaReader) *QuotaHandler {
	return &QuotaHandler{quota: q}
}

type quotaResp struct {
	Remaining int `json:"remaining"`
	Limit     int `json:"limit"`
}

// Get handles GET /api/quota.
func (h *QuotaHandler) Get(c *gin.Context) {
	n, err := h.quota.Remaining(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		log.Printf("request_id=%s quota: %v", middleware.RequestIDFromContext(c), err)
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, quotaResp{Remaining: n, Limit: h.quota.Limit()})
}
