package http

import (
	"context"
	"net/http"
	"time"

	"github.com/acmchapter/portal-api/internal/handler/http/dto"
	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by the database client.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthzHandler handles GET /healthz. A failing store ping degrades the
// probe but does not crash anything: each request is handled in isolation.
func (h *HealthHandler) HealthzHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if h.store != nil {
		if err := h.store.Ping(ctx); err != nil {
			SuccessHandler(c, http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded"})
			return
		}
	}
	SuccessHandler(c, http.StatusOK, dto.HealthResponse{Status: "ok"})
}
