package http

import (
	"errors"
	"net/http"

	"github.com/acmchapter/portal-api/internal/domain/contract"
	"github.com/acmchapter/portal-api/internal/handler/http/dto"
	"github.com/acmchapter/portal-api/internal/infrastructure/metrics"
	usecasecontract "github.com/acmchapter/portal-api/internal/usecase/contract"
	"github.com/acmchapter/portal-api/internal/utils"
	"github.com/gin-gonic/gin"
)

type UpvoteHandler struct {
	upvoteUsecase usecasecontract.IUpvoteUseCase
}

func NewUpvoteHandler(upvoteUsecase usecasecontract.IUpvoteUseCase) *UpvoteHandler {
	return &UpvoteHandler{
		upvoteUsecase: upvoteUsecase,
	}
}

// respondUpvoteError maps the ledger error taxonomy onto HTTP statuses.
// Invalid identifiers and missing blogs both read as "not found" at the
// boundary; anything else is a store fault and stays opaque to the client.
func respondUpvoteError(c *gin.Context, operation string, err error) {
	if errors.Is(err, contract.ErrBlogNotFound) || errors.Is(err, contract.ErrInvalidBlogID) {
		metrics.UpvoteErrors.WithLabelValues(operation, "not_found").Inc()
		ErrorHandler(c, http.StatusNotFound, "Blog not found")
		return
	}
	metrics.UpvoteErrors.WithLabelValues(operation, "store").Inc()
	ErrorHandler(c, http.StatusInternalServerError, "Internal Server Error")
}

// CheckUpvoteHandler handles GET /api/blog/:id/upvote-check.
func (h *UpvoteHandler) CheckUpvoteHandler(c *gin.Context) {
	blogID := c.Param("id")
	clientIP := utils.ResolveClientIP(c.Request.Header, c.Request.RemoteAddr)

	hasUpvoted, err := h.upvoteUsecase.CheckUpvoted(c.Request.Context(), blogID, clientIP)
	if err != nil {
		respondUpvoteError(c, "check", err)
		return
	}

	metrics.UpvoteChecks.WithLabelValues(checkResultLabel(hasUpvoted)).Inc()
	SuccessHandler(c, http.StatusOK, dto.UpvoteCheckResponse{HasUpvoted: hasUpvoted})
}

// RecordUpvoteHandler handles POST /api/blog/:id/upvote.
func (h *UpvoteHandler) RecordUpvoteHandler(c *gin.Context) {
	blogID := c.Param("id")
	clientIP := utils.ResolveClientIP(c.Request.Header, c.Request.RemoteAddr)

	result, err := h.upvoteUsecase.RecordUpvote(c.Request.Context(), blogID, clientIP)
	if err != nil {
		respondUpvoteError(c, "record", err)
		return
	}

	if result.Recorded {
		metrics.UpvotesRecorded.Inc()
	} else {
		metrics.UpvotesDuplicate.Inc()
	}
	SuccessHandler(c, http.StatusOK, dto.UpvoteResponse{
		UpvoteCount: result.UpvoteCount,
		Recorded:    result.Recorded,
	})
}

// GetUpvoteCountHandler handles GET /api/blog/:id/upvotes.
func (h *UpvoteHandler) GetUpvoteCountHandler(c *gin.Context) {
	blogID := c.Param("id")

	count, err := h.upvoteUsecase.GetUpvoteCount(c.Request.Context(), blogID)
	if err != nil {
		respondUpvoteError(c, "count", err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.UpvoteCountResponse{UpvoteCount: count})
}

func checkResultLabel(hasUpvoted bool) string {
	if hasUpvoted {
		return "upvoted"
	}
	return "not_upvoted"
}
