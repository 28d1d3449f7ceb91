package http_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/acmchapter/portal-api/internal/domain/contract"
	handler "github.com/acmchapter/portal-api/internal/handler/http"
	"github.com/acmchapter/portal-api/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(h *handler.UpvoteHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/blog/:id/upvote-check", h.CheckUpvoteHandler)
	r.GET("/api/blog/:id/upvotes", h.GetUpvoteCountHandler)
	r.POST("/api/blog/:id/upvote", h.RecordUpvoteHandler)
	return r
}

func TestCheckUpvote(t *testing.T) {
	mockUsecase := mocks.NewMockUpvoteUsecase()
	mockUsecase.MockHasUpvoted = true
	r := setupRouter(handler.NewUpvoteHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/blog/65f1c0ffee0ddba11ca7e9aa/upvote-check", nil)
	req.Header.Set("X-Client-IP", "1.2.3.4")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hasUpvoted":true}`, w.Body.String())
	assert.Equal(t, "65f1c0ffee0ddba11ca7e9aa", mockUsecase.LastBlogID)
	assert.Equal(t, "1.2.3.4", mockUsecase.LastClientID)
}

func TestCheckUpvote_NotUpvoted(t *testing.T) {
	mockUsecase := mocks.NewMockUpvoteUsecase()
	r := setupRouter(handler.NewUpvoteHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/blog/65f1c0ffee0ddba11ca7e9aa/upvote-check", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hasUpvoted":false}`, w.Body.String())
}

func TestCheckUpvote_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockUpvoteUsecase()
	mockUsecase.FailWith = fmt.Errorf("failed to check upvote status: %w", contract.ErrBlogNotFound)
	r := setupRouter(handler.NewUpvoteHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/blog/65f1c0ffee0ddba11ca7e9aa/upvote-check", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Blog not found"}`, w.Body.String())
}

func TestCheckUpvote_InvalidIDMapsToNotFound(t *testing.T) {
	mockUsecase := mocks.NewMockUpvoteUsecase()
	mockUsecase.FailWith = fmt.Errorf("blog id 'nope': %w", contract.ErrInvalidBlogID)
	r := setupRouter(handler.NewUpvoteHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/blog/nope/upvote-check", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Blog not found"}`, w.Body.String())
}

func TestCheckUpvote_StoreFault(t *testing.T) {
	mockUsecase := mocks.NewMockUpvoteUsecase()
	mockUsecase.FailWith = fmt.Errorf("failed to retrieve blog post: connection reset")
	r := setupRouter(handler.NewUpvoteHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/blog/65f1c0ffee0ddba11ca7e9aa/upvote-check", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

func TestRecordUpvote(t *testing.T) {
	mockUsecase := mocks.NewMockUpvoteUsecase()
	mockUsecase.MockUpvoteCount = 8
	mockUsecase.MockRecorded = true
	r := setupRouter(handler.NewUpvoteHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/blog/65f1c0ffee0ddba11ca7e9aa/upvote", nil)
	req.Header.Set("X-Forwarded-For", "9.9.9.9, 5.5.5.5")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"upvoteCount":8,"recorded":true}`, w.Body.String())
	assert.Equal(t, "9.9.9.9", mockUsecase.LastClientID)
}

func TestRecordUpvote_Duplicate(t *testing.T) {
	mockUsecase := mocks.NewMockUpvoteUsecase()
	mockUsecase.MockUpvoteCount = 8
	mockUsecase.MockRecorded = false
	r := setupRouter(handler.NewUpvoteHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/blog/65f1c0ffee0ddba11ca7e9aa/upvote", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"upvoteCount":8,"recorded":false}`, w.Body.String())
}

func TestRecordUpvote_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockUpvoteUsecase()
	mockUsecase.FailWith = fmt.Errorf("failed to record upvote: %w", contract.ErrBlogNotFound)
	r := setupRouter(handler.NewUpvoteHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/blog/65f1c0ffee0ddba11ca7e9aa/upvote", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Blog not found"}`, w.Body.String())
}

func TestGetUpvoteCount(t *testing.T) {
	mockUsecase := mocks.NewMockUpvoteUsecase()
	mockUsecase.MockUpvoteCount = 42
	r := setupRouter(handler.NewUpvoteHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/blog/65f1c0ffee0ddba11ca7e9aa/upvotes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"upvoteCount":42}`, w.Body.String())
}
