package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation happens before any repository access, so a handler wired
// with nil dependencies is enough to pin down the 400 contract.
func newPhotoRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewPhotoHandler(nil, nil, nil, 200)
	router.POST("/api/events/:id/photos", h.Upload)
	router.GET("/api/photos", h.List)
	router.DELETE("/api/photos/:id", h.Delete)
	return router
}

func TestUploadRejectsMalformedEventID(t *testing.T) {
	router := newPhotoRouter()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/not-a-uuid/photos", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRejectsMalformedEventFilter(t *testing.T) {
	router := newPhotoRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/photos?event=bogus", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRejectsMalformedID(t *testing.T) {
	router := newPhotoRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/photos/bogus", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRequiresAtLeastOneFile(t *testing.T) {
	router := newPhotoRouter()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/0f0e87a4-94a1-4f3e-9a2e-2b3a1c8b2a11/photos", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least one photo")
}

func TestCreateReportingRequiresAnswers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewReportingHandler(nil, nil, nil, 100)
	router.POST("/api/events/:id/reportings", h.Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/0f0e87a4-94a1-4f3e-9a2e-2b3a1c8b2a11/reportings", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
