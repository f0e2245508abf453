package handlers

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/promoter-portal-api/internal/storage/object"
)

type stubStore struct {
	objects map[string][]byte
	order   []string
	listErr error
}

func newStubStore() *stubStore {
	return &stubStore{objects: make(map[string][]byte)}
}

func (s *stubStore) add(key string, data []byte) {
	s.objects[key] = data
	s.order = append(s.order, key)
}

func (s *stubStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	panic("not used")
}

func (s *stubStore) ListPage(ctx context.Context, prefix string, pageSize, page int) ([]object.Info, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}

	var matched []object.Info
	for _, key := range s.order {
		if strings.HasPrefix(key, prefix) {
			matched = append(matched, object.Info{
				Key:           key,
				Size:          int64(len(s.objects[key])),
				IsPlaceholder: strings.HasSuffix(key, "/"),
			})
		}
	}

	start := page * pageSize
	if start >= len(matched) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (s *stubStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *stubStore) Remove(ctx context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func (s *stubStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func newArchiveRouter(store object.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/photos/zip", NewArchiveHandler(store, 100).Download)
	return router
}

func TestArchiveDownloadRequiresEventID(t *testing.T) {
	router := newArchiveRouter(newStubStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/photos/zip", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "eventId is required", w.Body.String())
}

func TestArchiveDownloadStreamsZip(t *testing.T) {
	store := newStubStore()
	store.add("event-1/a.jpg", []byte("first"))
	store.add("event-1/b.jpg", []byte("second"))
	store.add("event-2/c.jpg", []byte("other event"))

	router := newArchiveRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/photos/zip?eventId=event-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="event-1.zip"`, w.Header().Get("Content-Disposition"))

	reader, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	require.Len(t, reader.File, 2)

	names := []string{reader.File[0].Name, reader.File[1].Name}
	assert.ElementsMatch(t, []string{"a.jpg", "b.jpg"}, names)
}

func TestArchiveDownloadEmptyEventYieldsEmptyZip(t *testing.T) {
	router := newArchiveRouter(newStubStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/photos/zip?eventId=event-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	reader, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	assert.Empty(t, reader.File)
}

func TestArchiveDownloadFailsWhenListingFails(t *testing.T) {
	store := newStubStore()
	store.listErr = errors.New("storage unreachable")

	router := newArchiveRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/photos/zip?eventId=event-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "storage unreachable")
}

func TestArchiveDownloadSkipsPlaceholders(t *testing.T) {
	store := newStubStore()
	store.add("event-1/", nil)
	store.add("event-1/a.jpg", []byte("data"))

	router := newArchiveRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/photos/zip?eventId=event-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	reader, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	require.Len(t, reader.File, 1)
	assert.Equal(t, "a.jpg", reader.File[0].Name)
}
