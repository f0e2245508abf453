package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/promoter-portal-api/internal/storage/object"
)

// fakeStore serves objects from a map and records listing calls.
type fakeStore struct {
	objects      map[string][]byte // key -> content
	order        []string          // listing order
	failDownload map[string]bool
	listErr      error
	listCalls    int
}

func newFakeStore(prefix string, names ...string) *fakeStore {
	s := &fakeStore{
		objects:      make(map[string][]byte),
		failDownload: make(map[string]bool),
	}
	for _, name := range names {
		key := prefix + name
		s.objects[key] = []byte("content of " + name)
		s.order = append(s.order, key)
	}
	return s
}

func (s *fakeStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	return errors.New("not implemented")
}

func (s *fakeStore) ListPage(ctx context.Context, prefix string, pageSize, page int) ([]object.Info, error) {
	s.listCalls++
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

func (s *fakeStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	if s.failDownload[key] {
		return nil, errors.New("download failed")
	}
	content, ok := s.objects[key]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (s *fakeStore) Remove(ctx context.Context, key string) error { return nil }

func (s *fakeStore) PublicURL(key string) string { return "http://store.test/" + key }

func readEntries(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestBuildEventArchiveEntryCountMatchesListing(t *testing.T) {
	store := newFakeStore("e1/", "a.jpg", "b.jpg", "c.jpg")
	var buf bytes.Buffer

	res, err := BuildEventArchive(context.Background(), store, "e1", 100, &buf)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Entries)
	assert.Equal(t, 0, res.Skipped)
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, readEntries(t, &buf))
}

func TestBuildEventArchiveUsesBareFilenames(t *testing.T) {
	store := newFakeStore("e1/", "123-photo.png")
	var buf bytes.Buffer

	_, err := BuildEventArchive(context.Background(), store, "e1", 100, &buf)
	require.NoError(t, err)

	names := readEntries(t, &buf)
	require.Len(t, names, 1)
	assert.Equal(t, "123-photo.png", names[0], "entry should not carry the event prefix")
}

func TestBuildEventArchiveEmptyPrefix(t *testing.T) {
	store := newFakeStore("e1/")
	var buf bytes.Buffer

	res, err := BuildEventArchive(context.Background(), store, "e1", 100, &buf)
	require.NoError(t, err, "zero objects should produce an empty archive, not an error")

	assert.Equal(t, 0, res.Entries)
	assert.Empty(t, readEntries(t, &buf))
}

func TestBuildEventArchiveSkipsPlaceholders(t *testing.T) {
	store := newFakeStore("e1/", "sub/", "real.jpg")
	var buf bytes.Buffer

	res, err := BuildEventArchive(context.Background(), store, "e1", 100, &buf)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Entries)
	assert.Equal(t, []string{"real.jpg"}, readEntries(t, &buf))
}

func TestBuildEventArchiveSkipsFailedDownloads(t *testing.T) {
	store := newFakeStore("e1/", "ok1.jpg", "broken.jpg", "ok2.jpg")
	store.failDownload["e1/broken.jpg"] = true
	var buf bytes.Buffer

	res, err := BuildEventArchive(context.Background(), store, "e1", 100, &buf)
	require.NoError(t, err, "a single failed download must not fail the export")

	assert.Equal(t, 2, res.Entries)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, []string{"ok1.jpg", "ok2.jpg"}, readEntries(t, &buf))
}

func TestBuildEventArchiveAbortsOnListingFailure(t *testing.T) {
	store := newFakeStore("e1/", "a.jpg")
	store.listErr = errors.New("listing blew up")
	var buf bytes.Buffer

	_, err := BuildEventArchive(context.Background(), store, "e1", 100, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing blew up")

	// Nothing may reach the writer when the very first listing fails, so
	// the HTTP layer can still send an error status.
	assert.Zero(t, buf.Len(), "a first-page listing failure must not write any bytes")
}

func TestBuildEventArchivePagesUntilShortPage(t *testing.T) {
	var names []string
	for i := 0; i < 7; i++ {
		names = append(names, fmt.Sprintf("p%d.jpg", i))
	}
	store := newFakeStore("e1/", names...)
	var buf bytes.Buffer

	res, err := BuildEventArchive(context.Background(), store, "e1", 3, &buf)
	require.NoError(t, err)

	assert.Equal(t, 7, res.Entries)
	// pages of 3, 3, 1; the short page ends the loop
	assert.Equal(t, 3, store.listCalls)
}

func TestBuildEventArchiveExactPageBoundary(t *testing.T) {
	store := newFakeStore("e1/", "a.jpg", "b.jpg", "c.jpg")
	var buf bytes.Buffer

	res, err := BuildEventArchive(context.Background(), store, "e1", 3, &buf)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Entries)
	// full page then an empty one to detect the end
	assert.Equal(t, 2, store.listCalls)
}
