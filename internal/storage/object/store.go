package object

import (
	"context"
	"io"
)

// Info describes a single listed object.
type Info struct {
	// Key is the full object key, e.g. "<eventID>/<uuid>-photo.jpg".
	Key string
	// Size in bytes. Directory placeholders report zero.
	Size int64
	// IsPlaceholder marks "directory" entries some stores synthesize for
	// empty prefixes. Placeholders are skipped by every consumer.
	IsPlaceholder bool
}

// Store is the object storage collaborator: upload-by-path, paged
// list-by-prefix, download-by-path and public URL derivation, all scoped to a
// single bucket.
type Store interface {
	// Put stores the object under key and returns nothing but an error.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// ListPage lists objects under prefix, pageSize entries per page,
	// starting at the given zero-based page. A returned slice shorter than
	// pageSize means there are no further pages.
	ListPage(ctx context.Context, prefix string, pageSize, page int) ([]Info, error)

	// Download fetches the object bytes. The caller must close the reader.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Remove deletes a single object. Removing a missing object is not an
	// error.
	Remove(ctx context.Context, key string) error

	// PublicURL derives the externally reachable URL for an object key.
	PublicURL(key string) string
}
