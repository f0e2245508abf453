package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gravadigital/promoter-portal-api/internal/logger"
	"github.com/gravadigital/promoter-portal-api/internal/storage/object"
)

// DefaultPageSize is the listing page size used when the caller passes <= 0.
const DefaultPageSize = 100

// Result summarizes a finished export.
type Result struct {
	// Entries is the number of files written into the archive.
	Entries int
	// Skipped is the number of listed objects whose download failed and
	// were left out. Partial archives are tolerated by contract.
	Skipped int
}

// BuildEventArchive streams a zip of every object stored under
// "<eventID>/" into w.
//
// Listing is paged; a page shorter than pageSize ends the loop. Directory
// placeholders are skipped. A failed download skips that one file and moves
// on; a failed listing aborts the whole export. Entry order follows listing
// order and each entry is stored under its bare filename.
func BuildEventArchive(ctx context.Context, store object.Store, eventID string, pageSize int, w io.Writer) (Result, error) {
	log := logger.Archive()

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	prefix := eventID + "/"

	zw := zip.NewWriter(w)
	res := Result{}

	for page := 0; ; page++ {
		infos, err := store.ListPage(ctx, prefix, pageSize, page)
		if err != nil {
			// Do not close the writer here: closing flushes the zip end
			// record into w, and on a first-page failure the handler still
			// needs a clean stream to report the error on. A mid-stream
			// failure leaves a truncated archive either way.
			return res, fmt.Errorf("failed to list objects for event %s: %w", eventID, err)
		}

		for _, info := range infos {
			if info.IsPlaceholder {
				continue
			}

			if err := addObject(ctx, store, zw, info.Key); err != nil {
				log.Warn("skipping file after download failure", "key", info.Key, "error", err)
				res.Skipped++
				continue
			}
			res.Entries++
		}

		if len(infos) < pageSize {
			break
		}
	}

	if err := zw.Close(); err != nil {
		return res, fmt.Errorf("failed to finalize archive: %w", err)
	}

	log.Info("archive built", "event_id", eventID, "entries", res.Entries, "skipped", res.Skipped)
	return res, nil
}

// addObject downloads one object and writes it into the archive under its
// bare filename.
func addObject(ctx context.Context, store object.Store, zw *zip.Writer, key string) error {
	rc, err := store.Download(ctx, key)
	if err != nil {
		return err
	}
	defer rc.Close()

	entry, err := zw.Create(baseName(key))
	if err != nil {
		return err
	}

	if _, err := io.Copy(entry, rc); err != nil {
		return err
	}

	return nil
}

// baseName strips the prefix path from an object key.
func baseName(key string) string {
	if i := strings.LastIndex(key, "/"); i >= 0 {
		return key[i+1:]
	}
	return key
}
