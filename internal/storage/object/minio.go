package object

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/gravadigital/promoter-portal-api/internal/config"
	"github.com/gravadigital/promoter-portal-api/internal/logger"
)

// MinioStore implements Store against a MinIO (or S3-compatible) bucket.
// It is constructed once at startup and injected into everything that needs
// object storage, so all calls share one configured client.
type MinioStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	log           *log.Logger
}

// NewMinioStore connects to the configured endpoint and verifies the bucket
// exists, creating it when it does not.
func NewMinioStore(ctx context.Context, cfg *config.Config) (*MinioStore, error) {
	l := logger.Storage()

	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", cfg.Storage.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Storage.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", cfg.Storage.Bucket, err)
		}
		l.Info("Created bucket", "bucket", cfg.Storage.Bucket)
	}

	publicBase := cfg.Storage.PublicBaseURL
	if publicBase == "" {
		scheme := "http"
		if cfg.Storage.Secure {
			scheme = "https"
		}
		publicBase = scheme + "://" + cfg.Storage.Endpoint + "/" + cfg.Storage.Bucket
	}

	l.Info("Object storage client initialized", "endpoint", cfg.Storage.Endpoint, "bucket", cfg.Storage.Bucket)

	return &MinioStore{
		client:        client,
		bucket:        cfg.Storage.Bucket,
		publicBaseURL: strings.TrimRight(publicBase, "/"),
		log:           l,
	}, nil
}

func (s *MinioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	s.log.Debug("uploading object", "key", key, "size", size)

	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.log.Error("failed to upload object", "key", key, "error", err)
		return fmt.Errorf("failed to upload object %q: %w", key, err)
	}

	return nil
}

func (s *MinioStore) ListPage(ctx context.Context, prefix string, pageSize, page int) ([]Info, error) {
	s.log.Debug("listing objects", "prefix", prefix, "page", page, "page_size", pageSize)

	offset := page * pageSize
	infos := make([]Info, 0, pageSize)

	// The cancel stops the listing goroutine once the page is cut; without
	// it the stream keeps running until the request context ends.
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// ListObjects streams; pages are cut out of the stream by position so the
	// short-page termination contract holds for callers.
	seen := 0
	for obj := range s.client.ListObjects(listCtx, s.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			s.log.Error("failed to list objects", "prefix", prefix, "error", obj.Err)
			return nil, fmt.Errorf("failed to list objects under %q: %w", prefix, obj.Err)
		}
		if seen < offset {
			seen++
			continue
		}
		if len(infos) == pageSize {
			break
		}
		infos = append(infos, Info{
			Key:           obj.Key,
			Size:          obj.Size,
			IsPlaceholder: strings.HasSuffix(obj.Key, "/"),
		})
		seen++
	}

	return infos, nil
}

func (s *MinioStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download object %q: %w", key, err)
	}

	// GetObject is lazy; Stat forces the first request so missing objects
	// surface here instead of on first read.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, fmt.Errorf("failed to download object %q: %w", key, err)
	}

	return obj, nil
}

func (s *MinioStore) Remove(ctx context.Context, key string) error {
	s.log.Debug("removing object", "key", key)

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		s.log.Error("failed to remove object", "key", key, "error", err)
		return fmt.Errorf("failed to remove object %q: %w", key, err)
	}

	return nil
}

func (s *MinioStore) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}
