// Package storage persists uploaded claim documents in an S3-compatible
// object store and hands out short-lived download links.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/claimdesk/claims-intake/internal/common"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	URLTTL    time.Duration
}

type ObjectStore interface {
	// Put uploads the payload and returns the object key it was stored under.
	Put(ctx context.Context, claimID uuid.UUID, filename, contentType string, data []byte) (string, error)
	// SignedURL returns a presigned download link that expires after the
	// configured TTL.
	SignedURL(ctx context.Context, key, filename string) (string, time.Time, error)
	// EnsureBucket creates the bucket when it does not exist yet. Safe to
	// call on every startup.
	EnsureBucket(ctx context.Context) error
}

type objectStore struct {
	client *minio.Client
	bucket string
	urlTTL time.Duration
	logger *slog.Logger
}

func NewObjectStore(cfg Config, logger *slog.Logger) (ObjectStore, error) {
	if cfg.URLTTL <= 0 {
		cfg.URLTTL = 15 * time.Minute
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}
	return &objectStore{
		client: client,
		bucket: cfg.Bucket,
		urlTTL: cfg.URLTTL,
		logger: logger,
	}, nil
}

func (s *objectStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("bucket check: %w", err)
	}
	if exists {
		return nil
	}
	s.logger.Info("creating storage bucket", "bucket", s.bucket)
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

func (s *objectStore) Put(ctx context.Context, claimID uuid.UUID, filename, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("claims/%s/%s-%s", claimID, uuid.NewString()[:8], filename)
	start := time.Now()

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.Error("storage.put.error", "bucket", s.bucket, "key", key, "error", err)
		return "", &common.UpstreamError{Stage: common.StageStorage, Cause: err}
	}

	s.logger.Info("storage.put.ok",
		"bucket", s.bucket,
		"key", key,
		"size_bytes", len(data),
		"elapsed_ms", time.Since(start).Milliseconds())
	return key, nil
}

func (s *objectStore) SignedURL(ctx context.Context, key, filename string) (string, time.Time, error) {
	params := url.Values{}
	if filename != "" {
		params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.urlTTL, params)
	if err != nil {
		s.logger.Error("storage.sign.error", "bucket", s.bucket, "key", key, "error", err)
		return "", time.Time{}, &common.UpstreamError{Stage: common.StageStorage, Cause: err}
	}
	return u.String(), time.Now().Add(s.urlTTL), nil
}
