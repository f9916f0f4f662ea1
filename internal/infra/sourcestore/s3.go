package sourcestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
)

const sourceContentType = "text/plain; charset=utf-8"

// S3Store archives sources in an S3-compatible bucket (R2, MinIO, S3).
type S3Store struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

// NewS3Store constructs the storage adapter.
func NewS3Store(endpoint, accessKey, secretKey, bucket, region string, logger *slog.Logger) (*S3Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := minio.New(sanitizeEndpoint(endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:       strings.HasPrefix(strings.ToLower(strings.TrimSpace(endpoint)), "https"),
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}
	return &S3Store{client: client, bucket: bucket, logger: logger.With("component", "sourcestore.s3")}, nil
}

func (s *S3Store) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err == nil && exists {
		return nil
	}
	err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
		return err
	}
	s.logger.Info("source bucket ready", "bucket", s.bucket)
	return nil
}

// Put uploads a source document.
func (s *S3Store) Put(ctx context.Context, key string, data []byte) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:      sourceContentType,
		DisableMultipart: true,
	})
	return err
}

// Get downloads a source document.
func (s *S3Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, false, err
	}
	defer obj.Close()
	if _, err := obj.Stat(); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, false, nil
		}
		return nil, false, err
	}
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

var _ summarizer.SourceStore = (*S3Store)(nil)

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if idx := strings.Index(raw, "/"); idx >= 0 {
		raw = raw[:idx]
	}
	return raw
}
