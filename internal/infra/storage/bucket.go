// Package storage implements media storage on gocloud.dev buckets.
package storage

import (
	"context"
	"net/http"
	"strings"
	"time"

	"kala/config"
	"kala/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selectable through storage.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// BucketStorage hands out pre-signed PUT URLs for a single bucket.
type BucketStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	expiry        time.Duration
}

// Params defines the dependencies of the bucket storage.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Storage
	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStorage(bucket, cfg.PublicBaseURL, cfg.UploadURLExpiry), nil
}

// NewBucketStorage wraps an open bucket.
func NewBucketStorage(bucket *blob.Bucket, publicBaseURL string, expiry time.Duration) *BucketStorage {
	if expiry <= 0 {
		expiry = time.Hour
	}

	return &BucketStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		expiry:        expiry,
	}
}

func (s *BucketStorage) SignedUploadURL(ctx context.Context, key, contentType string) (*service.UploadTarget, error) {
	expiresAt := time.Now().Add(s.expiry)
	signed, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Method:      http.MethodPut,
		ContentType: contentType,
		Expiry:      s.expiry,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "sign upload url for %s", key)
	}

	return &service.UploadTarget{
		Key:       key,
		UploadURL: signed,
		PublicURL: s.PublicURL(key),
		ExpiresAt: expiresAt,
	}, nil
}

func (s *BucketStorage) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "stat %s", key)
	}

	return ok, nil
}

// PublicURL joins the public base address and key. Without a base the key is returned as is.
func (s *BucketStorage) PublicURL(key string) string {
	if s.publicBaseURL == "" {
		return key
	}

	return s.publicBaseURL + "/" + strings.TrimLeft(key, "/")
}
