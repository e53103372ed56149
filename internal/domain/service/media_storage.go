package service

import (
	"context"
	"time"
)

// UploadTarget is a pre-signed upload destination.
type UploadTarget struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"uploadUrl"`
	PublicURL string    `json:"publicUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// MediaStorage issues direct-to-storage upload URLs for profile pictures.
type MediaStorage interface {
	// SignedUploadURL returns a URL accepting a single PUT of contentType at key.
	SignedUploadURL(ctx context.Context, key, contentType string) (*UploadTarget, error)

	// Exists reports whether an object was uploaded at key.
	Exists(ctx context.Context, key string) (bool, error)

	// PublicURL derives the public address of key.
	PublicURL(key string) string
}
