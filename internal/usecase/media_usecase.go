package usecase

import (
	"context"

	"kala/internal/domain/service"

	"github.com/google/uuid"
)

// UploadInput names a profile picture object.
type UploadInput struct {
	FileName  string `json:"fileName" validate:"required,max=100"`
	Extension string `json:"extension" validate:"required,oneof=png jpg jpeg webp"`
}

// ConfirmUploadOutput is the stored picture's public address.
type ConfirmUploadOutput struct {
	PublicURL string `json:"publicUrl"`
	// Persisted reports whether the caller's member profile now points at the picture.
	Persisted bool `json:"persisted"`
}

// MediaUsecase issues signed upload URLs and records finished uploads.
type MediaUsecase interface {
	RequestUpload(ctx context.Context, userID uuid.UUID, input *UploadInput) (*service.UploadTarget, error)
	ConfirmUpload(ctx context.Context, userID uuid.UUID, input *UploadInput) (*ConfirmUploadOutput, error)
}
