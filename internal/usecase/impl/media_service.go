package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "kala/internal/delivery/context"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/repository"
	"kala/internal/domain/service"
	"kala/internal/usecase"
	"kala/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	storage    service.MediaStorage
	memberRepo repository.MemberRepository
	validator  service.InputValidator
	logger     *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Storage    service.MediaStorage
	MemberRepo repository.MemberRepository
	Validator  service.InputValidator
	Logger     *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		storage:    params.Storage,
		memberRepo: params.MemberRepo,
		validator:  params.Validator,
		logger:     params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// objectKey validates input and returns the storage key and content type.
func (srv *mediaService) objectKey(userID uuid.UUID, input *usecase.UploadInput) (string, string, error) {
	input.Extension = strings.ToLower(strings.TrimPrefix(input.Extension, "."))
	fields, err := fieldErrors(srv.validator.Struct(input))
	if err != nil {
		return "", "", err
	}

	name := util.Slugify(input.FileName)
	if input.FileName != "" && name == "" {
		fields = append(fields, domainerrors.FieldError{Field: "fileName", Reason: "must contain letters or digits"})
	}
	if err := validationResult(fields); err != nil {
		return "", "", err
	}

	contentType := "image/" + input.Extension
	if input.Extension == "jpg" {
		contentType = "image/jpeg"
	}

	return fmt.Sprintf("%s/%s.%s", userID, name, input.Extension), contentType, nil
}

// RequestUpload issues a pre-signed PUT URL for a profile picture.
func (srv *mediaService) RequestUpload(ctx context.Context, userID uuid.UUID, input *usecase.UploadInput) (*service.UploadTarget, error) {
	key, contentType, err := srv.objectKey(userID, input)
	if err != nil {
		return nil, err
	}

	target, err := srv.storage.SignedUploadURL(ctx, key, contentType)
	if err != nil {
		srv.log(ctx).Error("Failed to sign upload URL", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageUnavailable, err.Error())
	}

	return target, nil
}

// ConfirmUpload records a finished upload. Nothing is persisted unless the object exists.
func (srv *mediaService) ConfirmUpload(ctx context.Context, userID uuid.UUID, input *usecase.UploadInput) (*usecase.ConfirmUploadOutput, error) {
	key, _, err := srv.objectKey(userID, input)
	if err != nil {
		return nil, err
	}

	exists, err := srv.storage.Exists(ctx, key)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrStorageUnavailable, err.Error())
	}
	if !exists {
		return nil, errors.Wrapf(domainerrors.ErrUploadNotFound, "key %s", key)
	}

	out := &usecase.ConfirmUploadOutput{PublicURL: srv.storage.PublicURL(key)}

	err = srv.memberRepo.UpdateProfilePicture(ctx, userID, out.PublicURL)
	switch {
	case errors.Is(err, repository.ErrMemberNotFound):
		// The wizard stores the URL in the draft until the member exists.
	case err != nil:
		return nil, errors.Wrap(err, "failed to update profile picture")
	default:
		out.Persisted = true
	}

	srv.log(ctx).Info("Profile picture uploaded", slog.Any("userID", userID), slog.String("key", key), slog.Bool("persisted", out.Persisted))

	return out, nil
}
