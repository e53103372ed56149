package handler

import (
	"log/slog"
	"net/http"

	"kala/internal/delivery/api/middleware"
	"kala/internal/delivery/api/response"
	"kala/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// MediaHandler hands out signed upload URLs for profile pictures.
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

func (h *MediaHandler) RequestUpload(c echo.Context) error {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UploadInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid upload request")
	}

	target, err := h.mediaUC.RequestUpload(c.Request().Context(), actor.UserID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, target)
}

// ConfirmUpload is called once the client has PUT the file to the signed URL.
func (h *MediaHandler) ConfirmUpload(c echo.Context) error {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UploadInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid upload confirmation")
	}

	output, err := h.mediaUC.ConfirmUpload(c.Request().Context(), actor.UserID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
