package draftstore

import (
	"context"
	"log/slog"

	"kala/config"
	"kala/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies for selecting a draft store.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// New returns the draft store named by onboarding.store.
func New(params Params) (service.DraftStore, error) {
	switch params.Config.Onboarding.Store {
	case "", "memory":
		params.Logger.Info("Using in-memory draft store")

		return NewMemoryStore(), nil
	case "redis":
		client, err := NewRedisClient(context.Background(), params.Config.Redis)
		if err != nil {
			return nil, err
		}
		params.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})
		params.Logger.Info("Using redis draft store", slog.String("addr", params.Config.Redis.Addr))

		return NewRedisStore(client), nil
	default:
		return nil, errors.Errorf("unknown draft store %q", params.Config.Onboarding.Store)
	}
}
