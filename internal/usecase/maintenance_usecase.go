package usecase

import "context"

// MaintenanceUsecase holds the periodic cleanup jobs.
type MaintenanceUsecase interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
	PurgeExpiredDrafts(ctx context.Context) (int, error)
}
