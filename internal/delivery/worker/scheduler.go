// Package worker runs the periodic maintenance jobs.
package worker

import (
	"context"
	"log/slog"
	"time"

	"kala/config"
	"kala/internal/delivery"
	deliverycontext "kala/internal/delivery/context"
	"kala/internal/domain/lifecycle"
	"kala/internal/infra/metrics"
	"kala/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const (
	JobPurgeSessions = "purge_sessions"
	JobPurgeDrafts   = "purge_drafts"
)

// JobRecorder receives the outcome of every job run.
type JobRecorder interface {
	RecordJob(job string, success bool, duration time.Duration)
}

type scheduler struct {
	cfg           *config.Config
	logger        *slog.Logger
	maintenanceUC usecase.MaintenanceUsecase
	recorder      JobRecorder
	cron          *cron.Cron
}

// SchedulerParams holds dependencies for the maintenance scheduler.
type SchedulerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	MaintenanceUC usecase.MaintenanceUsecase
	Metrics       *metrics.Metrics
}

// NewScheduler creates the cron scheduler. Jobs are registered when Serve is called.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := newScheduler(params.Cfg, params.Logger, params.MaintenanceUC, params.Metrics)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newScheduler(cfg *config.Config, logger *slog.Logger, uc usecase.MaintenanceUsecase, recorder JobRecorder) *scheduler {
	return &scheduler{
		cfg:           cfg,
		logger:        logger,
		maintenanceUC: uc,
		recorder:      recorder,
		cron: cron.New(
			cron.WithLogger(cronLogger{logger}),
			cron.WithChain(cron.Recover(cronLogger{logger}), cron.SkipIfStillRunning(cronLogger{logger})),
		),
	}
}

// Serve registers the maintenance jobs and starts the scheduler. It returns
// once the scheduler is running; jobs stop when ctx is cancelled or on shutdown.
func (s *scheduler) Serve(ctx context.Context) error {
	jobs := []struct {
		name string
		spec string
		run  func(ctx context.Context) (int64, error)
	}{
		{name: JobPurgeSessions, spec: s.cfg.Maintenance.RefreshTokenPurgeSpec, run: s.maintenanceUC.PurgeExpiredSessions},
		{name: JobPurgeDrafts, spec: s.cfg.Maintenance.DraftPurgeSpec, run: func(ctx context.Context) (int64, error) {
			n, err := s.maintenanceUC.PurgeExpiredDrafts(ctx)

			return int64(n), err
		}},
	}

	for _, job := range jobs {
		name, run := job.name, job.run
		if _, err := s.cron.AddFunc(job.spec, func() { s.runJob(ctx, name, run) }); err != nil {
			return errors.Wrapf(err, "invalid schedule %q for job %s", job.spec, name)
		}
		s.logger.Info("Scheduled maintenance job", slog.String("job", name), slog.String("spec", job.spec))
	}

	s.cron.Start()
	s.logger.Info("Maintenance scheduler started")

	return nil
}

// runJob executes one job run with its own logger and records the outcome.
func (s *scheduler) runJob(ctx context.Context, name string, run func(ctx context.Context) (int64, error)) {
	if ctx.Err() != nil {
		return
	}

	runID := uuid.NewString()
	log := s.logger.With(slog.String("job", name), slog.String("run_id", runID))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, runID), log)

	start := time.Now()
	n, err := run(ctx)
	duration := time.Since(start)
	s.recorder.RecordJob(name, err == nil, duration)

	if err != nil {
		log.Error("Maintenance job failed", slog.Any("error", err), slog.Duration("duration", duration))

		return
	}
	log.Debug("Maintenance job finished", slog.Int64("removed", n), slog.Duration("duration", duration))
}

// stop halts the scheduler and waits for running jobs.
func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("Shutting down maintenance scheduler")

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "maintenance jobs still running")
	}
}

// cronLogger routes the scheduler's own messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
