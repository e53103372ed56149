package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"kala/config"
	"kala/internal/domain/lifecycle"
	"kala/internal/errors"
	"kala/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval      = 5 * time.Second
	poolWaitWarnThreshold    = 50 * time.Millisecond
	defaultStatsDatabaseName = "kala"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	// Metrics is absent in one-shot commands such as the seeder.
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the member database, exports its pool stats and ties the
// connection to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open member database")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get member database sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.RegisterDBStats(statsDatabaseName(params.Config), sqlDB); err != nil {
			return nil, errors.Wrap(err, "failed to register database pool metrics")
		}
	}

	monitor := &poolMonitor{
		logger:   params.Logger.With(slog.String("component", "postgres_pool")),
		stats:    sqlDB.Stats,
		interval: poolMonitorInterval,
	}
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping member database")
			}

			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func statsDatabaseName(cfg *config.Config) string {
	if cfg.Env.ServiceName != "" {
		return cfg.Env.ServiceName
	}

	return defaultStatsDatabaseName
}

// poolMonitor logs connection waits between two samples. Totals are exported
// by the database stats collector; the log line carries the per-interval delta.
type poolMonitor struct {
	logger   *slog.Logger
	stats    func() sql.DBStats
	interval time.Duration
}

func (m *poolMonitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.stats()
			m.observe(ctx, prev, cur)
			prev = cur
		}
	}
}

// observe reports whether any request waited for a connection since prev.
func (m *poolMonitor) observe(ctx context.Context, prev, cur sql.DBStats) bool {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnThreshold {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Member database pool saturated",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
	)

	return true
}
