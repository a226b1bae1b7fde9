package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	amqppub "github.com/omnidesk/ticketflow/internal/adapter/amqp"
	pgdb "github.com/omnidesk/ticketflow/internal/adapter/postgres"
	pgassignment "github.com/omnidesk/ticketflow/internal/adapter/postgres/assignment"
	pgcursor "github.com/omnidesk/ticketflow/internal/adapter/postgres/cursor"
	pgeventbus "github.com/omnidesk/ticketflow/internal/adapter/postgres/eventbus"
	pglocker "github.com/omnidesk/ticketflow/internal/adapter/postgres/locker"
	pgqueue "github.com/omnidesk/ticketflow/internal/adapter/postgres/queue"
	pgworkload "github.com/omnidesk/ticketflow/internal/adapter/postgres/workload"

	"github.com/omnidesk/ticketflow/internal/config"
	domainqueue "github.com/omnidesk/ticketflow/internal/domain/queue"
	"github.com/omnidesk/ticketflow/internal/metrics"

	assignersvc "github.com/omnidesk/ticketflow/internal/service/assigner"
	registrysvc "github.com/omnidesk/ticketflow/internal/service/registry"
	workloadsvc "github.com/omnidesk/ticketflow/internal/service/workload"

	"github.com/omnidesk/ticketflow/internal/transport"
)

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Pool     *pgxpool.Pool
	Server   *http.Server
	Registry *registrysvc.Service
	Assigner *assignersvc.Service

	amqp *amqppub.Publisher
}

// Build is the composition root: the only place concrete types are wired to
// their interface dependencies.
func Build(ctx context.Context) (*App, error) {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database URL not set (config or DATABASE_URL)")
	}

	metrics.Init()

	pool, err := pgdb.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// ── Adapters ─────────────────────────────────────────────────────────────
	queueRepo := pgqueue.New(pool)
	workloadRepo := pgworkload.New(pool)
	assignmentRepo := pgassignment.New(pool)
	eventBus := pgeventbus.New(pool)
	locker := pglocker.New(pool)
	cursors := pgcursor.New(pool, locker)

	// ── Services ─────────────────────────────────────────────────────────────
	defaultStrategy := domainqueue.Strategy(cfg.Engine.DefaultStrategy)

	workloadSvc := workloadsvc.NewService(workloadRepo)
	registrySvc := registrysvc.NewService(queueRepo, assignmentRepo, workloadSvc, eventBus, defaultStrategy)
	assignerSvc := assignersvc.NewService(
		queueRepo,
		registrySvc,
		workloadSvc,
		assignmentRepo,
		cursors,
		eventBus,
		assignersvc.Config{
			DefaultStrategy:   defaultStrategy,
			RetryLimit:        cfg.Engine.AssignmentRetryLimit,
			SaturationIsError: cfg.Engine.SaturationIsError,
		},
	)

	app := &App{
		Pool:     pool,
		Registry: registrySvc,
		Assigner: assignerSvc,
	}

	// ── Optional AMQP relay ──────────────────────────────────────────────────
	if cfg.AMQP.URL != "" {
		pub, err := amqppub.Connect(cfg.AMQP.URL)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("connecting to AMQP broker: %w", err)
		}
		app.amqp = pub
		startRelay(ctx, eventBus, pub)
	}

	// ── Transport ────────────────────────────────────────────────────────────
	router := transport.NewRouter(ctx, registrySvc, assignerSvc, eventBus)
	app.Server = &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	slog.Info("application wired", "port", cfg.Port, "default_strategy", defaultStrategy)
	return app, nil
}

// Close releases everything Build opened, in reverse order.
func (a *App) Close() {
	if a.amqp != nil {
		if err := a.amqp.Close(); err != nil {
			slog.Error("closing AMQP publisher", "error", err)
		}
	}
	a.Pool.Close()
}
