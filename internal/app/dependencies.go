package app

import (
	"fmt"

	"github.com/avc/booking-wizard/internal/config"
	"github.com/avc/booking-wizard/internal/domain"
	"github.com/avc/booking-wizard/internal/handlers"
	"github.com/avc/booking-wizard/internal/metrics"
	"github.com/avc/booking-wizard/internal/repository/postgres"
	"github.com/avc/booking-wizard/internal/service"
	"github.com/avc/booking-wizard/internal/session"
	"github.com/avc/booking-wizard/internal/utils/jwt"
	"github.com/avc/booking-wizard/internal/wizard"
	"github.com/avc/booking-wizard/internal/worker"
	"github.com/facebookgo/clock"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	wizard *handlers.WizardHandler
	health *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	sessions   *session.Manager
	handlers   *handlerSet
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения.
// dbPool равен nil, если журнал заявок отключен: тогда заявки уходят в API напрямую.
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, reg prometheus.Registerer, logger *zap.Logger) (*dependencies, error) {
	locale, err := wizard.LoadLocale(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load locale: %w", err)
	}

	wizardMetrics := metrics.NewWizardMetrics(reg)
	backend := service.NewBackendClient(cfg.BackendAddress, cfg.BackendTimeout, cfg.BackendRetryMax, logger)

	// Журнал и пул доставки
	var (
		submissionRepo domain.SubmissionRepository
		queue          domain.SubmissionQueue
		workerPool     *worker.Pool
		db             handlers.Pinger
	)
	if dbPool != nil {
		repo := postgres.NewSubmissionRepository(dbPool)
		workerPool = worker.NewPool(worker.PoolConfig{
			Workers:      cfg.WorkerPoolSize,
			QueueSize:    cfg.WorkerQueueSize,
			ScanInterval: cfg.WorkerScanInterval,
			MaxAttempts:  cfg.DeliveryMaxAttempts,
		}, repo, backend, wizardMetrics, logger.Named("delivery"))

		submissionRepo, queue, db = repo, workerPool, dbPool
	}

	orders := service.NewOrderService(submissionRepo, queue, backend, logger)

	if cfg.WhatsAppNumber == "" {
		logger.Warn("WHATSAPP_NUMBER is not set, submissions will be refused")
	}

	tokens := jwt.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	sessions := session.NewManager(session.Config{
		TTL: cfg.SessionTTL,
		Wizard: wizard.Config{
			Locale:        locale,
			Clock:         clock.New(),
			Location:      cfg.Location(),
			DebounceDelay: cfg.RecalcDebounce,
			MessagingHost: cfg.MessagingHost,
			ContactNumber: cfg.WhatsAppNumber,
			Metrics:       wizardMetrics,
		},
	}, tokens, backend, backend, backend, orders, logger.Named("session"))

	hdlrs := &handlerSet{
		wizard: handlers.NewWizardHandler(sessions, logger),
		health: handlers.NewHealthHandler(db, sessions, logger),
	}

	return &dependencies{
		sessions:   sessions,
		handlers:   hdlrs,
		workerPool: workerPool,
	}, nil
}
