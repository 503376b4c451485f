package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/booking-wizard/internal/domain"
	"github.com/avc/booking-wizard/internal/metrics"
	"github.com/avc/booking-wizard/internal/service"
	"go.uber.org/zap"
)

const scanBatchSize = 100

// PoolConfig параметры пула доставки заявок
type PoolConfig struct {
	Workers      int
	QueueSize    int
	ScanInterval time.Duration
	MaxAttempts  int
}

// Pool доставляет заявки из журнала в сервис заказов
type Pool struct {
	cfg            PoolConfig
	queue          chan string
	submissionRepo domain.SubmissionRepository
	creator        domain.OrderCreator
	metrics        *metrics.WizardMetrics
	logger         *zap.Logger
	wg             sync.WaitGroup

	mu       sync.Mutex
	closed   bool
	inflight map[string]struct{}
}

var _ domain.SubmissionQueue = (*Pool)(nil)

// NewPool создает новый worker pool
func NewPool(
	cfg PoolConfig,
	submissionRepo domain.SubmissionRepository,
	creator domain.OrderCreator,
	m *metrics.WizardMetrics,
	logger *zap.Logger,
) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.ScanInterval <= 0 {
		cfg.ScanInterval = 30 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}

	return &Pool{
		cfg:            cfg,
		queue:          make(chan string, cfg.QueueSize),
		submissionRepo: submissionRepo,
		creator:        creator,
		metrics:        m,
		logger:         logger,
		inflight:       make(map[string]struct{}),
	}
}

// Start запускает воркеры и сканер журнала
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool и ждет завершения воркеров
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
}

// Enqueue ставит заявку в очередь без блокировки. Возвращает false, если очередь
// заполнена или пул остановлен; такую заявку подберет сканер.
func (p *Pool) Enqueue(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}
	if _, ok := p.inflight[id]; ok {
		return true
	}

	select {
	case p.queue <- id:
		p.inflight[id] = struct{}{}
		return true
	default:
		return false
	}
}

func (p *Pool) done(id string) {
	p.mu.Lock()
	delete(p.inflight, id)
	p.mu.Unlock()
}

// worker обрабатывает заявки из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("delivery worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("delivery worker stopping", zap.Int("worker_id", id))
			return
		case submissionID, ok := <-p.queue:
			if !ok {
				return
			}
			p.processSubmission(ctx, submissionID)
			p.done(submissionID)
		}
	}
}

// scanner подбирает недоставленные заявки: сразу при старте, затем по таймеру
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	p.scanPendingSubmissions(ctx)

	ticker := time.NewTicker(p.cfg.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("delivery scanner stopping")
			return
		case <-ticker.C:
			p.scanPendingSubmissions(ctx)
		}
	}
}

func (p *Pool) scanPendingSubmissions(ctx context.Context) {
	submissions, err := p.submissionRepo.GetPendingSubmissions(ctx, scanBatchSize)
	if err != nil {
		p.logger.Error("failed to get pending submissions", zap.Error(err))
		return
	}

	for _, submission := range submissions {
		if ctx.Err() != nil {
			return
		}
		if !p.Enqueue(submission.ID) {
			p.logger.Warn("delivery queue is full, skipping submission", zap.String("submission", submission.ID))
			return
		}
	}
}

// processSubmission отправляет одну заявку в сервис заказов
func (p *Pool) processSubmission(ctx context.Context, id string) {
	p.logger.Debug("delivering submission", zap.String("submission", id))

	submission, err := p.submissionRepo.GetSubmission(ctx, id)
	if err != nil {
		p.logger.Error("failed to get submission", zap.String("submission", id), zap.Error(err))
		return
	}
	if submission.Status != domain.SubmissionStatusPending {
		return
	}

	err = p.creator.CreateOrder(ctx, &submission.Order)
	if err == nil {
		if err := p.submissionRepo.MarkDelivered(ctx, id); err != nil {
			p.logger.Error("failed to mark submission delivered", zap.String("submission", id), zap.Error(err))
			return
		}
		p.metrics.ObserveDelivery("delivered")
		p.logger.Info("submission delivered",
			zap.String("submission", id),
			zap.String("session_id", submission.SessionID),
		)
		return
	}

	// Отказ 4xx повтором не исправить
	maxAttempts, status := p.cfg.MaxAttempts, "retry"
	if errors.Is(err, service.ErrOrderRejected) {
		maxAttempts, status = 0, "failed"
	} else if submission.Attempts+1 >= p.cfg.MaxAttempts {
		status = "failed"
	}

	p.logger.Warn("failed to deliver submission",
		zap.String("submission", id),
		zap.Int("attempt", submission.Attempts+1),
		zap.String("outcome", status),
		zap.Error(err),
	)

	if markErr := p.submissionRepo.MarkAttemptFailed(ctx, id, err.Error(), maxAttempts); markErr != nil {
		p.logger.Error("failed to record delivery attempt", zap.String("submission", id), zap.Error(markErr))
		return
	}
	p.metrics.ObserveDelivery(status)
}
