package service

import (
	"context"
	"fmt"

	"github.com/avc/booking-wizard/internal/domain"
	"go.uber.org/zap"
)

// OrderService реализует domain.OrderSink.
// С журналом заявка сохраняется в БД и доставляется воркерами, без журнала отправляется сразу.
type OrderService struct {
	submissionRepo domain.SubmissionRepository
	queue          domain.SubmissionQueue
	creator        domain.OrderCreator
	logger         *zap.Logger
}

var _ domain.OrderSink = (*OrderService)(nil)

// NewOrderService создает новый OrderService. submissionRepo и queue могут быть nil.
func NewOrderService(
	submissionRepo domain.SubmissionRepository,
	queue domain.SubmissionQueue,
	creator domain.OrderCreator,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		submissionRepo: submissionRepo,
		queue:          queue,
		creator:        creator,
		logger:         logger,
	}
}

// Persist сохраняет заявку
func (s *OrderService) Persist(ctx context.Context, sessionID string, order *domain.Order, deepLink string) error {
	if s.submissionRepo == nil {
		if err := s.creator.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("order service: failed to create order for session %q: %w", sessionID, err)
		}
		return nil
	}

	submission := &domain.Submission{
		SessionID: sessionID,
		Order:     *order,
		DeepLink:  deepLink,
		Status:    domain.SubmissionStatusPending,
	}

	if err := s.submissionRepo.CreateSubmission(ctx, submission); err != nil {
		return fmt.Errorf("order service: failed to journal order for session %q: %w", sessionID, err)
	}

	if s.queue != nil && !s.queue.Enqueue(submission.ID) {
		// Сканер журнала подберет запись позже
		s.logger.Warn("delivery queue is full, deferring submission",
			zap.String("submission_id", submission.ID),
		)
	}

	return nil
}
