package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avc/booking-wizard/internal/domain"
	"github.com/jackc/pgx/v5"
)

// SubmissionRepository реализует domain.SubmissionRepository
type SubmissionRepository struct {
	db DBTX
}

var _ domain.SubmissionRepository = (*SubmissionRepository)(nil)

// NewSubmissionRepository создает новый SubmissionRepository
func NewSubmissionRepository(db DBTX) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

const submissionColumns = `id, session_id, payload, deep_link, status, attempts, last_error, created_at, delivered_at`

// CreateSubmission записывает заявку в журнал. ID и время создания заполняет база.
func (r *SubmissionRepository) CreateSubmission(ctx context.Context, submission *domain.Submission) error {
	payload, err := json.Marshal(submission.Order)
	if err != nil {
		return fmt.Errorf("repository: failed to encode order: %w", err)
	}

	if submission.Status == "" {
		submission.Status = domain.SubmissionStatusPending
	}

	err = r.db.QueryRow(ctx,
		`INSERT INTO submissions (session_id, payload, deep_link, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		submission.SessionID, payload, submission.DeepLink, submission.Status,
	).Scan(&submission.ID, &submission.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to create submission for session %q: %w", submission.SessionID, err)
	}

	return nil
}

// GetSubmission получает запись журнала по ID
func (r *SubmissionRepository) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+submissionColumns+`
		 FROM submissions
		 WHERE id = $1`,
		id,
	)

	submission, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("repository: failed to get submission %q: %w", id, err)
	}

	return submission, nil
}

// MarkDelivered отмечает заявку доставленной
func (r *SubmissionRepository) MarkDelivered(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE submissions
		 SET status = $1, delivered_at = NOW(), last_error = NULL
		 WHERE id = $2`,
		domain.SubmissionStatusDelivered, id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to mark submission %q delivered: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrSubmissionNotFound
	}

	return nil
}

// MarkAttemptFailed увеличивает счетчик попыток. Когда попытки исчерпаны, заявка
// переходит в FAILED. maxAttempts = 0 переводит ее в FAILED сразу.
func (r *SubmissionRepository) MarkAttemptFailed(ctx context.Context, id string, reason string, maxAttempts int) error {
	result, err := r.db.Exec(ctx,
		`UPDATE submissions
		 SET attempts = attempts + 1,
		     last_error = $1,
		     status = CASE WHEN attempts + 1 >= $2 THEN $3 ELSE status END
		 WHERE id = $4`,
		reason, maxAttempts, domain.SubmissionStatusFailed, id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to record attempt for submission %q: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrSubmissionNotFound
	}

	return nil
}

// GetPendingSubmissions получает недоставленные заявки, начиная с самых старых
func (r *SubmissionRepository) GetPendingSubmissions(ctx context.Context, limit int) ([]*domain.Submission, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+submissionColumns+`
		 FROM submissions
		 WHERE status = $1
		 ORDER BY created_at ASC
		 LIMIT $2`,
		domain.SubmissionStatusPending, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get pending submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*domain.Submission
	for rows.Next() {
		submission, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan submission: %w", err)
		}
		submissions = append(submissions, submission)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating pending submissions: %w", err)
	}

	return submissions, nil
}

func scanSubmission(row pgx.Row) (*domain.Submission, error) {
	submission := &domain.Submission{}
	var payload []byte

	err := row.Scan(
		&submission.ID,
		&submission.SessionID,
		&payload,
		&submission.DeepLink,
		&submission.Status,
		&submission.Attempts,
		&submission.LastError,
		&submission.CreatedAt,
		&submission.DeliveredAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(payload, &submission.Order); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	return submission, nil
}
