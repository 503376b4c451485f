package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/avc/booking-wizard/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var submissionRowColumns = []string{
	"id", "session_id", "payload", "deep_link", "status", "attempts", "last_error", "created_at", "delivered_at",
}

func testOrder() domain.Order {
	return domain.Order{
		Name:          "Иван",
		Phone:         "+7 999 123-45-67",
		ServiceType:   domain.ServiceTypeCleaning,
		Level:         domain.LevelGeneral,
		Area:          60,
		Rooms:         1,
		Bathrooms:     1,
		TotalPrice:    2700,
		OriginalPrice: 3000,
	}
}

func TestSubmissionRepository_CreateSubmission(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubmissionRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		submission := &domain.Submission{
			SessionID: "session-1",
			Order:     testOrder(),
			DeepLink:  "https://wa.me/79991234567?text=hi",
		}

		rows := pgxmock.NewRows([]string{"id", "created_at"}).
			AddRow("8c7d1f1e-0000-4000-8000-000000000001", now)

		mock.ExpectQuery(`INSERT INTO submissions`).
			WithArgs("session-1", pgxmock.AnyArg(), submission.DeepLink, domain.SubmissionStatusPending).
			WillReturnRows(rows)

		err := repo.CreateSubmission(ctx, submission)
		require.NoError(t, err)
		assert.Equal(t, "8c7d1f1e-0000-4000-8000-000000000001", submission.ID)
		assert.Equal(t, domain.SubmissionStatusPending, submission.Status)
		assert.Equal(t, now, submission.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		submission := &domain.Submission{SessionID: "session-2", Order: testOrder()}

		mock.ExpectQuery(`INSERT INTO submissions`).
			WithArgs("session-2", pgxmock.AnyArg(), "", domain.SubmissionStatusPending).
			WillReturnError(errors.New("connection refused"))

		err := repo.CreateSubmission(ctx, submission)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "session-2")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSubmissionRepository_GetSubmission(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubmissionRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		payload, err := json.Marshal(testOrder())
		require.NoError(t, err)
		lastError := "timeout"

		rows := pgxmock.NewRows(submissionRowColumns).
			AddRow("id-1", "session-1", payload, "https://wa.me/1", domain.SubmissionStatusPending, 2, &lastError, time.Now(), (*time.Time)(nil))

		mock.ExpectQuery(`SELECT .+ FROM submissions WHERE id`).
			WithArgs("id-1").
			WillReturnRows(rows)

		submission, err := repo.GetSubmission(ctx, "id-1")
		require.NoError(t, err)
		assert.Equal(t, "session-1", submission.SessionID)
		assert.Equal(t, domain.SubmissionStatusPending, submission.Status)
		assert.Equal(t, 2, submission.Attempts)
		require.NotNil(t, submission.LastError)
		assert.Equal(t, "timeout", *submission.LastError)
		assert.Nil(t, submission.DeliveredAt)
		assert.Equal(t, testOrder(), submission.Order)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM submissions WHERE id`).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		submission, err := repo.GetSubmission(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrSubmissionNotFound)
		assert.Nil(t, submission)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSubmissionRepository_MarkDelivered(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubmissionRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE submissions SET status`).
			WithArgs(domain.SubmissionStatusDelivered, "id-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.MarkDelivered(ctx, "id-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE submissions SET status`).
			WithArgs(domain.SubmissionStatusDelivered, "missing").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.MarkDelivered(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrSubmissionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSubmissionRepository_MarkAttemptFailed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubmissionRepository(mock)
	ctx := context.Background()

	tests := []struct {
		name        string
		maxAttempts int
		affected    int64
		wantErr     error
	}{
		{name: "Retry later", maxAttempts: 5, affected: 1},
		{name: "Permanent failure", maxAttempts: 0, affected: 1},
		{name: "Not found", maxAttempts: 5, affected: 0, wantErr: domain.ErrSubmissionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectExec(`UPDATE submissions SET attempts = attempts \+ 1`).
				WithArgs("status 502", tt.maxAttempts, domain.SubmissionStatusFailed, "id-1").
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			err := repo.MarkAttemptFailed(ctx, "id-1", "status 502", tt.maxAttempts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSubmissionRepository_GetPendingSubmissions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubmissionRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		payload, err := json.Marshal(testOrder())
		require.NoError(t, err)
		now := time.Now()

		rows := pgxmock.NewRows(submissionRowColumns).
			AddRow("id-1", "session-1", payload, "https://wa.me/1", domain.SubmissionStatusPending, 0, (*string)(nil), now.Add(-time.Minute), (*time.Time)(nil)).
			AddRow("id-2", "session-2", payload, "https://wa.me/1", domain.SubmissionStatusPending, 1, (*string)(nil), now, (*time.Time)(nil))

		mock.ExpectQuery(`SELECT .+ FROM submissions WHERE status = \$1 ORDER BY created_at ASC LIMIT \$2`).
			WithArgs(domain.SubmissionStatusPending, 100).
			WillReturnRows(rows)

		submissions, err := repo.GetPendingSubmissions(ctx, 100)
		require.NoError(t, err)
		require.Len(t, submissions, 2)
		assert.Equal(t, "id-1", submissions[0].ID)
		assert.Equal(t, "id-2", submissions[1].ID)
		assert.Equal(t, 1, submissions[1].Attempts)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Corrupted payload", func(t *testing.T) {
		rows := pgxmock.NewRows(submissionRowColumns).
			AddRow("id-1", "session-1", []byte("{"), "https://wa.me/1", domain.SubmissionStatusPending, 0, (*string)(nil), time.Now(), (*time.Time)(nil))

		mock.ExpectQuery(`SELECT .+ FROM submissions WHERE status`).
			WithArgs(domain.SubmissionStatusPending, 10).
			WillReturnRows(rows)

		submissions, err := repo.GetPendingSubmissions(ctx, 10)
		assert.Error(t, err)
		assert.Nil(t, submissions)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM submissions WHERE status`).
			WithArgs(domain.SubmissionStatusPending, 10).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.GetPendingSubmissions(ctx, 10)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRunMigrations(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()

	t.Run("Applies submissions table", func(t *testing.T) {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS submissions`).
			WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

		require.NoError(t, RunMigrations(ctx, mock, zap.NewNop()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Propagates failure", func(t *testing.T) {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS submissions`).
			WillReturnError(errors.New("permission denied"))

		err := RunMigrations(ctx, mock, zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "0001_create_submissions.up.sql")
	})
}
