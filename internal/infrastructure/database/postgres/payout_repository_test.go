package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"insurance-office/internal/domain/payout"
	"insurance-office/internal/infrastructure/cache"
	"insurance-office/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func setupPayoutRepo(t *testing.T) (context.Context, *PayoutRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	ctx := context.Background()
	repo := NewPayoutRepository(mockPool, cache.New(cache.DefaultTTL), testLogger)

	return ctx, repo, mockPool
}

func TestPayoutRepository_Insert(t *testing.T) {
	query := `
        INSERT INTO payouts (payout_id, assessment_id, payout_date, amount, status)
        VALUES ($1, $2, $3, $4::numeric, $5)`

	payoutDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		ctx, repo, mockPool := setupPayoutRepo(t)
		defer mockPool.Close()

		mockPool.ExpectExec(regexp.QuoteMeta(query)).WithArgs(
			"P001", "A001", payoutDate, "500", payout.StatusPending,
		).WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Insert(ctx, &payout.Payout{
			PayoutID:     "P001",
			AssessmentID: "A001",
			PayoutDate:   payoutDate,
			Amount:       decimal.NewFromInt(500),
			Status:       payout.StatusPending,
		})
		assert.NoError(t, err)
		assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
	})

	t.Run("Dangling assessment reference surfaces conflict", func(t *testing.T) {
		ctx, repo, mockPool := setupPayoutRepo(t)
		defer mockPool.Close()

		mockPool.ExpectExec(regexp.QuoteMeta(query)).WithArgs(
			"P001", "A404", payoutDate, "500", payout.StatusPending,
		).WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "payouts_assessment_id_fkey"})

		err := repo.Insert(ctx, &payout.Payout{
			PayoutID:     "P001",
			AssessmentID: "A404",
			PayoutDate:   payoutDate,
			Amount:       decimal.NewFromInt(500),
			Status:       payout.StatusPending,
		})
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
	})
}

func TestPayoutRepository_FindAll(t *testing.T) {
	query := payoutSelect + `
        ORDER BY p.payout_id ASC`

	payoutDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	ctx, repo, mockPool := setupPayoutRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(pgxmock.NewRows([]string{"payout_id", "assessment_id", "payout_date", "amount", "status", "contract_id", "name"}).
			AddRow("P001", "A001", payoutDate, "500.00", "Completed", "CT001", "John Doe"))

	payouts, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, payouts, 1)
	assert.Equal(t, "CT001", payouts[0].ContractID)
	assert.True(t, payouts[0].Amount.Equal(decimal.NewFromFloat(500.00)))
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestPayoutRepository_TotalsByStatus(t *testing.T) {
	query := `
        SELECT status, COUNT(*), COALESCE(SUM(amount), 0)::text
        FROM payouts
        GROUP BY status
        ORDER BY status ASC`

	ctx, repo, mockPool := setupPayoutRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(pgxmock.NewRows([]string{"status", "count", "total"}).
			AddRow("Completed", int64(2), "750.50").
			AddRow("Pending", int64(1), "100"))

	totals, err := repo.TotalsByStatus(ctx)
	assert.NoError(t, err)
	assert.Len(t, totals, 2)
	assert.Equal(t, payout.StatusCompleted, totals[0].Status)
	assert.Equal(t, int64(2), totals[0].Count)
	assert.True(t, totals[0].Total.Equal(decimal.NewFromFloat(750.50)))
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestPayoutRepository_TotalApproved(t *testing.T) {
	query := `
        SELECT COALESCE(SUM(amount), 0)::text
        FROM payouts
        WHERE status IN ($1, $2)`

	ctx, repo, mockPool := setupPayoutRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(payout.StatusApproved, payout.StatusCompleted).
		WillReturnRows(pgxmock.NewRows([]string{"total"}).AddRow("1250.25"))

	total, err := repo.TotalApproved(ctx)
	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(1250.25)))
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestPayoutRepository_UpdateStatus(t *testing.T) {
	query := `UPDATE payouts SET status = $1 WHERE payout_id = $2`

	t.Run("Success", func(t *testing.T) {
		ctx, repo, mockPool := setupPayoutRepo(t)
		defer mockPool.Close()

		mockPool.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(payout.StatusCompleted, "P001").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.UpdateStatus(ctx, "P001", payout.StatusCompleted))
		assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
	})

	t.Run("Zero rows surfaces not found", func(t *testing.T) {
		ctx, repo, mockPool := setupPayoutRepo(t)
		defer mockPool.Close()

		mockPool.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(payout.StatusCompleted, "P404").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateStatus(ctx, "P404", payout.StatusCompleted)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
	})
}
