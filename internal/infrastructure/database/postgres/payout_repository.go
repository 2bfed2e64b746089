package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"insurance-office/internal/domain/payout"
	"insurance-office/internal/infrastructure/cache"
	"insurance-office/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PayoutRepository struct {
	db     DBPool
	cache  cache.Store
	logger *slog.Logger
}

var _ payout.PayoutRepository = (*PayoutRepository)(nil)

func NewPayoutRepository(db DBPool, store cache.Store, logger *slog.Logger) *PayoutRepository {
	if db == nil {
		panic("DBPool cannot be nil for PayoutRepository")
	}
	if store == nil {
		store = cache.Nop()
	}
	return &PayoutRepository{
		db:     db,
		cache:  store,
		logger: logger.With("component", "PayoutRepository"),
	}
}

const payoutSelect = `
        SELECT p.payout_id, p.assessment_id, p.payout_date, p.amount::text, p.status, a.contract_id, c.name
        FROM payouts p
        JOIN assessments a ON a.assessment_id = p.assessment_id
        JOIN insurance_contracts ct ON ct.contract_id = a.contract_id
        JOIN customers c ON c.customer_id = ct.customer_id`

func (r *PayoutRepository) Insert(ctx context.Context, p *payout.Payout) error {
	if p == nil {
		return fmt.Errorf("%w: payout cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert new payout", slog.String("payoutID", p.PayoutID))

	query := `
        INSERT INTO payouts (payout_id, assessment_id, payout_date, amount, status)
        VALUES ($1, $2, $3, $4::numeric, $5)`

	_, err := r.db.Exec(ctx, query,
		p.PayoutID,
		p.AssessmentID,
		p.PayoutDate,
		p.Amount.String(),
		p.Status,
	)

	if err != nil {

		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) || errors.Is(translatedErr, apperrors.ErrConflict) {
			r.logger.WarnContext(ctx, "Failed to insert payout due to constraint violation", slog.String("payoutID", p.PayoutID), slog.Any("error", err))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert payout", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert payout: %w", apperrors.ErrDatabase, err)
	}

	r.cache.Invalidate(cache.ScopePayouts, cache.ScopeAssessments, cache.ScopeReports)
	r.logger.InfoContext(ctx, "Payout inserted successfully", slog.String("payoutID", p.PayoutID))
	return nil
}

func (r *PayoutRepository) FindByID(ctx context.Context, payoutID string) (*payout.Payout, error) {
	query := payoutSelect + `
        WHERE p.payout_id = $1`

	if v, ok := r.cache.Get(cache.ScopePayouts, query, payoutID); ok {
		return v.(*payout.Payout), nil
	}

	p, err := r.scanPayout(r.db.QueryRow(ctx, query, payoutID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Payout not found", slog.String("payoutID", payoutID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan payout by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get payout by ID: %w", apperrors.ErrDatabase, err)
	}

	r.cache.Put(cache.ScopePayouts, query, p, payoutID)
	return p, nil
}

func (r *PayoutRepository) FindAll(ctx context.Context) ([]*payout.Payout, error) {
	query := payoutSelect + `
        ORDER BY p.payout_id ASC`

	if v, ok := r.cache.Get(cache.ScopePayouts, query); ok {
		return v.([]*payout.Payout), nil
	}

	payouts, err := r.queryPayouts(ctx, query)
	if err != nil {
		return nil, err
	}

	r.cache.Put(cache.ScopePayouts, query, payouts)
	r.logger.InfoContext(ctx, "Finished finding payouts", slog.Int("count", len(payouts)))
	return payouts, nil
}

func (r *PayoutRepository) FindPending(ctx context.Context) ([]*payout.Payout, error) {
	query := payoutSelect + `
        WHERE p.status = $1
        ORDER BY p.payout_id ASC`

	if v, ok := r.cache.Get(cache.ScopePayouts, query, payout.StatusPending); ok {
		return v.([]*payout.Payout), nil
	}

	payouts, err := r.queryPayouts(ctx, query, payout.StatusPending)
	if err != nil {
		return nil, err
	}

	r.cache.Put(cache.ScopePayouts, query, payouts, payout.StatusPending)
	return payouts, nil
}

func (r *PayoutRepository) FindByContract(ctx context.Context, contractID string) ([]*payout.Payout, error) {
	query := payoutSelect + `
        WHERE a.contract_id = $1
        ORDER BY p.payout_id ASC`

	if v, ok := r.cache.Get(cache.ScopePayouts, query, contractID); ok {
		return v.([]*payout.Payout), nil
	}

	payouts, err := r.queryPayouts(ctx, query, contractID)
	if err != nil {
		return nil, err
	}

	r.cache.Put(cache.ScopePayouts, query, payouts, contractID)
	return payouts, nil
}

func (r *PayoutRepository) UpdateStatus(ctx context.Context, payoutID string, status payout.Status) error {
	r.logger.InfoContext(ctx, "Attempting to update payout status",
		slog.String("payoutID", payoutID), slog.String("status", string(status)))

	query := `UPDATE payouts SET status = $1 WHERE payout_id = $2`

	cmdTag, err := r.db.Exec(ctx, query, status, payoutID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update payout status", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update payout status: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, payout likely not found")
		return apperrors.ErrNotFound
	}

	r.cache.Invalidate(cache.ScopePayouts, cache.ScopeReports)
	r.logger.InfoContext(ctx, "Payout status updated successfully", slog.String("payoutID", payoutID))
	return nil
}

func (r *PayoutRepository) TotalsByStatus(ctx context.Context) ([]payout.StatusTotal, error) {
	query := `
        SELECT status, COUNT(*), COALESCE(SUM(amount), 0)::text
        FROM payouts
        GROUP BY status
        ORDER BY status ASC`

	if v, ok := r.cache.Get(cache.ScopePayouts, query); ok {
		return v.([]payout.StatusTotal), nil
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query payout totals", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query payout totals: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	totals := make([]payout.StatusTotal, 0)
	for rows.Next() {
		var (
			st       payout.StatusTotal
			totalRaw string
		)
		if err := rows.Scan(&st.Status, &st.Count, &totalRaw); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan payout total row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan payout total row: %w", apperrors.ErrDatabase, err)
		}
		st.Total, err = decimal.NewFromString(totalRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid payout total %q: %w", apperrors.ErrDatabase, totalRaw, err)
		}
		totals = append(totals, st)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating payout total rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating payout total rows: %w", apperrors.ErrDatabase, err)
	}

	r.cache.Put(cache.ScopePayouts, query, totals)
	return totals, nil
}

func (r *PayoutRepository) TotalApproved(ctx context.Context) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)::text
        FROM payouts
        WHERE status IN ($1, $2)`

	if v, ok := r.cache.Get(cache.ScopePayouts, query); ok {
		return v.(decimal.Decimal), nil
	}

	var totalRaw string
	err := r.db.QueryRow(ctx, query, payout.StatusApproved, payout.StatusCompleted).Scan(&totalRaw)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query total approved payout", slog.Any("error", err))
		return decimal.Zero, fmt.Errorf("%w: failed to query total approved payout: %w", apperrors.ErrDatabase, err)
	}

	total, err := decimal.NewFromString(totalRaw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid payout total %q: %w", apperrors.ErrDatabase, totalRaw, err)
	}

	r.cache.Put(cache.ScopePayouts, query, total)
	return total, nil
}

// MaxID is never served from cache; ID suggestions must see the latest row.
func (r *PayoutRepository) MaxID(ctx context.Context) (string, error) {
	query := `SELECT payout_id FROM payouts ORDER BY payout_id DESC LIMIT 1`

	var maxID string
	err := r.db.QueryRow(ctx, query).Scan(&maxID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		r.logger.ErrorContext(ctx, "Failed to query max payout ID", slog.Any("error", err))
		return "", fmt.Errorf("%w: failed to query max payout ID: %w", apperrors.ErrDatabase, err)
	}
	return maxID, nil
}

func (r *PayoutRepository) scanPayout(row pgx.Row) (*payout.Payout, error) {
	var (
		p         payout.Payout
		amountRaw string
	)
	err := row.Scan(
		&p.PayoutID,
		&p.AssessmentID,
		&p.PayoutDate,
		&amountRaw,
		&p.Status,
		&p.ContractID,
		&p.CustomerName,
	)
	if err != nil {
		return nil, err
	}
	p.Amount, err = decimal.NewFromString(amountRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid payout amount %q: %w", amountRaw, err)
	}
	return &p, nil
}

func (r *PayoutRepository) queryPayouts(ctx context.Context, query string, args ...any) ([]*payout.Payout, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query payouts", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query payouts: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	payouts := make([]*payout.Payout, 0)
	for rows.Next() {
		p, err := r.scanPayout(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan payout row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan payout row: %w", apperrors.ErrDatabase, err)
		}
		payouts = append(payouts, p)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating payout rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating payout rows: %w", apperrors.ErrDatabase, err)
	}

	return payouts, nil
}
