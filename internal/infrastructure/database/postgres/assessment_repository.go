package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"insurance-office/internal/domain/assessment"
	"insurance-office/internal/infrastructure/cache"
	"insurance-office/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type AssessmentRepository struct {
	db     DBPool
	cache  cache.Store
	logger *slog.Logger
}

var _ assessment.AssessmentRepository = (*AssessmentRepository)(nil)

func NewAssessmentRepository(db DBPool, store cache.Store, logger *slog.Logger) *AssessmentRepository {
	if db == nil {
		panic("DBPool cannot be nil for AssessmentRepository")
	}
	if store == nil {
		store = cache.Nop()
	}
	return &AssessmentRepository{
		db:     db,
		cache:  store,
		logger: logger.With("component", "AssessmentRepository"),
	}
}

// Amounts travel as text on both sides of the driver so the numeric column
// never round-trips through a float.
const assessmentSelect = `
        SELECT a.assessment_id, a.contract_id, a.assessment_date, a.claim_amount::text, a.result, c.name
        FROM assessments a
        JOIN insurance_contracts ct ON ct.contract_id = a.contract_id
        JOIN customers c ON c.customer_id = ct.customer_id`

func (r *AssessmentRepository) Insert(ctx context.Context, a *assessment.Assessment) error {
	if a == nil {
		return fmt.Errorf("%w: assessment cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert new assessment", slog.String("assessmentID", a.AssessmentID))

	query := `
        INSERT INTO assessments (assessment_id, contract_id, assessment_date, claim_amount, result)
        VALUES ($1, $2, $3, $4::numeric, $5)`

	_, err := r.db.Exec(ctx, query,
		a.AssessmentID,
		a.ContractID,
		a.AssessmentDate,
		a.ClaimAmount.String(),
		a.Result,
	)

	if err != nil {

		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) || errors.Is(translatedErr, apperrors.ErrConflict) {
			r.logger.WarnContext(ctx, "Failed to insert assessment due to constraint violation", slog.String("assessmentID", a.AssessmentID), slog.Any("error", err))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert assessment", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert assessment: %w", apperrors.ErrDatabase, err)
	}

	r.cache.Invalidate(cache.ScopeAssessments, cache.ScopePayouts, cache.ScopeReports)
	r.logger.InfoContext(ctx, "Assessment inserted successfully", slog.String("assessmentID", a.AssessmentID))
	return nil
}

func (r *AssessmentRepository) FindByID(ctx context.Context, assessmentID string) (*assessment.Assessment, error) {
	query := assessmentSelect + `
        WHERE a.assessment_id = $1`

	if v, ok := r.cache.Get(cache.ScopeAssessments, query, assessmentID); ok {
		return v.(*assessment.Assessment), nil
	}

	a, err := r.scanAssessment(r.db.QueryRow(ctx, query, assessmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Assessment not found", slog.String("assessmentID", assessmentID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan assessment by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get assessment by ID: %w", apperrors.ErrDatabase, err)
	}

	r.cache.Put(cache.ScopeAssessments, query, a, assessmentID)
	return a, nil
}

func (r *AssessmentRepository) FindAll(ctx context.Context) ([]*assessment.Assessment, error) {
	query := assessmentSelect + `
        ORDER BY a.assessment_id ASC`

	if v, ok := r.cache.Get(cache.ScopeAssessments, query); ok {
		return v.([]*assessment.Assessment), nil
	}

	assessments, err := r.queryAssessments(ctx, query)
	if err != nil {
		return nil, err
	}

	r.cache.Put(cache.ScopeAssessments, query, assessments)
	r.logger.InfoContext(ctx, "Finished finding assessments", slog.Int("count", len(assessments)))
	return assessments, nil
}

func (r *AssessmentRepository) FindByContract(ctx context.Context, contractID string) ([]*assessment.Assessment, error) {
	query := assessmentSelect + `
        WHERE a.contract_id = $1
        ORDER BY a.assessment_id ASC`

	if v, ok := r.cache.Get(cache.ScopeAssessments, query, contractID); ok {
		return v.([]*assessment.Assessment), nil
	}

	assessments, err := r.queryAssessments(ctx, query, contractID)
	if err != nil {
		return nil, err
	}

	r.cache.Put(cache.ScopeAssessments, query, assessments, contractID)
	return assessments, nil
}

func (r *AssessmentRepository) FindPending(ctx context.Context) ([]*assessment.Assessment, error) {
	query := assessmentSelect + `
        WHERE a.result = $1
        ORDER BY a.assessment_id ASC`

	if v, ok := r.cache.Get(cache.ScopeAssessments, query, assessment.ResultPending); ok {
		return v.([]*assessment.Assessment), nil
	}

	assessments, err := r.queryAssessments(ctx, query, assessment.ResultPending)
	if err != nil {
		return nil, err
	}

	r.cache.Put(cache.ScopeAssessments, query, assessments, assessment.ResultPending)
	return assessments, nil
}

// FindApprovedWithoutPayout is the payout screen's source of eligible claims:
// approved assessments with no payout row yet. Payout writes invalidate the
// assessments scope so this read never serves an already paid claim for
// longer than one write.
func (r *AssessmentRepository) FindApprovedWithoutPayout(ctx context.Context) ([]*assessment.ApprovedClaim, error) {
	query := `
        SELECT a.assessment_id, a.contract_id, c.name, a.assessment_date, a.claim_amount::text
        FROM assessments a
        JOIN insurance_contracts ct ON ct.contract_id = a.contract_id
        JOIN customers c ON c.customer_id = ct.customer_id
        WHERE a.result = $1
          AND NOT EXISTS (SELECT 1 FROM payouts p WHERE p.assessment_id = a.assessment_id)
        ORDER BY a.assessment_id ASC`

	if v, ok := r.cache.Get(cache.ScopeAssessments, query, assessment.ResultApproved); ok {
		return v.([]*assessment.ApprovedClaim), nil
	}

	rows, err := r.db.Query(ctx, query, assessment.ResultApproved)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query approved claims without payout", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query approved claims without payout: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	claims := make([]*assessment.ApprovedClaim, 0)
	for rows.Next() {
		var (
			claim     assessment.ApprovedClaim
			amountRaw string
		)
		err := rows.Scan(
			&claim.AssessmentID,
			&claim.ContractID,
			&claim.CustomerName,
			&claim.AssessmentDate,
			&amountRaw,
		)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan approved claim row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan approved claim row: %w", apperrors.ErrDatabase, err)
		}
		claim.ClaimAmount, err = decimal.NewFromString(amountRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid claim amount %q: %w", apperrors.ErrDatabase, amountRaw, err)
		}
		claims = append(claims, &claim)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating approved claim rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating approved claim rows: %w", apperrors.ErrDatabase, err)
	}

	r.cache.Put(cache.ScopeAssessments, query, claims, assessment.ResultApproved)
	r.logger.InfoContext(ctx, "Finished finding approved claims without payout", slog.Int("count", len(claims)))
	return claims, nil
}

func (r *AssessmentRepository) UpdateResult(ctx context.Context, assessmentID string, result assessment.Result) error {
	r.logger.InfoContext(ctx, "Attempting to update assessment result",
		slog.String("assessmentID", assessmentID), slog.String("result", string(result)))

	query := `UPDATE assessments SET result = $1 WHERE assessment_id = $2`

	cmdTag, err := r.db.Exec(ctx, query, result, assessmentID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update assessment result", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update assessment result: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, assessment likely not found")
		return apperrors.ErrNotFound
	}

	r.cache.Invalidate(cache.ScopeAssessments, cache.ScopePayouts, cache.ScopeReports)
	r.logger.InfoContext(ctx, "Assessment result updated successfully", slog.String("assessmentID", assessmentID))
	return nil
}

// MaxID is never served from cache; ID suggestions must see the latest row.
func (r *AssessmentRepository) MaxID(ctx context.Context) (string, error) {
	query := `SELECT assessment_id FROM assessments ORDER BY assessment_id DESC LIMIT 1`

	var maxID string
	err := r.db.QueryRow(ctx, query).Scan(&maxID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		r.logger.ErrorContext(ctx, "Failed to query max assessment ID", slog.Any("error", err))
		return "", fmt.Errorf("%w: failed to query max assessment ID: %w", apperrors.ErrDatabase, err)
	}
	return maxID, nil
}

func (r *AssessmentRepository) scanAssessment(row pgx.Row) (*assessment.Assessment, error) {
	var (
		a         assessment.Assessment
		amountRaw string
	)
	err := row.Scan(
		&a.AssessmentID,
		&a.ContractID,
		&a.AssessmentDate,
		&amountRaw,
		&a.Result,
		&a.CustomerName,
	)
	if err != nil {
		return nil, err
	}
	a.ClaimAmount, err = decimal.NewFromString(amountRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid claim amount %q: %w", amountRaw, err)
	}
	return &a, nil
}

func (r *AssessmentRepository) queryAssessments(ctx context.Context, query string, args ...any) ([]*assessment.Assessment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query assessments", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query assessments: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	assessments := make([]*assessment.Assessment, 0)
	for rows.Next() {
		a, err := r.scanAssessment(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan assessment row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan assessment row: %w", apperrors.ErrDatabase, err)
		}
		assessments = append(assessments, a)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating assessment rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating assessment rows: %w", apperrors.ErrDatabase, err)
	}

	return assessments, nil
}
