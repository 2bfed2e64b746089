package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"insurance-office/internal/domain/insurancetype"
	"insurance-office/internal/infrastructure/cache"
	"insurance-office/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

type InsuranceTypeRepository struct {
	db     DBPool
	cache  cache.Store
	logger *slog.Logger
}

var _ insurancetype.InsuranceTypeRepository = (*InsuranceTypeRepository)(nil)

func NewInsuranceTypeRepository(db DBPool, store cache.Store, logger *slog.Logger) *InsuranceTypeRepository {
	if db == nil {
		panic("DBPool cannot be nil for InsuranceTypeRepository")
	}
	if store == nil {
		store = cache.Nop()
	}
	return &InsuranceTypeRepository{
		db:     db,
		cache:  store,
		logger: logger.With("component", "InsuranceTypeRepository"),
	}
}

func (r *InsuranceTypeRepository) Insert(ctx context.Context, it *insurancetype.InsuranceType) error {
	if it == nil {
		return fmt.Errorf("%w: insurance type cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert new insurance type", slog.String("insuranceTypeID", it.InsuranceTypeID))

	query := `
        INSERT INTO insurance_types (insurance_id, insurance_name, description)
        VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query,
		it.InsuranceTypeID,
		it.Name,
		it.Description,
	)

	if err != nil {

		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to insert insurance type due to unique constraint violation", slog.String("insuranceTypeID", it.InsuranceTypeID))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert insurance type", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert insurance type: %w", apperrors.ErrDatabase, err)
	}

	r.cache.Invalidate(cache.ScopeInsuranceTypes, cache.ScopeReports)
	r.logger.InfoContext(ctx, "Insurance type inserted successfully", slog.String("insuranceTypeID", it.InsuranceTypeID))
	return nil
}

func (r *InsuranceTypeRepository) Update(ctx context.Context, it *insurancetype.InsuranceType) error {
	if it == nil {
		return fmt.Errorf("%w: insurance type cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to update insurance type", slog.String("insuranceTypeID", it.InsuranceTypeID))

	query := `
        UPDATE insurance_types
        SET insurance_name = $1,
            description = $2
        WHERE insurance_id = $3`

	cmdTag, err := r.db.Exec(ctx, query,
		it.Name,
		it.Description,
		it.InsuranceTypeID,
	)

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update insurance type", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update insurance type: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, insurance type likely not found")
		return apperrors.ErrNotFound
	}

	r.cache.Invalidate(cache.ScopeInsuranceTypes, cache.ScopeContracts, cache.ScopeReports)
	r.logger.InfoContext(ctx, "Insurance type updated successfully", slog.String("insuranceTypeID", it.InsuranceTypeID))
	return nil
}

func (r *InsuranceTypeRepository) FindByID(ctx context.Context, insuranceTypeID string) (*insurancetype.InsuranceType, error) {
	query := `
        SELECT insurance_id, insurance_name, description
        FROM insurance_types
        WHERE insurance_id = $1`

	if v, ok := r.cache.Get(cache.ScopeInsuranceTypes, query, insuranceTypeID); ok {
		return v.(*insurancetype.InsuranceType), nil
	}

	var it insurancetype.InsuranceType
	err := r.db.QueryRow(ctx, query, insuranceTypeID).Scan(
		&it.InsuranceTypeID,
		&it.Name,
		&it.Description,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Insurance type not found", slog.String("insuranceTypeID", insuranceTypeID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan insurance type by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get insurance type by ID: %w", apperrors.ErrDatabase, err)
	}

	r.cache.Put(cache.ScopeInsuranceTypes, query, &it, insuranceTypeID)
	return &it, nil
}

func (r *InsuranceTypeRepository) FindAll(ctx context.Context) ([]*insurancetype.InsuranceType, error) {
	query := `
        SELECT insurance_id, insurance_name, description
        FROM insurance_types
        ORDER BY insurance_id ASC`

	if v, ok := r.cache.Get(cache.ScopeInsuranceTypes, query); ok {
		return v.([]*insurancetype.InsuranceType), nil
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query insurance types", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query insurance types: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	types := make([]*insurancetype.InsuranceType, 0)
	for rows.Next() {
		var it insurancetype.InsuranceType
		err := rows.Scan(
			&it.InsuranceTypeID,
			&it.Name,
			&it.Description,
		)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan insurance type row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan insurance type row: %w", apperrors.ErrDatabase, err)
		}
		types = append(types, &it)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating insurance type rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating insurance type rows: %w", apperrors.ErrDatabase, err)
	}

	r.cache.Put(cache.ScopeInsuranceTypes, query, types)
	r.logger.InfoContext(ctx, "Finished finding insurance types", slog.Int("count", len(types)))
	return types, nil
}

func (r *InsuranceTypeRepository) Delete(ctx context.Context, insuranceTypeID string) error {
	r.logger.InfoContext(ctx, "Attempting to delete insurance type", slog.String("insuranceTypeID", insuranceTypeID))

	query := `DELETE FROM insurance_types WHERE insurance_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, insuranceTypeID)
	if err != nil {

		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrConflict) {
			r.logger.WarnContext(ctx, "Insurance type is still referenced by a contract", slog.String("insuranceTypeID", insuranceTypeID))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to execute delete insurance type", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete insurance type: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, insurance type likely not found")
		return apperrors.ErrNotFound
	}

	r.cache.Invalidate(cache.ScopeInsuranceTypes, cache.ScopeReports)
	r.logger.InfoContext(ctx, "Insurance type deleted successfully", slog.String("insuranceTypeID", insuranceTypeID))
	return nil
}

// MaxID is never served from cache; ID suggestions must see the latest row.
func (r *InsuranceTypeRepository) MaxID(ctx context.Context) (string, error) {
	query := `SELECT insurance_id FROM insurance_types ORDER BY insurance_id DESC LIMIT 1`

	var maxID string
	err := r.db.QueryRow(ctx, query).Scan(&maxID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		r.logger.ErrorContext(ctx, "Failed to query max insurance type ID", slog.Any("error", err))
		return "", fmt.Errorf("%w: failed to query max insurance type ID: %w", apperrors.ErrDatabase, err)
	}
	return maxID, nil
}
