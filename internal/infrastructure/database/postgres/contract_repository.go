package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"insurance-office/internal/domain/contract"
	"insurance-office/internal/infrastructure/cache"
	"insurance-office/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

type ContractRepository struct {
	db     DBPool
	cache  cache.Store
	logger *slog.Logger
}

var _ contract.ContractRepository = (*ContractRepository)(nil)

func NewContractRepository(db DBPool, store cache.Store, logger *slog.Logger) *ContractRepository {
	if db == nil {
		panic("DBPool cannot be nil for ContractRepository")
	}
	if store == nil {
		store = cache.Nop()
	}
	return &ContractRepository{
		db:     db,
		cache:  store,
		logger: logger.With("component", "ContractRepository"),
	}
}

const contractSelect = `
        SELECT ct.contract_id, ct.customer_id, ct.insurance_id, ct.sign_date,
               ct.expiration_date, ct.status, c.name, t.insurance_name
        FROM insurance_contracts ct
        JOIN customers c ON c.customer_id = ct.customer_id
        JOIN insurance_types t ON t.insurance_id = ct.insurance_id`

func (r *ContractRepository) Insert(ctx context.Context, c *contract.Contract) error {
	if c == nil {
		return fmt.Errorf("%w: contract cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert new contract", slog.String("contractID", c.ContractID))

	query := `
        INSERT INTO insurance_contracts (contract_id, customer_id, insurance_id, sign_date, expiration_date, status)
        VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		c.ContractID,
		c.CustomerID,
		c.InsuranceTypeID,
		c.SignDate,
		c.ExpirationDate,
		c.Status,
	)

	if err != nil {

		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) || errors.Is(translatedErr, apperrors.ErrConflict) {
			r.logger.WarnContext(ctx, "Failed to insert contract due to constraint violation", slog.String("contractID", c.ContractID), slog.Any("error", err))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert contract", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert contract: %w", apperrors.ErrDatabase, err)
	}

	r.cache.Invalidate(cache.ScopeContracts, cache.ScopeReports)
	r.logger.InfoContext(ctx, "Contract inserted successfully", slog.String("contractID", c.ContractID))
	return nil
}

func (r *ContractRepository) Update(ctx context.Context, c *contract.Contract) error {
	if c == nil {
		return fmt.Errorf("%w: contract cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to update contract", slog.String("contractID", c.ContractID))

	query := `
        UPDATE insurance_contracts
        SET customer_id = $1,
            insurance_id = $2,
            sign_date = $3,
            expiration_date = $4,
            status = $5
        WHERE contract_id = $6`

	cmdTag, err := r.db.Exec(ctx, query,
		c.CustomerID,
		c.InsuranceTypeID,
		c.SignDate,
		c.ExpirationDate,
		c.Status,
		c.ContractID,
	)

	if err != nil {

		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrConflict) {
			r.logger.WarnContext(ctx, "Failed to update contract due to foreign key violation", slog.String("contractID", c.ContractID))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to update contract", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update contract: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, contract likely not found")
		return apperrors.ErrNotFound
	}

	r.cache.Invalidate(cache.ScopeContracts, cache.ScopeAssessments, cache.ScopeReports)
	r.logger.InfoContext(ctx, "Contract updated successfully", slog.String("contractID", c.ContractID))
	return nil
}

func (r *ContractRepository) FindByID(ctx context.Context, contractID string) (*contract.Contract, error) {
	query := contractSelect + `
        WHERE ct.contract_id = $1`

	if v, ok := r.cache.Get(cache.ScopeContracts, query, contractID); ok {
		return v.(*contract.Contract), nil
	}

	var c contract.Contract
	err := r.db.QueryRow(ctx, query, contractID).Scan(
		&c.ContractID,
		&c.CustomerID,
		&c.InsuranceTypeID,
		&c.SignDate,
		&c.ExpirationDate,
		&c.Status,
		&c.CustomerName,
		&c.InsuranceName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Contract not found", slog.String("contractID", contractID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan contract by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get contract by ID: %w", apperrors.ErrDatabase, err)
	}

	r.cache.Put(cache.ScopeContracts, query, &c, contractID)
	return &c, nil
}

func (r *ContractRepository) FindAll(ctx context.Context) ([]*contract.Contract, error) {
	query := contractSelect + `
        ORDER BY ct.contract_id ASC`

	if v, ok := r.cache.Get(cache.ScopeContracts, query); ok {
		return v.([]*contract.Contract), nil
	}

	contracts, err := r.queryContracts(ctx, query)
	if err != nil {
		return nil, err
	}

	r.cache.Put(cache.ScopeContracts, query, contracts)
	r.logger.InfoContext(ctx, "Finished finding contracts", slog.Int("count", len(contracts)))
	return contracts, nil
}

func (r *ContractRepository) FindByCustomer(ctx context.Context, customerID string) ([]*contract.Contract, error) {
	query := contractSelect + `
        WHERE ct.customer_id = $1
        ORDER BY ct.contract_id ASC`

	if v, ok := r.cache.Get(cache.ScopeContracts, query, customerID); ok {
		return v.([]*contract.Contract), nil
	}

	contracts, err := r.queryContracts(ctx, query, customerID)
	if err != nil {
		return nil, err
	}

	r.cache.Put(cache.ScopeContracts, query, contracts, customerID)
	return contracts, nil
}

// FindExpiringWithin deliberately bypasses the cache: the window is anchored
// to CURRENT_DATE and the renewal job must not see yesterday's answer.
func (r *ContractRepository) FindExpiringWithin(ctx context.Context, days int) ([]*contract.Contract, error) {
	query := contractSelect + `
        WHERE ct.expiration_date IS NOT NULL
          AND ct.expiration_date <= CURRENT_DATE + $1::int
        ORDER BY ct.expiration_date ASC`

	contracts, err := r.queryContracts(ctx, query, days)
	if err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "Finished finding expiring contracts",
		slog.Int("days", days), slog.Int("count", len(contracts)))
	return contracts, nil
}

func (r *ContractRepository) Extend(ctx context.Context, contractID string, newExpiration time.Time) error {
	r.logger.InfoContext(ctx, "Attempting to extend contract",
		slog.String("contractID", contractID),
		slog.Time("newExpiration", newExpiration))

	query := `
        UPDATE insurance_contracts
        SET expiration_date = $1,
            status = $2
        WHERE contract_id = $3`

	cmdTag, err := r.db.Exec(ctx, query, newExpiration, contract.StatusActive, contractID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to extend contract", slog.Any("error", err))
		return fmt.Errorf("%w: failed to extend contract: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Extend affected zero rows, contract likely not found")
		return apperrors.ErrNotFound
	}

	r.cache.Invalidate(cache.ScopeContracts, cache.ScopeReports)
	r.logger.InfoContext(ctx, "Contract extended successfully", slog.String("contractID", contractID))
	return nil
}

// MaxID is never served from cache; ID suggestions must see the latest row.
func (r *ContractRepository) MaxID(ctx context.Context) (string, error) {
	query := `SELECT contract_id FROM insurance_contracts ORDER BY contract_id DESC LIMIT 1`

	var maxID string
	err := r.db.QueryRow(ctx, query).Scan(&maxID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		r.logger.ErrorContext(ctx, "Failed to query max contract ID", slog.Any("error", err))
		return "", fmt.Errorf("%w: failed to query max contract ID: %w", apperrors.ErrDatabase, err)
	}
	return maxID, nil
}

func (r *ContractRepository) queryContracts(ctx context.Context, query string, args ...any) ([]*contract.Contract, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query contracts", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query contracts: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	contracts := make([]*contract.Contract, 0)
	for rows.Next() {
		var c contract.Contract
		err := rows.Scan(
			&c.ContractID,
			&c.CustomerID,
			&c.InsuranceTypeID,
			&c.SignDate,
			&c.ExpirationDate,
			&c.Status,
			&c.CustomerName,
			&c.InsuranceName,
		)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan contract row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan contract row: %w", apperrors.ErrDatabase, err)
		}
		contracts = append(contracts, &c)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating contract rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating contract rows: %w", apperrors.ErrDatabase, err)
	}

	return contracts, nil
}
