package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"insurance-office/internal/domain/customer"
	"insurance-office/internal/infrastructure/cache"
	"insurance-office/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct {
	db     DBPool
	cache  cache.Store
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, store cache.Store, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if store == nil {
		store = cache.Nop()
	}
	if logger == nil {

		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		cache:  store,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) Insert(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert new customer", slog.String("customerID", cust.CustomerID))

	query := `
        INSERT INTO customers (customer_id, name, address, phone)
        VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query,
		cust.CustomerID,
		cust.Name,
		cust.Address,
		cust.Phone,
	)

	if err != nil {

		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {

			r.logger.WarnContext(ctx, "Failed to insert customer due to unique constraint violation", slog.String("customerID", cust.CustomerID))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert customer: %w", apperrors.ErrDatabase, err)
	}

	r.cache.Invalidate(cache.ScopeCustomers, cache.ScopeReports)
	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.String("customerID", cust.CustomerID))
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to update customer", slog.String("customerID", cust.CustomerID))

	query := `
        UPDATE customers
        SET name = $1,
            address = $2,
            phone = $3
        WHERE customer_id = $4`

	cmdTag, err := r.db.Exec(ctx, query,
		cust.Name,
		cust.Address,
		cust.Phone,
		cust.CustomerID,
	)

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update customer: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	r.cache.Invalidate(cache.ScopeCustomers, cache.ScopeContracts, cache.ScopeReports)
	r.logger.InfoContext(ctx, "Customer updated successfully", slog.String("customerID", cust.CustomerID))
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID string) (*customer.Customer, error) {
	query := `
        SELECT customer_id, name, address, phone
        FROM customers
        WHERE customer_id = $1`

	if v, ok := r.cache.Get(cache.ScopeCustomers, query, customerID); ok {
		return v.(*customer.Customer), nil
	}

	var cust customer.Customer
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&cust.CustomerID,
		&cust.Name,
		&cust.Address,
		&cust.Phone,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found", slog.String("customerID", customerID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by ID: %w", apperrors.ErrDatabase, err)
	}

	r.cache.Put(cache.ScopeCustomers, query, &cust, customerID)
	return &cust, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	query := `
        SELECT customer_id, name, address, phone
        FROM customers
        ORDER BY customer_id ASC`

	if v, ok := r.cache.Get(cache.ScopeCustomers, query); ok {
		return v.([]*customer.Customer), nil
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customers: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		var cust customer.Customer
		err := rows.Scan(
			&cust.CustomerID,
			&cust.Name,
			&cust.Address,
			&cust.Phone,
		)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan customer row: %w", apperrors.ErrDatabase, err)
		}
		customers = append(customers, &cust)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating customer rows: %w", apperrors.ErrDatabase, err)
	}

	r.cache.Put(cache.ScopeCustomers, query, customers)
	r.logger.InfoContext(ctx, "Finished finding customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID string) error {
	r.logger.InfoContext(ctx, "Attempting to delete customer", slog.String("customerID", customerID))

	query := `DELETE FROM customers WHERE customer_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, customerID)
	if err != nil {

		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrConflict) {
			r.logger.WarnContext(ctx, "Customer is still referenced by a contract", slog.String("customerID", customerID))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to execute delete customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete customer: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	r.cache.Invalidate(cache.ScopeCustomers, cache.ScopeReports)
	r.logger.InfoContext(ctx, "Customer deleted successfully", slog.String("customerID", customerID))
	return nil
}

// MaxID is never served from cache; ID suggestions must see the latest row.
func (r *CustomerRepository) MaxID(ctx context.Context) (string, error) {
	query := `SELECT customer_id FROM customers ORDER BY customer_id DESC LIMIT 1`

	var maxID string
	err := r.db.QueryRow(ctx, query).Scan(&maxID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		r.logger.ErrorContext(ctx, "Failed to query max customer ID", slog.Any("error", err))
		return "", fmt.Errorf("%w: failed to query max customer ID: %w", apperrors.ErrDatabase, err)
	}
	return maxID, nil
}
