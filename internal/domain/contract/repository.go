package contract

import (
	"context"
	"time"
)

type ContractRepository interface {
	Insert(ctx context.Context, c *Contract) error

	Update(ctx context.Context, c *Contract) error

	FindByID(ctx context.Context, contractID string) (*Contract, error)

	FindAll(ctx context.Context) ([]*Contract, error)

	FindByCustomer(ctx context.Context, customerID string) ([]*Contract, error)

	// FindExpiringWithin returns contracts whose expiration date falls inside
	// the next `days` days, including ones already past it.
	FindExpiringWithin(ctx context.Context, days int) ([]*Contract, error)

	// Extend sets a new expiration date and forces the status back to Active
	// in the same statement.
	Extend(ctx context.Context, contractID string, newExpiration time.Time) error

	MaxID(ctx context.Context) (string, error)
}
