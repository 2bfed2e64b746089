package customer

import (
	"context"
)

type CustomerRepository interface {
	Insert(ctx context.Context, cust *Customer) error

	Update(ctx context.Context, cust *Customer) error

	FindByID(ctx context.Context, customerID string) (*Customer, error)

	FindAll(ctx context.Context) ([]*Customer, error)

	// Delete removes the customer row. A customer referenced by a contract is
	// rejected by the store's foreign key and surfaces as a conflict.
	Delete(ctx context.Context, customerID string) error

	// MaxID returns the highest customer identifier by descending sort, or an
	// empty string when the table is empty.
	MaxID(ctx context.Context) (string, error)
}
