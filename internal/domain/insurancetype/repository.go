package insurancetype

import "context"

type InsuranceTypeRepository interface {
	Insert(ctx context.Context, it *InsuranceType) error

	Update(ctx context.Context, it *InsuranceType) error

	FindByID(ctx context.Context, insuranceTypeID string) (*InsuranceType, error)

	FindAll(ctx context.Context) ([]*InsuranceType, error)

	// Delete fails with a conflict when a contract still references the type.
	Delete(ctx context.Context, insuranceTypeID string) error

	MaxID(ctx context.Context) (string, error)
}
