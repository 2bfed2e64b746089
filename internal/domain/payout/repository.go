package payout

import (
	"context"

	"github.com/shopspring/decimal"
)

// PayoutRepository defines persistence operations for payouts.
type PayoutRepository interface {
	Insert(ctx context.Context, p *Payout) error
	FindByID(ctx context.Context, payoutID string) (*Payout, error)
	FindAll(ctx context.Context) ([]*Payout, error)
	FindPending(ctx context.Context) ([]*Payout, error)
	FindByContract(ctx context.Context, contractID string) ([]*Payout, error)
	UpdateStatus(ctx context.Context, payoutID string, status Status) error
	TotalsByStatus(ctx context.Context) ([]StatusTotal, error)
	TotalApproved(ctx context.Context) (decimal.Decimal, error)
	MaxID(ctx context.Context) (string, error)
}
