package payout

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockPayoutRepository is a mock implementation of PayoutRepository.
type MockPayoutRepository struct {
	mock.Mock
}

func (_m *MockPayoutRepository) Insert(ctx context.Context, p *Payout) error {
	return _m.Called(ctx, p).Error(0)
}

func (_m *MockPayoutRepository) FindByID(ctx context.Context, payoutID string) (*Payout, error) {
	ret := _m.Called(ctx, payoutID)

	var r0 *Payout
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Payout)
	}
	return r0, ret.Error(1)
}

func (_m *MockPayoutRepository) FindAll(ctx context.Context) ([]*Payout, error) {
	ret := _m.Called(ctx)

	var r0 []*Payout
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Payout)
	}
	return r0, ret.Error(1)
}

func (_m *MockPayoutRepository) FindPending(ctx context.Context) ([]*Payout, error) {
	ret := _m.Called(ctx)

	var r0 []*Payout
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Payout)
	}
	return r0, ret.Error(1)
}

func (_m *MockPayoutRepository) FindByContract(ctx context.Context, contractID string) ([]*Payout, error) {
	ret := _m.Called(ctx, contractID)

	var r0 []*Payout
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Payout)
	}
	return r0, ret.Error(1)
}

func (_m *MockPayoutRepository) UpdateStatus(ctx context.Context, payoutID string, status Status) error {
	return _m.Called(ctx, payoutID, status).Error(0)
}

func (_m *MockPayoutRepository) TotalsByStatus(ctx context.Context) ([]StatusTotal, error) {
	ret := _m.Called(ctx)

	var r0 []StatusTotal
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]StatusTotal)
	}
	return r0, ret.Error(1)
}

func (_m *MockPayoutRepository) TotalApproved(ctx context.Context) (decimal.Decimal, error) {
	ret := _m.Called(ctx)

	var r0 decimal.Decimal
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(decimal.Decimal)
	}
	return r0, ret.Error(1)
}

func (_m *MockPayoutRepository) MaxID(ctx context.Context) (string, error) {
	ret := _m.Called(ctx)
	return ret.String(0), ret.Error(1)
}
