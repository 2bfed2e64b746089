package contract

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockContractRepository struct {
	mock.Mock
}

func (_m *MockContractRepository) Insert(ctx context.Context, c *Contract) error {
	return _m.Called(ctx, c).Error(0)
}

func (_m *MockContractRepository) Update(ctx context.Context, c *Contract) error {
	return _m.Called(ctx, c).Error(0)
}

func (_m *MockContractRepository) FindByID(ctx context.Context, contractID string) (*Contract, error) {
	ret := _m.Called(ctx, contractID)

	var r0 *Contract
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Contract)
	}
	return r0, ret.Error(1)
}

func (_m *MockContractRepository) FindAll(ctx context.Context) ([]*Contract, error) {
	ret := _m.Called(ctx)

	var r0 []*Contract
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Contract)
	}
	return r0, ret.Error(1)
}

func (_m *MockContractRepository) FindByCustomer(ctx context.Context, customerID string) ([]*Contract, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []*Contract
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Contract)
	}
	return r0, ret.Error(1)
}

func (_m *MockContractRepository) FindExpiringWithin(ctx context.Context, days int) ([]*Contract, error) {
	ret := _m.Called(ctx, days)

	var r0 []*Contract
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Contract)
	}
	return r0, ret.Error(1)
}

func (_m *MockContractRepository) Extend(ctx context.Context, contractID string, newExpiration time.Time) error {
	return _m.Called(ctx, contractID, newExpiration).Error(0)
}

func (_m *MockContractRepository) MaxID(ctx context.Context) (string, error) {
	ret := _m.Called(ctx)
	return ret.String(0), ret.Error(1)
}
