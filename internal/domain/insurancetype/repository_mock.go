package insurancetype

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockInsuranceTypeRepository struct {
	mock.Mock
}

func (_m *MockInsuranceTypeRepository) Insert(ctx context.Context, it *InsuranceType) error {
	return _m.Called(ctx, it).Error(0)
}

func (_m *MockInsuranceTypeRepository) Update(ctx context.Context, it *InsuranceType) error {
	return _m.Called(ctx, it).Error(0)
}

func (_m *MockInsuranceTypeRepository) FindByID(ctx context.Context, insuranceTypeID string) (*InsuranceType, error) {
	ret := _m.Called(ctx, insuranceTypeID)

	var r0 *InsuranceType
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*InsuranceType)
	}
	return r0, ret.Error(1)
}

func (_m *MockInsuranceTypeRepository) FindAll(ctx context.Context) ([]*InsuranceType, error) {
	ret := _m.Called(ctx)

	var r0 []*InsuranceType
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*InsuranceType)
	}
	return r0, ret.Error(1)
}

func (_m *MockInsuranceTypeRepository) Delete(ctx context.Context, insuranceTypeID string) error {
	return _m.Called(ctx, insuranceTypeID).Error(0)
}

func (_m *MockInsuranceTypeRepository) MaxID(ctx context.Context) (string, error) {
	ret := _m.Called(ctx)
	return ret.String(0), ret.Error(1)
}
