package report

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockReportRepository is a mock implementation of ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

func (_m *MockReportRepository) DashboardMetrics(ctx context.Context) (*DashboardMetrics, error) {
	ret := _m.Called(ctx)

	var r0 *DashboardMetrics
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*DashboardMetrics)
	}
	return r0, ret.Error(1)
}

func (_m *MockReportRepository) RecentContracts(ctx context.Context, limit int) ([]RecentContract, error) {
	ret := _m.Called(ctx, limit)

	var r0 []RecentContract
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]RecentContract)
	}
	return r0, ret.Error(1)
}

func (_m *MockReportRepository) ClaimsByInsuranceType(ctx context.Context) ([]TypeCount, error) {
	ret := _m.Called(ctx)

	var r0 []TypeCount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]TypeCount)
	}
	return r0, ret.Error(1)
}

func (_m *MockReportRepository) ClaimStatusDistribution(ctx context.Context) ([]StatusCount, error) {
	ret := _m.Called(ctx)

	var r0 []StatusCount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]StatusCount)
	}
	return r0, ret.Error(1)
}

func (_m *MockReportRepository) MonthlyClaimTrend(ctx context.Context) ([]MonthCount, error) {
	ret := _m.Called(ctx)

	var r0 []MonthCount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]MonthCount)
	}
	return r0, ret.Error(1)
}

func (_m *MockReportRepository) ContractsByInsuranceType(ctx context.Context) ([]TypeCount, error) {
	ret := _m.Called(ctx)

	var r0 []TypeCount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]TypeCount)
	}
	return r0, ret.Error(1)
}

func (_m *MockReportRepository) MonthlyContractTrend(ctx context.Context) ([]MonthCount, error) {
	ret := _m.Called(ctx)

	var r0 []MonthCount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]MonthCount)
	}
	return r0, ret.Error(1)
}

func (_m *MockReportRepository) PayoutsByInsuranceType(ctx context.Context) ([]TypeAmount, error) {
	ret := _m.Called(ctx)

	var r0 []TypeAmount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]TypeAmount)
	}
	return r0, ret.Error(1)
}

func (_m *MockReportRepository) MonthlyPayoutTrend(ctx context.Context) ([]MonthAmount, error) {
	ret := _m.Called(ctx)

	var r0 []MonthAmount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]MonthAmount)
	}
	return r0, ret.Error(1)
}

func (_m *MockReportRepository) TopCustomersByContracts(ctx context.Context, limit int) ([]CustomerCount, error) {
	ret := _m.Called(ctx, limit)

	var r0 []CustomerCount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]CustomerCount)
	}
	return r0, ret.Error(1)
}

func (_m *MockReportRepository) TopCustomersByPayout(ctx context.Context, limit int) ([]CustomerAmount, error) {
	ret := _m.Called(ctx, limit)

	var r0 []CustomerAmount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]CustomerAmount)
	}
	return r0, ret.Error(1)
}
