package assessment

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAssessmentRepository struct {
	mock.Mock
}

func (_m *MockAssessmentRepository) Insert(ctx context.Context, a *Assessment) error {
	return _m.Called(ctx, a).Error(0)
}

func (_m *MockAssessmentRepository) FindByID(ctx context.Context, assessmentID string) (*Assessment, error) {
	ret := _m.Called(ctx, assessmentID)

	var r0 *Assessment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Assessment)
	}
	return r0, ret.Error(1)
}

func (_m *MockAssessmentRepository) FindAll(ctx context.Context) ([]*Assessment, error) {
	ret := _m.Called(ctx)

	var r0 []*Assessment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Assessment)
	}
	return r0, ret.Error(1)
}

func (_m *MockAssessmentRepository) FindByContract(ctx context.Context, contractID string) ([]*Assessment, error) {
	ret := _m.Called(ctx, contractID)

	var r0 []*Assessment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Assessment)
	}
	return r0, ret.Error(1)
}

func (_m *MockAssessmentRepository) FindPending(ctx context.Context) ([]*Assessment, error) {
	ret := _m.Called(ctx)

	var r0 []*Assessment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Assessment)
	}
	return r0, ret.Error(1)
}

func (_m *MockAssessmentRepository) FindApprovedWithoutPayout(ctx context.Context) ([]*ApprovedClaim, error) {
	ret := _m.Called(ctx)

	var r0 []*ApprovedClaim
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*ApprovedClaim)
	}
	return r0, ret.Error(1)
}

func (_m *MockAssessmentRepository) UpdateResult(ctx context.Context, assessmentID string, result Result) error {
	return _m.Called(ctx, assessmentID, result).Error(0)
}

func (_m *MockAssessmentRepository) MaxID(ctx context.Context) (string, error) {
	ret := _m.Called(ctx)
	return ret.String(0), ret.Error(1)
}
