package payout_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"insurance-office/internal/domain/assessment"
	"insurance-office/internal/domain/payout"
	"insurance-office/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAssessmentService struct {
	mock.Mock
}

func (_m *MockAssessmentService) FileClaim(ctx context.Context, assessmentID, contractID string, assessmentDate time.Time, claimAmount decimal.Decimal, result assessment.Result) (*assessment.Assessment, error) {
	ret := _m.Called(ctx, assessmentID, contractID, assessmentDate, claimAmount, result)

	var r0 *assessment.Assessment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*assessment.Assessment)
	}
	return r0, ret.Error(1)
}

func (_m *MockAssessmentService) GetAssessment(ctx context.Context, assessmentID string) (*assessment.Assessment, error) {
	ret := _m.Called(ctx, assessmentID)

	var r0 *assessment.Assessment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*assessment.Assessment)
	}
	return r0, ret.Error(1)
}

func (_m *MockAssessmentService) ListAssessments(ctx context.Context) ([]*assessment.Assessment, error) {
	ret := _m.Called(ctx)

	var r0 []*assessment.Assessment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*assessment.Assessment)
	}
	return r0, ret.Error(1)
}

func (_m *MockAssessmentService) PendingAssessments(ctx context.Context) ([]*assessment.Assessment, error) {
	ret := _m.Called(ctx)

	var r0 []*assessment.Assessment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*assessment.Assessment)
	}
	return r0, ret.Error(1)
}

func (_m *MockAssessmentService) ClaimsForContract(ctx context.Context, contractID string) ([]*assessment.Assessment, error) {
	ret := _m.Called(ctx, contractID)

	var r0 []*assessment.Assessment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*assessment.Assessment)
	}
	return r0, ret.Error(1)
}

func (_m *MockAssessmentService) ApprovedWithoutPayout(ctx context.Context) ([]*assessment.ApprovedClaim, error) {
	ret := _m.Called(ctx)

	var r0 []*assessment.ApprovedClaim
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*assessment.ApprovedClaim)
	}
	return r0, ret.Error(1)
}

func (_m *MockAssessmentService) UpdateResult(ctx context.Context, assessmentID string, result assessment.Result) error {
	return _m.Called(ctx, assessmentID, result).Error(0)
}

func (_m *MockAssessmentService) NextAssessmentID(ctx context.Context) (string, error) {
	ret := _m.Called(ctx)
	return ret.String(0), ret.Error(1)
}

func setupTest() (*payout.MockPayoutRepository, *MockAssessmentService, payout.PayoutService) {
	mockRepo := new(payout.MockPayoutRepository)
	mockAssessments := new(MockAssessmentService)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := payout.NewPayoutService(mockRepo, mockAssessments, logger)
	return mockRepo, mockAssessments, service
}

func TestPayoutService_ProcessPayout(t *testing.T) {
	ctx := context.Background()
	payoutDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	eligible := []*assessment.ApprovedClaim{
		{AssessmentID: "A001", ContractID: "CT001", CustomerName: "Alice", ClaimAmount: decimal.NewFromFloat(500.00)},
		{AssessmentID: "A003", ContractID: "CT002", CustomerName: "Bob", ClaimAmount: decimal.NewFromInt(250)},
	}

	t.Run("Success for an eligible claim with generated ID", func(t *testing.T) {
		mockRepo, mockAssessments, service := setupTest()

		mockAssessments.On("ApprovedWithoutPayout", ctx).Return(eligible, nil).Once()
		mockRepo.On("MaxID", ctx).Return("", nil).Once()
		mockRepo.On("Insert", ctx, mock.MatchedBy(func(p *payout.Payout) bool {
			return p.PayoutID == "P001" && p.AssessmentID == "A001" &&
				p.Status == payout.StatusPending && p.Amount.Equal(decimal.NewFromFloat(500.00))
		})).Return(nil).Once()

		processed, err := service.ProcessPayout(ctx, "", "A001", payoutDate, decimal.NewFromFloat(500.00), "")

		assert.NoError(t, err)
		assert.Equal(t, "P001", processed.PayoutID)
		assert.Equal(t, payout.StatusPending, processed.Status)
		mockRepo.AssertExpectations(t)
		mockAssessments.AssertExpectations(t)
	})

	t.Run("Assessment outside the eligible set is rejected", func(t *testing.T) {
		mockRepo, mockAssessments, service := setupTest()
		mockAssessments.On("ApprovedWithoutPayout", ctx).Return(eligible, nil).Once()

		_, err := service.ProcessPayout(ctx, "", "A002", payoutDate, decimal.NewFromInt(100), payout.StatusPending)

		assert.ErrorIs(t, err, apperrors.ErrClaimNotEligible)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Already paid claim is rejected the same way", func(t *testing.T) {
		mockRepo, mockAssessments, service := setupTest()
		mockAssessments.On("ApprovedWithoutPayout", ctx).Return([]*assessment.ApprovedClaim{}, nil).Once()

		_, err := service.ProcessPayout(ctx, "", "A001", payoutDate, decimal.NewFromInt(100), payout.StatusPending)

		assert.ErrorIs(t, err, apperrors.ErrClaimNotEligible)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Negative amount never reaches the eligibility query", func(t *testing.T) {
		mockRepo, mockAssessments, service := setupTest()

		_, err := service.ProcessPayout(ctx, "", "A001", payoutDate, decimal.NewFromInt(-50), payout.StatusPending)

		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
		mockAssessments.AssertNotCalled(t, "ApprovedWithoutPayout", mock.Anything)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Explicit ID outside the P series is rejected", func(t *testing.T) {
		mockRepo, mockAssessments, service := setupTest()
		mockAssessments.On("ApprovedWithoutPayout", ctx).Return(eligible, nil).Once()

		_, err := service.ProcessPayout(ctx, "PAY-1", "A001", payoutDate, decimal.NewFromInt(100), payout.StatusPending)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate payout ID surfaces the repository conflict", func(t *testing.T) {
		mockRepo, mockAssessments, service := setupTest()
		mockAssessments.On("ApprovedWithoutPayout", ctx).Return(eligible, nil).Once()
		mockRepo.On("Insert", ctx, mock.Anything).Return(apperrors.ErrAlreadyExists).Once()

		_, err := service.ProcessPayout(ctx, "P001", "A003", payoutDate, decimal.NewFromInt(250), payout.StatusApproved)

		assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	})
}

func TestPayoutService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Completed can be reopened", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		mockRepo.On("UpdateStatus", ctx, "P001", payout.StatusCompleted).Return(nil).Once()
		mockRepo.On("UpdateStatus", ctx, "P001", payout.StatusPending).Return(nil).Once()

		assert.NoError(t, service.UpdateStatus(ctx, "P001", payout.StatusCompleted))
		assert.NoError(t, service.UpdateStatus(ctx, "P001", payout.StatusPending))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown status is rejected", func(t *testing.T) {
		mockRepo, _, service := setupTest()

		err := service.UpdateStatus(ctx, "P001", payout.Status("Settled"))
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPayoutService_NextPayoutID(t *testing.T) {
	ctx := context.Background()

	t.Run("Counts past the pad width", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		mockRepo.On("MaxID", ctx).Return("P999", nil).Once()

		next, err := service.NextPayoutID(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "P1000", next)
	})

	t.Run("Empty table starts the series", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		mockRepo.On("MaxID", ctx).Return("", nil).Once()

		next, err := service.NextPayoutID(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "P001", next)
	})
}

func TestPayoutService_TotalsByStatus(t *testing.T) {
	ctx := context.Background()
	mockRepo, _, service := setupTest()

	totals := []payout.StatusTotal{
		{Status: payout.StatusPending, Count: 2, Total: decimal.NewFromInt(300)},
		{Status: payout.StatusCompleted, Count: 1, Total: decimal.NewFromFloat(500.00)},
	}
	mockRepo.On("TotalsByStatus", ctx).Return(totals, nil).Once()

	got, err := service.TotalsByStatus(ctx)
	assert.NoError(t, err)
	assert.Equal(t, totals, got)
}
