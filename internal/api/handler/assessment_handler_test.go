package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insurance-office/internal/api/handler/dto"
	"insurance-office/internal/domain/assessment"
	"insurance-office/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAssessmentService struct {
	mock.Mock
}

func (m *MockAssessmentService) FileClaim(ctx context.Context, assessmentID, contractID string, assessmentDate time.Time, claimAmount decimal.Decimal, result assessment.Result) (*assessment.Assessment, error) {
	args := m.Called(ctx, assessmentID, contractID, assessmentDate, claimAmount, result)
	if filed, ok := args.Get(0).(*assessment.Assessment); ok {
		return filed, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssessmentService) GetAssessment(ctx context.Context, assessmentID string) (*assessment.Assessment, error) {
	args := m.Called(ctx, assessmentID)
	if a, ok := args.Get(0).(*assessment.Assessment); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssessmentService) ListAssessments(ctx context.Context) ([]*assessment.Assessment, error) {
	args := m.Called(ctx)
	if assessments, ok := args.Get(0).([]*assessment.Assessment); ok {
		return assessments, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssessmentService) PendingAssessments(ctx context.Context) ([]*assessment.Assessment, error) {
	args := m.Called(ctx)
	if assessments, ok := args.Get(0).([]*assessment.Assessment); ok {
		return assessments, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssessmentService) ClaimsForContract(ctx context.Context, contractID string) ([]*assessment.Assessment, error) {
	args := m.Called(ctx, contractID)
	if assessments, ok := args.Get(0).([]*assessment.Assessment); ok {
		return assessments, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssessmentService) ApprovedWithoutPayout(ctx context.Context) ([]*assessment.ApprovedClaim, error) {
	args := m.Called(ctx)
	if claims, ok := args.Get(0).([]*assessment.ApprovedClaim); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssessmentService) UpdateResult(ctx context.Context, assessmentID string, result assessment.Result) error {
	args := m.Called(ctx, assessmentID, result)
	return args.Error(0)
}

func (m *MockAssessmentService) NextAssessmentID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func TestAssessmentHandlerFileClaim(t *testing.T) {
	t.Run("successfully files a claim", func(t *testing.T) {
		mockService := new(MockAssessmentService)
		h := NewAssessmentHandler(mockService, testLogger())

		filedDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		filed := &assessment.Assessment{
			AssessmentID:   "A001",
			ContractID:     "CT001",
			AssessmentDate: filedDate,
			ClaimAmount:    decimal.RequireFromString("500.75"),
			Result:         assessment.ResultPending,
		}
		mockService.On("FileClaim", mock.Anything, "", "CT001", filedDate, decimal.RequireFromString("500.75"), assessment.Result("")).
			Return(filed, nil)

		body := bytes.NewBufferString(`{"contractId":"CT001","assessmentDate":"2025-03-10","claimAmount":"500.75"}`)
		req := httptest.NewRequest(http.MethodPost, "/assessments", body)
		rec := httptest.NewRecorder()

		h.FileClaim(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.AssessmentResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "A001", resp.AssessmentID)
		assert.Equal(t, "500.75", resp.ClaimAmount)
		assert.Equal(t, "Pending", resp.Result)
		mockService.AssertExpectations(t)
	})

	t.Run("rejects a malformed claim amount", func(t *testing.T) {
		mockService := new(MockAssessmentService)
		h := NewAssessmentHandler(mockService, testLogger())

		body := bytes.NewBufferString(`{"contractId":"CT001","assessmentDate":"2025-03-10","claimAmount":"lots"}`)
		req := httptest.NewRequest(http.MethodPost, "/assessments", body)
		rec := httptest.NewRecorder()

		h.FileClaim(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "FileClaim", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("returns 404 when the contract does not exist", func(t *testing.T) {
		mockService := new(MockAssessmentService)
		h := NewAssessmentHandler(mockService, testLogger())

		mockService.On("FileClaim", mock.Anything, "", "CT404", mock.Anything, mock.Anything, assessment.Result("")).
			Return((*assessment.Assessment)(nil), apperrors.ErrNotFound)

		body := bytes.NewBufferString(`{"contractId":"CT404","assessmentDate":"2025-03-10","claimAmount":"100"}`)
		req := httptest.NewRequest(http.MethodPost, "/assessments", body)
		rec := httptest.NewRecorder()

		h.FileClaim(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAssessmentHandlerApprovedWithoutPayout(t *testing.T) {
	mockService := new(MockAssessmentService)
	h := NewAssessmentHandler(mockService, testLogger())

	claims := []*assessment.ApprovedClaim{
		{
			AssessmentID:   "A002",
			ContractID:     "CT001",
			CustomerName:   "Alice",
			AssessmentDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			ClaimAmount:    decimal.RequireFromString("1200"),
		},
	}
	mockService.On("ApprovedWithoutPayout", mock.Anything).Return(claims, nil)

	req := httptest.NewRequest(http.MethodGet, "/assessments/approved-without-payout", nil)
	rec := httptest.NewRecorder()

	h.ApprovedWithoutPayout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []dto.ApprovedClaimResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "A002", resp[0].AssessmentID)
	assert.Equal(t, "1200", resp[0].ClaimAmount)
}

func TestAssessmentHandlerUpdateResult(t *testing.T) {
	t.Run("successfully updates the result", func(t *testing.T) {
		mockService := new(MockAssessmentService)
		h := NewAssessmentHandler(mockService, testLogger())

		mockService.On("UpdateResult", mock.Anything, "A001", assessment.ResultApproved).Return(nil)

		body := bytes.NewBufferString(`{"result":"Approved"}`)
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/assessments/A001/result", body), "assessmentID", "A001")
		rec := httptest.NewRecorder()

		h.UpdateResult(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("maps an unknown result to bad request", func(t *testing.T) {
		mockService := new(MockAssessmentService)
		h := NewAssessmentHandler(mockService, testLogger())

		mockService.On("UpdateResult", mock.Anything, "A001", assessment.Result("Escalated")).
			Return(apperrors.NewValidationError("result", `unknown assessment result "Escalated"`))

		body := bytes.NewBufferString(`{"result":"Escalated"}`)
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/assessments/A001/result", body), "assessmentID", "A001")
		rec := httptest.NewRecorder()

		h.UpdateResult(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp dto.ErrorResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "result", resp.Error.Field)
	})
}
