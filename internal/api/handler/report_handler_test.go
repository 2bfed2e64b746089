package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insurance-office/internal/api/handler/dto"
	"insurance-office/internal/domain/report"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Dashboard(ctx context.Context) (*report.Dashboard, error) {
	args := m.Called(ctx)
	if d, ok := args.Get(0).(*report.Dashboard); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReportService) ClaimsReport(ctx context.Context) (*report.ClaimsReport, error) {
	args := m.Called(ctx)
	if r, ok := args.Get(0).(*report.ClaimsReport); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReportService) ContractsReport(ctx context.Context) (*report.ContractsReport, error) {
	args := m.Called(ctx)
	if r, ok := args.Get(0).(*report.ContractsReport); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReportService) PayoutsReport(ctx context.Context) (*report.PayoutsReport, error) {
	args := m.Called(ctx)
	if r, ok := args.Get(0).(*report.PayoutsReport); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReportService) TopCustomers(ctx context.Context, limit int) (*report.TopCustomers, error) {
	args := m.Called(ctx, limit)
	if tc, ok := args.Get(0).(*report.TopCustomers); ok {
		return tc, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReportHandlerDashboard(t *testing.T) {
	t.Run("serves the headline figures", func(t *testing.T) {
		mockService := new(MockReportService)
		h := NewReportHandler(mockService, testLogger())

		mockService.On("Dashboard", mock.Anything).Return(&report.Dashboard{
			Metrics: report.DashboardMetrics{
				TotalCustomers:      12,
				ActiveContracts:     8,
				PendingClaims:       3,
				TotalApprovedPayout: decimal.RequireFromString("4500.25"),
			},
			RecentContracts: []report.RecentContract{
				{ContractID: "CT008", CustomerName: "Alice", InsuranceName: "Health", SignDate: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), Status: "Active"},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rec := httptest.NewRecorder()

		h.Dashboard(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.DashboardResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(12), resp.TotalCustomers)
		assert.Equal(t, "4500.25", resp.TotalApprovedPayout)
		assert.Len(t, resp.RecentContracts, 1)
		assert.Equal(t, "2025-05-02", resp.RecentContracts[0].SignDate)
	})

	t.Run("maps a repository failure to 500", func(t *testing.T) {
		mockService := new(MockReportService)
		h := NewReportHandler(mockService, testLogger())

		mockService.On("Dashboard", mock.Anything).Return((*report.Dashboard)(nil), errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rec := httptest.NewRecorder()

		h.Dashboard(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestReportHandlerTopCustomers(t *testing.T) {
	t.Run("passes an explicit limit through", func(t *testing.T) {
		mockService := new(MockReportService)
		h := NewReportHandler(mockService, testLogger())

		mockService.On("TopCustomers", mock.Anything, 5).Return(&report.TopCustomers{
			ByContracts: []report.CustomerCount{{CustomerID: "C001", Name: "Alice", Contracts: 4}},
			ByPayout:    []report.CustomerAmount{{CustomerID: "C001", Name: "Alice", Total: decimal.RequireFromString("900")}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/reports/top-customers?limit=5", nil)
		rec := httptest.NewRecorder()

		h.TopCustomers(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.TopCustomersResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp.ByContracts, 1)
		assert.Equal(t, "900", resp.ByPayout[0].Total)
		mockService.AssertExpectations(t)
	})

	t.Run("rejects a non-numeric limit", func(t *testing.T) {
		mockService := new(MockReportService)
		h := NewReportHandler(mockService, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/reports/top-customers?limit=many", nil)
		rec := httptest.NewRecorder()

		h.TopCustomers(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "TopCustomers", mock.Anything, mock.Anything)
	})
}
