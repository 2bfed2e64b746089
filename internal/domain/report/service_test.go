package report_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"insurance-office/internal/domain/report"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTest() (*report.MockReportRepository, report.ReportService) {
	mockRepo := new(report.MockReportRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return mockRepo, report.NewReportService(mockRepo, logger)
}

func TestReportService_Dashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Success bundles metrics with the recent panel", func(t *testing.T) {
		mockRepo, service := setupTest()

		metrics := &report.DashboardMetrics{
			TotalCustomers:      12,
			ActiveContracts:     8,
			PendingClaims:       3,
			TotalApprovedPayout: decimal.NewFromFloat(1500.00),
		}
		recent := []report.RecentContract{{ContractID: "CT008", CustomerName: "Alice"}}

		mockRepo.On("DashboardMetrics", ctx).Return(metrics, nil).Once()
		mockRepo.On("RecentContracts", ctx, report.DefaultRecentContracts).Return(recent, nil).Once()

		dash, err := service.Dashboard(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(12), dash.Metrics.TotalCustomers)
		assert.True(t, dash.Metrics.TotalApprovedPayout.Equal(decimal.NewFromFloat(1500.00)))
		assert.Len(t, dash.RecentContracts, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Metrics failure short-circuits", func(t *testing.T) {
		mockRepo, service := setupTest()
		mockRepo.On("DashboardMetrics", ctx).Return(nil, errors.New("connection reset")).Once()

		_, err := service.Dashboard(ctx)

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "RecentContracts", mock.Anything, mock.Anything)
	})
}

func TestReportService_ClaimsReport(t *testing.T) {
	ctx := context.Background()
	mockRepo, service := setupTest()

	mockRepo.On("ClaimsByInsuranceType", ctx).
		Return([]report.TypeCount{{InsuranceName: "Car Insurance", Count: 4}}, nil).Once()
	mockRepo.On("ClaimStatusDistribution", ctx).
		Return([]report.StatusCount{{Status: "Pending", Count: 3}, {Status: "Approved", Count: 1}}, nil).Once()
	mockRepo.On("MonthlyClaimTrend", ctx).
		Return([]report.MonthCount{{Month: "2025-06", Count: 2}}, nil).Once()

	got, err := service.ClaimsReport(ctx)

	assert.NoError(t, err)
	assert.Len(t, got.ByInsuranceType, 1)
	assert.Len(t, got.StatusDistribution, 2)
	assert.Equal(t, "2025-06", got.MonthlyTrend[0].Month)
	mockRepo.AssertExpectations(t)
}

func TestReportService_TopCustomers(t *testing.T) {
	ctx := context.Background()

	t.Run("Non-positive limit falls back to the default", func(t *testing.T) {
		mockRepo, service := setupTest()
		mockRepo.On("TopCustomersByContracts", ctx, report.DefaultTopCustomers).
			Return([]report.CustomerCount{}, nil).Once()
		mockRepo.On("TopCustomersByPayout", ctx, report.DefaultTopCustomers).
			Return([]report.CustomerAmount{}, nil).Once()

		_, err := service.TopCustomers(ctx, 0)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Explicit limit is passed through", func(t *testing.T) {
		mockRepo, service := setupTest()
		mockRepo.On("TopCustomersByContracts", ctx, 3).
			Return([]report.CustomerCount{{CustomerID: "C001", Name: "Alice", Contracts: 5}}, nil).Once()
		mockRepo.On("TopCustomersByPayout", ctx, 3).
			Return([]report.CustomerAmount{{CustomerID: "C001", Name: "Alice", Total: decimal.NewFromInt(900)}}, nil).Once()

		got, err := service.TopCustomers(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, "C001", got.ByContracts[0].CustomerID)
		assert.True(t, got.ByPayout[0].Total.Equal(decimal.NewFromInt(900)))
	})
}
