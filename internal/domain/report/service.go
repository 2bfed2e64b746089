package report

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	// DefaultRecentContracts is how many contracts the dashboard panel shows.
	DefaultRecentContracts = 5
	// DefaultTopCustomers caps both customer rankings.
	DefaultTopCustomers = 10
)

// ReportService exposes the dashboard and report aggregates. Limits fall back
// to the defaults above when not positive.
type ReportService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	ClaimsReport(ctx context.Context) (*ClaimsReport, error)
	ContractsReport(ctx context.Context) (*ContractsReport, error)
	PayoutsReport(ctx context.Context) (*PayoutsReport, error)
	TopCustomers(ctx context.Context, limit int) (*TopCustomers, error)
}

// Dashboard bundles the landing-page metrics with the recent-contracts panel.
type Dashboard struct {
	Metrics         DashboardMetrics
	RecentContracts []RecentContract
}

// ClaimsReport groups the claim aggregates served under /reports/claims.
type ClaimsReport struct {
	ByInsuranceType    []TypeCount
	StatusDistribution []StatusCount
	MonthlyTrend       []MonthCount
}

// ContractsReport groups the contract aggregates served under /reports/contracts.
type ContractsReport struct {
	ByInsuranceType []TypeCount
	MonthlyTrend    []MonthCount
}

// PayoutsReport groups the payout aggregates served under /reports/payouts.
type PayoutsReport struct {
	ByInsuranceType []TypeAmount
	MonthlyTrend    []MonthAmount
}

// TopCustomers holds both customer rankings side by side.
type TopCustomers struct {
	ByContracts []CustomerCount
	ByPayout    []CustomerAmount
}

type reportService struct {
	repo   ReportRepository
	logger *slog.Logger
}

func NewReportService(repo ReportRepository, logger *slog.Logger) ReportService {
	if repo == nil {
		panic("reportService: repository is nil")
	}
	if logger == nil {
		panic("reportService: logger is nil")
	}
	return &reportService{
		repo:   repo,
		logger: logger.With(slog.String("component", "ReportService")),
	}
}

var _ ReportService = (*reportService)(nil)

func (s *reportService) Dashboard(ctx context.Context) (*Dashboard, error) {
	metrics, err := s.repo.DashboardMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard metrics: %w", err)
	}
	recent, err := s.repo.RecentContracts(ctx, DefaultRecentContracts)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent contracts: %w", err)
	}
	return &Dashboard{Metrics: *metrics, RecentContracts: recent}, nil
}

func (s *reportService) ClaimsReport(ctx context.Context) (*ClaimsReport, error) {
	byType, err := s.repo.ClaimsByInsuranceType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load claims by insurance type: %w", err)
	}
	statuses, err := s.repo.ClaimStatusDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load claim status distribution: %w", err)
	}
	trend, err := s.repo.MonthlyClaimTrend(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly claim trend: %w", err)
	}
	return &ClaimsReport{ByInsuranceType: byType, StatusDistribution: statuses, MonthlyTrend: trend}, nil
}

func (s *reportService) ContractsReport(ctx context.Context) (*ContractsReport, error) {
	byType, err := s.repo.ContractsByInsuranceType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load contracts by insurance type: %w", err)
	}
	trend, err := s.repo.MonthlyContractTrend(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly contract trend: %w", err)
	}
	return &ContractsReport{ByInsuranceType: byType, MonthlyTrend: trend}, nil
}

func (s *reportService) PayoutsReport(ctx context.Context) (*PayoutsReport, error) {
	byType, err := s.repo.PayoutsByInsuranceType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payouts by insurance type: %w", err)
	}
	trend, err := s.repo.MonthlyPayoutTrend(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly payout trend: %w", err)
	}
	return &PayoutsReport{ByInsuranceType: byType, MonthlyTrend: trend}, nil
}

func (s *reportService) TopCustomers(ctx context.Context, limit int) (*TopCustomers, error) {
	if limit <= 0 {
		limit = DefaultTopCustomers
	}
	byContracts, err := s.repo.TopCustomersByContracts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank customers by contracts: %w", err)
	}
	byPayout, err := s.repo.TopCustomersByPayout(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank customers by payout: %w", err)
	}
	return &TopCustomers{ByContracts: byContracts, ByPayout: byPayout}, nil
}
