package report

import "context"

// ReportRepository defines the aggregate queries behind the reporting screens.
type ReportRepository interface {
	DashboardMetrics(ctx context.Context) (*DashboardMetrics, error)
	RecentContracts(ctx context.Context, limit int) ([]RecentContract, error)
	ClaimsByInsuranceType(ctx context.Context) ([]TypeCount, error)
	ClaimStatusDistribution(ctx context.Context) ([]StatusCount, error)
	MonthlyClaimTrend(ctx context.Context) ([]MonthCount, error)
	ContractsByInsuranceType(ctx context.Context) ([]TypeCount, error)
	MonthlyContractTrend(ctx context.Context) ([]MonthCount, error)
	PayoutsByInsuranceType(ctx context.Context) ([]TypeAmount, error)
	MonthlyPayoutTrend(ctx context.Context) ([]MonthAmount, error)
	TopCustomersByContracts(ctx context.Context, limit int) ([]CustomerCount, error)
	TopCustomersByPayout(ctx context.Context, limit int) ([]CustomerAmount, error)
}
