package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"insurance-office/internal/domain/payout"
	"insurance-office/internal/domain/report"
	"insurance-office/internal/infrastructure/cache"
	"insurance-office/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

type ReportRepository struct {
	db     DBPool
	cache  cache.Store
	logger *slog.Logger
}

var _ report.ReportRepository = (*ReportRepository)(nil)

func NewReportRepository(db DBPool, store cache.Store, logger *slog.Logger) *ReportRepository {
	if db == nil {
		panic("DBPool cannot be nil for ReportRepository")
	}
	if store == nil {
		store = cache.Nop()
	}
	return &ReportRepository{
		db:     db,
		cache:  store,
		logger: logger.With("component", "ReportRepository"),
	}
}

func (r *ReportRepository) DashboardMetrics(ctx context.Context) (*report.DashboardMetrics, error) {
	const cacheKey = "dashboard_metrics"

	if v, ok := r.cache.Get(cache.ScopeReports, cacheKey); ok {
		return v.(*report.DashboardMetrics), nil
	}

	var m report.DashboardMetrics

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&m.TotalCustomers); err != nil {
		return nil, r.wrapQueryError(ctx, "count customers", err)
	}

	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM insurance_contracts WHERE status = $1`, "Active",
	).Scan(&m.ActiveContracts); err != nil {
		return nil, r.wrapQueryError(ctx, "count active contracts", err)
	}

	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM assessments WHERE result = $1`, "Pending",
	).Scan(&m.PendingClaims); err != nil {
		return nil, r.wrapQueryError(ctx, "count pending claims", err)
	}

	var totalRaw string
	if err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)::text FROM payouts WHERE status IN ($1, $2)`,
		payout.StatusApproved, payout.StatusCompleted,
	).Scan(&totalRaw); err != nil {
		return nil, r.wrapQueryError(ctx, "sum approved payouts", err)
	}
	total, err := decimal.NewFromString(totalRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid payout total %q: %w", apperrors.ErrDatabase, totalRaw, err)
	}
	m.TotalApprovedPayout = total

	r.cache.Put(cache.ScopeReports, cacheKey, &m)
	return &m, nil
}

func (r *ReportRepository) RecentContracts(ctx context.Context, limit int) ([]report.RecentContract, error) {
	query := `
        SELECT ct.contract_id, c.name, t.insurance_name, ct.sign_date, ct.status
        FROM insurance_contracts ct
        JOIN customers c ON c.customer_id = ct.customer_id
        JOIN insurance_types t ON t.insurance_id = ct.insurance_id
        ORDER BY ct.sign_date DESC, ct.contract_id DESC
        LIMIT $1`

	if v, ok := r.cache.Get(cache.ScopeReports, query, limit); ok {
		return v.([]report.RecentContract), nil
	}

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, r.wrapQueryError(ctx, "recent contracts", err)
	}
	defer rows.Close()

	recent := make([]report.RecentContract, 0, limit)
	for rows.Next() {
		var rc report.RecentContract
		if err := rows.Scan(&rc.ContractID, &rc.CustomerName, &rc.InsuranceName, &rc.SignDate, &rc.Status); err != nil {
			return nil, r.wrapQueryError(ctx, "scan recent contract", err)
		}
		recent = append(recent, rc)
	}
	if err = rows.Err(); err != nil {
		return nil, r.wrapQueryError(ctx, "iterate recent contracts", err)
	}

	r.cache.Put(cache.ScopeReports, query, recent, limit)
	return recent, nil
}

func (r *ReportRepository) ClaimsByInsuranceType(ctx context.Context) ([]report.TypeCount, error) {
	query := `
        SELECT t.insurance_name, COUNT(*)
        FROM assessments a
        JOIN insurance_contracts ct ON ct.contract_id = a.contract_id
        JOIN insurance_types t ON t.insurance_id = ct.insurance_id
        GROUP BY t.insurance_name
        ORDER BY COUNT(*) DESC, t.insurance_name ASC`

	return r.queryTypeCounts(ctx, query, "claims by insurance type")
}

func (r *ReportRepository) ClaimStatusDistribution(ctx context.Context) ([]report.StatusCount, error) {
	query := `
        SELECT result, COUNT(*)
        FROM assessments
        GROUP BY result
        ORDER BY result ASC`

	if v, ok := r.cache.Get(cache.ScopeReports, query); ok {
		return v.([]report.StatusCount), nil
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.wrapQueryError(ctx, "claim status distribution", err)
	}
	defer rows.Close()

	counts := make([]report.StatusCount, 0)
	for rows.Next() {
		var sc report.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, r.wrapQueryError(ctx, "scan claim status row", err)
		}
		counts = append(counts, sc)
	}
	if err = rows.Err(); err != nil {
		return nil, r.wrapQueryError(ctx, "iterate claim status rows", err)
	}

	r.cache.Put(cache.ScopeReports, query, counts)
	return counts, nil
}

func (r *ReportRepository) MonthlyClaimTrend(ctx context.Context) ([]report.MonthCount, error) {
	query := `
        SELECT to_char(assessment_date, 'YYYY-MM') AS month, COUNT(*)
        FROM assessments
        GROUP BY month
        ORDER BY month ASC`

	return r.queryMonthCounts(ctx, query, "monthly claim trend")
}

func (r *ReportRepository) ContractsByInsuranceType(ctx context.Context) ([]report.TypeCount, error) {
	query := `
        SELECT t.insurance_name, COUNT(*)
        FROM insurance_contracts ct
        JOIN insurance_types t ON t.insurance_id = ct.insurance_id
        GROUP BY t.insurance_name
        ORDER BY COUNT(*) DESC, t.insurance_name ASC`

	return r.queryTypeCounts(ctx, query, "contracts by insurance type")
}

func (r *ReportRepository) MonthlyContractTrend(ctx context.Context) ([]report.MonthCount, error) {
	query := `
        SELECT to_char(sign_date, 'YYYY-MM') AS month, COUNT(*)
        FROM insurance_contracts
        GROUP BY month
        ORDER BY month ASC`

	return r.queryMonthCounts(ctx, query, "monthly contract trend")
}

func (r *ReportRepository) PayoutsByInsuranceType(ctx context.Context) ([]report.TypeAmount, error) {
	query := `
        SELECT t.insurance_name, COUNT(*), COALESCE(SUM(p.amount), 0)::text
        FROM payouts p
        JOIN assessments a ON a.assessment_id = p.assessment_id
        JOIN insurance_contracts ct ON ct.contract_id = a.contract_id
        JOIN insurance_types t ON t.insurance_id = ct.insurance_id
        GROUP BY t.insurance_name
        ORDER BY SUM(p.amount) DESC, t.insurance_name ASC`

	if v, ok := r.cache.Get(cache.ScopeReports, query); ok {
		return v.([]report.TypeAmount), nil
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.wrapQueryError(ctx, "payouts by insurance type", err)
	}
	defer rows.Close()

	amounts := make([]report.TypeAmount, 0)
	for rows.Next() {
		var (
			ta       report.TypeAmount
			totalRaw string
		)
		if err := rows.Scan(&ta.InsuranceName, &ta.Count, &totalRaw); err != nil {
			return nil, r.wrapQueryError(ctx, "scan payout type row", err)
		}
		ta.Total, err = decimal.NewFromString(totalRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid payout total %q: %w", apperrors.ErrDatabase, totalRaw, err)
		}
		amounts = append(amounts, ta)
	}
	if err = rows.Err(); err != nil {
		return nil, r.wrapQueryError(ctx, "iterate payout type rows", err)
	}

	r.cache.Put(cache.ScopeReports, query, amounts)
	return amounts, nil
}

func (r *ReportRepository) MonthlyPayoutTrend(ctx context.Context) ([]report.MonthAmount, error) {
	query := `
        SELECT to_char(payout_date, 'YYYY-MM') AS month, COALESCE(SUM(amount), 0)::text
        FROM payouts
        GROUP BY month
        ORDER BY month ASC`

	if v, ok := r.cache.Get(cache.ScopeReports, query); ok {
		return v.([]report.MonthAmount), nil
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.wrapQueryError(ctx, "monthly payout trend", err)
	}
	defer rows.Close()

	points := make([]report.MonthAmount, 0)
	for rows.Next() {
		var (
			ma       report.MonthAmount
			totalRaw string
		)
		if err := rows.Scan(&ma.Month, &totalRaw); err != nil {
			return nil, r.wrapQueryError(ctx, "scan payout trend row", err)
		}
		ma.Total, err = decimal.NewFromString(totalRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid payout total %q: %w", apperrors.ErrDatabase, totalRaw, err)
		}
		points = append(points, ma)
	}
	if err = rows.Err(); err != nil {
		return nil, r.wrapQueryError(ctx, "iterate payout trend rows", err)
	}

	r.cache.Put(cache.ScopeReports, query, points)
	return points, nil
}

func (r *ReportRepository) TopCustomersByContracts(ctx context.Context, limit int) ([]report.CustomerCount, error) {
	query := `
        SELECT c.customer_id, c.name, COUNT(*)
        FROM insurance_contracts ct
        JOIN customers c ON c.customer_id = ct.customer_id
        GROUP BY c.customer_id, c.name
        ORDER BY COUNT(*) DESC, c.customer_id ASC
        LIMIT $1`

	if v, ok := r.cache.Get(cache.ScopeReports, query, limit); ok {
		return v.([]report.CustomerCount), nil
	}

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, r.wrapQueryError(ctx, "top customers by contracts", err)
	}
	defer rows.Close()

	ranking := make([]report.CustomerCount, 0, limit)
	for rows.Next() {
		var cc report.CustomerCount
		if err := rows.Scan(&cc.CustomerID, &cc.Name, &cc.Contracts); err != nil {
			return nil, r.wrapQueryError(ctx, "scan customer contract rank", err)
		}
		ranking = append(ranking, cc)
	}
	if err = rows.Err(); err != nil {
		return nil, r.wrapQueryError(ctx, "iterate customer contract ranks", err)
	}

	r.cache.Put(cache.ScopeReports, query, ranking, limit)
	return ranking, nil
}

func (r *ReportRepository) TopCustomersByPayout(ctx context.Context, limit int) ([]report.CustomerAmount, error) {
	query := `
        SELECT c.customer_id, c.name, COALESCE(SUM(p.amount), 0)::text
        FROM payouts p
        JOIN assessments a ON a.assessment_id = p.assessment_id
        JOIN insurance_contracts ct ON ct.contract_id = a.contract_id
        JOIN customers c ON c.customer_id = ct.customer_id
        GROUP BY c.customer_id, c.name
        ORDER BY SUM(p.amount) DESC, c.customer_id ASC
        LIMIT $1`

	if v, ok := r.cache.Get(cache.ScopeReports, query, limit); ok {
		return v.([]report.CustomerAmount), nil
	}

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, r.wrapQueryError(ctx, "top customers by payout", err)
	}
	defer rows.Close()

	ranking := make([]report.CustomerAmount, 0, limit)
	for rows.Next() {
		var (
			ca       report.CustomerAmount
			totalRaw string
		)
		if err := rows.Scan(&ca.CustomerID, &ca.Name, &totalRaw); err != nil {
			return nil, r.wrapQueryError(ctx, "scan customer payout rank", err)
		}
		ca.Total, err = decimal.NewFromString(totalRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid payout total %q: %w", apperrors.ErrDatabase, totalRaw, err)
		}
		ranking = append(ranking, ca)
	}
	if err = rows.Err(); err != nil {
		return nil, r.wrapQueryError(ctx, "iterate customer payout ranks", err)
	}

	r.cache.Put(cache.ScopeReports, query, ranking, limit)
	return ranking, nil
}

func (r *ReportRepository) queryTypeCounts(ctx context.Context, query, operation string) ([]report.TypeCount, error) {
	if v, ok := r.cache.Get(cache.ScopeReports, query); ok {
		return v.([]report.TypeCount), nil
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.wrapQueryError(ctx, operation, err)
	}
	defer rows.Close()

	counts := make([]report.TypeCount, 0)
	for rows.Next() {
		var tc report.TypeCount
		if err := rows.Scan(&tc.InsuranceName, &tc.Count); err != nil {
			return nil, r.wrapQueryError(ctx, operation, err)
		}
		counts = append(counts, tc)
	}
	if err = rows.Err(); err != nil {
		return nil, r.wrapQueryError(ctx, operation, err)
	}

	r.cache.Put(cache.ScopeReports, query, counts)
	return counts, nil
}

func (r *ReportRepository) queryMonthCounts(ctx context.Context, query, operation string) ([]report.MonthCount, error) {
	if v, ok := r.cache.Get(cache.ScopeReports, query); ok {
		return v.([]report.MonthCount), nil
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.wrapQueryError(ctx, operation, err)
	}
	defer rows.Close()

	points := make([]report.MonthCount, 0)
	for rows.Next() {
		var mc report.MonthCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, r.wrapQueryError(ctx, operation, err)
		}
		points = append(points, mc)
	}
	if err = rows.Err(); err != nil {
		return nil, r.wrapQueryError(ctx, operation, err)
	}

	r.cache.Put(cache.ScopeReports, query, points)
	return points, nil
}

func (r *ReportRepository) wrapQueryError(ctx context.Context, operation string, err error) error {
	r.logger.ErrorContext(ctx, "Report query failed", slog.String("operation", operation), slog.Any("error", err))
	return fmt.Errorf("%w: %s: %w", apperrors.ErrDatabase, operation, err)
}
