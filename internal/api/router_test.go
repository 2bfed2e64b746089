package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insurance-office/internal/api"
	"insurance-office/internal/config"
	"insurance-office/internal/domain/assessment"
	"insurance-office/internal/domain/contract"
	"insurance-office/internal/domain/customer"
	"insurance-office/internal/domain/insurancetype"
	"insurance-office/internal/domain/payout"
	"insurance-office/internal/domain/report"
	"insurance-office/internal/event"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stub services answer every call with empty data; the tests below only care
// about which requests make it past the middleware chain.

type stubCustomers struct{}

func (stubCustomers) CreateCustomer(context.Context, string, string, string, string) (*customer.Customer, error) {
	return &customer.Customer{}, nil
}
func (stubCustomers) GetCustomer(context.Context, string) (*customer.Customer, error) {
	return &customer.Customer{}, nil
}
func (stubCustomers) ListCustomers(context.Context) ([]*customer.Customer, error) { return nil, nil }
func (stubCustomers) UpdateCustomer(context.Context, string, string, string, string) error {
	return nil
}
func (stubCustomers) DeleteCustomer(context.Context, string) error            { return nil }
func (stubCustomers) DropdownOptions(context.Context) ([]customer.Option, error) { return nil, nil }
func (stubCustomers) NextCustomerID(context.Context) (string, error)          { return "C001", nil }

type stubTypes struct{}

func (stubTypes) CreateInsuranceType(context.Context, string, string, string) (*insurancetype.InsuranceType, error) {
	return &insurancetype.InsuranceType{}, nil
}
func (stubTypes) GetInsuranceType(context.Context, string) (*insurancetype.InsuranceType, error) {
	return &insurancetype.InsuranceType{}, nil
}
func (stubTypes) ListInsuranceTypes(context.Context) ([]*insurancetype.InsuranceType, error) {
	return nil, nil
}
func (stubTypes) UpdateInsuranceType(context.Context, string, string, string) error { return nil }
func (stubTypes) DeleteInsuranceType(context.Context, string) error                 { return nil }
func (stubTypes) DropdownOptions(context.Context) ([]insurancetype.Option, error)   { return nil, nil }
func (stubTypes) NextInsuranceTypeID(context.Context) (string, error)               { return "T001", nil }

type stubContracts struct{}

func (stubContracts) CreateContract(context.Context, string, string, string, time.Time, *time.Time) (*contract.Contract, error) {
	return &contract.Contract{}, nil
}
func (stubContracts) GetContract(context.Context, string) (*contract.Contract, error) {
	return &contract.Contract{}, nil
}
func (stubContracts) ListContracts(context.Context) ([]*contract.Contract, error) { return nil, nil }
func (stubContracts) ContractsForCustomer(context.Context, string) ([]*contract.Contract, error) {
	return nil, nil
}
func (stubContracts) UpdateContract(context.Context, string, string, string, time.Time, *time.Time, contract.Status) error {
	return nil
}
func (stubContracts) ExpiringWithin(context.Context, int) ([]*contract.Contract, error) {
	return nil, nil
}
func (stubContracts) ExtendContract(context.Context, string, int) (*contract.Contract, error) {
	return &contract.Contract{}, nil
}
func (stubContracts) DropdownOptions(context.Context) ([]contract.Option, error) { return nil, nil }
func (stubContracts) NextContractID(context.Context) (string, error)             { return "CT001", nil }

type stubAssessments struct{}

func (stubAssessments) FileClaim(context.Context, string, string, time.Time, decimal.Decimal, assessment.Result) (*assessment.Assessment, error) {
	return &assessment.Assessment{}, nil
}
func (stubAssessments) GetAssessment(context.Context, string) (*assessment.Assessment, error) {
	return &assessment.Assessment{}, nil
}
func (stubAssessments) ListAssessments(context.Context) ([]*assessment.Assessment, error) {
	return nil, nil
}
func (stubAssessments) PendingAssessments(context.Context) ([]*assessment.Assessment, error) {
	return nil, nil
}
func (stubAssessments) ClaimsForContract(context.Context, string) ([]*assessment.Assessment, error) {
	return nil, nil
}
func (stubAssessments) ApprovedWithoutPayout(context.Context) ([]*assessment.ApprovedClaim, error) {
	return nil, nil
}
func (stubAssessments) UpdateResult(context.Context, string, assessment.Result) error { return nil }
func (stubAssessments) NextAssessmentID(context.Context) (string, error)              { return "A001", nil }

type stubPayouts struct{}

func (stubPayouts) ProcessPayout(context.Context, string, string, time.Time, decimal.Decimal, payout.Status) (*payout.Payout, error) {
	return &payout.Payout{}, nil
}
func (stubPayouts) GetPayout(context.Context, string) (*payout.Payout, error) {
	return &payout.Payout{}, nil
}
func (stubPayouts) ListPayouts(context.Context) ([]*payout.Payout, error)    { return nil, nil }
func (stubPayouts) PendingPayouts(context.Context) ([]*payout.Payout, error) { return nil, nil }
func (stubPayouts) PayoutsForContract(context.Context, string) ([]*payout.Payout, error) {
	return nil, nil
}
func (stubPayouts) UpdateStatus(context.Context, string, payout.Status) error { return nil }
func (stubPayouts) TotalsByStatus(context.Context) ([]payout.StatusTotal, error) {
	return nil, nil
}
func (stubPayouts) NextPayoutID(context.Context) (string, error) { return "P001", nil }

type stubReports struct{}

func (stubReports) Dashboard(context.Context) (*report.Dashboard, error) {
	return &report.Dashboard{}, nil
}
func (stubReports) ClaimsReport(context.Context) (*report.ClaimsReport, error) {
	return &report.ClaimsReport{}, nil
}
func (stubReports) ContractsReport(context.Context) (*report.ContractsReport, error) {
	return &report.ContractsReport{}, nil
}
func (stubReports) PayoutsReport(context.Context) (*report.PayoutsReport, error) {
	return &report.PayoutsReport{}, nil
}
func (stubReports) TopCustomers(context.Context, int) (*report.TopCustomers, error) {
	return &report.TopCustomers{}, nil
}

type stubPublisher struct{}

func (stubPublisher) PublishCustomerCreated(context.Context, event.CustomerCreatedEvent) error {
	return nil
}
func (stubPublisher) PublishPayoutProcessed(context.Context, event.PayoutProcessedEvent) error {
	return nil
}
func (stubPublisher) PublishContractExpiring(context.Context, event.ContractExpiringEvent) error {
	return nil
}

const routerTestSecret = "router-test-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Auth.Enabled = true
	cfg.Server.Auth.JWTSecret = routerTestSecret
	cfg.Metrics.Path = "/metrics"

	services := api.Services{
		Customers:      stubCustomers{},
		InsuranceTypes: stubTypes{},
		Contracts:      stubContracts{},
		Assessments:    stubAssessments{},
		Payouts:        stubPayouts{},
		Reports:        stubReports{},
		Publisher:      stubPublisher{},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return api.SetupRouter(services, cfg, logger)
}

func signRoleToken(t *testing.T, username, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(routerTestSecret))
	require.NoError(t, err)
	return signed
}

func TestRouterRoleBoundaries(t *testing.T) {
	router := newTestRouter(t)

	agent := signRoleToken(t, "agent1", "Insurance Agent")
	assessor := signRoleToken(t, "assessor1", "Claim Assessor")
	admin := signRoleToken(t, "admin", "Admin")

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{"agent cannot list assessments", http.MethodGet, "/assessments", agent, http.StatusForbidden},
		{"agent cannot read one assessment", http.MethodGet, "/assessments/A001", agent, http.StatusForbidden},
		{"agent cannot list payouts", http.MethodGet, "/payouts", agent, http.StatusForbidden},
		{"agent cannot read payout totals", http.MethodGet, "/payouts/totals", agent, http.StatusForbidden},
		{"agent cannot read a contract's claims", http.MethodGet, "/contracts/CT001/assessments", agent, http.StatusForbidden},
		{"agent cannot read a contract's payouts", http.MethodGet, "/contracts/CT001/payouts", agent, http.StatusForbidden},
		{"assessor can list assessments", http.MethodGet, "/assessments", assessor, http.StatusOK},
		{"assessor can read payout totals", http.MethodGet, "/payouts/totals", assessor, http.StatusOK},
		{"admin can list payouts", http.MethodGet, "/payouts", admin, http.StatusOK},
		{"agent can list customers", http.MethodGet, "/customers", agent, http.StatusOK},
		{"agent can read a contract", http.MethodGet, "/contracts/CT001", agent, http.StatusOK},
		{"assessor cannot create customers", http.MethodPost, "/customers", assessor, http.StatusForbidden},
		{"assessor cannot extend contracts", http.MethodPost, "/contracts/CT001/extend", assessor, http.StatusForbidden},
		{"no token is rejected outright", http.MethodGet, "/assessments", "", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
