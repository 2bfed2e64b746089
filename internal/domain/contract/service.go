package contract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"insurance-office/internal/domain/customer"
	"insurance-office/internal/domain/insurancetype"
	"insurance-office/internal/pkg/apperrors"
	"insurance-office/internal/pkg/sequence"
)

// DefaultExpiringWindowDays is the lookahead the extension screen uses when
// no window is given ("expiring in the next 3 months").
const DefaultExpiringWindowDays = 90

type ContractService interface {
	CreateContract(ctx context.Context, contractID, customerID, insuranceTypeID string, signDate time.Time, expirationDate *time.Time) (*Contract, error)
	GetContract(ctx context.Context, contractID string) (*Contract, error)
	ListContracts(ctx context.Context) ([]*Contract, error)
	ContractsForCustomer(ctx context.Context, customerID string) ([]*Contract, error)
	UpdateContract(ctx context.Context, contractID, customerID, insuranceTypeID string, signDate time.Time, expirationDate *time.Time, status Status) error
	ExpiringWithin(ctx context.Context, days int) ([]*Contract, error)
	ExtendContract(ctx context.Context, contractID string, days int) (*Contract, error)
	DropdownOptions(ctx context.Context) ([]Option, error)
	NextContractID(ctx context.Context) (string, error)
}

var _ ContractService = (*contractService)(nil)

type contractService struct {
	repo      ContractRepository
	customers customer.CustomerService
	types     insurancetype.InsuranceTypeService
	logger    *slog.Logger
	now       func() time.Time
}

func NewContractService(repo ContractRepository, customers customer.CustomerService, types insurancetype.InsuranceTypeService, logger *slog.Logger) ContractService {
	if repo == nil {
		panic("contract repository cannot be nil")
	}
	if customers == nil || types == nil {
		panic("contract service dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return &contractService{
		repo:      repo,
		customers: customers,
		types:     types,
		logger:    logger.With(slog.String("component", "contractService")),
		now:       time.Now,
	}
}

// CreateContract stores a new contract referencing an existing customer and
// insurance type. Both references are looked up first so a dangling selection
// reads as "not found" instead of a bare foreign key violation; the store's
// constraints stay the final authority.
func (s *contractService) CreateContract(ctx context.Context, contractID, customerID, insuranceTypeID string, signDate time.Time, expirationDate *time.Time) (*Contract, error) {
	contractID = strings.TrimSpace(contractID)
	customerID = strings.TrimSpace(customerID)
	insuranceTypeID = strings.TrimSpace(insuranceTypeID)

	if customerID == "" {
		return nil, apperrors.NewValidationError("customerId", "a customer must be selected")
	}
	if insuranceTypeID == "" {
		return nil, apperrors.NewValidationError("insuranceTypeId", "an insurance type must be selected")
	}
	if signDate.IsZero() {
		return nil, apperrors.NewValidationError("signDate", "sign date is required")
	}

	if _, err := s.customers.GetCustomer(ctx, customerID); err != nil {
		return nil, fmt.Errorf("customer %s: %w", customerID, err)
	}
	if _, err := s.types.GetInsuranceType(ctx, insuranceTypeID); err != nil {
		return nil, fmt.Errorf("insurance type %s: %w", insuranceTypeID, err)
	}

	if contractID == "" {
		next, err := s.NextContractID(ctx)
		if err != nil {
			return nil, err
		}
		contractID = next
	} else if !sequence.Contracts.Valid(contractID) {
		return nil, apperrors.NewValidationError("contractId",
			fmt.Sprintf("identifier %q does not fit the %s-series format", contractID, sequence.Contracts.Prefix))
	}

	c := &Contract{
		ContractID:      contractID,
		CustomerID:      customerID,
		InsuranceTypeID: insuranceTypeID,
		SignDate:        signDate,
		ExpirationDate:  expirationDate,
		Status:          StatusActive,
	}

	if err := s.repo.Insert(ctx, c); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to insert contract",
			slog.String("contractID", contractID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to create contract %s: %w", contractID, err)
	}

	s.logger.InfoContext(ctx, "Contract created",
		slog.String("contractID", contractID),
		slog.String("customerID", customerID),
		slog.String("insuranceTypeID", insuranceTypeID))
	return c, nil
}

func (s *contractService) GetContract(ctx context.Context, contractID string) (*Contract, error) {
	return s.repo.FindByID(ctx, contractID)
}

func (s *contractService) ListContracts(ctx context.Context) ([]*Contract, error) {
	contracts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return contracts, nil
}

func (s *contractService) ContractsForCustomer(ctx context.Context, customerID string) ([]*Contract, error) {
	contracts, err := s.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts for customer %s: %w", customerID, err)
	}
	return contracts, nil
}

func (s *contractService) UpdateContract(ctx context.Context, contractID, customerID, insuranceTypeID string, signDate time.Time, expirationDate *time.Time, status Status) error {
	if customerID == "" || insuranceTypeID == "" || signDate.IsZero() {
		return apperrors.NewValidationError("", "customer, insurance type and sign date are all required")
	}
	// Any valid status may replace any other; the workflow imposes no
	// transition guard.
	if !ValidStatus(status) {
		return apperrors.NewValidationError("status", fmt.Sprintf("unknown contract status %q", status))
	}

	err := s.repo.Update(ctx, &Contract{
		ContractID:      contractID,
		CustomerID:      customerID,
		InsuranceTypeID: insuranceTypeID,
		SignDate:        signDate,
		ExpirationDate:  expirationDate,
		Status:          status,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to update contract",
			slog.String("contractID", contractID), slog.Any("error", err))
		return fmt.Errorf("failed to update contract %s: %w", contractID, err)
	}

	s.logger.InfoContext(ctx, "Contract updated", slog.String("contractID", contractID))
	return nil
}

func (s *contractService) ExpiringWithin(ctx context.Context, days int) ([]*Contract, error) {
	if days <= 0 {
		days = DefaultExpiringWindowDays
	}
	contracts, err := s.repo.FindExpiringWithin(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring contracts: %w", err)
	}
	return contracts, nil
}

// ExtendContract pushes the expiration date out by the given number of days
// and forces the status back to Active. An already-expired contract is
// extended from today; anything else is extended from its current expiration
// date. A contract with no expiration date starts its term today.
func (s *contractService) ExtendContract(ctx context.Context, contractID string, days int) (*Contract, error) {
	if days <= 0 {
		return nil, apperrors.NewValidationError("days", "extension period must be positive")
	}

	c, err := s.repo.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if c.ExpirationDate == nil {
		return nil, apperrors.NewValidationError("expirationDate", "contract has no expiration date to extend")
	}

	today := s.now().Truncate(24 * time.Hour)
	base := *c.ExpirationDate
	if c.Status == StatusExpired || base.Before(today) {
		base = today
	}
	newExpiration := base.AddDate(0, 0, days)

	if err := s.repo.Extend(ctx, contractID, newExpiration); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to extend contract",
			slog.String("contractID", contractID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to extend contract %s: %w", contractID, err)
	}

	c.ExpirationDate = &newExpiration
	c.Status = StatusActive

	s.logger.InfoContext(ctx, "Contract extended",
		slog.String("contractID", contractID),
		slog.Int("days", days),
		slog.Time("newExpiration", newExpiration))
	return c, nil
}

func (s *contractService) DropdownOptions(ctx context.Context) ([]Option, error) {
	contracts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build contract options: %w", err)
	}

	options := make([]Option, 0, len(contracts))
	for _, c := range contracts {
		options = append(options, Option{
			ID:    c.ContractID,
			Label: fmt.Sprintf("%s: %s - %s", c.ContractID, c.CustomerName, c.InsuranceName),
		})
	}
	return options, nil
}

func (s *contractService) NextContractID(ctx context.Context) (string, error) {
	maxID, err := s.repo.MaxID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to determine next contract ID: %w", err)
	}
	return sequence.Contracts.Next(maxID), nil
}
