package customer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"insurance-office/internal/pkg/apperrors"
	"insurance-office/internal/pkg/sequence"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, customerID, name, address, phone string) (*Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*Customer, error)
	ListCustomers(ctx context.Context) ([]*Customer, error)
	UpdateCustomer(ctx context.Context, customerID, name, address, phone string) error
	DeleteCustomer(ctx context.Context, customerID string) error
	DropdownOptions(ctx context.Context) ([]Option, error)
	NextCustomerID(ctx context.Context) (string, error)
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}
	return &customerService{
		repo:   repo,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

// CreateCustomer stores a new customer. An empty customerID asks the service
// to generate the next one in the series; the generated value is only durable
// once the insert commits, so a concurrent session holding the same
// suggestion is rejected with apperrors.ErrAlreadyExists and has to re-submit.
func (s *customerService) CreateCustomer(ctx context.Context, customerID, name, address, phone string) (*Customer, error) {
	customerID = strings.TrimSpace(customerID)
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return nil, apperrors.NewValidationError("name", "customer name cannot be empty")
	}
	if address == "" {
		return nil, apperrors.NewValidationError("address", "customer address cannot be empty")
	}
	if phone == "" {
		return nil, apperrors.NewValidationError("phone", "customer phone cannot be empty")
	}

	if customerID == "" {
		next, err := s.NextCustomerID(ctx)
		if err != nil {
			return nil, err
		}
		customerID = next
	} else if !sequence.Customers.Valid(customerID) {
		return nil, apperrors.NewValidationError("customerId",
			fmt.Sprintf("identifier %q does not fit the %s-series format", customerID, sequence.Customers.Prefix))
	}

	cust := &Customer{
		CustomerID: customerID,
		Name:       name,
		Address:    address,
		Phone:      phone,
	}

	if err := s.repo.Insert(ctx, cust); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to insert customer",
			slog.String("customerID", customerID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to create customer %s: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Customer created", slog.String("customerID", customerID))
	return cust, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID string) (*Customer, error) {
	return s.repo.FindByID(ctx, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*Customer, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing customers", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID, name, address, phone string) error {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	phone = strings.TrimSpace(phone)

	if name == "" || address == "" || phone == "" {
		return apperrors.NewValidationError("", "name, address and phone are all required")
	}

	err := s.repo.Update(ctx, &Customer{
		CustomerID: customerID,
		Name:       name,
		Address:    address,
		Phone:      phone,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to update customer",
			slog.String("customerID", customerID), slog.Any("error", err))
		return fmt.Errorf("failed to update customer %s: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Customer updated", slog.String("customerID", customerID))
	return nil
}

// DeleteCustomer removes the customer. The store rejects the delete when a
// contract still references the customer; that surfaces as
// apperrors.ErrConflict, never as a partial deletion.
func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	if err := s.repo.Delete(ctx, customerID); err != nil {
		s.logger.WarnContext(ctx, "Failed to delete customer",
			slog.String("customerID", customerID), slog.Any("error", err))
		return err
	}
	s.logger.InfoContext(ctx, "Customer deleted", slog.String("customerID", customerID))
	return nil
}

func (s *customerService) DropdownOptions(ctx context.Context) ([]Option, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build customer options: %w", err)
	}

	options := make([]Option, 0, len(customers))
	for _, cust := range customers {
		options = append(options, Option{
			ID:    cust.CustomerID,
			Label: fmt.Sprintf("%s: %s", cust.CustomerID, cust.Name),
		})
	}
	return options, nil
}

// NextCustomerID suggests the identifier the next create would use. Advisory
// only; nothing is reserved.
func (s *customerService) NextCustomerID(ctx context.Context) (string, error) {
	maxID, err := s.repo.MaxID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to determine next customer ID: %w", err)
	}
	return sequence.Customers.Next(maxID), nil
}
