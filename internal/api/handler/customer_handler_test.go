package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"insurance-office/internal/api/handler/dto"
	"insurance-office/internal/domain/customer"
	"insurance-office/internal/event"
	"insurance-office/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, customerID, name, address, phone string) (*customer.Customer, error) {
	args := m.Called(ctx, customerID, name, address, phone)
	if created, ok := args.Get(0).(*customer.Customer); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, customerID string) (*customer.Customer, error) {
	args := m.Called(ctx, customerID)
	if cust, ok := args.Get(0).(*customer.Customer); ok {
		return cust, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	if customers, ok := args.Get(0).([]*customer.Customer); ok {
		return customers, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerService) UpdateCustomer(ctx context.Context, customerID, name, address, phone string) error {
	args := m.Called(ctx, customerID, name, address, phone)
	return args.Error(0)
}

func (m *MockCustomerService) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockCustomerService) DropdownOptions(ctx context.Context) ([]customer.Option, error) {
	args := m.Called(ctx)
	if options, ok := args.Get(0).([]customer.Option); ok {
		return options, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerService) NextCustomerID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockEventPublisher is shared by the customer and payout handler tests.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishCustomerCreated(ctx context.Context, e event.CustomerCreatedEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishPayoutProcessed(ctx context.Context, e event.PayoutProcessedEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishContractExpiring(ctx context.Context, e event.ContractExpiringEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{Keys: []string{key}, Values: []string{value}},
	}))
}

func TestCustomerHandlerCreateCustomer(t *testing.T) {
	t.Run("successfully creates customer and publishes event", func(t *testing.T) {
		mockService := new(MockCustomerService)
		mockPublisher := new(MockEventPublisher)
		h := NewCustomerHandler(mockService, mockPublisher, testLogger())

		created := &customer.Customer{CustomerID: "C001", Name: "Alice Johnson", Address: "12 Elm St", Phone: "555-0100"}
		mockService.On("CreateCustomer", mock.Anything, "", "Alice Johnson", "12 Elm St", "555-0100").Return(created, nil)
		mockPublisher.On("PublishCustomerCreated", mock.Anything, mock.MatchedBy(func(e event.CustomerCreatedEvent) bool {
			return e.CustomerID == "C001" && e.Name == "Alice Johnson"
		})).Return(nil)

		body := bytes.NewBufferString(`{"name":"Alice Johnson","address":"12 Elm St","phone":"555-0100"}`)
		req := httptest.NewRequest(http.MethodPost, "/customers", body)
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.CustomerResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "C001", resp.CustomerID)
		mockService.AssertExpectations(t)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("rejects body without a name", func(t *testing.T) {
		mockService := new(MockCustomerService)
		mockPublisher := new(MockEventPublisher)
		h := NewCustomerHandler(mockService, mockPublisher, testLogger())

		body := bytes.NewBufferString(`{"address":"12 Elm St"}`)
		req := httptest.NewRequest(http.MethodPost, "/customers", body)
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("still responds created when publishing fails", func(t *testing.T) {
		mockService := new(MockCustomerService)
		mockPublisher := new(MockEventPublisher)
		h := NewCustomerHandler(mockService, mockPublisher, testLogger())

		created := &customer.Customer{CustomerID: "C002", Name: "Bob"}
		mockService.On("CreateCustomer", mock.Anything, "C002", "Bob", "", "").Return(created, nil)
		mockPublisher.On("PublishCustomerCreated", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		body := bytes.NewBufferString(`{"customerId":"C002","name":"Bob"}`)
		req := httptest.NewRequest(http.MethodPost, "/customers", body)
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("maps a taken ID to conflict", func(t *testing.T) {
		mockService := new(MockCustomerService)
		mockPublisher := new(MockEventPublisher)
		h := NewCustomerHandler(mockService, mockPublisher, testLogger())

		mockService.On("CreateCustomer", mock.Anything, "C001", "Alice", "", "").
			Return((*customer.Customer)(nil), apperrors.ErrAlreadyExists)

		body := bytes.NewBufferString(`{"customerId":"C001","name":"Alice"}`)
		req := httptest.NewRequest(http.MethodPost, "/customers", body)
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		mockPublisher.AssertNotCalled(t, "PublishCustomerCreated", mock.Anything, mock.Anything)
	})
}

func TestCustomerHandlerGetCustomer(t *testing.T) {
	mockService := new(MockCustomerService)
	h := NewCustomerHandler(mockService, new(MockEventPublisher), testLogger())

	t.Run("successfully retrieves customer details", func(t *testing.T) {
		mockService.On("GetCustomer", mock.Anything, "C001").
			Return(&customer.Customer{CustomerID: "C001", Name: "Alice"}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/customers/C001", nil), "customerID", "C001")
		rec := httptest.NewRecorder()

		h.GetCustomer(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CustomerResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Alice", resp.Name)
		mockService.AssertExpectations(t)
	})

	t.Run("returns 404 when customer is missing", func(t *testing.T) {
		mockService.On("GetCustomer", mock.Anything, "C404").
			Return((*customer.Customer)(nil), apperrors.ErrNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/customers/C404", nil), "customerID", "C404")
		rec := httptest.NewRecorder()

		h.GetCustomer(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var resp dto.ErrorResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Resource not found.", resp.Error.Message)
	})
}

func TestCustomerHandlerDeleteCustomer(t *testing.T) {
	t.Run("maps a referenced customer to conflict", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := NewCustomerHandler(mockService, new(MockEventPublisher), testLogger())

		mockService.On("DeleteCustomer", mock.Anything, "C001").Return(apperrors.ErrConflict)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/customers/C001", nil), "customerID", "C001")
		rec := httptest.NewRecorder()

		h.DeleteCustomer(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestCustomerHandlerNextCustomerID(t *testing.T) {
	mockService := new(MockCustomerService)
	h := NewCustomerHandler(mockService, new(MockEventPublisher), testLogger())

	mockService.On("NextCustomerID", mock.Anything).Return("C043", nil)

	req := httptest.NewRequest(http.MethodGet, "/customers/next-id", nil)
	rec := httptest.NewRecorder()

	h.NextCustomerID(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.NextIDResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "C043", resp.NextID)
}
