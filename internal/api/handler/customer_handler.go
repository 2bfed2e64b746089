package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"insurance-office/internal/api/handler/dto"
	"insurance-office/internal/domain/customer"
	"insurance-office/internal/event"
	"insurance-office/internal/pkg/apperrors"
)

type CustomerHandler struct {
	service   customer.CustomerService
	publisher event.EventPublisher
	logger    *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, p event.EventPublisher, l *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service:   s,
		publisher: p,
		logger:    l.With("component", "CustomerHandler"),
	}
}

// CreateCustomer registers a new customer.
//
// @Summary Create a customer
// @Description Registers a customer. The customer ID is optional; when omitted the next C-series ID is assigned.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Customer payload"
// @Success 201 {object} dto.CustomerResponse "Customer successfully created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 409 {object} dto.ErrorResponse "Customer ID already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers [post]
// @Security BearerAuth
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	created, err := h.service.CreateCustomer(r.Context(), req.CustomerID, req.Name, req.Address, req.Phone)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.publisher.PublishCustomerCreated(r.Context(), event.CustomerCreatedEvent{
		CustomerID: created.CustomerID,
		Name:       created.Name,
	}); err != nil {
		// The customer is already committed; a lost event is logged, not returned.
		h.logger.WarnContext(r.Context(), "Failed to publish customer event",
			slog.String("customerID", created.CustomerID), slog.Any("error", err))
	}

	respondJSON(w, http.StatusCreated, dto.NewCustomerResponse(created))
}

// GetCustomer retrieves one customer by ID.
//
// @Summary Retrieve customer details
// @Tags Customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse "Customer details"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [get]
// @Security BearerAuth
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := urlParam(r, "customerID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	cust, err := h.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(cust))
}

// ListCustomers lists every customer.
//
// @Summary List customers
// @Tags Customers
// @Produce json
// @Success 200 {array} dto.CustomerResponse "All customers"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers [get]
// @Security BearerAuth
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerResponseList(customers))
}

// UpdateCustomer replaces a customer's details.
//
// @Summary Update a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerID path string true "Customer ID"
// @Param request body dto.UpdateCustomerRequest true "Customer payload"
// @Success 200 {object} map[string]string "Customer successfully updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [put]
// @Security BearerAuth
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := urlParam(r, "customerID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	var req dto.UpdateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if err := h.service.UpdateCustomer(r.Context(), customerID, req.Name, req.Address, req.Phone); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Customer updated"})
}

// DeleteCustomer removes a customer without contracts.
//
// @Summary Delete a customer
// @Description Deletes a customer. A customer still referenced by a contract cannot be deleted.
// @Tags Customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} map[string]string "Customer successfully deleted"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 409 {object} dto.ErrorResponse "Customer still referenced by a contract"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [delete]
// @Security BearerAuth
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := urlParam(r, "customerID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if err := h.service.DeleteCustomer(r.Context(), customerID); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted"})
}

// CustomerOptions serves the dropdown entries for contract forms.
//
// @Summary List customer dropdown options
// @Tags Customers
// @Produce json
// @Success 200 {array} customer.Option "ID and label per customer"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/options [get]
// @Security BearerAuth
func (h *CustomerHandler) CustomerOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.DropdownOptions(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, options)
}

// NextCustomerID suggests the next free C-series identifier.
//
// @Summary Suggest the next customer ID
// @Tags Customers
// @Produce json
// @Success 200 {object} dto.NextIDResponse "Suggested ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/next-id [get]
// @Security BearerAuth
func (h *CustomerHandler) NextCustomerID(w http.ResponseWriter, r *http.Request) {
	next, err := h.service.NextCustomerID(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NextIDResponse{NextID: next})
}
