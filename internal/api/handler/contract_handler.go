package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"insurance-office/internal/api/handler/dto"
	"insurance-office/internal/domain/assessment"
	"insurance-office/internal/domain/contract"
	"insurance-office/internal/domain/payout"
	"insurance-office/internal/pkg/apperrors"
)

// ContractHandler serves the contract CRUD surface plus the claim and payout
// sub-resources shown on the contract detail screen.
type ContractHandler struct {
	service     contract.ContractService
	assessments assessment.AssessmentService
	payouts     payout.PayoutService
	logger      *slog.Logger
}

func NewContractHandler(s contract.ContractService, a assessment.AssessmentService, p payout.PayoutService, l *slog.Logger) *ContractHandler {
	return &ContractHandler{
		service:     s,
		assessments: a,
		payouts:     p,
		logger:      l.With("component", "ContractHandler"),
	}
}

// CreateContract signs a new contract.
//
// @Summary Create a contract
// @Description Signs a contract between a customer and an insurance type. The contract ID is optional; when omitted the next CT-series ID is assigned. The expiration date may be omitted for an open-ended contract.
// @Tags Contracts
// @Accept json
// @Produce json
// @Param request body dto.CreateContractRequest true "Contract payload"
// @Success 201 {object} dto.ContractResponse "Contract successfully created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 404 {object} dto.ErrorResponse "Customer or insurance type not found"
// @Failure 409 {object} dto.ErrorResponse "Contract ID already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contracts [post]
// @Security BearerAuth
func (h *ContractHandler) CreateContract(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContractRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	signDate, _ := req.Dates()
	expiration, _ := req.Expiration()

	created, err := h.service.CreateContract(r.Context(), req.ContractID, req.CustomerID, req.InsuranceTypeID, signDate, expiration)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.NewContractResponse(created))
}

// GetContract retrieves one contract with joined customer and type names.
//
// @Summary Retrieve contract details
// @Tags Contracts
// @Produce json
// @Param contractID path string true "Contract ID"
// @Success 200 {object} dto.ContractResponse "Contract details"
// @Failure 404 {object} dto.ErrorResponse "Contract not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contracts/{contractID} [get]
// @Security BearerAuth
func (h *ContractHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	contractID, err := urlParam(r, "contractID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	ct, err := h.service.GetContract(r.Context(), contractID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewContractResponse(ct))
}

// ListContracts lists every contract, optionally filtered by customer.
//
// @Summary List contracts
// @Tags Contracts
// @Produce json
// @Param customerId query string false "Restrict to one customer's contracts"
// @Success 200 {array} dto.ContractResponse "Contracts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contracts [get]
// @Security BearerAuth
func (h *ContractHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	var (
		contracts []*contract.Contract
		err       error
	)
	if customerID := r.URL.Query().Get("customerId"); customerID != "" {
		contracts, err = h.service.ContractsForCustomer(r.Context(), customerID)
	} else {
		contracts, err = h.service.ListContracts(r.Context())
	}
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewContractResponseList(contracts))
}

// UpdateContract replaces a contract's details.
//
// @Summary Update a contract
// @Tags Contracts
// @Accept json
// @Produce json
// @Param contractID path string true "Contract ID"
// @Param request body dto.UpdateContractRequest true "Contract payload"
// @Success 200 {object} map[string]string "Contract successfully updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 404 {object} dto.ErrorResponse "Contract, customer or insurance type not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contracts/{contractID} [put]
// @Security BearerAuth
func (h *ContractHandler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	contractID, err := urlParam(r, "contractID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	var req dto.UpdateContractRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	signDate, _ := time.Parse(dto.DateLayout, req.SignDate)
	var expiration *time.Time
	if req.ExpirationDate != "" {
		t, _ := time.Parse(dto.DateLayout, req.ExpirationDate)
		expiration = &t
	}

	err = h.service.UpdateContract(r.Context(), contractID, req.CustomerID, req.InsuranceTypeID, signDate, expiration, contract.Status(req.Status))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Contract updated"})
}

// ExpiringContracts lists contracts whose expiration date falls inside the
// window. The window defaults to the renewal-reminder window.
//
// @Summary List expiring contracts
// @Tags Contracts
// @Produce json
// @Param days query int false "Window in days from today"
// @Success 200 {array} dto.ContractResponse "Contracts expiring inside the window"
// @Failure 400 {object} dto.ErrorResponse "Invalid window"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contracts/expiring [get]
// @Security BearerAuth
func (h *ContractHandler) ExpiringContracts(w http.ResponseWriter, r *http.Request) {
	days := contract.DefaultExpiringWindowDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, fmt.Errorf("%w: days must be an integer", apperrors.ErrInvalidArgument))
			return
		}
		days = parsed
	}

	contracts, err := h.service.ExpiringWithin(r.Context(), days)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewContractResponseList(contracts))
}

// ExtendContract pushes the expiration date out and reactivates the contract.
//
// @Summary Extend a contract
// @Description Moves the expiration date forward by the given number of days and sets the status back to Active.
// @Tags Contracts
// @Accept json
// @Produce json
// @Param contractID path string true "Contract ID"
// @Param request body dto.ExtendContractRequest true "Extension payload"
// @Success 200 {object} dto.ContractResponse "Extended contract"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or a contract without an expiration date"
// @Failure 404 {object} dto.ErrorResponse "Contract not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contracts/{contractID}/extend [post]
// @Security BearerAuth
func (h *ContractHandler) ExtendContract(w http.ResponseWriter, r *http.Request) {
	contractID, err := urlParam(r, "contractID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	var req dto.ExtendContractRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	extended, err := h.service.ExtendContract(r.Context(), contractID, req.Days)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewContractResponse(extended))
}

// ContractAssessments lists the claims filed against one contract.
//
// @Summary List a contract's assessments
// @Tags Contracts
// @Produce json
// @Param contractID path string true "Contract ID"
// @Success 200 {array} dto.AssessmentResponse "Assessments for the contract"
// @Failure 404 {object} dto.ErrorResponse "Contract not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contracts/{contractID}/assessments [get]
// @Security BearerAuth
func (h *ContractHandler) ContractAssessments(w http.ResponseWriter, r *http.Request) {
	contractID, err := urlParam(r, "contractID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if _, err := h.service.GetContract(r.Context(), contractID); err != nil {
		respondError(w, err)
		return
	}

	assessments, err := h.assessments.ClaimsForContract(r.Context(), contractID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewAssessmentResponseList(assessments))
}

// ContractPayouts lists the payouts recorded against one contract.
//
// @Summary List a contract's payouts
// @Tags Contracts
// @Produce json
// @Param contractID path string true "Contract ID"
// @Success 200 {array} dto.PayoutResponse "Payouts for the contract"
// @Failure 404 {object} dto.ErrorResponse "Contract not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contracts/{contractID}/payouts [get]
// @Security BearerAuth
func (h *ContractHandler) ContractPayouts(w http.ResponseWriter, r *http.Request) {
	contractID, err := urlParam(r, "contractID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if _, err := h.service.GetContract(r.Context(), contractID); err != nil {
		respondError(w, err)
		return
	}

	payouts, err := h.payouts.PayoutsForContract(r.Context(), contractID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewPayoutResponseList(payouts))
}

// ContractOptions serves the dropdown entries for the claim form.
//
// @Summary List contract dropdown options
// @Tags Contracts
// @Produce json
// @Success 200 {array} contract.Option "ID and label per contract"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contracts/options [get]
// @Security BearerAuth
func (h *ContractHandler) ContractOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.DropdownOptions(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, options)
}

// NextContractID suggests the next free CT-series identifier.
//
// @Summary Suggest the next contract ID
// @Tags Contracts
// @Produce json
// @Success 200 {object} dto.NextIDResponse "Suggested ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contracts/next-id [get]
// @Security BearerAuth
func (h *ContractHandler) NextContractID(w http.ResponseWriter, r *http.Request) {
	next, err := h.service.NextContractID(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NextIDResponse{NextID: next})
}
