package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"insurance-office/internal/api/handler/dto"
	"insurance-office/internal/domain/insurancetype"
	"insurance-office/internal/pkg/apperrors"
)

type InsuranceTypeHandler struct {
	service insurancetype.InsuranceTypeService
	logger  *slog.Logger
}

func NewInsuranceTypeHandler(s insurancetype.InsuranceTypeService, l *slog.Logger) *InsuranceTypeHandler {
	return &InsuranceTypeHandler{
		service: s,
		logger:  l.With("component", "InsuranceTypeHandler"),
	}
}

// CreateInsuranceType registers a new insurance product.
//
// @Summary Create an insurance type
// @Description Registers an insurance product. The type ID is optional; when omitted the next T-series ID is assigned.
// @Tags InsuranceTypes
// @Accept json
// @Produce json
// @Param request body dto.CreateInsuranceTypeRequest true "Insurance type payload"
// @Success 201 {object} dto.InsuranceTypeResponse "Insurance type successfully created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 409 {object} dto.ErrorResponse "Insurance type ID already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /insurance-types [post]
// @Security BearerAuth
func (h *InsuranceTypeHandler) CreateInsuranceType(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInsuranceTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	created, err := h.service.CreateInsuranceType(r.Context(), req.InsuranceTypeID, req.Name, req.Description)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.NewInsuranceTypeResponse(created))
}

// GetInsuranceType retrieves one insurance type by ID.
//
// @Summary Retrieve insurance type details
// @Tags InsuranceTypes
// @Produce json
// @Param insuranceTypeID path string true "Insurance type ID"
// @Success 200 {object} dto.InsuranceTypeResponse "Insurance type details"
// @Failure 404 {object} dto.ErrorResponse "Insurance type not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /insurance-types/{insuranceTypeID} [get]
// @Security BearerAuth
func (h *InsuranceTypeHandler) GetInsuranceType(w http.ResponseWriter, r *http.Request) {
	insuranceTypeID, err := urlParam(r, "insuranceTypeID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	it, err := h.service.GetInsuranceType(r.Context(), insuranceTypeID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewInsuranceTypeResponse(it))
}

// ListInsuranceTypes lists every insurance product.
//
// @Summary List insurance types
// @Tags InsuranceTypes
// @Produce json
// @Success 200 {array} dto.InsuranceTypeResponse "All insurance types"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /insurance-types [get]
// @Security BearerAuth
func (h *InsuranceTypeHandler) ListInsuranceTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.ListInsuranceTypes(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewInsuranceTypeResponseList(types))
}

// UpdateInsuranceType replaces an insurance type's details.
//
// @Summary Update an insurance type
// @Tags InsuranceTypes
// @Accept json
// @Produce json
// @Param insuranceTypeID path string true "Insurance type ID"
// @Param request body dto.UpdateInsuranceTypeRequest true "Insurance type payload"
// @Success 200 {object} map[string]string "Insurance type successfully updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 404 {object} dto.ErrorResponse "Insurance type not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /insurance-types/{insuranceTypeID} [put]
// @Security BearerAuth
func (h *InsuranceTypeHandler) UpdateInsuranceType(w http.ResponseWriter, r *http.Request) {
	insuranceTypeID, err := urlParam(r, "insuranceTypeID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	var req dto.UpdateInsuranceTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if err := h.service.UpdateInsuranceType(r.Context(), insuranceTypeID, req.Name, req.Description); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Insurance type updated"})
}

// DeleteInsuranceType removes an insurance type without contracts.
//
// @Summary Delete an insurance type
// @Description Deletes an insurance type. A type still referenced by a contract cannot be deleted.
// @Tags InsuranceTypes
// @Produce json
// @Param insuranceTypeID path string true "Insurance type ID"
// @Success 200 {object} map[string]string "Insurance type successfully deleted"
// @Failure 404 {object} dto.ErrorResponse "Insurance type not found"
// @Failure 409 {object} dto.ErrorResponse "Insurance type still referenced by a contract"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /insurance-types/{insuranceTypeID} [delete]
// @Security BearerAuth
func (h *InsuranceTypeHandler) DeleteInsuranceType(w http.ResponseWriter, r *http.Request) {
	insuranceTypeID, err := urlParam(r, "insuranceTypeID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if err := h.service.DeleteInsuranceType(r.Context(), insuranceTypeID); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Insurance type deleted"})
}

// InsuranceTypeOptions serves the dropdown entries for contract forms.
//
// @Summary List insurance type dropdown options
// @Tags InsuranceTypes
// @Produce json
// @Success 200 {array} insurancetype.Option "ID and label per insurance type"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /insurance-types/options [get]
// @Security BearerAuth
func (h *InsuranceTypeHandler) InsuranceTypeOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.DropdownOptions(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, options)
}

// NextInsuranceTypeID suggests the next free T-series identifier.
//
// @Summary Suggest the next insurance type ID
// @Tags InsuranceTypes
// @Produce json
// @Success 200 {object} dto.NextIDResponse "Suggested ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /insurance-types/next-id [get]
// @Security BearerAuth
func (h *InsuranceTypeHandler) NextInsuranceTypeID(w http.ResponseWriter, r *http.Request) {
	next, err := h.service.NextInsuranceTypeID(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NextIDResponse{NextID: next})
}
