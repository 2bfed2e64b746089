package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"insurance-office/internal/api/handler/dto"
	"insurance-office/internal/domain/assessment"
	"insurance-office/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

type AssessmentHandler struct {
	service assessment.AssessmentService
	logger  *slog.Logger
}

func NewAssessmentHandler(s assessment.AssessmentService, l *slog.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		service: s,
		logger:  l.With("component", "AssessmentHandler"),
	}
}

// FileClaim records a new claim assessment against a contract.
//
// @Summary File a claim
// @Description Files a claim against an existing contract. The assessment ID is optional; when omitted the next A-series ID is assigned. The result defaults to Pending.
// @Tags Assessments
// @Accept json
// @Produce json
// @Param request body dto.FileClaimRequest true "Claim payload"
// @Success 201 {object} dto.AssessmentResponse "Claim successfully filed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 404 {object} dto.ErrorResponse "Contract not found"
// @Failure 409 {object} dto.ErrorResponse "Assessment ID already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments [post]
// @Security BearerAuth
func (h *AssessmentHandler) FileClaim(w http.ResponseWriter, r *http.Request) {
	var req dto.FileClaimRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	assessmentDate, _ := time.Parse(dto.DateLayout, req.AssessmentDate)
	claimAmount, _ := decimal.NewFromString(req.ClaimAmount)

	filed, err := h.service.FileClaim(r.Context(), req.AssessmentID, req.ContractID, assessmentDate, claimAmount, assessment.Result(req.Result))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.NewAssessmentResponse(filed))
}

// GetAssessment retrieves one assessment by ID.
//
// @Summary Retrieve assessment details
// @Tags Assessments
// @Produce json
// @Param assessmentID path string true "Assessment ID"
// @Success 200 {object} dto.AssessmentResponse "Assessment details"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{assessmentID} [get]
// @Security BearerAuth
func (h *AssessmentHandler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	assessmentID, err := urlParam(r, "assessmentID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	a, err := h.service.GetAssessment(r.Context(), assessmentID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewAssessmentResponse(a))
}

// ListAssessments lists every filed claim.
//
// @Summary List assessments
// @Tags Assessments
// @Produce json
// @Success 200 {array} dto.AssessmentResponse "All assessments"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments [get]
// @Security BearerAuth
func (h *AssessmentHandler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	assessments, err := h.service.ListAssessments(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewAssessmentResponseList(assessments))
}

// PendingAssessments lists claims still awaiting a decision.
//
// @Summary List pending assessments
// @Tags Assessments
// @Produce json
// @Success 200 {array} dto.AssessmentResponse "Assessments with a Pending result"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/pending [get]
// @Security BearerAuth
func (h *AssessmentHandler) PendingAssessments(w http.ResponseWriter, r *http.Request) {
	assessments, err := h.service.PendingAssessments(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewAssessmentResponseList(assessments))
}

// ApprovedWithoutPayout lists approved claims with no payout yet. The payout
// form selects its assessment from this list.
//
// @Summary List approved claims awaiting payout
// @Tags Assessments
// @Produce json
// @Success 200 {array} dto.ApprovedClaimResponse "Approved assessments without a payout"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/approved-without-payout [get]
// @Security BearerAuth
func (h *AssessmentHandler) ApprovedWithoutPayout(w http.ResponseWriter, r *http.Request) {
	claims, err := h.service.ApprovedWithoutPayout(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewApprovedClaimResponseList(claims))
}

// UpdateResult replaces an assessment's result.
//
// @Summary Update an assessment result
// @Description Replaces the claim result. Any valid result may replace any other; there is no transition guard.
// @Tags Assessments
// @Accept json
// @Produce json
// @Param assessmentID path string true "Assessment ID"
// @Param request body dto.UpdateResultRequest true "Result payload"
// @Success 200 {object} map[string]string "Result successfully updated"
// @Failure 400 {object} dto.ErrorResponse "Unknown result"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{assessmentID}/result [put]
// @Security BearerAuth
func (h *AssessmentHandler) UpdateResult(w http.ResponseWriter, r *http.Request) {
	assessmentID, err := urlParam(r, "assessmentID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	var req dto.UpdateResultRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if err := h.service.UpdateResult(r.Context(), assessmentID, assessment.Result(req.Result)); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Assessment result updated"})
}

// NextAssessmentID suggests the next free A-series identifier.
//
// @Summary Suggest the next assessment ID
// @Tags Assessments
// @Produce json
// @Success 200 {object} dto.NextIDResponse "Suggested ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/next-id [get]
// @Security BearerAuth
func (h *AssessmentHandler) NextAssessmentID(w http.ResponseWriter, r *http.Request) {
	next, err := h.service.NextAssessmentID(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NextIDResponse{NextID: next})
}
