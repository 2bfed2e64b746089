package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"insurance-office/internal/api/handler/dto"
	"insurance-office/internal/domain/payout"
	"insurance-office/internal/event"
	"insurance-office/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

type PayoutHandler struct {
	service   payout.PayoutService
	publisher event.EventPublisher
	logger    *slog.Logger
}

func NewPayoutHandler(s payout.PayoutService, p event.EventPublisher, l *slog.Logger) *PayoutHandler {
	return &PayoutHandler{
		service:   s,
		publisher: p,
		logger:    l.With("component", "PayoutHandler"),
	}
}

// ProcessPayout records a payout for an approved claim.
//
// @Summary Process a payout
// @Description Records a payout against an approved assessment that has no payout yet. The payout ID is optional; when omitted the next P-series ID is assigned. The status defaults to Pending.
// @Tags Payouts
// @Accept json
// @Produce json
// @Param request body dto.ProcessPayoutRequest true "Payout payload"
// @Success 201 {object} dto.PayoutResponse "Payout successfully recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 409 {object} dto.ErrorResponse "Assessment not eligible or payout ID already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payouts [post]
// @Security BearerAuth
func (h *PayoutHandler) ProcessPayout(w http.ResponseWriter, r *http.Request) {
	var req dto.ProcessPayoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	payoutDate, _ := time.Parse(dto.DateLayout, req.PayoutDate)
	amount, _ := decimal.NewFromString(req.Amount)

	processed, err := h.service.ProcessPayout(r.Context(), req.PayoutID, req.AssessmentID, payoutDate, amount, payout.Status(req.Status))
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.publisher.PublishPayoutProcessed(r.Context(), event.PayoutProcessedEvent{
		PayoutID:     processed.PayoutID,
		AssessmentID: processed.AssessmentID,
		Amount:       processed.Amount,
		Status:       string(processed.Status),
	}); err != nil {
		// The payout is already committed; a lost event is logged, not returned.
		h.logger.WarnContext(r.Context(), "Failed to publish payout event",
			slog.String("payoutID", processed.PayoutID), slog.Any("error", err))
	}

	respondJSON(w, http.StatusCreated, dto.NewPayoutResponse(processed))
}

// GetPayout retrieves one payout by ID.
//
// @Summary Retrieve payout details
// @Tags Payouts
// @Produce json
// @Param payoutID path string true "Payout ID"
// @Success 200 {object} dto.PayoutResponse "Payout details"
// @Failure 404 {object} dto.ErrorResponse "Payout not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payouts/{payoutID} [get]
// @Security BearerAuth
func (h *PayoutHandler) GetPayout(w http.ResponseWriter, r *http.Request) {
	payoutID, err := urlParam(r, "payoutID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	p, err := h.service.GetPayout(r.Context(), payoutID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewPayoutResponse(p))
}

// ListPayouts lists every recorded payout.
//
// @Summary List payouts
// @Tags Payouts
// @Produce json
// @Success 200 {array} dto.PayoutResponse "All payouts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payouts [get]
// @Security BearerAuth
func (h *PayoutHandler) ListPayouts(w http.ResponseWriter, r *http.Request) {
	payouts, err := h.service.ListPayouts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewPayoutResponseList(payouts))
}

// PendingPayouts lists payouts still awaiting completion.
//
// @Summary List pending payouts
// @Tags Payouts
// @Produce json
// @Success 200 {array} dto.PayoutResponse "Payouts with a Pending status"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payouts/pending [get]
// @Security BearerAuth
func (h *PayoutHandler) PendingPayouts(w http.ResponseWriter, r *http.Request) {
	payouts, err := h.service.PendingPayouts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewPayoutResponseList(payouts))
}

// UpdateStatus replaces a payout's status.
//
// @Summary Update a payout status
// @Tags Payouts
// @Accept json
// @Produce json
// @Param payoutID path string true "Payout ID"
// @Param request body dto.UpdatePayoutStatusRequest true "Status payload"
// @Success 200 {object} map[string]string "Status successfully updated"
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 404 {object} dto.ErrorResponse "Payout not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payouts/{payoutID}/status [put]
// @Security BearerAuth
func (h *PayoutHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	payoutID, err := urlParam(r, "payoutID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	var req dto.UpdatePayoutStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if err := h.service.UpdateStatus(r.Context(), payoutID, payout.Status(req.Status)); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Payout status updated"})
}

// TotalsByStatus serves the payout totals panel.
//
// @Summary List payout totals grouped by status
// @Tags Payouts
// @Produce json
// @Success 200 {array} dto.PayoutStatusTotalResponse "Count and summed amount per status"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payouts/totals [get]
// @Security BearerAuth
func (h *PayoutHandler) TotalsByStatus(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.TotalsByStatus(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewPayoutStatusTotalResponseList(totals))
}

// NextPayoutID suggests the next free P-series identifier.
//
// @Summary Suggest the next payout ID
// @Tags Payouts
// @Produce json
// @Success 200 {object} dto.NextIDResponse "Suggested ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payouts/next-id [get]
// @Security BearerAuth
func (h *PayoutHandler) NextPayoutID(w http.ResponseWriter, r *http.Request) {
	next, err := h.service.NextPayoutID(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NextIDResponse{NextID: next})
}
