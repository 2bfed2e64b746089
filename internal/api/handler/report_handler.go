package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"insurance-office/internal/api/handler/dto"
	"insurance-office/internal/domain/report"
	"insurance-office/internal/pkg/apperrors"
)

type ReportHandler struct {
	service report.ReportService
	logger  *slog.Logger
}

func NewReportHandler(s report.ReportService, l *slog.Logger) *ReportHandler {
	return &ReportHandler{
		service: s,
		logger:  l.With("component", "ReportHandler"),
	}
}

// Dashboard serves the landing-page metrics and recent contracts.
//
// @Summary Retrieve dashboard metrics
// @Tags Reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse "Headline figures and recent contracts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard [get]
// @Security BearerAuth
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.Dashboard(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewDashboardResponse(d))
}

// ClaimsReport serves the claim aggregates.
//
// @Summary Retrieve the claims report
// @Tags Reports
// @Produce json
// @Success 200 {object} dto.ClaimsReportResponse "Claims grouped by type, status and month"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/claims [get]
// @Security BearerAuth
func (h *ReportHandler) ClaimsReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.service.ClaimsReport(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewClaimsReportResponse(rep))
}

// ContractsReport serves the contract aggregates.
//
// @Summary Retrieve the contracts report
// @Tags Reports
// @Produce json
// @Success 200 {object} dto.ContractsReportResponse "Contracts grouped by type and month"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/contracts [get]
// @Security BearerAuth
func (h *ReportHandler) ContractsReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.service.ContractsReport(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewContractsReportResponse(rep))
}

// PayoutsReport serves the payout aggregates.
//
// @Summary Retrieve the payouts report
// @Tags Reports
// @Produce json
// @Success 200 {object} dto.PayoutsReportResponse "Payout counts and amounts grouped by type and month"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/payouts [get]
// @Security BearerAuth
func (h *ReportHandler) PayoutsReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.service.PayoutsReport(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewPayoutsReportResponse(rep))
}

// TopCustomers serves both customer rankings.
//
// @Summary Retrieve customer rankings
// @Tags Reports
// @Produce json
// @Param limit query int false "Rows per ranking (default 10)"
// @Success 200 {object} dto.TopCustomersResponse "Customers ranked by contracts and by payout"
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/top-customers [get]
// @Security BearerAuth
func (h *ReportHandler) TopCustomers(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, fmt.Errorf("%w: limit must be an integer", apperrors.ErrInvalidArgument))
			return
		}
		limit = parsed
	}

	tc, err := h.service.TopCustomers(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewTopCustomersResponse(tc))
}
