package dto

import (
	"fmt"
	"strings"
	"time"

	"insurance-office/internal/domain/payout"

	"github.com/shopspring/decimal"
)

type ProcessPayoutRequest struct {
	PayoutID     string `json:"payoutId,omitempty"`
	AssessmentID string `json:"assessmentId"`
	PayoutDate   string `json:"payoutDate"`
	Amount       string `json:"amount"`
	// Status defaults to Pending when omitted.
	Status string `json:"status,omitempty"`
}

func (r *ProcessPayoutRequest) Validate() error {
	if strings.TrimSpace(r.AssessmentID) == "" {
		return fmt.Errorf("assessmentId cannot be empty")
	}
	if _, err := time.Parse(DateLayout, r.PayoutDate); err != nil {
		return fmt.Errorf("payoutDate must be in %s format", DateLayout)
	}
	if _, err := decimal.NewFromString(r.Amount); err != nil {
		return fmt.Errorf("amount must be a decimal number")
	}
	return nil
}

type UpdatePayoutStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdatePayoutStatusRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return fmt.Errorf("status cannot be empty")
	}
	return nil
}

type PayoutResponse struct {
	PayoutID     string `json:"payoutId"`
	AssessmentID string `json:"assessmentId"`
	PayoutDate   string `json:"payoutDate"`
	Amount       string `json:"amount"`
	Status       string `json:"status"`
	ContractID   string `json:"contractId,omitempty"`
	CustomerName string `json:"customerName,omitempty"`
}

func NewPayoutResponse(p *payout.Payout) PayoutResponse {
	if p == nil {
		return PayoutResponse{}
	}
	return PayoutResponse{
		PayoutID:     p.PayoutID,
		AssessmentID: p.AssessmentID,
		PayoutDate:   p.PayoutDate.Format(DateLayout),
		Amount:       p.Amount.String(),
		Status:       string(p.Status),
		ContractID:   p.ContractID,
		CustomerName: p.CustomerName,
	}
}

func NewPayoutResponseList(payouts []*payout.Payout) []PayoutResponse {
	resp := make([]PayoutResponse, 0, len(payouts))
	for _, p := range payouts {
		resp = append(resp, NewPayoutResponse(p))
	}
	return resp
}

type PayoutStatusTotalResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
	Total  string `json:"total"`
}

func NewPayoutStatusTotalResponseList(totals []payout.StatusTotal) []PayoutStatusTotalResponse {
	resp := make([]PayoutStatusTotalResponse, 0, len(totals))
	for _, t := range totals {
		resp = append(resp, PayoutStatusTotalResponse{
			Status: string(t.Status),
			Count:  t.Count,
			Total:  t.Total.String(),
		})
	}
	return resp
}
