package dto

import (
	"fmt"
	"strings"
	"time"

	"insurance-office/internal/domain/assessment"

	"github.com/shopspring/decimal"
)

type FileClaimRequest struct {
	AssessmentID   string `json:"assessmentId,omitempty"`
	ContractID     string `json:"contractId"`
	AssessmentDate string `json:"assessmentDate"`
	ClaimAmount    string `json:"claimAmount"`
	// Result defaults to Pending when omitted.
	Result string `json:"result,omitempty"`
}

func (r *FileClaimRequest) Validate() error {
	if strings.TrimSpace(r.ContractID) == "" {
		return fmt.Errorf("contractId cannot be empty")
	}
	if _, err := time.Parse(DateLayout, r.AssessmentDate); err != nil {
		return fmt.Errorf("assessmentDate must be in %s format", DateLayout)
	}
	if _, err := decimal.NewFromString(r.ClaimAmount); err != nil {
		return fmt.Errorf("claimAmount must be a decimal number")
	}
	return nil
}

type UpdateResultRequest struct {
	Result string `json:"result"`
}

func (r *UpdateResultRequest) Validate() error {
	if strings.TrimSpace(r.Result) == "" {
		return fmt.Errorf("result cannot be empty")
	}
	return nil
}

type AssessmentResponse struct {
	AssessmentID   string `json:"assessmentId"`
	ContractID     string `json:"contractId"`
	AssessmentDate string `json:"assessmentDate"`
	ClaimAmount    string `json:"claimAmount"`
	Result         string `json:"result"`
	CustomerName   string `json:"customerName,omitempty"`
}

func NewAssessmentResponse(a *assessment.Assessment) AssessmentResponse {
	if a == nil {
		return AssessmentResponse{}
	}
	return AssessmentResponse{
		AssessmentID:   a.AssessmentID,
		ContractID:     a.ContractID,
		AssessmentDate: a.AssessmentDate.Format(DateLayout),
		ClaimAmount:    a.ClaimAmount.String(),
		Result:         string(a.Result),
		CustomerName:   a.CustomerName,
	}
}

func NewAssessmentResponseList(assessments []*assessment.Assessment) []AssessmentResponse {
	resp := make([]AssessmentResponse, 0, len(assessments))
	for _, a := range assessments {
		resp = append(resp, NewAssessmentResponse(a))
	}
	return resp
}

// ApprovedClaimResponse is one selectable row for the payout form: an
// approved assessment that has no payout recorded against it yet.
type ApprovedClaimResponse struct {
	AssessmentID   string `json:"assessmentId"`
	ContractID     string `json:"contractId"`
	CustomerName   string `json:"customerName"`
	AssessmentDate string `json:"assessmentDate"`
	ClaimAmount    string `json:"claimAmount"`
}

func NewApprovedClaimResponseList(claims []*assessment.ApprovedClaim) []ApprovedClaimResponse {
	resp := make([]ApprovedClaimResponse, 0, len(claims))
	for _, c := range claims {
		resp = append(resp, ApprovedClaimResponse{
			AssessmentID:   c.AssessmentID,
			ContractID:     c.ContractID,
			CustomerName:   c.CustomerName,
			AssessmentDate: c.AssessmentDate.Format(DateLayout),
			ClaimAmount:    c.ClaimAmount.String(),
		})
	}
	return resp
}
