package assessment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Result of a claim assessment. Any result may replace any other through the
// same update path; the workflow deliberately imposes no transition guard.
type Result string

const (
	ResultPending  Result = "Pending"
	ResultApproved Result = "Approved"
	ResultRejected Result = "Rejected"
)

func ValidResult(r Result) bool {
	switch r {
	case ResultPending, ResultApproved, ResultRejected:
		return true
	}
	return false
}

// Assessment is a filed claim against a contract.
type Assessment struct {
	AssessmentID   string
	ContractID     string
	AssessmentDate time.Time
	ClaimAmount    decimal.Decimal
	Result         Result

	// Joined display field, populated by list reads.
	CustomerName string
}

// ApprovedClaim is one row of the approved-without-payout view the payout
// screen selects from.
type ApprovedClaim struct {
	AssessmentID   string
	ContractID     string
	CustomerName   string
	AssessmentDate time.Time
	ClaimAmount    decimal.Decimal
}
