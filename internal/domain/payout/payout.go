package payout

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the processing state of a payout.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCompleted Status = "Completed"
)

// ValidStatus reports whether s is one of the known payout statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Payout is money paid out against an approved assessment. CustomerName and
// ContractID are populated on joined reads and are not stored on the row.
type Payout struct {
	PayoutID     string
	AssessmentID string
	PayoutDate   time.Time
	Amount       decimal.Decimal
	Status       Status

	// Joined display fields, populated by list reads.
	ContractID   string
	CustomerName string
}

// StatusTotal is one row of the payout totals breakdown.
type StatusTotal struct {
	Status Status
	Count  int64
	Total  decimal.Decimal
}
