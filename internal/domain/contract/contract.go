package contract

import "time"

// Status of an insurance contract. "Active" is the default on creation;
// nothing moves a contract between statuses automatically, only an explicit
// update or an extension (which forces Active).
type Status string

const (
	StatusActive    Status = "Active"
	StatusPending   Status = "Pending"
	StatusExpired   Status = "Expired"
	StatusCancelled Status = "Cancelled"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusPending, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

type Contract struct {
	ContractID      string
	CustomerID      string
	InsuranceTypeID string
	SignDate        time.Time
	// ExpirationDate stays nil until the contract is given one.
	ExpirationDate *time.Time
	Status         Status

	// Joined display fields, populated by list and detail reads.
	CustomerName  string
	InsuranceName string
}

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
