package dto

import (
	"fmt"
	"strings"
	"time"

	"insurance-office/internal/domain/contract"
)

type CreateContractRequest struct {
	ContractID      string `json:"contractId,omitempty"`
	CustomerID      string `json:"customerId"`
	InsuranceTypeID string `json:"insuranceTypeId"`
	SignDate        string `json:"signDate"`
	// ExpirationDate is optional; an open-ended contract omits it.
	ExpirationDate string `json:"expirationDate,omitempty"`
}

func (r *CreateContractRequest) Validate() error {
	if strings.TrimSpace(r.CustomerID) == "" {
		return fmt.Errorf("customerId cannot be empty")
	}
	if strings.TrimSpace(r.InsuranceTypeID) == "" {
		return fmt.Errorf("insuranceTypeId cannot be empty")
	}
	if _, err := r.Dates(); err != nil {
		return err
	}
	return nil
}

// Dates parses the wire dates, returning the sign date and optionally the
// expiration date via the request's parsed fields.
func (r *CreateContractRequest) Dates() (signDate time.Time, err error) {
	signDate, err = time.Parse(DateLayout, r.SignDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("signDate must be in %s format", DateLayout)
	}
	return signDate, nil
}

func (r *CreateContractRequest) Expiration() (*time.Time, error) {
	if strings.TrimSpace(r.ExpirationDate) == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, r.ExpirationDate)
	if err != nil {
		return nil, fmt.Errorf("expirationDate must be in %s format", DateLayout)
	}
	return &t, nil
}

type UpdateContractRequest struct {
	CustomerID      string `json:"customerId"`
	InsuranceTypeID string `json:"insuranceTypeId"`
	SignDate        string `json:"signDate"`
	ExpirationDate  string `json:"expirationDate,omitempty"`
	Status          string `json:"status"`
}

func (r *UpdateContractRequest) Validate() error {
	if strings.TrimSpace(r.CustomerID) == "" {
		return fmt.Errorf("customerId cannot be empty")
	}
	if strings.TrimSpace(r.InsuranceTypeID) == "" {
		return fmt.Errorf("insuranceTypeId cannot be empty")
	}
	if _, err := time.Parse(DateLayout, r.SignDate); err != nil {
		return fmt.Errorf("signDate must be in %s format", DateLayout)
	}
	if r.ExpirationDate != "" {
		if _, err := time.Parse(DateLayout, r.ExpirationDate); err != nil {
			return fmt.Errorf("expirationDate must be in %s format", DateLayout)
		}
	}
	if !contract.ValidStatus(contract.Status(r.Status)) {
		return fmt.Errorf("unknown contract status %q", r.Status)
	}
	return nil
}

// ExtendContractRequest pushes a contract's expiration date out by the given
// number of days and forces the status back to Active.
type ExtendContractRequest struct {
	Days int `json:"days"`
}

func (r *ExtendContractRequest) Validate() error {
	if r.Days <= 0 {
		return fmt.Errorf("days must be positive")
	}
	return nil
}

type ContractResponse struct {
	ContractID      string `json:"contractId"`
	CustomerID      string `json:"customerId"`
	InsuranceTypeID string `json:"insuranceTypeId"`
	SignDate        string `json:"signDate"`
	ExpirationDate  string `json:"expirationDate,omitempty"`
	Status          string `json:"status"`
	CustomerName    string `json:"customerName,omitempty"`
	InsuranceName   string `json:"insuranceName,omitempty"`
}

func NewContractResponse(ct *contract.Contract) ContractResponse {
	if ct == nil {
		return ContractResponse{}
	}
	resp := ContractResponse{
		ContractID:      ct.ContractID,
		CustomerID:      ct.CustomerID,
		InsuranceTypeID: ct.InsuranceTypeID,
		SignDate:        ct.SignDate.Format(DateLayout),
		Status:          string(ct.Status),
		CustomerName:    ct.CustomerName,
		InsuranceName:   ct.InsuranceName,
	}
	if ct.ExpirationDate != nil {
		resp.ExpirationDate = ct.ExpirationDate.Format(DateLayout)
	}
	return resp
}

func NewContractResponseList(contracts []*contract.Contract) []ContractResponse {
	resp := make([]ContractResponse, 0, len(contracts))
	for _, ct := range contracts {
		resp = append(resp, NewContractResponse(ct))
	}
	return resp
}
