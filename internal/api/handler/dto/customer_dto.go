package dto

import (
	"fmt"
	"strings"

	"insurance-office/internal/domain/customer"
)

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

type CreateCustomerRequest struct {
	// CustomerID is optional; the service assigns the next C-series ID when empty.
	CustomerID string `json:"customerId,omitempty"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
}

func (r *CreateCustomerRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

type UpdateCustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (r *UpdateCustomerRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

type CustomerResponse struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}
	return CustomerResponse{
		CustomerID: cust.CustomerID,
		Name:       cust.Name,
		Address:    cust.Address,
		Phone:      cust.Phone,
	}
}

func NewCustomerResponseList(customers []*customer.Customer) []CustomerResponse {
	resp := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, NewCustomerResponse(c))
	}
	return resp
}

// NextIDResponse carries a suggested identifier. The suggestion is not a
// reservation; a create may still fail with a conflict.
type NextIDResponse struct {
	NextID string `json:"nextId"`
}
