package dto

import (
	"fmt"
	"strings"

	"insurance-office/internal/domain/insurancetype"
)

type CreateInsuranceTypeRequest struct {
	InsuranceTypeID string `json:"insuranceTypeId,omitempty"`
	Name            string `json:"name"`
	Description     string `json:"description"`
}

func (r *CreateInsuranceTypeRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

type UpdateInsuranceTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *UpdateInsuranceTypeRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

type InsuranceTypeResponse struct {
	InsuranceTypeID string `json:"insuranceTypeId"`
	Name            string `json:"name"`
	Description     string `json:"description"`
}

func NewInsuranceTypeResponse(it *insurancetype.InsuranceType) InsuranceTypeResponse {
	if it == nil {
		return InsuranceTypeResponse{}
	}
	return InsuranceTypeResponse{
		InsuranceTypeID: it.InsuranceTypeID,
		Name:            it.Name,
		Description:     it.Description,
	}
}

func NewInsuranceTypeResponseList(types []*insurancetype.InsuranceType) []InsuranceTypeResponse {
	resp := make([]InsuranceTypeResponse, 0, len(types))
	for _, it := range types {
		resp = append(resp, NewInsuranceTypeResponse(it))
	}
	return resp
}
