package dto

import "insurance-office/internal/domain/report"

type DashboardResponse struct {
	TotalCustomers      int64                    `json:"totalCustomers"`
	ActiveContracts     int64                    `json:"activeContracts"`
	PendingClaims       int64                    `json:"pendingClaims"`
	TotalApprovedPayout string                   `json:"totalApprovedPayout"`
	RecentContracts     []RecentContractResponse `json:"recentContracts"`
}

type RecentContractResponse struct {
	ContractID    string `json:"contractId"`
	CustomerName  string `json:"customerName"`
	InsuranceName string `json:"insuranceName"`
	SignDate      string `json:"signDate"`
	Status        string `json:"status"`
}

func NewDashboardResponse(d *report.Dashboard) DashboardResponse {
	if d == nil {
		return DashboardResponse{RecentContracts: []RecentContractResponse{}}
	}
	recent := make([]RecentContractResponse, 0, len(d.RecentContracts))
	for _, rc := range d.RecentContracts {
		recent = append(recent, RecentContractResponse{
			ContractID:    rc.ContractID,
			CustomerName:  rc.CustomerName,
			InsuranceName: rc.InsuranceName,
			SignDate:      rc.SignDate.Format(DateLayout),
			Status:        rc.Status,
		})
	}
	return DashboardResponse{
		TotalCustomers:      d.Metrics.TotalCustomers,
		ActiveContracts:     d.Metrics.ActiveContracts,
		PendingClaims:       d.Metrics.PendingClaims,
		TotalApprovedPayout: d.Metrics.TotalApprovedPayout.String(),
		RecentContracts:     recent,
	}
}

type TypeCountResponse struct {
	InsuranceName string `json:"insuranceName"`
	Count         int64  `json:"count"`
}

type TypeAmountResponse struct {
	InsuranceName string `json:"insuranceName"`
	Count         int64  `json:"count"`
	Total         string `json:"total"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type MonthCountResponse struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type MonthAmountResponse struct {
	Month string `json:"month"`
	Total string `json:"total"`
}

type ClaimsReportResponse struct {
	ByInsuranceType    []TypeCountResponse   `json:"byInsuranceType"`
	StatusDistribution []StatusCountResponse `json:"statusDistribution"`
	MonthlyTrend       []MonthCountResponse  `json:"monthlyTrend"`
}

func NewClaimsReportResponse(r *report.ClaimsReport) ClaimsReportResponse {
	resp := ClaimsReportResponse{
		ByInsuranceType:    []TypeCountResponse{},
		StatusDistribution: []StatusCountResponse{},
		MonthlyTrend:       []MonthCountResponse{},
	}
	if r == nil {
		return resp
	}
	resp.ByInsuranceType = newTypeCounts(r.ByInsuranceType)
	for _, sc := range r.StatusDistribution {
		resp.StatusDistribution = append(resp.StatusDistribution, StatusCountResponse{Status: sc.Status, Count: sc.Count})
	}
	resp.MonthlyTrend = newMonthCounts(r.MonthlyTrend)
	return resp
}

type ContractsReportResponse struct {
	ByInsuranceType []TypeCountResponse  `json:"byInsuranceType"`
	MonthlyTrend    []MonthCountResponse `json:"monthlyTrend"`
}

func NewContractsReportResponse(r *report.ContractsReport) ContractsReportResponse {
	resp := ContractsReportResponse{
		ByInsuranceType: []TypeCountResponse{},
		MonthlyTrend:    []MonthCountResponse{},
	}
	if r == nil {
		return resp
	}
	resp.ByInsuranceType = newTypeCounts(r.ByInsuranceType)
	resp.MonthlyTrend = newMonthCounts(r.MonthlyTrend)
	return resp
}

type PayoutsReportResponse struct {
	ByInsuranceType []TypeAmountResponse  `json:"byInsuranceType"`
	MonthlyTrend    []MonthAmountResponse `json:"monthlyTrend"`
}

func NewPayoutsReportResponse(r *report.PayoutsReport) PayoutsReportResponse {
	resp := PayoutsReportResponse{
		ByInsuranceType: []TypeAmountResponse{},
		MonthlyTrend:    []MonthAmountResponse{},
	}
	if r == nil {
		return resp
	}
	for _, ta := range r.ByInsuranceType {
		resp.ByInsuranceType = append(resp.ByInsuranceType, TypeAmountResponse{
			InsuranceName: ta.InsuranceName,
			Count:         ta.Count,
			Total:         ta.Total.String(),
		})
	}
	for _, ma := range r.MonthlyTrend {
		resp.MonthlyTrend = append(resp.MonthlyTrend, MonthAmountResponse{Month: ma.Month, Total: ma.Total.String()})
	}
	return resp
}

type TopCustomerContractsResponse struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	Contracts  int64  `json:"contracts"`
}

type TopCustomerPayoutResponse struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	Total      string `json:"total"`
}

type TopCustomersResponse struct {
	ByContracts []TopCustomerContractsResponse `json:"byContracts"`
	ByPayout    []TopCustomerPayoutResponse    `json:"byPayout"`
}

func NewTopCustomersResponse(tc *report.TopCustomers) TopCustomersResponse {
	resp := TopCustomersResponse{
		ByContracts: []TopCustomerContractsResponse{},
		ByPayout:    []TopCustomerPayoutResponse{},
	}
	if tc == nil {
		return resp
	}
	for _, c := range tc.ByContracts {
		resp.ByContracts = append(resp.ByContracts, TopCustomerContractsResponse{
			CustomerID: c.CustomerID,
			Name:       c.Name,
			Contracts:  c.Contracts,
		})
	}
	for _, c := range tc.ByPayout {
		resp.ByPayout = append(resp.ByPayout, TopCustomerPayoutResponse{
			CustomerID: c.CustomerID,
			Name:       c.Name,
			Total:      c.Total.String(),
		})
	}
	return resp
}

func newTypeCounts(rows []report.TypeCount) []TypeCountResponse {
	out := make([]TypeCountResponse, 0, len(rows))
	for _, tc := range rows {
		out = append(out, TypeCountResponse{InsuranceName: tc.InsuranceName, Count: tc.Count})
	}
	return out
}

func newMonthCounts(rows []report.MonthCount) []MonthCountResponse {
	out := make([]MonthCountResponse, 0, len(rows))
	for _, mc := range rows {
		out = append(out, MonthCountResponse{Month: mc.Month, Count: mc.Count})
	}
	return out
}
