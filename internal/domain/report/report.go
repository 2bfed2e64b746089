// Package report holds the read-only aggregates behind the dashboard and
// reporting screens. Nothing here mutates state; every row type mirrors one
// grouped query.
package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardMetrics is the headline figures shown on the landing page.
type DashboardMetrics struct {
	TotalCustomers      int64
	ActiveContracts     int64
	PendingClaims       int64
	TotalApprovedPayout decimal.Decimal
}

// RecentContract is one row of the latest-contracts panel.
type RecentContract struct {
	ContractID    string
	CustomerName  string
	InsuranceName string
	SignDate      time.Time
	Status        string
}

// TypeCount is a per-insurance-type row count.
type TypeCount struct {
	InsuranceName string
	Count         int64
}

// TypeAmount is a per-insurance-type count with a summed amount.
type TypeAmount struct {
	InsuranceName string
	Count         int64
	Total         decimal.Decimal
}

// StatusCount is one slice of a status distribution.
type StatusCount struct {
	Status string
	Count  int64
}

// MonthCount is one point of a monthly trend, keyed "YYYY-MM".
type MonthCount struct {
	Month string
	Count int64
}

// MonthAmount is one point of a monthly amount trend, keyed "YYYY-MM".
type MonthAmount struct {
	Month string
	Total decimal.Decimal
}

// CustomerCount ranks a customer by how many contracts they hold.
type CustomerCount struct {
	CustomerID string
	Name       string
	Contracts  int64
}

// CustomerAmount ranks a customer by summed payout amount.
type CustomerAmount struct {
	CustomerID string
	Name       string
	Total      decimal.Decimal
}
