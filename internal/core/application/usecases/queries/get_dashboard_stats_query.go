package queries

import (
	"errors"

	"gasline/internal/pkg/guard"
)

var (
	ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
		"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
	)
)

// GetDashboardStatsQuery computes the dispatcher dashboard aggregates.
// The computation is deterministic: the same set of orders always yields the
// same statistics, independent of row order.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query for dashboard statistics.
// This is a parameterless query aggregating over all orders.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// MonthlyCount is the number of orders created in one calendar month. Months
// are keyed "2006-Jan" and returned in chronological order.
type MonthlyCount struct {
	Month string
	Count int
}

// GetDashboardStatsQueryResponse carries the dispatcher dashboard aggregates.
// Revenue is in cents and covers delivered orders only; the monthly histogram
// buckets every order by its creation month regardless of status.
type GetDashboardStatsQueryResponse struct {
	TotalOrders     int
	TotalDeliveries int
	Revenue         int64
	StockCount      int
	DriverCount     int
	MonthlyOrders   []MonthlyCount
	OrdersByStatus  map[string]int
}
