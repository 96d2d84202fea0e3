package queries

import (
	"context"
	"sort"
	"time"

	"gasline/internal/core/domain/model/order"
	"gasline/internal/core/ports"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler computes the dispatcher dashboard from the
// database plus the inventory provider. A single SQL pass loads the per-order
// facts; the aggregation itself is a pure function so the result depends only
// on the data, never on row order or clock.
type GetDashboardStatsQueryHandler struct {
	db        *gorm.DB
	inventory ports.InventoryProvider
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard queries.
func NewGetDashboardStatsQueryHandler(
	db *gorm.DB,
	inventory ports.InventoryProvider,
) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db, inventory: inventory}
}

// orderStatRow is one order's contribution to the dashboard aggregates.
// Delivered is judged by the status history, not the current status, so a
// delivered-then-returned order still counts as a completed delivery.
type orderStatRow struct {
	Status    order.Status
	Amount    int64
	CreatedAt time.Time
	Delivered bool
}

// Handle executes the query and returns the dashboard aggregates.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	stats, err := h.loadOrderRows(ctx)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	response := computeDashboardStats(stats)

	var driverCount int
	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM users WHERE role = 'driver'
	`).Scan(&driverCount).Error
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	response.DriverCount = driverCount

	stock, err := h.inventory.StockCount(ctx)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	response.StockCount = stock

	return response, nil
}

func (h GetDashboardStatsQueryHandler) loadOrderRows(ctx context.Context) ([]orderStatRow, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.status,
			o.amount,
			o.created_at,
			EXISTS (
				SELECT 1 FROM order_history oh
				WHERE oh.order_id = o.id AND oh.status = ?
			) AS delivered
		FROM orders o
	`, int(order.Delivered)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]orderStatRow, 0)

	for rows.Next() {
		var row orderStatRow
		var status int

		if err = rows.Scan(&status, &row.Amount, &row.CreatedAt, &row.Delivered); err != nil {
			return nil, err
		}

		row.Status = order.Status(status)
		stats = append(stats, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// computeDashboardStats folds per-order facts into dashboard aggregates.
// Orders with an unrecognized status are counted in the pending bucket, which
// matches how the rest of the system treats records predating the status
// enumeration. Monthly buckets key on the order's creation month and count
// every order; only TotalDeliveries and Revenue are delivered-scoped.
func computeDashboardStats(rows []orderStatRow) GetDashboardStatsQueryResponse {
	response := GetDashboardStatsQueryResponse{
		MonthlyOrders:  make([]MonthlyCount, 0),
		OrdersByStatus: make(map[string]int),
	}

	monthly := make(map[string]int)
	monthTimes := make(map[string]time.Time)

	for _, row := range rows {
		response.TotalOrders++

		bucket := row.Status.String()
		if row.Status.Validate() != nil {
			bucket = order.Pending.String()
		}
		response.OrdersByStatus[bucket]++

		month := row.CreatedAt.UTC().Format("2006-Jan")
		if _, ok := monthly[month]; !ok {
			first := time.Date(
				row.CreatedAt.UTC().Year(), row.CreatedAt.UTC().Month(),
				1, 0, 0, 0, 0, time.UTC,
			)
			monthTimes[month] = first
		}
		monthly[month]++

		if !row.Delivered {
			continue
		}

		response.TotalDeliveries++
		response.Revenue += row.Amount
	}

	months := make([]string, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool {
		return monthTimes[months[i]].Before(monthTimes[months[j]])
	})

	for _, month := range months {
		response.MonthlyOrders = append(response.MonthlyOrders, MonthlyCount{
			Month: month,
			Count: monthly[month],
		})
	}

	return response
}
