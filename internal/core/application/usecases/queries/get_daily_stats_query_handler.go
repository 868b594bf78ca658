package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDailyStatsQueryHandler computes the daily order summary with a single
// grouped aggregate over the orders table. Revenue figures are derived from
// the delivered bucket only, so cancelled and in-flight orders never inflate
// them.
type GetDailyStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDailyStatsQueryHandler creates a handler for daily stats queries.
// Requires a GORM database connection for query execution.
func NewGetDailyStatsQueryHandler(db *gorm.DB) GetDailyStatsQueryHandler {
	return GetDailyStatsQueryHandler{db: db}
}

// Handle executes the aggregation. A day without orders yields zero counts,
// zero revenue, and a nil average.
func (h GetDailyStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDailyStatsQuery,
) (GetDailyStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDailyStatsQueryResponse{}, err
	}

	dayStart := query.Date()
	dayEnd := dayStart.Add(24 * time.Hour)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*),
			COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE created_at >= ? AND created_at < ?
		GROUP BY status
	`, dayStart, dayEnd).Rows()
	if err != nil {
		return GetDailyStatsQueryResponse{}, err
	}
	defer rows.Close()

	resp := GetDailyStatsQueryResponse{
		Date:         dayStart,
		TotalRevenue: decimal.Zero,
	}

	for rows.Next() {
		var status, count int
		var amount decimal.Decimal

		if err = rows.Scan(&status, &count, &amount); err != nil {
			return GetDailyStatsQueryResponse{}, err
		}

		resp.TotalOrders += count

		switch order.Status(status) {
		case order.Pending:
			resp.PendingOrders = count
		case order.Confirmed:
			resp.ConfirmedOrders = count
		case order.Preparing:
			resp.PreparingOrders = count
		case order.Ready:
			resp.ReadyOrders = count
		case order.Delivered:
			resp.DeliveredOrders = count
			resp.TotalRevenue = amount
		case order.Cancelled:
			resp.CancelledOrders = count
		}
	}

	if err = rows.Err(); err != nil {
		return GetDailyStatsQueryResponse{}, err
	}

	if resp.DeliveredOrders > 0 {
		average := resp.TotalRevenue.Div(decimalFromInt(resp.DeliveredOrders)).Round(2)
		resp.AverageOrderValue = &average
	}

	return resp, nil
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
