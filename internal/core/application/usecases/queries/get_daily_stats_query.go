package queries

import (
	"errors"
	"time"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDailyStatsQueryIsNotConstructed = errors.New(
	"GetDailyStatsQuery must be created via NewGetDailyStatsQuery constructor",
)

// GetDailyStatsQuery aggregates order activity for one calendar day.
//
// Example:
//
//	query, err := NewGetDailyStatsQuery(time.Now().UTC())
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetDailyStatsQueryHandler(db)
//	stats, err := handler.Handle(ctx, query)
type GetDailyStatsQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetDailyStatsQuery creates a query for the day containing the given
// moment. The time-of-day portion is discarded; the day boundary is UTC.
func NewGetDailyStatsQuery(date time.Time) (GetDailyStatsQuery, error) {
	if date.IsZero() {
		return GetDailyStatsQuery{}, errs.NewValueIsRequiredError("date")
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return GetDailyStatsQuery{date: day, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDailyStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyStatsQueryIsNotConstructed)
}

// Date returns the UTC midnight marking the start of the aggregated day.
func (q GetDailyStatsQuery) Date() time.Time {
	return q.date
}

// GetDailyStatsQueryResponse summarizes one day of order activity.
//
// TotalOrders and the per-status counts cover every order created that day
// regardless of outcome. TotalRevenue and AverageOrderValue are computed over
// delivered orders only; AverageOrderValue is nil when nothing was delivered,
// which is distinct from an average of zero.
type GetDailyStatsQueryResponse struct {
	Date              time.Time
	TotalOrders       int
	PendingOrders     int
	ConfirmedOrders   int
	PreparingOrders   int
	ReadyOrders       int
	DeliveredOrders   int
	CancelledOrders   int
	TotalRevenue      decimal.Decimal
	AverageOrderValue *decimal.Decimal
}
