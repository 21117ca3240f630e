package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticOrders struct {
	orders []fixtures.Order
	err    error
}

func (s staticOrders) List(context.Context) ([]fixtures.Order, error) {
	return s.orders, s.err
}

var clock = func() time.Time { return time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC) }

func TestOrderStatistics(t *testing.T) {
	src := staticOrders{orders: []fixtures.Order{
		{OrderStatus: "pending"},
		{OrderStatus: "confirmed"},
		{OrderStatus: "shipping"},
		{OrderStatus: "delivered", FinalPrice: decimal.NewFromInt(498000)},
		{OrderStatus: "delivered", FinalPrice: decimal.RequireFromString("1500.50")},
		{OrderStatus: "cancelled", FinalPrice: decimal.NewFromInt(199000)},
	}}
	svc, err := NewService(src, Options{Seed: 1, Now: clock})
	require.NoError(t, err)

	stats, err := svc.OrderStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, stats.TotalOrders)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 1, stats.Shipping)
	assert.Equal(t, 2, stats.Delivered)
	assert.Equal(t, 1, stats.Cancelled)
	assert.True(t, decimal.RequireFromString("499500.50").Equal(stats.TotalRevenue))
}

func TestOrderStatisticsPropagatesErrors(t *testing.T) {
	svc, err := NewService(staticOrders{err: errors.New("boom")}, Options{Now: clock})
	require.NoError(t, err)
	_, err = svc.OrderStatistics(context.Background())
	require.Error(t, err)
}

func TestRevenueSeriesAreSeeded(t *testing.T) {
	ctx := context.Background()
	first, err := NewService(staticOrders{}, Options{Seed: 42, Now: clock})
	require.NoError(t, err)
	second, err := NewService(staticOrders{}, Options{Seed: 42, Now: clock})
	require.NoError(t, err)
	other, err := NewService(staticOrders{}, Options{Seed: 7, Now: clock})
	require.NoError(t, err)

	assert.Equal(t, first.RevenueByDay(ctx), second.RevenueByDay(ctx))
	assert.Equal(t, first.RevenueByWeek(ctx), second.RevenueByWeek(ctx))
	assert.NotEqual(t, first.RevenueByDay(ctx).DailyData, other.RevenueByDay(ctx).DailyData)
	assert.Equal(t, first.RevenueByDay(ctx), first.RevenueByDay(ctx), "series are fixed for the environment")
}

func TestRevenueByDayShape(t *testing.T) {
	svc, err := NewService(staticOrders{}, Options{Seed: 42, Now: clock})
	require.NoError(t, err)

	daily := svc.RevenueByDay(context.Background())
	require.Len(t, daily.DailyData, 30)
	assert.Equal(t, "1/1/2026", daily.DailyData[0].Date)
	assert.Equal(t, "30/1/2026", daily.DailyData[29].Date)
	assert.Equal(t, "N/A", daily.DailyData[0].ComparedToPreviousDay)
	for _, p := range daily.DailyData {
		assert.GreaterOrEqual(t, p.Revenue, int64(0))
		assert.Less(t, p.Revenue, int64(5_000_000))
	}
	assert.Equal(t, FormatVND(daily.DailyData[14].Revenue), daily.Summary.TotalRevenueTodayFormatted)
	assert.Regexp(t, `^\d{2}/01/2026$`, daily.Summary.BestDayInPeriod)
}

func TestRevenueByWeekShape(t *testing.T) {
	svc, err := NewService(staticOrders{}, Options{Seed: 42, Now: clock})
	require.NoError(t, err)

	weekly := svc.RevenueByWeek(context.Background())
	require.Len(t, weekly, 52)
	assert.Equal(t, 1, weekly[0].Week)
	assert.Equal(t, 52, weekly[51].Week)
	for _, p := range weekly {
		assert.Less(t, p.Revenue, int64(5000))
	}
}

func TestFixedTables(t *testing.T) {
	svc, err := NewService(staticOrders{}, Options{Now: clock})
	require.NoError(t, err)

	monthly := svc.RevenueByMonth(context.Background())
	require.Len(t, monthly.MonthlyData, 4)
	assert.Equal(t, "45,000,000 đ", monthly.Summary.CurrentMonthRevenueFormatted)
	assert.Equal(t, "39,500,000 đ", monthly.Summary.AverageMonthlyRevenueFormatted)

	yearly := svc.RevenueByYear(context.Background())
	assert.Equal(t, []YearlyPoint{{Year: 2024, Revenue: 150000}, {Year: 2025, Revenue: 200000}}, yearly)
}

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "1,200,000 đ", FormatVND(1200000))
	assert.Equal(t, "0 đ", FormatVND(0))
}
