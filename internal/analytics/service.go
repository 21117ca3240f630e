package analytics

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/angelmondragon/gash-demo/internal/fixtures"
	"github.com/angelmondragon/gash-demo/pkg/enums"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	daysInSeries   = 30
	weeksInSeries  = 52
	maxDailyAmount = 5_000_000
	maxWeekAmount  = 5_000
	pcgIncrement   = 0x9e3779b97f4a7c15
)

var monthlyTable = []MonthlyPoint{
	{Year: 2026, Month: "January", TotalRevenue: 45_000_000, ComparedToPreviousMonth: "+12%"},
	{Year: 2026, Month: "February", TotalRevenue: 38_000_000, ComparedToPreviousMonth: "-15%"},
	{Year: 2025, Month: "January", TotalRevenue: 40_000_000, ComparedToPreviousMonth: "+5%"},
	{Year: 2025, Month: "February", TotalRevenue: 35_000_000, ComparedToPreviousMonth: "+8%"},
}

var yearlyTable = []YearlyPoint{
	{Year: 2024, Revenue: 150_000},
	{Year: 2025, Revenue: 200_000},
}

var printer = message.NewPrinter(language.English)

// OrderSource is the part of the orders service statistics are computed from.
type OrderSource interface {
	List(ctx context.Context) ([]fixtures.Order, error)
}

// Service answers the dashboard's statistics endpoints. Order statistics follow the
// session overlay; revenue series are synthetic and fixed per environment.
type Service interface {
	OrderStatistics(ctx context.Context) (OrderStatistics, error)
	RevenueByDay(ctx context.Context) DailyRevenue
	RevenueByWeek(ctx context.Context) []WeeklyPoint
	RevenueByMonth(ctx context.Context) MonthlyRevenue
	RevenueByYear(ctx context.Context) []YearlyPoint
}

// Options seed the synthetic series. Equal seeds and clocks give equal series.
type Options struct {
	Seed uint64
	Now  func() time.Time
}

type service struct {
	orders OrderSource
	daily  DailyRevenue
	weekly []WeeklyPoint
}

func NewService(orders OrderSource, opts Options) (Service, error) {
	if orders == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "order source required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^pcgIncrement))
	return &service{
		orders: orders,
		daily:  dailySeries(rng, opts.Now()),
		weekly: weeklySeries(rng),
	}, nil
}

func (s *service) OrderStatistics(ctx context.Context) (OrderStatistics, error) {
	all, err := s.orders.List(ctx)
	if err != nil {
		return OrderStatistics{}, err
	}
	stats := OrderStatistics{TotalOrders: len(all), TotalRevenue: decimal.Zero}
	for _, o := range all {
		switch enums.OrderStatus(o.OrderStatus) {
		case enums.OrderStatusPending:
			stats.Pending++
		case enums.OrderStatusConfirmed:
			stats.Confirmed++
		case enums.OrderStatusShipping:
			stats.Shipping++
		case enums.OrderStatusDelivered:
			stats.Delivered++
			stats.TotalRevenue = stats.TotalRevenue.Add(o.FinalPrice)
		case enums.OrderStatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

func (s *service) RevenueByDay(context.Context) DailyRevenue {
	out := s.daily
	out.DailyData = append([]DailyPoint(nil), s.daily.DailyData...)
	return out
}

func (s *service) RevenueByWeek(context.Context) []WeeklyPoint {
	return append([]WeeklyPoint(nil), s.weekly...)
}

func (s *service) RevenueByMonth(context.Context) MonthlyRevenue {
	var total int64
	for _, m := range monthlyTable {
		total += m.TotalRevenue
	}
	return MonthlyRevenue{
		MonthlyData: append([]MonthlyPoint(nil), monthlyTable...),
		Summary: MonthlySummary{
			CurrentMonthRevenueFormatted:   FormatVND(monthlyTable[0].TotalRevenue),
			AverageMonthlyRevenueFormatted: FormatVND(total / int64(len(monthlyTable))),
		},
	}
}

func (s *service) RevenueByYear(context.Context) []YearlyPoint {
	return append([]YearlyPoint(nil), yearlyTable...)
}

// dailySeries dates each point d/M/yyyy within the month of now.
func dailySeries(rng *rand.Rand, now time.Time) DailyRevenue {
	points := make([]DailyPoint, daysInSeries)
	var total int64
	best := 0
	for i := range points {
		revenue := rng.Int64N(maxDailyAmount)
		points[i] = DailyPoint{
			Date:                  fmt.Sprintf("%d/%d/%d", i+1, int(now.Month()), now.Year()),
			Revenue:               revenue,
			ComparedToPreviousDay: "N/A",
		}
		if i > 0 {
			points[i].ComparedToPreviousDay = percentChange(points[i-1].Revenue, revenue)
		}
		if revenue > points[best].Revenue {
			best = i
		}
		total += revenue
	}

	today := min(max(now.Day(), 1), daysInSeries) - 1
	bestDay := time.Date(now.Year(), now.Month(), best+1, 0, 0, 0, 0, time.UTC)
	return DailyRevenue{
		DailyData: points,
		Summary: DailySummary{
			TotalRevenueTodayFormatted:   FormatVND(points[today].Revenue),
			AverageDailyRevenueFormatted: FormatVND(total / daysInSeries),
			BestDayInPeriod:              bestDay.Format("02/01/2006"),
		},
	}
}

func weeklySeries(rng *rand.Rand) []WeeklyPoint {
	points := make([]WeeklyPoint, weeksInSeries)
	for i := range points {
		points[i] = WeeklyPoint{Week: i + 1, Revenue: rng.Int64N(maxWeekAmount)}
	}
	return points
}

func percentChange(prev, cur int64) string {
	if prev == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%+.1f%%", float64(cur-prev)/float64(prev)*100)
}

// FormatVND renders an amount the way the dashboard shows money, e.g. "1,200,000 đ".
func FormatVND(amount int64) string {
	return printer.Sprintf("%d đ", amount)
}
