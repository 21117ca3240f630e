package analytics

import "github.com/shopspring/decimal"

// OrderStatistics counts the session's orders by fulfilment state.
type OrderStatistics struct {
	TotalOrders  int             `json:"totalOrders"`
	Pending      int             `json:"pending"`
	Confirmed    int             `json:"confirmed"`
	Shipping     int             `json:"shipping"`
	Delivered    int             `json:"delivered"`
	Cancelled    int             `json:"cancelled"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

type DailyPoint struct {
	Date                  string `json:"date"`
	Revenue               int64  `json:"revenue"`
	ComparedToPreviousDay string `json:"comparedToPreviousDay"`
}

type DailySummary struct {
	TotalRevenueTodayFormatted   string `json:"totalRevenueTodayFormatted"`
	AverageDailyRevenueFormatted string `json:"averageDailyRevenueFormatted"`
	BestDayInPeriod              string `json:"bestDayInPeriod"`
}

type DailyRevenue struct {
	DailyData []DailyPoint `json:"dailyData"`
	Summary   DailySummary `json:"summary"`
}

type WeeklyPoint struct {
	Week    int   `json:"week"`
	Revenue int64 `json:"revenue"`
}

type MonthlyPoint struct {
	Year                    int    `json:"year"`
	Month                   string `json:"month"`
	TotalRevenue            int64  `json:"totalRevenue"`
	ComparedToPreviousMonth string `json:"comparedToPreviousMonth"`
}

type MonthlySummary struct {
	CurrentMonthRevenueFormatted   string `json:"currentMonthRevenueFormatted"`
	AverageMonthlyRevenueFormatted string `json:"averageMonthlyRevenueFormatted"`
}

type MonthlyRevenue struct {
	MonthlyData []MonthlyPoint `json:"monthlyData"`
	Summary     MonthlySummary `json:"summary"`
}

type YearlyPoint struct {
	Year    int   `json:"year"`
	Revenue int64 `json:"revenue"`
}
