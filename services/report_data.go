package services

import (
	"fmt"
	"time"
)

// ReportRow is a single car in the portfolio report.
type ReportRow struct {
	Vehicle       string
	DatePurchased string
	StatusLabel   string
	DateSold      string // "—" while unsold
	TotalInvested float64
	SellPrice     float64
	Sold          bool
	Profit        float64
	ProfitPct     float64
	HasProfitPct  bool
	Days          int
}

// ReportHighlight is a rendered highlight line ("Fastest sale", car, value).
type ReportHighlight struct {
	Label   string
	Vehicle string
	Value   string
}

// ReportData holds everything the PDF and Excel generators need.
type ReportData struct {
	Title       string
	GeneratedAt string
	Rows        []ReportRow
	Stats       PortfolioStats
	Warnings    []Warning
	Highlights  []ReportHighlight
}

const reportDateLayout = "02 Jan 2006"

// VehicleLabel is the display name of a car, e.g. "Toyota Corolla (2018)".
func VehicleLabel(car InventoryCar) string {
	return fmt.Sprintf("%s %s (%d)", car.Brand, car.Model, car.Year)
}

// BuildReportData aggregates a snapshot of inventory cars into report rows,
// portfolio totals and highlight lines. Row order follows the input order.
func BuildReportData(cars []InventoryCar, now time.Time) ReportData {
	stats, warnings := Aggregate(cars, now)

	rows := make([]ReportRow, 0, len(cars))
	for _, car := range cars {
		row := ReportRow{
			Vehicle:       VehicleLabel(car),
			DatePurchased: car.DatePurchased.Format(reportDateLayout),
			StatusLabel:   "In inventory",
			DateSold:      "—",
			TotalInvested: TotalInvested(car),
			Days:          DaysInInventory(car, now),
		}

		if car.Status == StatusSold && car.SellPrice != nil && !car.DateSold.IsZero() {
			row.Sold = true
			row.StatusLabel = "Sold"
			row.DateSold = car.DateSold.Format(reportDateLayout)
			row.SellPrice = sanitizeAmount(*car.SellPrice)
			row.Profit = row.SellPrice - row.TotalInvested
			if row.TotalInvested != 0 {
				row.ProfitPct = row.Profit / row.TotalInvested * 100
				row.HasProfitPct = true
			}
		}

		rows = append(rows, row)
	}

	var highlights []ReportHighlight
	if h := stats.Highlights.MostProfitable; h != nil {
		highlights = append(highlights, ReportHighlight{
			Label:   "Most profitable",
			Vehicle: VehicleLabel(*h),
			Value:   FormatPercent(Profit(*h) / TotalInvested(*h) * 100),
		})
	}
	if h := stats.Highlights.BestAbsoluteProfit; h != nil {
		highlights = append(highlights, ReportHighlight{
			Label:   "Best absolute profit",
			Vehicle: VehicleLabel(*h),
			Value:   FormatEUR(Profit(*h)),
		})
	}
	if h := stats.Highlights.FastestSale; h != nil {
		highlights = append(highlights, ReportHighlight{
			Label:   "Fastest sale",
			Vehicle: VehicleLabel(*h),
			Value:   fmt.Sprintf("%d days", DaysInInventory(*h, now)),
		})
	}

	return ReportData{
		Title:       "Inventory Report",
		GeneratedAt: now.Format(reportDateLayout),
		Rows:        rows,
		Stats:       stats,
		Warnings:    warnings,
		Highlights:  highlights,
	}
}
