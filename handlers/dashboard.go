package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"importmanager/services"
	"importmanager/templates"
)

// HandleDashboard renders the server-side portfolio summary page.
func HandleDashboard(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cars, err := loadInventoryCars(app)
		if err != nil {
			log.Printf("dashboard: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		now := time.Now().UTC()
		report := services.BuildReportData(cars, now)

		data := templates.DashboardData{
			TotalSold:          report.Stats.TotalSold,
			TotalProfit:        services.FormatEUR(report.Stats.TotalProfit),
			AvgProfitability:   services.FormatPercent(report.Stats.AvgProfitability),
			TotalInvestment:    services.FormatEUR(report.Stats.TotalInvestment),
			CarsInInventory:    report.Stats.CarsInInventory,
			AvgDaysInInventory: report.Stats.AvgDaysInInventory,
			GeneratedAt:        report.GeneratedAt,
		}

		for _, h := range report.Highlights {
			data.Highlights = append(data.Highlights, templates.DashboardHighlight{
				Label:   h.Label,
				Vehicle: h.Vehicle,
				Value:   h.Value,
			})
		}
		for _, w := range report.Warnings {
			data.Warnings = append(data.Warnings, fmt.Sprintf("Car %s: %s", w.CarID, w.Detail))
		}

		component := templates.DashboardPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}
