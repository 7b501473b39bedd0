package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"importmanager/services"
)

// HandlePortfolioStats aggregates the full inventory into portfolio
// statistics. Data-integrity warnings ride along in the response instead of
// failing it, so one bad record never hides the rest of the portfolio.
func HandlePortfolioStats(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cars, err := loadInventoryCars(app)
		if err != nil {
			log.Printf("portfolio_stats: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "could not load inventory"})
		}

		stats, warnings := services.Aggregate(cars, time.Now().UTC())

		return e.JSON(http.StatusOK, map[string]any{
			"stats":    stats,
			"warnings": warnings,
			"formatted": map[string]string{
				"total_profit":      services.FormatEUR(stats.TotalProfit),
				"avg_profitability": services.FormatPercent(stats.AvgProfitability),
				"total_investment":  services.FormatEUR(stats.TotalInvestment),
			},
		})
	}
}
