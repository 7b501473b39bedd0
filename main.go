package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"importmanager/collections"
	"importmanager/handlers"
	"importmanager/payments"
)

func main() {
	app := pocketbase.New()

	collections.RegisterHooks(app)

	paymentBase := os.Getenv("PAYMENT_BASE_URL")
	if paymentBase == "" {
		paymentBase = "https://pay.example.com"
	}
	provider := payments.StaticProvider{BaseURL: paymentBase}

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.EnsureValuationSettings(app); err != nil {
			log.Printf("Warning: valuation settings migration failed: %v", err)
		}
		return se.Next()
	})

	// Serve static files from ./static
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Dashboard ────────────────────────────────────────────
		se.Router.GET("/dashboard", handlers.HandleDashboard(app))
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/dashboard")
		})

		// ── Valuation ────────────────────────────────────────────
		se.Router.POST("/api/valuation/preview", handlers.HandleValuationPreview(app))
		se.Router.GET("/api/valuation/compare/{importedId}/{domesticId}", handlers.HandleValuationCompare(app))

		// ── Portfolio ────────────────────────────────────────────
		se.Router.GET("/api/portfolio/stats", handlers.HandlePortfolioStats(app))
		se.Router.GET("/api/portfolio/report.pdf", handlers.HandlePortfolioReportPDF(app))
		se.Router.GET("/api/portfolio/export.xlsx", handlers.HandleInventoryExportExcel(app))

		// ── Inventory lifecycle ──────────────────────────────────
		se.Router.POST("/api/inventory/{id}/sell", handlers.HandleInventorySell(app)).
			BindFunc(handlers.RequireRole("admin", "manager"))
		se.Router.POST("/api/inventory/{id}/expenses", handlers.HandleExpenseAdd(app)).
			BindFunc(handlers.RequireRole("admin", "manager"))
		se.Router.DELETE("/api/inventory/{id}/expenses/{expenseId}", handlers.HandleExpenseDelete(app)).
			BindFunc(handlers.RequireRole("admin", "manager"))

		// ── Donations ────────────────────────────────────────────
		se.Router.POST("/api/donations/checkout", handlers.HandleDonationCheckout(app, provider))
		se.Router.POST("/api/donations/{reference}/complete", handlers.HandleDonationComplete(app))

		// ── Administration ───────────────────────────────────────
		se.Router.POST("/api/admin/users/{id}/role", handlers.HandleSetUserRole(app)).
			BindFunc(handlers.RequireRole("admin"))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
