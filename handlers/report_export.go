package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"importmanager/services"
)

// HandlePortfolioReportPDF generates and downloads the inventory report PDF.
func HandlePortfolioReportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cars, err := loadInventoryCars(app)
		if err != nil {
			log.Printf("report_pdf: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "could not load inventory"})
		}

		now := time.Now().UTC()
		data := services.BuildReportData(cars, now)

		pdfBytes, err := services.GeneratePortfolioPDF(data)
		if err != nil {
			log.Printf("report_pdf: failed to generate PDF: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "could not generate report"})
		}

		filename := fmt.Sprintf("inventory-report-%s.pdf", now.Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleInventoryExportExcel generates and downloads the inventory workbook.
func HandleInventoryExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cars, err := loadInventoryCars(app)
		if err != nil {
			log.Printf("report_excel: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "could not load inventory"})
		}

		now := time.Now().UTC()
		data := services.BuildReportData(cars, now)

		xlsxBytes, err := services.GenerateInventoryExcel(data)
		if err != nil {
			log.Printf("report_excel: failed to generate workbook: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "could not generate export"})
		}

		filename := fmt.Sprintf("inventory-%s.xlsx", now.Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
