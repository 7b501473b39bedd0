package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"importmanager/testhelpers"
)

func TestHandlePortfolioReportPDF_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	car := testhelpers.CreateTestInventoryCar(t, app, "Mazda", "MX-5", 10000, 45)
	testhelpers.MarkCarSold(t, app, car, 12500, time.Now().UTC().AddDate(0, 0, -5))

	handler := HandlePortfolioReportPDF(app)
	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/report.pdf", nil)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "attachment") || !strings.Contains(cd, ".pdf") {
		t.Errorf("unexpected disposition %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("body does not look like a PDF")
	}
}

func TestHandlePortfolioReportPDF_EmptyInventory(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandlePortfolioReportPDF(app)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/report.pdf", nil)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200 for empty inventory, got %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty PDF body")
	}
}

func TestHandleInventoryExportExcel_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestInventoryCar(t, app, "Nissan", "Qashqai", 9000, 10)

	handler := HandleInventoryExportExcel(app)
	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/export.xlsx", nil)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	ct := rec.Header().Get("Content-Type")
	if !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("expected Excel content type, got %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "attachment") || !strings.Contains(cd, ".xlsx") {
		t.Errorf("unexpected disposition %q", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty workbook body")
	}
}
