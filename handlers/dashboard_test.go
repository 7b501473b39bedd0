package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"importmanager/testhelpers"
)

func TestHandleDashboard_RendersStats(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	sold := testhelpers.CreateTestInventoryCar(t, app, "Mazda", "MX-5", 10000, 60)
	testhelpers.MarkCarSold(t, app, sold, 12000, time.Now().UTC().AddDate(0, 0, -30))
	testhelpers.CreateTestInventoryCar(t, app, "Nissan", "Qashqai", 9000, 10)

	handler := HandleDashboard(app)
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	html := rec.Body.String()
	for _, want := range []string{
		"Portfolio",
		"2.000,00 €", // total profit
		"Mazda MX-5",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("dashboard HTML missing %q", want)
		}
	}
}

func TestHandleDashboard_EmptyInventory(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleDashboard(app)
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200 for empty inventory, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<html") {
		t.Error("expected an HTML document")
	}
}
