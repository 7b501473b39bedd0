package services

import (
	"testing"
	"time"
)

func reportFixture(t *testing.T) ReportData {
	t.Helper()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cars := []InventoryCar{
		soldCar("a", 10000, 12000, 15),
		soldCar("b", 15000, 15500, 40),
		{
			ID:            "c",
			Brand:         "Mazda",
			Model:         "MX-5",
			Year:          2016,
			InitialPrice:  9000,
			DatePurchased: now.AddDate(0, 0, -20),
			Status:        StatusInInventory,
		},
	}
	return BuildReportData(cars, now)
}

func TestGeneratePortfolioPDF_Basic(t *testing.T) {
	result, err := GeneratePortfolioPDF(reportFixture(t))
	if err != nil {
		t.Fatalf("GeneratePortfolioPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePortfolioPDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGeneratePortfolioPDF_EmptyPortfolio(t *testing.T) {
	data := BuildReportData(nil, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	result, err := GeneratePortfolioPDF(data)
	if err != nil {
		t.Fatalf("GeneratePortfolioPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePortfolioPDF() returned empty bytes")
	}
}

func TestGeneratePortfolioPDF_WithWarnings(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cars := []InventoryCar{
		{
			ID:            "broken",
			Brand:         "Honda",
			Model:         "Civic",
			Year:          2019,
			DatePurchased: now.AddDate(0, 0, -10),
			Status:        StatusSold,
		},
	}

	result, err := GeneratePortfolioPDF(BuildReportData(cars, now))
	if err != nil {
		t.Fatalf("GeneratePortfolioPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePortfolioPDF() returned empty bytes")
	}
}
