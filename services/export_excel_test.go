package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestGenerateInventoryExcel_Basic(t *testing.T) {
	result, err := GenerateInventoryExcel(reportFixture(t))
	if err != nil {
		t.Fatalf("GenerateInventoryExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateInventoryExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("generated file is not a readable workbook: %v", err)
	}
	defer f.Close()

	if f.GetSheetName(0) != "Inventory" {
		t.Errorf("sheet name = %q, want Inventory", f.GetSheetName(0))
	}

	title, err := f.GetCellValue("Inventory", "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if title != "Inventory Report" {
		t.Errorf("A1 = %q, want Inventory Report", title)
	}

	vehicle, _ := f.GetCellValue("Inventory", "A5")
	if vehicle != "Toyota Corolla (2018)" {
		t.Errorf("A5 = %q, want first car", vehicle)
	}
}

func TestGenerateInventoryExcel_Empty(t *testing.T) {
	data := BuildReportData(nil, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	result, err := GenerateInventoryExcel(data)
	if err != nil {
		t.Fatalf("GenerateInventoryExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateInventoryExcel() returned empty bytes")
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"plain text", "Toyota Corolla", "Toyota Corolla"},
		{"empty", "", ""},
		{"formula equals", "=SUM(A1)", "'=SUM(A1)"},
		{"formula plus", "+1+1", "'+1+1"},
		{"formula minus", "-cmd", "'-cmd"},
		{"formula at", "@foo", "'@foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeExcelCell(tt.input)
			if got != tt.expect {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
