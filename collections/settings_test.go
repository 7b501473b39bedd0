package collections_test

import (
	"testing"

	"importmanager/collections"
	"importmanager/testhelpers"
)

func TestEnsureValuationSettings_CreatesSingleton(t *testing.T) {
	app := testhelpers.NewTestApp(t) // NewTestApp already ensures settings

	col, err := app.FindCollectionByNameOrId("valuation_settings")
	if err != nil {
		t.Fatalf("valuation_settings not found: %v", err)
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		t.Fatalf("query valuation_settings: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 settings record, got %d", len(records))
	}
	if got := records[0].GetFloat("steering_adjustment"); got != collections.DefaultSteeringAdjustment {
		t.Errorf("steering_adjustment = %v, want %v", got, collections.DefaultSteeringAdjustment)
	}

	// calling again must not create a second record
	if err := collections.EnsureValuationSettings(app); err != nil {
		t.Fatalf("EnsureValuationSettings() error = %v", err)
	}
	records, _ = app.FindAllRecords(col)
	if len(records) != 1 {
		t.Errorf("expected settings to stay a singleton, got %d records", len(records))
	}
}

func TestSteeringAdjustment_ReadsConfiguredValue(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, _ := app.FindCollectionByNameOrId("valuation_settings")
	records, _ := app.FindAllRecords(col)
	records[0].Set("steering_adjustment", 3500)
	if err := app.Save(records[0]); err != nil {
		t.Fatalf("failed to update settings: %v", err)
	}

	if got := collections.SteeringAdjustment(app); got != 3500 {
		t.Errorf("SteeringAdjustment() = %v, want 3500", got)
	}
}
