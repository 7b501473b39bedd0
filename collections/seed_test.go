package collections_test

import (
	"testing"

	"importmanager/collections"
	"importmanager/testhelpers"
)

func TestSeed_PopulatesEmptyDatabase(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	counts := map[string]int{
		"imported_cars":  3,
		"domestic_cars":  3,
		"inventory_cars": 3,
	}
	for name, want := range counts {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Fatalf("collection %q not found: %v", name, err)
		}
		records, err := app.FindAllRecords(col)
		if err != nil {
			t.Fatalf("query %q: %v", name, err)
		}
		if len(records) != want {
			t.Errorf("%s: got %d records, want %d", name, len(records), want)
		}
	}

	// the sold seed car carries its expenses
	expensesCol, _ := app.FindCollectionByNameOrId("car_expenses")
	expenses, err := app.FindAllRecords(expensesCol)
	if err != nil {
		t.Fatalf("query car_expenses: %v", err)
	}
	if len(expenses) == 0 {
		t.Error("expected seeded car expenses")
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error = %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}

	col, _ := app.FindCollectionByNameOrId("inventory_cars")
	records, err := app.FindAllRecords(col)
	if err != nil {
		t.Fatalf("query inventory_cars: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("inventory_cars after double seed = %d, want 3", len(records))
	}
}

func TestSeed_SkipsNonEmptyDatabase(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestInventoryCar(t, app, "Opel", "Corsa", 4000, 5)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	col, _ := app.FindCollectionByNameOrId("inventory_cars")
	records, err := app.FindAllRecords(col)
	if err != nil {
		t.Fatalf("query inventory_cars: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected seed to skip populated database, got %d records", len(records))
	}
}
