// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"importmanager/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app, runs collections.Setup to create all tables and
// registers the inventory lifecycle hooks. The temporary directory is
// cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)
	collections.RegisterHooks(app)

	if err := collections.EnsureValuationSettings(app); err != nil {
		t.Fatalf("failed to ensure valuation settings: %v", err)
	}

	return app
}

// CreateTestImportedCar creates an imported car record and returns it.
func CreateTestImportedCar(t *testing.T, app *pocketbase.PocketBase, brand, model string, basePrice float64, steeringSide string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("imported_cars")
	if err != nil {
		t.Fatalf("failed to find imported_cars collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("brand", brand)
	record.Set("model", model)
	record.Set("year", 2019)
	record.Set("base_price", basePrice)
	record.Set("transport_cost", 1000)
	record.Set("import_tax", 800)
	record.Set("registration_cost", 200)
	record.Set("steering_side", steeringSide)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test imported car: %v", err)
	}

	return record
}

// CreateTestDomesticCar creates a domestic reference car record and returns it.
func CreateTestDomesticCar(t *testing.T, app *pocketbase.PocketBase, brand, model string, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("domestic_cars")
	if err != nil {
		t.Fatalf("failed to find domestic_cars collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("brand", brand)
	record.Set("model", model)
	record.Set("year", 2019)
	record.Set("price", price)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test domestic car: %v", err)
	}

	return record
}

// CreateTestInventoryCar creates an in-inventory car purchased the given
// number of days ago and returns it.
func CreateTestInventoryCar(t *testing.T, app *pocketbase.PocketBase, brand, model string, initialPrice float64, daysAgo int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("inventory_cars")
	if err != nil {
		t.Fatalf("failed to find inventory_cars collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("brand", brand)
	record.Set("model", model)
	record.Set("year", 2018)
	record.Set("initial_price", initialPrice)
	record.Set("initial_expenses", 0)
	record.Set("date_purchased", time.Now().UTC().AddDate(0, 0, -daysAgo).Format("2006-01-02 15:04:05.000Z"))
	record.Set("status", "in_inventory")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test inventory car: %v", err)
	}

	return record
}

// MarkCarSold flips an inventory car to sold with the given sale outcome.
func MarkCarSold(t *testing.T, app *pocketbase.PocketBase, car *core.Record, sellPrice float64, dateSold time.Time) {
	t.Helper()

	car.Set("status", "sold")
	car.Set("sell_price", sellPrice)
	car.Set("date_sold", dateSold.Format("2006-01-02 15:04:05.000Z"))

	if err := app.Save(car); err != nil {
		t.Fatalf("failed to mark test car sold: %v", err)
	}
}

// CreateTestExpense attaches an itemized expense to an inventory car.
func CreateTestExpense(t *testing.T, app *pocketbase.PocketBase, carID, concept string, amount float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("car_expenses")
	if err != nil {
		t.Fatalf("failed to find car_expenses collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("car", carID)
	record.Set("concept", concept)
	record.Set("amount", amount)
	record.Set("category", "other")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test expense: %v", err)
	}

	return record
}

// CreateTestUser creates an auth user with the given role and returns it.
func CreateTestUser(t *testing.T, app *pocketbase.PocketBase, email, role string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		t.Fatalf("failed to find users collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("email", email)
	record.Set("password", "test-password-123")
	record.Set("role", role)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test user: %v", err)
	}

	return record
}
