package collections_test

import (
	"testing"

	"importmanager/collections"
	"importmanager/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"imported_cars",
	"domestic_cars",
	"inventory_cars",
	"car_expenses",
	"donations",
	"valuation_settings",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	// Collect IDs from first run
	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	// Run Setup() again
	collections.Setup(app)

	// IDs should not change
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q was recreated: id %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_UsersRoleField(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	users, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		t.Fatalf("users collection not found: %v", err)
	}

	field := users.Fields.GetByName("role")
	if field == nil {
		t.Fatal("users collection is missing the role field")
	}
	sel, ok := field.(*core.SelectField)
	if !ok {
		t.Fatalf("role field is %T, want *core.SelectField", field)
	}
	if len(sel.Values) != len(collections.UserRoles) {
		t.Errorf("role values = %v, want %v", sel.Values, collections.UserRoles)
	}
}

func TestSetup_ExpenseCascadeDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	car := testhelpers.CreateTestInventoryCar(t, app, "Seat", "Leon", 7000, 10)
	exp := testhelpers.CreateTestExpense(t, app, car.Id, "tires", 300)

	if err := app.Delete(car); err != nil {
		t.Fatalf("failed to delete car: %v", err)
	}

	if _, err := app.FindRecordById("car_expenses", exp.Id); err == nil {
		t.Error("expense should be cascade-deleted with its car")
	}
}
