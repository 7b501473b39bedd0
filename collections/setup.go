package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ExpenseCategories is the canonical list of expense categories used
// throughout the app.
var ExpenseCategories = []string{"transport", "taxes", "registration", "repairs", "maintenance", "other"}

// UserRoles is the canonical list of roles assignable to users.
var UserRoles = []string{"admin", "manager", "viewer"}

// Setup programmatically creates/ensures the imported_cars, domestic_cars,
// inventory_cars, car_expenses, donations and valuation_settings collections
// exist, and extends the users auth collection with a role field.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "imported_cars", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "brand", Required: true})
		c.Fields.Add(&core.TextField{Name: "model", Required: true})
		c.Fields.Add(&core.NumberField{Name: "year", Required: true})
		c.Fields.Add(&core.NumberField{Name: "base_price", Required: true, Min: floatPtr(0)})
		c.Fields.Add(&core.NumberField{Name: "transport_cost", Min: floatPtr(0)})
		c.Fields.Add(&core.NumberField{Name: "import_tax", Min: floatPtr(0)})
		c.Fields.Add(&core.NumberField{Name: "registration_cost", Min: floatPtr(0)})
		c.Fields.Add(&core.SelectField{
			Name:      "steering_side",
			Required:  true,
			Values:    []string{"left", "right"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.URLField{Name: "listing_url"})
		c.Fields.Add(&core.TextField{Name: "notes"})
		c.Fields.Add(&core.FileField{
			Name:      "photo",
			MaxSelect: 1,
			MaxSize:   5 << 20,
			MimeTypes: []string{"image/jpeg", "image/png", "image/webp"},
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "domestic_cars", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "brand", Required: true})
		c.Fields.Add(&core.TextField{Name: "model", Required: true})
		c.Fields.Add(&core.NumberField{Name: "year", Required: true})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true, Min: floatPtr(0)})
		c.Fields.Add(&core.URLField{Name: "listing_url"})
		c.Fields.Add(&core.TextField{Name: "notes"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	inventoryCars := ensureCollection(app, "inventory_cars", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "brand", Required: true})
		c.Fields.Add(&core.TextField{Name: "model", Required: true})
		c.Fields.Add(&core.NumberField{Name: "year", Required: true})
		c.Fields.Add(&core.NumberField{Name: "initial_price", Required: true, Min: floatPtr(0)})
		c.Fields.Add(&core.NumberField{Name: "initial_expenses", Min: floatPtr(0)})
		c.Fields.Add(&core.DateField{Name: "date_purchased", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"in_inventory", "sold"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "sell_price", Min: floatPtr(0)})
		c.Fields.Add(&core.DateField{Name: "date_sold"})
		c.Fields.Add(&core.TextField{Name: "buyer"})
		c.Fields.Add(&core.FileField{
			Name:      "photo",
			MaxSelect: 1,
			MaxSize:   5 << 20,
			MimeTypes: []string{"image/jpeg", "image/png", "image/webp"},
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "car_expenses", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "car",
			Required:      true,
			CollectionId:  inventoryCars.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "concept", Required: true})
		c.Fields.Add(&core.NumberField{Name: "amount", Required: true})
		c.Fields.Add(&core.DateField{Name: "date"})
		c.Fields.Add(&core.SelectField{
			Name:      "category",
			Required:  true,
			Values:    ExpenseCategories,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "donations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "donor_name"})
		c.Fields.Add(&core.EmailField{Name: "donor_email"})
		c.Fields.Add(&core.NumberField{Name: "amount", Required: true, Min: floatPtr(0)})
		c.Fields.Add(&core.TextField{Name: "currency", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"pending", "completed", "failed"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "payment_ref", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "valuation_settings", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "steering_adjustment", Required: true, Min: floatPtr(0)})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureUserRoleField(app)
}

// ensureUserRoleField extends the built-in users auth collection with a role
// select so handlers can gate admin operations.
func ensureUserRoleField(app *pocketbase.PocketBase) {
	users, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		log.Fatalf("Failed to find users collection: %v", err)
	}

	if users.Fields.GetByName("role") != nil {
		return
	}

	users.Fields.Add(&core.SelectField{
		Name:      "role",
		Values:    UserRoles,
		MaxSelect: 1,
	})

	if err := app.Save(users); err != nil {
		log.Fatalf("Failed to add role field to users: %v", err)
	}
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}

func floatPtr(v float64) *float64 {
	return &v
}
