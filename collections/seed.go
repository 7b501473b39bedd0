package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type importedCarDef struct {
	brand            string
	model            string
	year             int
	basePrice        float64
	transportCost    float64
	importTax        float64
	registrationCost float64
	steeringSide     string
	notes            string
}

type domesticCarDef struct {
	brand string
	model string
	year  int
	price float64
	notes string
}

type expenseDef struct {
	concept  string
	amount   float64
	date     string
	category string
}

type inventoryCarDef struct {
	brand           string
	model           string
	year            int
	initialPrice    float64
	initialExpenses float64
	datePurchased   string
	status          string
	sellPrice       float64
	dateSold        string
	buyer           string
	expenses        []expenseDef
}

// ── Seed data ────────────────────────────────────────────────────────────

var seedImportedCars = []importedCarDef{
	{
		brand: "Toyota", model: "Land Cruiser", year: 2019,
		basePrice: 28000, transportCost: 1800, importTax: 3100, registrationCost: 450,
		steeringSide: "right",
		notes:        "UK auction, full service history",
	},
	{
		brand: "BMW", model: "320d Touring", year: 2020,
		basePrice: 17500, transportCost: 900, importTax: 2200, registrationCost: 380,
		steeringSide: "left",
		notes:        "German lease return",
	},
	{
		brand: "Honda", model: "Jazz", year: 2018,
		basePrice: 6500, transportCost: 1100, importTax: 900, registrationCost: 300,
		steeringSide: "right",
		notes:        "Japan import, low mileage",
	},
}

var seedDomesticCars = []domesticCarDef{
	{brand: "Toyota", model: "Land Cruiser", year: 2019, price: 41500, notes: "dealer listing"},
	{brand: "BMW", model: "320d Touring", year: 2020, price: 24900, notes: "private sale"},
	{brand: "Honda", model: "Jazz", year: 2018, price: 10400, notes: "dealer listing"},
}

var seedInventoryCars = []inventoryCarDef{
	{
		brand: "Mazda", model: "MX-5", year: 2016,
		initialPrice: 9200, initialExpenses: 650,
		datePurchased: "2025-10-04 00:00:00.000Z",
		status:        "sold",
		sellPrice:     12400, dateSold: "2025-11-18 00:00:00.000Z",
		buyer: "A. Ferreira",
		expenses: []expenseDef{
			{concept: "New soft top", amount: 420, date: "2025-10-12 00:00:00.000Z", category: "repairs"},
			{concept: "Registration", amount: 180, date: "2025-10-20 00:00:00.000Z", category: "registration"},
		},
	},
	{
		brand: "Volkswagen", model: "Golf GTI", year: 2019,
		initialPrice: 16800, initialExpenses: 1200,
		datePurchased: "2026-01-10 00:00:00.000Z",
		status:        "in_inventory",
		expenses: []expenseDef{
			{concept: "Transport from port", amount: 350, date: "2026-01-12 00:00:00.000Z", category: "transport"},
			{concept: "Brake pads", amount: 240, date: "2026-01-25 00:00:00.000Z", category: "maintenance"},
		},
	},
	{
		brand: "Nissan", model: "Qashqai", year: 2017,
		initialPrice: 8900, initialExpenses: 700,
		datePurchased: "2026-02-02 00:00:00.000Z",
		status:        "in_inventory",
	},
}

// Seed inserts demo records so a fresh install has something to show. It is
// idempotent: if any inventory cars exist, nothing is inserted.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if inventory cars already exist ────────────
	inventoryCol, err := app.FindCollectionByNameOrId("inventory_cars")
	if err != nil {
		return fmt.Errorf("seed: could not find inventory_cars collection: %w", err)
	}
	existing, err := app.FindAllRecords(inventoryCol)
	if err != nil {
		return fmt.Errorf("seed: could not query inventory_cars: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: inventory is empty – inserting seed data …")

	// ── lookup helper collections ────────────────────────────────────
	importedCol, err := app.FindCollectionByNameOrId("imported_cars")
	if err != nil {
		return fmt.Errorf("seed: could not find imported_cars collection: %w", err)
	}
	domesticCol, err := app.FindCollectionByNameOrId("domestic_cars")
	if err != nil {
		return fmt.Errorf("seed: could not find domestic_cars collection: %w", err)
	}
	expensesCol, err := app.FindCollectionByNameOrId("car_expenses")
	if err != nil {
		return fmt.Errorf("seed: could not find car_expenses collection: %w", err)
	}

	for _, def := range seedImportedCars {
		record := core.NewRecord(importedCol)
		record.Set("brand", def.brand)
		record.Set("model", def.model)
		record.Set("year", def.year)
		record.Set("base_price", def.basePrice)
		record.Set("transport_cost", def.transportCost)
		record.Set("import_tax", def.importTax)
		record.Set("registration_cost", def.registrationCost)
		record.Set("steering_side", def.steeringSide)
		record.Set("notes", def.notes)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not create imported car %s %s: %w", def.brand, def.model, err)
		}
	}

	for _, def := range seedDomesticCars {
		record := core.NewRecord(domesticCol)
		record.Set("brand", def.brand)
		record.Set("model", def.model)
		record.Set("year", def.year)
		record.Set("price", def.price)
		record.Set("notes", def.notes)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not create domestic car %s %s: %w", def.brand, def.model, err)
		}
	}

	for _, def := range seedInventoryCars {
		record := core.NewRecord(inventoryCol)
		record.Set("brand", def.brand)
		record.Set("model", def.model)
		record.Set("year", def.year)
		record.Set("initial_price", def.initialPrice)
		record.Set("initial_expenses", def.initialExpenses)
		record.Set("date_purchased", def.datePurchased)
		record.Set("status", def.status)
		if def.status == "sold" {
			record.Set("sell_price", def.sellPrice)
			record.Set("date_sold", def.dateSold)
			record.Set("buyer", def.buyer)
		}
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not create inventory car %s %s: %w", def.brand, def.model, err)
		}

		for _, exp := range def.expenses {
			expRecord := core.NewRecord(expensesCol)
			expRecord.Set("car", record.Id)
			expRecord.Set("concept", exp.concept)
			expRecord.Set("amount", exp.amount)
			expRecord.Set("date", exp.date)
			expRecord.Set("category", exp.category)
			if err := app.Save(expRecord); err != nil {
				return fmt.Errorf("seed: could not create expense %q: %w", exp.concept, err)
			}
		}
	}

	if err := EnsureValuationSettings(app); err != nil {
		return err
	}

	log.Println("seed: done")
	return nil
}
