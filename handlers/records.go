package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"

	"importmanager/services"
)

// recordToInventoryCar converts a PocketBase record (plus its expense
// records) into the immutable snapshot the services package consumes.
// Numeric fields go through cast so a malformed stored value degrades to 0
// instead of aborting a portfolio-wide computation.
func recordToInventoryCar(rec *core.Record, expenses []*core.Record) services.InventoryCar {
	car := services.InventoryCar{
		ID:              rec.Id,
		Brand:           rec.GetString("brand"),
		Model:           rec.GetString("model"),
		Year:            rec.GetInt("year"),
		InitialPrice:    cast.ToFloat64(rec.Get("initial_price")),
		InitialExpenses: cast.ToFloat64(rec.Get("initial_expenses")),
		DatePurchased:   rec.GetDateTime("date_purchased").Time(),
		Status:          services.CarStatus(rec.GetString("status")),
		Buyer:           rec.GetString("buyer"),
	}

	for _, exp := range expenses {
		car.Expenses = append(car.Expenses, services.CarExpense{
			ID:       exp.Id,
			Concept:  exp.GetString("concept"),
			Amount:   cast.ToFloat64(exp.Get("amount")),
			Date:     exp.GetDateTime("date").Time(),
			Category: exp.GetString("category"),
		})
	}

	if car.Status == services.StatusSold {
		// An absent sell_price comes back as 0, not nil. A legitimate sale
		// can never be 0 (the lifecycle hook requires a positive price), so
		// a non-positive value means missing and the pointer stays nil for
		// the aggregator to flag.
		if price := cast.ToFloat64(rec.Get("sell_price")); price > 0 {
			car.SellPrice = &price
		}
		car.DateSold = rec.GetDateTime("date_sold").Time()
	}

	return car
}

// loadInventoryCars fetches every inventory car with its itemized expenses
// attached, in stored order.
func loadInventoryCars(app *pocketbase.PocketBase) ([]services.InventoryCar, error) {
	carsCol, err := app.FindCollectionByNameOrId("inventory_cars")
	if err != nil {
		return nil, fmt.Errorf("could not find inventory_cars collection: %w", err)
	}
	records, err := app.FindAllRecords(carsCol)
	if err != nil {
		return nil, fmt.Errorf("could not query inventory_cars: %w", err)
	}

	expensesCol, err := app.FindCollectionByNameOrId("car_expenses")
	if err != nil {
		return nil, fmt.Errorf("could not find car_expenses collection: %w", err)
	}
	expenseRecords, err := app.FindAllRecords(expensesCol)
	if err != nil {
		return nil, fmt.Errorf("could not query car_expenses: %w", err)
	}

	expensesByCar := make(map[string][]*core.Record)
	for _, exp := range expenseRecords {
		carID := exp.GetString("car")
		expensesByCar[carID] = append(expensesByCar[carID], exp)
	}

	cars := make([]services.InventoryCar, 0, len(records))
	for _, rec := range records {
		cars = append(cars, recordToInventoryCar(rec, expensesByCar[rec.Id]))
	}
	return cars, nil
}

// recordToImportedCost maps an imported car record to the classifier's cost
// input. Transport, tax and registration make up the import expenses.
func recordToImportedCost(rec *core.Record) services.ImportedVehicleCost {
	return services.ImportedVehicleCost{
		BasePrice: cast.ToFloat64(rec.Get("base_price")),
		TotalExpenses: cast.ToFloat64(rec.Get("transport_cost")) +
			cast.ToFloat64(rec.Get("import_tax")) +
			cast.ToFloat64(rec.Get("registration_cost")),
		SteeringSide: services.SteeringSide(rec.GetString("steering_side")),
	}
}
