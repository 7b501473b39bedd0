package handlers

import (
	"log"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"importmanager/collections"
	"importmanager/services"
)

type addExpenseRequest struct {
	Concept  string  `json:"concept"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
}

func (r addExpenseRequest) Validate() error {
	categories := make([]any, 0, len(collections.ExpenseCategories))
	for _, c := range collections.ExpenseCategories {
		categories = append(categories, c)
	}

	return validation.ValidateStruct(&r,
		validation.Field(&r.Concept, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Amount, validation.Required),
		validation.Field(&r.Date, validation.Date("2006-01-02")),
		validation.Field(&r.Category, validation.Required, validation.In(categories...)),
	)
}

// HandleExpenseAdd attaches an itemized expense to an inventory car and
// returns the car's updated investment total.
func HandleExpenseAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		car, err := app.FindRecordById("inventory_cars", id)
		if err != nil {
			log.Printf("expense_add: car %s not found: %v", id, err)
			return e.JSON(http.StatusNotFound, map[string]any{"error": "car not found"})
		}

		var req addExpenseRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}
		if err := req.Validate(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}

		expensesCol, err := app.FindCollectionByNameOrId("car_expenses")
		if err != nil {
			log.Printf("expense_add: could not find car_expenses: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "could not save expense"})
		}

		expense := core.NewRecord(expensesCol)
		expense.Set("car", car.Id)
		expense.Set("concept", req.Concept)
		expense.Set("amount", req.Amount)
		expense.Set("category", req.Category)
		if req.Date != "" {
			expense.Set("date", req.Date+" 00:00:00.000Z")
		} else {
			expense.Set("date", time.Now().UTC().Format("2006-01-02 15:04:05.000Z"))
		}

		if err := app.Save(expense); err != nil {
			log.Printf("expense_add: could not save expense for car %s: %v", id, err)
			return e.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}

		return respondExpenseChange(e, app, car, http.StatusCreated, expense.Id)
	}
}

// HandleExpenseDelete removes a single itemized expense from a car.
func HandleExpenseDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		expenseID := e.Request.PathValue("expenseId")

		car, err := app.FindRecordById("inventory_cars", id)
		if err != nil {
			log.Printf("expense_delete: car %s not found: %v", id, err)
			return e.JSON(http.StatusNotFound, map[string]any{"error": "car not found"})
		}

		expense, err := app.FindRecordById("car_expenses", expenseID)
		if err != nil {
			log.Printf("expense_delete: expense %s not found: %v", expenseID, err)
			return e.JSON(http.StatusNotFound, map[string]any{"error": "expense not found"})
		}
		if expense.GetString("car") != car.Id {
			log.Printf("expense_delete: expense %s does not belong to car %s", expenseID, id)
			return e.JSON(http.StatusNotFound, map[string]any{"error": "expense not found"})
		}

		if err := app.Delete(expense); err != nil {
			log.Printf("expense_delete: could not delete expense %s: %v", expenseID, err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "could not delete expense"})
		}

		return respondExpenseChange(e, app, car, http.StatusOK, expenseID)
	}
}

// respondExpenseChange recomputes the car's investment total after an
// expense mutation.
func respondExpenseChange(e *core.RequestEvent, app *pocketbase.PocketBase, car *core.Record, status int, expenseID string) error {
	expensesCol, err := app.FindCollectionByNameOrId("car_expenses")
	if err != nil {
		log.Printf("expenses: could not find car_expenses: %v", err)
		return e.JSON(http.StatusInternalServerError, map[string]any{"error": "could not load expenses"})
	}
	expenses, err := app.FindRecordsByFilter(
		expensesCol,
		"car = {:carId}",
		"", 0, 0,
		map[string]any{"carId": car.Id},
	)
	if err != nil {
		expenses = nil
	}

	snapshot := recordToInventoryCar(car, expenses)
	invested := services.TotalInvested(snapshot)

	return e.JSON(status, map[string]any{
		"car_id":                   car.Id,
		"expense_id":               expenseID,
		"expense_count":            len(expenses),
		"total_invested":           invested,
		"total_invested_formatted": services.FormatEUR(invested),
	})
}
