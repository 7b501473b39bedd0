package handlers

import (
	"log"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"importmanager/services"
)

type sellCarRequest struct {
	SellPrice float64 `json:"sell_price"`
	DateSold  string  `json:"date_sold"`
	Buyer     string  `json:"buyer"`
}

func (r sellCarRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SellPrice, validation.Required, validation.Min(0.01)),
		validation.Field(&r.DateSold, validation.Required, validation.Date("2006-01-02")),
	)
}

// HandleInventorySell records the sale of an inventory car. The transition
// is one-way: selling an already-sold car is rejected.
func HandleInventorySell(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		car, err := app.FindRecordById("inventory_cars", id)
		if err != nil {
			log.Printf("inventory_sell: car %s not found: %v", id, err)
			return e.JSON(http.StatusNotFound, map[string]any{"error": "car not found"})
		}

		if car.GetString("status") == string(services.StatusSold) {
			return e.JSON(http.StatusConflict, map[string]any{"error": "car is already sold"})
		}

		var req sellCarRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}
		if err := req.Validate(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}

		dateSold, err := time.ParseInLocation("2006-01-02", req.DateSold, time.UTC)
		if err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid date_sold"})
		}

		car.Set("status", string(services.StatusSold))
		car.Set("sell_price", req.SellPrice)
		car.Set("date_sold", dateSold.Format("2006-01-02 15:04:05.000Z"))
		car.Set("buyer", req.Buyer)

		if err := app.Save(car); err != nil {
			log.Printf("inventory_sell: could not save car %s: %v", id, err)
			return e.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}

		// Build the settled snapshot so the caller sees the sale outcome
		// without a second request.
		expensesCol, err := app.FindCollectionByNameOrId("car_expenses")
		if err != nil {
			log.Printf("inventory_sell: could not find car_expenses: %v", err)
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
		profit := services.Profit(snapshot)

		resp := map[string]any{
			"id":               car.Id,
			"status":           string(services.StatusSold),
			"total_invested":   invested,
			"profit":           profit,
			"profit_formatted": services.FormatEUR(profit),
			"days_in_inventory": services.DaysInInventory(
				snapshot, time.Now().UTC(),
			),
		}
		if invested != 0 {
			resp["profit_percentage"] = profit / invested * 100
		}

		return e.JSON(http.StatusOK, resp)
	}
}
