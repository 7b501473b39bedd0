package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// RegisterHooks wires the inventory lifecycle rules into the app's record
// hooks so they hold for both the custom routes and PocketBase's generated
// CRUD API:
//
//   - a sold car never returns to inventory
//   - a car sold (created or updated) requires a sell price and a sale date
//   - date_purchased is immutable after creation
func RegisterHooks(app *pocketbase.PocketBase) {
	app.OnRecordCreate("inventory_cars").BindFunc(func(e *core.RecordEvent) error {
		if err := checkSaleFields(e.Record); err != nil {
			return err
		}
		return e.Next()
	})

	app.OnRecordUpdate("inventory_cars").BindFunc(func(e *core.RecordEvent) error {
		old := e.Record.Original()

		oldStatus := old.GetString("status")
		newStatus := e.Record.GetString("status")

		if oldStatus == "sold" && newStatus != "sold" {
			return fmt.Errorf("car %s is sold and cannot return to inventory", e.Record.Id)
		}

		if err := checkSaleFields(e.Record); err != nil {
			return err
		}

		oldPurchased := old.GetDateTime("date_purchased")
		newPurchased := e.Record.GetDateTime("date_purchased")
		if !oldPurchased.IsZero() && !newPurchased.Time().Equal(oldPurchased.Time()) {
			return fmt.Errorf("car %s: date_purchased is immutable", e.Record.Id)
		}

		return e.Next()
	})
}

// checkSaleFields rejects a sold car without a positive sell price and a
// sale date.
func checkSaleFields(rec *core.Record) error {
	if rec.GetString("status") != "sold" {
		return nil
	}
	if rec.GetFloat("sell_price") <= 0 {
		return fmt.Errorf("car %s cannot be marked sold without a sell price", rec.Id)
	}
	if rec.GetDateTime("date_sold").IsZero() {
		return fmt.Errorf("car %s cannot be marked sold without a sale date", rec.Id)
	}
	return nil
}
