package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// DefaultSteeringAdjustment is the market penalty (in euros) applied to the
// domestic comparison price for right-hand-drive imports. It only seeds the
// settings record; runtime reads go through SteeringAdjustment.
const DefaultSteeringAdjustment = 4000

// EnsureValuationSettings creates the singleton valuation_settings record if
// it is missing. Safe to call on every startup.
func EnsureValuationSettings(app *pocketbase.PocketBase) error {
	settingsCol, err := app.FindCollectionByNameOrId("valuation_settings")
	if err != nil {
		return fmt.Errorf("settings: could not find valuation_settings collection: %w", err)
	}

	existing, err := app.FindAllRecords(settingsCol)
	if err != nil {
		return fmt.Errorf("settings: could not query valuation_settings: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	record := core.NewRecord(settingsCol)
	record.Set("steering_adjustment", DefaultSteeringAdjustment)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("settings: could not create default valuation settings: %w", err)
	}
	return nil
}

// SteeringAdjustment reads the configured steering-side adjustment. When the
// settings record is missing it falls back to the default so valuations keep
// working.
func SteeringAdjustment(app *pocketbase.PocketBase) float64 {
	settingsCol, err := app.FindCollectionByNameOrId("valuation_settings")
	if err != nil {
		return DefaultSteeringAdjustment
	}

	records, err := app.FindAllRecords(settingsCol)
	if err != nil || len(records) == 0 {
		return DefaultSteeringAdjustment
	}

	return records[0].GetFloat("steering_adjustment")
}
