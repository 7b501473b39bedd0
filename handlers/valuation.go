package handlers

import (
	"errors"
	"log"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"importmanager/collections"
	"importmanager/services"
)

type valuationPreviewRequest struct {
	BasePrice          float64  `json:"base_price"`
	TotalExpenses      float64  `json:"total_expenses"`
	SteeringSide       string   `json:"steering_side"`
	DomesticPrice      float64  `json:"domestic_price"`
	SteeringAdjustment *float64 `json:"steering_adjustment"`
}

func (r valuationPreviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BasePrice, validation.Min(0.0)),
		validation.Field(&r.TotalExpenses, validation.Min(0.0)),
		validation.Field(&r.DomesticPrice, validation.Min(0.0)),
		validation.Field(&r.SteeringSide, validation.Required, validation.In("left", "right")),
		validation.Field(&r.SteeringAdjustment, validation.Min(0.0)),
	)
}

type valuationResponse struct {
	Difference                float64       `json:"difference"`
	DifferenceFormatted       string        `json:"difference_formatted"`
	ProfitPercentage          float64       `json:"profit_percentage"`
	ProfitPercentageFormatted string        `json:"profit_percentage_formatted"`
	Tier                      services.Tier `json:"tier"`
	SteeringAdjustment        float64       `json:"steering_adjustment"`
}

func newValuationResponse(result services.ValuationResult, adjustment float64) valuationResponse {
	return valuationResponse{
		Difference:                result.Difference,
		DifferenceFormatted:       services.FormatEUR(result.Difference),
		ProfitPercentage:          result.ProfitPercentage,
		ProfitPercentageFormatted: services.FormatPercent(result.ProfitPercentage),
		Tier:                      result.Tier,
		SteeringAdjustment:        adjustment,
	}
}

// HandleValuationPreview classifies a hypothetical import/domestic pairing
// from raw numbers, without touching stored listings.
func HandleValuationPreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req valuationPreviewRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		}
		if err := req.Validate(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}

		adjustment := collections.SteeringAdjustment(app)
		if req.SteeringAdjustment != nil {
			adjustment = *req.SteeringAdjustment
		}

		result, err := services.Classify(
			services.ImportedVehicleCost{
				BasePrice:     req.BasePrice,
				TotalExpenses: req.TotalExpenses,
				SteeringSide:  services.SteeringSide(req.SteeringSide),
			},
			services.DomesticReferencePrice{Price: req.DomesticPrice},
			adjustment,
		)
		if err != nil {
			if errors.Is(err, services.ErrZeroImportedTotal) {
				return e.JSON(http.StatusUnprocessableEntity, map[string]any{"error": err.Error()})
			}
			log.Printf("valuation_preview: classify failed: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "classification failed"})
		}

		return e.JSON(http.StatusOK, newValuationResponse(result, adjustment))
	}
}

// HandleValuationCompare classifies a stored imported car against a stored
// domestic reference listing.
func HandleValuationCompare(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		importedID := e.Request.PathValue("importedId")
		domesticID := e.Request.PathValue("domesticId")

		imported, err := app.FindRecordById("imported_cars", importedID)
		if err != nil {
			log.Printf("valuation_compare: imported car %s not found: %v", importedID, err)
			return e.JSON(http.StatusNotFound, map[string]any{"error": "imported car not found"})
		}
		domestic, err := app.FindRecordById("domestic_cars", domesticID)
		if err != nil {
			log.Printf("valuation_compare: domestic car %s not found: %v", domesticID, err)
			return e.JSON(http.StatusNotFound, map[string]any{"error": "domestic car not found"})
		}

		cost := recordToImportedCost(imported)
		adjustment := collections.SteeringAdjustment(app)

		result, err := services.Classify(
			cost,
			services.DomesticReferencePrice{Price: domestic.GetFloat("price")},
			adjustment,
		)
		if err != nil {
			if errors.Is(err, services.ErrZeroImportedTotal) {
				return e.JSON(http.StatusUnprocessableEntity, map[string]any{"error": err.Error()})
			}
			log.Printf("valuation_compare: classify failed: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]any{"error": "classification failed"})
		}

		resp := newValuationResponse(result, adjustment)
		return e.JSON(http.StatusOK, map[string]any{
			"imported": map[string]any{
				"id":             imported.Id,
				"brand":          imported.GetString("brand"),
				"model":          imported.GetString("model"),
				"year":           imported.GetInt("year"),
				"imported_total": cost.ImportedTotal(),
			},
			"domestic": map[string]any{
				"id":    domestic.Id,
				"brand": domestic.GetString("brand"),
				"model": domestic.GetString("model"),
				"year":  domestic.GetInt("year"),
				"price": domestic.GetFloat("price"),
			},
			"valuation": resp,
		})
	}
}
