// Package services provides the valuation and portfolio calculations for the
// car import business.
package services

import "errors"

// SteeringSide is the side the steering wheel sits on. Right-hand-drive
// imports sell at a discount on the local market.
type SteeringSide string

const (
	SteeringLeft  SteeringSide = "left"
	SteeringRight SteeringSide = "right"
)

// Tier is the qualitative bucket assigned to an import/domestic comparison,
// ordered from worst to best.
type Tier int

const (
	TierBadOption Tier = iota
	TierMarginal
	TierValidButImprovable
	TierGoodOption
	TierVeryGoodDeal
	TierUnicorn
)

var tierNames = map[Tier]string{
	TierBadOption:          "bad_option",
	TierMarginal:           "marginal",
	TierValidButImprovable: "valid_but_improvable",
	TierGoodOption:         "good_option",
	TierVeryGoodDeal:       "very_good_deal",
	TierUnicorn:            "unicorn",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON emits the tier name rather than its ordinal.
func (t Tier) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// lowValueThreshold separates cheap cars, which use a simplified
// profit-only rule, from the full tier ladder.
const lowValueThreshold = 10000

// ErrZeroImportedTotal is returned when a vehicle's base price and expenses
// sum to zero, which would make the profit percentage undefined.
var ErrZeroImportedTotal = errors.New("imported total cost is zero")

// ImportedVehicleCost is the cost side of a comparison: what the business
// pays to land an imported car.
type ImportedVehicleCost struct {
	BasePrice     float64
	TotalExpenses float64
	SteeringSide  SteeringSide
}

// ImportedTotal is the full landed cost of the vehicle.
func (v ImportedVehicleCost) ImportedTotal() float64 {
	return v.BasePrice + v.TotalExpenses
}

// DomesticReferencePrice is the asking price of a comparable car already on
// the local market.
type DomesticReferencePrice struct {
	Price float64
}

// ValuationResult is the outcome of comparing an import against a domestic
// reference.
type ValuationResult struct {
	Difference       float64 `json:"difference"`
	ProfitPercentage float64 `json:"profit_percentage"`
	Tier             Tier    `json:"tier"`
}

// Classify compares an imported vehicle's landed cost against a domestic
// reference price and assigns a valuation tier.
//
// When the import is right-hand drive, steeringAdjustment is subtracted from
// the domestic price before comparing, reflecting the lower resale value of
// RHD cars locally. A positive Difference means the import is cheaper than
// the domestic equivalent by that amount.
func Classify(imported ImportedVehicleCost, domestic DomesticReferencePrice, steeringAdjustment float64) (ValuationResult, error) {
	importedTotal := imported.ImportedTotal()
	if importedTotal == 0 {
		return ValuationResult{}, ErrZeroImportedTotal
	}

	adjustedPrice := domestic.Price
	if imported.SteeringSide == SteeringRight {
		adjustedPrice -= steeringAdjustment
	}

	difference := adjustedPrice - importedTotal
	profitPct := difference / importedTotal * 100

	return ValuationResult{
		Difference:       difference,
		ProfitPercentage: profitPct,
		Tier:             assignTier(imported.BasePrice, difference, profitPct),
	}, nil
}

// assignTier maps a price difference and profit percentage to a tier.
//
// Cheap cars (base price up to 10000) only distinguish profitable from not.
// Above that the ladder is evaluated top-down, first match wins. The two
// middle rungs use compound ranges, so combinations outside every range fall
// through to bad_option even with a positive difference. That asymmetry is
// deliberate and callers depend on it; do not collapse the ladder into
// monotonic thresholds.
func assignTier(basePrice, difference, profitPct float64) Tier {
	if basePrice <= lowValueThreshold {
		if difference > 0 {
			return TierGoodOption
		}
		return TierBadOption
	}

	switch {
	case profitPct > 50 || difference > 10000:
		return TierUnicorn
	case profitPct > 20 || difference > 5000:
		return TierVeryGoodDeal
	case profitPct > 10 || difference > 2000:
		return TierGoodOption
	case profitPct >= 5 && profitPct <= 10 && difference >= 1000 && difference <= 2000:
		return TierValidButImprovable
	case profitPct >= 0 && profitPct < 5 && difference >= 0 && difference < 1000:
		return TierMarginal
	default:
		return TierBadOption
	}
}
