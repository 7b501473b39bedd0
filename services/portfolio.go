package services

import (
	"math"
	"time"
)

// CarStatus tracks an inventory car through its lifecycle. The only allowed
// transition is in_inventory -> sold.
type CarStatus string

const (
	StatusInInventory CarStatus = "in_inventory"
	StatusSold        CarStatus = "sold"
)

// CarExpense is a single itemized cost attached to an inventory car.
type CarExpense struct {
	ID       string    `json:"id"`
	Concept  string    `json:"concept"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
}

// InventoryCar is an immutable snapshot of a purchased car. SellPrice is nil
// until a sale is recorded; DateSold stays zero until then.
type InventoryCar struct {
	ID              string       `json:"id"`
	Brand           string       `json:"brand"`
	Model           string       `json:"model"`
	Year            int          `json:"year"`
	InitialPrice    float64      `json:"initial_price"`
	InitialExpenses float64      `json:"initial_expenses"`
	DatePurchased   time.Time    `json:"date_purchased"`
	Status          CarStatus    `json:"status"`
	Expenses        []CarExpense `json:"expenses,omitempty"`
	SellPrice       *float64     `json:"sell_price,omitempty"`
	DateSold        time.Time    `json:"date_sold,omitzero"`
	Buyer           string       `json:"buyer,omitempty"`
}

// Highlights are the standout records of the sold set. Each field is nil
// when no sold cars exist. Ties keep the first car encountered.
type Highlights struct {
	MostProfitable     *InventoryCar `json:"most_profitable,omitempty"`
	BestAbsoluteProfit *InventoryCar `json:"best_absolute_profit,omitempty"`
	FastestSale        *InventoryCar `json:"fastest_sale,omitempty"`
}

// PortfolioStats aggregates the whole inventory. Sold cars drive the profit
// figures; cars still in inventory only contribute to the investment totals.
type PortfolioStats struct {
	TotalSold          int        `json:"total_sold"`
	TotalProfit        float64    `json:"total_profit"`
	AvgProfitability   float64    `json:"avg_profitability"`
	TotalInvestment    float64    `json:"total_investment"`
	CarsInInventory    int        `json:"cars_in_inventory"`
	AvgDaysInInventory int        `json:"avg_days_in_inventory"`
	Highlights         Highlights `json:"highlights"`
}

// Warning codes reported by Aggregate.
const (
	WarnMissingSaleData = "missing_sale_data"
	WarnZeroInvestment  = "zero_investment"
)

// Warning flags a record that could not fully contribute to the statistics.
// Aggregation always continues past warnings.
type Warning struct {
	CarID  string `json:"car_id"`
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// sanitizeAmount coerces non-finite values to zero so a single corrupt
// number cannot poison every total it is summed into.
func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// TotalInvested is the acquisition price plus acquisition expenses plus all
// itemized expenses of a car.
func TotalInvested(car InventoryCar) float64 {
	total := sanitizeAmount(car.InitialPrice) + sanitizeAmount(car.InitialExpenses)
	for _, exp := range car.Expenses {
		total += sanitizeAmount(exp.Amount)
	}
	return total
}

// DaysInInventory is the whole number of days the car has been (or was)
// held: purchase to sale for sold cars, purchase to now otherwise.
func DaysInInventory(car InventoryCar, now time.Time) int {
	end := now
	if car.Status == StatusSold && !car.DateSold.IsZero() {
		end = car.DateSold
	}
	return int(math.Floor(end.Sub(car.DatePurchased).Hours() / 24))
}

// Profit is the sale outcome of a sold car: sell price minus everything
// invested. Returns 0 for cars without a recorded sell price.
func Profit(car InventoryCar) float64 {
	if car.SellPrice == nil {
		return 0
	}
	return sanitizeAmount(*car.SellPrice) - TotalInvested(car)
}

// Aggregate computes portfolio-wide statistics over a snapshot of inventory
// cars in a single pass. The input is never mutated; highlight pointers
// reference the entries of the cars slice.
//
// Sold cars missing a sell price or sale date are excluded from the sold
// statistics and reported as warnings. A sold car with zero total investment
// still counts toward the sold totals but is skipped when averaging the
// profit percentages, since its own percentage is undefined.
func Aggregate(cars []InventoryCar, now time.Time) (PortfolioStats, []Warning) {
	var stats PortfolioStats
	var warnings []Warning

	var pctSum float64
	var pctCount int
	var daysSum int
	var daysCount int

	var mostProfitable *InventoryCar
	var bestPct float64
	var bestProfitCar *InventoryCar
	var bestProfit float64
	var fastestCar *InventoryCar
	var fastestDays int

	for i := range cars {
		car := &cars[i]
		invested := TotalInvested(*car)

		if car.Status != StatusSold {
			stats.CarsInInventory++
			stats.TotalInvestment += invested
			continue
		}

		if car.SellPrice == nil || car.DateSold.IsZero() {
			warnings = append(warnings, Warning{
				CarID:  car.ID,
				Code:   WarnMissingSaleData,
				Detail: "car is marked sold but has no sell price or sale date",
			})
			continue
		}

		profit := sanitizeAmount(*car.SellPrice) - invested
		days := DaysInInventory(*car, now)

		stats.TotalSold++
		stats.TotalProfit += profit
		daysSum += days
		daysCount++

		if invested == 0 {
			warnings = append(warnings, Warning{
				CarID:  car.ID,
				Code:   WarnZeroInvestment,
				Detail: "total investment is zero, profit percentage skipped",
			})
		} else {
			pct := profit / invested * 100
			pctSum += pct
			pctCount++
			if mostProfitable == nil || pct > bestPct {
				mostProfitable, bestPct = car, pct
			}
		}

		if bestProfitCar == nil || profit > bestProfit {
			bestProfitCar, bestProfit = car, profit
		}
		if fastestCar == nil || days < fastestDays {
			fastestCar, fastestDays = car, days
		}
	}

	if pctCount > 0 {
		stats.AvgProfitability = pctSum / float64(pctCount)
	}
	if daysCount > 0 {
		// round half up
		stats.AvgDaysInInventory = int(math.Floor(float64(daysSum)/float64(daysCount) + 0.5))
	}

	stats.Highlights = Highlights{
		MostProfitable:     mostProfitable,
		BestAbsoluteProfit: bestProfitCar,
		FastestSale:        fastestCar,
	}
	return stats, warnings
}
