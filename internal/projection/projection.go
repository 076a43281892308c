// Package projection computes what a spent amount would have been worth if
// invested at a fixed annual rate instead.
package projection

import "math"

// FutureValue holds the compounded value of one amount at the fixed
// horizons shown throughout the app.
type FutureValue struct {
	Year1  float64 `json:"year1"`
	Year5  float64 `json:"year5"`
	Year10 float64 `json:"year10"`
}

// Project compounds amount over the given number of years at an annual
// percentage rate.
func Project(amount, annualRatePercent float64, years int) float64 {
	return amount * math.Pow(1+annualRatePercent/100, float64(years))
}

// Horizons builds the 1/5/10-year triple for one amount.
func Horizons(amount, annualRatePercent float64) FutureValue {
	return FutureValue{
		Year1:  Project(amount, annualRatePercent, 1),
		Year5:  Project(amount, annualRatePercent, 5),
		Year10: Project(amount, annualRatePercent, 10),
	}
}

// OpportunityCost is the headline "value lost" figure: the 10-year
// projection minus the amount itself. The horizon is fixed so the number
// reads the same everywhere in the app.
func OpportunityCost(amount, annualRatePercent float64) float64 {
	return Project(amount, annualRatePercent, 10) - amount
}
