// Package regret scores how ill-advised a spend was on a 0-100 scale,
// combining its size, the opportunity-cost rate, and its classification.
package regret

import (
	"math"

	"github.com/arjunsachdev/regretly/internal/spend"
)

type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Level thresholds are shared by every consumer of a score; they must not
// drift between call sites.
const (
	mediumThreshold = 35
	highThreshold   = 65
)

type Score struct {
	Value float64 `json:"score"`
	Level Level   `json:"level"`
}

// Evaluate sums three weighted terms and clamps the result to [0,100]:
// up to 40 points for the amount (saturating at 500), up to 20 for the
// rate across the supported [8,15] range, and a classification term.
// An unclassified spend gets a neutral 20 until the user picks one.
func Evaluate(amount, annualRatePercent float64, typ spend.Type) Score {
	amountScore := math.Min(40, amount/500*40)
	rateScore := (annualRatePercent - 8) / 7 * 20

	typeScore := 20.0

	switch typ {
	case spend.TypeNeed:
		typeScore = 5
	case spend.TypeWant:
		typeScore = 25
	case spend.TypeImpulse:
		typeScore = 40
	}

	total := math.Min(100, math.Max(0, amountScore+rateScore+typeScore))

	return Score{Value: total, Level: LevelFor(total)}
}

// LevelFor maps a score onto its display level.
func LevelFor(score float64) Level {
	switch {
	case score < mediumThreshold:
		return LevelLow
	case score < highThreshold:
		return LevelMedium
	default:
		return LevelHigh
	}
}
