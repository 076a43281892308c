package spend

import (
	"math"
	"sort"
	"time"
)

// MonthlyStats is a derived snapshot of the current calendar month. It is
// recomputed from the record list on every call and never stored.
type MonthlyStats struct {
	TotalSpent      float64
	TotalFutureLost float64
	ByCategory      map[Category]float64
	ByMood          map[Mood]float64
	ByType          map[Type]float64
	TopRegrets      []*Spend
	LeastRegrets    []*Spend
	StreakDays      int
	RoundedSavings  float64
}

// ComputeMonthly reduces the records dated on or after the first of the
// current month. The filter has a lower bound only; forward-dated records
// are included.
//
// TotalFutureLost applies the current rate to every record regardless of
// the rate in effect when it was logged.
func ComputeMonthly(spends []*Spend, rate float64, now time.Time) MonthlyStats {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	growth := math.Pow(1+rate/100, 10)

	stats := MonthlyStats{
		ByCategory: make(map[Category]float64),
		ByMood:     make(map[Mood]float64),
		ByType:     make(map[Type]float64),
	}

	var ranked []*Spend

	for _, sp := range spends {
		if sp.Date.Before(monthStart) {
			continue
		}

		stats.TotalSpent += sp.Amount
		stats.TotalFutureLost += sp.Amount * growth
		stats.ByCategory[sp.Category] += sp.Amount
		stats.ByMood[sp.Mood] += sp.Amount

		if sp.Type != "" {
			stats.ByType[sp.Type] += sp.Amount
			ranked = append(ranked, sp)
		}

		stats.RoundedSavings += math.Ceil(sp.Amount/10)*10 - sp.Amount
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return rankWeight(ranked[i]) > rankWeight(ranked[j])
	})

	stats.TopRegrets = firstN(ranked, 5)
	stats.LeastRegrets = lastNReversed(ranked, 5)
	stats.StreakDays = StreakDays(spends, now)

	return stats
}

// rankWeight orders classified records by how regrettable they are:
// impulse counts triple, want double, need at face value.
func rankWeight(sp *Spend) float64 {
	switch sp.Type {
	case TypeImpulse:
		return sp.Amount * 3
	case TypeWant:
		return sp.Amount * 2
	default:
		return sp.Amount
	}
}

func firstN(spends []*Spend, n int) []*Spend {
	if len(spends) < n {
		n = len(spends)
	}

	out := make([]*Spend, n)
	copy(out, spends[:n])

	return out
}

// lastNReversed returns the tail of the ranking with the least regrettable
// record first.
func lastNReversed(spends []*Spend, n int) []*Spend {
	if len(spends) < n {
		n = len(spends)
	}

	out := make([]*Spend, 0, n)
	for i := len(spends) - 1; i >= len(spends)-n; i-- {
		out = append(out, spends[i])
	}

	return out
}
