package spend

import "time"

// maxStreakWalk bounds the backward walk so a corrupt date can never spin
// the loop for years.
const maxStreakWalk = 365

// StreakDays walks backward day-by-day from today counting days without an
// impulse-classified spend. A counted day with no records at all ends the
// walk (absence of data is unknown, not clean), except on the first day.
// The raw count is reduced by one because today is still in progress, and
// the result is never negative.
func StreakDays(spends []*Spend, now time.Time) int {
	if len(spends) == 0 {
		return 0
	}

	streak := 0
	cur := now

	for {
		day := cur.Format(time.DateOnly)
		if hasImpulseOn(spends, day) {
			break
		}

		streak++
		cur = cur.AddDate(0, 0, -1)

		if !hasRecordsOn(spends, day) && streak > 1 {
			break
		}

		if streak > maxStreakWalk {
			break
		}
	}

	if streak <= 1 {
		return 0
	}

	return streak - 1
}

func hasImpulseOn(spends []*Spend, day string) bool {
	for _, sp := range spends {
		if sp.Type == TypeImpulse && sp.Date.Format(time.DateOnly) == day {
			return true
		}
	}

	return false
}

func hasRecordsOn(spends []*Spend, day string) bool {
	for _, sp := range spends {
		if sp.Date.Format(time.DateOnly) == day {
			return true
		}
	}

	return false
}
