package spend_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arjunsachdev/regretly/internal/spend"
)

func TestStreakDays(t *testing.T) {
	now := time.Date(2024, 6, 20, 15, 0, 0, 0, time.UTC)

	day := func(daysAgo int) time.Time {
		return now.AddDate(0, 0, -daysAgo)
	}

	type testCase struct {
		name   string
		spends []*spend.Spend
		want   int
	}

	tests := []testCase{
		{
			name:   "NoRecords",
			spends: nil,
			want:   0,
		},
		{
			name: "ImpulseToday",
			spends: []*spend.Spend{
				{Amount: 100, Type: spend.TypeImpulse, Date: day(0)},
			},
			want: 0,
		},
		{
			name: "ImpulseYesterday",
			spends: []*spend.Spend{
				{Amount: 50, Type: spend.TypeNeed, Date: day(0)},
				{Amount: 100, Type: spend.TypeImpulse, Date: day(1)},
			},
			want: 0,
		},
		{
			name: "TenCleanDaysThenImpulse",
			spends: append(
				cleanDays(day, 0, 10),
				&spend.Spend{Amount: 300, Type: spend.TypeImpulse, Date: day(11)},
			),
			want: 10,
		},
		{
			name: "GapDayStopsTheWalk",
			spends: []*spend.Spend{
				{Amount: 50, Type: spend.TypeNeed, Date: day(0)},
				{Amount: 50, Type: spend.TypeWant, Date: day(1)},
				// nothing on day(2); clean records further back are unreachable
				{Amount: 50, Type: spend.TypeNeed, Date: day(3)},
				{Amount: 100, Type: spend.TypeImpulse, Date: day(4)},
			},
			want: 2,
		},
		{
			name: "UnclassifiedSpendsDoNotBreakTheStreak",
			spends: []*spend.Spend{
				{Amount: 50, Date: day(0)},
				{Amount: 50, Date: day(1)},
				{Amount: 100, Type: spend.TypeImpulse, Date: day(2)},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spend.StreakDays(tt.spends, now))
		})
	}
}

func TestStreakDays_WalkIsBounded(t *testing.T) {
	now := time.Date(2024, 6, 20, 15, 0, 0, 0, time.UTC)

	// A clean record on every day for two years; the walk must cap out
	// rather than count them all.
	spends := cleanDays(func(daysAgo int) time.Time {
		return now.AddDate(0, 0, -daysAgo)
	}, 0, 730)

	got := spend.StreakDays(spends, now)
	assert.Equal(t, 365, got)
}

func cleanDays(day func(int) time.Time, from, to int) []*spend.Spend {
	var out []*spend.Spend
	for i := from; i <= to; i++ {
		out = append(out, &spend.Spend{Amount: 50, Type: spend.TypeNeed, Date: day(i)})
	}

	return out
}
