package spend_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunsachdev/regretly/internal/spend"
)

func TestComputeMonthly(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	need := &spend.Spend{
		ID:       uuid.New(),
		Amount:   100,
		Category: spend.CategoryBills,
		Mood:     spend.MoodTired,
		Type:     spend.TypeNeed,
		Date:     time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}
	impulse := &spend.Spend{
		ID:       uuid.New(),
		Amount:   250,
		Category: spend.CategoryShopping,
		Mood:     spend.MoodBored,
		Type:     spend.TypeImpulse,
		Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	}
	lastMonth := &spend.Spend{
		ID:       uuid.New(),
		Amount:   999,
		Category: spend.CategoryFood,
		Mood:     spend.MoodHungry,
		Type:     spend.TypeWant,
		Date:     time.Date(2024, 5, 28, 0, 0, 0, 0, time.UTC),
	}

	stats := spend.ComputeMonthly([]*spend.Spend{impulse, need, lastMonth}, 10, now)

	assert.InDelta(t, 350.0, stats.TotalSpent, 1e-9)

	growth := math.Pow(1.10, 10)
	assert.InDelta(t, 350*growth, stats.TotalFutureLost, 1e-6)

	assert.InDelta(t, 100.0, stats.ByCategory[spend.CategoryBills], 1e-9)
	assert.InDelta(t, 250.0, stats.ByCategory[spend.CategoryShopping], 1e-9)
	assert.NotContains(t, stats.ByCategory, spend.CategoryFood)

	assert.InDelta(t, 100.0, stats.ByMood[spend.MoodTired], 1e-9)
	assert.InDelta(t, 250.0, stats.ByMood[spend.MoodBored], 1e-9)

	assert.InDelta(t, 100.0, stats.ByType[spend.TypeNeed], 1e-9)
	assert.InDelta(t, 250.0, stats.ByType[spend.TypeImpulse], 1e-9)

	// impulse outranks need even at a lower raw amount
	require.NotEmpty(t, stats.TopRegrets)
	assert.Equal(t, impulse.ID, stats.TopRegrets[0].ID)
	assert.Equal(t, need.ID, stats.LeastRegrets[0].ID)
}

func TestComputeMonthly_ForwardDatedRecordsAreIncluded(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	// The month filter only has a lower bound, so a record dated next
	// month still counts toward this month's totals.
	nextMonth := &spend.Spend{
		ID:       uuid.New(),
		Amount:   500,
		Category: spend.CategoryOther,
		Mood:     spend.MoodBored,
		Date:     time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC),
	}

	stats := spend.ComputeMonthly([]*spend.Spend{nextMonth}, 10, now)
	assert.InDelta(t, 500.0, stats.TotalSpent, 1e-9)
}

func TestComputeMonthly_UnclassifiedExcludedFromRanking(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	unclassified := &spend.Spend{
		ID:       uuid.New(),
		Amount:   1000,
		Category: spend.CategoryShopping,
		Mood:     spend.MoodBored,
		Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	}
	classified := &spend.Spend{
		ID:       uuid.New(),
		Amount:   50,
		Category: spend.CategoryFood,
		Mood:     spend.MoodHungry,
		Type:     spend.TypeWant,
		Date:     time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
	}

	stats := spend.ComputeMonthly([]*spend.Spend{unclassified, classified}, 10, now)

	assert.InDelta(t, 1050.0, stats.TotalSpent, 1e-9)
	assert.Empty(t, stats.ByType[spend.Type("")])
	require.Len(t, stats.TopRegrets, 1)
	assert.Equal(t, classified.ID, stats.TopRegrets[0].ID)
}

func TestComputeMonthly_RoundedSavings(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	type testCase struct {
		name    string
		amounts []float64
		want    float64
	}

	tests := []testCase{
		{name: "RoundsUpToNextTen", amounts: []float64{97}, want: 3},
		{name: "ExactMultipleAddsNothing", amounts: []float64{100}, want: 0},
		{name: "SumsAcrossRecords", amounts: []float64{97, 42}, want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var spends []*spend.Spend
			for _, a := range tt.amounts {
				spends = append(spends, &spend.Spend{
					Amount:   a,
					Category: spend.CategoryFood,
					Mood:     spend.MoodHungry,
					Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
				})
			}

			stats := spend.ComputeMonthly(spends, 10, now)
			assert.InDelta(t, tt.want, stats.RoundedSavings, 1e-9)
		})
	}
}

func TestComputeMonthly_Empty(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	stats := spend.ComputeMonthly(nil, 10, now)

	assert.Zero(t, stats.TotalSpent)
	assert.Zero(t, stats.TotalFutureLost)
	assert.Empty(t, stats.TopRegrets)
	assert.Empty(t, stats.LeastRegrets)
	assert.Zero(t, stats.RoundedSavings)
}

func TestComputeMonthly_Idempotent(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	spends := []*spend.Spend{
		{ID: uuid.New(), Amount: 100, Category: spend.CategoryFood, Mood: spend.MoodHungry, Type: spend.TypeNeed, Date: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Amount: 250, Category: spend.CategoryShopping, Mood: spend.MoodBored, Type: spend.TypeImpulse, Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
	}

	first := spend.ComputeMonthly(spends, 12, now)
	second := spend.ComputeMonthly(spends, 12, now)

	assert.Equal(t, first, second)
}
