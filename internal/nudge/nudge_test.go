package nudge_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunsachdev/regretly/internal/nudge"
	"github.com/arjunsachdev/regretly/internal/spend"
)

func nudgeIDs(nudges []nudge.Nudge) []string {
	if len(nudges) == 0 {
		return nil
	}

	ids := make([]string, len(nudges))
	for i, n := range nudges {
		ids[i] = n.ID
	}

	return ids
}

func TestGenerate(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)
	thisWeek := time.Date(2024, 6, 18, 0, 0, 0, 0, time.UTC)
	daytime := time.Date(2024, 6, 18, 14, 0, 0, 0, time.UTC)

	impulse := func(category spend.Category, mood spend.Mood) *spend.Spend {
		return &spend.Spend{
			Amount:    100,
			Category:  category,
			Mood:      mood,
			Type:      spend.TypeImpulse,
			Date:      thisWeek,
			CreatedAt: daytime,
		}
	}

	type testCase struct {
		name    string
		spends  []*spend.Spend
		wantIDs []string
	}

	tests := []testCase{
		{
			name:    "NoRecords",
			spends:  nil,
			wantIDs: nil,
		},
		{
			name: "ThreeImpulseFoodOrders",
			spends: []*spend.Spend{
				impulse(spend.CategoryFood, spend.MoodHungry),
				impulse(spend.CategoryFood, spend.MoodHungry),
				impulse(spend.CategoryFood, spend.MoodBored),
			},
			wantIDs: []string{"food-delivery"},
		},
		{
			name: "TwoFoodOrdersIsFine",
			spends: []*spend.Spend{
				impulse(spend.CategoryFood, spend.MoodHungry),
				impulse(spend.CategoryFood, spend.MoodHungry),
			},
			wantIDs: nil,
		},
		{
			name: "FourCabRides",
			spends: []*spend.Spend{
				impulse(spend.CategoryTransport, spend.MoodTired),
				impulse(spend.CategoryTransport, spend.MoodTired),
				impulse(spend.CategoryTransport, spend.MoodTired),
				impulse(spend.CategoryTransport, spend.MoodTired),
			},
			wantIDs: []string{"cab-rides"},
		},
		{
			name: "NonImpulseFoodDoesNotCount",
			spends: []*spend.Spend{
				{Amount: 100, Category: spend.CategoryFood, Mood: spend.MoodHungry, Type: spend.TypeNeed, Date: thisWeek, CreatedAt: daytime},
				{Amount: 100, Category: spend.CategoryFood, Mood: spend.MoodHungry, Type: spend.TypeNeed, Date: thisWeek, CreatedAt: daytime},
				{Amount: 100, Category: spend.CategoryFood, Mood: spend.MoodHungry, Type: spend.TypeNeed, Date: thisWeek, CreatedAt: daytime},
			},
			wantIDs: []string{"no-impulse"},
		},
		{
			name: "LateNightLogging",
			spends: []*spend.Spend{
				{Amount: 100, Category: spend.CategoryShopping, Mood: spend.MoodBored, Type: spend.TypeImpulse, Date: thisWeek, CreatedAt: time.Date(2024, 6, 18, 23, 30, 0, 0, time.UTC)},
				{Amount: 100, Category: spend.CategoryShopping, Mood: spend.MoodBored, Type: spend.TypeImpulse, Date: thisWeek, CreatedAt: time.Date(2024, 6, 19, 1, 0, 0, 0, time.UTC)},
			},
			wantIDs: []string{"late-night"},
		},
		{
			name: "StressedImpulseSpending",
			spends: []*spend.Spend{
				impulse(spend.CategoryShopping, spend.MoodStressed),
				impulse(spend.CategoryOther, spend.MoodStressed),
			},
			wantIDs: []string{"stress-spending"},
		},
		{
			name: "OldRecordsIgnored",
			spends: []*spend.Spend{
				{Amount: 100, Category: spend.CategoryFood, Mood: spend.MoodHungry, Type: spend.TypeImpulse, Date: now.AddDate(0, 0, -8), CreatedAt: daytime},
				{Amount: 100, Category: spend.CategoryFood, Mood: spend.MoodHungry, Type: spend.TypeImpulse, Date: now.AddDate(0, 0, -8), CreatedAt: daytime},
				{Amount: 100, Category: spend.CategoryFood, Mood: spend.MoodHungry, Type: spend.TypeImpulse, Date: now.AddDate(0, 0, -8), CreatedAt: daytime},
			},
			wantIDs: nil,
		},
		{
			name: "OneRecordCanTripSeveralRules",
			spends: []*spend.Spend{
				impulse(spend.CategoryFood, spend.MoodStressed),
				impulse(spend.CategoryFood, spend.MoodStressed),
				impulse(spend.CategoryFood, spend.MoodStressed),
			},
			wantIDs: []string{"food-delivery", "stress-spending"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nudge.Generate(tt.spends, now)
			assert.Equal(t, tt.wantIDs, nudgeIDs(got))
		})
	}
}

func TestGenerate_CelebrationKind(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	got := nudge.Generate([]*spend.Spend{
		{Amount: 50, Category: spend.CategoryBills, Mood: spend.MoodTired, Type: spend.TypeNeed, Date: now, CreatedAt: now},
	}, now)

	require.Len(t, got, 1)
	assert.Equal(t, "no-impulse", got[0].ID)
	assert.Equal(t, nudge.KindCelebration, got[0].Kind)
}

func TestMonthlyRecommendation(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)

	t.Run("NoRecordsThisMonth", func(t *testing.T) {
		got := nudge.MonthlyRecommendation([]*spend.Spend{
			{Amount: 100, Category: spend.CategoryFood, Type: spend.TypeImpulse, Date: lastMonth},
		}, now)
		assert.Equal(t, "Start logging your spends to get personalized recommendations!", got)
	})

	t.Run("NoImpulseThisMonth", func(t *testing.T) {
		got := nudge.MonthlyRecommendation([]*spend.Spend{
			{Amount: 100, Category: spend.CategoryFood, Type: spend.TypeNeed, Date: thisMonth},
		}, now)
		assert.Equal(t, "Great job keeping impulse spending low! Try to maintain this momentum next month.", got)
	})

	t.Run("TopImpulseCategoryWins", func(t *testing.T) {
		got := nudge.MonthlyRecommendation([]*spend.Spend{
			{Amount: 100, Category: spend.CategoryFood, Type: spend.TypeImpulse, Date: thisMonth},
			{Amount: 900, Category: spend.CategoryShopping, Type: spend.TypeImpulse, Date: thisMonth},
		}, now)
		assert.Contains(t, got, "48-hour rule")
	})

	t.Run("LastMonthImpulseIgnored", func(t *testing.T) {
		got := nudge.MonthlyRecommendation([]*spend.Spend{
			{Amount: 50, Category: spend.CategoryFood, Type: spend.TypeImpulse, Date: thisMonth},
			{Amount: 5000, Category: spend.CategoryShopping, Type: spend.TypeImpulse, Date: lastMonth},
		}, now)
		assert.Contains(t, got, "meal prepping")
	})
}
