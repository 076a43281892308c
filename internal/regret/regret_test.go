package regret_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arjunsachdev/regretly/internal/regret"
	"github.com/arjunsachdev/regretly/internal/spend"
)

func TestEvaluate(t *testing.T) {
	type testCase struct {
		name      string
		amount    float64
		rate      float64
		typ       spend.Type
		wantValue float64
		wantLevel regret.Level
	}

	tests := []testCase{
		{
			// amount 0 and the floor rate contribute nothing
			name:      "TinyNeed",
			amount:    0,
			rate:      8,
			typ:       spend.TypeNeed,
			wantValue: 5,
			wantLevel: regret.LevelLow,
		},
		{
			name:      "MaxedOutImpulse",
			amount:    500,
			rate:      15,
			typ:       spend.TypeImpulse,
			wantValue: 100,
			wantLevel: regret.LevelHigh,
		},
		{
			// amount term saturates at 500
			name:      "AmountSaturates",
			amount:    5000,
			rate:      15,
			typ:       spend.TypeImpulse,
			wantValue: 100,
			wantLevel: regret.LevelHigh,
		},
		{
			// 250/500*40 + 0 + 5
			name:      "MidAmountNeed",
			amount:    250,
			rate:      8,
			typ:       spend.TypeNeed,
			wantValue: 25,
			wantLevel: regret.LevelLow,
		},
		{
			// 0 + 10 + 25
			name:      "WantAtMidRate",
			amount:    0,
			rate:      11.5,
			typ:       spend.TypeWant,
			wantValue: 35,
			wantLevel: regret.LevelMedium,
		},
		{
			// unclassified records score a neutral 20 for the type term
			name:      "Unclassified",
			amount:    0,
			rate:      8,
			typ:       "",
			wantValue: 20,
			wantLevel: regret.LevelLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := regret.Evaluate(tt.amount, tt.rate, tt.typ)
			assert.InDelta(t, tt.wantValue, got.Value, 1e-9)
			assert.Equal(t, tt.wantLevel, got.Level)
		})
	}
}

func TestEvaluate_Bounds(t *testing.T) {
	for _, typ := range append(spend.Types(), spend.Type("")) {
		for _, amount := range []float64{0, 1, 499, 500, 100000} {
			for _, rate := range []float64{8, 10, 15} {
				got := regret.Evaluate(amount, rate, typ)
				assert.GreaterOrEqual(t, got.Value, 0.0)
				assert.LessOrEqual(t, got.Value, 100.0)
			}
		}
	}
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, regret.LevelLow, regret.LevelFor(0))
	assert.Equal(t, regret.LevelLow, regret.LevelFor(34.999))
	assert.Equal(t, regret.LevelMedium, regret.LevelFor(35))
	assert.Equal(t, regret.LevelMedium, regret.LevelFor(64.999))
	assert.Equal(t, regret.LevelHigh, regret.LevelFor(65))
	assert.Equal(t, regret.LevelHigh, regret.LevelFor(100))
}
