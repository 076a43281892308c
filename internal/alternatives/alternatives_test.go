package alternatives_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunsachdev/regretly/internal/alternatives"
	"github.com/arjunsachdev/regretly/internal/spend"
)

func TestForCategory(t *testing.T) {
	for _, c := range spend.Categories() {
		alts := alternatives.ForCategory(c)
		require.NotEmpty(t, alts, "category %s has no suggestions", c)

		for _, a := range alts {
			assert.NotEmpty(t, a.Original)
			assert.NotEmpty(t, a.Suggestion)
			assert.Greater(t, a.Savings, 0.0)
		}
	}
}

func TestForCategory_UnknownFallsBackToOther(t *testing.T) {
	got := alternatives.ForCategory("crypto")
	assert.Equal(t, alternatives.ForCategory(spend.CategoryOther), got)
}

func TestRandom(t *testing.T) {
	alts := alternatives.ForCategory(spend.CategoryFood)

	for range 20 {
		assert.Contains(t, alts, alternatives.Random(spend.CategoryFood))
	}
}
