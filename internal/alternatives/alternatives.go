// Package alternatives suggests cheaper substitutes for a spend, keyed by
// category. The lists are fixed product copy, not derived data.
package alternatives

import (
	"math/rand"

	"github.com/arjunsachdev/regretly/internal/spend"
)

type Alternative struct {
	Original   string  `json:"original"`
	Suggestion string  `json:"suggestion"`
	Savings    float64 `json:"savings"`
	Icon       string  `json:"icon"`
}

var byCategory = map[spend.Category][]Alternative{
	spend.CategoryFood: {
		{Original: "Food delivery", Suggestion: "Cook at home", Savings: 150, Icon: "🍳"},
		{Original: "Restaurant meal", Suggestion: "Pack lunch from home", Savings: 200, Icon: "🥗"},
		{Original: "Fancy coffee", Suggestion: "Make coffee at home", Savings: 100, Icon: "☕"},
		{Original: "Ordering out", Suggestion: "Meal prep on Sunday", Savings: 300, Icon: "📦"},
	},
	spend.CategoryTransport: {
		{Original: "Cab ride", Suggestion: "Take metro/bus", Savings: 150, Icon: "🚇"},
		{Original: "Ride hailing", Suggestion: "Walk for short distances", Savings: 100, Icon: "🚶"},
		{Original: "Daily commute", Suggestion: "Carpool with colleagues", Savings: 200, Icon: "🚗"},
		{Original: "Auto rickshaw", Suggestion: "Use bike/scooter", Savings: 80, Icon: "🛵"},
	},
	spend.CategoryShopping: {
		{Original: "Impulse buy", Suggestion: "Wait 48 hours before buying", Savings: 500, Icon: "⏰"},
		{Original: "Brand new item", Suggestion: "Check second-hand first", Savings: 300, Icon: "♻️"},
		{Original: "Fast fashion", Suggestion: "Buy quality, buy less", Savings: 400, Icon: "👕"},
		{Original: "Online shopping", Suggestion: "Make a wishlist, review monthly", Savings: 600, Icon: "📝"},
	},
	spend.CategoryEntertainment: {
		{Original: "Movie theater", Suggestion: "Home movie night", Savings: 300, Icon: "🎬"},
		{Original: "Subscription overload", Suggestion: "Share accounts with family", Savings: 200, Icon: "📺"},
		{Original: "Night out", Suggestion: "Host friends at home", Savings: 500, Icon: "🏠"},
		{Original: "Gaming purchases", Suggestion: "Play free games first", Savings: 400, Icon: "🎮"},
	},
	spend.CategoryBills: {
		{Original: "High electricity bill", Suggestion: "Switch off unused appliances", Savings: 200, Icon: "💡"},
		{Original: "Expensive phone plan", Suggestion: "Review and downgrade", Savings: 150, Icon: "📱"},
	},
	spend.CategoryHealth: {
		{Original: "Gym membership unused", Suggestion: "Home workouts + outdoor runs", Savings: 500, Icon: "🏃"},
		{Original: "Supplements", Suggestion: "Focus on whole foods first", Savings: 300, Icon: "🥬"},
	},
	spend.CategoryOther: {
		{Original: "Random purchases", Suggestion: "Ask: Will I use this in 30 days?", Savings: 200, Icon: "🤔"},
		{Original: "Convenience fees", Suggestion: "Plan ahead to avoid rush", Savings: 100, Icon: "📅"},
	},
}

// ForCategory returns the suggestions for a category, falling back to the
// generic "other" list for anything unknown.
func ForCategory(c spend.Category) []Alternative {
	if alts, ok := byCategory[c]; ok {
		return alts
	}

	return byCategory[spend.CategoryOther]
}

// Random picks one suggestion for the category, for the post-logging
// screen.
func Random(c spend.Category) Alternative {
	alts := ForCategory(c)
	return alts[rand.Intn(len(alts))]
}
