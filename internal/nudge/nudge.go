// Package nudge derives short advisory messages from spending patterns in
// the trailing week, plus a single monthly recommendation.
package nudge

import (
	"time"

	"github.com/arjunsachdev/regretly/internal/spend"
)

type Kind string

const (
	KindWarning     Kind = "warning"
	KindTip         Kind = "tip"
	KindCelebration Kind = "celebration"
)

type Nudge struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
	Kind    Kind   `json:"kind"`
}

// Generate runs every rule over the records dated within the trailing
// 7 days and returns all matches in fixed order. The rules are
// independent; one record can trip several.
func Generate(spends []*spend.Spend, now time.Time) []Nudge {
	weekAgo := now.AddDate(0, 0, -7)

	var window []*spend.Spend

	for _, sp := range spends {
		if !sp.Date.Before(weekAgo) {
			window = append(window, sp)
		}
	}

	var nudges []Nudge

	foodDelivery := 0
	cabRides := 0
	lateNight := 0
	stressed := 0
	impulses := 0

	for _, sp := range window {
		if sp.Type == spend.TypeImpulse {
			impulses++

			switch sp.Category {
			case spend.CategoryFood:
				foodDelivery++
			case spend.CategoryTransport:
				cabRides++
			}

			if sp.Mood == spend.MoodStressed {
				stressed++
			}
		}

		// Pattern detection keys off the logging time, not the
		// user-chosen date.
		hour := sp.CreatedAt.Hour()
		if hour >= 22 || hour <= 4 {
			lateNight++
		}
	}

	if foodDelivery >= 3 {
		nudges = append(nudges, Nudge{
			ID:      "food-delivery",
			Title:   "Food delivery spree detected! 🍕",
			Message: "You've ordered food 3+ times this week. Maybe it's time to meal prep? Your future self (and wallet) will thank you!",
			Icon:    "🍳",
			Kind:    KindWarning,
		})
	}

	if cabRides >= 4 {
		nudges = append(nudges, Nudge{
			ID:      "cab-rides",
			Title:   "Cab comfort zone 🚕",
			Message: "Those quick cab rides are adding up! Could metro or walking work for some trips? Small switches, big savings.",
			Icon:    "🚇",
			Kind:    KindWarning,
		})
	}

	if lateNight >= 2 {
		nudges = append(nudges, Nudge{
			ID:      "late-night",
			Title:   "Midnight spending alert 🌙",
			Message: "Notice you're shopping late at night. Sleep on it! Most impulse purchases feel less urgent in the morning.",
			Icon:    "😴",
			Kind:    KindWarning,
		})
	}

	if stressed >= 2 {
		nudges = append(nudges, Nudge{
			ID:      "stress-spending",
			Title:   "Stress spending pattern 💆",
			Message: "When stressed, we often reach for our wallets. Try a walk, call a friend, or deep breaths instead. You've got this!",
			Icon:    "🧘",
			Kind:    KindTip,
		})
	}

	if impulses == 0 && len(window) > 0 {
		nudges = append(nudges, Nudge{
			ID:      "no-impulse",
			Title:   "Impulse-free week! 🎉",
			Message: "Zero impulse purchases this week. You're building real financial discipline. Keep it going!",
			Icon:    "🏆",
			Kind:    KindCelebration,
		})
	}

	return nudges
}

var recommendations = map[spend.Category]string{
	spend.CategoryFood:          "Try meal prepping on Sundays. Even 2-3 meals can save 500+ weekly on food delivery.",
	spend.CategoryTransport:     "Consider a monthly metro pass or try walking for trips under 2km. Your health and wallet will improve!",
	spend.CategoryShopping:      "Implement the 48-hour rule: wait 2 days before any non-essential purchase. Most urges fade.",
	spend.CategoryEntertainment: "Host more at home! A movie night with friends costs 1/5th of going out.",
	spend.CategoryBills:         "Review subscriptions you haven't used in 30 days. Cancel ruthlessly.",
	spend.CategoryHealth:        "Home workouts are free! YouTube has amazing fitness content.",
	spend.CategoryOther:         "Before any purchase, ask: 'Will I use this 30 days from now?' If unsure, skip it.",
}

// MonthlyRecommendation picks the category with the most impulse spending
// this calendar month and returns its canned advice. Falls back to a
// generic line when there are no records, or no impulse spending, this
// month.
func MonthlyRecommendation(spends []*spend.Spend, now time.Time) string {
	impulseByCategory := make(map[spend.Category]float64)

	monthRecords := 0

	for _, sp := range spends {
		if sp.Date.Month() != now.Month() || sp.Date.Year() != now.Year() {
			continue
		}

		monthRecords++

		if sp.Type == spend.TypeImpulse {
			impulseByCategory[sp.Category] += sp.Amount
		}
	}

	if monthRecords == 0 {
		return "Start logging your spends to get personalized recommendations!"
	}

	var topCategory spend.Category

	var topAmount float64

	for _, c := range spend.Categories() {
		if amt, ok := impulseByCategory[c]; ok && (topCategory == "" || amt > topAmount) {
			topCategory = c
			topAmount = amt
		}
	}

	if topCategory == "" {
		return "Great job keeping impulse spending low! Try to maintain this momentum next month."
	}

	return recommendations[topCategory]
}
