package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arjunsachdev/regretly/internal/alternatives"
	"github.com/arjunsachdev/regretly/internal/auth"
	"github.com/arjunsachdev/regretly/internal/nudge"
	"github.com/arjunsachdev/regretly/internal/spend"
)

type Handler struct {
	sessions *spend.Sessions
}

func NewHandler(sessions *spend.Sessions) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/monthly", h.monthly)
	r.Get("/nudges", h.nudges)
	r.Get("/recommendation", h.recommendation)
}

func (h *Handler) service(w http.ResponseWriter, r *http.Request) *spend.Service {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return nil
	}

	svc, err := h.sessions.For(r.Context(), userID)
	if err != nil {
		slog.Error("failed to open spend session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return nil
	}

	return svc
}

type rankedSpend struct {
	ID       uuid.UUID      `json:"id"`
	Amount   float64        `json:"amount"`
	Category spend.Category `json:"category"`
	Date     string         `json:"date"`
	Type     spend.Type     `json:"type"`
}

type monthlyResponse struct {
	TotalSpent      float64                    `json:"total_spent"`
	TotalFutureLost float64                    `json:"total_future_lost"`
	ByCategory      map[spend.Category]float64 `json:"by_category"`
	ByMood          map[spend.Mood]float64     `json:"by_mood"`
	ByType          map[spend.Type]float64     `json:"by_type"`
	TopRegrets      []rankedSpend              `json:"top_regrets"`
	LeastRegrets    []rankedSpend              `json:"least_regrets"`
	StreakDays      int                        `json:"streak_days"`
	RoundedSavings  float64                    `json:"rounded_savings"`
}

func toRanked(spends []*spend.Spend) []rankedSpend {
	out := make([]rankedSpend, len(spends))
	for i, sp := range spends {
		out[i] = rankedSpend{
			ID:       sp.ID,
			Amount:   sp.Amount,
			Category: sp.Category,
			Date:     sp.Date.Format(time.DateOnly),
			Type:     sp.Type,
		}
	}

	return out
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	svc := h.service(w, r)
	if svc == nil {
		return
	}

	stats := svc.MonthlyStats()

	resp := monthlyResponse{
		TotalSpent:      stats.TotalSpent,
		TotalFutureLost: stats.TotalFutureLost,
		ByCategory:      stats.ByCategory,
		ByMood:          stats.ByMood,
		ByType:          stats.ByType,
		TopRegrets:      toRanked(stats.TopRegrets),
		LeastRegrets:    toRanked(stats.LeastRegrets),
		StreakDays:      stats.StreakDays,
		RoundedSavings:  stats.RoundedSavings,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) nudges(w http.ResponseWriter, r *http.Request) {
	svc := h.service(w, r)
	if svc == nil {
		return
	}

	nudges := nudge.Generate(svc.List(), time.Now())
	if nudges == nil {
		nudges = []nudge.Nudge{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(nudges); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type recommendationResponse struct {
	Recommendation string `json:"recommendation"`
}

func (h *Handler) recommendation(w http.ResponseWriter, r *http.Request) {
	svc := h.service(w, r)
	if svc == nil {
		return
	}

	resp := recommendationResponse{
		Recommendation: nudge.MonthlyRecommendation(svc.List(), time.Now()),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Alternatives serves the canned cheaper-substitute list for a category.
// The data is static and identity-independent, so this sits outside the
// authenticated routes.
func Alternatives(w http.ResponseWriter, r *http.Request) {
	category, err := spend.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(alternatives.ForCategory(category)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
