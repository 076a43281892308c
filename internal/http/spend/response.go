package spend

import (
	"time"

	"github.com/google/uuid"

	"github.com/arjunsachdev/regretly/internal/projection"
	"github.com/arjunsachdev/regretly/internal/regret"
	"github.com/arjunsachdev/regretly/internal/spend"
)

// spendResponse carries the record plus the derivations the logging flow
// shows next to it. The derived fields are computed per response at the
// current rate, never stored.
type spendResponse struct {
	ID          uuid.UUID              `json:"id"`
	Amount      float64                `json:"amount"`
	Category    spend.Category         `json:"category"`
	Mood        spend.Mood             `json:"mood"`
	Date        string                 `json:"date"`
	Type        spend.Type             `json:"type,omitempty"`
	Description string                 `json:"description,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	Regret      regret.Score           `json:"regret"`
	FutureValue projection.FutureValue `json:"future_value"`
}

func toResponse(sp *spend.Spend, rate float64) spendResponse {
	return spendResponse{
		ID:          sp.ID,
		Amount:      sp.Amount,
		Category:    sp.Category,
		Mood:        sp.Mood,
		Date:        sp.Date.Format(time.DateOnly),
		Type:        sp.Type,
		Description: sp.Description,
		CreatedAt:   sp.CreatedAt,
		Regret:      regret.Evaluate(sp.Amount, rate, sp.Type),
		FutureValue: projection.Horizons(sp.Amount, rate),
	}
}

func toResponseList(spends []*spend.Spend, rate float64) []spendResponse {
	resp := make([]spendResponse, len(spends))
	for i, sp := range spends {
		resp[i] = toResponse(sp, rate)
	}

	return resp
}
