package settings

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arjunsachdev/regretly/internal/settings"
)

type Handler struct {
	store *settings.Store
}

func NewHandler(store *settings.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/rate", h.getRate)
	r.Put("/rate", h.setRate)
}

type rateResponse struct {
	Rate float64 `json:"rate"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

func (h *Handler) getRate(w http.ResponseWriter, r *http.Request) {
	resp := rateResponse{
		Rate: h.store.Rate(),
		Min:  settings.MinRate,
		Max:  settings.MaxRate,
		Step: settings.RateStep,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type setRateRequest struct {
	Rate float64 `json:"rate"`
}

func (h *Handler) setRate(w http.ResponseWriter, r *http.Request) {
	var req setRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.store.SetRate(req.Rate); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
