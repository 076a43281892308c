package spend

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arjunsachdev/regretly/internal/auth"
	"github.com/arjunsachdev/regretly/internal/spend"
)

type Handler struct {
	sessions *spend.Sessions
}

func NewHandler(sessions *spend.Sessions) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Patch("/{id}/type", h.classify)
}

// service resolves the caller's store session, writing the error response
// itself when that fails.
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

type createSpendRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Mood        string  `json:"mood"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	svc := h.service(w, r)
	if svc == nil {
		return
	}

	var req createSpendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	sp, err := svc.Log(r.Context(), spend.LogParams{
		Amount:      req.Amount,
		Category:    spend.Category(req.Category),
		Mood:        spend.Mood(req.Mood),
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		writeSpendError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(sp, svc.Rate())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	svc := h.service(w, r)
	if svc == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(svc.List(), svc.Rate())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type classifyRequest struct {
	Type string `json:"type"`
}

func (h *Handler) classify(w http.ResponseWriter, r *http.Request) {
	svc := h.service(w, r)
	if svc == nil {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := svc.Classify(r.Context(), id, spend.Type(req.Type)); err != nil {
		writeSpendError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeSpendError maps store errors onto status codes. Persistence
// failures come back as 502 so the client knows the record was not saved
// and can retry with the same form data.
func writeSpendError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, spend.ErrNotFound):
		http.Error(w, "spend not found", http.StatusNotFound)
	case errors.Is(err, spend.ErrUnauthenticated):
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
	case errors.Is(err, spend.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("spend store failure", "error", err)
		http.Error(w, "could not reach the record store, nothing was saved", http.StatusBadGateway)
	}
}
