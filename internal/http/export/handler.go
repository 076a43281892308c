package export

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arjunsachdev/regretly/internal/auth"
	"github.com/arjunsachdev/regretly/internal/export"
	"github.com/arjunsachdev/regretly/internal/spend"
)

type Handler struct {
	sessions *spend.Sessions
}

func NewHandler(sessions *spend.Sessions) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.exportCSV)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	svc, err := h.sessions.For(r.Context(), userID)
	if err != nil {
		slog.Error("failed to open spend session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="spends.csv"`)

	if err := export.WriteCSV(w, svc.List()); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}
