package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arjunsachdev/regretly/internal/auth"
	"github.com/arjunsachdev/regretly/internal/importer/backup"
	"github.com/arjunsachdev/regretly/internal/spend"
)

type Handler struct {
	sessions *spend.Sessions
	parser   *backup.Parser
}

func NewHandler(sessions *spend.Sessions) *Handler {
	return &Handler{
		sessions: sessions,
		parser:   backup.NewParser(),
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/confirm", h.confirmImport)
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

type spendDTO struct {
	ID          uuid.UUID      `json:"id"`
	Amount      float64        `json:"amount"`
	Category    spend.Category `json:"category"`
	Mood        spend.Mood     `json:"mood"`
	Date        string         `json:"date"`
	Type        spend.Type     `json:"type,omitempty"`
	Description string         `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type paramsDTO struct {
	Amount      float64        `json:"amount"`
	Category    spend.Category `json:"category"`
	Mood        spend.Mood     `json:"mood"`
	Date        string         `json:"date"`
	Description string         `json:"description,omitempty"`
}

type importSuccessResponse struct {
	Imported int        `json:"imported"`
	Spends   []spendDTO `json:"spends"`
}

type conflictDTO struct {
	Incoming paramsDTO `json:"incoming"`
	Existing spendDTO  `json:"existing"`
}

type importConflictResponse struct {
	New       []paramsDTO   `json:"new"`
	Conflicts []conflictDTO `json:"conflicts"`
}

type confirmRequest struct {
	Params []paramsDTO `json:"params"`
}

func toSpendDTO(sp *spend.Spend) spendDTO {
	return spendDTO{
		ID:          sp.ID,
		Amount:      sp.Amount,
		Category:    sp.Category,
		Mood:        sp.Mood,
		Date:        sp.Date.Format(time.DateOnly),
		Type:        sp.Type,
		Description: sp.Description,
		CreatedAt:   sp.CreatedAt,
	}
}

func toParamsDTO(p spend.LogParams) paramsDTO {
	return paramsDTO{
		Amount:      p.Amount,
		Category:    p.Category,
		Mood:        p.Mood,
		Date:        p.Date.Format(time.DateOnly),
		Description: p.Description,
	}
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	svc := h.service(w, r)
	if svc == nil {
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.parser.Parse(file)
	if err != nil {
		http.Error(w, "failed to parse backup: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := svc.ImportBatch(r.Context(), params)
	if err != nil {
		writeImportError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if len(result.Conflicts) > 0 {
		resp := importConflictResponse{}

		for _, p := range result.New {
			resp.New = append(resp.New, toParamsDTO(p))
		}

		for _, c := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming: toParamsDTO(c.Incoming),
				Existing: toSpendDTO(c.Existing),
			})
		}

		w.WriteHeader(http.StatusConflict)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	writeImported(w, result.Imported)
}

// confirmImport force-creates the records the user approved after
// reviewing duplicate conflicts.
func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	svc := h.service(w, r)
	if svc == nil {
		return
	}

	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := make([]spend.LogParams, 0, len(req.Params))

	for _, p := range req.Params {
		date, err := time.Parse(time.DateOnly, p.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		params = append(params, spend.LogParams{
			Amount:      p.Amount,
			Category:    p.Category,
			Mood:        p.Mood,
			Date:        date,
			Description: p.Description,
		})
	}

	spends, err := svc.CreateBatch(r.Context(), params)
	if err != nil {
		writeImportError(w, err)
		return
	}

	writeImported(w, spends)
}

func writeImportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, spend.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, spend.ErrUnauthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		slog.Error("import failed", "error", err)
		http.Error(w, "could not reach the record store, nothing was saved", http.StatusBadGateway)
	}
}

func writeImported(w http.ResponseWriter, spends []*spend.Spend) {
	resp := importSuccessResponse{Imported: len(spends)}
	for _, sp := range spends {
		resp.Spends = append(resp.Spends, toSpendDTO(sp))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
