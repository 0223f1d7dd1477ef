package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/morse-resistance/internal/domain"
)

type wordListService interface {
	Create(ctx context.Context, name string, words []string) (*domain.WordList, error)
	List(ctx context.Context) ([]domain.WordList, error)
	Delete(ctx context.Context, name string) error
	Runs(ctx context.Context, name string, limit int) ([]domain.DecodeRun, error)
}

// WordListHandler serves the /word-lists endpoints.
type WordListHandler struct {
	svc wordListService
	log *slog.Logger
}

// NewWordListHandler creates a WordListHandler.
func NewWordListHandler(svc wordListService, logger *slog.Logger) *WordListHandler {
	return &WordListHandler{svc: svc, log: logger}
}

// WordListDTO is the JSON view of a stored word list.
type WordListDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
}

// DecodeRunDTO is the JSON view of a recorded decode.
type DecodeRunDTO struct {
	ID           string    `json:"id"`
	Morse        string    `json:"morse"`
	Mode         string    `json:"mode"`
	MessageCount int       `json:"message_count"`
	DurationMS   int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateWordListRequest is the JSON body of POST /word-lists.
type CreateWordListRequest struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// Create stores a new list. 201 on success, 409 when the name is taken.
func (h *WordListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateWordListRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	list, err := h.svc.Create(r.Context(), req.Name, req.Words)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordListDTO(*list))
}

// List returns every stored list.
func (h *WordListHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]WordListDTO, 0, len(lists))
	for _, l := range lists {
		out = append(out, toWordListDTO(l))
	}
	writeJSON(w, http.StatusOK, out)
}

// Delete removes the list named in the path. 204 on success.
func (h *WordListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("name")); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Runs returns recent decodes against the list named in the path.
// Query parameter limit is optional.
func (h *WordListHandler) Runs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, h.log, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = n
	}

	runs, err := h.svc.Runs(r.Context(), r.PathValue("name"), limit)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]DecodeRunDTO, 0, len(runs))
	for _, run := range runs {
		out = append(out, DecodeRunDTO{
			ID:           run.ID.String(),
			Morse:        run.Morse,
			Mode:         run.Mode.String(),
			MessageCount: run.MessageCount,
			DurationMS:   run.Duration.Milliseconds(),
			CreatedAt:    run.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func toWordListDTO(l domain.WordList) WordListDTO {
	return WordListDTO{
		ID:        l.ID.String(),
		Name:      l.Name,
		WordCount: l.WordCount,
		CreatedAt: l.CreatedAt,
	}
}
