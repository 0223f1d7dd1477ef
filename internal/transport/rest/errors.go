package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/morse-resistance/internal/domain"
	"github.com/heartmarshall/morse-resistance/internal/search"
	"github.com/heartmarshall/morse-resistance/internal/service/decoder"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []FieldIssue `json:"fields,omitempty"`
}

// FieldIssue is one rejected input field.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeError maps domain and service errors to HTTP statuses. Unexpected
// errors are logged and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var maxBytes *http.MaxBytesError

	switch {
	case errors.Is(err, domain.ErrValidation):
		resp := ErrorResponse{Error: err.Error(), Code: "VALIDATION"}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				resp.Fields = append(resp.Fields, FieldIssue{Field: fe.Field, Message: fe.Message})
			}
		}
		writeJSON(w, http.StatusBadRequest, resp)

	case errors.As(err, &maxBytes):
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large", Code: "TOO_LARGE"})

	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "NOT_FOUND"})

	case errors.Is(err, domain.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "ALREADY_EXISTS"})

	case errors.Is(err, search.ErrAborted):
		writeJSON(w, http.StatusGatewayTimeout, ErrorResponse{Error: "decode did not finish in time", Code: "ABORTED"})

	case errors.Is(err, decoder.ErrWordListsDisabled):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: err.Error(), Code: "UNAVAILABLE"})

	default:
		log.ErrorContext(r.Context(), "unexpected API error",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
		)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: "INTERNAL"})
	}
}
