package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/morse-resistance/internal/domain"
	"github.com/heartmarshall/morse-resistance/internal/service/decoder"
)

type decodeService interface {
	Decode(ctx context.Context, in decoder.DecodeInput) (*decoder.Result, error)
}

// DecodeHandler serves POST /decode.
type DecodeHandler struct {
	svc decodeService
	log *slog.Logger
}

// NewDecodeHandler creates a DecodeHandler.
func NewDecodeHandler(svc decodeService, logger *slog.Logger) *DecodeHandler {
	return &DecodeHandler{svc: svc, log: logger}
}

// DecodeRequest is the JSON body of POST /decode. Mode defaults to "count".
type DecodeRequest struct {
	Morse    string   `json:"morse"`
	Words    []string `json:"words,omitempty"`
	WordList string   `json:"word_list,omitempty"`
	Mode     string   `json:"mode,omitempty"`
}

// DecodeResponse is the JSON body of a successful decode. Messages is only
// present in list mode and is sorted.
type DecodeResponse struct {
	Count    int      `json:"count"`
	Messages []string `json:"messages,omitzero"`
	Elapsed  string   `json:"elapsed"`
}

// Decode runs one decode.
func (h *DecodeHandler) Decode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	mode := domain.DecodeMode(req.Mode)
	if mode == "" {
		mode = domain.DecodeModeCount
	}

	res, err := h.svc.Decode(r.Context(), decoder.DecodeInput{
		Morse:    req.Morse,
		Words:    req.Words,
		WordList: req.WordList,
		Mode:     mode,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := DecodeResponse{Count: res.Count, Elapsed: res.Stats.Elapsed.String()}
	if mode == domain.DecodeModeList {
		resp.Messages = res.Messages
		if resp.Messages == nil {
			resp.Messages = []string{}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// decodeJSON reads one JSON object from the request body. Malformed input is
// reported as a validation error on "body"; an oversized body passes through
// as *http.MaxBytesError.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return err
		}
		return domain.NewValidationError("body", fmt.Sprintf("invalid JSON: %v", err))
	}
	return nil
}
