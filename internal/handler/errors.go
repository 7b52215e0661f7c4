package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/handler/gen"
)

// nonFieldErrors is the key used for problems that belong to the request as a
// whole rather than to one field.
const nonFieldErrors = "non_field_errors"

const generationFailed = "Failed to generate itinerary"

// RequestErrorHandler answers requests whose body could not be decoded.
// Type mismatches are reported against the offending field; anything else
// goes under non_field_errors. A body over the size limit gets 413.
func RequestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, gen.ErrorResponse{Error: "request body too large"})
		return
	}
	writeJSON(w, http.StatusBadRequest, decodeErrorBody(err))
}

// NewResponseErrorHandler returns the handler for errors a strict handler did
// not map to a typed response. The error is logged and the client gets a
// generic 500 so internal details do not leak.
func NewResponseErrorHandler(log *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, gen.ErrorResponse{Error: "internal server error"})
	}
}

func decodeErrorBody(err error) gen.ValidationErrors {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		if typeErr.Field == "days" {
			return gen.ValidationErrors{"days": "must be a positive whole number"}
		}
		return gen.ValidationErrors{typeErr.Field: "must be a string"}
	case errors.Is(err, io.EOF):
		return gen.ValidationErrors{nonFieldErrors: "request body is required"}
	default:
		return gen.ValidationErrors{nonFieldErrors: "request body must be a JSON object"}
	}
}

// generationBody builds the 500 body for a failed completion call. An
// upstream answer is passed through verbatim as details.
func generationBody(err error) gen.GenerationError {
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		return gen.GenerationError{Error: generationFailed, Details: upstream.Body}
	}
	return gen.GenerationError{Error: generationFailed, Details: err.Error()}
}

// validationMessage flattens a validation failure into one line, e.g.
// "user_email is required".
func validationMessage(err error) string {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}
	keys := make([]string, 0, len(verr.Fields))
	for k := range verr.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, verr.Fields[k])
	}
	return strings.Join(msgs, "; ")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the status line is already sent; nothing left to report to.
	json.NewEncoder(w).Encode(v)
}
