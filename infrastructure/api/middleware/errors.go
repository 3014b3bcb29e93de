package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/creaselab/crease/application/service"
	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/domain/ingest"
	"github.com/creaselab/crease/internal/database"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// WriteError maps a service error to an HTTP status and writes a JSON
// error body. Unrecognized errors return 500 with a generic message so
// internals never leak to callers.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, content.ErrValidation), errors.Is(err, service.ErrUnknownSource):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, service.ErrContentNotFound), errors.Is(err, database.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, ingest.ErrNotSupported):
		status = http.StatusNotImplemented
		message = err.Error()
	case errors.Is(err, ingest.ErrUpstream):
		status = http.StatusBadGateway
		message = err.Error()
	}

	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error(),
		)
	}

	WriteJSON(w, status, ErrorResponse{Error: message})
}
