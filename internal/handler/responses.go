package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a human-readable message and a stable error kind.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON encodes payload into a pooled buffer before writing so an
// encoding failure never leaves a half-written body.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, kind domain.Kind) {
	respondJSON(w, status, ErrorResponse{Error: message, Kind: string(kind)})
}

// statusForError maps a service error to its HTTP status and client message.
func statusForError(err error) (int, string, domain.Kind) {
	kind := domain.KindOf(err)
	switch kind {
	case domain.KindValidation, domain.KindInsufficientFunds, domain.KindInsufficientItems:
		return http.StatusBadRequest, err.Error(), kind
	case domain.KindNotFound:
		return http.StatusNotFound, err.Error(), kind
	case domain.KindConflict:
		return http.StatusConflict, err.Error(), kind
	case domain.KindForbidden:
		return http.StatusForbidden, err.Error(), kind
	case domain.KindStoreUnavailable:
		return http.StatusServiceUnavailable, ErrMsgUnavailableError, kind
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError, domain.KindUnknown
	}
}

// respondServiceError writes the mapped error. Server-side failures are
// logged with the request id; the cause is never returned.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	status, msg, kind := statusForError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(action+" failed", "error", err, "kind", kind)
	} else {
		log.Info(action+" rejected", "error", err, "kind", kind)
	}
	if status == http.StatusServiceUnavailable {
		w.Header().Set(HeaderRetryAfter, RetryAfterSeconds)
	}
	respondError(w, status, msg, kind)
}
