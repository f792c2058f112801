package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

func readJSON(body io.Reader, dest any) error {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

// writeOpError maps the room core's error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is an internal failure.
func writeOpError(w http.ResponseWriter, err error) {
	var opErr *Error
	if !errors.As(err, &opErr) {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	switch opErr.Kind {
	case KindNotFound:
		writeError(w, http.StatusNotFound, opErr.Message)
	case KindForbidden:
		writeError(w, http.StatusForbidden, opErr.Message)
	case KindConflict:
		writeError(w, http.StatusConflict, opErr.Message)
	case KindInvalidState:
		writeError(w, http.StatusBadRequest, opErr.Message)
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
