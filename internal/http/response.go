// Package http is the boundary that turns requests into service calls and
// domain errors into status codes. It is the only layer that knows about
// status codes, and the only place the contact and task services are composed.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"contacthub/internal/service"
)

// apiResponse is the envelope every endpoint returns.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Total   *int   `json:"total,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, apiResponse{Success: true, Data: data})
}

func writeList(w http.ResponseWriter, data any, total int) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: data, Total: &total})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiResponse{Success: false, Error: message})
}

// writeServiceError maps domain errors to status codes. Anything unexpected
// becomes a generic 500 without leaking internals.
func writeServiceError(w http.ResponseWriter, logEntry *logrus.Entry, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		logEntry.WithError(err).Warn("validation failed")
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, service.ErrNotFound):
		logEntry.WithError(err).Warn("resource not found")
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidArgument):
		logEntry.WithError(err).Warn("invalid argument")
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrOwnershipMismatch):
		logEntry.WithError(err).Warn("ownership mismatch")
		writeError(w, http.StatusForbidden, err.Error())
	default:
		logEntry.WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
