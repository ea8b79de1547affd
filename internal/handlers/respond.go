package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/portal-router/internal/logger"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.WithError(log, err).Error("Failed to marshal response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logger.WithError(log, err).Error("Failed to write response")
	}
}

func writeError(w http.ResponseWriter, log *slog.Logger, status int, msg string) {
	writeJSON(w, log, status, ErrorResponse{Error: msg})
}

// onlyGet rejects anything but GET and HEAD with 405.
func onlyGet(w http.ResponseWriter, r *http.Request, log *slog.Logger) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	writeError(w, log, http.StatusMethodNotAllowed, "Method not allowed")
	return false
}
