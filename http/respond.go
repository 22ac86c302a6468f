package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// writeJSON codifica la respuesta en un buffer primero para no escribir el
// header si la codificación falla.
func writeJSON(w http.ResponseWriter, logger *logrus.Logger, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		logger.WithError(err).Error("failed to encode response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		logger.WithError(err).Error("failed to write response")
	}
}
