package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"debt-health/domain"
	"debt-health/service"
)

type DebtHealthHandler struct {
	service *service.DebtHealthService
	logger  *logrus.Logger
}

func NewDebtHealthHandler(service *service.DebtHealthService, logger *logrus.Logger) *DebtHealthHandler {
	return &DebtHealthHandler{service: service, logger: logger}
}

func (h *DebtHealthHandler) BuildReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.DebtHealthInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.WithError(err).Error("failed to decode debt health request")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	report, err := h.service.BuildReport(input)
	if err != nil {
		h.logger.WithError(err).Warn("debt health report rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, h.logger, report)
}
