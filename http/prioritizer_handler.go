package http

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"debt-health/domain"
	"debt-health/service"
)

type PrioritizerHandler struct {
	service *service.PrioritizerService
	logger  *logrus.Logger
}

func NewPrioritizerHandler(service *service.PrioritizerService, logger *logrus.Logger) *PrioritizerHandler {
	return &PrioritizerHandler{service: service, logger: logger}
}

func (h *PrioritizerHandler) Prioritize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.PrioritizeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Prioritize(input.ExtraAmount, input.Accounts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, h.logger, result)
}
