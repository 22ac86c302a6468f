package http

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"debt-health/domain"
	"debt-health/service"
)

type FreedomGPSHandler struct {
	service *service.FreedomGPSService
	logger  *logrus.Logger
}

func NewFreedomGPSHandler(service *service.FreedomGPSService, logger *logrus.Logger) *FreedomGPSHandler {
	return &FreedomGPSHandler{service: service, logger: logger}
}

func (h *FreedomGPSHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.FreedomGPSInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Compare(input.Accounts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, h.logger, result)
}
