package http

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"debt-health/domain"
	"debt-health/service"
)

type InterestLeakHandler struct {
	service *service.LeakService
	logger  *logrus.Logger
}

func NewInterestLeakHandler(service *service.LeakService, logger *logrus.Logger) *InterestLeakHandler {
	return &InterestLeakHandler{service: service, logger: logger}
}

func (h *InterestLeakHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.InterestLeakInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Estimate(input.Accounts, input.TotalEMI, input.TotalOutstanding, input.OptimalRate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, h.logger, result)
}
