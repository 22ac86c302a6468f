package http

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"debt-health/domain"
	"debt-health/service"
)

type CashFlowHandler struct {
	service *service.CashFlowService
	logger  *logrus.Logger
}

func NewCashFlowHandler(service *service.CashFlowService, logger *logrus.Logger) *CashFlowHandler {
	return &CashFlowHandler{service: service, logger: logger}
}

func (h *CashFlowHandler) Project(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.CashFlowInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Project(input.Salary, input.SalaryDay, input.Accounts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, h.logger, result)
}
