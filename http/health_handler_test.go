package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"debt-health/domain"
	"debt-health/repository"
	"debt-health/service"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestHealthHandler() *DebtHealthHandler {
	logger := testLogger()
	healthService := service.NewDebtHealthService(
		service.NewCashFlowService(logger),
		service.NewLeakService(logger),
		service.NewPrioritizerService(logger),
		service.NewFreedomGPSService(logger),
		repository.NewReportRepositoryMemory(),
		repository.NewMockCache(),
		logger,
	)
	return NewDebtHealthHandler(healthService, logger)
}

func TestBuildReportHandler_OK(t *testing.T) {

	handler := newTestHealthHandler()

	body := []byte(`{
		"accounts": [
			{"id": "card", "type": "credit-card", "balance": 20000, "apr": 0.36, "minPayment": 1000, "dueDay": 5},
			{"id": "auto", "type": "auto-loan", "balance": 50000, "apr": 0.18, "minPayment": 2000, "dueDay": 12}
		],
		"salary": 60000,
		"salaryDay": 1,
		"extraAmount": 5000,
		"optimalRate": 0.12
	}`)

	req := httptest.NewRequest(http.MethodPost, "/debt/health-report", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.BuildReport(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var report domain.DebtHealthReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if report.TotalOutstanding != 70000 {
		t.Errorf("expected totalOutstanding 70000, got %.2f", report.TotalOutstanding)
	}
	if report.FreedomGPS.OptimizedMonths > report.FreedomGPS.CurrentMonths {
		t.Errorf("optimized path slower than current path")
	}
}

func TestBuildReportHandler_MethodNotAllowed(t *testing.T) {

	handler := newTestHealthHandler()

	req := httptest.NewRequest(http.MethodGet, "/debt/health-report", nil)
	w := httptest.NewRecorder()

	handler.BuildReport(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestBuildReportHandler_UnsupportedMediaType(t *testing.T) {

	handler := newTestHealthHandler()

	req := httptest.NewRequest(http.MethodPost, "/debt/health-report", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	handler.BuildReport(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestBuildReportHandler_BadRequest(t *testing.T) {

	handler := newTestHealthHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/debt/health-report",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.BuildReport(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestBuildReportHandler_ValidationError(t *testing.T) {

	handler := newTestHealthHandler()

	// Cuenta con día de vencimiento fuera de rango
	body := []byte(`{
		"accounts": [
			{"id": "bad", "type": "other", "balance": 1000, "apr": 0.2, "minPayment": 100, "dueDay": 40}
		],
		"salary": 30000,
		"salaryDay": 1
	}`)

	req := httptest.NewRequest(http.MethodPost, "/debt/health-report", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.BuildReport(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
