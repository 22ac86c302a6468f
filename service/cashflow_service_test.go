package service

import (
	"testing"

	"debt-health/domain"
)

func TestProject_ShortfallFlagged(t *testing.T) {

	service := NewCashFlowService(testLogger())

	accounts := []domain.Account{
		{ID: "cc-1", Type: domain.AccountTypeCreditCard, Balance: 500000, APR: 0.24, MinPayment: 45000, DueDay: 5},
	}

	result, err := service.Project(40000, 1, accounts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SafeToSpend != -5000 {
		t.Errorf("expected safeToSpend -5000, got %.2f", result.SafeToSpend)
	}

	if len(result.AtRiskDays) != 1 || result.AtRiskDays[0] != 5 {
		t.Fatalf("expected day 5 flagged at risk, got %v", result.AtRiskDays)
	}

	// El evento del día 5 debe quedar marcado
	for _, event := range result.Events {
		if event.Day == 5 && !event.AtRisk {
			t.Errorf("expected day-5 debit flagged at risk")
		}
	}
}

func TestProject_WrapAroundBeforeSalaryDay(t *testing.T) {

	service := NewCashFlowService(testLogger())

	// El EMI del día 3 vence antes del salario del día 10: se paga del
	// sobrante del ciclo anterior, así que debe recorrerse al final del ciclo
	accounts := []domain.Account{
		{ID: "early", Type: domain.AccountTypePersonalLoan, Balance: 80000, APR: 0.15, MinPayment: 10000, DueDay: 3},
		{ID: "late", Type: domain.AccountTypeAutoLoan, Balance: 200000, APR: 0.11, MinPayment: 20000, DueDay: 15},
	}

	result, err := service.Project(50000, 10, accounts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDays := []int{10, 15, 3}
	if len(result.Events) != len(wantDays) {
		t.Fatalf("expected %d events, got %d", len(wantDays), len(result.Events))
	}
	for i, day := range wantDays {
		if result.Events[i].Day != day {
			t.Errorf("event %d: expected day %d, got %d", i, day, result.Events[i].Day)
		}
	}

	last := result.Events[len(result.Events)-1]
	if last.RunningBalance != 20000 {
		t.Errorf("expected cycle leftover 20000, got %.2f", last.RunningBalance)
	}
	if len(result.AtRiskDays) != 0 {
		t.Errorf("expected no at-risk days, got %v", result.AtRiskDays)
	}
}

func TestProject_SalaryCreditedBeforeSameDayDebit(t *testing.T) {

	service := NewCashFlowService(testLogger())

	accounts := []domain.Account{
		{ID: "same-day", Type: domain.AccountTypeCreditCard, Balance: 30000, APR: 0.36, MinPayment: 1500, DueDay: 7},
	}

	result, err := service.Project(60000, 7, accounts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Events[0].Amount <= 0 {
		t.Errorf("expected salary credit first on shared day")
	}
	if len(result.AtRiskDays) != 0 {
		t.Errorf("expected no at-risk days, got %v", result.AtRiskDays)
	}
}

func TestProject_NoActiveAccounts(t *testing.T) {

	service := NewCashFlowService(testLogger())

	accounts := []domain.Account{
		{ID: "paid", Type: domain.AccountTypeOther, Balance: 0, APR: 0.1, MinPayment: 500, DueDay: 2},
	}

	result, err := service.Project(30000, 1, accounts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalEMI != 0 {
		t.Errorf("expected totalEmi 0, got %.2f", result.TotalEMI)
	}
	if result.SafeToSpend != 30000 {
		t.Errorf("expected safeToSpend 30000, got %.2f", result.SafeToSpend)
	}
}

func TestProject_InvalidSalaryDay(t *testing.T) {

	service := NewCashFlowService(testLogger())

	_, err := service.Project(30000, 0, nil)
	if err == nil {
		t.Errorf("expected error for invalid salary day")
	}
}

func TestProject_InvalidDueDay(t *testing.T) {

	service := NewCashFlowService(testLogger())

	accounts := []domain.Account{
		{ID: "bad", Type: domain.AccountTypeOther, Balance: 1000, APR: 0.1, MinPayment: 100, DueDay: 32},
	}

	_, err := service.Project(30000, 1, accounts)
	if err == nil {
		t.Errorf("expected error for invalid due day")
	}
}
