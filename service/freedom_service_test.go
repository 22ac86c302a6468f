package service

import (
	"testing"

	"debt-health/domain"
)

func TestCompare_OptimizedNeverWorse(t *testing.T) {

	service := NewFreedomGPSService(testLogger())

	accounts := []domain.Account{
		{ID: "card", Type: domain.AccountTypeCreditCard, Balance: 20000, APR: 0.36, MinPayment: 1000, DueDay: 5},
		{ID: "auto", Type: domain.AccountTypeAutoLoan, Balance: 50000, APR: 0.18, MinPayment: 2000, DueDay: 10},
	}

	result, err := service.Compare(accounts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OptimizedMonths > result.CurrentMonths {
		t.Errorf("optimized path (%d) should not be slower than current (%d)",
			result.OptimizedMonths, result.CurrentMonths)
	}
	if result.MonthsSaved != result.CurrentMonths-result.OptimizedMonths {
		t.Errorf("monthsSaved %d inconsistent with %d - %d",
			result.MonthsSaved, result.CurrentMonths, result.OptimizedMonths)
	}
	if result.MonthsSaved < 0 {
		t.Errorf("monthsSaved must not be negative, got %d", result.MonthsSaved)
	}
	if len(result.StalledAccounts) != 0 {
		t.Errorf("expected no stalled accounts, got %v", result.StalledAccounts)
	}
}

func TestCompare_SingleAccountHasNothingToRoll(t *testing.T) {

	service := NewFreedomGPSService(testLogger())

	accounts := []domain.Account{
		{ID: "only", Type: domain.AccountTypePersonalLoan, Balance: 30000, APR: 0.24, MinPayment: 1200, DueDay: 3},
	}

	result, err := service.Compare(accounts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CurrentMonths != result.OptimizedMonths {
		t.Errorf("single account: expected equal paths, got %d vs %d",
			result.CurrentMonths, result.OptimizedMonths)
	}
	if result.MonthsSaved != 0 {
		t.Errorf("expected monthsSaved 0, got %d", result.MonthsSaved)
	}
}

func TestCompare_StalledAccountReported(t *testing.T) {

	service := NewFreedomGPSService(testLogger())

	// Interés mensual 300 > pago mínimo 250: nunca amortiza
	accounts := []domain.Account{
		{ID: "stuck", Type: domain.AccountTypeCreditCard, Balance: 10000, APR: 0.36, MinPayment: 250, DueDay: 15},
	}

	result, err := service.Compare(accounts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.StalledAccounts) != 1 || result.StalledAccounts[0] != "stuck" {
		t.Fatalf("expected stuck account reported, got %v", result.StalledAccounts)
	}
	if result.CurrentMonths != MaxPayoffMonths {
		t.Errorf("stalled path should pin current months at the horizon, got %d", result.CurrentMonths)
	}
	if result.MonthsSaved != 0 {
		t.Errorf("expected monthsSaved 0, got %d", result.MonthsSaved)
	}
}

func TestCompare_NoActiveAccounts(t *testing.T) {

	service := NewFreedomGPSService(testLogger())

	result, err := service.Compare([]domain.Account{
		{ID: "paid", Type: domain.AccountTypeOther, Balance: 0, APR: 0.2, MinPayment: 100, DueDay: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CurrentMonths != 0 || result.OptimizedMonths != 0 || result.MonthsSaved != 0 {
		t.Errorf("expected zero-valued result, got %+v", result)
	}
}
