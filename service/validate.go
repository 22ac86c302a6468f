package service

import (
	"errors"
	"fmt"

	"debt-health/domain"
)

// validateAccounts verifica los invariantes de entrada de cada cuenta.
// Una cuenta cuyo pago mínimo no cubre el interés NO se rechaza aquí:
// el simulador la reporta como STALLED y la capa de presentación decide.
func validateAccounts(accounts []domain.Account) error {
	if len(accounts) > MaxAccountsPerRequest {
		return fmt.Errorf("número de cuentas excede el máximo de %d", MaxAccountsPerRequest)
	}

	// Validar IDs únicos
	seen := make(map[string]bool)
	for _, acc := range accounts {
		if acc.ID == "" {
			return errors.New("id de cuenta no puede estar vacío")
		}
		if seen[acc.ID] {
			return fmt.Errorf("id de cuenta duplicado: %s", acc.ID)
		}
		seen[acc.ID] = true

		if acc.Balance < 0 {
			return fmt.Errorf("balance inválido en cuenta %s", acc.ID)
		}
		if acc.Balance > MaxBalance {
			return fmt.Errorf("balance de cuenta %s excede el máximo de %.2f", acc.ID, MaxBalance)
		}
		if acc.APR < 0 {
			return fmt.Errorf("tasa inválida en cuenta %s", acc.ID)
		}
		if acc.APR > MaxAPR {
			return fmt.Errorf("tasa de cuenta %s excede el máximo de %.2f", acc.ID, MaxAPR)
		}
		if acc.MinPayment < 0 {
			return fmt.Errorf("pago mínimo inválido en cuenta %s", acc.ID)
		}
		if acc.DueDay < 1 || acc.DueDay > 31 {
			return fmt.Errorf("día de vencimiento inválido en cuenta %s", acc.ID)
		}
	}
	return nil
}

// activeAccounts devuelve una copia con solo las cuentas con balance vigente.
// Las cuentas saldadas quedan fuera de toda simulación.
func activeAccounts(accounts []domain.Account) []domain.Account {
	active := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if acc.Balance > DebtBalanceTolerance {
			active = append(active, acc)
		}
	}
	return active
}
