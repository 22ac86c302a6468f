package service

import (
	"errors"
	"sort"

	"github.com/sirupsen/logrus"

	"debt-health/domain"
)

type PrioritizerService struct {
	logger *logrus.Logger
}

// NewPrioritizerService creates a new PrioritizerService.
func NewPrioritizerService(logger *logrus.Logger) *PrioritizerService {
	return &PrioritizerService{logger: logger}
}

// Prioritize reparte un monto extra de un solo ciclo entre las cuentas
// vigentes en orden avalanche: APR descendente, y a igual tasa el balance
// mayor primero (a la misma tasa, el balance grande carga más fuga absoluta).
// A cada cuenta se le asigna lo que pueda absorber este ciclo —como máximo lo
// que la deja en cero en el primer mes— y el sobrante rueda a la siguiente.
// El ahorro por cuenta es la diferencia de interés total entre pagar solo el
// mínimo y pagar mínimo más lo asignado; es una estimación de un ciclo, no
// una proyección de por vida (eso lo cubre el comparador Freedom GPS). Las
// cuentas que no reciben nada igual aparecen en el resultado con ceros.
func (s *PrioritizerService) Prioritize(
	extraAmount float64,
	accounts []domain.Account,
) (domain.PrioritizerResult, error) {

	// Validaciones
	if extraAmount < 0 {
		return domain.PrioritizerResult{}, errors.New("monto extra inválido")
	}
	if err := validateAccounts(accounts); err != nil {
		return domain.PrioritizerResult{}, err
	}

	eligible := activeAccounts(accounts)
	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].APR != eligible[j].APR {
			return eligible[i].APR > eligible[j].APR
		}
		return eligible[i].Balance > eligible[j].Balance
	})

	result := domain.PrioritizerResult{
		Allocations: make([]domain.AllocationResult, 0, len(eligible)),
	}

	remaining := extraAmount
	for _, acc := range eligible {
		interest := acc.Balance * acc.MonthlyRate()

		// Tope del ciclo: lo que falta para dejar la cuenta en cero en el
		// primer mes simulado; el excedente rueda a la siguiente cuenta
		needToZero := acc.Balance + interest - acc.MinPayment
		if needToZero < 0 {
			needToZero = 0
		}

		alloc := remaining
		if alloc > needToZero {
			alloc = needToZero
		}

		savings := 0.0
		if alloc > 0 {
			base := SimulatePayoff(acc.Balance, acc.MonthlyRate(), acc.MinPayment, MaxPayoffMonths)
			boosted := SimulatePayoff(acc.Balance, acc.MonthlyRate(), acc.MinPayment+alloc, MaxPayoffMonths)
			savings = base.TotalInterest - boosted.TotalInterest
			if savings < 0 {
				savings = 0
			}
		}

		alloc = roundTo2Decimals(alloc)
		savings = roundTo2Decimals(savings)
		result.Allocations = append(result.Allocations, domain.AllocationResult{
			AccountID: acc.ID,
			Amount:    alloc,
			Savings:   savings,
		})
		result.TotalSavings += savings
		remaining -= alloc
		if remaining < 0 {
			remaining = 0
		}
	}
	result.TotalSavings = roundTo2Decimals(result.TotalSavings)

	s.logger.Debugf("prioritizer allocated %.2f of %.2f across %d accounts",
		extraAmount-remaining, extraAmount, len(eligible))

	return result, nil
}
