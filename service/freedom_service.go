package service

import (
	"sort"

	"github.com/sirupsen/logrus"

	"debt-health/domain"
)

type FreedomGPSService struct {
	logger *logrus.Logger
}

// NewFreedomGPSService creates a new FreedomGPSService.
func NewFreedomGPSService(logger *logrus.Logger) *FreedomGPSService {
	return &FreedomGPSService{logger: logger}
}

// balanceSnapshot es la copia mutable por simulación; nunca se comparte con
// la lista de cuentas del caller.
type balanceSnapshot struct {
	id         string
	apr        float64
	minPayment float64
	balance    float64
}

// Compare corre los dos caminos a cero deuda. Camino actual: cada cuenta paga
// su mínimo de forma independiente; el hogar queda libre cuando la última
// cuenta se salda. Camino optimizado: el presupuesto total (la suma de los
// mínimos) se mantiene constante y la capacidad liberada por cuentas saldadas
// rueda cada mes hacia la cuenta vigente de mayor APR, reordenando en cada
// mes simulado. Una cuenta STALLED fija el camino actual en el horizonte y se
// reporta por su id; no es un error.
func (s *FreedomGPSService) Compare(accounts []domain.Account) (domain.FreedomGPSResult, error) {
	if err := validateAccounts(accounts); err != nil {
		return domain.FreedomGPSResult{}, err
	}

	active := activeAccounts(accounts)
	if len(active) == 0 {
		return domain.FreedomGPSResult{}, nil
	}

	// Camino actual: solo pagos mínimos, cuentas independientes
	currentMonths := 0
	stalled := []string{}
	for _, acc := range active {
		sim := SimulatePayoff(acc.Balance, acc.MonthlyRate(), acc.MinPayment, MaxPayoffMonths)
		months := sim.MonthsToPayoff()
		if sim.State != domain.StatePaidOff {
			months = MaxPayoffMonths
		}
		if sim.State == domain.StateStalled {
			stalled = append(stalled, acc.ID)
		}
		if months > currentMonths {
			currentMonths = months
		}
	}

	optimizedMonths := s.simulateRollover(active)

	monthsSaved := currentMonths - optimizedMonths
	if monthsSaved < 0 {
		monthsSaved = 0
	}

	if len(stalled) > 0 {
		s.logger.Warnf("freedom GPS: %d accounts stalled under minimum payments", len(stalled))
	}

	return domain.FreedomGPSResult{
		CurrentMonths:   currentMonths,
		OptimizedMonths: optimizedMonths,
		MonthsSaved:     monthsSaved,
		StalledAccounts: stalled,
	}, nil
}

// simulateRollover devuelve los meses hasta saldar todo bajo reasignación
// avalanche mes a mes, o el horizonte si no converge.
func (s *FreedomGPSService) simulateRollover(active []domain.Account) int {
	snapshots := make([]*balanceSnapshot, len(active))
	budget := 0.0
	for i, acc := range active {
		snapshots[i] = &balanceSnapshot{
			id:         acc.ID,
			apr:        acc.APR,
			minPayment: acc.MinPayment,
			balance:    acc.Balance,
		}
		budget += acc.MinPayment
	}

	for month := 1; month <= MaxPayoffMonths; month++ {
		// Acumular interés sobre los balances vigentes
		for _, snap := range snapshots {
			if snap.balance > DebtBalanceTolerance {
				// Misma asociación que el simulador: balance * (apr/12)
				snap.balance += snap.balance * (snap.apr / 12)
			}
		}

		// Pagar mínimos
		remaining := budget
		for _, snap := range snapshots {
			if snap.balance <= DebtBalanceTolerance {
				continue
			}
			pay := snap.minPayment
			if pay > snap.balance {
				pay = snap.balance
			}
			if pay > remaining {
				pay = remaining
			}
			snap.balance -= pay
			remaining -= pay
		}

		// Verter la capacidad liberada en la cuenta vigente de mayor APR,
		// reordenando mientras se van saldando dentro del mismo mes
		for remaining > DebtBalanceTolerance {
			target := pickTarget(snapshots)
			if target == nil {
				break
			}
			pay := remaining
			if pay > target.balance {
				pay = target.balance
			}
			target.balance -= pay
			remaining -= pay
		}

		allPaid := true
		for _, snap := range snapshots {
			if snap.balance > DebtBalanceTolerance {
				allPaid = false
				break
			}
		}
		if allPaid {
			return month
		}
	}
	return MaxPayoffMonths
}

// pickTarget elige la cuenta vigente de mayor APR, balance mayor como
// desempate; nil cuando no queda ninguna.
func pickTarget(snapshots []*balanceSnapshot) *balanceSnapshot {
	alive := make([]*balanceSnapshot, 0, len(snapshots))
	for _, snap := range snapshots {
		if snap.balance > DebtBalanceTolerance {
			alive = append(alive, snap)
		}
	}
	if len(alive) == 0 {
		return nil
	}
	sort.SliceStable(alive, func(i, j int) bool {
		if alive[i].apr != alive[j].apr {
			return alive[i].apr > alive[j].apr
		}
		return alive[i].balance > alive[j].balance
	})
	return alive[0]
}
