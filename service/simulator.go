package service

import (
	"math"

	"debt-health/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// roundTo4Decimals redondea tasas, que necesitan más precisión que montos
func roundTo4Decimals(value float64) float64 {
	return math.Round(value*10000) / 10000
}

// SimulatePayoff avanza un balance mes a mes bajo un pago mensual fijo hasta
// saldarlo, alcanzar el horizonte o detectar que el pago no cubre el interés.
// El último pago se limita para que el balance nunca quede negativo. maxMonths
// es el único tope duro del motor; con un valor no positivo se usa
// MaxPayoffMonths.
func SimulatePayoff(balance, monthlyRate, payment float64, maxMonths int) domain.PayoffSimulation {
	if maxMonths <= 0 {
		maxMonths = MaxPayoffMonths
	}

	sim := domain.PayoffSimulation{State: domain.StatePaidOff}
	if balance <= DebtBalanceTolerance {
		// Cuenta ya saldada: nada que simular
		return sim
	}

	for month := 0; month < maxMonths; month++ {
		interest := balance * monthlyRate
		sim.TotalInterest += interest

		if payment <= interest {
			// El balance no decrece: condición terminal distinta de PAID_OFF
			closing := balance + interest - payment
			sim.Months = append(sim.Months, domain.SimulationMonth{
				Month:          month,
				OpeningBalance: roundTo2Decimals(balance),
				Interest:       roundTo2Decimals(interest),
				Payment:        roundTo2Decimals(payment),
				ClosingBalance: roundTo2Decimals(closing),
			})
			sim.State = domain.StateStalled
			sim.TotalInterest = roundTo2Decimals(sim.TotalInterest)
			return sim
		}

		applied := payment
		if applied > balance+interest {
			applied = balance + interest
		}
		closing := balance + interest - applied
		if closing < DebtBalanceTolerance {
			closing = 0
		}

		sim.Months = append(sim.Months, domain.SimulationMonth{
			Month:          month,
			OpeningBalance: roundTo2Decimals(balance),
			Interest:       roundTo2Decimals(interest),
			Payment:        roundTo2Decimals(applied),
			ClosingBalance: roundTo2Decimals(closing),
		})

		balance = closing
		if balance == 0 {
			sim.State = domain.StatePaidOff
			sim.TotalInterest = roundTo2Decimals(sim.TotalInterest)
			return sim
		}
	}

	sim.State = domain.StateHorizonReached
	sim.TotalInterest = roundTo2Decimals(sim.TotalInterest)
	return sim
}
