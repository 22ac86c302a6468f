package service

import (
	"errors"

	"github.com/sirupsen/logrus"

	"debt-health/domain"
)

type LeakService struct {
	logger *logrus.Logger
}

// NewLeakService creates a new LeakService.
func NewLeakService(logger *logrus.Logger) *LeakService {
	return &LeakService{logger: logger}
}

// Estimate cuantifica el interés evitable frente a una tasa óptima de
// referencia. La fuga mensual es la diferencia de tasas aplicada al saldo
// total; la fuga de por vida corre dos simulaciones gemelas (tasa combinada
// vs. tasa óptima, mismo pago total) y reporta la diferencia de interés
// pagado, capturando el efecto compuesto. Ninguna fuga es negativa: una tasa
// combinada por debajo de la óptima simplemente no tiene fuga.
func (s *LeakService) Estimate(
	accounts []domain.Account,
	totalEmi float64,
	totalOutstanding float64,
	optimalRate float64,
) (domain.InterestLeakResult, error) {

	// Validaciones
	if totalEmi < 0 {
		return domain.InterestLeakResult{}, errors.New("EMI total inválido")
	}
	if totalOutstanding < 0 {
		return domain.InterestLeakResult{}, errors.New("saldo total inválido")
	}
	if optimalRate < 0 {
		return domain.InterestLeakResult{}, errors.New("tasa óptima inválida")
	}
	if err := validateAccounts(accounts); err != nil {
		return domain.InterestLeakResult{}, err
	}

	blended := blendedRate(accounts)
	if blended == 0 || totalOutstanding == 0 {
		// Sin saldo vigente no hay fuga que estimar
		return domain.InterestLeakResult{}, nil
	}

	monthlyLeak := totalOutstanding * (blended - optimalRate) / 12
	if monthlyLeak < 0 {
		monthlyLeak = 0
	}

	actual := SimulatePayoff(totalOutstanding, blended/12, totalEmi, MaxPayoffMonths)
	optimal := SimulatePayoff(totalOutstanding, optimalRate/12, totalEmi, MaxPayoffMonths)
	lifetimeLeak := actual.TotalInterest - optimal.TotalInterest
	if lifetimeLeak < 0 {
		lifetimeLeak = 0
	}

	if actual.State == domain.StateStalled {
		s.logger.Warnf("blended-rate simulation stalled: total EMI %.2f does not cover monthly interest", totalEmi)
	}

	return domain.InterestLeakResult{
		BlendedRate:  roundTo4Decimals(blended),
		MonthlyLeak:  roundTo2Decimals(monthlyLeak),
		LifetimeLeak: roundTo2Decimals(lifetimeLeak),
	}, nil
}

// blendedRate es el APR promedio ponderado por balance de las cuentas
// vigentes; cero cuando no hay saldo (nunca divide por cero).
func blendedRate(accounts []domain.Account) float64 {
	weighted := 0.0
	total := 0.0
	for _, acc := range activeAccounts(accounts) {
		weighted += acc.Balance * acc.APR
		total += acc.Balance
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}
