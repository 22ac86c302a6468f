package service

import (
	"errors"
	"sort"

	"github.com/sirupsen/logrus"

	"debt-health/domain"
)

type CashFlowService struct {
	logger *logrus.Logger
}

// NewCashFlowService creates a new CashFlowService.
func NewCashFlowService(logger *logrus.Logger) *CashFlowService {
	return &CashFlowService{logger: logger}
}

// Project construye el mes representativo: acredita el salario en salaryDay,
// debita cada pago mínimo en su día de vencimiento y recorre el ciclo en orden
// acumulando el saldo corriente. Los EMI con vencimiento anterior al día de
// salario se pagan del sobrante del ciclo previo, no del crédito del mes en
// curso; por eso el recorrido arranca en el día de salario y envuelve el mes,
// en lugar de recorrer el mes calendario aislado.
func (s *CashFlowService) Project(
	salary float64,
	salaryDay int,
	accounts []domain.Account,
) (domain.CashFlowResult, error) {

	// Validaciones
	if salary < 0 {
		return domain.CashFlowResult{}, errors.New("salario inválido")
	}
	if salaryDay < 1 || salaryDay > 31 {
		return domain.CashFlowResult{}, errors.New("día de salario inválido")
	}
	if err := validateAccounts(accounts); err != nil {
		return domain.CashFlowResult{}, err
	}

	active := activeAccounts(accounts)

	events := []domain.CashFlowEvent{{
		Day:    salaryDay,
		Label:  "salario",
		Amount: salary,
	}}

	totalEmi := 0.0
	for _, acc := range active {
		events = append(events, domain.CashFlowEvent{
			Day:    acc.DueDay,
			Label:  "EMI " + acc.ID,
			Amount: -acc.MinPayment,
		})
		totalEmi += acc.MinPayment
	}

	// Orden de ciclo de pago: distancia desde el día de salario, envolviendo
	// el mes. En el mismo día, los créditos entran antes que los débitos.
	cycleOffset := func(day int) int {
		return (day - salaryDay + 31) % 31
	}
	sort.SliceStable(events, func(i, j int) bool {
		oi, oj := cycleOffset(events[i].Day), cycleOffset(events[j].Day)
		if oi != oj {
			return oi < oj
		}
		return events[i].Amount > events[j].Amount
	})

	running := 0.0
	atRiskDays := []int{}
	flagged := make(map[int]bool)
	for i := range events {
		running += events[i].Amount
		events[i].Amount = roundTo2Decimals(events[i].Amount)
		events[i].RunningBalance = roundTo2Decimals(running)
		if events[i].Amount < 0 && events[i].RunningBalance < 0 {
			events[i].AtRisk = true
			if !flagged[events[i].Day] {
				flagged[events[i].Day] = true
				atRiskDays = append(atRiskDays, events[i].Day)
			}
		}
	}

	if len(atRiskDays) > 0 {
		s.logger.Warnf("cash flow projection found %d at-risk days (salary day %d)",
			len(atRiskDays), salaryDay)
	}

	return domain.CashFlowResult{
		Salary:      roundTo2Decimals(salary),
		TotalEMI:    roundTo2Decimals(totalEmi),
		SafeToSpend: roundTo2Decimals(salary - totalEmi),
		Events:      events,
		AtRiskDays:  atRiskDays,
	}, nil
}
