package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"

	"debt-health/domain"
	"debt-health/repository"
)

// DebtHealthService compone los cuatro motores en el reporte completo que
// consume la pantalla principal del producto.
type DebtHealthService struct {
	cashFlow    *CashFlowService
	leak        *LeakService
	prioritizer *PrioritizerService
	freedom     *FreedomGPSService
	reports     repository.ReportRepository
	cache       repository.CacheRepository
	logger      *logrus.Logger
}

func NewDebtHealthService(
	cashFlow *CashFlowService,
	leak *LeakService,
	prioritizer *PrioritizerService,
	freedom *FreedomGPSService,
	reports repository.ReportRepository,
	cache repository.CacheRepository,
	logger *logrus.Logger,
) *DebtHealthService {
	return &DebtHealthService{
		cashFlow:    cashFlow,
		leak:        leak,
		prioritizer: prioritizer,
		freedom:     freedom,
		reports:     reports,
		cache:       cache,
		logger:      logger,
	}
}

// BuildReport valida la entrada, deriva el EMI y el saldo totales y corre
// proyección de flujo, fuga de intereses, priorizador y Freedom GPS sobre
// copias privadas de las cuentas. El motor es determinista, así que el
// resultado se cachea por el hash de la entrada.
func (s *DebtHealthService) BuildReport(input domain.DebtHealthInput) (domain.DebtHealthReport, error) {

	// Validaciones
	if len(input.Accounts) == 0 {
		return domain.DebtHealthReport{}, errors.New("no se proporcionaron cuentas")
	}
	if input.Salary < 0 {
		return domain.DebtHealthReport{}, errors.New("salario inválido")
	}
	if input.SalaryDay < 1 || input.SalaryDay > 31 {
		return domain.DebtHealthReport{}, errors.New("día de salario inválido")
	}
	if input.ExtraAmount < 0 {
		return domain.DebtHealthReport{}, errors.New("monto extra inválido")
	}
	if input.OptimalRate < 0 {
		return domain.DebtHealthReport{}, errors.New("tasa óptima inválida")
	}
	if err := validateAccounts(input.Accounts); err != nil {
		return domain.DebtHealthReport{}, err
	}

	key := cacheKey(input)
	if cached, ok := s.cache.Get(key); ok {
		var report domain.DebtHealthReport
		if err := json.Unmarshal([]byte(cached), &report); err == nil {
			s.logger.Debugf("debt health report served from cache (key %s)", key[:12])
			return report, nil
		}
		s.logger.Warnf("discarding corrupt cache entry %s", key[:12])
	}

	active := activeAccounts(input.Accounts)
	totalOutstanding := 0.0
	totalEmi := 0.0
	for _, acc := range active {
		totalOutstanding += acc.Balance
		totalEmi += acc.MinPayment
	}

	cashFlow, err := s.cashFlow.Project(input.Salary, input.SalaryDay, input.Accounts)
	if err != nil {
		return domain.DebtHealthReport{}, err
	}
	leak, err := s.leak.Estimate(input.Accounts, totalEmi, totalOutstanding, input.OptimalRate)
	if err != nil {
		return domain.DebtHealthReport{}, err
	}
	prioritizer, err := s.prioritizer.Prioritize(input.ExtraAmount, input.Accounts)
	if err != nil {
		return domain.DebtHealthReport{}, err
	}
	freedom, err := s.freedom.Compare(input.Accounts)
	if err != nil {
		return domain.DebtHealthReport{}, err
	}

	report := domain.DebtHealthReport{
		TotalOutstanding: roundTo2Decimals(totalOutstanding),
		TotalEMI:         roundTo2Decimals(totalEmi),
		CashFlow:         cashFlow,
		Leak:             leak,
		Prioritizer:      prioritizer,
		FreedomGPS:       freedom,
	}
	report.Summary = buildSummary(report)

	if encoded, err := json.Marshal(report); err == nil {
		if err := s.cache.Set(key, string(encoded)); err != nil {
			s.logger.Warnf("failed to cache debt health report: %v", err)
		}
	}

	// Guardar el reporte (no crítico si falla)
	if err := s.reports.Save(input, report); err != nil {
		s.logger.Warnf("failed to save debt health report: %v", err)
	}

	return report, nil
}

// cacheKey es el hash de la forma canónica JSON de la entrada; el motor es
// puro, así que entradas idénticas siempre producen el mismo reporte.
func cacheKey(input domain.DebtHealthInput) string {
	encoded, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(encoded)
	return "debt-health:" + hex.EncodeToString(sum[:])
}
