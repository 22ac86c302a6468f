package service

import (
	"fmt"

	"debt-health/domain"
)

// buildSummary genera la lectura ejecutiva del reporte. Es texto determinista:
// el mismo reporte produce siempre la misma frase (idempotencia del motor).
func buildSummary(report domain.DebtHealthReport) string {
	if report.TotalOutstanding == 0 {
		return "No tienes deudas vigentes: no hay fuga de intereses que optimizar."
	}

	if len(report.FreedomGPS.StalledAccounts) > 0 {
		return fmt.Sprintf("Atención: %d de tus cuentas tienen un pago mínimo que no cubre ni el interés mensual, así que su balance nunca baja. Prioriza subir esos pagos antes que cualquier otra optimización.",
			len(report.FreedomGPS.StalledAccounts))
	}

	if report.FreedomGPS.MonthsSaved > 0 {
		return fmt.Sprintf("Tu tasa combinada es %.2f%% anual y pierdes %.2f al mes en intereses evitables. Siguiendo el plan priorizado ahorrarías %.2f en intereses este ciclo y quedarías libre de deudas %d meses antes (%d en lugar de %d).",
			report.Leak.BlendedRate*100, report.Leak.MonthlyLeak,
			report.Prioritizer.TotalSavings, report.FreedomGPS.MonthsSaved,
			report.FreedomGPS.OptimizedMonths, report.FreedomGPS.CurrentMonths)
	}

	return fmt.Sprintf("Tu plan de pagos ya está bien encaminado: quedarás libre de deudas en %d meses y tu fuga de intereses estimada es de %.2f al mes.",
		report.FreedomGPS.CurrentMonths, report.Leak.MonthlyLeak)
}
