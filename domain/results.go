package domain

// AllocationResult es la asignación de pago extra a una cuenta en un ciclo,
// junto con el ahorro de intereses proyectado sobre la vida de esa cuenta.
type AllocationResult struct {
	AccountID string  `json:"accountId"`
	Amount    float64 `json:"amount"`
	Savings   float64 `json:"savings"`
}

// PrioritizerResult es la salida del priorizador avalanche para un ciclo.
type PrioritizerResult struct {
	Allocations  []AllocationResult `json:"allocations"`
	TotalSavings float64            `json:"totalSavings"`
}

// CashFlowEvent es un movimiento del mes representativo: positivo ingreso,
// negativo egreso. AtRisk marca débitos que dejan el saldo corriente negativo.
type CashFlowEvent struct {
	Day            int     `json:"day"`
	Label          string  `json:"label"`
	Amount         float64 `json:"amount"`
	RunningBalance float64 `json:"runningBalance"`
	AtRisk         bool    `json:"atRisk"`
}

// CashFlowResult proyecta el flujo de caja de un ciclo de salario.
type CashFlowResult struct {
	Salary      float64         `json:"salary"`
	TotalEMI    float64         `json:"totalEmi"`
	SafeToSpend float64         `json:"safeToSpend"`
	Events      []CashFlowEvent `json:"events"`
	AtRiskDays  []int           `json:"atRiskDays,omitempty"`
}

// InterestLeakResult cuantifica el interés evitable frente a una tasa óptima
// de referencia. Ambas fugas están acotadas por abajo en cero.
type InterestLeakResult struct {
	BlendedRate  float64 `json:"blendedRate"`
	MonthlyLeak  float64 `json:"monthlyLeak"`
	LifetimeLeak float64 `json:"lifetimeLeak"`
}

// FreedomGPSResult compara el camino actual (solo pagos mínimos) contra el
// camino optimizado con reasignación avalanche mes a mes.
type FreedomGPSResult struct {
	CurrentMonths   int      `json:"currentMonths"`
	OptimizedMonths int      `json:"optimizedMonths"`
	MonthsSaved     int      `json:"monthsSaved"`
	StalledAccounts []string `json:"stalledAccounts,omitempty"`
}

type DebtHealthInput struct {
	Accounts    []Account `json:"accounts"`
	Salary      float64   `json:"salary"`
	SalaryDay   int       `json:"salaryDay"`
	ExtraAmount float64   `json:"extraAmount"`
	OptimalRate float64   `json:"optimalRate"`
}

// DebtHealthReport es la foto completa de salud de deuda que consume la UI.
type DebtHealthReport struct {
	TotalOutstanding float64            `json:"totalOutstanding"`
	TotalEMI         float64            `json:"totalEmi"`
	CashFlow         CashFlowResult     `json:"cashFlow"`
	Leak             InterestLeakResult `json:"interestLeak"`
	Prioritizer      PrioritizerResult  `json:"prioritizer"`
	FreedomGPS       FreedomGPSResult   `json:"freedomGps"`
	Summary          string             `json:"summary,omitempty"`
}

// Entradas por endpoint de la capa HTTP.

type CashFlowInput struct {
	Salary    float64   `json:"salary"`
	SalaryDay int       `json:"salaryDay"`
	Accounts  []Account `json:"accounts"`
}

type InterestLeakInput struct {
	Accounts         []Account `json:"accounts"`
	TotalEMI         float64   `json:"totalEmi"`
	TotalOutstanding float64   `json:"totalOutstanding"`
	OptimalRate      float64   `json:"optimalRate"`
}

type PrioritizeInput struct {
	ExtraAmount float64   `json:"extraAmount"`
	Accounts    []Account `json:"accounts"`
}

type FreedomGPSInput struct {
	Accounts []Account `json:"accounts"`
}
