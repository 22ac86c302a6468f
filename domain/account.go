package domain

// AccountType clasifica la deuda; afecta la política de pago mínimo por
// defecto en la capa de presentación, no el cálculo en sí.
type AccountType string

const (
	AccountTypeCreditCard   AccountType = "credit-card"
	AccountTypePersonalLoan AccountType = "personal-loan"
	AccountTypeAutoLoan     AccountType = "auto-loan"
	AccountTypeHomeLoan     AccountType = "home-loan"
	AccountTypeOther        AccountType = "other"
)

// Account representa una obligación de deuda declarada por el usuario.
// APR es una fracción anual (0.36 = 36%).
type Account struct {
	ID         string      `json:"id"`
	Type       AccountType `json:"type"`
	Balance    float64     `json:"balance"`
	APR        float64     `json:"apr"`
	MinPayment float64     `json:"minPayment"`
	DueDay     int         `json:"dueDay"`
}

// MonthlyRate es la tasa mensual derivada del APR.
func (a Account) MonthlyRate() float64 {
	return a.APR / 12
}
