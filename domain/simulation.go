package domain

// TerminalState indica cómo terminó una simulación de pago.
type TerminalState string

const (
	// StatePaidOff el balance llegó exactamente a cero.
	StatePaidOff TerminalState = "PAID_OFF"
	// StateHorizonReached se alcanzó el horizonte máximo de meses sin saldar.
	StateHorizonReached TerminalState = "HORIZON_REACHED"
	// StateStalled el pago mensual no cubre ni el interés: el balance nunca baja.
	StateStalled TerminalState = "STALLED"
)

// SimulationMonth es un paso de la simulación de amortización.
type SimulationMonth struct {
	Month          int     `json:"month"`
	OpeningBalance float64 `json:"openingBalance"`
	Interest       float64 `json:"interest"`
	Payment        float64 `json:"payment"`
	ClosingBalance float64 `json:"closingBalance"`
}

// PayoffSimulation es el resultado completo de una corrida del simulador.
type PayoffSimulation struct {
	Months        []SimulationMonth `json:"months"`
	State         TerminalState     `json:"state"`
	TotalInterest float64           `json:"totalInterest"`
}

// MonthsToPayoff devuelve los meses simulados hasta el estado terminal.
func (p PayoffSimulation) MonthsToPayoff() int {
	return len(p.Months)
}
