package service

const (
	MaxPayoffMonths       = 600           // 50 años, tope duro de toda simulación
	DebtBalanceTolerance  = 0.01          // tolerancia para considerar deuda pagada
	MaxAccountsPerRequest = 50            // máximo de cuentas por request
	MaxBalance            = 100_000_000.0 // 100 millones
	MaxAPR                = 10.0          // 1000% anual, como fracción
)
