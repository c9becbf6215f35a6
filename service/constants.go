package service

const (
	MaxPrincipal    = 1_000_000_000.0 // 100 crore
	MaxAnnualRate   = 100.0           // 100% per year
	MaxTenureYears  = 100.0
	MinTenureMonths = 1

	// BalanceTolerance is the residual below which a schedule balance is
	// considered paid off.
	BalanceTolerance = 0.01
)
