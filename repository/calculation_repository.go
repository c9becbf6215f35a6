package repository

import "emi-engine/domain"

// CalculationRecord pairs a loan input with the result computed for it.
type CalculationRecord struct {
	Input  domain.LoanInput
	Result domain.AmortizationResult
}

type CalculationRepository interface {
	Save(input domain.LoanInput, result domain.AmortizationResult) error
}
