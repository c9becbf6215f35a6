package repository

import (
	"sync"

	"emi-engine/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository.
type CalculationRepositoryMemory struct {
	mu   sync.Mutex
	data []CalculationRecord
}

// NewCalculationRepositoryMemory creates a new in-memory calculation
// repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: []CalculationRecord{},
	}
}

// Save stores the calculation in memory.
func (r *CalculationRepositoryMemory) Save(
	input domain.LoanInput,
	result domain.AmortizationResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, CalculationRecord{Input: input, Result: result})
	return nil
}

// Len reports how many calculations have been saved.
func (r *CalculationRepositoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
