package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"emi-engine/domain"
	"emi-engine/engine"
	"emi-engine/repository"
)

// roundTo2Decimals rounds a float64 to 2 decimals.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

type AmortizationService struct {
	repo  repository.CalculationRepository
	cache repository.ResultCache
}

// NewAmortizationService creates a new AmortizationService with the given
// repository and cache.
func NewAmortizationService(repo repository.CalculationRepository,
	cache repository.ResultCache,
) *AmortizationService {
	return &AmortizationService{repo: repo, cache: cache}
}

// CalculateLoan computes the monthly installment for the loan, plus the revised
// plan after a lump-sum prepayment when the input carries an applicable one.
func (s *AmortizationService) CalculateLoan(
	input domain.LoanInput,
) (domain.AmortizationResult, error) {

	principal, err := validateInput(input)
	if err != nil {
		return domain.AmortizationResult{}, err
	}

	key := cacheKey(input)
	if cached, ok := s.cache.Get(key); ok {
		var result domain.AmortizationResult
		if err := json.Unmarshal([]byte(cached), &result); err != nil {
			log.Printf("Warning: discarding undecodable cache entry: %v", err)
		} else {
			return result, nil
		}
	}

	emi, err := engine.Emi(principal, input.AnnualRatePercent, input.TenureYears)
	if err != nil {
		return domain.AmortizationResult{}, err
	}

	months := engine.TotalMonths(input.TenureYears)
	total := emi * float64(months)

	result := domain.AmortizationResult{
		Principal:     roundTo2Decimals(principal),
		MonthlyEmi:    roundTo2Decimals(emi),
		TotalMonths:   months,
		TotalPayment:  roundTo2Decimals(total),
		TotalInterest: roundTo2Decimals(total - principal),
	}

	if input.HasPrepayment() {
		outcome, err := prepaymentOutcome(principal, emi, input)
		if err != nil {
			return domain.AmortizationResult{}, err
		}
		result.Prepayment = outcome
	}

	if data, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(key, string(data)); err != nil {
			log.Printf("Warning: failed to cache calculation: %v", err)
		}
	}

	// Record the calculation (not critical if it fails)
	if err := s.repo.Save(input, result); err != nil {
		log.Printf("Warning: failed to save calculation: %v", err)
	}

	return result, nil
}

func validateInput(input domain.LoanInput) (float64, error) {
	if input.LoanAmount < 0 {
		return 0, errors.New("loan amount must be non-negative")
	}
	if input.Downpayment < 0 {
		return 0, errors.New("downpayment must be non-negative")
	}

	principal := input.EffectivePrincipal()
	if principal <= 0 {
		return 0, errors.New("principal must be positive")
	}
	if principal > MaxPrincipal {
		return 0, fmt.Errorf("principal exceeds the maximum of %.2f", MaxPrincipal)
	}
	if input.AnnualRatePercent < 0 {
		return 0, errors.New("rate must be non-negative")
	}
	if input.AnnualRatePercent > MaxAnnualRate {
		return 0, fmt.Errorf("rate exceeds the maximum of %.2f%%", MaxAnnualRate)
	}
	if input.TenureYears <= 0 {
		return 0, errors.New("tenure must be positive")
	}
	if input.TenureYears > MaxTenureYears {
		return 0, fmt.Errorf("tenure exceeds the maximum of %.0f years", MaxTenureYears)
	}
	if engine.TotalMonths(input.TenureYears) < MinTenureMonths {
		return 0, errors.New("tenure is shorter than one month")
	}
	if input.LumpSum < 0 {
		return 0, errors.New("lump sum must be non-negative")
	}
	if input.AtYear < 0 {
		return 0, errors.New("prepayment year must be non-negative")
	}
	return principal, nil
}

func prepaymentOutcome(principal, emi float64, input domain.LoanInput) (*domain.PrepaymentOutcome, error) {
	plan, err := engine.RevisedEmiAfterLumpSum(
		principal,
		input.AnnualRatePercent,
		input.TenureYears,
		input.LumpSum,
		float64(input.AtYear),
	)
	if err != nil {
		return nil, err
	}

	// Savings compare the remaining scheduled payments against the lump sum
	// plus the revised installments over the same months.
	remaining := float64(plan.RemainingMonths)
	savings := emi*remaining - (plan.LumpSumApplied + plan.Emi*remaining)

	return &domain.PrepaymentOutcome{
		LumpSum:         input.LumpSum,
		AtYear:          input.AtYear,
		Outstanding:     roundTo2Decimals(plan.Outstanding),
		LumpSumApplied:  roundTo2Decimals(plan.LumpSumApplied),
		RevisedEmi:      roundTo2Decimals(plan.Emi),
		RemainingMonths: plan.RemainingMonths,
		TotalSavings:    roundTo2Decimals(savings),
		Discharged:      plan.Discharged,
	}, nil
}

func cacheKey(input domain.LoanInput) string {
	return fmt.Sprintf("amort:%g:%g:%g:%g:%g:%g:%d",
		input.LoanAmount,
		input.Downpayment,
		input.Principal,
		input.AnnualRatePercent,
		input.TenureYears,
		input.LumpSum,
		input.AtYear,
	)
}
