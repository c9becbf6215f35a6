// Package engine implements closed-form reducing-balance amortization math.
// All functions are pure and safe for concurrent use.
package engine

import (
	"errors"
	"math"
)

// RevisedPlan describes a loan after a one-time lump-sum prepayment.
// Discharged distinguishes a fully paid-off loan from a computed zero
// installment.
type RevisedPlan struct {
	Emi             float64
	RemainingMonths int
	Outstanding     float64 // balance immediately before the lump sum
	LumpSumApplied  float64 // capped at Outstanding
	Discharged      bool
}

// Emi returns the fixed monthly installment that amortizes principal over
// tenureYears at the given nominal annual rate (in percent, e.g. 8.5).
// A zero rate is treated as linear repayment of the principal.
func Emi(principal, annualRatePercent, tenureYears float64) (float64, error) {
	months := TotalMonths(tenureYears)
	if err := checkDomain(principal, annualRatePercent, months); err != nil {
		return 0, err
	}
	return emiOverMonths(principal, monthlyRate(annualRatePercent), months), nil
}

// OutstandingPrincipal returns the unpaid balance after paidMonths monthly
// payments of the scheduled installment. paidMonths may be fractional.
func OutstandingPrincipal(principal, annualRatePercent, tenureYears, paidMonths float64) (float64, error) {
	months := TotalMonths(tenureYears)
	if err := checkDomain(principal, annualRatePercent, months); err != nil {
		return 0, err
	}
	if paidMonths < 0 {
		return 0, errors.New("paid months must be non-negative")
	}
	if paidMonths > float64(months) {
		return 0, errors.New("paid months exceed the loan tenure")
	}
	return outstandingOverMonths(principal, monthlyRate(annualRatePercent), months, paidMonths), nil
}

// RevisedEmiAfterLumpSum re-amortizes the balance left after a lump-sum
// prepayment at the end of year atYear, keeping the original rate and the
// original end date. A lump sum larger than the outstanding balance is
// capped and the plan is reported as discharged.
func RevisedEmiAfterLumpSum(principal, annualRatePercent, tenureYears, lumpSum, atYear float64) (RevisedPlan, error) {
	months := TotalMonths(tenureYears)
	if err := checkDomain(principal, annualRatePercent, months); err != nil {
		return RevisedPlan{}, err
	}
	if lumpSum < 0 {
		return RevisedPlan{}, errors.New("lump sum must be non-negative")
	}
	if atYear < 0 {
		return RevisedPlan{}, errors.New("prepayment year must be non-negative")
	}

	paidMonths := int(atYear * 12)
	remaining := months - paidMonths
	if remaining <= 0 {
		return RevisedPlan{Discharged: true}, nil
	}

	rate := monthlyRate(annualRatePercent)
	outstanding := outstandingOverMonths(principal, rate, months, float64(paidMonths))
	applied := lumpSum
	if applied > outstanding {
		applied = outstanding
	}

	plan := RevisedPlan{
		RemainingMonths: remaining,
		Outstanding:     outstanding,
		LumpSumApplied:  applied,
	}
	newPrincipal := outstanding - applied
	if newPrincipal == 0 {
		plan.Discharged = true
		return plan, nil
	}
	plan.Emi = emiOverMonths(newPrincipal, rate, remaining)
	return plan, nil
}

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

// TotalMonths converts a tenure in years to whole months, truncating toward
// zero. 1.99 years is 23 months, not 24.
func TotalMonths(tenureYears float64) int {
	return int(tenureYears * 12)
}

func checkDomain(principal, annualRatePercent float64, months int) error {
	if principal <= 0 {
		return errors.New("principal must be positive")
	}
	if annualRatePercent < 0 {
		return errors.New("rate must be non-negative")
	}
	if months < 1 {
		return errors.New("tenure must be positive")
	}
	return nil
}

func emiOverMonths(principal, rate float64, months int) float64 {
	if rate == 0 {
		return principal / float64(months)
	}
	factor := math.Pow(1+rate, float64(months))
	return principal * rate * factor / (factor - 1)
}

func outstandingOverMonths(principal, rate float64, months int, paidMonths float64) float64 {
	if rate == 0 {
		return principal * (1 - paidMonths/float64(months))
	}
	factor := math.Pow(1+rate, float64(months))
	paidFactor := math.Pow(1+rate, paidMonths)
	return principal * (factor - paidFactor) / (factor - 1)
}
