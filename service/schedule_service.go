package service

import (
	"emi-engine/domain"
)

type ScheduleService struct {
	amortization *AmortizationService
}

func NewScheduleService(amortization *AmortizationService) *ScheduleService {
	return &ScheduleService{
		amortization: amortization,
	}
}

// GenerateSchedule simulates the loan month by month: interest accrues on the open
// balance, the installment covers interest first, and an applicable lump-sum
// prepayment lands right after that month's installment. The series starts at
// month 0 with the full principal and is truncated once the balance reaches
// zero.
func (s *ScheduleService) GenerateSchedule(
	input domain.LoanInput,
) (domain.ScheduleResult, error) {

	calc, err := s.amortization.CalculateLoan(input)
	if err != nil {
		return domain.ScheduleResult{}, err
	}

	monthlyRate := input.AnnualRatePercent / 100 / 12
	emi := calc.MonthlyEmi

	lumpMonth := 0
	if calc.Prepayment != nil {
		lumpMonth = calc.Prepayment.AtYear * 12
	}

	balance := calc.Principal
	points := []domain.SchedulePoint{{Month: 0, Outstanding: balance}}
	totalPaid := 0.0
	totalInterest := 0.0
	paidOffMonth := 0

	for month := 1; month <= calc.TotalMonths; month++ {
		interest := balance * monthlyRate

		// The closing installment settles whatever is left, absorbing the
		// rounding drift the fixed installment accumulates.
		payment := emi
		if month == calc.TotalMonths || payment > balance+interest {
			payment = balance + interest
		}

		principalPaid := payment - interest
		balance -= principalPaid
		if balance < 0 {
			balance = 0
		}

		totalPaid += payment
		totalInterest += interest

		point := domain.SchedulePoint{
			Month:         month,
			Payment:       roundTo2Decimals(payment),
			PrincipalPaid: roundTo2Decimals(principalPaid),
			InterestPaid:  roundTo2Decimals(interest),
		}

		if calc.Prepayment != nil && month == lumpMonth {
			applied := calc.Prepayment.LumpSumApplied
			if calc.Prepayment.Discharged || applied > balance {
				applied = balance
			}
			balance -= applied
			totalPaid += applied
			point.LumpSum = roundTo2Decimals(applied)
			emi = calc.Prepayment.RevisedEmi
		}

		if balance <= BalanceTolerance {
			balance = 0
		}
		point.Outstanding = roundTo2Decimals(balance)
		points = append(points, point)

		if balance == 0 && month < calc.TotalMonths {
			paidOffMonth = month
			break
		}
	}

	result := domain.ScheduleResult{
		Principal:     calc.Principal,
		MonthlyEmi:    calc.MonthlyEmi,
		TotalMonths:   calc.TotalMonths,
		PaidOffMonth:  paidOffMonth,
		TotalPaid:     roundTo2Decimals(totalPaid),
		TotalInterest: roundTo2Decimals(totalInterest),
		Points:        points,
	}
	if calc.Prepayment != nil {
		result.RevisedEmi = calc.Prepayment.RevisedEmi
	}
	return result, nil
}
