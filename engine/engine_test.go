package engine

import (
	"math"
	"testing"
)

func TestEmi_ReferenceLoan(t *testing.T) {
	// 9,00,000 at 8.5% over 20 years: the published per-lakh installment
	// is 867.82, so the EMI is 7810.41.
	emi, err := Emi(900000, 8.5, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(emi-7810.41) > 0.01 {
		t.Errorf("expected 7810.41, got %.4f", emi)
	}
}

func TestEmi_ZeroRateIsLinearRepayment(t *testing.T) {
	emi, err := Emi(1200, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emi != 100 {
		t.Errorf("expected 100, got %.4f", emi)
	}
}

func TestEmi_FractionalTenureTruncatesToMonths(t *testing.T) {
	// 1.99 years is 23 whole months, not 24.
	got, err := Emi(2300, 0, 1.99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 100 {
		t.Errorf("expected 23-month repayment of 100, got %.4f", got)
	}
}

func TestEmi_DomainErrors(t *testing.T) {
	if _, err := Emi(0, 8.5, 20); err == nil {
		t.Errorf("expected error for non-positive principal")
	}
	if _, err := Emi(-100, 8.5, 20); err == nil {
		t.Errorf("expected error for negative principal")
	}
	if _, err := Emi(100000, -1, 20); err == nil {
		t.Errorf("expected error for negative rate")
	}
	if _, err := Emi(100000, 8.5, 0); err == nil {
		t.Errorf("expected error for zero tenure")
	}
	if _, err := Emi(100000, 8.5, 0.05); err == nil {
		t.Errorf("expected error for tenure shorter than one month")
	}
}

func TestOutstandingPrincipal_Boundaries(t *testing.T) {
	const principal = 900000.0

	start, err := OutstandingPrincipal(principal, 8.5, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(start-principal) > 1e-6 {
		t.Errorf("expected full principal at month 0, got %.6f", start)
	}

	end, err := OutstandingPrincipal(principal, 8.5, 20, 240)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(end) > 1e-6 {
		t.Errorf("expected zero balance at final month, got %.6f", end)
	}
}

func TestOutstandingPrincipal_MonotonicDecrease(t *testing.T) {
	prev := math.Inf(1)
	for paid := 0.0; paid <= 240; paid++ {
		out, err := OutstandingPrincipal(900000, 8.5, 20, paid)
		if err != nil {
			t.Fatalf("month %.0f: unexpected error: %v", paid, err)
		}
		if out >= prev {
			t.Fatalf("balance did not decrease at month %.0f: %.6f >= %.6f", paid, out, prev)
		}
		prev = out
	}
}

func TestOutstandingPrincipal_FractionalMonths(t *testing.T) {
	half, err := OutstandingPrincipal(900000, 8.5, 20, 12.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	at12, _ := OutstandingPrincipal(900000, 8.5, 20, 12)
	at13, _ := OutstandingPrincipal(900000, 8.5, 20, 13)
	if half >= at12 || half <= at13 {
		t.Errorf("expected balance at 12.5 months between months 13 and 12, got %.4f (12: %.4f, 13: %.4f)", half, at12, at13)
	}
}

func TestOutstandingPrincipal_ZeroRateIsLinear(t *testing.T) {
	out, err := OutstandingPrincipal(1200, 0, 1, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(out-600) > 1e-9 {
		t.Errorf("expected 600 after half the term, got %.6f", out)
	}
}

func TestOutstandingPrincipal_RangeErrors(t *testing.T) {
	if _, err := OutstandingPrincipal(900000, 8.5, 20, -1); err == nil {
		t.Errorf("expected error for negative paid months")
	}
	if _, err := OutstandingPrincipal(900000, 8.5, 20, 241); err == nil {
		t.Errorf("expected error for paid months beyond tenure")
	}
}

func TestRevisedEmiAfterLumpSum_ReducesInstallment(t *testing.T) {
	plan, err := RevisedEmiAfterLumpSum(900000, 8.5, 20, 100000, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Discharged {
		t.Fatalf("loan should not be discharged by a partial prepayment")
	}
	if plan.RemainingMonths != 180 {
		t.Errorf("expected 180 remaining months, got %d", plan.RemainingMonths)
	}
	if plan.LumpSumApplied != 100000 {
		t.Errorf("expected full lump sum applied, got %.2f", plan.LumpSumApplied)
	}

	original, _ := Emi(900000, 8.5, 20)
	if plan.Emi <= 0 || plan.Emi >= original {
		t.Errorf("revised EMI %.4f should be positive and below the original %.4f", plan.Emi, original)
	}

	// Re-amortizing the reduced balance over the remaining term must match
	// the base formula.
	want, _ := Emi(plan.Outstanding-plan.LumpSumApplied, 8.5, 15)
	if math.Abs(plan.Emi-want) > 1e-6 {
		t.Errorf("expected revised EMI %.6f, got %.6f", want, plan.Emi)
	}
}

func TestRevisedEmiAfterLumpSum_LumpCoversBalance(t *testing.T) {
	// After 12 months the balance on 5,00,000 at 9% over 15 years is below
	// 5,00,000, so a lump sum of the original principal pays it off.
	plan, err := RevisedEmiAfterLumpSum(500000, 9.0, 15, 500000, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.Discharged {
		t.Fatalf("expected the loan to be discharged")
	}
	if plan.Emi != 0 {
		t.Errorf("expected zero EMI on discharge, got %.4f", plan.Emi)
	}
	if plan.Outstanding >= 500000 {
		t.Errorf("outstanding after 12 months should be below the principal, got %.2f", plan.Outstanding)
	}
	if math.Abs(plan.LumpSumApplied-plan.Outstanding) > 1e-9 {
		t.Errorf("applied lump sum should be capped at the outstanding balance")
	}
}

func TestRevisedEmiAfterLumpSum_AtOrAfterMaturity(t *testing.T) {
	for _, year := range []float64{20, 25} {
		plan, err := RevisedEmiAfterLumpSum(900000, 8.5, 20, 50000, year)
		if err != nil {
			t.Fatalf("year %.0f: unexpected error: %v", year, err)
		}
		if !plan.Discharged {
			t.Errorf("year %.0f: expected discharged plan", year)
		}
		if plan.Emi != 0 || plan.RemainingMonths != 0 {
			t.Errorf("year %.0f: expected empty plan, got %+v", year, plan)
		}
	}
}

func TestRevisedEmiAfterLumpSum_DomainErrors(t *testing.T) {
	if _, err := RevisedEmiAfterLumpSum(900000, 8.5, 20, -1, 5); err == nil {
		t.Errorf("expected error for negative lump sum")
	}
	if _, err := RevisedEmiAfterLumpSum(900000, 8.5, 20, 100000, -1); err == nil {
		t.Errorf("expected error for negative prepayment year")
	}
	if _, err := RevisedEmiAfterLumpSum(0, 8.5, 20, 100000, 5); err == nil {
		t.Errorf("expected error for non-positive principal")
	}
}
