package domain

// LoanInput carries one amortization request. Principal may be given
// directly; when it is zero it is derived as LoanAmount - Downpayment.
// The lump-sum fields are optional: a prepayment is evaluated only when
// LumpSum is positive and AtYear falls inside the tenure.
type LoanInput struct {
	LoanAmount        float64 `json:"loan_amount"`
	Downpayment       float64 `json:"downpayment"`
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureYears       float64 `json:"tenure_years"`
	LumpSum           float64 `json:"lump_sum"`
	AtYear            int     `json:"at_year"`
}

// EffectivePrincipal resolves the financed amount for this input.
func (in LoanInput) EffectivePrincipal() float64 {
	if in.Principal != 0 {
		return in.Principal
	}
	return in.LoanAmount - in.Downpayment
}

// HasPrepayment reports whether the optional lump sum takes effect:
// a positive amount at a whole year inside [1, tenure).
func (in LoanInput) HasPrepayment() bool {
	return in.LumpSum > 0 && in.AtYear >= 1 && float64(in.AtYear) < in.TenureYears
}

// AmortizationResult is the response for one calculation.
// TotalPayment = MonthlyEmi x TotalMonths and TotalInterest =
// TotalPayment - Principal, both rounded to two decimals.
type AmortizationResult struct {
	Principal     float64            `json:"principal"`
	MonthlyEmi    float64            `json:"monthly_emi"`
	TotalMonths   int                `json:"total_months"`
	TotalPayment  float64            `json:"total_payment"`
	TotalInterest float64            `json:"total_interest"`
	Prepayment    *PrepaymentOutcome `json:"prepayment,omitempty"`
}

// PrepaymentOutcome is present only when a valid lump-sum prepayment was
// applied. Discharged marks a lump sum that cleared the whole balance, as
// opposed to a genuinely computed zero installment.
type PrepaymentOutcome struct {
	LumpSum         float64 `json:"lump_sum"`
	AtYear          int     `json:"at_year"`
	Outstanding     float64 `json:"outstanding_before_lump"`
	LumpSumApplied  float64 `json:"lump_sum_applied"`
	RevisedEmi      float64 `json:"revised_emi"`
	RemainingMonths int     `json:"remaining_months"`
	TotalSavings    float64 `json:"total_savings"`
	Discharged      bool    `json:"discharged"`
}
