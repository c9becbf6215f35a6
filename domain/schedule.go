package domain

// SchedulePoint is one month of the amortization series. Month 0 is the
// starting balance; every later point records that month's installment
// split into principal and interest, plus the balance it leaves behind.
// LumpSum is non-zero only on the prepayment month.
type SchedulePoint struct {
	Month         int     `json:"month"`
	Payment       float64 `json:"payment"`
	PrincipalPaid float64 `json:"principal_paid"`
	InterestPaid  float64 `json:"interest_paid"`
	LumpSum       float64 `json:"lump_sum,omitempty"`
	Outstanding   float64 `json:"outstanding"`
}

// ScheduleResult is the month-by-month series behind the balance and
// principal/interest charts. When a lump sum discharges the loan early the
// series stops at PaidOffMonth instead of TotalMonths.
type ScheduleResult struct {
	Principal     float64         `json:"principal"`
	MonthlyEmi    float64         `json:"monthly_emi"`
	RevisedEmi    float64         `json:"revised_emi,omitempty"`
	TotalMonths   int             `json:"total_months"`
	PaidOffMonth  int             `json:"paid_off_month,omitempty"`
	TotalPaid     float64         `json:"total_paid"`
	TotalInterest float64         `json:"total_interest"`
	Points        []SchedulePoint `json:"points"`
}
