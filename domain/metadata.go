package domain

// CalculationMetadata identifies and times one calculation, echoed back to
// the caller alongside the result.
type CalculationMetadata struct {
	CalculationID string `json:"calculation_id"`
	StartedAt     string `json:"started_at"`
	CompletedAt   string `json:"completed_at"`
	DurationMs    int64  `json:"duration_ms"`
}

// CalculateResponse wraps an amortization result with its metadata and the
// human-readable summary lines.
type CalculateResponse struct {
	Metadata CalculationMetadata `json:"calculation_metadata"`
	Result   AmortizationResult  `json:"result"`
	Summary  []string            `json:"summary,omitempty"`
}

// ScheduleResponse wraps a schedule series with its metadata.
type ScheduleResponse struct {
	Metadata CalculationMetadata `json:"calculation_metadata"`
	Result   ScheduleResult      `json:"result"`
}
