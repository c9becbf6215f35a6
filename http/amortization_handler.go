package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"emi-engine/domain"
	"emi-engine/format"
	"emi-engine/service"
)

type AmortizationHandler struct {
	service  *service.AmortizationService
	currency string
}

func NewAmortizationHandler(service *service.AmortizationService, currency string) *AmortizationHandler {
	return &AmortizationHandler{service: service, currency: currency}
}

func (h *AmortizationHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.LoanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	started := time.Now()
	result, err := h.service.CalculateLoan(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	completed := time.Now()

	response := domain.CalculateResponse{
		Metadata: calculationMetadata(started, completed),
		Result:   result,
		Summary:  h.summarize(input, result),
	}

	// Encode into a buffer first so a failure never corrupts a 200 response.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(response); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// summarize renders the result as display lines, one per headline figure.
func (h *AmortizationHandler) summarize(input domain.LoanInput, result domain.AmortizationResult) []string {
	lines := []string{
		fmt.Sprintf("Principal: %s at %s for %d months",
			format.Currency(h.currency, result.Principal),
			format.Percent(input.AnnualRatePercent), result.TotalMonths),
		fmt.Sprintf("Monthly EMI: %s", format.Currency(h.currency, result.MonthlyEmi)),
		fmt.Sprintf("Total payment: %s", format.Currency(h.currency, result.TotalPayment)),
		fmt.Sprintf("Total interest: %s", format.Currency(h.currency, result.TotalInterest)),
	}

	p := result.Prepayment
	if p == nil {
		return lines
	}

	lines = append(lines, fmt.Sprintf("Outstanding before lump sum (year %d): %s",
		p.AtYear, format.Currency(h.currency, p.Outstanding)))
	if p.Discharged {
		lines = append(lines, fmt.Sprintf("Lump sum of %s clears the loan in year %d",
			format.Currency(h.currency, p.LumpSumApplied), p.AtYear))
		return lines
	}
	lines = append(lines,
		fmt.Sprintf("Revised EMI after lump sum: %s for %d months",
			format.Currency(h.currency, p.RevisedEmi), p.RemainingMonths),
		fmt.Sprintf("Total savings: %s", format.Currency(h.currency, p.TotalSavings)),
	)
	return lines
}

func calculationMetadata(started, completed time.Time) domain.CalculationMetadata {
	return domain.CalculationMetadata{
		CalculationID: uuid.New().String(),
		StartedAt:     started.UTC().Format(time.RFC3339),
		CompletedAt:   completed.UTC().Format(time.RFC3339),
		DurationMs:    completed.Sub(started).Milliseconds(),
	}
}
