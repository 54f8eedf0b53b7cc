package paymentplan

import (
	"fmt"

	"github.com/ParceladoLara/payment-plan-go/internal/calendar"
)

// downPaymentSettlementDays is the calendar gap between the last entry
// payment's due date and the earliest main-loan disbursement.
const downPaymentSettlementDays = 6

// CalculateDownPaymentPlan quotes one alternative per entry-installment
// count k in 1..Installments: the down payment is split into k equal
// upfront payments and the main loan's disbursement moves after the last
// of them. Alternatives whose entry payment would fall below
// MinInstallmentAmount are omitted rather than failing the call; any other
// pipeline error aborts the whole calculation.
func CalculateDownPaymentPlan(params DownPaymentParams) ([]DownPaymentResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	// Down-payment dates stay at the caller's wall-clock time in the
	// fixed civil zone; only embedded invoice dates are re-normalized.
	base := params.FirstPaymentDate.In(calendar.Zone)

	alternatives := make([]DownPaymentResponse, 0, params.Installments)
	for k := 1; k <= params.Installments; k++ {
		entryAmount := params.RequestedAmount / float64(k)
		if entryAmount < params.MinInstallmentAmount {
			continue
		}

		// The derived disbursement models actual money movement, so it
		// always lands on a business day, independent of the flag that
		// governs the caller-supplied main-plan date.
		lastEntryDue := calendar.AddMonths(base, k-1)
		disbursement := calendar.NextBusinessDay(lastEntryDue.AddDate(0, 0, downPaymentSettlementDays))
		firstMainDue := calendar.AddMonths(base, k)

		plans, err := computePlan(params.Params, disbursement, firstMainDue)
		if err != nil {
			return nil, fmt.Errorf("down payment alternative %d: %w", k, err)
		}

		alternatives = append(alternatives, DownPaymentResponse{
			InstallmentAmount:   entryAmount,
			TotalAmount:         params.RequestedAmount,
			InstallmentQuantity: k,
			FirstPaymentDate:    params.FirstPaymentDate,
			Plans:               plans,
		})
	}

	return alternatives, nil
}
