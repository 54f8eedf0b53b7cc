// Package paymentplan computes installment-financing payment plans: full
// amortization schedules with financed IOF, TAC and MDR apportionment,
// effective interest rate (EIR) and total effective cost (TEC) per
// settlement point, and down-payment alternatives, all placed on the
// Brazilian business-day calendar at a fixed UTC-3 civil offset.
//
// The package is a pure, stateless calculation library: every call is a
// function of its inputs, results are never persisted, and concurrent
// calls share no mutable state.
package paymentplan

import (
	"errors"
	"fmt"
	"time"

	"github.com/ParceladoLara/payment-plan-go/internal/calendar"
	"github.com/ParceladoLara/payment-plan-go/internal/engine"
)

// CalculatePaymentPlan quotes a plan for every settlement point 1..N:
// element i-1 of the result describes the contract as if it were closed in
// exactly i installments. Input dates are normalized to 07:00 at the fixed
// UTC-3 offset before the schedule is built.
func CalculatePaymentPlan(params Params) ([]Response, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	disbursement := calendar.Normalize(params.DisbursementDate)
	if params.DisbursementOnlyOnBusinessDays {
		disbursement = calendar.NextBusinessDay(disbursement)
	}
	firstDue := calendar.Normalize(params.FirstPaymentDate)

	return computePlan(params, disbursement, firstDue)
}

// computePlan runs the schedule/fee/solver pipeline with already prepared
// disbursement and first-due instants. The down-payment composer calls it
// directly with its own derived dates.
func computePlan(params Params, disbursement, firstDue time.Time) ([]Response, error) {
	periods := engine.BuildSchedule(disbursement, firstDue, params.Installments, params.InterestRate)

	fees := engine.FeeParams{
		RequestedAmount:        params.RequestedAmount,
		InterestRate:           params.InterestRate,
		TacPercentage:          params.TacPercentage,
		Mdr:                    params.Mdr,
		DebitServicePercentage: params.DebitServicePercentage,
		IofOverall:             params.IofOverall,
		IofPercentage:          params.IofPercentage,
	}

	// One shared backing array; Response i holds the prefix of length i.
	invoices := make([]Invoice, len(periods))
	for i, p := range periods {
		invoices[i] = Invoice{
			AccumulatedDays:   p.CalendarDays,
			Factor:            p.Factor,
			AccumulatedFactor: p.AccumulatedFactor,
			DueDate:           p.InvoiceDueDate,
		}
	}

	responses := make([]Response, 0, params.Installments)
	for i := 1; i <= params.Installments; i++ {
		prefix := periods[:i]
		amounts := engine.SolveAmounts(fees, prefix)

		if amounts.InstallmentAmount < params.MinInstallmentAmount {
			return nil, &ConstraintError{
				Constraint: "min_installment_amount",
				Limit:      params.MinInstallmentAmount,
				Actual:     amounts.InstallmentAmount,
			}
		}
		if params.MaxTotalAmount > 0 && amounts.TotalAmount > params.MaxTotalAmount {
			return nil, &ConstraintError{
				Constraint: "max_total_amount",
				Limit:      params.MaxTotalAmount,
				Actual:     amounts.TotalAmount,
			}
		}

		eir, err := engine.SolveEffectiveRate(amounts.InstallmentAmount, prefix, amounts.ContractAmount)
		if err != nil {
			return nil, fmt.Errorf("installment %d eir: %w", i, rateError(err))
		}
		tec, err := engine.SolveEffectiveRate(amounts.InstallmentAmount, prefix, params.RequestedAmount)
		if err != nil {
			return nil, fmt.Errorf("installment %d tec: %w", i, rateError(err))
		}

		responses = append(responses, assembleResponse(params, disbursement, prefix, amounts, eir, tec, invoices[:i]))
	}

	return responses, nil
}

func rateError(err error) error {
	if errors.Is(err, engine.ErrNoConvergence) {
		return ErrRateNotConverged
	}
	return err
}
