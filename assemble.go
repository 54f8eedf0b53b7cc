package paymentplan

import (
	"time"

	"github.com/ParceladoLara/payment-plan-go/internal/engine"
	"github.com/ParceladoLara/payment-plan-go/pkg/money"
)

// assembleResponse maps one solved prefix plan onto the external Response
// shape. Monthly rates display at 4 decimal places, annualized rates at 6,
// both derived from the unrounded roots.
func assembleResponse(
	params Params,
	disbursement time.Time,
	prefix []engine.Period,
	amounts engine.Amounts,
	eir, tec float64,
	invoices []Invoice,
) Response {
	last := prefix[len(prefix)-1]

	return Response{
		Installment:      len(prefix),
		DueDate:          last.DueDate,
		DisbursementDate: disbursement,

		AccumulatedDays:      last.CalendarDays,
		DaysIndex:            last.Factor,
		AccumulatedDaysIndex: last.AccumulatedFactor,
		InterestRate:         params.InterestRate,

		InstallmentAmount:           amounts.InstallmentAmount,
		InstallmentAmountWithoutTac: amounts.InstallmentWithoutTac,
		TotalAmount:                 amounts.TotalAmount,

		DebitService:                             amounts.DebitService,
		CustomerDebitServiceAmount:               amounts.CustomerDebitService,
		CustomerAmount:                           amounts.CustomerAmount,
		CalculationBasisForEffectiveInterestRate: amounts.CalculationBasis,

		MerchantDebitServiceAmount: amounts.MerchantDebitService,
		MerchantTotalAmount:        amounts.MerchantTotalAmount,
		SettledToMerchant:          amounts.SettledToMerchant,
		MdrAmount:                  amounts.MdrAmount,

		EffectiveInterestRate: money.RoundRate(eir),
		TotalEffectiveCost:    money.RoundRate(tec),
		EirYearly:             money.RoundYearlyRate(engine.Annualize(eir)),
		TecYearly:             money.RoundYearlyRate(engine.Annualize(tec)),
		EirMonthly:            money.RoundRate(eir),
		TecMonthly:            money.RoundRate(tec),

		TotalIof:                 amounts.TotalIof,
		ContractAmount:           amounts.ContractAmount,
		ContractAmountWithoutTac: amounts.ContractWithoutTac,
		TacAmount:                amounts.TacAmount,
		IofPercentage:            params.IofPercentage,
		OverallIof:               params.IofOverall,
		PreDisbursementAmount:    amounts.PreDisbursementAmount,
		PaidTotalIof:             amounts.PaidTotalIof,
		PaidContractAmount:       amounts.PaidContractAmount,

		Invoices: invoices,
	}
}
