package engine

import (
	"github.com/ParceladoLara/payment-plan-go/pkg/money"
)

const (
	// iofDayCap caps the daily IOF accrual window per installment.
	iofDayCap = 365
	// grossUpTolerance stops the IOF gross-up fixed point.
	grossUpTolerance = 1e-9
	// grossUpMaxIterations bounds the fixed point; convergence is
	// geometric and reaches tolerance in a handful of rounds.
	grossUpMaxIterations = 256
)

// FeeParams carries the monetary inputs of one plan solve.
type FeeParams struct {
	RequestedAmount        float64
	InterestRate           float64
	TacPercentage          float64
	Mdr                    float64
	DebitServicePercentage float64
	IofOverall             float64
	IofPercentage          float64
}

// Amounts is the solved monetary breakdown of a plan with len(periods)
// installments.
type Amounts struct {
	InstallmentAmount     float64
	TotalAmount           float64
	ContractAmount        float64
	DebitService          float64
	CustomerDebitService  float64
	MerchantDebitService  float64
	CustomerAmount        float64
	CalculationBasis      float64
	MdrAmount             float64
	SettledToMerchant     float64
	MerchantTotalAmount   float64
	TotalIof              float64
	PaidTotalIof          float64
	PaidContractAmount    float64
	PreDisbursementAmount float64
	TacAmount             float64
	InstallmentWithoutTac float64
	ContractWithoutTac    float64
}

// SolveAmounts distributes the financed principal across the schedule.
//
// The IOF owed per installment depends on each period's amortization, which
// depends on the financed total, which includes the IOF itself: the tax is
// financed (grossed up). The loop below iterates that fixed point on the
// unrounded totals, then applies the cents rounding chain once at the end.
// paid_* fields accumulate the per-installment rounded tax and may drift
// from the unrounded total by a cent; that drift is contractual behavior,
// not an error to redistribute.
func SolveAmounts(p FeeParams, periods []Period) Amounts {
	n := len(periods)
	if n == 0 {
		return Amounts{}
	}

	tacAmount := 0.0
	if p.TacPercentage > 0 {
		tacAmount = money.RoundCents(p.RequestedAmount * p.TacPercentage)
	}

	rawIof, paidIof := solveIofGrossUp(p, periods, tacAmount)

	annuity := periods[n-1].AccumulatedFactor
	totalIof := money.RoundCents(rawIof)
	contract := money.RoundCents(p.RequestedAmount + tacAmount + rawIof)
	installment := money.RoundCents(contract / annuity)
	total := float64(n) * installment

	debitService := total - contract
	customerDS := debitService * (1 - p.DebitServicePercentage)
	merchantDS := debitService * p.DebitServicePercentage

	mdrAmount := money.RoundCents(p.RequestedAmount * p.Mdr)

	a := Amounts{
		InstallmentAmount:     installment,
		TotalAmount:           total,
		ContractAmount:        contract,
		DebitService:          debitService,
		CustomerDebitService:  customerDS,
		MerchantDebitService:  merchantDS,
		CustomerAmount:        installment,
		CalculationBasis:      (p.RequestedAmount + customerDS) / float64(n),
		MdrAmount:             mdrAmount,
		SettledToMerchant:     p.RequestedAmount - mdrAmount,
		MerchantTotalAmount:   mdrAmount + merchantDS,
		TotalIof:              totalIof,
		PaidTotalIof:          paidIof,
		PaidContractAmount:    p.RequestedAmount + tacAmount + paidIof,
		PreDisbursementAmount: money.RoundCents(p.RequestedAmount + tacAmount + paidIof - totalIof),
		TacAmount:             tacAmount,
	}

	// With no TAC configured every TAC-derived field is identically zero;
	// otherwise re-solve without the fee to expose the comparison figures.
	if p.TacPercentage > 0 {
		noTac := p
		noTac.TacPercentage = 0
		rawNoTac, _ := solveIofGrossUp(noTac, periods, 0)
		a.ContractWithoutTac = money.RoundCents(p.RequestedAmount + rawNoTac)
		a.InstallmentWithoutTac = money.RoundCents(a.ContractWithoutTac / annuity)
	}

	return a
}

// solveIofGrossUp iterates the financed-IOF fixed point and returns the
// converged unrounded tax total plus the sum of per-installment
// rounded-to-cents contributions.
func solveIofGrossUp(p FeeParams, periods []Period, tacAmount float64) (rawTotal, paidTotal float64) {
	n := len(periods)
	base := p.RequestedAmount + tacAmount

	iof := make([]float64, n)
	financed := base
	for iter := 0; iter < grossUpMaxIterations; iter++ {
		payment := financed / periods[n-1].AccumulatedFactor

		// Price amortization: per-period rate from consecutive discount
		// factors, final period clears the remaining balance.
		balance := financed
		prevFactor := 1.0
		for i, period := range periods {
			periodRate := prevFactor/period.Factor - 1
			prevFactor = period.Factor

			amortization := payment - balance*periodRate
			if i == n-1 {
				amortization = balance
			}

			days := period.CalendarDays
			if days > iofDayCap {
				days = iofDayCap
			}
			iof[i] = amortization * (p.IofOverall + p.IofPercentage*float64(days))
			balance -= amortization
		}

		next := base
		for _, v := range iof {
			next += v
		}
		converged := next-financed < grossUpTolerance && financed-next < grossUpTolerance
		financed = next
		if converged {
			break
		}
	}

	for _, v := range iof {
		rawTotal += v
		paidTotal += money.RoundCents(v)
	}
	// paidTotal is a sum of exact cent values; squash float drift.
	return rawTotal, money.RoundCents(paidTotal)
}
