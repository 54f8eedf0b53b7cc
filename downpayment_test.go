package paymentplan_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paymentplan "github.com/ParceladoLara/payment-plan-go"
)

func referenceDownPaymentParams() paymentplan.DownPaymentParams {
	return paymentplan.DownPaymentParams{
		Params:               referenceParams(),
		RequestedAmount:      1000,
		FirstPaymentDate:     date(2025, time.May, 3),
		Installments:         4,
		MinInstallmentAmount: 100,
	}
}

func TestCalculateDownPaymentPlan_ReferenceScenario(t *testing.T) {
	expected := []struct {
		quantity          int
		entryAmount       float64
		disbursement      time.Time // main plan disbursement, midnight UTC-3
		firstDueDate      time.Time
		firstInstallment  float64 // plan installment 1 amount
		firstAccumDays    int
		firstEir          float64
		fourthDueDate     time.Time
		fourthInstallment float64
		fourthAccumDays   int
		fourthEir         float64
	}{
		{
			quantity: 1, entryAmount: 1000,
			disbursement: date(2025, time.May, 9),
			firstDueDate: date(2025, time.June, 3), firstInstallment: 7994.83, firstAccumDays: 25, firstEir: 0.0231,
			fourthDueDate: date(2025, time.September, 3), fourthInstallment: 2078.54, fourthAccumDays: 117, fourthEir: 0.0236,
		},
		{
			quantity: 2, entryAmount: 500,
			disbursement: date(2025, time.June, 9),
			firstDueDate: date(2025, time.July, 3), firstInstallment: 7994.17, firstAccumDays: 24, firstEir: 0.0241,
			fourthDueDate: date(2025, time.October, 3), fourthInstallment: 2080.16, fourthAccumDays: 116, fourthEir: 0.0241,
		},
		{
			// 2025-08-03 is a Sunday: the first main due date snaps to the 4th.
			quantity: 3, entryAmount: 1000.0 / 3.0,
			disbursement: date(2025, time.July, 9),
			firstDueDate: date(2025, time.August, 4), firstInstallment: 8004.34, firstAccumDays: 26, firstEir: 0.0236,
			fourthDueDate: date(2025, time.November, 3), fourthInstallment: 2082.05, fourthAccumDays: 117, fourthEir: 0.0243,
		},
		{
			// 2025-08-09 is a Saturday: disbursement snaps to Monday the 11th.
			quantity: 4, entryAmount: 250,
			disbursement: date(2025, time.August, 11),
			firstDueDate: date(2025, time.September, 3), firstInstallment: 7993.50, firstAccumDays: 23, firstEir: 0.0252,
			fourthDueDate: date(2025, time.December, 3), fourthInstallment: 0, fourthAccumDays: 0, fourthEir: 0,
		},
	}

	resp, err := paymentplan.CalculateDownPaymentPlan(referenceDownPaymentParams())
	require.NoError(t, err)
	require.Len(t, resp, 4)

	for i, want := range expected {
		got := resp[i]

		assert.Equal(t, want.quantity, got.InstallmentQuantity)
		assert.InDelta(t, want.entryAmount, got.InstallmentAmount, 1e-9)
		assert.Equal(t, 1000.0, got.TotalAmount)
		assert.True(t, got.FirstPaymentDate.Equal(date(2025, time.May, 3)))

		require.Len(t, got.Plans, 4, "alternative %d", want.quantity)

		first := got.Plans[0]
		assert.True(t, first.DisbursementDate.Equal(want.disbursement),
			"alternative %d disbursement: want %s, got %s", want.quantity, want.disbursement, first.DisbursementDate)
		assert.True(t, first.DueDate.Equal(want.firstDueDate),
			"alternative %d first due: want %s, got %s", want.quantity, want.firstDueDate, first.DueDate)
		assert.Equal(t, want.firstAccumDays, first.AccumulatedDays)
		assert.InDelta(t, want.firstInstallment, first.InstallmentAmount, moneyTol)
		assert.InDelta(t, want.firstEir, first.EffectiveInterestRate, monthlyRateTol)

		if want.fourthInstallment > 0 {
			fourth := got.Plans[3]
			assert.True(t, fourth.DueDate.Equal(want.fourthDueDate),
				"alternative %d fourth due: want %s, got %s", want.quantity, want.fourthDueDate, fourth.DueDate)
			assert.Equal(t, want.fourthAccumDays, fourth.AccumulatedDays)
			assert.InDelta(t, want.fourthInstallment, fourth.InstallmentAmount, moneyTol)
			assert.InDelta(t, want.fourthEir, fourth.EffectiveInterestRate, monthlyRateTol)
		}

		// Entry split invariant.
		assert.InDelta(t, got.TotalAmount, got.InstallmentAmount*float64(got.InstallmentQuantity),
			0.01*float64(got.InstallmentQuantity))

		// Response-level dates keep the caller's wall clock; embedded
		// invoice dates are normalized to 07:00 at the fixed offset.
		for _, inv := range first.Invoices {
			assert.Equal(t, 7, inv.DueDate.Hour())
		}
	}
}

func TestCalculateDownPaymentPlan_DisbursementAlwaysOnBusinessDay(t *testing.T) {
	// The derived main-loan disbursement models actual money movement and
	// lands on a business day regardless of the main-plan flag.
	flagged := referenceDownPaymentParams()
	unflagged := referenceDownPaymentParams()
	unflagged.Params.DisbursementOnlyOnBusinessDays = false

	want, err := paymentplan.CalculateDownPaymentPlan(flagged)
	require.NoError(t, err)
	got, err := paymentplan.CalculateDownPaymentPlan(unflagged)
	require.NoError(t, err)

	// 2025-08-09 (alternative 4's raw settlement date) is a Saturday.
	require.Len(t, got, 4)
	assert.True(t, got[3].Plans[0].DisbursementDate.Equal(date(2025, time.August, 11)),
		"alternative 4 disbursement: got %s", got[3].Plans[0].DisbursementDate)
	assert.Equal(t, want, got)
}

func TestCalculateDownPaymentPlan_DropsInfeasibleAlternatives(t *testing.T) {
	params := referenceDownPaymentParams()
	params.MinInstallmentAmount = 300 // 1000/4 = 250 falls below

	resp, err := paymentplan.CalculateDownPaymentPlan(params)
	require.NoError(t, err)
	require.Len(t, resp, 3)

	for i, alt := range resp {
		assert.Equal(t, i+1, alt.InstallmentQuantity)
		assert.GreaterOrEqual(t, alt.InstallmentAmount, 300.0)
	}
}

func TestCalculateDownPaymentPlan_AllAlternativesInfeasible(t *testing.T) {
	params := referenceDownPaymentParams()
	params.MinInstallmentAmount = 5000

	resp, err := paymentplan.CalculateDownPaymentPlan(params)
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestCalculateDownPaymentPlan_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*paymentplan.DownPaymentParams)
	}{
		{"zero installments", func(p *paymentplan.DownPaymentParams) { p.Installments = 0 }},
		{"zero requested amount", func(p *paymentplan.DownPaymentParams) { p.RequestedAmount = 0 }},
		{"negative min installment", func(p *paymentplan.DownPaymentParams) { p.MinInstallmentAmount = -1 }},
		{"missing first payment date", func(p *paymentplan.DownPaymentParams) { p.FirstPaymentDate = time.Time{} }},
		{"invalid embedded params", func(p *paymentplan.DownPaymentParams) { p.Params.Installments = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := referenceDownPaymentParams()
			tc.mutate(&params)

			resp, err := paymentplan.CalculateDownPaymentPlan(params)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, paymentplan.ErrInvalidParams)
		})
	}
}

func TestCalculateDownPaymentPlan_PropagatesConstraintErrors(t *testing.T) {
	params := referenceDownPaymentParams()
	params.Params.MinInstallmentAmount = 3000 // main plan installment 4 falls below

	resp, err := paymentplan.CalculateDownPaymentPlan(params)
	assert.Nil(t, resp)

	var cerr *paymentplan.ConstraintError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "min_installment_amount", cerr.Constraint)
}
