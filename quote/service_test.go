package quote

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paymentplan "github.com/ParceladoLara/payment-plan-go"
	"github.com/ParceladoLara/payment-plan-go/pkg/observability"
)

func testParams() paymentplan.Params {
	brt := time.FixedZone("-03:00", -3*60*60)
	return paymentplan.Params{
		RequestedAmount:                7800,
		FirstPaymentDate:               time.Date(2025, time.May, 3, 0, 0, 0, 0, brt),
		DisbursementDate:               time.Date(2025, time.April, 5, 0, 0, 0, 0, brt),
		Installments:                   4,
		Mdr:                            0.05,
		IofOverall:                     0.0038,
		IofPercentage:                  0.000082,
		InterestRate:                   0.0235,
		MinInstallmentAmount:           100,
		MaxTotalAmount:                 1_000_000,
		DisbursementOnlyOnBusinessDays: true,
	}
}

func newTestService(buf *bytes.Buffer) *Service {
	return NewService(observability.NewLogger(observability.LogConfig{Level: "debug", Format: "json"}, buf))
}

func TestQuotePlan(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(&buf)

	q, err := svc.QuotePlan(context.Background(), testParams())
	require.NoError(t, err)

	_, err = uuid.Parse(q.QuoteID)
	assert.NoError(t, err, "quote ID should be a UUID, got %q", q.QuoteID)
	assert.False(t, q.GeneratedAt.IsZero())
	assert.Len(t, q.Plans, 4)
	assert.InDelta(t, 7996.80, q.Plans[0].InstallmentAmount, 0.005)

	assert.Contains(t, buf.String(), "payment plan quoted")
	assert.Contains(t, buf.String(), q.QuoteID)
}

func TestQuotePlan_ValidationErrorWrapped(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(&buf)

	params := testParams()
	params.Installments = 0

	_, err := svc.QuotePlan(context.Background(), params)
	assert.ErrorIs(t, err, paymentplan.ErrInvalidParams)
	assert.Contains(t, buf.String(), "payment plan quote failed")
}

func TestQuotePlan_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(nil)
	_, err := svc.QuotePlan(ctx, testParams())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQuoteDownPaymentPlan(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(&buf)

	q, err := svc.QuoteDownPaymentPlan(context.Background(), paymentplan.DownPaymentParams{
		Params:               testParams(),
		RequestedAmount:      1000,
		FirstPaymentDate:     testParams().FirstPaymentDate,
		Installments:         4,
		MinInstallmentAmount: 100,
	})
	require.NoError(t, err)

	_, err = uuid.Parse(q.QuoteID)
	assert.NoError(t, err)
	assert.Len(t, q.Alternatives, 4)
	assert.Contains(t, buf.String(), "down payment plan quoted")
}

func TestQuoteIDsAreUnique(t *testing.T) {
	svc := NewService(nil)

	a, err := svc.QuotePlan(context.Background(), testParams())
	require.NoError(t, err)
	b, err := svc.QuotePlan(context.Background(), testParams())
	require.NoError(t, err)

	assert.NotEqual(t, a.QuoteID, b.QuoteID)
	// The underlying calculation stays deterministic.
	assert.Equal(t, a.Plans, b.Plans)
}
