// Package quote wraps the payment-plan engine in an application-service
// facade: it stamps each calculation with a quote ID and timestamp and
// logs timings, keeping every impure concern (clock, IDs, logging) out of
// the engine itself.
package quote

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	paymentplan "github.com/ParceladoLara/payment-plan-go"
)

// PlanQuote is a stamped payment-plan calculation.
type PlanQuote struct {
	QuoteID     string                 `json:"quote_id"`
	GeneratedAt time.Time              `json:"generated_at"`
	Plans       []paymentplan.Response `json:"plans"`
}

// DownPaymentQuote is a stamped down-payment calculation.
type DownPaymentQuote struct {
	QuoteID      string                            `json:"quote_id"`
	GeneratedAt  time.Time                         `json:"generated_at"`
	Alternatives []paymentplan.DownPaymentResponse `json:"alternatives"`
}

// Service quotes payment plans.
type Service struct {
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewService wires dependencies. A nil logger falls back to the process
// default.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.New().String() },
	}
}

// QuotePlan computes a payment plan and stamps the result.
func (s *Service) QuotePlan(ctx context.Context, params paymentplan.Params) (PlanQuote, error) {
	if err := ctx.Err(); err != nil {
		return PlanQuote{}, err
	}

	id := s.newID()
	started := s.now()

	plans, err := paymentplan.CalculatePaymentPlan(params)
	if err != nil {
		s.logger.WarnContext(ctx, "payment plan quote failed",
			"quote_id", id, "installments", params.Installments, "error", err)
		return PlanQuote{}, fmt.Errorf("quote payment plan: %w", err)
	}

	s.logger.DebugContext(ctx, "payment plan quoted",
		"quote_id", id,
		"installments", params.Installments,
		"requested_amount", params.RequestedAmount,
		"elapsed", s.now().Sub(started))

	return PlanQuote{QuoteID: id, GeneratedAt: started, Plans: plans}, nil
}

// QuoteDownPaymentPlan computes the down-payment alternatives and stamps
// the result.
func (s *Service) QuoteDownPaymentPlan(ctx context.Context, params paymentplan.DownPaymentParams) (DownPaymentQuote, error) {
	if err := ctx.Err(); err != nil {
		return DownPaymentQuote{}, err
	}

	id := s.newID()
	started := s.now()

	alternatives, err := paymentplan.CalculateDownPaymentPlan(params)
	if err != nil {
		s.logger.WarnContext(ctx, "down payment quote failed",
			"quote_id", id, "installments", params.Installments, "error", err)
		return DownPaymentQuote{}, fmt.Errorf("quote down payment plan: %w", err)
	}

	s.logger.DebugContext(ctx, "down payment plan quoted",
		"quote_id", id,
		"installments", params.Installments,
		"alternatives", len(alternatives),
		"elapsed", s.now().Sub(started))

	return DownPaymentQuote{QuoteID: id, GeneratedAt: started, Alternatives: alternatives}, nil
}
