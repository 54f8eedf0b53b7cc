package paymentplan

import "time"

// Params is the immutable input of a payment-plan calculation. Amounts are
// in the major currency unit, rates are decimal fractions per month, and
// dates may carry any time zone; the engine normalizes them internally to
// the fixed UTC-3 civil offset.
type Params struct {
	RequestedAmount  float64   `json:"requested_amount"`
	FirstPaymentDate time.Time `json:"first_payment_date"`
	DisbursementDate time.Time `json:"disbursement_date"`
	Installments     int       `json:"installments"`

	InterestRate           float64 `json:"interest_rate"`
	DebitServicePercentage float64 `json:"debit_service_percentage"`
	Mdr                    float64 `json:"mdr"`
	TacPercentage          float64 `json:"tac_percentage"`
	IofOverall             float64 `json:"iof_overall"`
	IofPercentage          float64 `json:"iof_percentage"`

	MinInstallmentAmount float64 `json:"min_installment_amount"`
	MaxTotalAmount       float64 `json:"max_total_amount"`

	// DisbursementOnlyOnBusinessDays advances the disbursement date to
	// the next business day before the schedule is built.
	DisbursementOnlyOnBusinessDays bool `json:"disbursement_only_on_business_days"`
}

// Validate rejects malformed parameters. It is called by the calculation
// entry points; callers constructing Params directly may call it early to
// fail fast.
func (p Params) Validate() error {
	if p.Installments < 1 {
		return invalidParams("installments must be at least 1, got %d", p.Installments)
	}
	if p.RequestedAmount <= 0 {
		return invalidParams("requested amount must be positive, got %v", p.RequestedAmount)
	}
	if p.InterestRate < 0 {
		return invalidParams("interest rate must not be negative, got %v", p.InterestRate)
	}
	if p.DebitServicePercentage < 0 {
		return invalidParams("debit service percentage must not be negative, got %v", p.DebitServicePercentage)
	}
	if p.Mdr < 0 {
		return invalidParams("mdr must not be negative, got %v", p.Mdr)
	}
	if p.TacPercentage < 0 {
		return invalidParams("tac percentage must not be negative, got %v", p.TacPercentage)
	}
	if p.IofOverall < 0 {
		return invalidParams("overall iof must not be negative, got %v", p.IofOverall)
	}
	if p.IofPercentage < 0 {
		return invalidParams("iof percentage must not be negative, got %v", p.IofPercentage)
	}
	if p.MinInstallmentAmount < 0 {
		return invalidParams("minimum installment amount must not be negative, got %v", p.MinInstallmentAmount)
	}
	if p.MaxTotalAmount < 0 {
		return invalidParams("maximum total amount must not be negative, got %v", p.MaxTotalAmount)
	}
	if p.FirstPaymentDate.IsZero() {
		return invalidParams("first payment date is required")
	}
	if p.DisbursementDate.IsZero() {
		return invalidParams("disbursement date is required")
	}
	if p.FirstPaymentDate.Before(p.DisbursementDate) {
		return invalidParams("first payment date %s precedes disbursement date %s",
			p.FirstPaymentDate.Format(time.RFC3339), p.DisbursementDate.Format(time.RFC3339))
	}
	return nil
}

// DownPaymentParams is the input of a down-payment plan calculation:
// RequestedAmount is split across 1..Installments upfront entry payments,
// and Params describes the main loan that disburses after the entry
// payments complete.
type DownPaymentParams struct {
	Params               Params    `json:"params"`
	RequestedAmount      float64   `json:"requested_amount"`
	FirstPaymentDate     time.Time `json:"first_payment_date"`
	Installments         int       `json:"installments"`
	MinInstallmentAmount float64   `json:"min_installment_amount"`
}

// Validate rejects malformed down-payment parameters, including the
// embedded main-plan Params.
func (p DownPaymentParams) Validate() error {
	if p.Installments < 1 {
		return invalidParams("down payment installments must be at least 1, got %d", p.Installments)
	}
	if p.RequestedAmount <= 0 {
		return invalidParams("down payment requested amount must be positive, got %v", p.RequestedAmount)
	}
	if p.MinInstallmentAmount < 0 {
		return invalidParams("down payment minimum installment amount must not be negative, got %v", p.MinInstallmentAmount)
	}
	if p.FirstPaymentDate.IsZero() {
		return invalidParams("down payment first payment date is required")
	}
	return p.Params.Validate()
}
