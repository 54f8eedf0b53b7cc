package paymentplan

import "time"

// Invoice is one schedule row of a plan: the day counts and discount
// factors that position an installment, independent of any amount.
type Invoice struct {
	AccumulatedDays   int       `json:"accumulated_days"`
	Factor            float64   `json:"factor"`
	AccumulatedFactor float64   `json:"accumulated_factor"`
	DueDate           time.Time `json:"due_date"`
}

// Response is the full quotation of a plan settled at a given installment
// count: Response with Installment == i describes the contract as if it
// were closed in exactly i installments. Invoices holds rows 1..i, a
// prefix view over one schedule shared by all responses of the same call.
type Response struct {
	Installment      int       `json:"installment"`
	DueDate          time.Time `json:"due_date"`
	DisbursementDate time.Time `json:"disbursement_date"`

	AccumulatedDays      int     `json:"accumulated_days"`
	DaysIndex            float64 `json:"days_index"`
	AccumulatedDaysIndex float64 `json:"accumulated_days_index"`
	InterestRate         float64 `json:"interest_rate"`

	InstallmentAmount           float64 `json:"installment_amount"`
	InstallmentAmountWithoutTac float64 `json:"installment_amount_without_tac"`
	TotalAmount                 float64 `json:"total_amount"`

	DebitService                             float64 `json:"debit_service"`
	CustomerDebitServiceAmount               float64 `json:"customer_debit_service_amount"`
	CustomerAmount                           float64 `json:"customer_amount"`
	CalculationBasisForEffectiveInterestRate float64 `json:"calculation_basis_for_effective_interest_rate"`

	MerchantDebitServiceAmount float64 `json:"merchant_debit_service_amount"`
	MerchantTotalAmount        float64 `json:"merchant_total_amount"`
	SettledToMerchant          float64 `json:"settled_to_merchant"`
	MdrAmount                  float64 `json:"mdr_amount"`

	EffectiveInterestRate float64 `json:"effective_interest_rate"`
	TotalEffectiveCost    float64 `json:"total_effective_cost"`
	EirYearly             float64 `json:"eir_yearly"`
	TecYearly             float64 `json:"tec_yearly"`
	EirMonthly            float64 `json:"eir_monthly"`
	TecMonthly            float64 `json:"tec_monthly"`

	TotalIof                 float64 `json:"total_iof"`
	ContractAmount           float64 `json:"contract_amount"`
	ContractAmountWithoutTac float64 `json:"contract_amount_without_tac"`
	TacAmount                float64 `json:"tac_amount"`
	IofPercentage            float64 `json:"iof_percentage"`
	OverallIof               float64 `json:"overall_iof"`
	PreDisbursementAmount    float64 `json:"pre_disbursement_amount"`
	PaidTotalIof             float64 `json:"paid_total_iof"`
	PaidContractAmount       float64 `json:"paid_contract_amount"`

	Invoices []Invoice `json:"invoices"`
}

// DownPaymentResponse is one feasible down-payment alternative: the
// requested amount split into InstallmentQuantity upfront payments, plus
// the main plan quoted with the disbursement date that split implies.
type DownPaymentResponse struct {
	InstallmentAmount   float64    `json:"installment_amount"`
	TotalAmount         float64    `json:"total_amount"`
	InstallmentQuantity int        `json:"installment_quantity"`
	FirstPaymentDate    time.Time  `json:"first_payment_date"`
	Plans               []Response `json:"plans"`
}
