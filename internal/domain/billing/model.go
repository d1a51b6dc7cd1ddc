package billing

import "time"

// IDPrefix is the business-key prefix for generated billing ids.
const IDPrefix = "BL"

const (
	StatusPending       = "pending"
	StatusPaid          = "paid"
	StatusPartiallyPaid = "partially-paid"
	StatusOverdue       = "overdue"
	StatusCancelled     = "cancelled"
	StatusRefunded      = "refunded"
)

var validStatuses = map[string]bool{
	StatusPending:       true,
	StatusPaid:          true,
	StatusPartiallyPaid: true,
	StatusOverdue:       true,
	StatusCancelled:     true,
	StatusRefunded:      true,
}

// Billing amounts are decimal strings, e.g. "1850.00". They are carried
// as-is and never computed on.
type Billing struct {
	ID            int       `json:"id"`
	BillingID     string    `json:"billingId"`
	PatientID     string    `json:"patientId"`
	Date          string    `json:"date"` // YYYY-MM-DD
	Description   string    `json:"description"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	PaymentMethod *string   `json:"paymentMethod,omitempty"`
	InsuranceInfo *string   `json:"insuranceInfo,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Patch struct {
	PatientID     *string `json:"patientId,omitempty"`
	Date          *string `json:"date,omitempty"`
	Description   *string `json:"description,omitempty"`
	Amount        *string `json:"amount,omitempty"`
	Status        *string `json:"status,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	InsuranceInfo *string `json:"insuranceInfo,omitempty"`
}

func (p Patch) apply(dst *Billing) {
	if p.PatientID != nil {
		dst.PatientID = *p.PatientID
	}
	if p.Date != nil {
		dst.Date = *p.Date
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Amount != nil {
		dst.Amount = *p.Amount
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.PaymentMethod != nil {
		dst.PaymentMethod = p.PaymentMethod
	}
	if p.InsuranceInfo != nil {
		dst.InsuranceInfo = p.InsuranceInfo
	}
}
