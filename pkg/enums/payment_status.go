package enums

import "fmt"

// PaymentStatus is the staff-maintained vendor payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusCreditNote PaymentStatus = "credit_note"

	// LedgerPaymentStatusPending is the capitalised initial value written to
	// every new ledger row. It is distinct from PaymentStatusPending.
	LedgerPaymentStatusPending PaymentStatus = "Pending"
)

var validPaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusPaid,
	PaymentStatusRefunded,
	PaymentStatusCreditNote,
}

var paymentStatusLabels = map[PaymentStatus]string{
	PaymentStatusPending:       "Pending",
	PaymentStatusPaid:          "Paid",
	PaymentStatusRefunded:      "Refunded",
	PaymentStatusCreditNote:    "Credit Note",
	LedgerPaymentStatusPending: "Pending",
}

// PaymentStatuses returns the values staff may select, in display order.
func PaymentStatuses() []PaymentStatus {
	out := make([]PaymentStatus, len(validPaymentStatuses))
	copy(out, validPaymentStatuses)
	return out
}

// String implements fmt.Stringer.
func (p PaymentStatus) String() string {
	return string(p)
}

// Label returns the human readable option text.
func (p PaymentStatus) Label() string {
	return paymentStatusLabels[p]
}

// IsValid reports whether the value may be stored on an order.
func (p PaymentStatus) IsValid() bool {
	for _, candidate := range validPaymentStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// IsValidLedger reports whether the value may appear on a ledger row.
func (p PaymentStatus) IsValidLedger() bool {
	return p == LedgerPaymentStatusPending || p.IsValid()
}

// ParsePaymentStatus converts raw input into an order PaymentStatus.
func ParsePaymentStatus(value string) (PaymentStatus, error) {
	for _, candidate := range validPaymentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment status %q", value)
}
