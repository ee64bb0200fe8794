package enums

import "fmt"

// PaymentTerm describes when a vendor expects to be paid.
type PaymentTerm string

const (
	PaymentTermPostPayment PaymentTerm = "post_payment"
	PaymentTermPrePayment  PaymentTerm = "pre_payment"
	PaymentTermWeekly      PaymentTerm = "weekly"
	PaymentTermMonthly     PaymentTerm = "monthly"
)

var validPaymentTerms = []PaymentTerm{
	PaymentTermPostPayment,
	PaymentTermPrePayment,
	PaymentTermWeekly,
	PaymentTermMonthly,
}

var paymentTermLabels = map[PaymentTerm]string{
	PaymentTermPostPayment: "Post Payment",
	PaymentTermPrePayment:  "Pre Payment",
	PaymentTermWeekly:      "Weekly",
	PaymentTermMonthly:     "Monthly",
}

// PaymentTerms returns the selectable terms in display order.
func PaymentTerms() []PaymentTerm {
	out := make([]PaymentTerm, len(validPaymentTerms))
	copy(out, validPaymentTerms)
	return out
}

// String implements fmt.Stringer.
func (p PaymentTerm) String() string {
	return string(p)
}

// Label returns the human readable option text.
func (p PaymentTerm) Label() string {
	return paymentTermLabels[p]
}

// IsValid reports whether the value is a known PaymentTerm.
func (p PaymentTerm) IsValid() bool {
	for _, candidate := range validPaymentTerms {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentTerm converts raw input into a PaymentTerm.
func ParsePaymentTerm(value string) (PaymentTerm, error) {
	for _, candidate := range validPaymentTerms {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment term %q", value)
}
