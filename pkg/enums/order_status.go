package enums

import (
	"fmt"
	"strings"
)

// OrderStatus mirrors the host platform's order lifecycle. The host owns
// every transition; this service only reads the current value.
type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "pending"
	OrderStatusProcessing    OrderStatus = "processing"
	OrderStatusOnHold        OrderStatus = "on-hold"
	OrderStatusCompleted     OrderStatus = "completed"
	OrderStatusCancelled     OrderStatus = "cancelled"
	OrderStatusRefunded      OrderStatus = "refunded"
	OrderStatusFailed        OrderStatus = "failed"
	OrderStatusCheckoutDraft OrderStatus = "checkout-draft"
)

// hostStatusPrefix is how the host persists order statuses.
const hostStatusPrefix = "wc-"

var validOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusOnHold,
	OrderStatusCompleted,
	OrderStatusCancelled,
	OrderStatusRefunded,
	OrderStatusFailed,
	OrderStatusCheckoutDraft,
}

var paymentStatusEditableOrderStatuses = []OrderStatus{
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusRefunded,
}

// NormalizeOrderStatus strips the host storage prefix and surrounding space.
// Unknown statuses are kept verbatim.
func NormalizeOrderStatus(raw string) OrderStatus {
	value := strings.TrimSpace(raw)
	value = strings.TrimPrefix(value, hostStatusPrefix)
	return OrderStatus(value)
}

// String implements fmt.Stringer.
func (o OrderStatus) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OrderStatus.
func (o OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == o {
			return true
		}
	}
	return false
}

// AllowsPaymentStatusEdit reports whether staff may change the order's
// payment_status attribute while the order is in this state.
func (o OrderStatus) AllowsPaymentStatusEdit() bool {
	for _, candidate := range paymentStatusEditableOrderStatuses {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOrderStatus converts raw input (with or without the host prefix).
func ParseOrderStatus(value string) (OrderStatus, error) {
	normalized := NormalizeOrderStatus(value)
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
