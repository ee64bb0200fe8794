package enums

import "fmt"

// HookName names a host lifecycle event handlers can subscribe to.
type HookName string

const (
	HookProductSaved   HookName = "product.saved"
	HookOrderThankYou  HookName = "order.thankyou"
	HookOrderMetaSaved HookName = "order.meta_saved"
)

var validHookNames = []HookName{
	HookProductSaved,
	HookOrderThankYou,
	HookOrderMetaSaved,
}

// String implements fmt.Stringer.
func (h HookName) String() string {
	return string(h)
}

// IsValid reports whether the value is a known HookName.
func (h HookName) IsValid() bool {
	for _, candidate := range validHookNames {
		if candidate == h {
			return true
		}
	}
	return false
}

// ParseHookName converts raw input into a HookName.
func ParseHookName(value string) (HookName, error) {
	for _, candidate := range validHookNames {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid hook name %q", value)
}
