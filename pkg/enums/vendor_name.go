package enums

import "fmt"

// VendorName identifies the supplier a product is bought from.
type VendorName string

const (
	VendorNameVendor1 VendorName = "vendor1"
	VendorNameVendor2 VendorName = "vendor2"
	VendorNameVendor3 VendorName = "vendor3"
)

var validVendorNames = []VendorName{
	VendorNameVendor1,
	VendorNameVendor2,
	VendorNameVendor3,
}

var vendorNameLabels = map[VendorName]string{
	VendorNameVendor1: "Vendor 1",
	VendorNameVendor2: "Vendor 2",
	VendorNameVendor3: "Vendor 3",
}

// VendorNames returns the selectable vendors in display order.
func VendorNames() []VendorName {
	out := make([]VendorName, len(validVendorNames))
	copy(out, validVendorNames)
	return out
}

// String implements fmt.Stringer.
func (v VendorName) String() string {
	return string(v)
}

// Label returns the human readable option text.
func (v VendorName) Label() string {
	return vendorNameLabels[v]
}

// IsValid reports whether the value is a known VendorName.
func (v VendorName) IsValid() bool {
	for _, candidate := range validVendorNames {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVendorName converts raw input into a VendorName.
func ParseVendorName(value string) (VendorName, error) {
	for _, candidate := range validVendorNames {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid vendor name %q", value)
}
