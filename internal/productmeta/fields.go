package productmeta

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/vendorpayments-backend/internal/attributes"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
)

// Option is one entry of a select control.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SelectField is a dropdown bound to a product attribute.
type SelectField struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Value   string   `json:"value"`
	Options []Option `json:"options"`
}

// NumberField is a numeric input bound to a product attribute.
type NumberField struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
	Step  string `json:"step"`
	Min   string `json:"min"`
}

// Fields is the vendor section of the product edit form.
type Fields struct {
	ProductID          int64            `json:"product_id"`
	VendorName         SelectField      `json:"vendor_name"`
	PurchaseCost       NumberField      `json:"purchase_cost"`
	PaymentTerm        SelectField      `json:"payment_term"`
	PurchaseCostAmount *decimal.Decimal `json:"purchase_cost_amount,omitempty"`
}

// Submission carries the raw posted form values. Absent fields are "".
type Submission struct {
	VendorName   string `json:"_vendor_name"`
	PurchaseCost string `json:"_purchase_cost"`
	PaymentTerm  string `json:"_payment_term"`
}

func vendorOptions() []Option {
	vendors := enums.VendorNames()
	out := make([]Option, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, Option{Value: v.String(), Label: v.Label()})
	}
	return out
}

func paymentTermOptions() []Option {
	terms := enums.PaymentTerms()
	out := make([]Option, 0, len(terms))
	for _, term := range terms {
		out = append(out, Option{Value: term.String(), Label: term.Label()})
	}
	return out
}

func buildFields(productID int64, vendor, cost, term string) *Fields {
	return &Fields{
		ProductID: productID,
		VendorName: SelectField{
			ID:      attributes.KeyVendorName,
			Label:   "Vendor Name",
			Value:   vendor,
			Options: vendorOptions(),
		},
		PurchaseCost: NumberField{
			ID:    attributes.KeyPurchaseCost,
			Label: "Purchase Cost",
			Value: cost,
			Step:  "0.01",
			Min:   "0",
		},
		PaymentTerm: SelectField{
			ID:      attributes.KeyPaymentTerm,
			Label:   "Payment Term",
			Value:   term,
			Options: paymentTermOptions(),
		},
		PurchaseCostAmount: parseAmount(cost),
	}
}

// parseAmount returns nil when the stored cost is not a decimal number.
func parseAmount(value string) *decimal.Decimal {
	if value == "" {
		return nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return nil
	}
	return &amount
}
