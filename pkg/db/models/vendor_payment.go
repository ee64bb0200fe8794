package models

import "github.com/angelmondragon/vendorpayments-backend/pkg/enums"

// VendorPayment is one ledger row recording an amount owed to a vendor for a
// purchased line item. Rows are append-only; product and order ids are soft
// references that may outlive the host entities.
type VendorPayment struct {
	ID                uint64              `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	VendorName        string              `gorm:"column:vendor_name;size:255;not null" json:"vendor_name"`
	ProductID         int64               `gorm:"column:product_id;not null" json:"product_id"`
	OrderID           int64               `gorm:"column:order_id;not null" json:"order_id"`
	OrderStatus       string              `gorm:"column:order_status;size:50;not null" json:"order_status"`
	PaymentTerm       string              `gorm:"column:payment_term;size:50;not null" json:"payment_term"`
	TransactionDetail string              `gorm:"column:transaction_detail;size:255;default:''" json:"transaction_detail"`
	PaymentStatus     enums.PaymentStatus `gorm:"column:payment_status;size:50;default:'Pending'" json:"payment_status"`
}
