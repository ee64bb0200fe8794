package models

import "time"

// Order is the host platform's order header as seen by this service.
// Status is stored the way the host writes it (possibly "wc-" prefixed).
type Order struct {
	ID        int64       `gorm:"column:id;primaryKey"`
	Status    string      `gorm:"column:status;size:50;not null"`
	Items     []OrderItem `gorm:"foreignKey:OrderID"`
	CreatedAt time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

// OrderItem is one purchased line of a host order.
type OrderItem struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	OrderID   int64  `gorm:"column:order_id;not null;index"`
	ProductID int64  `gorm:"column:product_id;not null"`
	Name      string `gorm:"column:name;size:255;not null;default:''"`
	Quantity  int    `gorm:"column:quantity;not null;default:1"`
}
