package orders

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/angelmondragon/vendorpayments-backend/internal/repo"
	"github.com/angelmondragon/vendorpayments-backend/pkg/db/models"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vendorpayments-backend/pkg/errors"
)

// Item is one purchased line of an order.
type Item struct {
	ID        int64
	ProductID int64
	Name      string
	Quantity  int
}

// Order is the read-only view of a host order used by the vendor payment flows.
type Order struct {
	ID     int64
	Status enums.OrderStatus
	Items  []Item
}

// Lookup resolves host orders. Missing orders return a NOT_FOUND error.
type Lookup interface {
	FindOrder(ctx context.Context, orderID int64) (*Order, error)
}

type repository struct {
	repo.Base
}

// NewRepository returns a Lookup backed by the host order tables.
func NewRepository(db *gorm.DB) Lookup {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) FindOrder(ctx context.Context, orderID int64) (*Order, error) {
	if orderID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}

	var row models.Order
	err := r.DB(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("id = ?", orderID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found").WithDetails(map[string]any{"order_id": orderID})
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("load order %d", orderID))
	}
	return toOrder(row), nil
}

func toOrder(row models.Order) *Order {
	items := make([]Item, 0, len(row.Items))
	for _, item := range row.Items {
		items = append(items, Item{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
		})
	}
	return &Order{
		ID:     row.ID,
		Status: enums.NormalizeOrderStatus(row.Status),
		Items:  items,
	}
}

// IsNotFound reports whether err means the order does not exist.
func IsNotFound(err error) bool {
	return pkgerrors.HasCode(err, pkgerrors.CodeNotFound)
}
