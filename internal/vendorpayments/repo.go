package vendorpayments

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/angelmondragon/vendorpayments-backend/internal/repo"
	"github.com/angelmondragon/vendorpayments-backend/pkg/db/models"
)

// Repository manages persistence for vendor payment ledger rows.
type Repository interface {
	Create(ctx context.Context, row *models.VendorPayment) error
	ListByOrderID(ctx context.Context, orderID int64) ([]models.VendorPayment, error)
}

type repository struct {
	repo.Base
}

// NewRepository returns a ledger repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

// Create inserts row. An empty payment status takes the column default.
func (r *repository) Create(ctx context.Context, row *models.VendorPayment) error {
	if row == nil {
		return errors.New("ledger row is required")
	}
	if row.PaymentStatus != "" && !row.PaymentStatus.IsValidLedger() {
		return fmt.Errorf("invalid ledger payment status %q", row.PaymentStatus)
	}
	return r.DB(ctx).Create(row).Error
}

func (r *repository) ListByOrderID(ctx context.Context, orderID int64) ([]models.VendorPayment, error) {
	var rows []models.VendorPayment
	if err := r.DB(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
