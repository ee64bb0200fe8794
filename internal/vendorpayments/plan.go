package vendorpayments

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/angelmondragon/vendorpayments-backend/internal/attributes"
	"github.com/angelmondragon/vendorpayments-backend/internal/orders"
	"github.com/angelmondragon/vendorpayments-backend/pkg/db/models"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
)

// PlanRows returns one pending ledger row per line item of order, carrying the
// product's vendor and payment term as stored. Unset attributes yield empty
// strings. A line whose attributes cannot be read is left out and reported in
// the returned error; the remaining rows are still planned.
func PlanRows(ctx context.Context, order orders.Order, attrs attributes.Reader) ([]models.VendorPayment, error) {
	rows := make([]models.VendorPayment, 0, len(order.Items))
	var errs error

	for _, item := range order.Items {
		vendor, err := attrs.Get(ctx, enums.EntityTypeProduct, item.ProductID, attributes.KeyVendorName)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("product %d vendor: %w", item.ProductID, err))
			continue
		}
		term, err := attrs.Get(ctx, enums.EntityTypeProduct, item.ProductID, attributes.KeyPaymentTerm)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("product %d payment term: %w", item.ProductID, err))
			continue
		}

		rows = append(rows, models.VendorPayment{
			VendorName:    vendor,
			ProductID:     item.ProductID,
			OrderID:       order.ID,
			OrderStatus:   order.Status.String(),
			PaymentTerm:   term,
			PaymentStatus: enums.LedgerPaymentStatusPending,
		})
	}
	return rows, errs
}
