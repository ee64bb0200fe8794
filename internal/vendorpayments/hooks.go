package vendorpayments

import (
	"context"

	"github.com/angelmondragon/vendorpayments-backend/internal/hooks"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
)

// RegisterHooks subscribes the ledger writer to order completion. Ledger
// failures are logged and never propagated to the host.
func RegisterHooks(registry *hooks.Registry, svc Service, logg *logger.Logger) error {
	if logg == nil {
		logg = logger.Nop()
	}
	return registry.Subscribe(enums.HookOrderThankYou, "vendorpayments.record_order", func(ctx context.Context, event hooks.Event) error {
		if _, err := svc.RecordOrder(ctx, event.EntityID); err != nil {
			logg.Error(logg.WithOrderID(ctx, event.EntityID), "recording vendor payments failed", err)
		}
		return nil
	})
}
