package paymentstatus

import (
	"context"

	"github.com/angelmondragon/vendorpayments-backend/internal/attributes"
	"github.com/angelmondragon/vendorpayments-backend/internal/hooks"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
)

// RegisterHooks subscribes the editor to order meta saves.
func RegisterHooks(registry *hooks.Registry, svc Service) error {
	return registry.Subscribe(enums.HookOrderMetaSaved, "paymentstatus.save", func(ctx context.Context, event hooks.Event) error {
		_, err := svc.Save(ctx, event.EntityID, event.Field(attributes.KeyPaymentStatus))
		return err
	})
}
