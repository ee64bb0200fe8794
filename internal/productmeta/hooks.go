package productmeta

import (
	"context"

	"github.com/angelmondragon/vendorpayments-backend/internal/attributes"
	"github.com/angelmondragon/vendorpayments-backend/internal/hooks"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
)

// RegisterHooks subscribes the editor to product saves. The event fields are
// keyed by attribute key, matching the posted form.
func RegisterHooks(registry *hooks.Registry, svc Service) error {
	return registry.Subscribe(enums.HookProductSaved, "productmeta.save", func(ctx context.Context, event hooks.Event) error {
		_, err := svc.Save(ctx, event.EntityID, SubmissionFromEvent(event))
		return err
	})
}

// SubmissionFromEvent extracts the vendor fields from a product save event.
func SubmissionFromEvent(event hooks.Event) Submission {
	return Submission{
		VendorName:   event.Field(attributes.KeyVendorName),
		PurchaseCost: event.Field(attributes.KeyPurchaseCost),
		PaymentTerm:  event.Field(attributes.KeyPaymentTerm),
	}
}
