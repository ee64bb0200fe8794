package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/vendorpayments-backend/api/responses"
	"github.com/angelmondragon/vendorpayments-backend/api/validators"
	"github.com/angelmondragon/vendorpayments-backend/internal/attributes"
	"github.com/angelmondragon/vendorpayments-backend/internal/hooks"
	"github.com/angelmondragon/vendorpayments-backend/internal/productmeta"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vendorpayments-backend/pkg/errors"
	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
)

// HookDispatcher delivers host lifecycle events to subscribed handlers.
type HookDispatcher interface {
	Dispatch(ctx context.Context, event hooks.Event) error
}

type productFieldsReader interface {
	Fields(ctx context.Context, productID int64) (*productmeta.Fields, error)
}

// VendorFieldsRequest is the posted product form section.
type VendorFieldsRequest struct {
	VendorName   string `json:"_vendor_name" validate:"max=255"`
	PurchaseCost string `json:"_purchase_cost" validate:"max=255"`
	PaymentTerm  string `json:"_payment_term" validate:"max=255"`
}

// AdminVendorFields renders the vendor section of the product edit form.
func AdminVendorFields(svc productFieldsReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product metadata service unavailable"))
			return
		}

		productID, err := validators.ParsePathID(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		fields, err := svc.Fields(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, fields)
	}
}

// AdminSaveVendorFields signals a product save carrying the vendor fields and
// returns the resulting form section.
func AdminSaveVendorFields(dispatcher HookDispatcher, svc productFieldsReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dispatcher == nil || svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product metadata service unavailable"))
			return
		}

		productID, err := validators.ParsePathID(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body VendorFieldsRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event := hooks.Event{
			Name:     enums.HookProductSaved,
			EntityID: productID,
			Fields: map[string]string{
				attributes.KeyVendorName:   body.VendorName,
				attributes.KeyPurchaseCost: body.PurchaseCost,
				attributes.KeyPaymentTerm:  body.PaymentTerm,
			},
		}
		if err := dispatcher.Dispatch(r.Context(), event); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		fields, err := svc.Fields(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, fields)
	}
}
