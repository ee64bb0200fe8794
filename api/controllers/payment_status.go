package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/vendorpayments-backend/api/responses"
	"github.com/angelmondragon/vendorpayments-backend/api/validators"
	"github.com/angelmondragon/vendorpayments-backend/internal/attributes"
	"github.com/angelmondragon/vendorpayments-backend/internal/hooks"
	"github.com/angelmondragon/vendorpayments-backend/internal/paymentstatus"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vendorpayments-backend/pkg/errors"
	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
)

type paymentStatusViewer interface {
	View(ctx context.Context, orderID int64) (*paymentstatus.View, error)
}

// PaymentStatusRequest is the posted order meta form. Unknown values are
// accepted here and dropped by the editor.
type PaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"max=50"`
}

// AdminPaymentStatus renders the payment status control for an order.
func AdminPaymentStatus(svc paymentStatusViewer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment status service unavailable"))
			return
		}

		orderID, err := validators.ParsePathID(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.View(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// AdminSavePaymentStatus signals an order meta save and returns the control as
// it stands afterwards. Ineligible or rejected submissions are not errors.
func AdminSavePaymentStatus(dispatcher HookDispatcher, svc paymentStatusViewer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dispatcher == nil || svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment status service unavailable"))
			return
		}

		orderID, err := validators.ParsePathID(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body PaymentStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event := hooks.Event{
			Name:     enums.HookOrderMetaSaved,
			EntityID: orderID,
			Fields:   map[string]string{attributes.KeyPaymentStatus: body.PaymentStatus},
		}
		if err := dispatcher.Dispatch(r.Context(), event); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.View(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}
