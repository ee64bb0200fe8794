package controllers

import (
	"net/http"

	"github.com/angelmondragon/vendorpayments-backend/api/responses"
	"github.com/angelmondragon/vendorpayments-backend/api/validators"
	"github.com/angelmondragon/vendorpayments-backend/internal/hooks"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vendorpayments-backend/pkg/errors"
	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
)

// OrderThankYou is the storefront signal that an order reached its thank-you
// page. Handler failures are logged and the request is still accepted.
func OrderThankYou(dispatcher HookDispatcher, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dispatcher == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "hook registry unavailable"))
			return
		}

		orderID, err := validators.ParsePathID(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := dispatcher.Dispatch(r.Context(), hooks.Event{Name: enums.HookOrderThankYou, EntityID: orderID}); err != nil && logg != nil {
			logg.Error(logg.WithOrderID(r.Context(), orderID), "order thank-you handlers failed", err)
		}

		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]any{"order_id": orderID})
	}
}
