package middleware

import (
	"net/http"
	"slices"

	"github.com/angelmondragon/vendorpayments-backend/api/responses"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vendorpayments-backend/pkg/errors"
	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
)

// RequireRole admits staff whose role, as set by Auth, is in allowed.
func RequireRole(logg *logger.Logger, allowed ...enums.StaffRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if role != "" && slices.Contains(allowed, role) {
				next.ServeHTTP(w, r)
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "staff role not permitted"))
		})
	}
}
