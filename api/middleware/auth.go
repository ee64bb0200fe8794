package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/angelmondragon/vendorpayments-backend/api/responses"
	pkgAuth "github.com/angelmondragon/vendorpayments-backend/pkg/auth"
	"github.com/angelmondragon/vendorpayments-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/vendorpayments-backend/pkg/errors"
	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
)

var (
	errNoCredentials = errors.New("missing credentials")
	errBadScheme     = errors.New("authorization scheme must be Bearer")
)

// Auth requires a staff bearer token and puts the staff id and role on the
// request context. Rejections carry a WWW-Authenticate challenge.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r.Header.Get("Authorization"))
			if err != nil {
				unauthorized(w, r, logg, pkgerrors.New(pkgerrors.CodeUnauthorized, err.Error()))
				return
			}

			claims, err := pkgAuth.ParseStaffToken(cfg, token)
			if err != nil {
				unauthorized(w, r, logg, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			ctx := WithStaff(r.Context(), claims.StaffID, claims.Role)
			if logg != nil {
				ctx = logg.WithStaff(ctx, claims.StaffID, string(claims.Role))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errNoCredentials
	}
	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "bearer") {
		return "", errBadScheme
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errNoCredentials
	}
	return token, nil
}

func unauthorized(w http.ResponseWriter, r *http.Request, logg *logger.Logger, err error) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="vendor-payments-admin"`)
	responses.WriteError(r.Context(), logg, w, err)
}
