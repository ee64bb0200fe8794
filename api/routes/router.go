package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/vendorpayments-backend/api/controllers"
	"github.com/angelmondragon/vendorpayments-backend/api/middleware"
	"github.com/angelmondragon/vendorpayments-backend/internal/paymentstatus"
	"github.com/angelmondragon/vendorpayments-backend/internal/productmeta"
	"github.com/angelmondragon/vendorpayments-backend/pkg/config"
	"github.com/angelmondragon/vendorpayments-backend/pkg/db"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
	"github.com/angelmondragon/vendorpayments-backend/pkg/metrics"
	"github.com/angelmondragon/vendorpayments-backend/pkg/redis"
)

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	DB            db.Pinger
	Redis         *redis.Client
	Metrics       *prometheus.Registry
	Hooks         controllers.HookDispatcher
	ProductMeta   productmeta.Service
	PaymentStatus paymentstatus.Service
}

func NewRouter(cfg *config.Config, logg *logger.Logger, deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSAllowedOrigins),
	)

	var checks []controllers.ReadinessCheck
	if deps.DB != nil {
		checks = append(checks, controllers.ReadinessCheck{Name: "db", Pinger: deps.DB})
	}
	if deps.Redis != nil {
		checks = append(checks, controllers.ReadinessCheck{Name: "redis", Pinger: deps.Redis})
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, checks...))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Metrics))

	thankYouPolicy := middleware.NewRateLimitPolicy(
		"thank_you",
		cfg.RateLimit.ThankYouWindow,
		cfg.RateLimit.ThankYouLimit,
	)

	r.Route("/api/v1/orders", func(r chi.Router) {
		if deps.Redis != nil {
			r.Use(middleware.RateLimit(thankYouPolicy, deps.Redis, logg))
		}
		r.Post("/{orderId}/thank-you", controllers.OrderThankYou(deps.Hooks, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.RequireRole(logg, enums.StaffRoleAdministrator, enums.StaffRoleShopManager))
		if deps.Redis != nil {
			r.Use(middleware.Idempotency(deps.Redis, logg))
		}

		r.Get("/products/{productId}/vendor-fields", controllers.AdminVendorFields(deps.ProductMeta, logg))
		r.Post("/products/{productId}/vendor-fields", controllers.AdminSaveVendorFields(deps.Hooks, deps.ProductMeta, logg))
		r.Get("/orders/{orderId}/payment-status", controllers.AdminPaymentStatus(deps.PaymentStatus, logg))
		r.Post("/orders/{orderId}/payment-status", controllers.AdminSavePaymentStatus(deps.Hooks, deps.PaymentStatus, logg))
	})

	return r
}
