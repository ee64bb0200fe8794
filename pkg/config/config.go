package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	RateLimit    RateLimitConfig
	FeatureFlags FeatureFlagsConfig
	Eventing     EventingConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.normalizeDriver(); err != nil {
		return nil, err
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VENDORPAYMENTS_APP_ENV" required:"true"`
	Port         string `envconfig:"VENDORPAYMENTS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"VENDORPAYMENTS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VENDORPAYMENTS_LOG_WARN_STACK" default:"false"`

	CORSAllowedOrigins []string `envconfig:"VENDORPAYMENTS_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"VENDORPAYMENTS_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"VENDORPAYMENTS_DB_DSN"`
	Driver string `envconfig:"VENDORPAYMENTS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"VENDORPAYMENTS_DB_HOST"`
	LegacyPort     int    `envconfig:"VENDORPAYMENTS_DB_PORT"`
	LegacyUser     string `envconfig:"VENDORPAYMENTS_DB_USER"`
	LegacyPassword string `envconfig:"VENDORPAYMENTS_DB_PASSWORD"`
	LegacyName     string `envconfig:"VENDORPAYMENTS_DB_NAME"`
	LegacySSLMode  string `envconfig:"VENDORPAYMENTS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"VENDORPAYMENTS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"VENDORPAYMENTS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"VENDORPAYMENTS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VENDORPAYMENTS_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	SlowQueryThreshold time.Duration `envconfig:"VENDORPAYMENTS_DB_SLOW_QUERY_THRESHOLD" default:"200ms"`
}

type RedisConfig struct {
	URL          string        `envconfig:"VENDORPAYMENTS_REDIS_URL"`
	Address      string        `envconfig:"VENDORPAYMENTS_REDIS_ADDR"`
	Password     string        `envconfig:"VENDORPAYMENTS_REDIS_PASSWORD"`
	DB           int           `envconfig:"VENDORPAYMENTS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VENDORPAYMENTS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VENDORPAYMENTS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VENDORPAYMENTS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VENDORPAYMENTS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VENDORPAYMENTS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether any redis endpoint is configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"VENDORPAYMENTS_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"VENDORPAYMENTS_JWT_ISSUER" default:"vendor-payments"`
	ExpirationMinutes int    `envconfig:"VENDORPAYMENTS_JWT_EXPIRATION_MINUTES" default:"60"`
}

// RateLimitConfig throttles the public storefront routes per client IP.
type RateLimitConfig struct {
	ThankYouWindow time.Duration `envconfig:"VENDORPAYMENTS_RATE_LIMIT_THANK_YOU_WINDOW" default:"1m"`
	ThankYouLimit  int           `envconfig:"VENDORPAYMENTS_RATE_LIMIT_THANK_YOU_LIMIT" default:"30"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"VENDORPAYMENTS_AUTO_MIGRATE" default:"false"`
}

type EventingConfig struct {
	ConsumerIdempotencyTTL time.Duration `envconfig:"VENDORPAYMENTS_EVENTING_IDEMPOTENCY_TTL" default:"72h"`
}

type GCPConfig struct {
	ProjectID string `envconfig:"VENDORPAYMENTS_GCP_PROJECT_ID"`
}

type PubSubConfig struct {
	OrdersSubscription     string        `envconfig:"VENDORPAYMENTS_PUBSUB_ORDERS_SUBSCRIPTION"`
	MaxOutstandingMessages int           `envconfig:"VENDORPAYMENTS_PUBSUB_MAX_OUTSTANDING" default:"100"`
	NumGoroutines          int           `envconfig:"VENDORPAYMENTS_PUBSUB_NUM_GOROUTINES" default:"1"`
	MaxExtension           time.Duration `envconfig:"VENDORPAYMENTS_PUBSUB_MAX_EXTENSION" default:"10m"`
}

func (db *DBConfig) normalizeDriver() error {
	driver := strings.ToLower(strings.TrimSpace(db.Driver))
	if driver == "" {
		driver = DriverPostgres
	}
	switch driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
		db.Driver = driver
		return nil
	}
	return fmt.Errorf("unsupported %s %q (expected postgres, mysql or sqlite)", EnvDBDriver, db.Driver)
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.Driver == DriverSQLite {
		db.DSN = "file:vendorpayments.db?cache=shared"
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	if db.Driver == DriverMySQL {
		port := db.LegacyPort
		if port == 0 {
			port = 3306
		}
		db.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			db.LegacyUser, db.LegacyPassword, db.LegacyHost, port, db.LegacyName)
		return nil
	}

	port := db.LegacyPort
	if port == 0 {
		port = 5432
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, port),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
