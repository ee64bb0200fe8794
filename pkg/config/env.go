package config

const (
	EnvPrefix = "VENDORPAYMENTS"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv       = "VENDORPAYMENTS_APP_ENV"
	EnvPort         = "VENDORPAYMENTS_APP_PORT"
	EnvLogLevel     = "VENDORPAYMENTS_LOG_LEVEL"
	EnvLogWarnStack = "VENDORPAYMENTS_LOG_WARN_STACK"
	EnvCORSOrigins  = "VENDORPAYMENTS_CORS_ALLOWED_ORIGINS"

	EnvDBDSN    = "VENDORPAYMENTS_DB_DSN"
	EnvDBDriver = "VENDORPAYMENTS_DB_DRIVER"
	EnvDBHost   = "VENDORPAYMENTS_DB_HOST"
	EnvDBPort   = "VENDORPAYMENTS_DB_PORT"
	EnvDBUser   = "VENDORPAYMENTS_DB_USER"
	EnvDBPass   = "VENDORPAYMENTS_DB_PASSWORD"
	EnvDBName   = "VENDORPAYMENTS_DB_NAME"

	EnvRedisURL = "VENDORPAYMENTS_REDIS_URL"

	EnvJWTSecret  = "VENDORPAYMENTS_JWT_SECRET"
	EnvJWTIssuer  = "VENDORPAYMENTS_JWT_ISSUER"
	EnvJWTExpMins = "VENDORPAYMENTS_JWT_EXPIRATION_MINUTES"

	EnvAutoMigrate = "VENDORPAYMENTS_AUTO_MIGRATE"

	EnvGCPProjectID    = "VENDORPAYMENTS_GCP_PROJECT_ID"
	EnvPubSubOrdersSub = "VENDORPAYMENTS_PUBSUB_ORDERS_SUBSCRIPTION"

	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
