package config

const (
	EnvPrefix = "INVENTORY"

	AppEnvProd = "prod"
)

const (
	EnvAppEnv          = "INVENTORY_APP_ENV"
	EnvPort            = "INVENTORY_APP_PORT"
	EnvLogLevel        = "INVENTORY_LOG_LEVEL"
	EnvShutdownTimeout = "INVENTORY_SHUTDOWN_TIMEOUT"
	EnvSeedFixtures    = "INVENTORY_SEED_FIXTURES"
	EnvRedisURL        = "INVENTORY_REDIS_URL"
	EnvRedisAddr       = "INVENTORY_REDIS_ADDR"
	EnvIdempotencyTTL  = "INVENTORY_IDEMPOTENCY_TTL"
	EnvMetricsEnabled  = "INVENTORY_METRICS_ENABLED"
	EnvMetricsPath     = "INVENTORY_METRICS_PATH"
	EnvCORSOrigins     = "INVENTORY_CORS_ALLOWED_ORIGINS"
)
