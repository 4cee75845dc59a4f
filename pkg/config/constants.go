package config

// EnvPrefix is the envconfig prefix shared by every binary.
const EnvPrefix = "AUDIOPHILE"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (tests, tooling).
const (
	EnvAppEnv            = "AUDIOPHILE_APP_ENV"
	EnvPort              = "AUDIOPHILE_APP_PORT"
	EnvDBDSN             = "AUDIOPHILE_DB_DSN"
	EnvRedisURL          = "AUDIOPHILE_REDIS_URL"
	EnvCartSessionSecret = "AUDIOPHILE_CART_SESSION_SECRET"
)
