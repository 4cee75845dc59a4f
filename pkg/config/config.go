package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Cart         CartConfig
	Mailer       MailerConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AUDIOPHILE_APP_ENV" required:"true"`
	Port         string `envconfig:"AUDIOPHILE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"AUDIOPHILE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AUDIOPHILE_LOG_WARN_STACK" default:"false"`
	SiteURL      string `envconfig:"AUDIOPHILE_SITE_URL" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"AUDIOPHILE_DB_DSN" required:"true"`
	Driver string `envconfig:"AUDIOPHILE_DB_DRIVER" default:"postgres"`

	MaxOpenConns    int           `envconfig:"AUDIOPHILE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"AUDIOPHILE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"AUDIOPHILE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"AUDIOPHILE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"AUDIOPHILE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"AUDIOPHILE_REDIS_ADDR"`
	Password     string        `envconfig:"AUDIOPHILE_REDIS_PASSWORD"`
	DB           int           `envconfig:"AUDIOPHILE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"AUDIOPHILE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"AUDIOPHILE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"AUDIOPHILE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"AUDIOPHILE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"AUDIOPHILE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CartConfig controls the session cart store and its signed session tokens.
type CartConfig struct {
	TTL           time.Duration `envconfig:"AUDIOPHILE_CART_TTL" default:"720h"`
	SessionSecret string        `envconfig:"AUDIOPHILE_CART_SESSION_SECRET" required:"true"`
	SessionIssuer string        `envconfig:"AUDIOPHILE_CART_SESSION_ISSUER" default:"audiophile"`
}

type MailerConfig struct {
	APIKey      string        `envconfig:"AUDIOPHILE_RESEND_API_KEY"`
	DefaultFrom string        `envconfig:"AUDIOPHILE_MAIL_FROM" default:"Audiophile <onboarding@resend.dev>"`
	BaseURL     string        `envconfig:"AUDIOPHILE_RESEND_BASE_URL" default:"https://api.resend.com"`
	Timeout     time.Duration `envconfig:"AUDIOPHILE_MAIL_TIMEOUT" default:"5s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"AUDIOPHILE_AUTO_MIGRATE" default:"false"`
}
