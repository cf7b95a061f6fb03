package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments or are secrets
// - default: values common across all environments
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Data    DataConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Payment PaymentConfig
	Guard   GuardConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// DataConfig locates the JSON collection files. One file per collection,
// replaced whole on every write.
type DataConfig struct {
	Dir string `envconfig:"DATA_DIR" default:"data"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type PaymentConfig struct {
	StripeSecretKey string  `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	FeePercent      float64 `envconfig:"PLATFORM_FEE_PERCENT" default:"3"`
}

// GuardConfig tunes the integrity guard's identifier cache.
type GuardConfig struct {
	CacheTTL time.Duration `envconfig:"GUARD_CACHE_TTL" default:"1m"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{Port: "8889"},
		Data:   DataConfig{Dir: "testdata"},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT:     JWTConfig{Secret: "test-secret"},
		Payment: PaymentConfig{StripeSecretKey: "sk_test_dummy", FeePercent: 3},
		Guard:   GuardConfig{CacheTTL: time.Minute},
	}
}
