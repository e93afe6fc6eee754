package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Env struct {
	AppAddr string `env:"APP_ADDR" envDefault:":8080"`
	GinMode string `env:"GIN_MODE"`

	DBDriver   string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBDSN      string `env:"DB_DSN"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"bookings.db"`

	AdmitLockTimeout  time.Duration `env:"ADMIT_LOCK_TIMEOUT" envDefault:"5s"`
	AdmitMaxRetries   int           `env:"ADMIT_MAX_RETRIES" envDefault:"3"`
	AdmitRetryBackoff time.Duration `env:"ADMIT_RETRY_BACKOFF" envDefault:"25ms"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	VenueSeedFile      string   `env:"VENUE_SEED_FILE"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadEnv reads an optional .env file and then parses the process environment.
func LoadEnv() (Env, error) {
	_ = godotenv.Load()
	return ParseEnv()
}

// ParseEnv parses the process environment without touching .env files.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	e.DBDriver = strings.ToLower(strings.TrimSpace(e.DBDriver))
	e.GinMode = strings.TrimSpace(e.GinMode)

	switch e.DBDriver {
	case DriverSQLite:
		if strings.TrimSpace(e.SQLitePath) == "" {
			return Env{}, fmt.Errorf("parse env: SQLITE_PATH is required for driver %q", e.DBDriver)
		}
	case DriverMySQL:
		if strings.TrimSpace(e.DBDSN) == "" {
			return Env{}, fmt.Errorf("parse env: DB_DSN is required for driver %q", e.DBDriver)
		}
	default:
		return Env{}, fmt.Errorf("parse env: unsupported DB_DRIVER %q", e.DBDriver)
	}
	if e.AdmitMaxRetries < 0 {
		e.AdmitMaxRetries = 0
	}
	return e, nil
}
