package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ezBadminton/kiva/core"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string
	DBDriver     string
	DBDSN        string
	MinGroupSize int
	CreateRate   float64
	CreateBurst  int
	Lambda       bool
}

// Loads the .env files when present and reads the
// configuration from the environment.
func Load() (Config, error) {
	_ = godotenv.Load(".env", ".env.local")
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:         ":8080",
		DBDriver:     "memory",
		MinGroupSize: core.DefaultMinGroupSize,
		CreateRate:   1,
		CreateBurst:  5,
		Lambda:       getenv("AWS_LAMBDA_FUNCTION_NAME") != "",
	}

	if v := strings.TrimSpace(getenv("KIVA_ADDR")); v != "" {
		cfg.Addr = v
	}
	if v := strings.TrimSpace(getenv("KIVA_DB_DRIVER")); v != "" {
		cfg.DBDriver = strings.ToLower(v)
	}
	cfg.DBDSN = strings.TrimSpace(getenv("KIVA_DB_DSN"))

	switch cfg.DBDriver {
	case "memory":
	case "sqlite", "postgres":
		if cfg.DBDSN == "" {
			return cfg, fmt.Errorf("KIVA_DB_DSN is required for the %s driver", cfg.DBDriver)
		}
	default:
		return cfg, fmt.Errorf("unknown KIVA_DB_DRIVER %q", cfg.DBDriver)
	}

	if v := strings.TrimSpace(getenv("KIVA_MIN_GROUP_SIZE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("invalid KIVA_MIN_GROUP_SIZE %q", v)
		}
		cfg.MinGroupSize = n
	}
	if v := strings.TrimSpace(getenv("KIVA_CREATE_RATE")); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate <= 0 {
			return cfg, fmt.Errorf("invalid KIVA_CREATE_RATE %q", v)
		}
		cfg.CreateRate = rate
	}
	if v := strings.TrimSpace(getenv("KIVA_CREATE_BURST")); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst < 1 {
			return cfg, fmt.Errorf("invalid KIVA_CREATE_BURST %q", v)
		}
		cfg.CreateBurst = burst
	}

	return cfg, nil
}
