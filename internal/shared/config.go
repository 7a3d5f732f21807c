package shared

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	MySQLDSN      string
	PublicBaseURL string
	ThrottleRPS   int
}

// Load reads config from the environment (a .env file is honored when
// present). MYSQL_DSN is required: the process must not come up without a
// reachable store to point at.
func Load() Config {
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ""),
		MySQLDSN:      os.Getenv("MYSQL_DSN"),
		PublicBaseURL: env("PUBLIC_BASE_URL", ""),
		ThrottleRPS:   atoi("THROTTLE_RPS", 0),
	}
	if c.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
