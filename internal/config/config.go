package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBServer   string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	AllowedOrigins []string

	APIHost string
	APIPort string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		DBServer:   getenv("DB_SERVER", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBName:     getenv("DB_NAME", "restaurantdb"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		AllowedOrigins: splitOrigins(getenv("ALLOWED_ORIGINS", "http://localhost:3000")),

		APIHost: getenv("API_HOST", "0.0.0.0"),
		APIPort: getenv("API_PORT", "8000"),
	}
	log.Printf("[config] DB_SERVER=%s DB_PORT=%s DB_NAME=%s", cfg.DBServer, cfg.DBPort, cfg.DBName)
	log.Printf("[config] ALLOWED_ORIGINS=%s", strings.Join(cfg.AllowedOrigins, ","))
	log.Printf("[config] API_HOST=%s API_PORT=%s", cfg.APIHost, cfg.APIPort)
	return cfg
}

// DSN assembles the Postgres connection string from the individual DB_*
// settings. The password is query-escaped and never logged.
func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPassword),
		c.DBServer, c.DBPort, c.DBName, c.DBSSLMode)
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
