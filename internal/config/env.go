package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	// Allowed CORS origins for the SPA client; empty means the localhost
	// dev defaults.
	CORSOrigins []string

	// Display currency symbol and the flat per-day rate charged when the
	// renter requests a driver. Both are configuration, never computed.
	Currency      string
	DriverDayRate int64
}

func LoadEnv() Env {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	return Env{
		AppAddr: getEnv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getEnv("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASSWORD"),
		DBHost: getEnv("DB_HOST", "127.0.0.1:3306"),
		DBName: getEnv("DB_NAME", "car_rental"),

		JWTSecret: getEnv("JWT_SECRET", "super-secret-key-change-me"),

		CORSOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),

		Currency:      getEnv("CURRENCY", "Rs."),
		DriverDayRate: getEnvInt("DRIVER_DAY_RATE", 500),
	}
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvInt(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}
