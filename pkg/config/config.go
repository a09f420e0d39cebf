package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	AppEnv       string
	IsProduction bool

	JWTSecret    string
	Port         string
	DatabasePath string

	// runtime tunables
	RateLimitWindowSeconds  int
	RateLimitCapacity       int
	DumpSiteCacheTTLSeconds int
)

func init() {
	AppEnv = os.Getenv("APP_ENV")

	// do not load .env file in production
	if AppEnv != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("[config] no .env loaded: %v", err)
		}
		AppEnv = os.Getenv("APP_ENV")
	}
	if AppEnv == "" {
		AppEnv = "development"
	}
	IsProduction = AppEnv == "production"

	JWTSecret = os.Getenv("JWT_SECRET_KEY")
	if JWTSecret == "" {
		if IsProduction {
			log.Fatal("JWT_SECRET_KEY must be set in production")
		}
		JWTSecret = "junkrun-dev-secret"
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "5000"
	}
	DatabasePath = os.Getenv("DATABASE_PATH")
	if DatabasePath == "" {
		DatabasePath = "junkrun.db"
	}

	RateLimitWindowSeconds = atoiOr(os.Getenv("RATE_LIMIT_WINDOW_SECONDS"), 10)
	RateLimitCapacity = atoiOr(os.Getenv("RATE_LIMIT_CAPACITY"), 5)
	DumpSiteCacheTTLSeconds = atoiOr(os.Getenv("DUMP_SITE_CACHE_TTL_SECONDS"), 300)

	log.Printf("[config] AppEnv=%s Port=%s DatabasePath=%s", AppEnv, Port, DatabasePath)
	log.Printf("[config] RateLimit window=%ds capacity=%d siteCacheTTL=%ds",
		RateLimitWindowSeconds, RateLimitCapacity, DumpSiteCacheTTLSeconds)
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
