package configs

import (
	"os"
	"time"

	"github.com/pathania28/s2y-taste-trail/services"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource       string
	Port           string
	JWTSecret      string
	JWTTTL         time.Duration
	CheckoutPolicy services.CheckoutPolicy
	SeedDemoData   bool
}

func LoadConfig() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		DBSource:       getEnv("DB_SOURCE", "freshflow.db"),
		Port:           getEnv("PORT", "8000"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		JWTTTL:         24 * time.Hour,
		CheckoutPolicy: services.CheckoutPolicy(getEnv("CHECKOUT_POLICY", string(services.PolicyPriceLock))),
		SeedDemoData:   getEnv("SEED_DEMO_DATA", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
