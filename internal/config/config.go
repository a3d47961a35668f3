package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var AppEnv Config

type Config struct {
	Port           string
	Env            string
	JWTSecret      string
	AccessTokenTTL time.Duration

	Admin  AdminConfig
	Stripe StripeConfig
	Bkash  BkashConfig
}

// AdminConfig holds the single back-office principal.
type AdminConfig struct {
	Username     string
	Email        string
	Name         string
	PasswordHash string
}

// StripeConfig contains credentials for the card-payment gateway.
type StripeConfig struct {
	SecretKey string
	BaseURL   string
}

// BkashConfig contains credentials for the mobile-wallet gateway.
type BkashConfig struct {
	BaseURL   string
	AppKey    string
	AppSecret string
	Username  string
	Password  string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg(".env not loaded")
	}
	AppEnv = Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		Env:            getEnvOrDefault("ENV", "development"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", "natalify-secret-key-2024"),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 24, time.Hour),
		Admin: AdminConfig{
			Username: getEnvOrDefault("ADMIN_USERNAME", "admin"),
			Email:    getEnvOrDefault("ADMIN_EMAIL", "admin@natalify.com"),
			Name:     getEnvOrDefault("ADMIN_NAME", "Admin User"),
			// default hash is for "admin123", development only
			PasswordHash: getEnvOrDefault("ADMIN_PASSWORD_HASH",
				"$2b$10$znLWFaGeRQUHdNtYgns.S.iS.KtlXQxt80DMBOmTpvXsawOAmnZM."),
		},
		Stripe: StripeConfig{
			SecretKey: getEnvOrDefault("STRIPE_SECRET_KEY", ""),
			BaseURL:   getEnvOrDefault("STRIPE_BASE_URL", "https://api.stripe.com/v1"),
		},
		Bkash: BkashConfig{
			BaseURL:   getEnvOrDefault("BKASH_BASE_URL", "https://tokenized.sandbox.bka.sh/v1.2.0-beta"),
			AppKey:    getEnvOrDefault("BKASH_APP_KEY", ""),
			AppSecret: getEnvOrDefault("BKASH_APP_SECRET", ""),
			Username:  getEnvOrDefault("BKASH_USERNAME", ""),
			Password:  getEnvOrDefault("BKASH_PASSWORD", ""),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
