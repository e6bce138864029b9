package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every environment-provided setting. A missing integration key
// disables that one feature; only the database settings are required to boot.
type Config struct {
	AppBaseURL string

	// Identity provider (Supabase-style HS256 session tokens)
	JWTSecret      string
	GoogleClientID string

	// Admin allow-list, comma separated emails
	AdminEmails string

	// Stripe
	StripeSecretKey     string
	StripeWebhookSecret string

	// SendGrid
	SendgridAPIKey string
	EmailFrom      string

	// Storage provider 1: Aliyun OSS (profile images)
	OSSEndpoint  string
	OSSKeyID     string
	OSSKeySecret string
	OSSBucket    string

	// Storage provider 2: AWS S3 (blog / media assets)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
}

// Load reads .env (when present) and materializes the config.
func Load() *Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] no .env file, using system ENV")
		}
	}

	cfg := &Config{
		AppBaseURL:          GetEnv("APP_BASE_URL", "https://www.joinstudioe.com"),
		JWTSecret:           GetEnv("SUPABASE_JWT_SECRET"),
		GoogleClientID:      GetEnv("GOOGLE_CLIENT_ID"),
		AdminEmails:         GetEnv("ADMIN_EMAILS"),
		StripeSecretKey:     GetEnv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: GetEnv("STRIPE_WEBHOOK_SECRET"),
		SendgridAPIKey:      GetEnv("SENDGRID_API_KEY"),
		EmailFrom:           GetEnv("EMAIL_FROM", "hello@joinstudioe.com"),
		OSSEndpoint:         GetEnv("OSS_ENDPOINT"),
		OSSKeyID:            GetEnv("OSS_ACCESS_KEY_ID"),
		OSSKeySecret:        GetEnv("OSS_ACCESS_KEY_SECRET"),
		OSSBucket:           GetEnv("OSS_BUCKET"),
		S3Region:            GetEnv("AWS_REGION"),
		S3Bucket:            GetEnv("S3_BUCKET_NAME"),
		S3AccessKey:         GetEnv("AWS_ACCESS_KEY_ID"),
		S3SecretKey:         GetEnv("AWS_SECRET_ACCESS_KEY"),
	}

	if cfg.JWTSecret == "" {
		log.Println("[WARN] SUPABASE_JWT_SECRET not set, authenticated routes will reject all tokens")
	}
	if cfg.StripeSecretKey == "" {
		log.Println("[WARN] STRIPE_SECRET_KEY not set, checkout disabled")
	}
	if cfg.SendgridAPIKey == "" {
		log.Println("[WARN] SENDGRID_API_KEY not set, transactional email disabled")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
