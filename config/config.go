package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	CORSOrigin        string `mapstructure:"CORS_ORIGIN"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Firebase configuration (Realtime Database + Auth).
	DatabaseURL         string `mapstructure:"DATABASE_URL"`
	FirebaseCredentials string `mapstructure:"FIREBASE_CREDENTIALS"`

	// Media storage configuration.
	StorageBackend      string `mapstructure:"STORAGE_BACKEND"` // "gcs" or "cloudinary"
	StorageBucket       string `mapstructure:"STORAGE_BUCKET"`
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Payment gateway configuration.
	PaymentGateway    string `mapstructure:"PAYMENT_GATEWAY"` // "konnect" or "stripe"
	KonnectAPIKey     string `mapstructure:"KONNECT_API_KEY"`
	KonnectWalletID   string `mapstructure:"KONNECT_WALLET_ID"`
	KonnectWebhookURL string `mapstructure:"KONNECT_WEBHOOK_URL"`
	KonnectBaseURL    string `mapstructure:"KONNECT_BASE_URL"`
	PaymentSuccessURL string `mapstructure:"PAYMENT_SUCCESS_URL"`
	PaymentFailURL    string `mapstructure:"PAYMENT_FAIL_URL"`
	StripeKey         string `mapstructure:"STRIPE_KEY"`

	// Mail configuration.
	SMTPHost      string `mapstructure:"SMTP_HOST"`
	SMTPPort      string `mapstructure:"SMTP_PORT"`
	SMTPUser      string `mapstructure:"SMTP_USER"`
	SMTPPass      string `mapstructure:"SMTP_PASS"`
	EmailFrom     string `mapstructure:"EMAIL_FROM"`
	EmailFromName string `mapstructure:"EMAIL_FROM_NAME"`

	// Redis configuration (mail job queue).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisMailDB   int    `mapstructure:"REDIS_MAIL_DB"`

	// Slot booking policy: "flag", "decrement" or "both".
	SlotBookingPolicy string `mapstructure:"SLOT_BOOKING_POLICY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "3004")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("FIREBASE_CREDENTIALS", "serviceAccountKey.json")
	viper.SetDefault("STORAGE_BACKEND", "gcs")
	viper.SetDefault("STORAGE_BUCKET", "")
	viper.SetDefault("PAYMENT_GATEWAY", "konnect")
	viper.SetDefault("KONNECT_BASE_URL", "https://api.konnect.network/api/v2")
	viper.SetDefault("PAYMENT_SUCCESS_URL", "https://your-site.com/success")
	viper.SetDefault("PAYMENT_FAIL_URL", "https://your-site.com/failure")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("EMAIL_FROM_NAME", "Newsletter")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_MAIL_DB", 0)
	viper.SetDefault("SLOT_BOOKING_POLICY", "both")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
