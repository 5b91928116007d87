package config

import (
	"os"
)

type S3Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

type StorageConfig struct {
	// Driver selects the image store: "local" (default) or "s3".
	Driver    string
	UploadDir string
	S3        S3Config
}

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	FromName     string
}

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// OrganizerCode is the shared enrollment secret checked at signup
	// when role=organizer.
	OrganizerCode string

	// OrganizerDashboardAllEvents widens the organizer dashboard from
	// "own events" to the system-wide list when true.
	OrganizerDashboardAllEvents bool

	Storage StorageConfig
	Email   EmailConfig
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		OrganizerCode: os.Getenv("ORGANIZER_CODE"),

		OrganizerDashboardAllEvents: os.Getenv("ORGANIZER_DASHBOARD_ALL_EVENTS") == "true",
	}

	cfg.Storage.Driver = getEnv("STORAGE_DRIVER", "local")
	cfg.Storage.UploadDir = getEnv("UPLOAD_DIR", "static/uploads")
	cfg.Storage.S3.Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.Storage.S3.Region = getEnv("S3_REGION", "auto")
	cfg.Storage.S3.Bucket = os.Getenv("S3_BUCKET")
	cfg.Storage.S3.AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
	cfg.Storage.S3.SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")

	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "Campus Events")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
