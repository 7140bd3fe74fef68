package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	DataDir   string
	UploadDir string

	JWTSecret         string
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	NotifyEmail string
}

var AppConfig *Config

func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// .env file is optional, continue without it
	}

	AppConfig = &Config{
		ServerPort:  getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DataDir:   getEnv("DATA_DIR", "data"),
		UploadDir: getEnv("UPLOAD_DIR", "public/uploads"),

		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		SMTPHost:    getEnv("SMTP_HOST", ""),
		SMTPPort:    getEnvInt("SMTP_PORT", 587),
		SMTPUser:    getEnv("SMTP_USER", ""),
		SMTPPass:    getEnv("SMTP_PASS", ""),
		NotifyEmail: getEnv("NOTIFY_EMAIL", "your-email@idealcar.co.za"),
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
