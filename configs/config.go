package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	BaseURL   string
	UploadDir string
	RedisURL  string
	JWTSecret string
	JWTTTL    time.Duration

	// Outbound mail (order intake + contact form). Empty key disables sending.
	ResendAPIKey string
	MailFrom     string
	MailTo       string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on environment")
	}

	return &Config{
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DBSource:     getEnv("DB_SOURCE", "missdelice.db"),
		Port:         getEnv("PORT", "3000"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:3000"),
		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
		JWTSecret:    getEnv("JWT_SECRET", "changeme"),
		JWTTTL:       24 * time.Hour,
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		MailFrom:     getEnv("MAIL_FROM", "commandes@missdelice.fr"),
		MailTo:       getEnv("MAIL_TO", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
