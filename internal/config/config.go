// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Backend selects which storage adapter the server runs against.
type Backend string

const (
	BackendPostgres  Backend = "postgres"
	BackendFirestore Backend = "firestore"
)

type Config struct {
	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
	} `json:"database"`
	Firebase struct {
		ProjectID string `json:"project_id"`
		// ServiceAccountKey holds the raw service-account JSON. When empty the
		// verifier runs in "not configured" mode and auth endpoints degrade
		// instead of crashing.
		ServiceAccountKey string `json:"-"`
	} `json:"firebase"`
	Storage struct {
		Backend Backend `json:"backend"`
	} `json:"storage"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	}
	Sendgrid struct {
		APIKey   string `json:"api_key"`
		From     string `json:"from"`
		FromName string `json:"from_name"`
	} `json:"sendgrid"`
	SMTP    map[string]SMTPConfig `json:"smtp"`
	BaseURL string                `json:"base_url"`
}

// SMTPConfig holds settings for one SMTP provider, keyed in Config.SMTP by
// the provider name.
type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
}

func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "kef")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")

	// Storage backend selection
	cfg.Storage.Backend = Backend(getEnv("STORAGE_BACKEND", string(BackendPostgres)))

	// Firebase configuration
	cfg.Firebase.ProjectID = getEnv("FIREBASE_PROJECT_ID", "")
	cfg.Firebase.ServiceAccountKey = getEnv("FIREBASE_SERVICE_ACCOUNT_KEY", "")

	// Sendgrid configuration
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", "noreply@keralaeconomicforum.org")
	cfg.Sendgrid.FromName = getEnv("SENDGRID_FROM_NAME", "Kerala Economic Forum")

	// SMTP fallback provider, configured only when a host is set
	cfg.SMTP = map[string]SMTPConfig{}
	if host := getEnv("SMTP_HOST", ""); host != "" {
		port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
		if err != nil || port <= 0 {
			port = 587
		}
		cfg.SMTP["smtp"] = SMTPConfig{
			Host:     host,
			Port:     port,
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", cfg.Sendgrid.From),
		}
	}

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15

	cfg.BaseURL = getEnv("BASE_URL", "https://keralaeconomicforum.org")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
