package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Ai       AIConfig
	Reminder ReminderConfig
	Dispatch DispatchConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host        string
	Port        int
	Email       string
	Password    string
	SenderEmail string
	SenderName  string
}

type AIConfig struct {
	LLMProvider      string // "ollama"
	LLMModel         string // e.g. "llama3", "qwen2.5"
	OllamaBaseURL    string
	NarrativeTimeout time.Duration
}

type ReminderConfig struct {
	DefaultTime     string   // "HH:MM"
	DefaultWeekdays []string // "MON".."SUN"
	Timezone        string   // IANA name, e.g. "Europe/Berlin"
	LogFilePath     string
}

type DispatchConfig struct {
	Provider     string // "webhook" or "email"
	WebhookURL   string
	WebhookToken string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:        getEnv("SMTP_HOST", ""),
			Port:        getEnvAsInt("SMTP_PORT", 587),
			Email:       getEnv("SMTP_EMAIL", ""),
			Password:    getEnv("SMTP_PASSWORD", ""),
			SenderEmail: getEnv("SMTP_SENDER_EMAIL", ""),
			SenderName:  getEnv("SMTP_SENDER_NAME", "Strength Coach"),
		},
		Ai: AIConfig{
			LLMProvider:      getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:         getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL:    getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			NarrativeTimeout: getEnvAsDuration("NARRATIVE_TIMEOUT", 20*time.Second),
		},
		Reminder: ReminderConfig{
			DefaultTime:     getEnv("REMINDER_DEFAULT_TIME", "08:00"),
			DefaultWeekdays: getEnvAsList("REMINDER_DEFAULT_DAYS", []string{"MON", "WED", "FRI"}),
			Timezone:        getEnv("REMINDER_TIMEZONE", "UTC"),
			LogFilePath:     getEnv("REMINDER_LOG_FILE_PATH", "reminder.log"),
		},
		Dispatch: DispatchConfig{
			Provider:     getEnv("DISPATCH_PROVIDER", "webhook"),
			WebhookURL:   getEnv("DISPATCH_WEBHOOK_URL", ""),
			WebhookToken: getEnv("DISPATCH_WEBHOOK_TOKEN", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	parts := strings.Split(strValue, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
