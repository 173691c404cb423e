package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramBotToken string
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	ChatModel        string
	AdminID          int64
	DBPath           string
	ChannelURL       string
	PaymentURL       string
	ResourceURL1     string
	ResourceURL2     string
	ServerPort       string
	EnableWebAdmin   bool
}

func Load() (*Config, error) {
	// Load .env if present, real env vars win anyway.
	_ = godotenv.Load()

	adminID, _ := strconv.ParseInt(os.Getenv("ADMIN_ID"), 10, 64)

	return &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		ChatModel:        getEnv("OPENAI_CHAT_MODEL", "gpt-3.5-turbo"),
		AdminID:          adminID,
		DBPath:           getEnv("DB_PATH", "users.db"),
		ChannelURL:       getEnv("CHANNEL_URL", "https://t.me/content_channel"),
		PaymentURL:       getEnv("PAYMENT_URL", "https://t.me/payment_contact"),
		ResourceURL1:     getEnv("RESOURCE_URL_1", "https://t.me/+courses_archive"),
		ResourceURL2:     getEnv("RESOURCE_URL_2", "https://t.me/+books_archive"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		EnableWebAdmin:   getEnv("ENABLE_WEB_ADMIN", "false") == "true",
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
