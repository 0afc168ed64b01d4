package config

import (
	"encoding/json"
	"fmt"
	"lead-dispatcher/internal/domain/entities"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is read once at startup and shared read-only by every request.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	TelegramBotToken  string
	TelegramChatID    string
	TelegramNewChatID string
	TelegramAPIURL    string

	MetaVerifyToken     string
	MetaPageAccessToken string
	MetaAppSecret       string
	GraphAPIURL         string
	GraphAPIVersion     string

	CORSAllowOrigin string

	Forms entities.FormCatalog
}

func LoadEnv() error {
	err := godotenv.Load(".env")
	if err != nil {
		log.Printf("Could not load .env file, using process environment: %v", err)
		return err
	}
	return nil
}

// GetEnv returns the value of key, or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

// Load builds the Config from the process environment. Missing Telegram
// credentials are not an error here; they are reported per request.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      GetEnv("PORT", "8080"),
		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		LogFormat: GetEnv("LOG_FORMAT", "json"),

		TelegramBotToken:  GetEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:    GetEnv("TELEGRAM_CHAT_ID", ""),
		TelegramNewChatID: GetEnv("TELEGRAM_NEW_CHAT_ID", ""),
		TelegramAPIURL:    GetEnv("TELEGRAM_API_URL", "https://api.telegram.org"),

		MetaVerifyToken:     GetEnv("META_VERIFY_TOKEN", ""),
		MetaPageAccessToken: GetEnv("META_PAGE_ACCESS_TOKEN", ""),
		MetaAppSecret:       GetEnv("META_APP_SECRET", ""),
		GraphAPIURL:         GetEnv("GRAPH_API_URL", "https://graph.facebook.com"),
		GraphAPIVersion:     GetEnv("GRAPH_API_VERSION", "v23.0"),

		CORSAllowOrigin: GetEnv("CORS_ALLOW_ORIGIN", "*"),
	}

	forms, err := LoadFormCatalog(GetEnv("FORM_CATALOG_PATH", ""))
	if err != nil {
		return nil, err
	}
	cfg.Forms = forms

	return cfg, nil
}

// LoadFormCatalog reads the form catalog JSON file. An empty path yields an
// empty catalog, in which every form is classified as new.
func LoadFormCatalog(path string) (entities.FormCatalog, error) {
	catalog := entities.FormCatalog{
		OldForms: map[string]string{},
		NewForms: map[string]string{},
	}
	if path == "" {
		return catalog, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return catalog, fmt.Errorf("failed to read form catalog %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &catalog); err != nil {
		return catalog, fmt.Errorf("failed to parse form catalog %s: %w", path, err)
	}

	if catalog.OldForms == nil {
		catalog.OldForms = map[string]string{}
	}
	if catalog.NewForms == nil {
		catalog.NewForms = map[string]string{}
	}

	return catalog, nil
}

// Validate reports whether the credentials needed to notify the primary chat
// are present.
func (c *Config) Validate() error {
	var missing []string
	if c.TelegramBotToken == "" {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	if c.TelegramChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
