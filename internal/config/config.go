package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	Telegram struct {
		Token  string
		ChatID int64
	}
	Database struct {
		Path string
	}
	Report struct {
		// MsgLimit is the notification channel's single-message size cap.
		MsgLimit int
	}
}

// Load reads the environment. Telegram credentials are optional here and
// validated by RequireTelegram only on code paths that actually deliver.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.Telegram.Token = getEnv("TG_TOKEN", "")
	cfg.Database.Path = getEnv("DB_PATH", "alpha-x.db")

	if chatIDStr := getEnv("TG_CHAT_ID", ""); chatIDStr != "" {
		chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TG_CHAT_ID: %w", err)
		}
		cfg.Telegram.ChatID = chatID
	}

	cfg.Report.MsgLimit = 1600
	if limitStr := getEnv("MSG_LIMIT", ""); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("invalid MSG_LIMIT: %q", limitStr)
		}
		cfg.Report.MsgLimit = limit
	}

	log.Printf("✅ Config loaded: db=%s, msg limit=%d", cfg.Database.Path, cfg.Report.MsgLimit)

	return cfg, nil
}

// RequireTelegram validates the delivery credentials.
func (c *Config) RequireTelegram() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("TG_TOKEN is not set")
	}
	if c.Telegram.ChatID == 0 {
		return fmt.Errorf("TG_CHAT_ID is not set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
