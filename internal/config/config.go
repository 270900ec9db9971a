package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/relyk/tomatobot/internal/constants"
	"github.com/relyk/tomatobot/internal/util"
)

// Config holds everything the bot needs to run.
type Config struct {
	Discord   DiscordConfig
	Wargaming WargamingConfig
	Logging   LoggingConfig
	Version   string
}

// DiscordConfig carries the chat-platform credential.
type DiscordConfig struct {
	Token string
}

// WargamingConfig carries the Wargaming API application id.
type WargamingConfig struct {
	AppID string
}

// LoggingConfig holds level, directory and rotation policy.
type LoggingConfig struct {
	Level      string
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Load reads .env and the environment, applies defaults and validates.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Discord: DiscordConfig{
			Token: util.TrimSpace(getEnv("DISCORD_TOKEN", "")),
		},
		Wargaming: WargamingConfig{
			AppID: getEnv("WG_APP_ID", constants.WargamingDefaults.AppID),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Dir:        getEnv("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 30),
			Compress:   getEnvBool("LOG_COMPRESS", true),
		},
		Version: util.TrimSpace(getEnv("APP_VERSION", "1.0.0")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the required settings.
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Wargaming.AppID == "" {
		return fmt.Errorf("WG_APP_ID must not be empty")
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
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
