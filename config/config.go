package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/sonaeson/groupbuy-proposal/internal/logging"
)

type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig
	App    AppConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port string
}

// OpenAIConfig describes the chat-completion upstream. Timeout of zero means
// the call is bounded only by the inbound request context.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

type AppConfig struct {
	Environment        string
	LogLevel           string
	Version            string
	ExposeErrorDetails bool
}

type CORSConfig struct {
	AllowOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		logging.GetLogger().Info("No .env file found, using environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
		},
		OpenAI: OpenAIConfig{
			APIKey:      strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
			BaseURL:     v.GetString("OPENAI_BASE_URL"),
			Model:       v.GetString("OPENAI_MODEL"),
			Temperature: float32(v.GetFloat64("OPENAI_TEMPERATURE")),
			MaxTokens:   v.GetInt("OPENAI_MAX_TOKENS"),
			Timeout:     v.GetDuration("OPENAI_TIMEOUT"),
		},
		App: AppConfig{
			Environment:        v.GetString("APP_ENV"),
			LogLevel:           v.GetString("LOG_LEVEL"),
			Version:            v.GetString("APP_VERSION"),
			ExposeErrorDetails: v.GetBool("EXPOSE_ERROR_DETAILS"),
		},
		CORS: CORSConfig{
			AllowOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	v.SetDefault("OPENAI_TEMPERATURE", 0.7)
	v.SetDefault("OPENAI_MAX_TOKENS", 2000)
	v.SetDefault("OPENAI_TIMEOUT", "0")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("EXPOSE_ERROR_DETAILS", false)
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	if c.OpenAI.Model == "" {
		return fmt.Errorf("OPENAI_MODEL must not be empty")
	}

	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("OPENAI_TEMPERATURE must be between 0 and 2, got %v", c.OpenAI.Temperature)
	}

	if c.OpenAI.MaxTokens <= 0 {
		return fmt.Errorf("OPENAI_MAX_TOKENS must be positive, got %d", c.OpenAI.MaxTokens)
	}

	if c.OpenAI.Timeout < 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must not be negative")
	}

	return nil
}

// IsProduction reports whether APP_ENV selects production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
