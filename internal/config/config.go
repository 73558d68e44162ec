package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultModel is the Gemini model used when GEMINI_MODEL is not set.
const DefaultModel = "gemini-3-flash-preview"

// Keys understood by Load. Viper maps each one to its upper-cased
// environment variable, so "gemini_api_key" reads GEMINI_API_KEY.
const (
	KeyPort             = "port"
	KeyEnv              = "env"
	KeyGeminiAPIKey     = "gemini_api_key"
	KeyGeminiAPIKeyFile = "gemini_api_key_file"
	KeyGeminiModel      = "gemini_model"
	KeyMaxFileSize      = "max_file_size"
	KeyLogJSON          = "log_json"
	KeyLogDebug         = "log_debug"
	KeyLogMaxPreview    = "log_max_preview"
)

const (
	defaultPort        = "8000"
	defaultEnv         = "development"
	defaultMaxFileSize = int64(10 << 20)
	defaultMaxPreview  = 200
)

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Upload UploadConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type UploadConfig struct {
	MaxFileSize int64
}

type LogConfig struct {
	JSON       bool
	Debug      bool
	MaxPreview int
}

// LoadDotEnv loads variables from .env files into the process environment.
// Variables that are already set are left untouched. A missing file is
// reported as an error so the caller can log it; it is never fatal.
func LoadDotEnv(paths ...string) error {
	return godotenv.Load(paths...)
}

// Load resolves the service configuration from v. Flags bound to v take
// precedence over environment variables, which take precedence over defaults.
// It fails when no Gemini API key can be resolved.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		return nil, errors.New("viper instance is required")
	}

	v.AutomaticEnv()
	v.SetDefault(KeyPort, defaultPort)
	v.SetDefault(KeyEnv, defaultEnv)
	v.SetDefault(KeyGeminiModel, DefaultModel)
	v.SetDefault(KeyMaxFileSize, defaultMaxFileSize)
	v.SetDefault(KeyLogMaxPreview, defaultMaxPreview)

	apiKey, err := LoadSecret(SecretSource{
		Name:  "GEMINI_API_KEY",
		Value: v.GetString(KeyGeminiAPIKey),
		File:  v.GetString(KeyGeminiAPIKeyFile),
	})
	if err != nil {
		return nil, fmt.Errorf("resolve gemini api key: %w", err)
	}

	model := strings.TrimSpace(v.GetString(KeyGeminiModel))
	if model == "" {
		model = DefaultModel
	}

	maxFileSize := v.GetInt64(KeyMaxFileSize)
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxFileSize
	}

	maxPreview := v.GetInt(KeyLogMaxPreview)
	if maxPreview <= 0 {
		maxPreview = defaultMaxPreview
	}

	return &Config{
		Server: ServerConfig{
			Port: strings.TrimSpace(v.GetString(KeyPort)),
			Env:  v.GetString(KeyEnv),
		},
		Gemini: GeminiConfig{
			APIKey: apiKey,
			Model:  model,
		},
		Upload: UploadConfig{
			MaxFileSize: maxFileSize,
		},
		Log: LogConfig{
			JSON:       v.GetBool(KeyLogJSON),
			Debug:      v.GetBool(KeyLogDebug),
			MaxPreview: maxPreview,
		},
	}, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Server.Port)
}
