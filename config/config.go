package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode   string `mapstructure:"mode"`
	Server struct {
		HTTPPort       string        `mapstructure:"HTTPPort"`
		Timeout        time.Duration `mapstructure:"HTTPTimeout"`
		AllowedOrigins []string      `mapstructure:"allowedOrigins"`
	} `mapstructure:"server"`
	Metrics struct {
		Enabled bool   `mapstructure:"enabled"`
		Port    string `mapstructure:"port"`
	} `mapstructure:"metrics"`
	GenAI struct {
		APIKey      string  `mapstructure:"apiKey"`
		Model       string  `mapstructure:"model"`
		Temperature float32 `mapstructure:"temperature"`
	} `mapstructure:"genai"`
	Session struct {
		TTL             time.Duration `mapstructure:"ttl"`
		CleanupInterval time.Duration `mapstructure:"cleanupInterval"`
	} `mapstructure:"session"`
	RateLimit struct {
		Requests int           `mapstructure:"requests"`
		Window   time.Duration `mapstructure:"window"`
	} `mapstructure:"ratelimit"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetDefault("genai.model", "gemini-2.5-flash")
	v.SetDefault("genai.temperature", 0.5)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The credential keeps its conventional name.
	_ = v.BindEnv("genai.apiKey", "GEMINI_API_KEY", "GENAI_APIKEY")
	return v
}

// InitConfig reads config.yml from the usual locations, falling back to the
// embedded copy, then applies environment overrides (server.HTTPPort is
// SERVER_HTTPPORT and so on).
func InitConfig() (Config, error) {
	v := newViper()
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	if err := v.ReadInConfig(); err != nil {
		slog.Warn("No config file found, using embedded config", slog.Any("error", err))
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}
	return unmarshal(v)
}

// FromEmbedded loads only the embedded defaults plus environment overrides.
func FromEmbedded() (Config, error) {
	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
		return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return config, nil
}
