package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Issue intelligence specifics
	Voyage     VoyageConfig
	Automation AutomationConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Event ingest
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

// AutomationConfig tunes the duplicate detector and rule engine.
type AutomationConfig struct {
	DuplicateThreshold  float64 // minimum similarity for a duplicate candidate
	MaxCandidates       int     // max duplicate candidates returned
	EmbeddingCacheSize  int     // bounded LRU entries
	EmbeddingDimensions int     // embedding vector size requested from the provider
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type WebhookConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Voyage AI embeddings
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	cfg.Voyage.Model = viper.GetString("voyage.model")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// Automation tuning
	cfg.Automation.DuplicateThreshold = viper.GetFloat64("automation.duplicate_threshold")
	cfg.Automation.MaxCandidates = viper.GetInt("automation.max_candidates")
	cfg.Automation.EmbeddingCacheSize = viper.GetInt("automation.embedding_cache_size")
	cfg.Automation.EmbeddingDimensions = viper.GetInt("automation.embedding_dimensions")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if len(cfg.LLM.Providers) == 0 {
		return nil, fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	// Event ingest
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Automation defaults
	viper.SetDefault("automation.duplicate_threshold", 0.75)
	viper.SetDefault("automation.max_candidates", 5)
	viper.SetDefault("automation.embedding_cache_size", 2048)
	viper.SetDefault("automation.embedding_dimensions", 1024)
	viper.SetDefault("webhook.rate_limit_per_min", 60)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
