package llmprovider

import (
	"fmt"
	"sort"
	"strings"

	"issue-intelligence/config"
	"issue-intelligence/pkg/deepseek"
	"issue-intelligence/pkg/gemini"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers
// filtered out. Skips providers that fail to initialize instead of failing
// the entire service.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config.
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	switch cfg.Name {
	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
