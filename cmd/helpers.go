package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/alertdeskhq/alertdesk/internal/config"
	"github.com/alertdeskhq/alertdesk/internal/llm"
)

// loadConfig reads .env (if present), then the config file plus env
// overrides, and validates the result.
func loadConfig() (*config.Config, error) {
	// API keys live in the environment, not the yaml file.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// createLLMProviderFromConfig builds the chat provider. It returns nil
// (not an error) when the provider's API key is unset, so the server
// can run with chat disabled and report the missing credential per
// request.
func createLLMProviderFromConfig(cfg *config.Config) llm.Provider {
	switch cfg.Provider {
	case config.ProviderOllama:
		return llm.NewOllamaProvider(cfg.OllamaURL, cfg.Model)
	default:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
		if apiKey == "" {
			return nil
		}
		return llm.NewOpenAIProvider(apiKey, cfg.Model)
	}
}
