package llm

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultGeneratorMaxTokens   = 8192
	defaultGeneratorTemperature = float32(0.2)
)

// loads generator configuration from environment variables
func loadConfig() (*Config, error) {
	provider := Provider(os.Getenv("GENERATOR_PROVIDER"))
	if provider == "" {
		provider = ProviderGemini // default
	}

	keyEnv, err := apiKeyEnv(provider)
	if err != nil {
		return nil, err
	}

	apiKey := os.Getenv(keyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable is required", keyEnv)
	}

	model := os.Getenv("GENERATOR_MODEL")
	if model == "" {
		model = defaultModel(provider)
	}

	maxTokens := defaultGeneratorMaxTokens
	if maxTokensStr := os.Getenv("GENERATOR_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil && val > 0 {
			maxTokens = val
		}
	}

	temperature := defaultGeneratorTemperature
	if tempStr := os.Getenv("GENERATOR_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temperature = float32(val)
		}
	}

	return &Config{
		Provider:    provider,
		APIKey:      apiKey,
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}, nil
}
