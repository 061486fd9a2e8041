package llm

import "fmt"

// returns the environment variable holding the API key for the given provider
func apiKeyEnv(provider Provider) (string, error) {
	switch provider {
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY", nil
	case ProviderOpenAI:
		return "OPENAI_API_KEY", nil
	case ProviderGemini:
		return "GEMINI_API_KEY", nil
	default:
		return "", fmt.Errorf("unsupported generator provider: %s", provider)
	}
}

func defaultModel(provider Provider) string {
	switch provider {
	case ProviderAnthropic:
		return "claude-sonnet-4-20250514"
	case ProviderOpenAI:
		return "gpt-4o"
	default:
		return "gemini-2.0-flash"
	}
}
