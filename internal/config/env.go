package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "8080"
	defaultEnvironment    = "development"
	defaultAllowedOrigins = "http://localhost:3000"
	defaultRateLimit      = "20-M"
	defaultJobsStream     = "vibe:events"
	defaultJobsGroup      = "code-agent"
	defaultSandboxAPIURL  = "https://api.e2b.dev"
	defaultSandboxDomain  = "e2b.app"
	defaultSandboxTmpl    = "vibe-nextjs-test"
	defaultAPIEndpoint    = "http://localhost:8080"
)

// loads configuration shared by the api server and the worker
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	redisURL := os.Getenv("REDIS_URL")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL environment variable is required")
	}

	return &Config{
		DatabaseURL:    databaseURL,
		RedisURL:       redisURL,
		Port:           getEnv("PORT", defaultPort),
		Environment:    getEnv("ENVIRONMENT", defaultEnvironment),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", defaultAllowedOrigins)),
		RateLimit:      getEnv("RATE_LIMIT", defaultRateLimit),
		JobsStream:     getEnv("JOBS_STREAM", defaultJobsStream),
		JobsGroup:      getEnv("JOBS_GROUP", defaultJobsGroup),
	}, nil
}

// loads the sandbox settings only the worker needs
func LoadSandboxConfig() (*SandboxConfig, error) {
	apiKey := os.Getenv("SANDBOX_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("SANDBOX_API_KEY environment variable is required")
	}

	return &SandboxConfig{
		APIKey:   apiKey,
		APIURL:   strings.TrimSuffix(getEnv("SANDBOX_API_URL", defaultSandboxAPIURL), "/"),
		Domain:   getEnv("SANDBOX_DOMAIN", defaultSandboxDomain),
		Template: getEnv("SANDBOX_TEMPLATE", defaultSandboxTmpl),
	}, nil
}

// loads the terminal client settings, nothing is required
func LoadClientConfig() *ClientConfig {
	_ = godotenv.Load()

	return &ClientConfig{
		APIEndpoint: strings.TrimSuffix(getEnv("VIBE_API_ENDPOINT", defaultAPIEndpoint), "/"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}

func splitList(raw string) []string {
	var out []string

	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
