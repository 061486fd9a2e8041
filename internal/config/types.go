package config

type Config struct {
	DatabaseURL    string
	RedisURL       string
	Port           string
	Environment    string
	AllowedOrigins []string
	RateLimit      string
	JobsStream     string
	JobsGroup      string
}

type SandboxConfig struct {
	APIKey   string
	APIURL   string
	Domain   string
	Template string
}

type ClientConfig struct {
	APIEndpoint string
}

type ServerFlags struct {
	Migrate bool
}

type WorkerFlags struct {
	Consumer string
	Migrate  bool
}
