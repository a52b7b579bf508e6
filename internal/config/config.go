package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-4"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Pipeline
	LLMTimeout     time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
	SessionMaxIdle time.Duration `env:"SESSION_MAX_IDLE" envDefault:"30m"`

	// Digital twin: non-zero seed pins the synthetic snapshot (useful for demos)
	TwinSeed int64 `env:"TWIN_SEED"`

	// Storage
	LogFilePath       string `env:"LOG_FILE_PATH" envDefault:"logs/interactions.jsonl"`
	CustomersFilePath string `env:"CUSTOMERS_FILE_PATH" envDefault:"data/customers.json"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
