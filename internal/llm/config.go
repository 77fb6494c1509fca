package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the LLM subsystem. The suggestion
// workflow tolerates long calls: the external model run is one of the two
// high-latency operations in the app, so the timeout budget is minutes.
type Config struct {
	Endpoint    string
	Model       string
	TimeoutMs   int
	MaxRetries  int
	Temperature float64
	MaxTokens   int
	LogCalls    bool
}

// DefaultConfig returns a Config with sensible defaults for a local Ollama
// instance.
func DefaultConfig() Config {
	return Config{
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		TimeoutMs:   120000,
		MaxRetries:  1,
		Temperature: 0.2,
		MaxTokens:   2048,
		LogCalls:    false,
	}
}

// LoadConfig reads LLM configuration from environment variables, falling
// back to defaults for any unset value.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CHRONO_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("CHRONO_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("CHRONO_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("CHRONO_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("CHRONO_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("CHRONO_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("CHRONO_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
