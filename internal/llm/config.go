package llm

import (
	"os"
	"strconv"
	"strings"
)

// Provider names a generation backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// TaskType identifies the kind of generation being performed.
type TaskType string

const (
	TaskDailyReport TaskType = "daily_report"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	// ThinkingBudget caps extended reasoning tokens. Zero disables it.
	ThinkingBudget int
}

// LLMConfig holds all configuration for the generation subsystem. It is built
// once at startup and injected into clients; nothing in this package reads the
// environment at call time.
type LLMConfig struct {
	Provider Provider
	APIKey   string
	Model    string
	LogCalls bool

	// Endpoint is the Ollama server address.
	Endpoint string
	// BaseURL overrides the Gemini API base URL (proxies, tests).
	BaseURL string

	Tasks map[TaskType]TaskConfig
}

const (
	defaultGeminiModel = "gemini-3-flash-preview"
	defaultOllamaModel = "llama3.2"
)

// DefaultConfig returns an LLMConfig with sensible defaults. The credential is
// left empty.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Provider: ProviderGemini,
		Model:    defaultGeminiModel,
		Endpoint: "http://localhost:11434",
		Tasks: map[TaskType]TaskConfig{
			TaskDailyReport: {Temperature: 0.7, ThinkingBudget: 0},
		},
	}
}

// DefaultModel returns the model used for p when none is configured.
func DefaultModel(p Provider) string {
	if p == ProviderOllama {
		return defaultOllamaModel
	}
	return defaultGeminiModel
}

// LoadConfig reads configuration from environment variables, falling back to
// defaults for any unset values.
func LoadConfig() LLMConfig {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) LLMConfig {
	cfg := DefaultConfig()

	if v := getenv("GENBA_LLM_PROVIDER"); v != "" {
		cfg.Provider = Provider(strings.ToLower(strings.TrimSpace(v)))
	}
	cfg.Model = DefaultModel(cfg.Provider)
	if v := getenv("GENBA_LLM_MODEL"); v != "" {
		cfg.Model = v
	}

	cfg.APIKey = getenv("GEMINI_API_KEY")
	if cfg.APIKey == "" {
		cfg.APIKey = getenv("API_KEY")
	}

	if v := getenv("GENBA_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := getenv("GENBA_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = strings.TrimRight(v, "/")
	}
	if v := getenv("GENBA_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := getenv("GENBA_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.SetTemperature(TaskDailyReport, f)
		}
	}

	return cfg
}

// SetTemperature overrides the temperature of a single task.
func (c *LLMConfig) SetTemperature(task TaskType, temp float64) {
	tc := c.Tasks[task]
	tc.Temperature = temp
	c.Tasks[task] = tc
}

// RequiresCredential reports whether the configured provider needs an API key.
func (c LLMConfig) RequiresCredential() bool {
	return c.Provider != ProviderOllama
}

// HasCredential reports whether a usable credential is configured.
func (c LLMConfig) HasCredential() bool {
	return !c.RequiresCredential() || strings.TrimSpace(c.APIKey) != ""
}
