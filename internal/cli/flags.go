package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/genbaflow/internal/llm"
	"github.com/spf13/pflag"
)

// llmFlags are command-line overrides for the environment-derived LLM config.
type llmFlags struct {
	provider    string
	model       string
	temperature float64
	logCalls    bool
}

func (f *llmFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.provider, "provider", "", "Generation provider (gemini, ollama)")
	fs.StringVar(&f.model, "model", "", "Model name")
	fs.Float64Var(&f.temperature, "temperature", 0, "Sampling temperature (0-2)")
	fs.BoolVar(&f.logCalls, "log-calls", false, "Log every generation call")
}

// apply copies explicitly set flags onto cfg. Unset flags leave the
// environment value in place.
func (f *llmFlags) apply(fs *pflag.FlagSet, cfg *llm.LLMConfig) error {
	if fs.Changed("provider") {
		p := llm.Provider(strings.ToLower(strings.TrimSpace(f.provider)))
		if p != llm.ProviderGemini && p != llm.ProviderOllama {
			return fmt.Errorf("%w: %q", llm.ErrUnknownProvider, f.provider)
		}
		if p != cfg.Provider && !fs.Changed("model") {
			cfg.Model = llm.DefaultModel(p)
		}
		cfg.Provider = p
	}
	if fs.Changed("model") {
		cfg.Model = f.model
	}
	if fs.Changed("temperature") {
		if f.temperature < 0 || f.temperature > 2 {
			return fmt.Errorf("temperature must be between 0 and 2, got %g", f.temperature)
		}
		cfg.SetTemperature(llm.TaskDailyReport, f.temperature)
	}
	if fs.Changed("log-calls") {
		cfg.LogCalls = f.logCalls
	}
	return nil
}
