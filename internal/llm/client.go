package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// GenerateRequest holds the parameters for a generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
}

// GenerateResponse holds the result of a generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response. Calls are
	// not retried and carry no deadline beyond the one on ctx.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available reports whether the backend looks usable without generating.
	Available(ctx context.Context) bool
}

// NewClient builds the client for cfg.Provider.
func NewClient(cfg LLMConfig, observer Observer) (LLMClient, error) {
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiClient(cfg, observer)
	case ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// callParams resolves the effective per-call settings for req.
func callParams(cfg LLMConfig, req GenerateRequest) TaskConfig {
	tc := cfg.Tasks[req.Task]
	if req.Temperature != nil {
		tc.Temperature = *req.Temperature
	}
	return tc
}

// finishCall reports a completed call to the observer.
func finishCall(observer Observer, cfg LLMConfig, task TaskType, start time.Time, err error) int64 {
	latency := time.Since(start).Milliseconds()
	observer.OnCallComplete(LLMCallEvent{
		Task:      task,
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		LatencyMs: latency,
		Success:   err == nil,
		ErrorCode: errorCode(err),
		Err:       err,
	})
	return latency
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return "MISSING_CREDENTIAL"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "CANCELLED"
	case errors.Is(err, ErrServiceUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrServiceError):
		return "SERVICE_ERROR"
	default:
		return "UNKNOWN"
	}
}

// classify maps a transport error onto the package sentinels.
func classify(ctx context.Context, err error) error {
	switch {
	case ctx.Err() != nil:
		return ctx.Err()
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrServiceError, err)
	}
}
