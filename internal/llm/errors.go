package llm

import "errors"

var (
	// ErrMissingCredential indicates no API key was configured for a provider
	// that needs one. It is returned before any network access.
	ErrMissingCredential = errors.New("generation service credential is not configured")

	// ErrServiceUnavailable indicates the generation service could not be reached.
	ErrServiceUnavailable = errors.New("generation service unavailable")

	// ErrServiceError indicates the generation service answered with a failure.
	ErrServiceError = errors.New("generation service error")

	// ErrUnknownProvider indicates a provider name with no client implementation.
	ErrUnknownProvider = errors.New("unknown generation provider")
)
