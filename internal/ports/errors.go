package ports

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by a provider client whose API key is missing.
var ErrNotConfigured = errors.New("not configured")

// ProviderError is a non-success response from a third-party API.
// Delivery passes StatusCode and Body through to the caller untouched.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s api error (status %d): %s", e.Provider, e.StatusCode, e.Body)
}

// NotConfigured builds the configuration error for a provider.
func NotConfigured(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotConfigured)
}
