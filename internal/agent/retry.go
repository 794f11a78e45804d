package agent

import (
	"strings"
	"time"
)

// RetryConfig configures the retry behavior for generation.
// The policy is deliberately shallow: at most one retry with backoff,
// then propagate.
type RetryConfig struct {
	MaxRetries int           // Retry attempts after the first call
	Backoff    time.Duration // Delay before the retry
}

// DefaultRetryConfig returns the single-retry-with-backoff default.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 1,
		Backoff:    500 * time.Millisecond,
	}
}

// retryablePatterns groups error substrings by failure category.
// Matched case-insensitively against err.Error().
//
// String matching because Genkit and the provider SDKs do not expose
// typed errors for transient failures.
var retryablePatterns = [][]string{
	{"rate limit", "quota exceeded", "429"},      // rate limiting
	{"500", "502", "503", "504", "unavailable"},  // transient server errors
	{"connection reset", "timeout", "temporary"}, // network errors
}

// retryableError reports whether err is transient and worth one retry.
//
// Only the model error's own text decides; the ErrGenerationUnavailable
// wrapper prefix is stripped first so its "unavailable" never matches
// the server-error group.
func retryableError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	msg = strings.TrimPrefix(msg, ErrGenerationUnavailable.Error()+": ")
	for _, group := range retryablePatterns {
		for _, pattern := range group {
			if strings.Contains(msg, pattern) {
				return true
			}
		}
	}
	return false
}
