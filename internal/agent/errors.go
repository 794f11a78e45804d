package agent

import "errors"

// ErrGenerationUnavailable indicates the external language-model call
// failed (timeout, rate limit, transport error). The agent retries once
// with backoff before propagating it; callers check with errors.Is().
var ErrGenerationUnavailable = errors.New("generation unavailable")
