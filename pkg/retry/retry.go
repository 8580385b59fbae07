package retry

import (
	"context"
	"log"
	"strings"
	"time"
)

// Rate-limit retry for LLM/tool calls. Providers surface throttling as
// message text rather than typed errors, so detection is by substring.
// Only rate-limit errors are retried; everything else returns immediately.

type Config struct {
	MaxRetries    int
	InitialDelay  time.Duration
	BackoffFactor float64
	MaxDelay      time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:    3,
		InitialDelay:  2 * time.Second,
		BackoffFactor: 2.0,
		MaxDelay:      60 * time.Second,
	}
}

var rateLimitMarkers = []string{
	"429",
	"rate limit",
	"request limit exceeded",
	"too many requests",
}

func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, m := range rateLimitMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// OnRateLimit runs fn, retrying with capped exponential backoff while it
// fails with a rate-limit error. Context cancellation cuts the wait short.
func OnRateLimit(ctx context.Context, cfg Config, fn func() error) error {
	delay := cfg.InitialDelay
	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !IsRateLimit(lastErr) || attempt >= cfg.MaxRetries {
			return lastErr
		}
		wait := delay
		if wait > cfg.MaxDelay {
			wait = cfg.MaxDelay
		}
		log.Printf("[retry] rate limited (attempt %d/%d), retrying in %s", attempt+1, cfg.MaxRetries+1, wait)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return lastErr
		}
		delay = time.Duration(float64(delay) * cfg.BackoffFactor)
	}
	return lastErr
}
