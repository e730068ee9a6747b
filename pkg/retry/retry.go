// Package retry wraps fallible calls with capped exponential backoff.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Config controls how a call is retried.
type Config struct {
	// MaxAttempts is the total number of tries, the first call included.
	MaxAttempts int
	// InitialDelay is the pause before the second try.
	InitialDelay time.Duration
	// MaxDelay caps the backoff growth.
	MaxDelay time.Duration
	// Multiplier is the growth factor between tries.
	Multiplier float64
	// RetryableErrors restricts retries to errors whose text contains one
	// of these fragments. Empty retries everything.
	RetryableErrors []string
}

// DefaultConfig returns the standard backoff: five tries, 1s doubling up
// to 30s.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:     5,
		InitialDelay:    1 * time.Second,
		MaxDelay:        30 * time.Second,
		Multiplier:      2.0,
		RetryableErrors: []string{},
	}
}

// Do retries fn until it succeeds, a non-retryable error occurs, the
// attempts run out or the context ends.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	_, err := DoWithResult(ctx, cfg, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// DoWithResult is Do for functions that produce a value.
func DoWithResult[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	if cfg.MaxAttempts <= 0 {
		return zero, errors.New("MaxAttempts must be greater than 0")
	}

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !IsRetryableError(err, cfg) || attempt+1 == cfg.MaxAttempts {
			return zero, err
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(addJitter(calculateDelay(attempt, cfg))):
		}
	}
}

// calculateDelay returns the backoff for the given zero-based attempt,
// capped at MaxDelay.
func calculateDelay(attempt int, cfg Config) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	delay := float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(attempt))
	return time.Duration(math.Min(delay, float64(cfg.MaxDelay)))
}

// addJitter spreads a delay by ±10% so parallel clients don't retry in
// lockstep.
func addJitter(delay time.Duration) time.Duration {
	//nolint:gosec // jitter needs no cryptographic randomness
	spread := (rand.Float64()*2 - 1) * 0.1
	return delay + time.Duration(float64(delay)*spread)
}

// IsRetryableError reports whether the error qualifies for another try
// under the config's fragment list.
func IsRetryableError(err error, cfg Config) bool {
	if err == nil {
		return false
	}
	if len(cfg.RetryableErrors) == 0 {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, fragment := range cfg.RetryableErrors {
		if strings.Contains(msg, strings.ToLower(fragment)) {
			return true
		}
	}
	return false
}

// DefaultPostgresRetryableErrors lists the transient failure texts seen
// while a postgres instance is starting or the network flaps.
func DefaultPostgresRetryableErrors() []string {
	return []string{
		"connection refused",
		"connection reset",
		"i/o timeout",
		"dial tcp",
		"too many connections",
		"database system is starting up",
		"network is unreachable",
		"connection timed out",
	}
}

// PostgresConfig tunes the default config for database connection
// establishment at boot.
func PostgresConfig() Config {
	cfg := DefaultConfig()
	cfg.RetryableErrors = DefaultPostgresRetryableErrors()
	return cfg
}
