// ABOUTME: Retrying request executor for GitHub API calls
// ABOUTME: Classifies upstream failures and applies bounded exponential backoff

package github

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	coreerrors "weightless-api/core/errors"
	"weightless-api/core/interfaces"
)

const apiName = "github"

// Executor issues a single logical HTTP GET against the GitHub API with
// bounded exponential-backoff retry. It knows nothing about caching or
// aggregation; callers own those concerns.
type Executor struct {
	client     interfaces.HTTPClient
	logger     interfaces.Logger
	headers    map[string]string
	maxRetries int

	// sleep is the backoff delay function, replaceable in tests
	sleep func(ctx context.Context, d time.Duration) error
}

// NewExecutor creates an executor that authenticates with the given token
// and retries up to maxRetries times beyond the initial attempt.
func NewExecutor(client interfaces.HTTPClient, logger interfaces.Logger, token string, maxRetries int) *Executor {
	return &Executor{
		client: client,
		logger: logger,
		headers: map[string]string{
			"Authorization": "Bearer " + token,
			"Accept":        "application/vnd.github+json",
		},
		maxRetries: maxRetries,
		sleep:      sleepContext,
	}
}

// Execute performs a GET against url, retrying on rate limiting, transport
// timeouts and server errors, and returns the response body on success.
// Failures surface as the typed errors in core/errors.
func (e *Executor) Execute(ctx context.Context, url string) ([]byte, error) {
	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		e.logDebug("Making GitHub API request", map[string]interface{}{
			"url":          url,
			"attempt":      attempt + 1,
			"max_attempts": e.maxRetries + 1,
		})

		resp, err := e.client.Get(ctx, url, e.headers)
		if err != nil {
			if !isTimeout(err) {
				return nil, err
			}
			if attempt < e.maxRetries {
				if err := e.backoff(ctx, attempt, "Request timeout, retrying"); err != nil {
					return nil, err
				}
				continue
			}
			e.logError("GitHub API request timed out after multiple attempts", map[string]interface{}{
				"url": url,
			})
			return nil, &coreerrors.TimeoutError{URL: url}
		}

		status := resp.StatusCode()

		// Rate limit classification runs before generic status handling and
		// keys on the header value being exactly "0", not the 403 alone.
		if status == http.StatusForbidden && resp.Header("X-RateLimit-Remaining") == "0" {
			resp.Body().Close()
			if attempt < e.maxRetries {
				if err := e.backoff(ctx, attempt, "Rate limited, retrying"); err != nil {
					return nil, err
				}
				continue
			}
			resetTime := resp.Header("X-RateLimit-Reset")
			if resetTime == "" {
				resetTime = "unknown"
			}
			e.logError("GitHub API rate limit exceeded", map[string]interface{}{
				"reset_time": resetTime,
			})
			return nil, &coreerrors.RateLimitError{ResetTime: resetTime}
		}

		if status == http.StatusNotFound {
			resp.Body().Close()
			return nil, &coreerrors.NotFoundError{Resource: "github resource", ID: url}
		}

		if status >= 500 {
			resp.Body().Close()
			if attempt < e.maxRetries {
				if err := e.backoff(ctx, attempt, "Server error, retrying"); err != nil {
					return nil, err
				}
				continue
			}
			return nil, &coreerrors.ExternalAPIError{StatusCode: status, API: apiName}
		}

		if status < 200 || status >= 300 {
			resp.Body().Close()
			return nil, &coreerrors.ExternalAPIError{StatusCode: status, API: apiName}
		}

		body, err := io.ReadAll(resp.Body())
		resp.Body().Close()
		if err != nil {
			return nil, coreerrors.WrapError(err, "reading response body")
		}

		e.logDebug("GitHub API request successful", map[string]interface{}{
			"status_code": status,
		})
		return body, nil
	}

	// Unreachable: every branch above either returns or continues within
	// the attempt budget.
	return nil, &coreerrors.RetriesExhaustedError{Attempts: e.maxRetries + 1}
}

// backoff sleeps for the exponential delay of the given attempt: 1s, 2s, 4s, ...
func (e *Executor) backoff(ctx context.Context, attempt int, msg string) error {
	wait := backoffDelay(attempt)
	e.logWarn(msg, map[string]interface{}{
		"wait_time":    wait.String(),
		"attempt":      attempt + 1,
		"max_attempts": e.maxRetries + 1,
	})
	return e.sleep(ctx, wait)
}

// backoffDelay returns the wall-clock delay before retrying after the given
// attempt. The sequence doubles from a 1 second base, with no jitter.
func backoffDelay(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * time.Second
}

// sleepContext blocks for d or until ctx is done, whichever comes first.
// Only the calling goroutine waits; unrelated requests are unaffected.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// isTimeout reports whether err represents a transport timeout.
func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func (e *Executor) logDebug(msg string, fields map[string]interface{}) {
	if e.logger != nil {
		e.logger.Debug(msg, fields)
	}
}

func (e *Executor) logWarn(msg string, fields map[string]interface{}) {
	if e.logger != nil {
		e.logger.Warn(msg, fields)
	}
}

func (e *Executor) logError(msg string, fields map[string]interface{}) {
	if e.logger != nil {
		e.logger.Error(msg, fields)
	}
}
