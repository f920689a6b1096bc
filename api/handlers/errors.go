// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts core errors to appropriate HTTP responses

package handlers

import (
	goerrors "errors"

	"weightless-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts core errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound("User not found")
	}

	if errors.IsRateLimit(err) {
		var rateLimitErr *errors.RateLimitError
		goerrors.As(err, &rateLimitErr)
		return huma.Error429TooManyRequests("GitHub API rate limit exceeded. Reset time: " + rateLimitErr.ResetTime)
	}

	if errors.IsTimeout(err) {
		return huma.Error504GatewayTimeout("GitHub API request timed out after multiple attempts")
	}

	if errors.IsExternalAPI(err) {
		var apiErr *errors.ExternalAPIError
		goerrors.As(err, &apiErr)
		switch {
		case apiErr.StatusCode >= 500:
			return huma.Error502BadGateway("GitHub API error", err)
		case apiErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by GitHub API")
		default:
			return huma.Error502BadGateway("Unexpected GitHub API response", err)
		}
	}

	// RetriesExhausted and anything unclassified
	return huma.Error500InternalServerError("Internal server error", err)
}
