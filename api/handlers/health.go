// ABOUTME: Health and root info handlers for the Huma API
// ABOUTME: Provides liveness and API discovery endpoints

package handlers

import (
	"context"
	"net/http"
	"time"

	"weightless-api/api/dto/responses"

	"github.com/danielgtaylor/huma/v2"
)

const apiVersion = "1.0.0"

// HealthHandler handles health and info requests
type HealthHandler struct {
	baseURL string
}

// NewHealthHandler creates a new health handler. baseURL is used to build
// the docs link in the root response.
func NewHealthHandler(baseURL string) *HealthHandler {
	return &HealthHandler{
		baseURL: baseURL,
	}
}

// RegisterRoutes registers the health and root routes
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"System"},
	}, h.HealthCheck)

	huma.Register(api, huma.Operation{
		OperationID: "apiInfo",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "API information",
		Tags:        []string{"System"},
	}, h.APIInfo)
}

// HealthCheckOutput defines the output for the health check operation
type HealthCheckOutput struct {
	Body responses.HealthResponse
}

// HealthCheck handles the GET /health endpoint
func (h *HealthHandler) HealthCheck(ctx context.Context, input *struct{}) (*HealthCheckOutput, error) {
	return &HealthCheckOutput{
		Body: responses.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
			Version:   apiVersion,
		},
	}, nil
}

// APIInfoOutput defines the output for the root operation
type APIInfoOutput struct {
	Body responses.APIInfoResponse
}

// APIInfo handles the GET / endpoint
func (h *HealthHandler) APIInfo(ctx context.Context, input *struct{}) (*APIInfoOutput, error) {
	return &APIInfoOutput{
		Body: responses.APIInfoResponse{
			Message: "Weightless API",
			Docs:    h.baseURL + "/docs",
			Version: apiVersion,
		},
	}, nil
}
