// ABOUTME: Repository handlers for the Huma API
// ABOUTME: Provides the HTTP endpoint for fetching a user's repositories

package handlers

import (
	"context"
	"net/http"

	"weightless-api/api/dto/mappers"
	"weightless-api/api/dto/responses"
	"weightless-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// GitHubService interface defines the methods needed from the github service
type GitHubService interface {
	GetUserRepositories(ctx context.Context, username string) ([]domain.Repository, error)
}

// ReposHandler handles repository-related HTTP requests
type ReposHandler struct {
	service GitHubService
}

// NewReposHandler creates a new repository handler
func NewReposHandler(service GitHubService) *ReposHandler {
	return &ReposHandler{
		service: service,
	}
}

// RegisterRoutes registers all repository-related routes
func (h *ReposHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getUserRepositories",
		Method:      http.MethodGet,
		Path:        "/github/repos/{username}",
		Summary:     "Get a user's repositories",
		Description: "Fetches the user's 3 most recently updated GitHub repositories with their language lists",
		Tags:        []string{"Repositories"},
	}, h.GetUserRepositories)
}

// GetUserRepositoriesInput defines the input for the GetUserRepositories operation
type GetUserRepositoriesInput struct {
	Username string `path:"username" maxLength:"39" doc:"GitHub username"`
}

// GetUserRepositoriesOutput defines the output for the GetUserRepositories operation
type GetUserRepositoriesOutput struct {
	Body []responses.RepositoryResponse
}

// GetUserRepositories handles the GET /github/repos/{username} endpoint
func (h *ReposHandler) GetUserRepositories(ctx context.Context, input *GetUserRepositoriesInput) (*GetUserRepositoriesOutput, error) {
	if err := domain.ValidateUsername(input.Username); err != nil {
		return nil, toHumaError(err)
	}

	repos, err := h.service.GetUserRepositories(ctx, input.Username)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetUserRepositoriesOutput{
		Body: mappers.ToRepositoryResponses(repos),
	}, nil
}
