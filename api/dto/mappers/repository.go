// ABOUTME: Mappers convert domain models to response DTOs
// ABOUTME: Keeps the HTTP representation decoupled from core types

package mappers

import (
	"weightless-api/api/dto/responses"
	"weightless-api/core/domain"
)

// ToRepositoryResponse converts a domain repository to its response DTO
func ToRepositoryResponse(repo domain.Repository) responses.RepositoryResponse {
	languages := repo.Languages
	if languages == nil {
		languages = []string{}
	}

	return responses.RepositoryResponse{
		Name:            repo.Name,
		FullName:        repo.FullName,
		Description:     repo.Description,
		HTMLURL:         repo.URL,
		Languages:       languages,
		UpdatedAt:       repo.UpdatedAt,
		CreatedAt:       repo.CreatedAt,
		PushedAt:        repo.PushedAt,
		StargazersCount: repo.Stars,
		ForksCount:      repo.Forks,
		OpenIssuesCount: repo.OpenIssues,
		IsPrivate:       repo.IsPrivate,
		IsFork:          repo.IsFork,
	}
}

// ToRepositoryResponses converts a domain repository slice, preserving order
func ToRepositoryResponses(repos []domain.Repository) []responses.RepositoryResponse {
	result := make([]responses.RepositoryResponse, 0, len(repos))
	for _, repo := range repos {
		result = append(result, ToRepositoryResponse(repo))
	}
	return result
}
