// ABOUTME: Response DTOs for repository-related API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// RepositoryResponse represents a repository in API responses
type RepositoryResponse struct {
	Name            string     `json:"name" doc:"Repository name"`
	FullName        string     `json:"full_name" doc:"Full repository name (owner/repo)"`
	Description     string     `json:"description,omitempty" doc:"Repository description"`
	HTMLURL         string     `json:"html_url" doc:"Repository HTML URL"`
	Languages       []string   `json:"languages" doc:"Programming languages used, in upstream order"`
	UpdatedAt       time.Time  `json:"updated_at" doc:"Last update timestamp"`
	CreatedAt       time.Time  `json:"created_at" doc:"Creation timestamp"`
	PushedAt        *time.Time `json:"pushed_at,omitempty" doc:"Last push timestamp"`
	StargazersCount int        `json:"stargazers_count" doc:"Number of stars"`
	ForksCount      int        `json:"forks_count" doc:"Number of forks"`
	OpenIssuesCount int        `json:"open_issues_count" doc:"Number of open issues"`
	IsPrivate       bool       `json:"is_private" doc:"Whether repository is private"`
	IsFork          bool       `json:"is_fork" doc:"Whether repository is a fork"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status    string    `json:"status" doc:"Service status"`
	Timestamp time.Time `json:"timestamp" doc:"Check timestamp"`
	Version   string    `json:"version" doc:"API version"`
}

// APIInfoResponse represents the root endpoint payload
type APIInfoResponse struct {
	Message string `json:"message" doc:"API welcome message"`
	Docs    string `json:"docs" doc:"Documentation URL"`
	Version string `json:"version" doc:"API version"`
}
