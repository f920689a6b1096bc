// ABOUTME: Repository domain model represents a GitHub repository with its metadata
// ABOUTME: Provides username validation matching GitHub account name rules

package domain

import (
	"regexp"
	"time"

	coreerrors "weightless-api/core/errors"
)

// usernameRegex matches valid GitHub usernames: 1-39 characters,
// alphanumeric with hyphens allowed, but not at the start or end.
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,37}[A-Za-z0-9])?$`)

// Repository represents a GitHub repository enriched with its language list.
// Instances are immutable once constructed.
type Repository struct {
	// Name is the repository name
	Name string `json:"name"`

	// FullName is the owner-qualified name (owner/repo)
	FullName string `json:"full_name"`

	// Description is the repository description, empty when unset upstream
	Description string `json:"description,omitempty"`

	// URL is the repository's HTML URL
	URL string `json:"html_url"`

	// Languages lists the programming languages used, in the order the
	// upstream language payload reports them
	Languages []string `json:"languages"`

	// UpdatedAt is the last update timestamp
	UpdatedAt time.Time `json:"updated_at"`

	// CreatedAt is the creation timestamp
	CreatedAt time.Time `json:"created_at"`

	// PushedAt is the last push timestamp, nil when the repository has
	// never been pushed to
	PushedAt *time.Time `json:"pushed_at,omitempty"`

	// Stars is the stargazer count
	Stars int `json:"stargazers_count"`

	// Forks is the fork count
	Forks int `json:"forks_count"`

	// OpenIssues is the open issue count
	OpenIssues int `json:"open_issues_count"`

	// IsPrivate indicates whether the repository is private
	IsPrivate bool `json:"is_private"`

	// IsFork indicates whether the repository is a fork
	IsFork bool `json:"is_fork"`
}

// ValidateUsername checks that username is a well-formed GitHub account
// name. Returns a ValidationError describing the constraint on failure.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return &coreerrors.ValidationError{
			Field:   "username",
			Message: "must be 1-39 characters, alphanumeric with hyphens allowed, but not at start/end",
		}
	}
	return nil
}
