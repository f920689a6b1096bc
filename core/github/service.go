// ABOUTME: GitHub service aggregates repository listings with language lookups
// ABOUTME: Provides caching and concurrent per-repository language fan-out

package github

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"weightless-api/core/domain"
	coreerrors "weightless-api/core/errors"
	"weightless-api/core/interfaces"
)

const apiBaseURL = "https://api.github.com"

// listingPageSize is the fixed number of most-recently-updated repositories
// requested from the listing endpoint.
const listingPageSize = 3

// Config carries the upstream access settings for the service.
type Config struct {
	// Token is the GitHub API bearer token
	Token string

	// MaxRetries is the retry budget per upstream call beyond the first attempt
	MaxRetries int

	// ReposTTL is the cache lifetime for aggregated repository lists
	ReposTTL time.Duration

	// LanguagesTTL is the cache lifetime for per-repository language lists
	LanguagesTTL time.Duration
}

// Service is the single entry point of the core: it checks the cache,
// fetches the repository listing through the executor, fans out one language
// lookup per repository, joins the results and caches the final list.
type Service struct {
	deps         interfaces.Dependencies
	executor     *Executor
	reposTTL     time.Duration
	languagesTTL time.Duration
}

// NewService creates a new GitHub service instance
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	return &Service{
		deps:         deps,
		executor:     NewExecutor(deps.HTTPClient, deps.Logger, cfg.Token, cfg.MaxRetries),
		reposTTL:     cfg.ReposTTL,
		languagesTTL: cfg.LanguagesTTL,
	}
}

// repoListing mirrors the fields consumed from a GitHub repository object.
type repoListing struct {
	Name            string     `json:"name"`
	FullName        string     `json:"full_name"`
	Description     string     `json:"description"`
	HTMLURL         string     `json:"html_url"`
	LanguagesURL    string     `json:"languages_url"`
	UpdatedAt       time.Time  `json:"updated_at"`
	CreatedAt       time.Time  `json:"created_at"`
	PushedAt        *time.Time `json:"pushed_at"`
	StargazersCount int        `json:"stargazers_count"`
	ForksCount      int        `json:"forks_count"`
	OpenIssuesCount int        `json:"open_issues_count"`
	Private         bool       `json:"private"`
	Fork            bool       `json:"fork"`
}

// GetUserRepositories returns the user's most recently updated repositories,
// each with its ordered language list. Only the listing call's failure
// propagates; language lookups degrade per-repository to an empty list.
func (s *Service) GetUserRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	if err := domain.ValidateUsername(username); err != nil {
		return nil, err
	}

	cacheKey := "repos:" + username
	if cached := s.getCachedRepositories(ctx, cacheKey); cached != nil {
		s.logInfo("Returning cached repositories", map[string]interface{}{
			"username": username,
		})
		return cached, nil
	}

	s.logInfo("Fetching repositories from GitHub", map[string]interface{}{
		"username": username,
	})

	listURL := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=%d", apiBaseURL, username, listingPageSize)
	body, err := s.executor.Execute(ctx, listURL)
	if err != nil {
		return nil, err
	}

	var listings []repoListing
	if err := json.Unmarshal(body, &listings); err != nil {
		return nil, coreerrors.WrapError(err, "decoding repository listing")
	}

	languages := s.resolveLanguages(ctx, listings)

	repos := make([]domain.Repository, 0, len(listings))
	for i, listing := range listings {
		repos = append(repos, domain.Repository{
			Name:        listing.Name,
			FullName:    listing.FullName,
			Description: listing.Description,
			URL:         listing.HTMLURL,
			Languages:   languages[i],
			UpdatedAt:   listing.UpdatedAt,
			CreatedAt:   listing.CreatedAt,
			PushedAt:    listing.PushedAt,
			Stars:       listing.StargazersCount,
			Forks:       listing.ForksCount,
			OpenIssues:  listing.OpenIssuesCount,
			IsPrivate:   listing.Private,
			IsFork:      listing.Fork,
		})
	}

	s.cacheRepositories(ctx, cacheKey, repos)

	s.logInfo("Successfully fetched and cached repositories", map[string]interface{}{
		"username":   username,
		"repo_count": len(repos),
	})

	return repos, nil
}

// resolveLanguages fetches the language list of every repository
// concurrently and joins on all of them before returning. Results are
// indexed by listing position so output order matches the listing order.
func (s *Service) resolveLanguages(ctx context.Context, listings []repoListing) [][]string {
	results := make([][]string, len(listings))

	var wg sync.WaitGroup
	for i, listing := range listings {
		wg.Add(1)
		go func(idx int, l repoListing) {
			defer wg.Done()
			results[idx] = s.fetchRepositoryLanguages(ctx, l)
		}(i, listing)
	}
	wg.Wait()

	return results
}

// fetchRepositoryLanguages resolves one repository's language list from
// cache or upstream. Any failure degrades to an empty list; one
// repository's failure never affects its siblings.
func (s *Service) fetchRepositoryLanguages(ctx context.Context, listing repoListing) []string {
	cacheKey := "languages:" + listing.LanguagesURL

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var languages []string
			if err := json.Unmarshal(data, &languages); err == nil {
				s.logDebug("Language cache hit", map[string]interface{}{
					"repo_name": listing.Name,
				})
				return languages
			}
		}
	}

	body, err := s.executor.Execute(ctx, listing.LanguagesURL)
	if err != nil {
		s.logWarn("Failed to fetch languages for repository", map[string]interface{}{
			"repo_name": listing.Name,
			"error":     err.Error(),
		})
		return []string{}
	}

	languages, err := parseLanguageKeys(body)
	if err != nil {
		s.logWarn("Failed to parse language payload", map[string]interface{}{
			"repo_name": listing.Name,
			"error":     err.Error(),
		})
		return []string{}
	}

	if s.deps.Cache != nil {
		if data, err := json.Marshal(languages); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, s.languagesTTL)
		}
	}

	return languages
}

// getCachedRepositories returns the cached repository list for key, or nil
// on a miss or when no cache is configured.
func (s *Service) getCachedRepositories(ctx context.Context, key string) []domain.Repository {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var repos []domain.Repository
	if err := json.Unmarshal(data, &repos); err != nil {
		return nil
	}

	return repos
}

// cacheRepositories stores the joined repository list. Cache write failures
// are ignored; the next call simply refetches.
func (s *Service) cacheRepositories(ctx context.Context, key string, repos []domain.Repository) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(repos)
	if err != nil {
		return
	}

	_ = s.deps.Cache.Set(ctx, key, data, s.reposTTL)
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
