package github

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"weightless-api/core/domain"
	coreerrors "weightless-api/core/errors"
	"weightless-api/core/interfaces"
)

const listingURL = apiBaseURL + "/users/alice/repos?sort=updated&per_page=3"

func serviceConfig() Config {
	return Config{
		Token:        "token",
		MaxRetries:   3,
		ReposTTL:     5 * time.Minute,
		LanguagesTTL: 10 * time.Minute,
	}
}

// listingBody builds a listing payload with n repositories named repo-1..repo-n.
func listingBody(n int) string {
	repos := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		repos = append(repos, fmt.Sprintf(`{
			"name": "repo-%d",
			"full_name": "alice/repo-%d",
			"description": "test repository %d",
			"html_url": "https://github.com/alice/repo-%d",
			"languages_url": "https://api.github.com/repos/alice/repo-%d/languages",
			"updated_at": "2024-05-0%dT12:00:00Z",
			"created_at": "2023-01-01T00:00:00Z",
			"pushed_at": "2024-05-0%dT11:00:00Z",
			"stargazers_count": %d,
			"forks_count": 1,
			"open_issues_count": 0,
			"private": false,
			"fork": false
		}`, i, i, i, i, i, i, i, i*10))
	}
	return "[" + strings.Join(repos, ",") + "]"
}

func languagesURLFor(repo int) string {
	return fmt.Sprintf("https://api.github.com/repos/alice/repo-%d/languages", repo)
}

func newTestService(client *mockHTTPClient, cache interfaces.Cache) *Service {
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: client,
		Logger:     &mockLogger{},
	}
	service := NewService(deps, serviceConfig())
	recordSleeps(service.executor)
	return service
}

func TestNewService_StoresDependencies(t *testing.T) {
	client := &mockHTTPClient{}
	deps := interfaces.Dependencies{
		Cache:      newMockCache(),
		HTTPClient: client,
		Logger:     &mockLogger{},
	}

	service := NewService(deps, serviceConfig())

	if service == nil {
		t.Fatal("NewService returned nil")
	}
	if service.deps.HTTPClient != client {
		t.Error("NewService did not store HTTPClient dependency")
	}
	if service.executor == nil {
		t.Error("NewService did not construct an executor")
	}
}

func TestGetUserRepositories_InvalidUsername(t *testing.T) {
	client := &mockHTTPClient{}
	service := newTestService(client, newMockCache())

	_, err := service.GetUserRepositories(context.Background(), "-alice")

	if !coreerrors.IsValidation(err) {
		t.Fatalf("GetUserRepositories error = %v, want ValidationError", err)
	}
	if client.callCount() != 0 {
		t.Errorf("GetUserRepositories made %d calls, want 0", client.callCount())
	}
}

func TestGetUserRepositories_FetchesAndJoins(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			switch url {
			case listingURL:
				return &mockResponse{statusCode: 200, body: listingBody(2)}, nil
			case languagesURLFor(1):
				return &mockResponse{statusCode: 200, body: `{"Go": 500, "Rust": 100}`}, nil
			case languagesURLFor(2):
				return &mockResponse{statusCode: 200, body: `{"Python": 300}`}, nil
			}
			t.Errorf("unexpected URL: %s", url)
			return &mockResponse{statusCode: 500}, nil
		},
	}
	service := newTestService(client, newMockCache())

	repos, err := service.GetUserRepositories(context.Background(), "alice")

	if err != nil {
		t.Fatalf("GetUserRepositories returned error: %v", err)
	}
	if len(repos) != 2 {
		t.Fatalf("GetUserRepositories returned %d repos, want 2", len(repos))
	}
	if repos[0].Name != "repo-1" || repos[1].Name != "repo-2" {
		t.Errorf("output order = [%s, %s], want listing order [repo-1, repo-2]", repos[0].Name, repos[1].Name)
	}
	if len(repos[0].Languages) != 2 || repos[0].Languages[0] != "Go" || repos[0].Languages[1] != "Rust" {
		t.Errorf("repo-1 languages = %v, want [Go Rust]", repos[0].Languages)
	}
	if len(repos[1].Languages) != 1 || repos[1].Languages[0] != "Python" {
		t.Errorf("repo-2 languages = %v, want [Python]", repos[1].Languages)
	}
	if repos[0].FullName != "alice/repo-1" {
		t.Errorf("FullName = %s, want alice/repo-1", repos[0].FullName)
	}
	if repos[0].Stars != 10 {
		t.Errorf("Stars = %d, want 10", repos[0].Stars)
	}
	if repos[0].PushedAt == nil {
		t.Error("PushedAt should be set")
	}
}

func TestGetUserRepositories_PartialFailureIsolation(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			switch url {
			case listingURL:
				return &mockResponse{statusCode: 200, body: listingBody(2)}, nil
			case languagesURLFor(1):
				return &mockResponse{statusCode: 200, body: `{"Go": 500}`}, nil
			case languagesURLFor(2):
				return &mockResponse{statusCode: 500}, nil
			}
			return &mockResponse{statusCode: 500}, nil
		},
	}
	service := newTestService(client, newMockCache())

	repos, err := service.GetUserRepositories(context.Background(), "alice")

	if err != nil {
		t.Fatalf("GetUserRepositories returned error: %v", err)
	}
	if len(repos) != 2 {
		t.Fatalf("GetUserRepositories returned %d repos, want 2", len(repos))
	}
	if len(repos[0].Languages) != 1 || repos[0].Languages[0] != "Go" {
		t.Errorf("repo-1 languages = %v, want [Go]", repos[0].Languages)
	}
	if len(repos[1].Languages) != 0 {
		t.Errorf("repo-2 languages = %v, want empty after degraded fetch", repos[1].Languages)
	}
}

func TestGetUserRepositories_ListingFailurePropagates(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 404}, nil
		},
	}
	service := newTestService(client, newMockCache())

	repos, err := service.GetUserRepositories(context.Background(), "alice")

	if !coreerrors.IsNotFound(err) {
		t.Fatalf("GetUserRepositories error = %v, want NotFoundError", err)
	}
	if repos != nil {
		t.Error("GetUserRepositories should return nil repos on listing failure")
	}
	if client.callCount() != 1 {
		t.Errorf("GetUserRepositories made %d calls, want 1 (no language fan-out)", client.callCount())
	}
}

func TestGetUserRepositories_CacheHitSkipsUpstream(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			switch {
			case url == listingURL:
				return &mockResponse{statusCode: 200, body: listingBody(1)}, nil
			default:
				return &mockResponse{statusCode: 200, body: `{"Go": 500}`}, nil
			}
		},
	}
	service := newTestService(client, newMockCache())

	first, err := service.GetUserRepositories(context.Background(), "alice")
	if err != nil {
		t.Fatalf("first call returned error: %v", err)
	}
	callsAfterFirst := client.callCount()

	second, err := service.GetUserRepositories(context.Background(), "alice")
	if err != nil {
		t.Fatalf("second call returned error: %v", err)
	}

	if client.callCount() != callsAfterFirst {
		t.Errorf("second call issued %d extra upstream calls, want 0", client.callCount()-callsAfterFirst)
	}
	if len(second) != len(first) || second[0].Name != first[0].Name {
		t.Error("cached result should match the first result")
	}
	if len(second[0].Languages) != 1 || second[0].Languages[0] != "Go" {
		t.Errorf("cached languages = %v, want [Go]", second[0].Languages)
	}
}

func TestGetUserRepositories_CachesUnderExpectedKeys(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			if url == listingURL {
				return &mockResponse{statusCode: 200, body: listingBody(1)}, nil
			}
			return &mockResponse{statusCode: 200, body: `{"Go": 500}`}, nil
		},
	}
	cache := newMockCache()
	service := newTestService(client, cache)

	_, err := service.GetUserRepositories(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetUserRepositories returned error: %v", err)
	}

	if _, ok := cache.entries["repos:alice"]; !ok {
		t.Error("aggregate result not cached under repos:alice")
	}
	languagesKey := "languages:" + languagesURLFor(1)
	if _, ok := cache.entries[languagesKey]; !ok {
		t.Errorf("language list not cached under %s", languagesKey)
	}
	if cache.ttls["repos:alice"] != 5*time.Minute {
		t.Errorf("repos TTL = %v, want 5m", cache.ttls["repos:alice"])
	}
	if cache.ttls[languagesKey] != 10*time.Minute {
		t.Errorf("languages TTL = %v, want 10m", cache.ttls[languagesKey])
	}
}

func TestGetUserRepositories_LanguageCacheHit(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			if url == listingURL {
				return &mockResponse{statusCode: 200, body: listingBody(1)}, nil
			}
			t.Errorf("language endpoint should not be called on cache hit: %s", url)
			return &mockResponse{statusCode: 500}, nil
		},
	}
	cache := newMockCache()
	cached, _ := json.Marshal([]string{"Haskell"})
	cache.entries["languages:"+languagesURLFor(1)] = cached
	service := newTestService(client, cache)

	repos, err := service.GetUserRepositories(context.Background(), "alice")

	if err != nil {
		t.Fatalf("GetUserRepositories returned error: %v", err)
	}
	if len(repos[0].Languages) != 1 || repos[0].Languages[0] != "Haskell" {
		t.Errorf("languages = %v, want cached [Haskell]", repos[0].Languages)
	}
	if client.callsFor(languagesURLFor(1)) != 0 {
		t.Error("language endpoint was called despite cache hit")
	}
}

func TestGetUserRepositories_EmptyListing(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `[]`}, nil
		},
	}
	service := newTestService(client, newMockCache())

	repos, err := service.GetUserRepositories(context.Background(), "alice")

	if err != nil {
		t.Fatalf("GetUserRepositories returned error: %v", err)
	}
	if len(repos) != 0 {
		t.Errorf("GetUserRepositories returned %d repos, want 0", len(repos))
	}
}

func TestGetUserRepositories_MalformedListing(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `{"not": "a list"}`}, nil
		},
	}
	service := newTestService(client, newMockCache())

	_, err := service.GetUserRepositories(context.Background(), "alice")

	if err == nil {
		t.Error("GetUserRepositories should return error for malformed listing payload")
	}
}

func TestGetUserRepositories_NoCacheConfigured(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			if url == listingURL {
				return &mockResponse{statusCode: 200, body: listingBody(1)}, nil
			}
			return &mockResponse{statusCode: 200, body: `{"Go": 500}`}, nil
		},
	}
	service := newTestService(client, nil)

	repos, err := service.GetUserRepositories(context.Background(), "alice")

	if err != nil {
		t.Fatalf("GetUserRepositories returned error: %v", err)
	}
	if len(repos) != 1 {
		t.Errorf("GetUserRepositories returned %d repos, want 1", len(repos))
	}
}

func TestGetUserRepositories_CachedSliceRoundTrips(t *testing.T) {
	cache := newMockCache()
	want := []domain.Repository{{
		Name:      "cached-repo",
		FullName:  "alice/cached-repo",
		URL:       "https://github.com/alice/cached-repo",
		Languages: []string{"Go"},
		UpdatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
	data, _ := json.Marshal(want)
	cache.entries["repos:alice"] = data

	client := &mockHTTPClient{}
	service := newTestService(client, cache)

	repos, err := service.GetUserRepositories(context.Background(), "alice")

	if err != nil {
		t.Fatalf("GetUserRepositories returned error: %v", err)
	}
	if client.callCount() != 0 {
		t.Errorf("cache hit should not reach upstream, made %d calls", client.callCount())
	}
	if len(repos) != 1 || repos[0].Name != "cached-repo" {
		t.Errorf("repos = %+v, want cached entry", repos)
	}
	if repos[0].Languages[0] != "Go" {
		t.Errorf("languages = %v, want [Go]", repos[0].Languages)
	}
}
