// Package adapters acquires repository input for the scoring engine. The
// engine itself never performs I/O; callers fetch records here (or use the
// bundled samples) and hand them over.
package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/gitflexhq/gitflex/internal/types"
)

const apiBase = "https://api.github.com"

// GitHubClient fetches repository metadata from the GitHub REST API.
type GitHubClient struct {
	token   string
	baseURL string
	http    *retryablehttp.Client
}

// NewGitHubClient creates a client with retry/backoff defaults. The token is
// optional; unauthenticated requests work within GitHub's anonymous quota.
func NewGitHubClient(token string) *GitHubClient {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.Logger = nil

	return &GitHubClient{
		token:   token,
		baseURL: apiBase,
		http:    client,
	}
}

func (g *GitHubClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read github response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func recordFromJSON(repo gjson.Result) types.RepositoryRecord {
	var topics []string
	for _, t := range repo.Get("topics").Array() {
		topics = append(topics, t.String())
	}

	updatedAt, _ := time.Parse(time.RFC3339, repo.Get("updated_at").String())

	return types.RepositoryRecord{
		Name:        repo.Get("name").String(),
		Description: repo.Get("description").String(),
		Language:    repo.Get("language").String(),
		Stars:       int(repo.Get("stargazers_count").Int()),
		Forks:       int(repo.Get("forks_count").Int()),
		Topics:      topics,
		UpdatedAt:   updatedAt,
		IsFork:      repo.Get("fork").Bool(),
		SizeKB:      int(repo.Get("size").Int()),
	}
}

// FetchUserRepos returns a user's public repositories as normalized records,
// most recently updated first. Commit frequency is not exposed by this
// endpoint and stays zero.
func (g *GitHubClient) FetchUserRepos(ctx context.Context, username string) ([]types.RepositoryRecord, error) {
	url := fmt.Sprintf("%s/users/%s/repos?per_page=100&sort=updated", g.baseURL, username)

	body, err := g.get(ctx, url)
	if err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("unexpected github response shape for %s", username)
	}

	var records []types.RepositoryRecord
	parsed.ForEach(func(_, repo gjson.Result) bool {
		records = append(records, recordFromJSON(repo))
		return true
	})

	return records, nil
}

// FetchRepo returns a single repository as a normalized record.
func (g *GitHubClient) FetchRepo(ctx context.Context, owner, name string) (types.RepositoryRecord, error) {
	url := fmt.Sprintf("%s/repos/%s/%s", g.baseURL, owner, name)

	body, err := g.get(ctx, url)
	if err != nil {
		return types.RepositoryRecord{}, err
	}

	return recordFromJSON(gjson.ParseBytes(body)), nil
}

// FetchFileList returns the filenames at the repository root, which feed the
// archetype file-signature matching.
func (g *GitHubClient) FetchFileList(ctx context.Context, owner, name string) ([]string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/contents", g.baseURL, owner, name)

	body, err := g.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var files []string
	gjson.ParseBytes(body).ForEach(func(_, entry gjson.Result) bool {
		if entry.Get("type").String() == "file" {
			files = append(files, entry.Get("name").String())
		}
		return true
	})

	return files, nil
}
