package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*GitHubClient, func()) {
	srv := httptest.NewServer(handler)

	client := NewGitHubClient("test-token")
	client.baseURL = srv.URL
	client.http.RetryMax = 0

	return client, srv.Close
}

func TestNewGitHubClient(t *testing.T) {
	client := NewGitHubClient("ghp_token")

	assert.Equal(t, "ghp_token", client.token)
	assert.Equal(t, apiBase, client.baseURL)
	assert.NotNil(t, client.http)
}

func TestFetchUserRepos(t *testing.T) {
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"name": "nebula-core",
				"description": "Distributed systems framework.",
				"language": "Rust",
				"stargazers_count": 1200,
				"forks_count": 150,
				"topics": ["systems", "distributed"],
				"updated_at": "2025-01-30T00:00:00Z",
				"fork": false,
				"size": 45000
			},
			{
				"name": "dotfiles",
				"language": "Lua",
				"fork": true,
				"updated_at": "2024-05-01T12:00:00Z"
			}
		]`))
	})
	defer cleanup()

	records, err := client.FetchUserRepos(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "nebula-core", records[0].Name)
	assert.Equal(t, "Rust", records[0].Language)
	assert.Equal(t, 1200, records[0].Stars)
	assert.Equal(t, 150, records[0].Forks)
	assert.Equal(t, []string{"systems", "distributed"}, records[0].Topics)
	assert.False(t, records[0].IsFork)
	assert.Equal(t, 45000, records[0].SizeKB)

	assert.Equal(t, "dotfiles", records[1].Name)
	assert.True(t, records[1].IsFork)
	assert.Zero(t, records[1].Stars)
}

func TestFetchUserReposBadShape(t *testing.T) {
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "Not Found"}`))
	})
	defer cleanup()

	_, err := client.FetchUserRepos(context.Background(), "octocat")
	assert.Error(t, err)
}

func TestFetchUserReposAPIError(t *testing.T) {
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Not Found"}`))
	})
	defer cleanup()

	_, err := client.FetchUserRepos(context.Background(), "nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetchRepo(t *testing.T) {
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/nebula-core", r.URL.Path)
		w.Write([]byte(`{
			"name": "nebula-core",
			"language": "Rust",
			"stargazers_count": 1200,
			"updated_at": "2025-01-30T00:00:00Z"
		}`))
	})
	defer cleanup()

	record, err := client.FetchRepo(context.Background(), "octocat", "nebula-core")
	require.NoError(t, err)
	assert.Equal(t, "nebula-core", record.Name)
	assert.Equal(t, 1200, record.Stars)
}

func TestFetchFileList(t *testing.T) {
	client, cleanup := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/nebula-core/contents", r.URL.Path)
		w.Write([]byte(`[
			{"name": "Cargo.toml", "type": "file"},
			{"name": "src", "type": "dir"},
			{"name": "README.md", "type": "file"}
		]`))
	})
	defer cleanup()

	files, err := client.FetchFileList(context.Background(), "octocat", "nebula-core")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cargo.toml", "README.md"}, files)
}
