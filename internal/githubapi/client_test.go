package githubapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRecentRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Equal(t, "created", r.URL.Query().Get("sort"))
		assert.Equal(t, "desc", r.URL.Query().Get("direction"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "hello-world", "html_url": "https://github.com/octocat/hello-world", "stargazers_count": 80},
			{"id": 2, "name": "spoon-knife", "html_url": "https://github.com/octocat/spoon-knife", "language": "HTML"}
		]`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL, "")
	repos, err := client.ListRecentRepos(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "hello-world", repos[0].Name)
	assert.Equal(t, 80, repos[0].Stargazers)
	assert.Equal(t, "HTML", repos[1].Language)
}

func TestListRecentRepos_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gh-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL, "gh-token")
	_, err := client.ListRecentRepos(context.Background(), "octocat")
	require.NoError(t, err)
}

func TestListRecentRepos_UnknownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL, "")
	_, err := client.ListRecentRepos(context.Background(), "no-such-user")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestListRecentRepos_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL, "")
	_, err := client.ListRecentRepos(context.Background(), "octocat")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProfileNotFound)
}
