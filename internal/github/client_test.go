package github_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manulapulga/pump-design/internal/github"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		hostname string
		owner    string
		repo     string
		wantErr  bool
	}{
		{
			name:     "ssh",
			url:      "git@github.com:owner/repo.git",
			hostname: "github.com",
			owner:    "owner",
			repo:     "repo",
		},
		{
			name:     "ssh without suffix",
			url:      "git@github.com:owner/repo",
			hostname: "github.com",
			owner:    "owner",
			repo:     "repo",
		},
		{
			name:     "ssh with slash separator",
			url:      "git@github.company.com/owner/repo.git",
			hostname: "github.company.com",
			owner:    "owner",
			repo:     "repo",
		},
		{
			name:     "https",
			url:      "https://github.com/owner/repo.git",
			hostname: "github.com",
			owner:    "owner",
			repo:     "repo",
		},
		{
			name:     "https enterprise",
			url:      "https://github.company.com/owner/repo",
			hostname: "github.company.com",
			owner:    "owner",
			repo:     "repo",
		},
		{
			name:     "surrounding whitespace",
			url:      "  https://github.com/owner/repo.git\n",
			hostname: "github.com",
			owner:    "owner",
			repo:     "repo",
		},
		{
			name:    "missing path",
			url:     "https://github.com",
			wantErr: true,
		},
		{
			name:    "ssh missing repo",
			url:     "git@github.com:owner",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := github.ParseRemoteURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.hostname, info.Hostname)
			require.Equal(t, tt.owner, info.Owner)
			require.Equal(t, tt.repo, info.Repo)
		})
	}
}

func TestGetToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "gh-test-token")
	token, err := github.GetToken()
	require.NoError(t, err)
	require.Equal(t, "gh-test-token", token)

	t.Setenv("GITHUB_TOKEN", "")
	_, err = github.GetToken()
	require.Error(t, err)
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	client, err := github.NewClient(ctx, "github.com", "token")
	require.NoError(t, err)
	require.Equal(t, "https://api.github.com/", client.BaseURL.String())

	client, err = github.NewClient(ctx, "github.company.com", "token")
	require.NoError(t, err)
	require.Equal(t, "https://github.company.com/api/v3/", client.BaseURL.String())
	require.Equal(t, "https://github.company.com/api/uploads/", client.UploadURL.String())
}
