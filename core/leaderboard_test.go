package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/huangsam/shoutout/internal/contract"
	"github.com/huangsam/shoutout/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *contract.Config {
	return &contract.Config{
		Since:    "30 days ago",
		Limit:    2,
		RepoPath: "/test/repo",
		Output:   schema.TextOut,
	}
}

// TestBuildLeaderboardScenario mirrors the documented scenario: Alice with 4
// commits, Bob with 5, limit 2.
func TestBuildLeaderboardScenario(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()

	log := strings.Join([]string{
		"Alice <a@x.com>",
		"Bob <b@x.com>",
		"Bob <b@x.com>",
		"Alice <a@x.com>",
		"Bob <b@x.com>",
		"Alice <a@x.com>",
		"Bob <b@x.com>",
		"Bob <b@x.com>",
		"Alice <a@x.com>",
	}, "\n")

	mockClient := &contract.MockGitClient{}
	mockClient.On("GetAuthorLog", ctx, "/test/repo", "30 days ago").Return([]byte(log), nil).Once()

	lb, err := BuildLeaderboard(ctx, cfg, mockClient)
	require.NoError(t, err)

	assert.Equal(t, "30 days ago", lb.Since)
	assert.Equal(t, 2, lb.Limit)
	assert.Equal(t, 2, lb.Total)
	assert.Equal(t, []schema.ContributorCount{
		{Identity: "Bob <b@x.com>", Commits: 5},
		{Identity: "Alice <a@x.com>", Commits: 4},
	}, lb.Entries)
	mockClient.AssertExpectations(t)
}

// TestBuildLeaderboardEmptyWindow checks the empty-result path: no commits
// is a valid outcome, not an error.
func TestBuildLeaderboardEmptyWindow(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()

	mockClient := &contract.MockGitClient{}
	mockClient.On("GetAuthorLog", ctx, "/test/repo", "30 days ago").Return([]byte(""), nil)

	lb, err := BuildLeaderboard(ctx, cfg, mockClient)
	require.NoError(t, err)
	assert.True(t, lb.IsEmpty())
	assert.Empty(t, lb.Entries)
}

// TestBuildLeaderboardLimitZero keeps the total around even though the
// ranked list is empty, so the reporter can still print the header.
func TestBuildLeaderboardLimitZero(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	cfg.Limit = 0

	mockClient := &contract.MockGitClient{}
	mockClient.On("GetAuthorLog", ctx, "/test/repo", "30 days ago").
		Return([]byte("Alice <a@x.com>\nBob <b@x.com>"), nil)

	lb, err := BuildLeaderboard(ctx, cfg, mockClient)
	require.NoError(t, err)
	assert.False(t, lb.IsEmpty())
	assert.Equal(t, 2, lb.Total)
	assert.Empty(t, lb.Entries)
}

// TestBuildLeaderboardErrorPropagation verifies that a log query failure
// reaches the caller unmodified.
func TestBuildLeaderboardErrorPropagation(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()

	queryErr := errors.New("git command failed in \"/test/repo\": not a git repository")
	mockClient := &contract.MockGitClient{}
	mockClient.On("GetAuthorLog", ctx, "/test/repo", "30 days ago").Return([]byte(nil), queryErr)

	lb, err := BuildLeaderboard(ctx, cfg, mockClient)
	assert.Nil(t, lb)
	assert.Equal(t, queryErr, err)
}

// TestBuildLeaderboardIdempotence runs the pipeline twice over the same
// stream and expects identical results.
func TestBuildLeaderboardIdempotence(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()

	log := []byte("Alice <a@x.com>\nBob <b@x.com>\nAlice <a@x.com>")
	mockClient := &contract.MockGitClient{}
	mockClient.On("GetAuthorLog", ctx, "/test/repo", "30 days ago").Return(log, nil).Twice()

	first, err := BuildLeaderboard(ctx, cfg, mockClient)
	require.NoError(t, err)
	second, err := BuildLeaderboard(ctx, cfg, mockClient)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	mockClient.AssertExpectations(t)
}
