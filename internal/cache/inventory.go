package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	githubReposKeyPrefix = "github:repos:%s"
	profileListKey       = "profiles:all"
)

const (
	// GithubReposTTL bounds how stale the external repository lookup may be.
	GithubReposTTL = 10 * time.Minute
	// ProfileListTTL keeps the unbounded full-scan listing cheap under load.
	ProfileListTTL = 1 * time.Minute
)

// GithubReposKey returns the cache key for a user's GitHub repositories.
func GithubReposKey(username string) string {
	return fmt.Sprintf(githubReposKeyPrefix, username)
}

// ProfileListKey returns the cache key for the full profile listing.
func ProfileListKey() string {
	return profileListKey
}

// Invalidate removes a key; a nil client makes this a no-op.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateProfileList drops the cached profile listing after any
// profile or account mutation.
func InvalidateProfileList(ctx context.Context) {
	Invalidate(ctx, profileListKey)
}
