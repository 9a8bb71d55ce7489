package cache

import (
	"context"
	"fmt"
	"time"
)

// The key inventory covers exactly what the repositories cache: user
// rows, per-user progress overviews, and the follower-less first feed
// page.
const (
	UserKeyPrefix     = "user:%d"
	OverviewKeyPrefix = "progress:overview:%d"
	FeedFirstPageKey  = "feed:firstpage"
)

const (
	UserTTL     = 5 * time.Minute
	OverviewTTL = 2 * time.Minute
	FeedTTL     = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func OverviewKey(userID uint) string {
	return fmt.Sprintf(OverviewKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateFeed drops the cached first feed page. Any workout write
// can change what the page shows, including like counters.
func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, FeedFirstPageKey)
}

func InvalidateOverview(ctx context.Context, userID uint) {
	Invalidate(ctx, OverviewKey(userID))
}
