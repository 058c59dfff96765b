package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	FeedKeyPrefix = "feed:%s"
)

const (
	UserTTL = 5 * time.Minute
	// FeedTTL bounds the staleness window of cached feed pages. Writes also
	// invalidate eagerly, so this is the worst case only when invalidation
	// is missed (e.g. Redis was briefly unreachable during the write).
	FeedTTL = 20 * time.Second
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// FeedKey builds the cache key for one rendered feed page. requestURI must
// include the query string so each distinct page/filter caches independently.
func FeedKey(requestURI string) string {
	return fmt.Sprintf(FeedKeyPrefix, requestURI)
}

// InvalidateFeeds drops every cached feed page. Called on each post write so
// feeds never serve stale data longer than the in-flight request.
func InvalidateFeeds(ctx context.Context) {
	if client == nil {
		return
	}
	var cursor uint64
	for {
		keys, next, err := client.Scan(ctx, cursor, "feed:*", 100).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}
