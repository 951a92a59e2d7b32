package feed

import (
	"context"
	"time"
)

// Entry is one published post in the feed cache, scored by its
// published date.
type Entry struct {
	PostID      string
	PublishedAt time.Time
}

// FeedCache is the outbound port for the redis-backed published feed.
// It is advisory: callers fall back to the database when it is empty
// or unavailable.
type FeedCache interface {
	ReplaceAll(ctx context.Context, entries []Entry) error
	Push(ctx context.Context, e Entry) error
	Remove(ctx context.Context, postID string) error
	RecentPostIDs(ctx context.Context, limit int64) ([]string, error)
}
