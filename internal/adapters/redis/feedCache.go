package redis

import (
	"context"

	feedPort "codepulse/internal/ports/feed"

	"github.com/go-redis/redis/v8"
)

const feedKey = "feed:published"

// FeedCacheRedis keeps the published feed as a ZSET of post ids scored
// by published date, so a range read comes back newest first.
type FeedCacheRedis struct {
	Client *redis.Client
}

func NewFeedCacheRedis(client *redis.Client) *FeedCacheRedis {
	return &FeedCacheRedis{Client: client}
}

// ReplaceAll atomically swaps the whole feed for the given entries.
func (r *FeedCacheRedis) ReplaceAll(ctx context.Context, entries []feedPort.Entry) error {
	pipe := r.Client.TxPipeline()
	pipe.Del(ctx, feedKey)
	for _, e := range entries {
		pipe.ZAdd(ctx, feedKey, &redis.Z{
			Score:  float64(e.PublishedAt.Unix()),
			Member: e.PostID,
		})
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *FeedCacheRedis) Push(ctx context.Context, e feedPort.Entry) error {
	return r.Client.ZAdd(ctx, feedKey, &redis.Z{
		Score:  float64(e.PublishedAt.Unix()),
		Member: e.PostID,
	}).Err()
}

func (r *FeedCacheRedis) Remove(ctx context.Context, postID string) error {
	return r.Client.ZRem(ctx, feedKey, postID).Err()
}

// RecentPostIDs returns up to limit post ids, newest first. limit <= 0
// means the whole feed.
func (r *FeedCacheRedis) RecentPostIDs(ctx context.Context, limit int64) ([]string, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = limit - 1
	}
	return r.Client.ZRevRange(ctx, feedKey, 0, stop).Result()
}
