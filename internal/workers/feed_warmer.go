package workers

import (
	"context"
	"time"

	blogpostPort "codepulse/internal/ports/blogpost"
	feedPort "codepulse/internal/ports/feed"

	"go.uber.org/zap"
)

// FeedWarmer periodically rebuilds the published-feed ZSET from the
// store, so the cache recovers from redis restarts and from writes it
// missed. The per-write cache updates in the post service keep it fresh
// between rebuilds.
type FeedWarmer struct {
	PostRepo  blogpostPort.BlogPostRepository
	FeedCache feedPort.FeedCache
	Interval  time.Duration
	Logger    *zap.Logger
}

func NewFeedWarmer(
	postRepo blogpostPort.BlogPostRepository,
	feedCache feedPort.FeedCache,
	interval time.Duration,
	logger *zap.Logger,
) *FeedWarmer {
	if interval <= 0 {
		interval = time.Minute
	}
	return &FeedWarmer{
		PostRepo:  postRepo,
		FeedCache: feedCache,
		Interval:  interval,
		Logger:    logger,
	}
}

func (w *FeedWarmer) Run(ctx context.Context) {
	w.Logger.Info("feed warmer started", zap.Duration("interval", w.Interval))
	for {
		w.rebuild(ctx)

		select {
		case <-ctx.Done():
			w.Logger.Info("feed warmer stopped")
			return
		case <-time.After(w.Interval):
		}
	}
}

func (w *FeedWarmer) rebuild(ctx context.Context) {
	posts, err := w.PostRepo.FindAll(ctx)
	if err != nil {
		w.Logger.Error("could not load posts for feed rebuild", zap.Error(err))
		return
	}

	entries := make([]feedPort.Entry, 0, len(posts))
	for _, p := range posts {
		if !p.IsVisible {
			continue
		}
		entries = append(entries, feedPort.Entry{
			PostID:      p.ID.String(),
			PublishedAt: p.PublishedDate,
		})
	}

	if err := w.FeedCache.ReplaceAll(ctx, entries); err != nil {
		w.Logger.Warn("could not rebuild feed cache", zap.Error(err))
		return
	}
	w.Logger.Debug("feed cache rebuilt", zap.Int("entries", len(entries)))
}
