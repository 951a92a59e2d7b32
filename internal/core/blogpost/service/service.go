package blogpostapp

import (
	"context"
	"fmt"

	blogpostEntity "codepulse/internal/core/blogpost"
	categoryEntity "codepulse/internal/core/category"
	blogpostPort "codepulse/internal/ports/blogpost"
	categoryPort "codepulse/internal/ports/category"
	feedPort "codepulse/internal/ports/feed"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// BlogPostService owns the post aggregate: scalar fields plus the
// category association set. Category ids supplied by callers are
// resolved through the category repository; ids that do not resolve
// never fail the request, they are reported back alongside the result.
type BlogPostService struct {
	BlogPostRepository blogpostPort.BlogPostRepository
	CategoryRepository categoryPort.CategoryRepository
	FeedCache          feedPort.FeedCache
	Logger             *zap.Logger
}

func NewBlogPostService(
	postRepo blogpostPort.BlogPostRepository,
	categoryRepo categoryPort.CategoryRepository,
	feedCache feedPort.FeedCache,
	logger *zap.Logger,
) *BlogPostService {
	return &BlogPostService{
		BlogPostRepository: postRepo,
		CategoryRepository: categoryRepo,
		FeedCache:          feedCache,
		Logger:             logger,
	}
}

// resolveCategories maps category ids onto existing Category rows,
// preserving input order and dropping duplicates. Ids that are
// malformed or match no row come back in unresolved.
func (s *BlogPostService) resolveCategories(ctx context.Context, ids []string) ([]categoryEntity.Category, []string, error) {
	resolved := make([]categoryEntity.Category, 0, len(ids))
	var unresolved []string
	seen := make(map[uuid.UUID]bool, len(ids))

	for _, id := range ids {
		cid, err := uuid.FromString(id)
		if err != nil {
			unresolved = append(unresolved, id)
			continue
		}
		if seen[cid] {
			continue
		}
		seen[cid] = true

		c, err := s.CategoryRepository.FindByID(ctx, cid)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve category %s: %w", id, err)
		}
		if c == nil {
			unresolved = append(unresolved, id)
			continue
		}
		resolved = append(resolved, *c)
	}

	if len(unresolved) > 0 {
		s.Logger.Warn("dropping unresolved category ids",
			zap.Strings("categoryIDs", unresolved))
	}
	return resolved, unresolved, nil
}

// CreateBlogPost persists a new post together with its association rows
// as one unit and returns the stored aggregate.
func (s *BlogPostService) CreateBlogPost(ctx context.Context, in blogpostPort.PostInput, categoryIDs []string) (*blogpostPort.BlogPostDTO, error) {
	categories, unresolved, err := s.resolveCategories(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	post := &blogpostEntity.BlogPost{
		ID:               uuid.Must(uuid.NewV4()),
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Content:          in.Content,
		FeaturedImageURL: in.FeaturedImageURL,
		URLHandle:        in.URLHandle,
		Author:           in.Author,
		IsVisible:        in.IsVisible,
		PublishedDate:    in.PublishedDate,
		Categories:       categories,
	}

	created, err := s.BlogPostRepository.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	s.refreshFeedEntry(ctx, created)

	dto := toDTO(created)
	dto.UnresolvedCategories = unresolved
	return dto, nil
}

func (s *BlogPostService) GetAllBlogPosts(ctx context.Context) ([]*blogpostPort.BlogPostDTO, error) {
	posts, err := s.BlogPostRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	dtos := make([]*blogpostPort.BlogPostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toDTO(p))
	}
	return dtos, nil
}

func (s *BlogPostService) GetBlogPostByID(ctx context.Context, id string) (*blogpostPort.BlogPostDTO, error) {
	pid, err := uuid.FromString(id)
	if err != nil {
		return nil, nil
	}

	post, err := s.BlogPostRepository.FindByID(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("failed to find blog post: %w", err)
	}
	if post == nil {
		return nil, nil
	}
	return toDTO(post), nil
}

func (s *BlogPostService) GetBlogPostByURLHandle(ctx context.Context, handle string) (*blogpostPort.BlogPostDTO, error) {
	post, err := s.BlogPostRepository.FindByURLHandle(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to find blog post by handle: %w", err)
	}
	if post == nil {
		return nil, nil
	}
	return toDTO(post), nil
}

// GetRecentBlogPosts serves the published feed, newest first, from the
// redis cache. An empty or failing cache falls through to the store.
func (s *BlogPostService) GetRecentBlogPosts(ctx context.Context, limit int64) ([]*blogpostPort.BlogPostDTO, error) {
	ids, err := s.FeedCache.RecentPostIDs(ctx, limit)
	if err != nil {
		s.Logger.Warn("feed cache unavailable, falling back to store", zap.Error(err))
		ids = nil
	}

	if len(ids) == 0 {
		posts, err := s.BlogPostRepository.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list blog posts: %w", err)
		}
		dtos := make([]*blogpostPort.BlogPostDTO, 0, len(posts))
		for _, p := range posts {
			if !p.IsVisible {
				continue
			}
			dtos = append(dtos, toDTO(p))
			if limit > 0 && int64(len(dtos)) >= limit {
				break
			}
		}
		return dtos, nil
	}

	dtos := make([]*blogpostPort.BlogPostDTO, 0, len(ids))
	for _, id := range ids {
		dto, err := s.GetBlogPostByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if dto != nil {
			dtos = append(dtos, dto)
		}
	}
	return dtos, nil
}

// UpdateBlogPost replaces every scalar field and the whole association
// set in one transaction; old associations not present in categoryIDs
// are dropped. Returns (nil, nil) when the id is unknown.
func (s *BlogPostService) UpdateBlogPost(ctx context.Context, id string, in blogpostPort.PostInput, categoryIDs []string) (*blogpostPort.BlogPostDTO, error) {
	pid, err := uuid.FromString(id)
	if err != nil {
		return nil, nil
	}

	categories, unresolved, err := s.resolveCategories(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	post := &blogpostEntity.BlogPost{
		ID:               pid,
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Content:          in.Content,
		FeaturedImageURL: in.FeaturedImageURL,
		URLHandle:        in.URLHandle,
		Author:           in.Author,
		IsVisible:        in.IsVisible,
		PublishedDate:    in.PublishedDate,
		Categories:       categories,
	}

	updated, err := s.BlogPostRepository.Update(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}
	if updated == nil {
		return nil, nil
	}

	s.refreshFeedEntry(ctx, updated)

	dto := toDTO(updated)
	dto.UnresolvedCategories = unresolved
	return dto, nil
}

// DeleteBlogPost removes the post and its association rows and returns
// the pre-deletion snapshot. A second delete of the same id returns
// (nil, nil), never an error.
func (s *BlogPostService) DeleteBlogPost(ctx context.Context, id string) (*blogpostPort.BlogPostDTO, error) {
	pid, err := uuid.FromString(id)
	if err != nil {
		return nil, nil
	}

	deleted, err := s.BlogPostRepository.Delete(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("failed to delete blog post: %w", err)
	}
	if deleted == nil {
		return nil, nil
	}

	if err := s.FeedCache.Remove(ctx, deleted.ID.String()); err != nil {
		s.Logger.Warn("could not remove post from feed cache",
			zap.String("postID", deleted.ID.String()), zap.Error(err))
	}

	return toDTO(deleted), nil
}

// refreshFeedEntry keeps the feed cache in step with a write. Cache
// failures are logged, never surfaced; the cache is advisory.
func (s *BlogPostService) refreshFeedEntry(ctx context.Context, post *blogpostEntity.BlogPost) {
	var err error
	if post.IsVisible {
		err = s.FeedCache.Push(ctx, feedPort.Entry{
			PostID:      post.ID.String(),
			PublishedAt: post.PublishedDate,
		})
	} else {
		err = s.FeedCache.Remove(ctx, post.ID.String())
	}
	if err != nil {
		s.Logger.Warn("could not refresh feed cache entry",
			zap.String("postID", post.ID.String()), zap.Error(err))
	}
}

func toDTO(p *blogpostEntity.BlogPost) *blogpostPort.BlogPostDTO {
	categories := make([]categoryPort.CategoryDTO, 0, len(p.Categories))
	for _, c := range p.Categories {
		categories = append(categories, categoryPort.CategoryDTO{
			ID:        c.ID.String(),
			Name:      c.Name,
			URLHandle: c.URLHandle,
		})
	}

	return &blogpostPort.BlogPostDTO{
		ID:               p.ID.String(),
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Content:          p.Content,
		FeaturedImageURL: p.FeaturedImageURL,
		URLHandle:        p.URLHandle,
		Author:           p.Author,
		IsVisible:        p.IsVisible,
		PublishedDate:    p.PublishedDate,
		Categories:       categories,
	}
}
