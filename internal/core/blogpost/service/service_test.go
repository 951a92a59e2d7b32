package blogpostapp

import (
	"context"
	"testing"
	"time"

	blogpostEntity "codepulse/internal/core/blogpost"
	categoryEntity "codepulse/internal/core/category"
	blogpostPort "codepulse/internal/ports/blogpost"
	feedPort "codepulse/internal/ports/feed"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakePostRepo keeps aggregates in a map, mirroring the port contract:
// (nil, nil) for unknown ids, snapshots on delete.
type fakePostRepo struct {
	posts map[uuid.UUID]*blogpostEntity.BlogPost
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uuid.UUID]*blogpostEntity.BlogPost)}
}

func (r *fakePostRepo) Create(ctx context.Context, p *blogpostEntity.BlogPost) (*blogpostEntity.BlogPost, error) {
	cp := *p
	r.posts[p.ID] = &cp
	return p, nil
}

func (r *fakePostRepo) FindAll(ctx context.Context) ([]*blogpostEntity.BlogPost, error) {
	out := make([]*blogpostEntity.BlogPost, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePostRepo) FindByID(ctx context.Context, id uuid.UUID) (*blogpostEntity.BlogPost, error) {
	return r.posts[id], nil
}

func (r *fakePostRepo) FindByURLHandle(ctx context.Context, handle string) (*blogpostEntity.BlogPost, error) {
	for _, p := range r.posts {
		if p.URLHandle == handle {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePostRepo) Update(ctx context.Context, p *blogpostEntity.BlogPost) (*blogpostEntity.BlogPost, error) {
	if _, ok := r.posts[p.ID]; !ok {
		return nil, nil
	}
	cp := *p
	r.posts[p.ID] = &cp
	return &cp, nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id uuid.UUID) (*blogpostEntity.BlogPost, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	delete(r.posts, id)
	return p, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*categoryEntity.Category
}

func newFakeCategoryRepo(categories ...*categoryEntity.Category) *fakeCategoryRepo {
	m := make(map[uuid.UUID]*categoryEntity.Category, len(categories))
	for _, c := range categories {
		m[c.ID] = c
	}
	return &fakeCategoryRepo{categories: m}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, c *categoryEntity.Category) (*categoryEntity.Category, error) {
	r.categories[c.ID] = c
	return c, nil
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context) ([]*categoryEntity.Category, error) {
	out := make([]*categoryEntity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*categoryEntity.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, c *categoryEntity.Category) (*categoryEntity.Category, error) {
	if _, ok := r.categories[c.ID]; !ok {
		return nil, nil
	}
	r.categories[c.ID] = c
	return c, nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) (*categoryEntity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	delete(r.categories, id)
	return c, nil
}

type fakeFeedCache struct {
	entries map[string]feedPort.Entry
}

func newFakeFeedCache() *fakeFeedCache {
	return &fakeFeedCache{entries: make(map[string]feedPort.Entry)}
}

func (f *fakeFeedCache) ReplaceAll(ctx context.Context, entries []feedPort.Entry) error {
	f.entries = make(map[string]feedPort.Entry, len(entries))
	for _, e := range entries {
		f.entries[e.PostID] = e
	}
	return nil
}

func (f *fakeFeedCache) Push(ctx context.Context, e feedPort.Entry) error {
	f.entries[e.PostID] = e
	return nil
}

func (f *fakeFeedCache) Remove(ctx context.Context, postID string) error {
	delete(f.entries, postID)
	return nil
}

func (f *fakeFeedCache) RecentPostIDs(ctx context.Context, limit int64) ([]string, error) {
	ids := make([]string, 0, len(f.entries))
	for id := range f.entries {
		ids = append(ids, id)
	}
	return ids, nil
}

func newTestService(categories ...*categoryEntity.Category) (*BlogPostService, *fakePostRepo, *fakeFeedCache) {
	postRepo := newFakePostRepo()
	cache := newFakeFeedCache()
	svc := NewBlogPostService(postRepo, newFakeCategoryRepo(categories...), cache, zap.NewNop())
	return svc, postRepo, cache
}

func testCategory(name, handle string) *categoryEntity.Category {
	return &categoryEntity.Category{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      name,
		URLHandle: handle,
	}
}

func testInput(handle string) blogpostPort.PostInput {
	return blogpostPort.PostInput{
		Title:         "Hello",
		Content:       "<p>world</p>",
		URLHandle:     handle,
		Author:        "ada",
		IsVisible:     true,
		PublishedDate: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateBlogPost_ResolvesCategories(t *testing.T) {
	ctx := context.Background()
	tech := testCategory("Tech", "tech")
	golang := testCategory("Go", "go")
	svc, _, _ := newTestService(tech, golang)

	dto, err := svc.CreateBlogPost(ctx, testInput("hello"),
		[]string{tech.ID.String(), golang.ID.String()})
	require.NoError(t, err)

	require.Len(t, dto.Categories, 2)
	assert.Equal(t, tech.ID.String(), dto.Categories[0].ID)
	assert.Equal(t, golang.ID.String(), dto.Categories[1].ID)
	assert.Empty(t, dto.UnresolvedCategories)
}

func TestCreateBlogPost_DropsUnresolvedIDs(t *testing.T) {
	ctx := context.Background()
	tech := testCategory("Tech", "tech")
	svc, repo, _ := newTestService(tech)

	missing := uuid.Must(uuid.NewV4()).String()
	dto, err := svc.CreateBlogPost(ctx, testInput("hello"),
		[]string{tech.ID.String(), missing, "not-a-uuid"})
	require.NoError(t, err, "unresolved ids must not fail the request")

	require.Len(t, dto.Categories, 1)
	assert.Equal(t, tech.ID.String(), dto.Categories[0].ID)
	assert.ElementsMatch(t, []string{missing, "not-a-uuid"}, dto.UnresolvedCategories)

	stored, err := repo.FindByURLHandle(ctx, "hello")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Len(t, stored.Categories, 1, "only the resolved category is persisted")
}

func TestCreateBlogPost_DeduplicatesCategoryIDs(t *testing.T) {
	ctx := context.Background()
	tech := testCategory("Tech", "tech")
	svc, _, _ := newTestService(tech)

	dto, err := svc.CreateBlogPost(ctx, testInput("hello"),
		[]string{tech.ID.String(), tech.ID.String()})
	require.NoError(t, err)
	assert.Len(t, dto.Categories, 1)
}

func TestCreateBlogPost_PushesVisiblePostToFeed(t *testing.T) {
	ctx := context.Background()
	svc, _, cache := newTestService()

	dto, err := svc.CreateBlogPost(ctx, testInput("hello"), nil)
	require.NoError(t, err)
	assert.Contains(t, cache.entries, dto.ID)

	hidden := testInput("hidden")
	hidden.IsVisible = false
	dto, err = svc.CreateBlogPost(ctx, hidden, nil)
	require.NoError(t, err)
	assert.NotContains(t, cache.entries, dto.ID)
}

func TestUpdateBlogPost_UnknownIDIsAbsent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	dto, err := svc.UpdateBlogPost(ctx, uuid.Must(uuid.NewV4()).String(), testInput("x"), nil)
	require.NoError(t, err)
	assert.Nil(t, dto)

	dto, err = svc.UpdateBlogPost(ctx, "not-a-uuid", testInput("x"), nil)
	require.NoError(t, err)
	assert.Nil(t, dto)
}

func TestUpdateBlogPost_ReplacesCategorySet(t *testing.T) {
	ctx := context.Background()
	a := testCategory("A", "a")
	b := testCategory("B", "b")
	c := testCategory("C", "c")
	svc, _, _ := newTestService(a, b, c)

	created, err := svc.CreateBlogPost(ctx, testInput("hello"),
		[]string{a.ID.String(), b.ID.String()})
	require.NoError(t, err)

	updated, err := svc.UpdateBlogPost(ctx, created.ID, testInput("hello"),
		[]string{c.ID.String()})
	require.NoError(t, err)
	require.NotNil(t, updated)

	require.Len(t, updated.Categories, 1, "update replaces, never merges")
	assert.Equal(t, c.ID.String(), updated.Categories[0].ID)
}

func TestDeleteBlogPost_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, cache := newTestService()

	created, err := svc.CreateBlogPost(ctx, testInput("hello"), nil)
	require.NoError(t, err)

	deleted, err := svc.DeleteBlogPost(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, created.ID, deleted.ID)
	assert.NotContains(t, cache.entries, created.ID)

	again, err := svc.DeleteBlogPost(ctx, created.ID)
	require.NoError(t, err, "second delete is absence, never an error")
	assert.Nil(t, again)
}
