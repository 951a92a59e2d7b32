package database

import (
	"context"
	"testing"
	"time"

	"codepulse/internal/core/blogpost"
	"codepulse/internal/core/category"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPost(handle string, categories ...category.Category) *blogpost.BlogPost {
	return &blogpost.BlogPost{
		ID:               uuid.Must(uuid.NewV4()),
		Title:            "Hello",
		ShortDescription: "greeting",
		Content:          "<p>world</p>",
		FeaturedImageURL: "/images/hello.png",
		URLHandle:        handle,
		Author:           "ada",
		IsVisible:        true,
		PublishedDate:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Categories:       categories,
	}
}

func seedCategories(t *testing.T, repo *CategoryRepositoryDatabase, names ...string) []category.Category {
	t.Helper()
	ctx := context.Background()
	out := make([]category.Category, 0, len(names))
	for _, name := range names {
		c, err := repo.Create(ctx, newCategory(name, name))
		require.NoError(t, err)
		out = append(out, *c)
	}
	return out
}

func categoryIDs(categories []category.Category) []string {
	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID.String())
	}
	return ids
}

func TestBlogPostRepository_CreatePersistsAssociations(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	postRepo := NewBlogPostRepositoryDatabase(db)
	cats := seedCategories(t, NewCategoryRepositoryDatabase(db), "tech", "go")

	created, err := postRepo.Create(ctx, newPost("hello", cats...))
	require.NoError(t, err)
	assert.EqualValues(t, 2, junctionRowsForPost(t, db, created.ID.String()))

	found, err := postRepo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.ElementsMatch(t, categoryIDs(cats), categoryIDs(found.Categories))
}

func TestBlogPostRepository_FindByID_Absent(t *testing.T) {
	ctx := context.Background()
	postRepo := NewBlogPostRepositoryDatabase(newTestDB(t))

	found, err := postRepo.FindByID(ctx, uuid.Must(uuid.NewV4()))
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestBlogPostRepository_FindByURLHandle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	postRepo := NewBlogPostRepositoryDatabase(db)

	created, err := postRepo.Create(ctx, newPost("hello"))
	require.NoError(t, err)

	found, err := postRepo.FindByURLHandle(ctx, "hello")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	missing, err := postRepo.FindByURLHandle(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBlogPostRepository_Update_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	postRepo := NewBlogPostRepositoryDatabase(db)
	cats := seedCategories(t, NewCategoryRepositoryDatabase(db), "tech")

	created, err := postRepo.Create(ctx, newPost("hello"))
	require.NoError(t, err)

	replacement := newPost("hello-v2", cats...)
	replacement.ID = created.ID
	replacement.Title = "Hello again"
	replacement.IsVisible = false

	updated, err := postRepo.Update(ctx, replacement)
	require.NoError(t, err)
	require.NotNil(t, updated)

	found, err := postRepo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Hello again", found.Title)
	assert.Equal(t, "hello-v2", found.URLHandle)
	assert.False(t, found.IsVisible, "scalar replacement covers zero values too")
	assert.ElementsMatch(t, categoryIDs(cats), categoryIDs(found.Categories))
}

func TestBlogPostRepository_Update_ReplacesAssociationSetWholly(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	postRepo := NewBlogPostRepositoryDatabase(db)
	cats := seedCategories(t, NewCategoryRepositoryDatabase(db), "a", "b", "c")

	created, err := postRepo.Create(ctx, newPost("hello", cats[0], cats[1]))
	require.NoError(t, err)

	replacement := newPost("hello", cats[2])
	replacement.ID = created.ID

	_, err = postRepo.Update(ctx, replacement)
	require.NoError(t, err)

	found, err := postRepo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Categories, 1, "old associations are dropped, not merged")
	assert.Equal(t, cats[2].ID, found.Categories[0].ID)
	assert.EqualValues(t, 1, junctionRowsForPost(t, db, created.ID.String()))
}

func TestBlogPostRepository_Update_Absent(t *testing.T) {
	ctx := context.Background()
	postRepo := NewBlogPostRepositoryDatabase(newTestDB(t))

	updated, err := postRepo.Update(ctx, newPost("ghost"))
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestBlogPostRepository_Delete_SnapshotAndJunctionPurge(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	postRepo := NewBlogPostRepositoryDatabase(db)
	cats := seedCategories(t, NewCategoryRepositoryDatabase(db), "tech")

	created, err := postRepo.Create(ctx, newPost("hello", cats...))
	require.NoError(t, err)

	deleted, err := postRepo.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Len(t, deleted.Categories, 1, "snapshot keeps the embedded categories")

	assert.EqualValues(t, 0, junctionRowsForPost(t, db, created.ID.String()))

	// the category itself is untouched by the post deletion
	c, err := NewCategoryRepositoryDatabase(db).FindByID(ctx, cats[0].ID)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestBlogPostRepository_Delete_Idempotent(t *testing.T) {
	ctx := context.Background()
	postRepo := NewBlogPostRepositoryDatabase(newTestDB(t))

	created, err := postRepo.Create(ctx, newPost("hello"))
	require.NoError(t, err)

	_, err = postRepo.Delete(ctx, created.ID)
	require.NoError(t, err)

	again, err := postRepo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, again)
}
