package database

import (
	"context"
	"errors"

	"codepulse/internal/core/blogpost"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// BlogPostRepositoryDatabase implements the blog post port over gorm.
// The post_categories junction table is owned by this adapter: every
// write keeps it in step with the aggregate inside one transaction.
type BlogPostRepositoryDatabase struct {
	db *gorm.DB
}

func NewBlogPostRepositoryDatabase(db *gorm.DB) *BlogPostRepositoryDatabase {
	return &BlogPostRepositoryDatabase{db: db}
}

// Create persists the post row and its association rows as one unit.
// Category rows themselves are never touched, only junction rows.
func (repo *BlogPostRepositoryDatabase) Create(ctx context.Context, p *blogpost.BlogPost) (*blogpost.BlogPost, error) {
	if err := repo.db.WithContext(ctx).Omit("Categories.*").Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *BlogPostRepositoryDatabase) FindAll(ctx context.Context) ([]*blogpost.BlogPost, error) {
	var posts []*blogpost.BlogPost
	if err := repo.db.WithContext(ctx).Preload("Categories").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *BlogPostRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*blogpost.BlogPost, error) {
	var p blogpost.BlogPost
	err := repo.db.WithContext(ctx).Preload("Categories").Where("id = ?", id.String()).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (repo *BlogPostRepositoryDatabase) FindByURLHandle(ctx context.Context, handle string) (*blogpost.BlogPost, error) {
	var p blogpost.BlogPost
	err := repo.db.WithContext(ctx).Preload("Categories").Where("url_handle = ?", handle).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update is an explicit read-modify-write: load the aggregate, replace
// every scalar field wholesale, replace the whole association set, and
// commit. Scalar and association updates never land separately; the
// transaction rolls both back on any failure. (nil, nil) when no row
// matches the id.
func (repo *BlogPostRepositoryDatabase) Update(ctx context.Context, p *blogpost.BlogPost) (*blogpost.BlogPost, error) {
	var existing blogpost.BlogPost
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", p.ID.String()).First(&existing).Error; err != nil {
			return err
		}

		existing.Title = p.Title
		existing.ShortDescription = p.ShortDescription
		existing.Content = p.Content
		existing.FeaturedImageURL = p.FeaturedImageURL
		existing.URLHandle = p.URLHandle
		existing.Author = p.Author
		existing.IsVisible = p.IsVisible
		existing.PublishedDate = p.PublishedDate
		if err := tx.Omit("Categories").Save(&existing).Error; err != nil {
			return err
		}

		if err := tx.Model(&existing).Association("Categories").Replace(p.Categories); err != nil {
			return err
		}
		existing.Categories = p.Categories
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

// Delete removes the post row and purges its junction rows so no
// association can dangle. Returns the pre-deletion snapshot with
// categories embedded, or (nil, nil) when no row matches.
func (repo *BlogPostRepositoryDatabase) Delete(ctx context.Context, id uuid.UUID) (*blogpost.BlogPost, error) {
	var existing blogpost.BlogPost
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Categories").Where("id = ?", id.String()).First(&existing).Error; err != nil {
			return err
		}
		if err := tx.Model(&existing).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&existing).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &existing, nil
}
