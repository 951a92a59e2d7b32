package database

import (
	"context"
	"errors"

	"codepulse/internal/core/category"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// CategoryRepositoryDatabase implements the category port over gorm.
type CategoryRepositoryDatabase struct {
	db *gorm.DB
}

func NewCategoryRepositoryDatabase(db *gorm.DB) *CategoryRepositoryDatabase {
	return &CategoryRepositoryDatabase{db: db}
}

func (repo *CategoryRepositoryDatabase) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	if err := repo.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CategoryRepositoryDatabase) FindAll(ctx context.Context) ([]*category.Category, error) {
	var categories []*category.Category
	if err := repo.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (repo *CategoryRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	var c category.Category
	err := repo.db.WithContext(ctx).Where("id = ?", id.String()).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update overwrites the mutable fields of an existing row and returns
// the post-update state, or (nil, nil) when no row matches.
func (repo *CategoryRepositoryDatabase) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	var existing category.Category
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", c.ID.String()).First(&existing).Error; err != nil {
			return err
		}
		existing.Name = c.Name
		existing.URLHandle = c.URLHandle
		return tx.Save(&existing).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

// Delete removes the row and any junction rows that referenced it, in
// one transaction, and returns the pre-deletion snapshot. (nil, nil)
// when no row matches, so a repeated delete is a no-op.
func (repo *CategoryRepositoryDatabase) Delete(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	var existing category.Category
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id.String()).First(&existing).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM post_categories WHERE category_id = ?", id.String()).Error; err != nil {
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
