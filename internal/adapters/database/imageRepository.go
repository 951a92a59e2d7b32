package database

import (
	"context"

	"codepulse/internal/core/image"

	"gorm.io/gorm"
)

// ImageRepositoryDatabase implements the image metadata port over gorm.
type ImageRepositoryDatabase struct {
	db *gorm.DB
}

func NewImageRepositoryDatabase(db *gorm.DB) *ImageRepositoryDatabase {
	return &ImageRepositoryDatabase{db: db}
}

func (repo *ImageRepositoryDatabase) Create(ctx context.Context, img *image.BlogImage) (*image.BlogImage, error) {
	if err := repo.db.WithContext(ctx).Create(img).Error; err != nil {
		return nil, err
	}
	return img, nil
}

func (repo *ImageRepositoryDatabase) FindAll(ctx context.Context) ([]*image.BlogImage, error) {
	var images []*image.BlogImage
	if err := repo.db.WithContext(ctx).Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}
