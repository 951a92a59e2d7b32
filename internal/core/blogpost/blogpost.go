package blogpost

import (
	"time"

	"codepulse/internal/core/category"

	"github.com/gofrs/uuid"
)

type BlogPost struct {
	ID               uuid.UUID           `gorm:"primaryKey;type:char(36)"`
	Title            string              `gorm:"not null"`
	ShortDescription string              `gorm:"type:text"`
	Content          string              `gorm:"type:text;not null"`
	FeaturedImageURL string              `gorm:"column:featured_image_url"`
	URLHandle        string              `gorm:"not null;index"`
	Author           string              `gorm:"not null"`
	IsVisible        bool                `gorm:"not null"`
	PublishedDate    time.Time           `gorm:"not null"`
	Categories       []category.Category `gorm:"many2many:post_categories"`
	CreatedAt        time.Time           `gorm:"autoCreateTime"`
	UpdatedAt        time.Time           `gorm:"autoUpdateTime"`
	DeletedAt        *time.Time          `gorm:"index"`
}
