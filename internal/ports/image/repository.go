package image

import (
	"context"
	"time"

	"codepulse/internal/core/image"
)

// ImageRepository is the outbound port for image metadata persistence.
type ImageRepository interface {
	Create(ctx context.Context, img *image.BlogImage) (*image.BlogImage, error)
	FindAll(ctx context.Context) ([]*image.BlogImage, error)
}

// ImageStore writes image bytes to a backing store and returns the
// public URL they will be served from.
type ImageStore interface {
	Save(ctx context.Context, fileName string, content []byte) (string, error)
}

type ImageDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	FileName      string    `json:"fileName"`
	FileExtension string    `json:"fileExtension"`
	URL           string    `json:"url"`
	DateCreated   time.Time `json:"dateCreated"`
}
