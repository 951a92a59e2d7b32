package category

import (
	"context"

	"codepulse/internal/core/category"

	"github.com/gofrs/uuid"
)

// CategoryRepository is the outbound port for category persistence.
// Find/Update/Delete return (nil, nil) when no row matches the id; a
// non-nil error always means a store failure, never "not found".
type CategoryRepository interface {
	Create(ctx context.Context, c *category.Category) (*category.Category, error)
	FindAll(ctx context.Context) ([]*category.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error)
	Update(ctx context.Context, c *category.Category) (*category.Category, error)
	Delete(ctx context.Context, id uuid.UUID) (*category.Category, error)
}

type CategoryDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URLHandle string `json:"urlHandle"`
}
