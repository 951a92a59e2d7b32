package blogpost

import (
	"context"
	"time"

	"codepulse/internal/core/blogpost"
	categoryPort "codepulse/internal/ports/category"

	"github.com/gofrs/uuid"
)

// BlogPostRepository is the outbound port for post persistence. All
// reads return the aggregate with categories embedded. Find/Update/
// Delete return (nil, nil) when no row matches; Update replaces every
// scalar field and the whole association set in one transaction.
type BlogPostRepository interface {
	Create(ctx context.Context, p *blogpost.BlogPost) (*blogpost.BlogPost, error)
	FindAll(ctx context.Context) ([]*blogpost.BlogPost, error)
	FindByID(ctx context.Context, id uuid.UUID) (*blogpost.BlogPost, error)
	FindByURLHandle(ctx context.Context, handle string) (*blogpost.BlogPost, error)
	Update(ctx context.Context, p *blogpost.BlogPost) (*blogpost.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) (*blogpost.BlogPost, error)
}

// PostInput carries the full scalar state of a post. Updates are
// wholesale: callers send the complete record, absent fields land as
// their zero value.
type PostInput struct {
	Title            string
	ShortDescription string
	Content          string
	FeaturedImageURL string
	URLHandle        string
	Author           string
	IsVisible        bool
	PublishedDate    time.Time
}

type BlogPostDTO struct {
	ID                   string                     `json:"id"`
	Title                string                     `json:"title"`
	ShortDescription     string                     `json:"shortDescription"`
	Content              string                     `json:"content"`
	FeaturedImageURL     string                     `json:"featuredImageUrl"`
	URLHandle            string                     `json:"urlHandle"`
	Author               string                     `json:"author"`
	IsVisible            bool                       `json:"isVisible"`
	PublishedDate        time.Time                  `json:"publishedDate"`
	Categories           []categoryPort.CategoryDTO `json:"categories"`
	UnresolvedCategories []string                   `json:"unresolvedCategories,omitempty"`
}
