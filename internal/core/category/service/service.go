package categoryapp

import (
	"context"
	"fmt"

	categoryEntity "codepulse/internal/core/category"
	categoryPort "codepulse/internal/ports/category"

	"github.com/gofrs/uuid"
)

// CategoryService covers category CRUD. Uniqueness of name or handle is
// not enforced at this layer; duplicates are permitted.
type CategoryService struct {
	CategoryRepository categoryPort.CategoryRepository
}

func NewCategoryService(repo categoryPort.CategoryRepository) *CategoryService {
	return &CategoryService{CategoryRepository: repo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, name, urlHandle string) (*categoryPort.CategoryDTO, error) {
	c := &categoryEntity.Category{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      name,
		URLHandle: urlHandle,
	}

	created, err := s.CategoryRepository.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return toDTO(created), nil
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]*categoryPort.CategoryDTO, error) {
	categories, err := s.CategoryRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	dtos := make([]*categoryPort.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, toDTO(c))
	}
	return dtos, nil
}

// GetCategoryByID returns (nil, nil) when the id is unknown or not a
// valid uuid; a malformed id can never match a row.
func (s *CategoryService) GetCategoryByID(ctx context.Context, id string) (*categoryPort.CategoryDTO, error) {
	cid, err := uuid.FromString(id)
	if err != nil {
		return nil, nil
	}

	c, err := s.CategoryRepository.FindByID(ctx, cid)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if c == nil {
		return nil, nil
	}
	return toDTO(c), nil
}

// UpdateCategory overwrites the mutable fields in place and returns the
// post-update state, or (nil, nil) when the id is unknown.
func (s *CategoryService) UpdateCategory(ctx context.Context, id, name, urlHandle string) (*categoryPort.CategoryDTO, error) {
	cid, err := uuid.FromString(id)
	if err != nil {
		return nil, nil
	}

	updated, err := s.CategoryRepository.Update(ctx, &categoryEntity.Category{
		ID:        cid,
		Name:      name,
		URLHandle: urlHandle,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	if updated == nil {
		return nil, nil
	}
	return toDTO(updated), nil
}

// DeleteCategory removes the category and returns its pre-deletion
// snapshot, or (nil, nil) when the id is unknown. Junction rows that
// referenced the category are purged in the same transaction.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) (*categoryPort.CategoryDTO, error) {
	cid, err := uuid.FromString(id)
	if err != nil {
		return nil, nil
	}

	deleted, err := s.CategoryRepository.Delete(ctx, cid)
	if err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	if deleted == nil {
		return nil, nil
	}
	return toDTO(deleted), nil
}

func toDTO(c *categoryEntity.Category) *categoryPort.CategoryDTO {
	return &categoryPort.CategoryDTO{
		ID:        c.ID.String(),
		Name:      c.Name,
		URLHandle: c.URLHandle,
	}
}
