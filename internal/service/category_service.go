package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "habitly/internal/errors"
	"habitly/internal/model"
	"habitly/internal/repository"
)

// CategoryService exposes category operations scoped to one user.
type CategoryService interface {
	Create(ctx context.Context, userID uint, name, description string) (*model.Category, error)
	Get(ctx context.Context, id, userID uint) (*model.Category, error)
	List(ctx context.Context, userID uint) ([]model.Category, error)
	Update(ctx context.Context, id, userID uint, name, description string) (*model.Category, error)
	Delete(ctx context.Context, id, userID uint) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService builds a CategoryService.
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

// Create adds a category. Names are unique per user; like registration, the
// pre-check gives the friendly error and the composite unique index backs it
// up under concurrency.
func (s *categoryService) Create(ctx context.Context, userID uint, name, description string) (*model.Category, error) {
	existing, err := s.repo.FindByNameAndUserID(ctx, name, userID)
	if err == nil && existing != nil {
		return nil, apperrors.ErrAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check category existence: %w", err)
	}

	category := &model.Category{
		Name:        name,
		Description: description,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Get(ctx context.Context, id, userID uint) (*model.Category, error) {
	category, err := s.repo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context, userID uint) ([]model.Category, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *categoryService) Update(ctx context.Context, id, userID uint, name, description string) (*model.Category, error) {
	category, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		category.Name = name
	}
	if description != "" {
		category.Description = description
	}

	if err := s.repo.Update(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id, userID uint) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}
