package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
	repo "local-market/internal/repository/sqlite"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

type CategoryService struct {
	categoryRepo repo.CategoryRepository
}

func NewCategoryService(categoryRepo repo.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(name string) (*entity.Category, error) {
	existing, err := s.categoryRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	category := &entity.Category{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories() ([]entity.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *CategoryService) UpdateCategory(id uuid.UUID, name string) error {
	ok, err := s.categoryRepo.Update(id, name)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *CategoryService) DeleteCategory(id uuid.UUID) error {
	ok, err := s.categoryRepo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryNotFound
	}
	return nil
}
