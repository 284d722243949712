package repository

import (
	"context"

	"streaming-catalog/internal/database"
	"streaming-catalog/internal/models"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Categoria, error)
}

type categoryRepository struct {
	base
}

func NewCategoryRepository(db *database.Database) CategoryRepository {
	return &categoryRepository{base: newBase(db)}
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]models.Categoria, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	categories := []models.Categoria{}
	if err := r.db.WithContext(ctx).Select("id, nombre").Find(&categories).Error; err != nil {
		return nil, wrap("listAllCategories", err)
	}
	return categories, nil
}
