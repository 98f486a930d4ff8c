package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DanRulev/easyflash.git/internal/models"
)

func (f *FlashAPI) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := f.do(ctx, "list categories", http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (f *FlashAPI) CreateCategory(ctx context.Context, in models.CategoryInput) (models.Category, error) {
	var category models.Category
	if err := f.do(ctx, "create category", http.MethodPost, "/categories", in, &category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (f *FlashAPI) UpdateCategory(ctx context.Context, id int64, in models.CategoryInput) (models.Category, error) {
	var category models.Category
	if err := f.do(ctx, "update category", http.MethodPut, fmt.Sprintf("/categories/%d", id), in, &category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (f *FlashAPI) DeleteCategory(ctx context.Context, id int64) error {
	return f.do(ctx, "delete category", http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
}

func (f *FlashAPI) RegisterStreak(ctx context.Context) (models.Streak, error) {
	var streak models.Streak
	if err := f.do(ctx, "register streak", http.MethodPost, "/streak", nil, &streak); err != nil {
		return models.Streak{}, err
	}
	return streak, nil
}

func (f *FlashAPI) Streak(ctx context.Context) (models.Streak, error) {
	var streak models.Streak
	if err := f.do(ctx, "read streak", http.MethodGet, "/streak", nil, &streak); err != nil {
		return models.Streak{}, err
	}
	return streak, nil
}
