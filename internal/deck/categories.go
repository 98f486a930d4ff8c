package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanRulev/easyflash.git/internal/models"
)

func (d *Deck) AddCategory(ctx context.Context, name string) (models.Category, error) {
	in := models.CategoryInput{Name: strings.TrimSpace(name)}
	if err := validationError(in); err != nil {
		return models.Category{}, err
	}

	category, err := d.api.CreateCategory(ctx, in)
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	d.mu.Lock()
	if i := d.categoryIndex(category.ID); i >= 0 {
		d.categories[i] = category
	} else {
		d.categories = append(d.categories, category)
	}
	d.mu.Unlock()

	return category, nil
}

func (d *Deck) UpdateCategory(ctx context.Context, id int64, name string) (models.Category, error) {
	if _, ok := d.Category(id); !ok {
		return models.Category{}, &models.NotFoundError{Entity: "category", ID: id}
	}

	in := models.CategoryInput{Name: strings.TrimSpace(name)}
	if err := validationError(in); err != nil {
		return models.Category{}, err
	}

	category, err := d.api.UpdateCategory(ctx, id, in)
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to update category %d: %w", id, err)
	}

	d.mu.Lock()
	if i := d.categoryIndex(category.ID); i >= 0 {
		d.categories[i] = category
	}
	d.mu.Unlock()

	return category, nil
}

// DeleteCategory removes the category. Cards that referenced it keep their
// category id and only show up under the "all" filter.
func (d *Deck) DeleteCategory(ctx context.Context, id int64) error {
	if err := d.api.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}

	d.mu.Lock()
	if i := d.categoryIndex(id); i >= 0 {
		d.categories = append(d.categories[:i:i], d.categories[i+1:]...)
	}
	d.mu.Unlock()

	return nil
}
