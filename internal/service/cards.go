package service

import (
	"context"

	"github.com/DanRulev/easyflash.git/internal/models"
	"github.com/DanRulev/easyflash.git/internal/session"
	"github.com/DanRulev/easyflash.git/internal/storage"
	"go.uber.org/zap"
)

func (c *Controller) Cards() []models.Card {
	return c.deck.Cards()
}

func (c *Controller) Card(id int64) (models.Card, bool) {
	return c.deck.Card(id)
}

func (c *Controller) Categories() []models.Category {
	return c.deck.Categories()
}

func (c *Controller) Category(id int64) (models.Category, bool) {
	return c.deck.Category(id)
}

// CategoryRequired reports whether new cards must name a category.
func (c *Controller) CategoryRequired() bool {
	return c.deck.CategoryRequired()
}

func (c *Controller) AddCard(ctx context.Context, in models.CardInput) (models.Card, error) {
	card, err := c.deck.AddCard(ctx, in)
	if err != nil {
		c.log.Warn("failed to add card", zap.String("source", in.Source), zap.Error(err))
		return models.Card{}, err
	}
	return card, nil
}

func (c *Controller) UpdateCard(ctx context.Context, id int64, in models.CardInput) (models.Card, error) {
	card, err := c.deck.UpdateCard(ctx, id, in)
	if err != nil {
		c.log.Warn("failed to update card", zap.Int64("card_id", id), zap.Error(err))
		return models.Card{}, err
	}
	return card, nil
}

func (c *Controller) DeleteCard(ctx context.Context, id int64) error {
	if err := c.deck.DeleteCard(ctx, id); err != nil {
		c.log.Warn("failed to delete card", zap.Int64("card_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (c *Controller) AddCategory(ctx context.Context, name string) (models.Category, error) {
	category, err := c.deck.AddCategory(ctx, name)
	if err != nil {
		c.log.Warn("failed to add category", zap.String("name", name), zap.Error(err))
		return models.Category{}, err
	}
	return category, nil
}

func (c *Controller) UpdateCategory(ctx context.Context, id int64, name string) (models.Category, error) {
	category, err := c.deck.UpdateCategory(ctx, id, name)
	if err != nil {
		c.log.Warn("failed to update category", zap.Int64("category_id", id), zap.Error(err))
		return models.Category{}, err
	}
	return category, nil
}

// DeleteCategory deletes the category and clears the caller's filter.
func (c *Controller) DeleteCategory(ctx context.Context, userID, id int64) error {
	if err := c.deck.DeleteCategory(ctx, id); err != nil {
		c.log.Warn("failed to delete category", zap.Int64("category_id", id), zap.Error(err))
		return err
	}

	_, err := c.update(ctx, userID, func(st *storage.UserState, _ *session.Session) error {
		st.CategoryID = models.AllCategories
		return nil
	})
	return err
}
