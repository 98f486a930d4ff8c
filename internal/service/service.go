package service

import (
	"context"

	"github.com/DanRulev/easyflash.git/internal/models"
	"github.com/DanRulev/easyflash.git/internal/storage"
)

type DeckI interface {
	Load(ctx context.Context) error
	Cards() []models.Card
	Categories() []models.Category
	Card(id int64) (models.Card, bool)
	Category(id int64) (models.Category, bool)
	Filtered(categoryID int64) []models.Card
	LearnedCount(threshold int) int
	CategoryRequired() bool
	AddCard(ctx context.Context, in models.CardInput) (models.Card, error)
	UpdateCard(ctx context.Context, id int64, in models.CardInput) (models.Card, error)
	DeleteCard(ctx context.Context, id int64) error
	AddProgress(ctx context.Context, id int64, delta int) (models.Card, error)
	AddCategory(ctx context.Context, name string) (models.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type StoreI interface {
	State(ctx context.Context, userID int64) (storage.UserState, error)
	SetState(ctx context.Context, userID int64, st storage.UserState) error
	AddChat(ctx context.Context, chatID int64) error
	Chats(ctx context.Context) ([]int64, error)
}

type HistoryRI interface {
	AddResult(ctx context.Context, result models.SessionResult) error
	Stats(ctx context.Context, userID int64) (models.SessionStats, error)
	Results(ctx context.Context, userID int64, offset int) ([]models.SessionResult, int, error)
}

type StreakAPII interface {
	Streak(ctx context.Context) (models.Streak, error)
	RegisterStreak(ctx context.Context) (models.Streak, error)
}
