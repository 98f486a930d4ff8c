package bot

import (
	"context"

	"github.com/DanRulev/easyflash.git/internal/models"
	"go.uber.org/zap"
)

type DraftStoreI interface {
	SetDraft(ctx context.Context, userID int64, draft models.Draft) error
	GetDraft(ctx context.Context, userID int64) (models.Draft, bool, error)
	DeleteDraft(ctx context.Context, userID int64) error
}

// draftCache keeps the half-typed input of each user between messages.
// A store failure is logged and reads as no draft.
type draftCache struct {
	store DraftStoreI
	log   *zap.Logger
}

func newDraftCache(store DraftStoreI, log *zap.Logger) *draftCache {
	return &draftCache{store: store, log: log}
}

func (d *draftCache) SetDraft(userID int64, draft models.Draft) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	if err := d.store.SetDraft(ctx, userID, draft); err != nil {
		d.log.Warn("failed to save draft", zap.Int64("user_id", userID), zap.Error(err))
	}
}

func (d *draftCache) GetDraft(userID int64) (models.Draft, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	draft, ok, err := d.store.GetDraft(ctx, userID)
	if err != nil {
		d.log.Warn("failed to read draft", zap.Int64("user_id", userID), zap.Error(err))
		return models.Draft{}, false
	}
	return draft, ok
}

func (d *draftCache) DeleteDraft(userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	if err := d.store.DeleteDraft(ctx, userID); err != nil {
		d.log.Warn("failed to delete draft", zap.Int64("user_id", userID), zap.Error(err))
	}
}
