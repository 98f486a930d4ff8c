package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanRulev/easyflash.git/internal/models"
	"go.uber.org/zap"
)

func (d *Deck) validateCard(in models.CardInput) (models.CardInput, error) {
	in.Source = strings.TrimSpace(in.Source)
	in.Target = strings.TrimSpace(in.Target)

	if err := validationError(in); err != nil {
		return in, err
	}
	if in.CategoryID == models.AllCategories {
		if d.optionalCategory {
			return in, nil
		}
		return in, &models.ValidationError{Field: "categoryId", Reason: "is required"}
	}

	d.mu.RLock()
	known := d.categoryIndex(in.CategoryID) >= 0
	d.mu.RUnlock()
	if !known {
		return in, &models.ValidationError{Field: "categoryId", Reason: fmt.Sprintf("%d is not a known category", in.CategoryID)}
	}

	return in, nil
}

// AddCard creates the card on the server and appends the server's copy.
func (d *Deck) AddCard(ctx context.Context, in models.CardInput) (models.Card, error) {
	in, err := d.validateCard(in)
	if err != nil {
		return models.Card{}, err
	}

	card, err := d.api.CreateWord(ctx, in)
	if err != nil {
		return models.Card{}, fmt.Errorf("failed to create word: %w", err)
	}

	d.mu.Lock()
	if i := d.cardIndex(card.ID); i >= 0 {
		d.cards[i] = card
	} else {
		d.cards = append(d.cards, card)
	}
	d.mu.Unlock()

	return card, nil
}

// UpdateCard replaces the editable fields of a cached card.
func (d *Deck) UpdateCard(ctx context.Context, id int64, in models.CardInput) (models.Card, error) {
	if _, ok := d.Card(id); !ok {
		return models.Card{}, &models.NotFoundError{Entity: "card", ID: id}
	}

	in, err := d.validateCard(in)
	if err != nil {
		return models.Card{}, err
	}

	card, err := d.api.UpdateWord(ctx, id, in)
	if err != nil {
		return models.Card{}, fmt.Errorf("failed to update word %d: %w", id, err)
	}

	d.mu.Lock()
	if i := d.cardIndex(card.ID); i >= 0 {
		if d.cards[i].Progress > card.Progress {
			card.Progress = d.cards[i].Progress
		}
		d.cards[i] = card
	} else {
		d.log.Debug("updated word no longer cached", zap.Int64("id", card.ID))
	}
	d.mu.Unlock()

	return card, nil
}

func (d *Deck) DeleteCard(ctx context.Context, id int64) error {
	if err := d.api.DeleteWord(ctx, id); err != nil {
		return fmt.Errorf("failed to delete word %d: %w", id, err)
	}

	d.mu.Lock()
	if i := d.cardIndex(id); i >= 0 {
		d.cards = append(d.cards[:i:i], d.cards[i+1:]...)
	}
	d.mu.Unlock()

	return nil
}

// AddProgress increments the cached progress right away and confirms it with
// the server in the background. The returned card already carries the new
// progress.
func (d *Deck) AddProgress(ctx context.Context, id int64, delta int) (models.Card, error) {
	if delta <= 0 {
		return models.Card{}, &models.ValidationError{Field: "points", Reason: "must be positive"}
	}

	d.mu.Lock()
	i := d.cardIndex(id)
	if i < 0 {
		d.mu.Unlock()
		return models.Card{}, &models.NotFoundError{Entity: "card", ID: id}
	}
	d.cards[i].Progress += delta
	card := d.cards[i]
	d.mu.Unlock()

	d.pending.Add(1)
	go d.confirmProgress(context.WithoutCancel(ctx), id, delta)

	return card, nil
}

func (d *Deck) confirmProgress(parent context.Context, id int64, delta int) {
	defer d.pending.Done()

	ctx, cancel := context.WithTimeout(parent, d.confirmTimeout)
	defer cancel()

	server, err := d.api.AddProgress(ctx, id, delta)
	if err != nil {
		d.log.Warn("failed to confirm progress", zap.Int64("id", id), zap.Int("points", delta), zap.Bool("reverted", d.reconcile), zap.Error(err))
		if d.reconcile {
			d.revertProgress(id, delta)
		}
		return
	}
	if server == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.cardIndex(id)
	if i < 0 {
		return
	}
	// other increments may still be in flight
	if server.Progress < d.cards[i].Progress {
		server.Progress = d.cards[i].Progress
	}
	d.cards[i] = *server
}

func (d *Deck) revertProgress(id int64, delta int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.cardIndex(id)
	if i < 0 {
		return
	}
	d.cards[i].Progress -= delta
	if d.cards[i].Progress < 0 {
		d.cards[i].Progress = 0
	}
}
