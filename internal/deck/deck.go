// Package deck keeps the local copy of the cards and categories served by
// the flashcard API and mirrors every mutation to it.
package deck

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DanRulev/easyflash.git/internal/models"
	"github.com/DanRulev/easyflash.git/pkg/validator"
	"go.uber.org/zap"
)

type WordAPII interface {
	Words(ctx context.Context) ([]models.Card, error)
	CreateWord(ctx context.Context, in models.CardInput) (models.Card, error)
	UpdateWord(ctx context.Context, id int64, in models.CardInput) (models.Card, error)
	DeleteWord(ctx context.Context, id int64) error
	AddProgress(ctx context.Context, id int64, points int) (*models.Card, error)
}

type CategoryAPII interface {
	Categories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, in models.CategoryInput) (models.Category, error)
	UpdateCategory(ctx context.Context, id int64, in models.CategoryInput) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type APII interface {
	WordAPII
	CategoryAPII
}

type Option func(*Deck)

// WithReconcile makes a failed progress confirmation revert the optimistic
// increment. By default the local increment is kept.
func WithReconcile(reconcile bool) Option {
	return func(d *Deck) {
		d.reconcile = reconcile
	}
}

// WithOptionalCategory lets cards be stored without a category. Cards that
// do name a category still need a known one.
func WithOptionalCategory(optional bool) Option {
	return func(d *Deck) {
		d.optionalCategory = optional
	}
}

// WithConfirmTimeout bounds each background progress confirmation.
func WithConfirmTimeout(timeout time.Duration) Option {
	return func(d *Deck) {
		if timeout > 0 {
			d.confirmTimeout = timeout
		}
	}
}

// Deck is safe for concurrent use. No lock is held during API calls; answers
// are applied by id and dropped when the entity has disappeared meanwhile.
type Deck struct {
	api              APII
	log              *zap.Logger
	reconcile        bool
	optionalCategory bool
	confirmTimeout   time.Duration

	mu         sync.RWMutex
	cards      []models.Card
	categories []models.Category

	pending sync.WaitGroup
}

func New(api APII, log *zap.Logger, opts ...Option) *Deck {
	d := &Deck{
		api:            api,
		log:            log,
		confirmTimeout: 10 * time.Second,
		cards:          []models.Card{},
		categories:     []models.Category{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load replaces the whole cache. If either list fails to load the previous
// cache is kept.
func (d *Deck) Load(ctx context.Context) error {
	cards, err := d.api.Words(ctx)
	if err != nil {
		return fmt.Errorf("failed to load words: %w", err)
	}
	categories, err := d.api.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	d.mu.Lock()
	d.cards = cards
	d.categories = categories
	d.mu.Unlock()

	d.log.Debug("deck loaded", zap.Int("cards", len(cards)), zap.Int("categories", len(categories)))

	return nil
}

func (d *Deck) Cards() []models.Card {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.Card(nil), d.cards...)
}

func (d *Deck) Categories() []models.Category {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.Category(nil), d.categories...)
}

func (d *Deck) Card(id int64) (models.Card, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if i := d.cardIndex(id); i >= 0 {
		return d.cards[i], true
	}
	return models.Card{}, false
}

func (d *Deck) Category(id int64) (models.Category, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if i := d.categoryIndex(id); i >= 0 {
		return d.categories[i], true
	}
	return models.Category{}, false
}

// Filtered is Filter applied to the current cache.
func (d *Deck) Filtered(categoryID int64) []models.Card {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Filter(d.cards, categoryID)
}

func (d *Deck) LearnedCount(threshold int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Learned(d.cards, threshold)
}

func (d *Deck) CategoryRequired() bool {
	return !d.optionalCategory
}

// Wait blocks until every in-flight progress confirmation has finished.
func (d *Deck) Wait() {
	d.pending.Wait()
}

// cardIndex and categoryIndex expect d.mu to be held.
func (d *Deck) cardIndex(id int64) int {
	for i := range d.cards {
		if d.cards[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *Deck) categoryIndex(id int64) int {
	for i := range d.categories {
		if d.categories[i].ID == id {
			return i
		}
	}
	return -1
}

func validationError(s interface{}) error {
	fields, err := validator.Fields(s)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	f := fields[0]
	reason := "is invalid"
	if f.Tag == "required" {
		reason = "is required"
	}
	return &models.ValidationError{Field: lowerFirst(f.Field), Reason: reason}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
