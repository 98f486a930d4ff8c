package cache

import (
	"context"
	"sort"
	"sync"

	"github.com/DanRulev/easyflash.git/internal/models"
	"github.com/DanRulev/easyflash.git/internal/storage"
)

type Cache struct {
	mu     sync.Mutex
	states map[int64]storage.UserState
	drafts map[int64]models.Draft
	chats  map[int64]struct{}
}

func NewCache() *Cache {
	return &Cache{
		states: make(map[int64]storage.UserState),
		drafts: make(map[int64]models.Draft),
		chats:  make(map[int64]struct{}),
	}
}

func (c *Cache) State(_ context.Context, userID int64) (storage.UserState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[userID], nil
}

func (c *Cache) SetState(_ context.Context, userID int64, st storage.UserState) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[userID] = st
	return nil
}

func (c *Cache) AddChat(_ context.Context, chatID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chats[chatID] = struct{}{}
	return nil
}

func (c *Cache) Chats(_ context.Context) ([]int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	chats := make([]int64, 0, len(c.chats))
	for id := range c.chats {
		chats = append(chats, id)
	}
	sort.Slice(chats, func(i, j int) bool { return chats[i] < chats[j] })

	return chats, nil
}

func (c *Cache) SetDraft(_ context.Context, userID int64, draft models.Draft) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drafts[userID] = draft
	return nil
}

func (c *Cache) GetDraft(_ context.Context, userID int64) (models.Draft, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	draft, exists := c.drafts[userID]
	return draft, exists, nil
}

func (c *Cache) DeleteDraft(_ context.Context, userID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.drafts, userID)
	return nil
}
