package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/DanRulev/easyflash.git/internal/models"
	"github.com/DanRulev/easyflash.git/internal/storage"
	"github.com/redis/go-redis/v9"
)

const (
	stateKeyPrefix = "easyflash:state:"
	draftKeyPrefix = "easyflash:draft:"
	chatsKey       = "easyflash:chats"
)

func NewClient(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}

// Store keeps user states and drafts as JSON strings that expire after ttl of
// inactivity. Registered chats never expire.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func stateKey(userID int64) string {
	return stateKeyPrefix + strconv.FormatInt(userID, 10)
}

func draftKey(userID int64) string {
	return draftKeyPrefix + strconv.FormatInt(userID, 10)
}

func (s *Store) State(ctx context.Context, userID int64) (storage.UserState, error) {
	var st storage.UserState

	data, err := s.client.Get(ctx, stateKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("failed to get state for user %d: %w", userID, err)
	}

	if err := json.Unmarshal(data, &st); err != nil {
		return storage.UserState{}, fmt.Errorf("failed to decode state for user %d: %w", userID, err)
	}

	return st, nil
}

func (s *Store) SetState(ctx context.Context, userID int64, st storage.UserState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode state for user %d: %w", userID, err)
	}

	if err := s.client.Set(ctx, stateKey(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set state for user %d: %w", userID, err)
	}

	return nil
}

func (s *Store) AddChat(ctx context.Context, chatID int64) error {
	if err := s.client.SAdd(ctx, chatsKey, chatID).Err(); err != nil {
		return fmt.Errorf("failed to add chat %d: %w", chatID, err)
	}
	return nil
}

func (s *Store) Chats(ctx context.Context) ([]int64, error) {
	members, err := s.client.SMembers(ctx, chatsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}

	chats := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		chats = append(chats, id)
	}
	sort.Slice(chats, func(i, j int) bool { return chats[i] < chats[j] })

	return chats, nil
}

func (s *Store) SetDraft(ctx context.Context, userID int64, draft models.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft for user %d: %w", userID, err)
	}

	if err := s.client.Set(ctx, draftKey(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set draft for user %d: %w", userID, err)
	}

	return nil
}

func (s *Store) GetDraft(ctx context.Context, userID int64) (models.Draft, bool, error) {
	var draft models.Draft

	data, err := s.client.Get(ctx, draftKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return draft, false, nil
	}
	if err != nil {
		return draft, false, fmt.Errorf("failed to get draft for user %d: %w", userID, err)
	}

	if err := json.Unmarshal(data, &draft); err != nil {
		return models.Draft{}, false, fmt.Errorf("failed to decode draft for user %d: %w", userID, err)
	}

	return draft, true, nil
}

func (s *Store) DeleteDraft(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, draftKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft for user %d: %w", userID, err)
	}
	return nil
}
