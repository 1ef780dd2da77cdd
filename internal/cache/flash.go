package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Flash categories used by the templates.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash 一次性訊息：顯示一次後即被移除
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type FlashStore interface {
	// Push appends a flash to the session's queue.
	Push(ctx context.Context, sessionID string, flash Flash) error
	// Pop returns every queued flash in push order and clears the queue.
	Pop(ctx context.Context, sessionID string) ([]Flash, error)
}

type RedisFlashStore struct {
	client *redis.Client
	ttl    time.Duration
}

// DefaultFlashTTL applies when NewRedisFlashStore is given a non-positive ttl.
const DefaultFlashTTL = 5 * time.Minute

// NewRedisFlashStore keeps each session's flashes in a Redis list that
// expires ttl after the last push.
func NewRedisFlashStore(client *redis.Client, ttl time.Duration) FlashStore {
	if ttl <= 0 {
		ttl = DefaultFlashTTL
	}
	return &RedisFlashStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisFlashStore) key(sessionID string) string {
	return fmt.Sprintf("flash:%s", sessionID)
}

func (s *RedisFlashStore) Push(ctx context.Context, sessionID string, flash Flash) error {
	data, err := json.Marshal(flash)
	if err != nil {
		return err
	}

	key := s.key(sessionID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, data)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	return err
}

func (s *RedisFlashStore) Pop(ctx context.Context, sessionID string) ([]Flash, error) {
	key := s.key(sessionID)

	// 讀取與刪除在同一個 MULTI 中執行，避免重複顯示
	var entries *redis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		entries = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, err
	}

	flashes := make([]Flash, 0, len(entries.Val()))
	for _, raw := range entries.Val() {
		var f Flash
		if err := json.Unmarshal([]byte(raw), &f); err != nil {
			return nil, fmt.Errorf("failed to decode flash: %w", err)
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}

// MemoryFlashStore keeps flashes in process memory. Entries never expire.
type MemoryFlashStore struct {
	mu      sync.Mutex
	flashes map[string][]Flash
}

func NewMemoryFlashStore() *MemoryFlashStore {
	return &MemoryFlashStore{flashes: make(map[string][]Flash)}
}

func (s *MemoryFlashStore) Push(ctx context.Context, sessionID string, flash Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes[sessionID] = append(s.flashes[sessionID], flash)
	return nil
}

func (s *MemoryFlashStore) Pop(ctx context.Context, sessionID string) ([]Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flashes := s.flashes[sessionID]
	delete(s.flashes, sessionID)
	if flashes == nil {
		flashes = make([]Flash, 0)
	}
	return flashes, nil
}
