package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL 상수 정의
const (
	TTLCampaigns = 1 * time.Minute // 월별 캠페인 목록 (자주 갱신)
	TTLDefault   = 5 * time.Minute // 기본값
)

// 캐시 키 접두사
const (
	PrefixCampaigns = "campaigns:"
)

// Service caches computed month views. Every campaign write invalidates the
// whole campaigns namespace — the views are cheap to recompute, a stale
// month view is not.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	GetCampaigns(ctx context.Context, key string, dest interface{}) error
	SetCampaigns(ctx context.Context, key string, data interface{}) error
	InvalidateCampaigns(ctx context.Context) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache Redis 기반 캐시 구현
type redisCache struct {
	client *redis.Client
}

// NewService creates a cache service backed by the given client
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable Redis 연결 가능 여부
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping Redis 연결 테스트
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get 캐시에서 값 조회
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set 캐시에 값 저장
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // Redis 없으면 무시
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete 캐시 삭제
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) campaignsKey(key string) string {
	return PrefixCampaigns + key
}

func (c *redisCache) GetCampaigns(ctx context.Context, key string, dest interface{}) error {
	return c.Get(ctx, c.campaignsKey(key), dest)
}

func (c *redisCache) SetCampaigns(ctx context.Context, key string, data interface{}) error {
	return c.Set(ctx, c.campaignsKey(key), data, TTLCampaigns)
}

func (c *redisCache) InvalidateCampaigns(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.deleteByPattern(ctx, PrefixCampaigns+"*")
}

func (c *redisCache) deleteByPattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
