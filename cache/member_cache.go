package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"MemberHub/model"

	"github.com/go-redis/redis/v8"
)

// MemberCache 以会员ID为键缓存会员资料，写操作后失效。
// client 为 nil 时所有操作退化为未命中/空操作，调用方无需区分。
type MemberCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMemberCache creates a member profile cache backed by Redis.
func NewMemberCache(client *redis.Client, ttl time.Duration) *MemberCache {
	return &MemberCache{client: client, ttl: ttl}
}

func memberKey(id int64) string {
	return fmt.Sprintf("member:profile:%d", id)
}

// Get 返回缓存的会员资料，未命中时返回 (nil, nil)
func (c *MemberCache) Get(ctx context.Context, id int64) (*model.Member, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, memberKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member %d from cache: %w", id, err)
	}

	m := &model.Member{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached member %d: %w", id, err)
	}
	return m, nil
}

// Set 写入会员资料缓存
func (c *MemberCache) Set(ctx context.Context, m *model.Member) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal member %d for cache: %w", m.ID, err)
	}

	if err := c.client.Set(ctx, memberKey(m.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache member %d: %w", m.ID, err)
	}
	return nil
}

// Invalidate 删除会员资料缓存，资料更新或会员删除后调用
func (c *MemberCache) Invalidate(ctx context.Context, id int64) error {
	if c == nil || c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, memberKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate member %d cache: %w", id, err)
	}
	return nil
}
