package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/forum-api/domain"
)

const (
	KeyThreadDetail = "thread:detail:%s"
)

type threadDetailCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ domain.ThreadDetailCache = (*threadDetailCache)(nil)

func NewThreadDetailCache(client redis.Cmdable, ttl time.Duration) *threadDetailCache {
	return &threadDetailCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *threadDetailCache) Get(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyThreadDetail, threadID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ThreadDetail{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.ThreadDetail{}, err
	}

	var res domain.ThreadDetail
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.ThreadDetail{}, err
	}
	return res, nil
}

func (c *threadDetailCache) Set(ctx context.Context, detail domain.ThreadDetail) error {
	data, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyThreadDetail, detail.ID), data, c.ttl).Err()
}

func (c *threadDetailCache) Delete(ctx context.Context, threadID string) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyThreadDetail, threadID)).Err()
}
