package contact

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// CooldownStore gates repeat submissions per sender. Acquire reports
// whether the sender may submit now, claiming the slot if so.
type CooldownStore interface {
	Acquire(ctx context.Context, ip string) (bool, error)
	TTL() time.Duration
}

type redisCooldown struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCooldown returns a CooldownStore over Redis. Each allowed
// submission sets a per-IP key that expires after ttl.
func NewRedisCooldown(client *redis.Client, ttl time.Duration) CooldownStore {
	return &redisCooldown{client: client, ttl: ttl}
}

func (c *redisCooldown) Acquire(ctx context.Context, ip string) (bool, error) {
	return c.client.SetNX(ctx, "contact:cooldown:"+ip, 1, c.ttl).Result()
}

func (c *redisCooldown) TTL() time.Duration {
	return c.ttl
}
