package chain

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// Cache 余额读穿缓存。缓存失效时只有拿到锁的请求回源，其余请求短暂等待，避免击穿节点
type Cache struct {
	rdb      *redis.Client
	ttl      time.Duration
	lockTTL  time.Duration
	retries  int
	interval time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		rdb:      rdb,
		ttl:      ttl,
		lockTTL:  2 * time.Second,
		retries:  3,
		interval: 20 * time.Millisecond,
	}
}

// GetOrLoad nil 的 Cache 直接回源
func (c *Cache) GetOrLoad(ctx context.Context, key string, load func(context.Context) (*big.Int, error)) (*big.Int, error) {
	if c == nil {
		return load(ctx)
	}
	if v, ok := c.get(ctx, key); ok {
		return v, nil
	}

	lockKey := key + ":lock"
	locked, err := c.rdb.SetNX(ctx, lockKey, "1", c.lockTTL).Result()
	if err != nil {
		log.Warnf("balance cache lock %s: %v", lockKey, err)
		return load(ctx)
	}
	if locked {
		defer c.rdb.Del(context.Background(), lockKey) // 确保释放锁
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.rdb.Set(ctx, key, v.String(), c.ttl).Err(); err != nil {
			log.Warnf("balance cache set %s: %v", key, err)
		}
		return v, nil
	}

	// 没拿到锁，等持锁者写入缓存
	for i := 0; i < c.retries; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.interval):
		}
		if v, ok := c.get(ctx, key); ok {
			return v, nil
		}
	}
	return load(ctx)
}

func (c *Cache) get(ctx context.Context, key string) (*big.Int, bool) {
	s, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warnf("balance cache get %s: %v", key, err)
		}
		return nil, false
	}
	v, ok := new(big.Int).SetString(s, 10)
	return v, ok
}
