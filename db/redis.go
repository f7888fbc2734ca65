package db

import (
	"context"
	"fmt"

	"Rozi/config"
	"github.com/go-redis/redis/v8"
)

// NewRedis 建立连接并 ping 一次。Host 为空时返回 nil, nil
func NewRedis(ctx context.Context, c config.RedisConf) (*redis.Client, error) {
	if c.Host == "" {
		return nil, nil
	}
	cli := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Password: c.PassWord,
		DB:       c.DB,
		PoolSize: c.PoolSize,
	})
	// 连接测试以确保与 Redis 服务器的通信正常。
	if err := cli.Ping(ctx).Err(); err != nil {
		cli.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cli.Options().Addr, err)
	}
	return cli, nil
}
