package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/budeir2006/ABED/config"
)

// Client Redis 客户端封装
// 当前用于代课规划的互斥锁；后续可扩展缓存等场景
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 规划互斥锁 ──

const planLockPrefix = "plan:lock:"

// AcquirePlanLock 尝试获取指定日期的规划锁（SETNX 语义）
// 返回 false 表示已有规划在执行
func (c *Client) AcquirePlanLock(ctx context.Context, date string, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, planLockPrefix+date, "1", ttl).Result()
}

// ReleasePlanLock 释放指定日期的规划锁
func (c *Client) ReleasePlanLock(ctx context.Context, date string) error {
	return c.rdb.Del(ctx, planLockPrefix+date).Err()
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
