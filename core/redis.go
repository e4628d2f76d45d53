package core

import (
	"context"
	"time"

	"blogcms/global"

	"github.com/avast/retry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedis 初始化Redis
func InitRedis() *redis.Client {
	redisConf := global.Config.Redis

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisConf.Addr(),
		Password: redisConf.Password,
		DB:       redisConf.DB,
	})

	// 启动阶段redis可能还没就绪，重试几次再放弃
	err := retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return rdb.Ping(ctx).Err()
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
	)
	if err != nil {
		global.Log.Error("Redis连接失败", zap.String("addr", redisConf.Addr()), zap.String("error", err.Error()))
		return nil
	}

	global.Log.Info("Redis连接成功", zap.String("method", "InitRedis"))
	return rdb
}
