package redis_ser

import (
	"context"
	"time"

	"blogcms/global"
)

// BlacklistToken 把令牌加入黑名单，过期时间对齐令牌剩余有效期
func BlacklistToken(token string, ttl time.Duration) error {
	if ttl <= 0 || global.Redis == nil {
		return nil
	}
	return global.Redis.Set(context.Background(), tokenBlacklistPrefix+token, "1", ttl).Err()
}

// IsTokenBlacklisted 检查令牌是否已被拉黑
func IsTokenBlacklisted(token string) bool {
	if global.Redis == nil {
		return false
	}
	n, err := global.Redis.Exists(context.Background(), tokenBlacklistPrefix+token).Result()
	if err != nil {
		global.Log.Warnf("查询令牌黑名单失败: %s", err)
		return false
	}
	return n > 0
}
