package service

import (
	"context"
	"fmt"
	"time"

	"ovapal-api/internal/apperr"
	"ovapal-api/internal/core/cache"
	"ovapal-api/internal/domain"
)

// UserGuard 各记录服务共用的"用户必须存在"检查；
// 配置了 Redis 时走短 TTL 缓存（用户创建后不可变，缓存安全）
type UserGuard struct {
	users domain.UserRepository
	cache *cache.Cache
	ttl   time.Duration
}

func NewUserGuard(users domain.UserRepository, c *cache.Cache, ttl time.Duration) UserGuard {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return UserGuard{users: users, cache: c, ttl: ttl}
}

func (g UserGuard) EnsureExists(ctx context.Context, userID uint) error {
	if g.cache != nil {
		u, err := cache.GetOrLoadJSON[domain.User](g.cache, ctx, userCacheKey(userID), g.ttl,
			func(ctx context.Context) (*domain.User, error) {
				return g.users.FindByID(ctx, userID)
			})
		if err == nil {
			if u == nil {
				return apperr.NotFoundf("User not found with ID: %d", userID)
			}
			return nil
		}
		// 缓存故障降级直查
	}
	ok, err := g.users.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFoundf("User not found with ID: %d", userID)
	}
	return nil
}

func userCacheKey(userID uint) string { return fmt.Sprintf("user:%d", userID) }
