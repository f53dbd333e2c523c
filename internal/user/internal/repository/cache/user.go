package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dpickhq/dpick/internal/user/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/redis/go-redis/v9"
)

// ErrKeyNotExist 目前只有 redis 一个实现，保持别名即可
var ErrKeyNotExist = redis.Nil

//go:generate mockgen -source=./user.go -package=cachemocks -destination=mocks/user.mock.go UserCache
type UserCache interface {
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (domain.User, error)
	Set(ctx context.Context, u domain.User) error
}

// UserECache 挂在 "user:" 这个命名空间下面。
// 过期时间写死 15 分钟，账号信息改动不频繁
type UserECache struct {
	ec  ecache.Cache
	ttl time.Duration
}

func NewUserECache(c ecache.Cache) UserCache {
	return &UserECache{
		ec: &ecache.NamespaceCache{
			Namespace: "user:",
			C:         c,
		},
		ttl: time.Minute * 15,
	}
}

func (cache *UserECache) Get(ctx context.Context, id int64) (domain.User, error) {
	var u domain.User
	err := cache.ec.Get(ctx, cache.key(id)).JSONScan(&u)
	return u, err
}

func (cache *UserECache) Set(ctx context.Context, u domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return cache.ec.Set(ctx, cache.key(u.Id), data, cache.ttl)
}

func (cache *UserECache) Delete(ctx context.Context, id int64) error {
	_, err := cache.ec.Delete(ctx, cache.key(id))
	return err
}

func (cache *UserECache) key(id int64) string {
	return fmt.Sprintf("info:%d", id)
}
