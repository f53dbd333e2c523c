package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dpickhq/dpick/internal/developer/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/redis/go-redis/v9"
)

var ErrKeyNotExist = redis.Nil

//go:generate mockgen -source=./developer.go -package=cachemocks -destination=mocks/developer.mock.go DeveloperCache
type DeveloperCache interface {
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (domain.Developer, error)
	Set(ctx context.Context, d domain.Developer) error
}

type DeveloperECache struct {
	cache ecache.Cache
	// 过期时间
	expiration time.Duration
}

func NewDeveloperECache(c ecache.Cache) DeveloperCache {
	return &DeveloperECache{
		cache: &ecache.NamespaceCache{
			Namespace: "developer:",
			C:         c,
		},
		expiration: time.Minute * 15,
	}
}

func (cache *DeveloperECache) Delete(ctx context.Context, id int64) error {
	_, err := cache.cache.Delete(ctx, cache.key(id))
	return err
}

func (cache *DeveloperECache) Get(ctx context.Context, id int64) (domain.Developer, error) {
	var d domain.Developer
	err := cache.cache.Get(ctx, cache.key(id)).JSONScan(&d)
	return d, err
}

func (cache *DeveloperECache) Set(ctx context.Context, d domain.Developer) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return cache.cache.Set(ctx, cache.key(d.Id), data, cache.expiration)
}

func (cache *DeveloperECache) key(id int64) string {
	return fmt.Sprintf("%d", id)
}
