package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dpickhq/dpick/internal/project/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/redis/go-redis/v9"
)

var ErrKeyNotExist = redis.Nil

//go:generate mockgen -source=./project.go -package=cachemocks -destination=mocks/project.mock.go ProjectCache
type ProjectCache interface {
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (domain.Project, error)
	Set(ctx context.Context, p domain.Project) error
}

type ProjectECache struct {
	cache ecache.Cache
	// 过期时间
	expiration time.Duration
}

func NewProjectECache(c ecache.Cache) ProjectCache {
	return &ProjectECache{
		cache: &ecache.NamespaceCache{
			Namespace: "project:",
			C:         c,
		},
		expiration: time.Minute * 15,
	}
}

func (cache *ProjectECache) Delete(ctx context.Context, id int64) error {
	_, err := cache.cache.Delete(ctx, cache.key(id))
	return err
}

func (cache *ProjectECache) Get(ctx context.Context, id int64) (domain.Project, error) {
	var p domain.Project
	err := cache.cache.Get(ctx, cache.key(id)).JSONScan(&p)
	return p, err
}

func (cache *ProjectECache) Set(ctx context.Context, p domain.Project) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return cache.cache.Set(ctx, cache.key(p.Id), data, cache.expiration)
}

func (cache *ProjectECache) key(id int64) string {
	return fmt.Sprintf("%d", id)
}
