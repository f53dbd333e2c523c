// Copyright 2024 dpickhq
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"

	"github.com/dpickhq/dpick/internal/user/internal/domain"
	"github.com/dpickhq/dpick/internal/user/internal/repository/cache"
	"github.com/dpickhq/dpick/internal/user/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	Update(ctx context.Context, u domain.User) error
	Delete(ctx context.Context, id int64) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

var _ UserRepository = (*CachedUserRepository)(nil)

type CachedUserRepository struct {
	dao    dao.UserDAO
	cache  cache.UserCache
	logger *elog.Component
}

func NewCachedUserRepository(d dao.UserDAO, c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return repo.dao.Insert(ctx, repo.toEntity(u))
}

func (repo *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := repo.dao.UpdateNonZeroFields(ctx, repo.toEntity(u))
	if err != nil {
		return err
	}
	return repo.cache.Delete(ctx, u.Id)
}

func (repo *CachedUserRepository) Delete(ctx context.Context, id int64) error {
	err := repo.dao.Delete(ctx, id)
	if err != nil {
		return err
	}
	return repo.cache.Delete(ctx, id)
}

func (repo *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	// 登录路径，不走缓存
	u, err := repo.dao.FindByEmail(ctx, email)
	return repo.toDomain(u), err
}

func (repo *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := repo.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	eu, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	res := repo.toDomain(eu)
	if e := repo.cache.Set(ctx, res); e != nil {
		repo.logger.Error("缓存用户失败",
			elog.Int64("uid", id), elog.FieldErr(e))
	}
	return res, nil
}

func (repo *CachedUserRepository) List(ctx context.Context) ([]domain.User, error) {
	us, err := repo.dao.List(ctx)
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return repo.toDomain(src)
	}), err
}

func (repo *CachedUserRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		SN:       u.SN,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Avatar:   u.Avatar,
		Role:     u.Role.String(),
	}
}

func (repo *CachedUserRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		Id:       u.Id,
		SN:       u.SN,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Avatar:   u.Avatar,
		Role:     domain.Role(u.Role),
		Utime:    u.Utime,
	}
}
