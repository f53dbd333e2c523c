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

	"github.com/dpickhq/dpick/internal/project/internal/domain"
	"github.com/dpickhq/dpick/internal/project/internal/repository/cache"
	"github.com/dpickhq/dpick/internal/project/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var ErrProjectNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./project.go -package=repomocks -destination=mocks/project.mock.go ProjectRepository
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Detail(ctx context.Context, id int64) (domain.Project, error)
	Create(ctx context.Context, p domain.Project) (int64, error)
	Update(ctx context.Context, p domain.Project) error
	// UpdateStaffing 只动团队和人月台账
	UpdateStaffing(ctx context.Context, p domain.Project) error
	Delete(ctx context.Context, id int64) error

	Announcements(ctx context.Context, projectId int64) ([]domain.Announcement, error)
	AddAnnouncement(ctx context.Context, a domain.Announcement) (int64, error)
}

var _ ProjectRepository = (*CachedProjectRepository)(nil)

type CachedProjectRepository struct {
	dao    dao.ProjectDAO
	cache  cache.ProjectCache
	logger *elog.Component
}

func NewCachedProjectRepository(d dao.ProjectDAO, c cache.ProjectCache) ProjectRepository {
	return &CachedProjectRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	res, err := repo.dao.List(ctx)
	return slice.Map(res, func(idx int, src dao.Project) domain.Project {
		return repo.toDomain(src, nil)
	}), err
}

func (repo *CachedProjectRepository) Detail(ctx context.Context, id int64) (domain.Project, error) {
	if p, err := repo.cache.Get(ctx, id); err == nil {
		return p, nil
	}
	var (
		eg   errgroup.Group
		prj  dao.Project
		anns []dao.Announcement
	)
	eg.Go(func() error {
		var err error
		prj, err = repo.dao.GetById(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		anns, err = repo.dao.Announcements(ctx, id)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Project{}, err
	}
	res := repo.toDomain(prj, anns)
	if err := repo.cache.Set(ctx, res); err != nil {
		repo.logger.Error("缓存项目失败",
			elog.Int64("id", id), elog.FieldErr(err))
	}
	return res, nil
}

func (repo *CachedProjectRepository) Create(ctx context.Context, p domain.Project) (int64, error) {
	return repo.dao.Insert(ctx, repo.toEntity(p))
}

func (repo *CachedProjectRepository) Update(ctx context.Context, p domain.Project) error {
	err := repo.dao.UpdateNonZeroFields(ctx, repo.toEntity(p))
	if err != nil {
		return err
	}
	return repo.cache.Delete(ctx, p.Id)
}

func (repo *CachedProjectRepository) UpdateStaffing(ctx context.Context, p domain.Project) error {
	err := repo.dao.UpdateStaffing(ctx, repo.toEntity(p))
	if err != nil {
		return err
	}
	return repo.cache.Delete(ctx, p.Id)
}

func (repo *CachedProjectRepository) Delete(ctx context.Context, id int64) error {
	err := repo.dao.Delete(ctx, id)
	if err != nil {
		return err
	}
	return repo.cache.Delete(ctx, id)
}

func (repo *CachedProjectRepository) Announcements(ctx context.Context, projectId int64) ([]domain.Announcement, error) {
	as, err := repo.dao.Announcements(ctx, projectId)
	return slice.Map(as, func(idx int, src dao.Announcement) domain.Announcement {
		return repo.announcementToDomain(src)
	}), err
}

func (repo *CachedProjectRepository) AddAnnouncement(ctx context.Context, a domain.Announcement) (int64, error) {
	id, err := repo.dao.InsertAnnouncement(ctx, dao.Announcement{
		ProjectId:  a.ProjectId,
		SentDate:   a.SentDate,
		Channel:    string(a.Channel),
		Content:    a.Content,
		Recipients: sqlx.JsonColumn[[]string]{Val: a.Recipients, Valid: true},
	})
	if err != nil {
		return 0, err
	}
	// 详情缓存里带着公告，直接作废
	if e := repo.cache.Delete(ctx, a.ProjectId); e != nil {
		repo.logger.Error("清理项目缓存失败",
			elog.Int64("id", a.ProjectId), elog.FieldErr(e))
	}
	return id, nil
}

func (repo *CachedProjectRepository) toDomain(p dao.Project, anns []dao.Announcement) domain.Project {
	return domain.Project{
		Id:              p.Id,
		SN:              p.SN,
		Title:           p.Title,
		Description:     p.Description,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		Status:          domain.Status(p.Status),
		Type:            domain.Type(p.Type),
		Team:            p.Team.Val,
		TotalMMRequired: p.TotalMMRequired,
		ConfirmedMM:     p.ConfirmedMM,
		InDiscussionMM:  p.InDiscussionMM,
		Announcements: slice.Map(anns, func(idx int, src dao.Announcement) domain.Announcement {
			return repo.announcementToDomain(src)
		}),
		Ctime: p.Ctime,
		Utime: p.Utime,
	}
}

func (repo *CachedProjectRepository) toEntity(p domain.Project) dao.Project {
	return dao.Project{
		Id:              p.Id,
		SN:              p.SN,
		Title:           p.Title,
		Description:     p.Description,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		Status:          string(p.Status),
		Type:            string(p.Type),
		Team:            sqlx.JsonColumn[[]int64]{Val: p.Team, Valid: true},
		TotalMMRequired: p.TotalMMRequired,
		ConfirmedMM:     p.ConfirmedMM,
		InDiscussionMM:  p.InDiscussionMM,
	}
}

func (repo *CachedProjectRepository) announcementToDomain(a dao.Announcement) domain.Announcement {
	return domain.Announcement{
		Id:         a.Id,
		ProjectId:  a.ProjectId,
		SentDate:   a.SentDate,
		Channel:    domain.Channel(a.Channel),
		Content:    a.Content,
		Recipients: a.Recipients.Val,
		Ctime:      a.Ctime,
	}
}
