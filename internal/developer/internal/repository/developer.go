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

	"github.com/dpickhq/dpick/internal/developer/internal/domain"
	"github.com/dpickhq/dpick/internal/developer/internal/repository/cache"
	"github.com/dpickhq/dpick/internal/developer/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDeveloperNotFound = dao.ErrDataNotFound
	ErrResumeNotFound    = dao.ErrDataNotFound
)

//go:generate mockgen -source=./developer.go -package=repomocks -destination=mocks/developer.mock.go DeveloperRepository
type DeveloperRepository interface {
	List(ctx context.Context) ([]domain.Developer, error)
	Detail(ctx context.Context, id int64) (domain.Developer, error)
	Create(ctx context.Context, d domain.Developer) (int64, error)
	Update(ctx context.Context, d domain.Developer) error
	UpdateAssignment(ctx context.Context, d domain.Developer) error
	Delete(ctx context.Context, id int64) error

	Contacts(ctx context.Context, developerId int64) ([]domain.Contact, error)
	AddContact(ctx context.Context, c domain.Contact) (int64, error)

	Resumes(ctx context.Context, developerId int64) ([]domain.Resume, error)
	AddResume(ctx context.Context, r domain.Resume) (int64, error)
	ResumeById(ctx context.Context, id int64) (domain.Resume, error)
	SaveReview(ctx context.Context, r domain.Resume) error
}

var _ DeveloperRepository = (*CachedDeveloperRepository)(nil)

type CachedDeveloperRepository struct {
	dao    dao.DeveloperDAO
	cache  cache.DeveloperCache
	logger *elog.Component
}

func NewCachedDeveloperRepository(d dao.DeveloperDAO, c cache.DeveloperCache) DeveloperRepository {
	return &CachedDeveloperRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedDeveloperRepository) List(ctx context.Context) ([]domain.Developer, error) {
	res, err := repo.dao.List(ctx)
	return slice.Map(res, func(idx int, src dao.Developer) domain.Developer {
		return repo.toDomain(src, nil, nil)
	}), err
}

func (repo *CachedDeveloperRepository) Detail(ctx context.Context, id int64) (domain.Developer, error) {
	if d, err := repo.cache.Get(ctx, id); err == nil {
		return d, nil
	}
	var (
		eg       errgroup.Group
		dev      dao.Developer
		contacts []dao.Contact
		resumes  []dao.Resume
	)
	eg.Go(func() error {
		var err error
		dev, err = repo.dao.GetById(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		contacts, err = repo.dao.Contacts(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		resumes, err = repo.dao.Resumes(ctx, id)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Developer{}, err
	}
	res := repo.toDomain(dev, contacts, resumes)
	if err := repo.cache.Set(ctx, res); err != nil {
		repo.logger.Error("缓存开发者失败",
			elog.Int64("id", id), elog.FieldErr(err))
	}
	return res, nil
}

func (repo *CachedDeveloperRepository) Create(ctx context.Context, d domain.Developer) (int64, error) {
	return repo.dao.Insert(ctx, repo.toEntity(d))
}

func (repo *CachedDeveloperRepository) Update(ctx context.Context, d domain.Developer) error {
	err := repo.dao.UpdateNonZeroFields(ctx, repo.toEntity(d))
	if err != nil {
		return err
	}
	return repo.cache.Delete(ctx, d.Id)
}

func (repo *CachedDeveloperRepository) UpdateAssignment(ctx context.Context, d domain.Developer) error {
	err := repo.dao.UpdateAssignment(ctx, repo.toEntity(d))
	if err != nil {
		return err
	}
	return repo.cache.Delete(ctx, d.Id)
}

func (repo *CachedDeveloperRepository) Delete(ctx context.Context, id int64) error {
	err := repo.dao.Delete(ctx, id)
	if err != nil {
		return err
	}
	return repo.cache.Delete(ctx, id)
}

func (repo *CachedDeveloperRepository) Contacts(ctx context.Context, developerId int64) ([]domain.Contact, error) {
	cs, err := repo.dao.Contacts(ctx, developerId)
	return slice.Map(cs, func(idx int, src dao.Contact) domain.Contact {
		return repo.contactToDomain(src)
	}), err
}

func (repo *CachedDeveloperRepository) AddContact(ctx context.Context, c domain.Contact) (int64, error) {
	id, err := repo.dao.InsertContact(ctx, dao.Contact{
		DeveloperId: c.DeveloperId,
		ContactDate: c.ContactDate,
		Memo:        c.Memo,
	})
	if err != nil {
		return 0, err
	}
	// 详情缓存里带着联系记录，直接作废
	if e := repo.cache.Delete(ctx, c.DeveloperId); e != nil {
		repo.logger.Error("清理开发者缓存失败",
			elog.Int64("id", c.DeveloperId), elog.FieldErr(e))
	}
	return id, nil
}

func (repo *CachedDeveloperRepository) Resumes(ctx context.Context, developerId int64) ([]domain.Resume, error) {
	rs, err := repo.dao.Resumes(ctx, developerId)
	return slice.Map(rs, func(idx int, src dao.Resume) domain.Resume {
		return repo.resumeToDomain(src)
	}), err
}

func (repo *CachedDeveloperRepository) AddResume(ctx context.Context, r domain.Resume) (int64, error) {
	id, err := repo.dao.InsertResume(ctx, dao.Resume{
		DeveloperId:  r.DeveloperId,
		Title:        r.Title,
		FilePath:     r.FilePath,
		UploadDate:   r.UploadDate,
		ReviewStatus: string(r.Review.Status),
	})
	if err != nil {
		return 0, err
	}
	if e := repo.cache.Delete(ctx, r.DeveloperId); e != nil {
		repo.logger.Error("清理开发者缓存失败",
			elog.Int64("id", r.DeveloperId), elog.FieldErr(e))
	}
	return id, nil
}

func (repo *CachedDeveloperRepository) ResumeById(ctx context.Context, id int64) (domain.Resume, error) {
	r, err := repo.dao.ResumeById(ctx, id)
	return repo.resumeToDomain(r), err
}

func (repo *CachedDeveloperRepository) SaveReview(ctx context.Context, r domain.Resume) error {
	err := repo.dao.UpdateResumeReview(ctx, dao.Resume{
		Id:             r.Id,
		ReviewStatus:   string(r.Review.Status),
		ReviewComments: r.Review.Comments,
		ReviewedBy:     r.Review.ReviewedBy,
		ReviewedAt:     r.Review.ReviewedAt,
	})
	if err != nil {
		return err
	}
	return repo.cache.Delete(ctx, r.DeveloperId)
}

func (repo *CachedDeveloperRepository) toDomain(d dao.Developer,
	contacts []dao.Contact, resumes []dao.Resume) domain.Developer {
	return domain.Developer{
		Id:                d.Id,
		SN:                d.SN,
		Name:              d.Name,
		BirthDate:         d.BirthDate,
		Email:             d.Email,
		Phone:             d.Phone,
		Skills:            d.Skills.Val,
		ExperienceYears:   d.ExperienceYears,
		Level:             domain.Level(d.Level),
		Type:              domain.Type(d.Type),
		CurrentProjects:   d.CurrentProjects.Val,
		ProjectStartDate:  d.ProjectStartDate,
		ProjectEndDate:    d.ProjectEndDate,
		NextProjects:      d.NextProjects.Val,
		ExpectedStartDate: d.ExpectedStartDate,
		PaymentDate:       d.PaymentDate,
		ExpectedSalary:    d.ExpectedSalary,
		PaymentStatus:     domain.PaymentStatus(d.PaymentStatus),
		Contacts: slice.Map(contacts, func(idx int, src dao.Contact) domain.Contact {
			return repo.contactToDomain(src)
		}),
		Resumes: slice.Map(resumes, func(idx int, src dao.Resume) domain.Resume {
			return repo.resumeToDomain(src)
		}),
		Ctime: d.Ctime,
		Utime: d.Utime,
	}
}

func (repo *CachedDeveloperRepository) toEntity(d domain.Developer) dao.Developer {
	return dao.Developer{
		Id:                d.Id,
		SN:                d.SN,
		Name:              d.Name,
		BirthDate:         d.BirthDate,
		Email:             d.Email,
		Phone:             d.Phone,
		Skills:            sqlx.JsonColumn[[]string]{Val: d.Skills, Valid: true},
		ExperienceYears:   d.ExperienceYears,
		Level:             string(d.Level),
		Type:              string(d.Type),
		CurrentProjects:   sqlx.JsonColumn[[]int64]{Val: d.CurrentProjects, Valid: true},
		ProjectStartDate:  d.ProjectStartDate,
		ProjectEndDate:    d.ProjectEndDate,
		NextProjects:      sqlx.JsonColumn[[]int64]{Val: d.NextProjects, Valid: true},
		ExpectedStartDate: d.ExpectedStartDate,
		PaymentDate:       d.PaymentDate,
		ExpectedSalary:    d.ExpectedSalary,
		PaymentStatus:     string(d.PaymentStatus),
	}
}

func (repo *CachedDeveloperRepository) contactToDomain(c dao.Contact) domain.Contact {
	return domain.Contact{
		Id:          c.Id,
		DeveloperId: c.DeveloperId,
		ContactDate: c.ContactDate,
		Memo:        c.Memo,
		Ctime:       c.Ctime,
	}
}

func (repo *CachedDeveloperRepository) resumeToDomain(r dao.Resume) domain.Resume {
	return domain.Resume{
		Id:          r.Id,
		DeveloperId: r.DeveloperId,
		Title:       r.Title,
		FilePath:    r.FilePath,
		UploadDate:  r.UploadDate,
		Review: domain.Review{
			Status:     domain.ReviewStatus(r.ReviewStatus),
			Comments:   r.ReviewComments,
			ReviewedBy: r.ReviewedBy,
			ReviewedAt: r.ReviewedAt,
		},
		Ctime: r.Ctime,
		Utime: r.Utime,
	}
}
