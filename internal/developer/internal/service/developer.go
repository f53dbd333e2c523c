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

package service

import (
	"context"
	"errors"
	"time"

	"github.com/dpickhq/dpick/internal/developer/internal/domain"
	"github.com/dpickhq/dpick/internal/developer/internal/repository"
	"github.com/ecodeclub/ekit/slice"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrDeveloperNotFound   = repository.ErrDeveloperNotFound
	ErrInvalidReviewStatus = errors.New("非法的审阅状态")
)

//go:generate mockgen -source=./developer.go -package=svcmocks -destination=../../mocks/developer.mock.go DeveloperService
type DeveloperService interface {
	// List 返回过滤后的花名册，顺序和入库顺序一致
	List(ctx context.Context, f domain.RosterFilter) ([]domain.Developer, error)
	Detail(ctx context.Context, id int64) (domain.Developer, error)
	Create(ctx context.Context, d domain.Developer) (domain.Developer, error)
	Update(ctx context.Context, d domain.Developer) error
	Delete(ctx context.Context, id int64) error

	Contacts(ctx context.Context, developerId int64) ([]domain.Contact, error)
	AddContact(ctx context.Context, c domain.Contact) (domain.Contact, error)

	Resumes(ctx context.Context, developerId int64) ([]domain.Resume, error)
	AddResume(ctx context.Context, r domain.Resume) (domain.Resume, error)
	// ReviewResume 审阅人可以把状态改成四个值里的任意一个，
	// 顺带记下审阅人和时间
	ReviewResume(ctx context.Context, resumeId int64, review domain.Review) (domain.Resume, error)

	// AssignProject 项目模块确认投入后同步开发者侧的在投列表
	AssignProject(ctx context.Context, developerId int64, projectId int64) error
	// UnassignProject 把 projectId 从在投列表里全部剔掉
	UnassignProject(ctx context.Context, developerId int64, projectId int64) error
}

var _ DeveloperService = (*developerService)(nil)

type developerService struct {
	repo repository.DeveloperRepository
}

func NewDeveloperService(repo repository.DeveloperRepository) DeveloperService {
	return &developerService{repo: repo}
}

func (svc *developerService) List(ctx context.Context, f domain.RosterFilter) ([]domain.Developer, error) {
	roster, err := svc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(roster, time.Now()), nil
}

func (svc *developerService) Detail(ctx context.Context, id int64) (domain.Developer, error) {
	return svc.repo.Detail(ctx, id)
}

func (svc *developerService) Create(ctx context.Context, d domain.Developer) (domain.Developer, error) {
	d.SN = shortuuid.New()
	if d.PaymentStatus == "" {
		d.PaymentStatus = domain.PaymentStatusUnpaid
	}
	id, err := svc.repo.Create(ctx, d)
	if err != nil {
		return domain.Developer{}, err
	}
	d.Id = id
	return d, nil
}

func (svc *developerService) Update(ctx context.Context, d domain.Developer) error {
	// SN 不让改
	d.SN = ""
	return svc.repo.Update(ctx, d)
}

func (svc *developerService) Delete(ctx context.Context, id int64) error {
	return svc.repo.Delete(ctx, id)
}

func (svc *developerService) Contacts(ctx context.Context, developerId int64) ([]domain.Contact, error) {
	return svc.repo.Contacts(ctx, developerId)
}

func (svc *developerService) AddContact(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	if c.ContactDate == "" {
		c.ContactDate = time.Now().Format(time.DateOnly)
	}
	id, err := svc.repo.AddContact(ctx, c)
	if err != nil {
		return domain.Contact{}, err
	}
	c.Id = id
	return c, nil
}

func (svc *developerService) Resumes(ctx context.Context, developerId int64) ([]domain.Resume, error) {
	return svc.repo.Resumes(ctx, developerId)
}

func (svc *developerService) AddResume(ctx context.Context, r domain.Resume) (domain.Resume, error) {
	if r.UploadDate == "" {
		r.UploadDate = time.Now().Format(time.DateOnly)
	}
	r.Review = domain.Review{Status: domain.ReviewStatusPending}
	id, err := svc.repo.AddResume(ctx, r)
	if err != nil {
		return domain.Resume{}, err
	}
	r.Id = id
	return r, nil
}

func (svc *developerService) ReviewResume(ctx context.Context, resumeId int64, review domain.Review) (domain.Resume, error) {
	if !review.Status.Valid() {
		return domain.Resume{}, ErrInvalidReviewStatus
	}
	r, err := svc.repo.ResumeById(ctx, resumeId)
	if err != nil {
		return domain.Resume{}, err
	}
	review.ReviewedAt = time.Now().UnixMilli()
	r.Review = review
	if err = svc.repo.SaveReview(ctx, r); err != nil {
		return domain.Resume{}, err
	}
	return r, nil
}

func (svc *developerService) AssignProject(ctx context.Context, developerId int64, projectId int64) error {
	d, err := svc.repo.Detail(ctx, developerId)
	if err != nil {
		return err
	}
	// 和项目侧的 team 语义保持一致：不去重
	d.CurrentProjects = append(d.CurrentProjects, projectId)
	return svc.repo.UpdateAssignment(ctx, d)
}

func (svc *developerService) UnassignProject(ctx context.Context, developerId int64, projectId int64) error {
	d, err := svc.repo.Detail(ctx, developerId)
	if err != nil {
		return err
	}
	d.CurrentProjects = slice.FilterDelete(d.CurrentProjects, func(idx int, src int64) bool {
		return src == projectId
	})
	return svc.repo.UpdateAssignment(ctx, d)
}
