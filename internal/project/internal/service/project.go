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
	"fmt"
	"time"

	"github.com/dpickhq/dpick/internal/developer"
	"github.com/dpickhq/dpick/internal/project/internal/domain"
	"github.com/dpickhq/dpick/internal/project/internal/event"
	"github.com/dpickhq/dpick/internal/project/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrProjectNotFound = repository.ErrProjectNotFound
	ErrEmptySelection  = errors.New("没有选中任何开发者")
	ErrInvalidChannel  = errors.New("不支持的发送渠道")
)

//go:generate mockgen -source=./project.go -package=svcmocks -destination=mocks/project.mock.go ProjectService
type ProjectService interface {
	List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, error)
	Detail(ctx context.Context, id int64) (domain.Project, error)
	Create(ctx context.Context, p domain.Project) (domain.Project, error)
	Update(ctx context.Context, p domain.Project) error
	Delete(ctx context.Context, id int64) error

	// Assign 把选中的开发者整批投入项目。
	// 落库失败时直接报错，台账不动
	Assign(ctx context.Context, projectId int64, developerIds []int64) (domain.Project, error)
	// Remove 把开发者从团队里剔掉，人月固定减一
	Remove(ctx context.Context, projectId int64, developerId int64) (domain.Project, error)

	Announcements(ctx context.Context, projectId int64) ([]domain.Announcement, error)
	// Announce 先把公告真的发出去，发成功了才落库
	Announce(ctx context.Context, a domain.Announcement) (domain.Announcement, error)
}

var _ ProjectService = (*projectService)(nil)

type projectService struct {
	repo     repository.ProjectRepository
	devSvc   developer.DeveloperService
	notifier Notifier
	producer event.AnnouncementEventProducer
	logger   *elog.Component
}

func NewProjectService(repo repository.ProjectRepository,
	devSvc developer.DeveloperService,
	notifier Notifier,
	producer event.AnnouncementEventProducer) ProjectService {
	return &projectService{
		repo:     repo,
		devSvc:   devSvc,
		notifier: notifier,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (svc *projectService) List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, error) {
	ps, err := svc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(ps), nil
}

func (svc *projectService) Detail(ctx context.Context, id int64) (domain.Project, error) {
	return svc.repo.Detail(ctx, id)
}

func (svc *projectService) Create(ctx context.Context, p domain.Project) (domain.Project, error) {
	p.SN = shortuuid.New()
	if p.Status == "" {
		p.Status = domain.StatusPlanned
	}
	id, err := svc.repo.Create(ctx, p)
	if err != nil {
		return domain.Project{}, err
	}
	p.Id = id
	return p, nil
}

func (svc *projectService) Update(ctx context.Context, p domain.Project) error {
	// SN 不让改
	p.SN = ""
	return svc.repo.Update(ctx, p)
}

func (svc *projectService) Delete(ctx context.Context, id int64) error {
	return svc.repo.Delete(ctx, id)
}

func (svc *projectService) Assign(ctx context.Context, projectId int64, developerIds []int64) (domain.Project, error) {
	if len(developerIds) == 0 {
		return domain.Project{}, ErrEmptySelection
	}
	p, err := svc.repo.Detail(ctx, projectId)
	if err != nil {
		return domain.Project{}, err
	}
	p.AssignTeam(developerIds)
	if err = svc.repo.UpdateStaffing(ctx, p); err != nil {
		return domain.Project{}, fmt.Errorf("投入开发者失败: %w", err)
	}
	// 项目侧落库之后再回写开发者侧的在投列表。
	// 回写挂了只记日志，台账以项目侧为准
	for _, devId := range developerIds {
		if e := svc.devSvc.AssignProject(ctx, devId, projectId); e != nil {
			svc.logger.Error("回写开发者在投项目失败",
				elog.Int64("developerId", devId),
				elog.Int64("projectId", projectId),
				elog.FieldErr(e))
		}
	}
	return p, nil
}

func (svc *projectService) Remove(ctx context.Context, projectId int64, developerId int64) (domain.Project, error) {
	p, err := svc.repo.Detail(ctx, projectId)
	if err != nil {
		return domain.Project{}, err
	}
	p.RemoveMember(developerId)
	if err = svc.repo.UpdateStaffing(ctx, p); err != nil {
		return domain.Project{}, fmt.Errorf("移除开发者失败: %w", err)
	}
	if e := svc.devSvc.UnassignProject(ctx, developerId, projectId); e != nil {
		svc.logger.Error("回写开发者在投项目失败",
			elog.Int64("developerId", developerId),
			elog.Int64("projectId", projectId),
			elog.FieldErr(e))
	}
	return p, nil
}

func (svc *projectService) Announcements(ctx context.Context, projectId int64) ([]domain.Announcement, error) {
	return svc.repo.Announcements(ctx, projectId)
}

func (svc *projectService) Announce(ctx context.Context, a domain.Announcement) (domain.Announcement, error) {
	if !a.Channel.Valid() {
		return domain.Announcement{}, ErrInvalidChannel
	}
	// 公告归属的项目必须存在
	if _, err := svc.repo.Detail(ctx, a.ProjectId); err != nil {
		return domain.Announcement{}, err
	}
	a.SentDate = time.Now().Format(time.DateOnly)
	if err := svc.notifier.Notify(ctx, a); err != nil {
		return domain.Announcement{}, fmt.Errorf("发送公告失败: %w", err)
	}
	id, err := svc.repo.AddAnnouncement(ctx, a)
	if err != nil {
		return domain.Announcement{}, err
	}
	a.Id = id
	evt := event.AnnouncementEvent{
		ProjectId: a.ProjectId,
		Channel:   string(a.Channel),
		Content:   a.Content,
		Recipient: a.Recipients,
		SentDate:  a.SentDate,
	}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送公告事件失败",
			elog.Int64("projectId", a.ProjectId), elog.FieldErr(e))
	}
	return a, nil
}
