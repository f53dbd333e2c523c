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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./project.go -package=daomocks -destination=mocks/project.mock.go ProjectDAO
type ProjectDAO interface {
	List(ctx context.Context) ([]Project, error)
	GetById(ctx context.Context, id int64) (Project, error)
	Insert(ctx context.Context, p Project) (int64, error)
	UpdateNonZeroFields(ctx context.Context, p Project) error
	// UpdateStaffing 团队和人月台账要支持清零，所以单独一条全量更新
	UpdateStaffing(ctx context.Context, p Project) error
	Delete(ctx context.Context, id int64) error

	Announcements(ctx context.Context, projectId int64) ([]Announcement, error)
	InsertAnnouncement(ctx context.Context, a Announcement) (int64, error)
}

var _ ProjectDAO = (*GORMProjectDAO)(nil)

type GORMProjectDAO struct {
	db *egorm.Component
}

func NewGORMProjectDAO(db *egorm.Component) ProjectDAO {
	return &GORMProjectDAO{db: db}
}

func (dao *GORMProjectDAO) List(ctx context.Context) ([]Project, error) {
	var res []Project
	err := dao.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) GetById(ctx context.Context, id int64) (Project, error) {
	var res Project
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) Insert(ctx context.Context, p Project) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := dao.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (dao *GORMProjectDAO) UpdateNonZeroFields(ctx context.Context, p Project) error {
	p.Utime = time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Updates(&p).Error
}

func (dao *GORMProjectDAO) UpdateStaffing(ctx context.Context, p Project) error {
	return dao.db.WithContext(ctx).Model(&Project{}).
		Where("id = ?", p.Id).
		Updates(map[string]any{
			"team":         p.Team,
			"confirmed_mm": p.ConfirmedMM,
			"utime":        time.Now().UnixMilli(),
		}).Error
}

func (dao *GORMProjectDAO) Delete(ctx context.Context, id int64) error {
	// 公告一起删，开发者侧引用这个项目 id 的地方不动
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Announcement{}, "project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Project{}, "id = ?", id).Error
	})
}

func (dao *GORMProjectDAO) Announcements(ctx context.Context, projectId int64) ([]Announcement, error) {
	var res []Announcement
	err := dao.db.WithContext(ctx).
		Where("project_id = ?", projectId).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) InsertAnnouncement(ctx context.Context, a Announcement) (int64, error) {
	a.Ctime = time.Now().UnixMilli()
	err := dao.db.WithContext(ctx).Create(&a).Error
	return a.Id, err
}
