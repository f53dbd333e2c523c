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

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./developer.go -package=daomocks -destination=mocks/developer.mock.go DeveloperDAO
type DeveloperDAO interface {
	List(ctx context.Context) ([]Developer, error)
	GetById(ctx context.Context, id int64) (Developer, error)
	Insert(ctx context.Context, d Developer) (int64, error)
	UpdateNonZeroFields(ctx context.Context, d Developer) error
	// UpdateAssignment 投入状态允许清空，所以单独一条全量更新
	UpdateAssignment(ctx context.Context, d Developer) error
	Delete(ctx context.Context, id int64) error

	Contacts(ctx context.Context, developerId int64) ([]Contact, error)
	InsertContact(ctx context.Context, c Contact) (int64, error)

	Resumes(ctx context.Context, developerId int64) ([]Resume, error)
	InsertResume(ctx context.Context, r Resume) (int64, error)
	ResumeById(ctx context.Context, id int64) (Resume, error)
	UpdateResumeReview(ctx context.Context, r Resume) error
}

var _ DeveloperDAO = (*GORMDeveloperDAO)(nil)

type GORMDeveloperDAO struct {
	db *egorm.Component
}

func NewGORMDeveloperDAO(db *egorm.Component) DeveloperDAO {
	return &GORMDeveloperDAO{db: db}
}

func (dao *GORMDeveloperDAO) List(ctx context.Context) ([]Developer, error) {
	var res []Developer
	err := dao.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMDeveloperDAO) GetById(ctx context.Context, id int64) (Developer, error) {
	var res Developer
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMDeveloperDAO) Insert(ctx context.Context, d Developer) (int64, error) {
	now := time.Now().UnixMilli()
	d.Ctime = now
	d.Utime = now
	err := dao.db.WithContext(ctx).Create(&d).Error
	return d.Id, err
}

func (dao *GORMDeveloperDAO) UpdateNonZeroFields(ctx context.Context, d Developer) error {
	d.Utime = time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Updates(&d).Error
}

func (dao *GORMDeveloperDAO) UpdateAssignment(ctx context.Context, d Developer) error {
	return dao.db.WithContext(ctx).Model(&Developer{}).
		Where("id = ?", d.Id).
		Updates(map[string]any{
			"current_projects":    d.CurrentProjects,
			"project_start_date":  d.ProjectStartDate,
			"project_end_date":    d.ProjectEndDate,
			"next_projects":       d.NextProjects,
			"expected_start_date": d.ExpectedStartDate,
			"utime":               time.Now().UnixMilli(),
		}).Error
}

func (dao *GORMDeveloperDAO) Delete(ctx context.Context, id int64) error {
	// 联系记录和简历一起删，项目侧引用这个 id 的地方不动
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Contact{}, "developer_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&Resume{}, "developer_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Developer{}, "id = ?", id).Error
	})
}

func (dao *GORMDeveloperDAO) Contacts(ctx context.Context, developerId int64) ([]Contact, error) {
	var res []Contact
	err := dao.db.WithContext(ctx).
		Where("developer_id = ?", developerId).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMDeveloperDAO) InsertContact(ctx context.Context, c Contact) (int64, error) {
	c.Ctime = time.Now().UnixMilli()
	err := dao.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (dao *GORMDeveloperDAO) Resumes(ctx context.Context, developerId int64) ([]Resume, error) {
	var res []Resume
	err := dao.db.WithContext(ctx).
		Where("developer_id = ?", developerId).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMDeveloperDAO) InsertResume(ctx context.Context, r Resume) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := dao.db.WithContext(ctx).Create(&r).Error
	return r.Id, err
}

func (dao *GORMDeveloperDAO) ResumeById(ctx context.Context, id int64) (Resume, error) {
	var res Resume
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMDeveloperDAO) UpdateResumeReview(ctx context.Context, r Resume) error {
	return dao.db.WithContext(ctx).Model(&Resume{}).
		Where("id = ?", r.Id).
		Updates(map[string]any{
			"review_status":   r.ReviewStatus,
			"review_comments": r.ReviewComments,
			"reviewed_by":     r.ReviewedBy,
			"reviewed_at":     r.ReviewedAt,
			"utime":           time.Now().UnixMilli(),
		}).Error
}
