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
	"gorm.io/gorm/clause"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

// settingId 两张单行表共用的固定主键
const settingId = 1

//go:generate mockgen -source=./setting.go -package=daomocks -destination=mocks/setting.mock.go SettingDAO
type SettingDAO interface {
	GetApiSetting(ctx context.Context) (ApiSetting, error)
	SaveApiSetting(ctx context.Context, s ApiSetting) error

	GetBilling(ctx context.Context) (BillingInfo, error)
	SaveBilling(ctx context.Context, b BillingInfo) error

	// AddTransaction 落一笔流水并按 delta 调余额，两步在一个事务里
	AddTransaction(ctx context.Context, t Transaction, delta int64) (int64, error)
	Transactions(ctx context.Context) ([]Transaction, error)
}

var _ SettingDAO = (*GORMSettingDAO)(nil)

type GORMSettingDAO struct {
	db *egorm.Component
}

func NewGORMSettingDAO(db *egorm.Component) SettingDAO {
	return &GORMSettingDAO{db: db}
}

func (dao *GORMSettingDAO) GetApiSetting(ctx context.Context) (ApiSetting, error) {
	var res ApiSetting
	err := dao.db.WithContext(ctx).Where("id = ?", settingId).First(&res).Error
	return res, err
}

func (dao *GORMSettingDAO) SaveApiSetting(ctx context.Context, s ApiSetting) error {
	now := time.Now().UnixMilli()
	s.Id = settingId
	s.Ctime = now
	s.Utime = now
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{
			"smtp_server", "smtp_port", "smtp_username", "smtp_password",
			"sms_api_url", "sms_api_key", "sms_api_secret", "utime",
		}),
	}).Create(&s).Error
}

func (dao *GORMSettingDAO) GetBilling(ctx context.Context) (BillingInfo, error) {
	var res BillingInfo
	err := dao.db.WithContext(ctx).Where("id = ?", settingId).First(&res).Error
	return res, err
}

func (dao *GORMSettingDAO) SaveBilling(ctx context.Context, b BillingInfo) error {
	now := time.Now().UnixMilli()
	b.Id = settingId
	b.Ctime = now
	b.Utime = now
	// 余额不走这条路，只能靠流水动
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{
			"card_number", "cardholder_name", "expiry_date",
			"billing_address", "utime",
		}),
	}).Create(&b).Error
}

func (dao *GORMSettingDAO) AddTransaction(ctx context.Context, t Transaction, delta int64) (int64, error) {
	t.Ctime = time.Now().UnixMilli()
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
		return tx.Model(&BillingInfo{}).
			Where("id = ?", settingId).
			Updates(map[string]any{
				"current_balance": gorm.Expr("current_balance + ?", delta),
				"utime":           t.Ctime,
			}).Error
	})
	return t.Id, err
}

func (dao *GORMSettingDAO) Transactions(ctx context.Context) ([]Transaction, error) {
	var res []Transaction
	err := dao.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, err
}
