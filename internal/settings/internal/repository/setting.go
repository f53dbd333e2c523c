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

	"github.com/dpickhq/dpick/internal/settings/internal/domain"
	"github.com/dpickhq/dpick/internal/settings/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrSettingNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./setting.go -package=repomocks -destination=mocks/setting.mock.go SettingRepository
type SettingRepository interface {
	ApiSetting(ctx context.Context) (domain.ApiSetting, error)
	SaveApiSetting(ctx context.Context, s domain.ApiSetting) error

	Billing(ctx context.Context) (domain.BillingInfo, error)
	SaveBilling(ctx context.Context, b domain.BillingInfo) error

	AddTransaction(ctx context.Context, t domain.Transaction) (int64, error)
	Transactions(ctx context.Context) ([]domain.Transaction, error)
}

var _ SettingRepository = (*settingRepository)(nil)

type settingRepository struct {
	dao dao.SettingDAO
}

func NewSettingRepository(d dao.SettingDAO) SettingRepository {
	return &settingRepository{dao: d}
}

func (repo *settingRepository) ApiSetting(ctx context.Context) (domain.ApiSetting, error) {
	s, err := repo.dao.GetApiSetting(ctx)
	if err != nil {
		return domain.ApiSetting{}, err
	}
	return domain.ApiSetting{
		Id:           s.Id,
		SmtpServer:   s.SmtpServer,
		SmtpPort:     s.SmtpPort,
		SmtpUsername: s.SmtpUsername,
		SmtpPassword: s.SmtpPassword,
		SmsApiUrl:    s.SmsApiUrl,
		SmsApiKey:    s.SmsApiKey,
		SmsApiSecret: s.SmsApiSecret,
		Utime:        s.Utime,
	}, nil
}

func (repo *settingRepository) SaveApiSetting(ctx context.Context, s domain.ApiSetting) error {
	return repo.dao.SaveApiSetting(ctx, dao.ApiSetting{
		SmtpServer:   s.SmtpServer,
		SmtpPort:     s.SmtpPort,
		SmtpUsername: s.SmtpUsername,
		SmtpPassword: s.SmtpPassword,
		SmsApiUrl:    s.SmsApiUrl,
		SmsApiKey:    s.SmsApiKey,
		SmsApiSecret: s.SmsApiSecret,
	})
}

func (repo *settingRepository) Billing(ctx context.Context) (domain.BillingInfo, error) {
	b, err := repo.dao.GetBilling(ctx)
	if err != nil {
		return domain.BillingInfo{}, err
	}
	return domain.BillingInfo{
		Id:             b.Id,
		CardNumber:     b.CardNumber,
		CardholderName: b.CardholderName,
		ExpiryDate:     b.ExpiryDate,
		BillingAddress: b.BillingAddress,
		CurrentBalance: b.CurrentBalance,
		Utime:          b.Utime,
	}, nil
}

func (repo *settingRepository) SaveBilling(ctx context.Context, b domain.BillingInfo) error {
	return repo.dao.SaveBilling(ctx, dao.BillingInfo{
		CardNumber:     b.CardNumber,
		CardholderName: b.CardholderName,
		ExpiryDate:     b.ExpiryDate,
		BillingAddress: b.BillingAddress,
	})
}

func (repo *settingRepository) AddTransaction(ctx context.Context, t domain.Transaction) (int64, error) {
	return repo.dao.AddTransaction(ctx, dao.Transaction{
		SN:          t.SN,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Description: t.Description,
	}, t.Delta())
}

func (repo *settingRepository) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	ts, err := repo.dao.Transactions(ctx)
	return slice.Map(ts, func(idx int, src dao.Transaction) domain.Transaction {
		return domain.Transaction{
			Id:          src.Id,
			SN:          src.SN,
			Amount:      src.Amount,
			Type:        domain.TransactionType(src.Type),
			Description: src.Description,
			Ctime:       src.Ctime,
		}
	}), err
}
