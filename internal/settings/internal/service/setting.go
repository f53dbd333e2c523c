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

	"github.com/bwmarrin/snowflake"
	"github.com/dpickhq/dpick/internal/email"
	"github.com/dpickhq/dpick/internal/settings/internal/domain"
	"github.com/dpickhq/dpick/internal/settings/internal/repository"
	"github.com/dpickhq/dpick/internal/sms/client"
)

var (
	ErrInvalidAmount = errors.New("充值金额必须是正数")
)

//go:generate mockgen -source=./setting.go -package=svcmocks -destination=mocks/setting.mock.go SettingsService
type SettingsService interface {
	// ApiSettings 密钥字段已经抹掉
	ApiSettings(ctx context.Context) (domain.ApiSetting, error)
	// SaveApiSettings 密钥传空串或者占位串表示不改
	SaveApiSettings(ctx context.Context, s domain.ApiSetting) (domain.ApiSetting, error)

	// Billing 卡号只留末四位
	Billing(ctx context.Context) (domain.BillingInfo, error)
	SaveBilling(ctx context.Context, b domain.BillingInfo) (domain.BillingInfo, error)

	// Charge 充值。落流水的同时加余额
	Charge(ctx context.Context, amount int64, description string) (domain.Transaction, error)
	Transactions(ctx context.Context) ([]domain.Transaction, error)

	// TestEmail 真发一封，成功与否如实返回
	TestEmail(ctx context.Context, to string, subject string, content string) error
	// TestSMS 真发一条，成功与否如实返回
	TestSMS(ctx context.Context, to string, message string) error
}

var _ SettingsService = (*settingsService)(nil)

type settingsService struct {
	repo      repository.SettingRepository
	emailSvc  email.Service
	smsClient client.Client
	idNode    *snowflake.Node
	fromAddr  string
}

func NewSettingsService(repo repository.SettingRepository,
	emailSvc email.Service, smsClient client.Client,
	idNode *snowflake.Node, fromAddr string) SettingsService {
	return &settingsService{
		repo:      repo,
		emailSvc:  emailSvc,
		smsClient: smsClient,
		idNode:    idNode,
		fromAddr:  fromAddr,
	}
}

func (svc *settingsService) ApiSettings(ctx context.Context) (domain.ApiSetting, error) {
	s, err := svc.repo.ApiSetting(ctx)
	if err != nil {
		return domain.ApiSetting{}, err
	}
	return s.Redacted(), nil
}

func (svc *settingsService) SaveApiSettings(ctx context.Context, s domain.ApiSetting) (domain.ApiSetting, error) {
	cur, err := svc.repo.ApiSetting(ctx)
	if err != nil {
		return domain.ApiSetting{}, err
	}
	if s.SmtpPassword == "" || s.SmtpPassword == domain.Masked {
		s.SmtpPassword = cur.SmtpPassword
	}
	if s.SmsApiSecret == "" || s.SmsApiSecret == domain.Masked {
		s.SmsApiSecret = cur.SmsApiSecret
	}
	if err = svc.repo.SaveApiSetting(ctx, s); err != nil {
		return domain.ApiSetting{}, err
	}
	return s.Redacted(), nil
}

func (svc *settingsService) Billing(ctx context.Context) (domain.BillingInfo, error) {
	b, err := svc.repo.Billing(ctx)
	if err != nil {
		return domain.BillingInfo{}, err
	}
	return b.Redacted(), nil
}

func (svc *settingsService) SaveBilling(ctx context.Context, b domain.BillingInfo) (domain.BillingInfo, error) {
	cur, err := svc.repo.Billing(ctx)
	if err != nil {
		return domain.BillingInfo{}, err
	}
	// 前端会把抹过的卡号原样传回来，这种情况保留旧卡号
	if b.CardNumber == "" || b.CardNumber == cur.Redacted().CardNumber {
		b.CardNumber = cur.CardNumber
	}
	if err = svc.repo.SaveBilling(ctx, b); err != nil {
		return domain.BillingInfo{}, err
	}
	b.CurrentBalance = cur.CurrentBalance
	return b.Redacted(), nil
}

func (svc *settingsService) Charge(ctx context.Context, amount int64, description string) (domain.Transaction, error) {
	if amount <= 0 {
		return domain.Transaction{}, ErrInvalidAmount
	}
	if description == "" {
		description = "요금 충전"
	}
	t := domain.Transaction{
		SN:          svc.idNode.Generate().String(),
		Amount:      amount,
		Type:        domain.TransactionCharge,
		Description: description,
	}
	id, err := svc.repo.AddTransaction(ctx, t)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("充值落账失败: %w", err)
	}
	t.Id = id
	return t, nil
}

func (svc *settingsService) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	return svc.repo.Transactions(ctx)
}

func (svc *settingsService) TestEmail(ctx context.Context, to string, subject string, content string) error {
	return svc.emailSvc.SendMail(ctx, email.Mail{
		From:    svc.fromAddr,
		To:      to,
		Subject: subject,
		Body:    []byte(content),
	})
}

func (svc *settingsService) TestSMS(ctx context.Context, to string, message string) error {
	resp, err := svc.smsClient.Send(client.SendReq{
		PhoneNumbers: []string{to},
		Content:      message,
	})
	if err != nil {
		return err
	}
	for phone, status := range resp.PhoneNumbers {
		if status.Code != client.OK {
			return fmt.Errorf("%w: %s %s", client.ErrSendFailed, phone, status.Message)
		}
	}
	return nil
}
