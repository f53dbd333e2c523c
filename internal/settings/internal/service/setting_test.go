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
	"testing"

	"github.com/bwmarrin/snowflake"
	emailmocks "github.com/dpickhq/dpick/internal/email/mocks"
	"github.com/dpickhq/dpick/internal/settings/internal/domain"
	repomocks "github.com/dpickhq/dpick/internal/settings/internal/repository/mocks"
	smsmocks "github.com/dpickhq/dpick/internal/sms/client/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, repo *repomocks.MockSettingRepository,
	emailSvc *emailmocks.MockService, smsClient *smsmocks.MockClient) SettingsService {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return NewSettingsService(repo, emailSvc, smsClient, node, "noreply@dpick.kr")
}

func TestSettingsService_SaveApiSettings(t *testing.T) {
	t.Parallel()
	stored := domain.ApiSetting{
		Id:           1,
		SmtpServer:   "smtp.example.com",
		SmtpPort:     587,
		SmtpUsername: "dpick",
		SmtpPassword: "real-smtp-password",
		SmsApiUrl:    "https://sms.example.com",
		SmsApiKey:    "key",
		SmsApiSecret: "real-sms-secret",
	}

	testCases := []struct {
		name string
		in   domain.ApiSetting
		// wantSaved 真正落库的密钥
		wantSmtpPassword string
		wantSmsApiSecret string
	}{
		{
			name: "传占位串保留旧密钥",
			in: domain.ApiSetting{
				SmtpServer:   "smtp.example.com",
				SmtpPassword: domain.Masked,
				SmsApiSecret: domain.Masked,
			},
			wantSmtpPassword: "real-smtp-password",
			wantSmsApiSecret: "real-sms-secret",
		},
		{
			name: "传空串也保留旧密钥",
			in: domain.ApiSetting{
				SmtpServer: "smtp.example.com",
			},
			wantSmtpPassword: "real-smtp-password",
			wantSmsApiSecret: "real-sms-secret",
		},
		{
			name: "传新值就换掉",
			in: domain.ApiSetting{
				SmtpServer:   "smtp.example.com",
				SmtpPassword: "new-password",
				SmsApiSecret: "new-secret",
			},
			wantSmtpPassword: "new-password",
			wantSmsApiSecret: "new-secret",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockSettingRepository(ctrl)
			repo.EXPECT().ApiSetting(gomock.Any()).Return(stored, nil)
			repo.EXPECT().SaveApiSetting(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, s domain.ApiSetting) error {
					assert.Equal(t, tc.wantSmtpPassword, s.SmtpPassword)
					assert.Equal(t, tc.wantSmsApiSecret, s.SmsApiSecret)
					return nil
				})
			svc := newTestService(t, repo,
				emailmocks.NewMockService(ctrl), smsmocks.NewMockClient(ctrl))

			got, err := svc.SaveApiSettings(context.Background(), tc.in)
			require.NoError(t, err)
			// 返回值里密钥永远是抹掉的
			assert.Equal(t, domain.Masked, got.SmtpPassword)
			assert.Equal(t, domain.Masked, got.SmsApiSecret)
		})
	}
}

func TestSettingsService_SaveBilling(t *testing.T) {
	t.Parallel()
	stored := domain.BillingInfo{
		Id:             1,
		CardNumber:     "1234-5678-9012-3456",
		CardholderName: "홍길동",
		CurrentBalance: 1000000,
	}

	t.Run("抹过的卡号传回来保留旧卡号", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockSettingRepository(ctrl)
		repo.EXPECT().Billing(gomock.Any()).Return(stored, nil)
		repo.EXPECT().SaveBilling(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, b domain.BillingInfo) error {
				assert.Equal(t, "1234-5678-9012-3456", b.CardNumber)
				return nil
			})
		svc := newTestService(t, repo,
			emailmocks.NewMockService(ctrl), smsmocks.NewMockClient(ctrl))

		got, err := svc.SaveBilling(context.Background(), domain.BillingInfo{
			CardNumber:     "****-****-****-3456",
			CardholderName: "홍길동",
		})
		require.NoError(t, err)
		assert.Equal(t, "****-****-****-3456", got.CardNumber)
		// 余额不随保存接口变
		assert.Equal(t, int64(1000000), got.CurrentBalance)
	})

	t.Run("新卡号直接换", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockSettingRepository(ctrl)
		repo.EXPECT().Billing(gomock.Any()).Return(stored, nil)
		repo.EXPECT().SaveBilling(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, b domain.BillingInfo) error {
				assert.Equal(t, "9999-8888-7777-6666", b.CardNumber)
				return nil
			})
		svc := newTestService(t, repo,
			emailmocks.NewMockService(ctrl), smsmocks.NewMockClient(ctrl))

		got, err := svc.SaveBilling(context.Background(), domain.BillingInfo{
			CardNumber: "9999-8888-7777-6666",
		})
		require.NoError(t, err)
		assert.Equal(t, "****-****-****-6666", got.CardNumber)
	})
}

func TestSettingsService_Charge(t *testing.T) {
	t.Parallel()
	t.Run("正常充值", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockSettingRepository(ctrl)
		repo.EXPECT().AddTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, tr domain.Transaction) (int64, error) {
				assert.Equal(t, int64(500000), tr.Amount)
				assert.Equal(t, domain.TransactionCharge, tr.Type)
				assert.Equal(t, "요금 충전", tr.Description)
				assert.NotEmpty(t, tr.SN)
				return 3, nil
			})
		svc := newTestService(t, repo,
			emailmocks.NewMockService(ctrl), smsmocks.NewMockClient(ctrl))

		tr, err := svc.Charge(context.Background(), 500000, "")
		require.NoError(t, err)
		assert.Equal(t, int64(3), tr.Id)
	})

	t.Run("金额非正数", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockSettingRepository(ctrl)
		svc := newTestService(t, repo,
			emailmocks.NewMockService(ctrl), smsmocks.NewMockClient(ctrl))

		_, err := svc.Charge(context.Background(), 0, "요금 충전")
		assert.Equal(t, ErrInvalidAmount, err)
		_, err = svc.Charge(context.Background(), -100, "요금 충전")
		assert.Equal(t, ErrInvalidAmount, err)
	})
}
