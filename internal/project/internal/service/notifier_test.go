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
	"testing"

	"github.com/dpickhq/dpick/internal/email"
	emailmocks "github.com/dpickhq/dpick/internal/email/mocks"
	"github.com/dpickhq/dpick/internal/project/internal/domain"
	"github.com/dpickhq/dpick/internal/sms/client"
	smsmocks "github.com/dpickhq/dpick/internal/sms/client/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestChannelNotifier_Notify(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		a       domain.Announcement
		setup   func(emailSvc *emailmocks.MockService, smsClient *smsmocks.MockClient)
		wantErr error
	}{
		{
			name: "邮件渠道，收件人拼成一个串",
			a: domain.Announcement{
				Channel:    domain.ChannelEmail,
				Content:    "백엔드 개발자 모집 공고",
				Recipients: []string{"a@example.com", "b@example.com"},
			},
			setup: func(emailSvc *emailmocks.MockService, smsClient *smsmocks.MockClient) {
				emailSvc.EXPECT().SendMail(gomock.Any(), email.Mail{
					From:    "noreply@dpick.kr",
					To:      "a@example.com,b@example.com",
					Subject: "[D.PICK] 프로젝트 공고",
					Body:    []byte("백엔드 개발자 모집 공고"),
				}).Return(nil)
			},
		},
		{
			name: "短信渠道全部成功",
			a: domain.Announcement{
				Channel:    domain.ChannelSMS,
				Content:    "모집 공고",
				Recipients: []string{"01011112222", "01033334444"},
			},
			setup: func(emailSvc *emailmocks.MockService, smsClient *smsmocks.MockClient) {
				smsClient.EXPECT().Send(client.SendReq{
					PhoneNumbers: []string{"01011112222", "01033334444"},
					Content:      "모집 공고",
				}).Return(client.SendResp{
					PhoneNumbers: map[string]client.SendRespStatus{
						"01011112222": {Code: client.OK},
						"01033334444": {Code: client.OK},
					},
				}, nil)
			},
		},
		{
			name: "短信有一个号码失败",
			a: domain.Announcement{
				Channel:    domain.ChannelSMS,
				Content:    "모집 공고",
				Recipients: []string{"01011112222"},
			},
			setup: func(emailSvc *emailmocks.MockService, smsClient *smsmocks.MockClient) {
				smsClient.EXPECT().Send(gomock.Any()).Return(client.SendResp{
					PhoneNumbers: map[string]client.SendRespStatus{
						"01011112222": {Code: "InvalidNumber", Message: "号码不对"},
					},
				}, nil)
			},
			wantErr: client.ErrSendFailed,
		},
		{
			name: "邮件发送报错",
			a: domain.Announcement{
				Channel:    domain.ChannelEmail,
				Recipients: []string{"a@example.com"},
			},
			setup: func(emailSvc *emailmocks.MockService, smsClient *smsmocks.MockClient) {
				emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
					Return(errors.New("smtp 连不上"))
			},
			wantErr: errors.New("smtp 连不上"),
		},
		{
			name: "渠道非法",
			a: domain.Announcement{
				Channel: "fax",
			},
			setup:   func(emailSvc *emailmocks.MockService, smsClient *smsmocks.MockClient) {},
			wantErr: ErrInvalidChannel,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			emailSvc := emailmocks.NewMockService(ctrl)
			smsClient := smsmocks.NewMockClient(ctrl)
			tc.setup(emailSvc, smsClient)
			n := NewChannelNotifier(emailSvc, smsClient,
				"noreply@dpick.kr", "[D.PICK] 프로젝트 공고")

			err := n.Notify(context.Background(), tc.a)
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
