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
	"fmt"
	"strings"

	"github.com/dpickhq/dpick/internal/email"
	"github.com/dpickhq/dpick/internal/project/internal/domain"
	"github.com/dpickhq/dpick/internal/sms/client"
)

// Notifier 把公告按渠道发出去
//
//go:generate mockgen -source=./notifier.go -package=svcmocks -destination=mocks/notifier.mock.go Notifier
type Notifier interface {
	Notify(ctx context.Context, a domain.Announcement) error
}

var _ Notifier = (*channelNotifier)(nil)

type channelNotifier struct {
	emailSvc  email.Service
	smsClient client.Client
	// fromAddr 群发邮件的发件人
	fromAddr string
	// subject 群发邮件的固定标题
	subject string
}

func NewChannelNotifier(emailSvc email.Service, smsClient client.Client,
	fromAddr string, subject string) Notifier {
	return &channelNotifier{
		emailSvc:  emailSvc,
		smsClient: smsClient,
		fromAddr:  fromAddr,
		subject:   subject,
	}
}

func (n *channelNotifier) Notify(ctx context.Context, a domain.Announcement) error {
	switch a.Channel {
	case domain.ChannelEmail:
		return n.emailSvc.SendMail(ctx, email.Mail{
			From:    n.fromAddr,
			To:      strings.Join(a.Recipients, ","),
			Subject: n.subject,
			Body:    []byte(a.Content),
		})
	case domain.ChannelSMS:
		resp, err := n.smsClient.Send(client.SendReq{
			PhoneNumbers: a.Recipients,
			Content:      a.Content,
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
	default:
		return ErrInvalidChannel
	}
}
