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

package smtp

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dpickhq/dpick/internal/email"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSendCloser struct {
	from   string
	to     []string
	body   bytes.Buffer
	err    error
	closed bool
}

func (f *fakeSendCloser) Send(from string, to []string, msg io.WriterTo) error {
	if f.err != nil {
		return f.err
	}
	f.from = from
	f.to = to
	_, err := msg.WriteTo(&f.body)
	return err
}

func (f *fakeSendCloser) Close() error {
	f.closed = true
	return nil
}

func TestClient_SendMail(t *testing.T) {
	t.Parallel()
	cfg := Config{Host: "smtp.dpick.kr", Port: 587, Username: "noreply", Password: "secret"}

	t.Run("群发收件人逐个拆开", func(t *testing.T) {
		t.Parallel()
		fake := &fakeSendCloser{}
		c := NewClient(func(ctx context.Context) (Config, error) {
			return cfg, nil
		})
		c.dial = func(got Config) (gomail.SendCloser, error) {
			require.Equal(t, cfg, got)
			return fake, nil
		}
		err := c.SendMail(context.Background(), email.Mail{
			From:    "noreply@dpick.kr",
			To:      "a@example.com,b@example.com",
			Subject: "[D.PICK] 프로젝트 공고",
			// 正文故意用 ASCII，韩文会被 quoted-printable 编码，没法直接断言
			Body: []byte("<p>recruiting now</p>"),
		})
		require.NoError(t, err)
		require.Equal(t, "noreply@dpick.kr", fake.from)
		require.Equal(t, []string{"a@example.com", "b@example.com"}, fake.to)
		require.Contains(t, fake.body.String(), "recruiting now")
		require.True(t, fake.closed)
	})

	t.Run("配置取不到直接失败", func(t *testing.T) {
		t.Parallel()
		mockErr := errors.New("mock: 设置表为空")
		c := NewClient(func(ctx context.Context) (Config, error) {
			return Config{}, mockErr
		})
		c.dial = func(Config) (gomail.SendCloser, error) {
			t.Fatal("不该走到拨号这一步")
			return nil, nil
		}
		err := c.SendMail(context.Background(), email.Mail{To: "a@example.com"})
		require.ErrorIs(t, err, mockErr)
	})

	t.Run("拨号失败", func(t *testing.T) {
		t.Parallel()
		mockErr := errors.New("mock: 连不上 SMTP")
		c := NewClient(func(ctx context.Context) (Config, error) {
			return cfg, nil
		})
		c.dial = func(Config) (gomail.SendCloser, error) {
			return nil, mockErr
		}
		err := c.SendMail(context.Background(), email.Mail{To: "a@example.com"})
		require.ErrorIs(t, err, mockErr)
	})

	t.Run("发送失败", func(t *testing.T) {
		t.Parallel()
		fake := &fakeSendCloser{err: errors.New("mock: 对端拒收")}
		c := NewClient(func(ctx context.Context) (Config, error) {
			return cfg, nil
		})
		c.dial = func(Config) (gomail.SendCloser, error) {
			return fake, nil
		}
		err := c.SendMail(context.Background(), email.Mail{
			From: "noreply@dpick.kr",
			To:   "a@example.com",
		})
		// gomail.Send 用 %v 包错误，这里只能看文案
		require.ErrorContains(t, err, "对端拒收")
		require.True(t, fake.closed)
	})
}
