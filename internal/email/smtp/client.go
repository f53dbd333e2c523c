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
	"context"
	"io"
	"strings"

	"github.com/dpickhq/dpick/internal/email"
	"gopkg.in/gomail.v2"
)

var _ email.Service = (*Client)(nil)

// Config SMTP 连接参数，存在设置表里
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

// ConfigFunc 每次发送时现取配置。设置页改完下一封就生效
type ConfigFunc func(ctx context.Context) (Config, error)

type Client struct {
	cfg ConfigFunc
	// dial 有接口用接口，测试里换成假的 SendCloser
	dial func(cfg Config) (gomail.SendCloser, error)
}

func NewClient(cfg ConfigFunc) *Client {
	return &Client{
		cfg: cfg,
		dial: func(cfg Config) (gomail.SendCloser, error) {
			return gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password).Dial()
		},
	}
}

func (c *Client) SendMail(ctx context.Context, mail email.Mail) error {
	cfg, err := c.cfg(ctx)
	if err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", mail.From)
	m.SetHeader("To", strings.Split(mail.To, ",")...)
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/html", string(mail.Body))
	for _, a := range mail.Attachments {
		content := a.Content
		m.Attach(a.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}
	sc, err := c.dial(cfg)
	if err != nil {
		return err
	}
	defer sc.Close()
	return gomail.Send(sc, m)
}
