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

package ioc

import (
	"context"

	"github.com/dpickhq/dpick/internal/email"
	"github.com/dpickhq/dpick/internal/email/aliyun"
	"github.com/dpickhq/dpick/internal/email/console"
	"github.com/dpickhq/dpick/internal/email/smtp"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitEmailService(db *egorm.Component) email.Service {
	type Config struct {
		Provider        string `yaml:"provider"`
		AccessKeyID     string `yaml:"accessKeyId"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		FromEmail       string `yaml:"fromEmail"`
	}
	var cfg Config
	err := econf.UnmarshalKey("email", &cfg)
	if err != nil {
		panic(err)
	}
	switch cfg.Provider {
	case "aliyun":
		svc, err := aliyun.NewDirectMailClient(cfg.AccessKeyID, cfg.AccessKeySecret, cfg.FromEmail)
		if err != nil {
			panic(err)
		}
		return svc
	case "smtp":
		// SMTP 参数走设置页存的那一行，发送时现查，改完立刻生效
		return smtp.NewClient(func(ctx context.Context) (smtp.Config, error) {
			var row struct {
				SmtpServer   string
				SmtpPort     int
				SmtpUsername string
				SmtpPassword string
			}
			err := db.WithContext(ctx).Table("api_settings").
				Where("id = ?", 1).Take(&row).Error
			if err != nil {
				return smtp.Config{}, err
			}
			return smtp.Config{
				Host:     row.SmtpServer,
				Port:     row.SmtpPort,
				Username: row.SmtpUsername,
				Password: row.SmtpPassword,
			}, nil
		})
	default:
		// 本地开发走控制台输出
		return console.NewClient()
	}
}
