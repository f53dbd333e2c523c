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
	"github.com/dpickhq/dpick/internal/sms/client"
	"github.com/gotomicro/ego/core/econf"
)

func InitSMSClient() client.Client {
	type Config struct {
		Provider        string `yaml:"provider"`
		AccessKeyID     string `yaml:"accessKeyId"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		SignName        string `yaml:"signName"`
		TemplateID      string `yaml:"templateId"`
	}
	var cfg Config
	err := econf.UnmarshalKey("sms", &cfg)
	if err != nil {
		panic(err)
	}
	switch cfg.Provider {
	case "aliyun":
		c, err := client.NewAliyunSMS(cfg.AccessKeyID, cfg.AccessKeySecret, cfg.SignName, cfg.TemplateID)
		if err != nil {
			panic(err)
		}
		return c
	default:
		return client.NewConsoleClient()
	}
}
