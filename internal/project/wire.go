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

//go:build wireinject

package project

import (
	"github.com/dpickhq/dpick/internal/developer"
	"github.com/dpickhq/dpick/internal/email"
	"github.com/dpickhq/dpick/internal/project/internal/repository"
	"github.com/dpickhq/dpick/internal/project/internal/repository/cache"
	"github.com/dpickhq/dpick/internal/project/internal/service"
	"github.com/dpickhq/dpick/internal/project/internal/web"
	"github.com/dpickhq/dpick/internal/sms/client"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ,
	devModule *developer.Module,
	emailSvc email.Service, smsClient client.Client) *Module {
	wire.Build(
		initDAO,
		initNotifier,
		initAnnouncementEventProducer,
		cache.NewProjectECache,
		repository.NewCachedProjectRepository,
		wire.FieldsOf(new(*developer.Module), "Svc"),
		service.NewProjectService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
