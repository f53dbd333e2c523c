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

package developer

import (
	"github.com/dpickhq/dpick/internal/developer/internal/domain"
	"github.com/dpickhq/dpick/internal/developer/internal/service"
	"github.com/dpickhq/dpick/internal/developer/internal/web"
)

type Handler = web.Handler
type Developer = domain.Developer
type Resume = domain.Resume

// DeveloperService 项目模块在确认投入时要回写开发者侧的在投列表
type DeveloperService = service.DeveloperService

type Module struct {
	Hdl *Handler
	Svc DeveloperService
}
