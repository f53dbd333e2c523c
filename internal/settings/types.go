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

package settings

import (
	"github.com/dpickhq/dpick/internal/settings/internal/domain"
	"github.com/dpickhq/dpick/internal/settings/internal/service"
	"github.com/dpickhq/dpick/internal/settings/internal/web"
)

type Handler = web.Handler
type ApiSetting = domain.ApiSetting
type BillingInfo = domain.BillingInfo
type Transaction = domain.Transaction

type SettingsService = service.SettingsService

type Module struct {
	Hdl *Handler
	Svc SettingsService
}
