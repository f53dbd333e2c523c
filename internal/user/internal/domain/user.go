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

package domain

type User struct {
	Id   int64
	SN   string
	Name string
	// Email 登录账号，唯一
	Email string
	// Password bcrypt 之后的密文，对外序列化时永远不带出去
	Password string
	Avatar   string
	Role     Role
	Utime    int64
}

// Role 角色直接用原始的业务值做枚举，前端靠它控制编辑入口，
// 服务端在管理接口上也校验
type Role string

const (
	RoleAdmin Role = "admin"
	// RoleProjectManager 프로젝트관리자
	RoleProjectManager Role = "프로젝트관리자"
	// RoleResourceManager 리소스관리자
	RoleResourceManager Role = "리소스관리자"
	// RoleViewer 열람자
	RoleViewer Role = "열람자"
	// RoleAnnouncementManager 공고관리자
	RoleAnnouncementManager Role = "공고관리자"
)

func (r Role) String() string {
	return string(r)
}

// Valid 是否属于封闭集合
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleResourceManager,
		RoleViewer, RoleAnnouncementManager:
		return true
	default:
		return false
	}
}
