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

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

type Tab string

const (
	TabAll Tab = "all"
)

// ProjectFilter 项目列表的组合过滤。Tab 除了 all 以外
// 直接对应一个状态值
type ProjectFilter struct {
	Keyword string
	Tab     Tab
	Types   []Type
}

// Apply 按原顺序过滤
func (f ProjectFilter) Apply(projects []Project) []Project {
	res := make([]Project, 0, len(projects))
	for _, p := range projects {
		if f.match(p) {
			res = append(res, p)
		}
	}
	return res
}

func (f ProjectFilter) match(p Project) bool {
	if !f.matchKeyword(p) {
		return false
	}
	if f.Tab != "" && f.Tab != TabAll && string(f.Tab) != string(p.Status) {
		return false
	}
	if len(f.Types) > 0 && !slice.Contains(f.Types, p.Type) {
		return false
	}
	return true
}

func (f ProjectFilter) matchKeyword(p Project) bool {
	if f.Keyword == "" {
		return true
	}
	q := strings.ToLower(f.Keyword)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}
