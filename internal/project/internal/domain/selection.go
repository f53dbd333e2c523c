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

// Selection 指派对话框里的已选集合。
// 按开发者 id 去重，同时记住点选顺序
type Selection struct {
	picked map[int64]struct{}
	order  []int64
}

func NewSelection() *Selection {
	return &Selection{
		picked: make(map[int64]struct{}),
	}
}

// Toggle 点一下选中，再点一下取消。
// 连点两次等于没点
func (s *Selection) Toggle(id int64) {
	if _, ok := s.picked[id]; ok {
		delete(s.picked, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.picked[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *Selection) Contains(id int64) bool {
	_, ok := s.picked[id]
	return ok
}

func (s *Selection) Len() int {
	return len(s.order)
}

// Ids 按点选顺序返回
func (s *Selection) Ids() []int64 {
	res := make([]int64, len(s.order))
	copy(res, s.order)
	return res
}
