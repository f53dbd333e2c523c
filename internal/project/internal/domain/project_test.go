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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_AssignTeam(t *testing.T) {
	t.Parallel()
	p := Project{
		Team:            []int64{1, 3},
		TotalMMRequired: 20,
		ConfirmedMM:     15,
		InDiscussionMM:  5,
	}
	p.AssignTeam([]int64{5, 7})
	assert.Equal(t, []int64{1, 3, 5, 7}, p.Team)
	assert.Equal(t, 17, p.ConfirmedMM)

	// 已经在团队里的人再指派一次也照加，不去重
	p.AssignTeam([]int64{1})
	assert.Equal(t, []int64{1, 3, 5, 7, 1}, p.Team)
	assert.Equal(t, 18, p.ConfirmedMM)
}

func TestProject_RemoveMember(t *testing.T) {
	t.Parallel()
	p := Project{
		Team:        []int64{1, 3, 1},
		ConfirmedMM: 3,
	}
	// 重复出现的 id 一次剔干净，人月只减一
	p.RemoveMember(1)
	assert.Equal(t, []int64{3}, p.Team)
	assert.Equal(t, 2, p.ConfirmedMM)

	// 不在团队里的人也照减，台账允许被减穿
	p.RemoveMember(99)
	assert.Equal(t, []int64{3}, p.Team)
	assert.Equal(t, 1, p.ConfirmedMM)
	p.RemoveMember(3)
	p.RemoveMember(3)
	assert.Equal(t, -1, p.ConfirmedMM)
}

func TestProject_RequiredUnfilled(t *testing.T) {
	t.Parallel()
	p := Project{
		TotalMMRequired: 10,
		ConfirmedMM:     3,
		InDiscussionMM:  2,
	}
	assert.Equal(t, 5, p.RequiredUnfilled())
	p.AssignTeam([]int64{11, 12})
	assert.Equal(t, 5, p.ConfirmedMM)
	assert.Equal(t, 3, p.RequiredUnfilled())
}

func TestSelection_Toggle(t *testing.T) {
	t.Parallel()
	s := NewSelection()
	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(3)
	assert.Equal(t, []int64{1, 2, 3}, s.Ids())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(2))

	// 再点一次取消选中
	s.Toggle(2)
	assert.Equal(t, []int64{1, 3}, s.Ids())
	assert.False(t, s.Contains(2))

	// 连点两次等于没点
	s.Toggle(7)
	s.Toggle(7)
	assert.Equal(t, []int64{1, 3}, s.Ids())

	s.Toggle(1)
	s.Toggle(3)
	assert.Equal(t, []int64{}, s.Ids())
	assert.Equal(t, 0, s.Len())
}

func TestChannel_Valid(t *testing.T) {
	t.Parallel()
	assert.True(t, ChannelEmail.Valid())
	assert.True(t, ChannelSMS.Valid())
	assert.False(t, Channel("fax").Valid())
	assert.False(t, Channel("").Valid())
}
