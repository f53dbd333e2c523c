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

import "github.com/ecodeclub/ekit/slice"

// Project 外包项目。日期是 YYYY-MM-DD 字符串，
// planned 阶段允许为空
type Project struct {
	Id int64
	SN string

	Title       string
	Description string
	StartDate   string
	EndDate     string
	Status      Status
	Type        Type

	// Team 已投入的开发者 id，按加入顺序排列。
	// 这里不去重：同一个人被重复指派是上游要自己留意的事
	Team []int64

	// 人月（MM）台账。三个都是整数人月，
	// ConfirmedMM + InDiscussionMM <= TotalMMRequired 只是期望，不强制
	TotalMMRequired int
	ConfirmedMM     int
	InDiscussionMM  int

	Announcements []Announcement

	Ctime int64
	Utime int64
}

// AssignTeam 把选中的开发者批量加进团队。
// 一个人按一个人月记，粗但先这么记
func (p *Project) AssignTeam(ids []int64) {
	p.Team = append(p.Team, ids...)
	p.ConfirmedMM += len(ids)
}

// RemoveMember 把 id 从团队里全部剔掉，人月固定减一。
// 减出负数也不拦，台账本来就是近似值
func (p *Project) RemoveMember(id int64) {
	p.Team = slice.FilterDelete(p.Team, func(idx int, src int64) bool {
		return src == id
	})
	p.ConfirmedMM--
}

// RequiredUnfilled 还缺多少人月
func (p Project) RequiredUnfilled() int {
	return p.TotalMMRequired - p.ConfirmedMM - p.InDiscussionMM
}

type Status string

const (
	StatusRecruiting Status = "recruiting"
	StatusInProgress Status = "inProgress"
	StatusPlanned    Status = "planned"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusRecruiting, StatusInProgress, StatusPlanned, StatusCompleted:
		return true
	default:
		return false
	}
}

// Type 自营还是外部委托
type Type string

const (
	// TypeInHouse 자사
	TypeInHouse Type = "자사"
	// TypeExternal 타사
	TypeExternal Type = "타사"
)

// Announcement 挂在项目下的招募公告，发出去才落库
type Announcement struct {
	Id        int64
	ProjectId int64
	SentDate  string
	Channel   Channel
	Content   string
	// Recipients 邮箱或手机号，跟着 Channel 走
	Recipients []string
	Ctime      int64
}

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

func (c Channel) Valid() bool {
	return c == ChannelEmail || c == ChannelSMS
}
