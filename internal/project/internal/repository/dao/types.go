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

package dao

import "github.com/ecodeclub/ekit/sqlx"

type Project struct {
	Id int64  `gorm:"primaryKey,autoIncrement"`
	SN string `gorm:"column:sn;type:varchar(256);unique"`

	Title       string `gorm:"type:varchar(256)"`
	Description string
	StartDate   string `gorm:"type:varchar(10)"`
	EndDate     string `gorm:"type:varchar(10)"`
	Status      string `gorm:"type:varchar(16);index"`
	Type        string `gorm:"type:varchar(16);index"`

	Team sqlx.JsonColumn[[]int64] `gorm:"type:varchar(1024)"`

	TotalMMRequired int
	ConfirmedMM     int `gorm:"column:confirmed_mm"`
	InDiscussionMM  int `gorm:"column:in_discussion_mm"`

	Ctime int64
	Utime int64
}

type Announcement struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	ProjectId int64  `gorm:"index"`
	SentDate  string `gorm:"type:varchar(10)"`
	Channel   string `gorm:"type:varchar(8)"`
	Content   string
	// Recipients 邮箱或手机号列表，JSON 串
	Recipients sqlx.JsonColumn[[]string] `gorm:"type:varchar(2048)"`
	Ctime      int64
}
