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

type Developer struct {
	Id int64  `gorm:"primaryKey,autoIncrement"`
	SN string `gorm:"column:sn;type:varchar(256);unique"`

	Name      string `gorm:"type:varchar(128)"`
	BirthDate string `gorm:"type:varchar(10)"`
	Email     string `gorm:"type:varchar(256);index"`
	Phone     string `gorm:"type:varchar(32)"`

	// Skills JSON 串存起来就可以
	Skills          sqlx.JsonColumn[[]string] `gorm:"type:varchar(1024)"`
	ExperienceYears int
	Level           string `gorm:"type:varchar(16);index"`
	Type            string `gorm:"type:varchar(32);index"`

	CurrentProjects   sqlx.JsonColumn[[]int64] `gorm:"type:varchar(512)"`
	ProjectStartDate  string                   `gorm:"type:varchar(10)"`
	ProjectEndDate    string                   `gorm:"type:varchar(10)"`
	NextProjects      sqlx.JsonColumn[[]int64] `gorm:"type:varchar(512)"`
	ExpectedStartDate string                   `gorm:"type:varchar(10)"`

	PaymentDate    string `gorm:"type:varchar(10)"`
	ExpectedSalary int64
	PaymentStatus  string `gorm:"type:varchar(16)"`

	Ctime int64
	Utime int64
}

type Contact struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	DeveloperId int64  `gorm:"index"`
	ContactDate string `gorm:"type:varchar(10)"`
	Memo        string
	Ctime       int64
}

type Resume struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	DeveloperId int64  `gorm:"index"`
	Title       string `gorm:"type:varchar(256)"`
	FilePath    string `gorm:"type:varchar(512)"`
	UploadDate  string `gorm:"type:varchar(10)"`
	// ReviewStatus pending/reviewed/approved/rejected
	ReviewStatus   string `gorm:"type:varchar(16)"`
	ReviewComments string
	ReviewedBy     int64
	ReviewedAt     int64
	Ctime          int64
	Utime          int64
}
