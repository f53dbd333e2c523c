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

// Developer 外包开发者（컨설턴트）档案。
// 日期字段统一是 YYYY-MM-DD 的字符串，空串表示未定
type Developer struct {
	Id int64
	SN string

	Name      string
	BirthDate string
	Email     string
	Phone     string

	Skills          []string
	ExperienceYears int
	Level           Level
	Type            Type

	// CurrentProjects 当前参与中的项目 ID
	CurrentProjects  []int64
	ProjectStartDate string
	ProjectEndDate   string
	// NextProjects 下一个排期的项目 ID
	NextProjects      []int64
	ExpectedStartDate string

	// 薪酬
	PaymentDate    string
	ExpectedSalary int64
	PaymentStatus  PaymentStatus

	Contacts []Contact
	Resumes  []Resume

	Ctime int64
	Utime int64
}

// Assigned 是否有在投的项目
func (d Developer) Assigned() bool {
	return len(d.CurrentProjects) > 0
}

// Level 等级，沿用业务侧的原始值
type Level string

const (
	// LevelJunior 초급
	LevelJunior Level = "초급"
	// LevelMiddle 중급
	LevelMiddle Level = "중급"
	// LevelSenior 고급
	LevelSenior Level = "고급"
	// LevelExpert 특급
	LevelExpert Level = "특급"
)

// Type 职能分类
type Type string

const (
	TypeFrontend     Type = "프론트엔드개발자"
	TypeBackend      Type = "백엔드개발자"
	TypeConsultant   Type = "컨설턴트"
	TypeFrontendPM   Type = "프론트엔드PM"
	TypeBackendPM    Type = "백엔드PM"
	TypeProductOwner Type = "PO"
)

// PaymentStatus 当月薪酬的支付状态
type PaymentStatus string

const (
	// PaymentStatusUnpaid 미지급
	PaymentStatusUnpaid PaymentStatus = "미지급"
	// PaymentStatusScheduled 지급예정
	PaymentStatusScheduled PaymentStatus = "지급예정"
	// PaymentStatusPaid 지급완료
	PaymentStatusPaid PaymentStatus = "지급완료"
)

// Contact 连络记录，只挂在开发者身上，不回链项目
type Contact struct {
	Id          int64
	DeveloperId int64
	ContactDate string
	Memo        string
	Ctime       int64
}
