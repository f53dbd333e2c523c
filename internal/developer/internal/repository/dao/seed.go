package dao

import (
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/lithammer/shortuuid/v4"
)

// SeedDemoDevelopers 演示环境的初始花名册，和原型阶段的 mock 数据保持一致。
// 表里已经有数据就什么都不做
func SeedDemoDevelopers(db *egorm.Component) error {
	var cnt int64
	if err := db.Model(&Developer{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	seeds := []Developer{
		{
			Name:              "홍길동",
			BirthDate:         "1990-01-15",
			Email:             "hong@example.com",
			Phone:             "010-1234-5678",
			Skills:            sqlx.JsonColumn[[]string]{Val: []string{"JavaScript", "React", "Node.js"}, Valid: true},
			ExperienceYears:   5,
			Level:             "중급",
			Type:              "프론트엔드개발자",
			CurrentProjects:   sqlx.JsonColumn[[]int64]{Val: []int64{1}, Valid: true},
			ProjectStartDate:  "2023-10-01",
			ProjectEndDate:    "2024-05-31",
			NextProjects:      sqlx.JsonColumn[[]int64]{Val: []int64{}, Valid: true},
			ExpectedStartDate: "",
			PaymentDate:       "2024-05-05",
			ExpectedSalary:    5000000,
			PaymentStatus:     "미지급",
		},
		{
			Name:              "김영희",
			BirthDate:         "1988-05-20",
			Email:             "kim@example.com",
			Phone:             "010-9876-5432",
			Skills:            sqlx.JsonColumn[[]string]{Val: []string{"Java", "Spring", "MySQL"}, Valid: true},
			ExperienceYears:   8,
			Level:             "고급",
			Type:              "백엔드개발자",
			CurrentProjects:   sqlx.JsonColumn[[]int64]{Val: []int64{2}, Valid: true},
			ProjectStartDate:  "2024-01-15",
			ProjectEndDate:    "2024-07-31",
			NextProjects:      sqlx.JsonColumn[[]int64]{Val: []int64{3}, Valid: true},
			ExpectedStartDate: "2024-08-01",
			PaymentDate:       "2024-05-10",
			ExpectedSalary:    7000000,
			PaymentStatus:     "미지급",
		},
	}
	for i := range seeds {
		seeds[i].SN = shortuuid.New()
		seeds[i].Ctime = now
		seeds[i].Utime = now
	}
	if err := db.Create(&seeds).Error; err != nil {
		return err
	}
	contacts := []Contact{
		{DeveloperId: seeds[0].Id, ContactDate: "2023-09-15", Memo: "프로젝트 참여 문의 - 긍정적 반응", Ctime: now},
		{DeveloperId: seeds[1].Id, ContactDate: "2023-12-20", Memo: "프로젝트 참여 확정", Ctime: now},
	}
	return db.Create(&contacts).Error
}
