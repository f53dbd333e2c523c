package dao

import (
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/lithammer/shortuuid/v4"
)

// SeedDemoProjects 演示环境的初始项目，和原型阶段的 mock 数据保持一致。
// 表里已经有数据就什么都不做
func SeedDemoProjects(db *egorm.Component) error {
	var cnt int64
	if err := db.Model(&Project{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	seeds := []Project{
		{
			Title:           "웹 서비스 리뉴얼",
			Description:     "기존 웹 서비스의 디자인 및 기능 개선 프로젝트",
			StartDate:       "2023-10-01",
			EndDate:         "2024-05-31",
			Status:          "inProgress",
			Type:            "자사",
			Team:            sqlx.JsonColumn[[]int64]{Val: []int64{1, 3, 5}, Valid: true},
			TotalMMRequired: 20,
			ConfirmedMM:     15,
			InDiscussionMM:  5,
		},
		{
			Title:           "모바일 앱 개발",
			Description:     "안드로이드 및 iOS 모바일 애플리케이션 개발",
			StartDate:       "2024-01-15",
			EndDate:         "2024-07-31",
			Status:          "inProgress",
			Type:            "타사",
			Team:            sqlx.JsonColumn[[]int64]{Val: []int64{2, 4, 6}, Valid: true},
			TotalMMRequired: 18,
			ConfirmedMM:     12,
			InDiscussionMM:  0,
		},
		{
			Title:           "데이터 분석 시스템",
			Description:     "고객 데이터 분석 및 시각화 시스템 개발",
			StartDate:       "2024-08-01",
			EndDate:         "2025-02-28",
			Status:          "planned",
			Type:            "자사",
			Team:            sqlx.JsonColumn[[]int64]{Val: []int64{}, Valid: true},
			TotalMMRequired: 24,
			ConfirmedMM:     8,
			InDiscussionMM:  10,
		},
		{
			Title:           "클라우드 마이그레이션",
			Description:     "온프레미스 시스템을 클라우드로 마이그레이션하는 프로젝트",
			Status:          "recruiting",
			Type:            "자사",
			Team:            sqlx.JsonColumn[[]int64]{Val: []int64{}, Valid: true},
			TotalMMRequired: 30,
			ConfirmedMM:     0,
			InDiscussionMM:  5,
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
	ann := Announcement{
		ProjectId: seeds[3].Id,
		SentDate:  "2024-04-10",
		Channel:   "email",
		Content:   "클라우드 마이그레이션 프로젝트에 참여할 인프라 엔지니어를 모집합니다.",
		Recipients: sqlx.JsonColumn[[]string]{
			Val:   []string{"dev1@example.com", "dev2@example.com"},
			Valid: true,
		},
		Ctime: now,
	}
	return db.Create(&ann).Error
}
