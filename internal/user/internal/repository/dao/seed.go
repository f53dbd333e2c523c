package dao

import (
	"time"

	"github.com/ego-component/egorm"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

// SeedDemoUsers 演示环境的初始账号，和原型阶段的 mock 数据保持一致。
// 密码统一是 password
func SeedDemoUsers(db *egorm.Component) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now().UnixMilli()
	seeds := []User{
		{Name: "관리자", Email: "admin@example.com", Role: "admin"},
		{Name: "프로젝트 매니저", Email: "pm@example.com", Role: "프로젝트관리자"},
		{Name: "리소스 매니저", Email: "rm@example.com", Role: "리소스관리자"},
		{Name: "일반 사용자", Email: "user@example.com", Role: "열람자"},
	}
	for i := range seeds {
		seeds[i].SN = shortuuid.New()
		seeds[i].Password = string(hash)
		seeds[i].Ctime = now
		seeds[i].Utime = now
	}
	// 已经有的邮箱跳过
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seeds).Error
}
