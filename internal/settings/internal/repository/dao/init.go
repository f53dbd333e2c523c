package dao

import (
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

func InitTables(db *egorm.Component) error {
	err := db.AutoMigrate(&ApiSetting{}, &BillingInfo{}, &Transaction{})
	if err != nil {
		return err
	}
	return ensureDefaults(db)
}

// ensureDefaults 两张单行表必须各有一条，缺了就补空记录
func ensureDefaults(db *egorm.Component) error {
	now := time.Now().UnixMilli()
	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ApiSetting{Id: settingId, Ctime: now, Utime: now}).Error
	if err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&BillingInfo{Id: settingId, Ctime: now, Utime: now}).Error
}
