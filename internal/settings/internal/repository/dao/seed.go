package dao

import (
	"time"

	"github.com/ego-component/egorm"
	"github.com/lithammer/shortuuid/v4"
)

// SeedDemoSettings 演示环境的初始配置和流水，和原型阶段的 mock 数据保持一致。
// 已经有流水就什么都不做
func SeedDemoSettings(db *egorm.Component) error {
	var cnt int64
	if err := db.Model(&Transaction{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	err := db.Model(&ApiSetting{}).Where("id = ?", settingId).
		Updates(map[string]any{
			"smtp_server":   "smtp.example.com",
			"smtp_port":     587,
			"smtp_username": "user@example.com",
			"sms_api_url":   "https://api.sms-service.com",
			"sms_api_key":   "api_key_example",
			"utime":         now,
		}).Error
	if err != nil {
		return err
	}
	err = db.Model(&BillingInfo{}).Where("id = ?", settingId).
		Updates(map[string]any{
			"card_number":     "****-****-****-1234",
			"cardholder_name": "홍길동",
			"expiry_date":     "12/26",
			"billing_address": "서울시 강남구",
			"current_balance": 1000000,
			"utime":           now,
		}).Error
	if err != nil {
		return err
	}
	txns := []Transaction{
		{SN: shortuuid.New(), Amount: 500000, Type: "charge", Description: "최초 충전", Ctime: now},
		{SN: shortuuid.New(), Amount: 500000, Type: "charge", Description: "추가 충전", Ctime: now},
	}
	return db.Create(&txns).Error
}
