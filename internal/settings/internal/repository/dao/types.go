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

// ApiSetting 单行表，主键固定是 1
type ApiSetting struct {
	Id           int64  `gorm:"primaryKey"`
	SmtpServer   string `gorm:"type:varchar(256)"`
	SmtpPort     int
	SmtpUsername string `gorm:"type:varchar(256)"`
	// SmtpPassword 原样落库。加密存储是后面的事
	SmtpPassword string `gorm:"type:varchar(256)"`
	SmsApiUrl    string `gorm:"type:varchar(512)"`
	SmsApiKey    string `gorm:"type:varchar(256)"`
	SmsApiSecret string `gorm:"type:varchar(256)"`
	Ctime        int64
	Utime        int64
}

// BillingInfo 单行表，主键固定是 1
type BillingInfo struct {
	Id             int64  `gorm:"primaryKey"`
	CardNumber     string `gorm:"type:varchar(32)"`
	CardholderName string `gorm:"type:varchar(128)"`
	ExpiryDate     string `gorm:"type:varchar(8)"`
	BillingAddress string `gorm:"type:varchar(512)"`
	CurrentBalance int64
	Ctime          int64
	Utime          int64
}

type Transaction struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	SN          string `gorm:"column:sn;type:varchar(64);unique"`
	Amount      int64
	Type        string `gorm:"type:varchar(8)"`
	Description string `gorm:"type:varchar(256)"`
	Ctime       int64
}
