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

import "strings"

// Masked 读接口上代替密钥的占位串。
// 写接口收到这个值表示"不改"
const Masked = "*****"

// ApiSetting 外发渠道的接入配置，全系统就一条
type ApiSetting struct {
	Id           int64
	SmtpServer   string
	SmtpPort     int
	SmtpUsername string
	SmtpPassword string
	SmsApiUrl    string
	SmsApiKey    string
	SmsApiSecret string
	Utime        int64
}

// Redacted 把密钥抹掉之后的副本，读接口只给这个
func (s ApiSetting) Redacted() ApiSetting {
	if s.SmtpPassword != "" {
		s.SmtpPassword = Masked
	}
	if s.SmsApiSecret != "" {
		s.SmsApiSecret = Masked
	}
	return s
}

// BillingInfo 结算信息，全系统就一条
type BillingInfo struct {
	Id             int64
	CardNumber     string
	CardholderName string
	ExpiryDate     string
	BillingAddress string
	// CurrentBalance 余额，韩元整数
	CurrentBalance int64
	Utime          int64
}

// Redacted 卡号只留末四位
func (b BillingInfo) Redacted() BillingInfo {
	b.CardNumber = maskCard(b.CardNumber)
	return b
}

func maskCard(card string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, card)
	if len(digits) < 4 {
		return card
	}
	return "****-****-****-" + digits[len(digits)-4:]
}

// Transaction 余额流水。charge 加钱，payment 扣钱
type Transaction struct {
	Id          int64
	SN          string
	Amount      int64
	Type        TransactionType
	Description string
	Ctime       int64
}

type TransactionType string

const (
	TransactionCharge  TransactionType = "charge"
	TransactionPayment TransactionType = "payment"
)

// Delta 这笔流水对余额的影响
func (t Transaction) Delta() int64 {
	if t.Type == TransactionPayment {
		return -t.Amount
	}
	return t.Amount
}
