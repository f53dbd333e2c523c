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

package web

import (
	"time"

	"github.com/dpickhq/dpick/internal/settings/internal/domain"
)

type ApiSettingReq struct {
	SmtpServer   string `json:"smtpServer"`
	SmtpPort     int    `json:"smtpPort"`
	SmtpUsername string `json:"smtpUsername"`
	SmtpPassword string `json:"smtpPassword"`
	SmsApiUrl    string `json:"smsApiUrl"`
	SmsApiKey    string `json:"smsApiKey"`
	SmsApiSecret string `json:"smsApiSecret"`
}

func (req ApiSettingReq) toDomain() domain.ApiSetting {
	return domain.ApiSetting{
		SmtpServer:   req.SmtpServer,
		SmtpPort:     req.SmtpPort,
		SmtpUsername: req.SmtpUsername,
		SmtpPassword: req.SmtpPassword,
		SmsApiUrl:    req.SmsApiUrl,
		SmsApiKey:    req.SmsApiKey,
		SmsApiSecret: req.SmsApiSecret,
	}
}

type ApiSetting struct {
	Id           int64  `json:"id"`
	SmtpServer   string `json:"smtpServer"`
	SmtpPort     int    `json:"smtpPort"`
	SmtpUsername string `json:"smtpUsername"`
	SmtpPassword string `json:"smtpPassword"`
	SmsApiUrl    string `json:"smsApiUrl"`
	SmsApiKey    string `json:"smsApiKey"`
	SmsApiSecret string `json:"smsApiSecret"`
	Utime        int64  `json:"utime"`
}

func newApiSetting(s domain.ApiSetting) ApiSetting {
	return ApiSetting{
		Id:           s.Id,
		SmtpServer:   s.SmtpServer,
		SmtpPort:     s.SmtpPort,
		SmtpUsername: s.SmtpUsername,
		SmtpPassword: s.SmtpPassword,
		SmsApiUrl:    s.SmsApiUrl,
		SmsApiKey:    s.SmsApiKey,
		SmsApiSecret: s.SmsApiSecret,
		Utime:        s.Utime,
	}
}

type BillingReq struct {
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryDate     string `json:"expiryDate"`
	BillingAddress string `json:"billingAddress"`
}

func (req BillingReq) toDomain() domain.BillingInfo {
	return domain.BillingInfo{
		CardNumber:     req.CardNumber,
		CardholderName: req.CardholderName,
		ExpiryDate:     req.ExpiryDate,
		BillingAddress: req.BillingAddress,
	}
}

type BillingInfo struct {
	Id             int64  `json:"id"`
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryDate     string `json:"expiryDate"`
	BillingAddress string `json:"billingAddress"`
	CurrentBalance int64  `json:"currentBalance"`
	Utime          int64  `json:"utime"`
}

func newBillingInfo(b domain.BillingInfo) BillingInfo {
	return BillingInfo{
		Id:             b.Id,
		CardNumber:     b.CardNumber,
		CardholderName: b.CardholderName,
		ExpiryDate:     b.ExpiryDate,
		BillingAddress: b.BillingAddress,
		CurrentBalance: b.CurrentBalance,
		Utime:          b.Utime,
	}
}

type ChargeReq struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

type TestEmailReq struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

type TestSMSReq struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type Transaction struct {
	Id          int64  `json:"id"`
	SN          string `json:"sn"`
	Amount      int64  `json:"amount"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func newTransaction(t domain.Transaction) Transaction {
	return Transaction{
		Id:          t.Id,
		SN:          t.SN,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Description: t.Description,
		Date:        time.UnixMilli(t.Ctime).Format(time.RFC3339),
	}
}
