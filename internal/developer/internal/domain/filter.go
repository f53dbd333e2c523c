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

import (
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
)

type Tab string

const (
	TabAll Tab = "all"
	// TabAssigned 有在投项目
	TabAssigned Tab = "has-current-project"
	// TabAwaiting 待命中
	TabAwaiting Tab = "awaiting-project"
)

// paymentDueWindow 几天之内算"快到薪酬日"
const paymentDueWindow = 3

// RosterFilter 花名册的组合过滤条件。各条件之间是 AND，
// 关键字在字段之间是 OR。零值代表不过滤
type RosterFilter struct {
	Keyword string
	Tab     Tab
	Levels  []Level
	Types   []Type
	// PaymentDueSoon 只留薪酬日在三天内且未支付（미지급）的
	PaymentDueSoon bool
}

// Apply 按原顺序过滤，today 只取日期部分参与计算
func (f RosterFilter) Apply(roster []Developer, today time.Time) []Developer {
	res := make([]Developer, 0, len(roster))
	for _, d := range roster {
		if f.match(d, today) {
			res = append(res, d)
		}
	}
	return res
}

func (f RosterFilter) match(d Developer, today time.Time) bool {
	if !f.matchKeyword(d) {
		return false
	}
	switch f.Tab {
	case TabAssigned:
		if !d.Assigned() {
			return false
		}
	case TabAwaiting:
		if d.Assigned() {
			return false
		}
	}
	if len(f.Levels) > 0 && !slice.Contains(f.Levels, d.Level) {
		return false
	}
	if len(f.Types) > 0 && !slice.Contains(f.Types, d.Type) {
		return false
	}
	if f.PaymentDueSoon {
		if !withinDays(d.PaymentDate, today, paymentDueWindow) ||
			d.PaymentStatus != PaymentStatusUnpaid {
			return false
		}
	}
	return true
}

// matchKeyword 大小写不敏感的子串匹配，命中任意一个字段就算命中
func (f RosterFilter) matchKeyword(d Developer) bool {
	if f.Keyword == "" {
		return true
	}
	q := strings.ToLower(f.Keyword)
	if strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.Email), q) ||
		strings.Contains(d.Phone, q) ||
		strings.Contains(strings.ToLower(string(d.Type)), q) {
		return true
	}
	for _, skill := range d.Skills {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	return false
}

// withinDays 目标日期距今天（按日历日算）是否落在 [0, days]。
// 解析不了的日期一律当作不在窗口内，不报错
func withinDays(dateStr string, today time.Time, days int) bool {
	if dateStr == "" {
		return false
	}
	target, err := time.ParseInLocation(time.DateOnly, dateStr, today.Location())
	if err != nil {
		return false
	}
	// 换算到 UTC 零点再相减，避免夏令时当天不足 24 小时把第四天也算进来
	t := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	diff := int(t.Sub(b).Hours() / 24)
	return diff >= 0 && diff <= days
}
