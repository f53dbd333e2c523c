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
	"testing"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() []Developer {
	return []Developer{
		{
			Id:              1,
			Name:            "홍길동",
			Email:           "hong@example.com",
			Phone:           "010-1234-5678",
			Skills:          []string{"JavaScript", "React", "Node.js"},
			Level:           LevelMiddle,
			Type:            TypeFrontend,
			CurrentProjects: []int64{1},
			PaymentDate:     "2024-05-05",
			PaymentStatus:   PaymentStatusUnpaid,
		},
		{
			Id:              2,
			Name:            "김영희",
			Email:           "kim@example.com",
			Phone:           "010-9876-5432",
			Skills:          []string{"Java", "Spring", "MySQL"},
			Level:           LevelSenior,
			Type:            TypeBackend,
			CurrentProjects: []int64{2},
			PaymentDate:     "2024-05-10",
			PaymentStatus:   PaymentStatusUnpaid,
		},
		{
			Id:            3,
			Name:          "이대기",
			Email:         "lee@example.com",
			Phone:         "010-5555-0000",
			Skills:        []string{"Go", "Kubernetes"},
			Level:         LevelExpert,
			Type:          TypeConsultant,
			PaymentDate:   "2024-05-06",
			PaymentStatus: PaymentStatusPaid,
		},
	}
}

func TestRosterFilter_Apply(t *testing.T) {
	t.Parallel()
	today := time.Date(2024, 5, 4, 11, 30, 0, 0, time.Local)
	testCases := []struct {
		name    string
		filter  RosterFilter
		wantIds []int64
	}{
		{
			name:    "零值条件全部放行",
			filter:  RosterFilter{},
			wantIds: []int64{1, 2, 3},
		},
		{
			name:    "关键字命中姓名",
			filter:  RosterFilter{Keyword: "김영희"},
			wantIds: []int64{2},
		},
		{
			name:    "关键字大小写不敏感命中技能",
			filter:  RosterFilter{Keyword: "react"},
			wantIds: []int64{1},
		},
		{
			name:    "关键字命中电话",
			filter:  RosterFilter{Keyword: "5555"},
			wantIds: []int64{3},
		},
		{
			name:    "关键字命中职能标签",
			filter:  RosterFilter{Keyword: "백엔드"},
			wantIds: []int64{2},
		},
		{
			name:    "关键字谁都不命中",
			filter:  RosterFilter{Keyword: "rust"},
			wantIds: []int64{},
		},
		{
			name:    "在投 tab",
			filter:  RosterFilter{Tab: TabAssigned},
			wantIds: []int64{1, 2},
		},
		{
			name:    "待命 tab",
			filter:  RosterFilter{Tab: TabAwaiting},
			wantIds: []int64{3},
		},
		{
			name:    "等级多选",
			filter:  RosterFilter{Levels: []Level{LevelMiddle, LevelExpert}},
			wantIds: []int64{1, 3},
		},
		{
			name:    "职能多选",
			filter:  RosterFilter{Types: []Type{TypeBackend}},
			wantIds: []int64{2},
		},
		{
			name: "条件之间取交集",
			filter: RosterFilter{
				Keyword: "example.com",
				Tab:     TabAssigned,
				Levels:  []Level{LevelSenior},
			},
			wantIds: []int64{2},
		},
		{
			// 2024-05-05 距 2024-05-04 一天，2024-05-10 距六天。
			// id 3 虽然在窗口内但已经支付过了
			name:    "临近薪酬日且未支付",
			filter:  RosterFilter{PaymentDueSoon: true},
			wantIds: []int64{1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.filter.Apply(testRoster(), today)
			assert.Equal(t, tc.wantIds, slice.Map(got, func(idx int, src Developer) int64 {
				return src.Id
			}))
		})
	}
}

func TestRosterFilter_paymentDueWindow(t *testing.T) {
	t.Parallel()
	f := RosterFilter{PaymentDueSoon: true}
	// 2025-03-09 纽约进入夏令时，那周的第四天只差 95 个小时
	nyc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	testCases := []struct {
		name        string
		paymentDate string
		today       time.Time
		want        bool
	}{
		{
			name:        "当天算在窗口内",
			paymentDate: "2024-05-04",
			today:       time.Date(2024, 5, 4, 23, 59, 0, 0, time.Local),
			want:        true,
		},
		{
			name:        "第三天是边界",
			paymentDate: "2024-05-07",
			today:       time.Date(2024, 5, 4, 0, 0, 0, 0, time.Local),
			want:        true,
		},
		{
			name:        "第四天出窗口",
			paymentDate: "2024-05-08",
			today:       time.Date(2024, 5, 4, 0, 0, 0, 0, time.Local),
			want:        false,
		},
		{
			name:        "夏令时那周第三天仍在窗口",
			paymentDate: "2025-03-11",
			today:       time.Date(2025, 3, 8, 0, 0, 0, 0, nyc),
			want:        true,
		},
		{
			name:        "夏令时那周第四天照样出窗口",
			paymentDate: "2025-03-12",
			today:       time.Date(2025, 3, 8, 0, 0, 0, 0, nyc),
			want:        false,
		},
		{
			name:        "已经过期的不算",
			paymentDate: "2024-05-03",
			today:       time.Date(2024, 5, 4, 0, 0, 0, 0, time.Local),
			want:        false,
		},
		{
			name:        "空日期不报错直接排除",
			paymentDate: "",
			today:       time.Date(2024, 5, 4, 0, 0, 0, 0, time.Local),
			want:        false,
		},
		{
			name:        "烂日期不报错直接排除",
			paymentDate: "05/04/2024",
			today:       time.Date(2024, 5, 4, 0, 0, 0, 0, time.Local),
			want:        false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			roster := []Developer{{
				Id:            1,
				PaymentDate:   tc.paymentDate,
				PaymentStatus: PaymentStatusUnpaid,
			}}
			got := f.Apply(roster, tc.today)
			require.Equal(t, tc.want, len(got) == 1)
		})
	}
}

func TestReviewStatus_Valid(t *testing.T) {
	t.Parallel()
	for _, s := range []ReviewStatus{
		ReviewStatusPending, ReviewStatusReviewed,
		ReviewStatusApproved, ReviewStatusRejected,
	} {
		assert.True(t, s.Valid())
	}
	assert.False(t, ReviewStatus("archived").Valid())
	assert.False(t, ReviewStatus("").Valid())
}
