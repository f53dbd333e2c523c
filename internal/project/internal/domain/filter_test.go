package domain

import (
	"testing"

	"github.com/ecodeclub/ekit/slice"
	"github.com/stretchr/testify/assert"
)

func TestProjectFilter_Apply(t *testing.T) {
	t.Parallel()
	projects := []Project{
		{Id: 1, Title: "웹 서비스 리뉴얼", Description: "기존 웹 서비스의 디자인 및 기능 개선 프로젝트", Status: StatusInProgress, Type: TypeInHouse},
		{Id: 2, Title: "모바일 앱 개발", Description: "안드로이드 및 iOS 모바일 애플리케이션 개발", Status: StatusInProgress, Type: TypeExternal},
		{Id: 3, Title: "데이터 분석 시스템", Description: "고객 데이터 분석 및 시각화 시스템 개발", Status: StatusPlanned, Type: TypeInHouse},
		{Id: 4, Title: "클라우드 마이그레이션", Description: "온프레미스 시스템을 클라우드로 마이그레이션하는 프로젝트", Status: StatusRecruiting, Type: TypeInHouse},
	}
	testCases := []struct {
		name    string
		filter  ProjectFilter
		wantIds []int64
	}{
		{
			name:    "零值条件全部放行",
			filter:  ProjectFilter{},
			wantIds: []int64{1, 2, 3, 4},
		},
		{
			name:    "all tab 不过滤",
			filter:  ProjectFilter{Tab: TabAll},
			wantIds: []int64{1, 2, 3, 4},
		},
		{
			name:    "关键字命中标题",
			filter:  ProjectFilter{Keyword: "모바일"},
			wantIds: []int64{2},
		},
		{
			name:    "关键字命中描述",
			filter:  ProjectFilter{Keyword: "시각화"},
			wantIds: []int64{3},
		},
		{
			name:    "tab 精确匹配状态",
			filter:  ProjectFilter{Tab: Tab(StatusInProgress)},
			wantIds: []int64{1, 2},
		},
		{
			name:    "类型多选",
			filter:  ProjectFilter{Types: []Type{TypeExternal}},
			wantIds: []int64{2},
		},
		{
			name: "条件之间取交集",
			filter: ProjectFilter{
				Keyword: "시스템",
				Tab:     Tab(StatusPlanned),
				Types:   []Type{TypeInHouse},
			},
			wantIds: []int64{3},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.filter.Apply(projects)
			assert.Equal(t, tc.wantIds, slice.Map(got, func(idx int, src Project) int64 {
				return src.Id
			}))
		})
	}
}
