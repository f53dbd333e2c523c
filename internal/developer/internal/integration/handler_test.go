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

//go:build e2e

package integration

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"github.com/dpickhq/dpick/internal/developer"
	"github.com/dpickhq/dpick/internal/developer/internal/web"
	"github.com/dpickhq/dpick/internal/test"
	testioc "github.com/dpickhq/dpick/internal/test/ioc"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(1)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	econf.Set("demo.seed", false)
	m := developer.InitModule(s.db, testioc.InitCache())

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `developers`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `contacts`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `resumes`").Error)
}

func (s *HandlerTestSuite) create(body string) test.Result[web.Developer] {
	req, err := http.NewRequest(http.MethodPost,
		"/api/developers", bytes.NewBufferString(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Developer]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) TestCreateAndList() {
	t := s.T()
	res := s.create(`{
	"name": "홍길동",
	"email": "hong@example.com",
	"phone": "01012345678",
	"skills": ["React", "TypeScript"],
	"experienceYears": 5,
	"level": "중급",
	"type": "프론트엔드개발자"
}`)
	assert.NotZero(t, res.Data.Id)
	assert.NotEmpty(t, res.Data.SN)
	// 不传支付状态时默认未支付
	assert.Equal(t, "미지급", res.Data.PaymentStatus)

	s.create(`{
	"name": "김영희",
	"email": "kim@example.com",
	"level": "고급",
	"type": "백엔드개발자",
	"currentProjects": [2]
}`)

	testCases := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{
			name:      "不带条件全量返回",
			query:     "",
			wantNames: []string{"홍길동", "김영희"},
		},
		{
			name:      "关键字命中姓名",
			query:     "?keyword=홍길동",
			wantNames: []string{"홍길동"},
		},
		{
			name:      "等级分面",
			query:     "?level=고급",
			wantNames: []string{"김영희"},
		},
		{
			name:      "投入中标签",
			query:     "?tab=has-current-project",
			wantNames: []string{"김영희"},
		},
		{
			name:      "关键字和分面取交集，交集为空",
			query:     "?keyword=홍길동&level=고급",
			wantNames: []string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet,
				"/api/developers"+tc.query, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[[]web.Developer]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			got := recorder.MustScan().Data
			names := make([]string, 0, len(got))
			for _, d := range got {
				names = append(names, d.Name)
			}
			assert.ElementsMatch(t, tc.wantNames, names)
		})
	}
}

func (s *HandlerTestSuite) TestReviewResume() {
	t := s.T()
	created := s.create(`{"name": "홍길동", "email": "hong@example.com"}`)
	devId := created.Data.Id

	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/developers/%d/resumes", devId),
		bytes.NewBufferString(`{"title": "이력서 v1", "filePath": "/files/resume.pdf", "uploadDate": "2024-05-01"}`))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Resume]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resume := recorder.MustScan().Data
	assert.Equal(t, "pending", resume.Status)

	req, err = http.NewRequest(http.MethodPatch,
		fmt.Sprintf("/api/resumes/%d/review", resume.Id),
		bytes.NewBufferString(`{"status": "approved", "comments": "좋습니다"}`))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.Resume]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	reviewed := recorder.MustScan().Data
	assert.Equal(t, "approved", reviewed.Status)
	assert.Equal(t, "좋습니다", reviewed.Comments)
	// 审阅人取的是会话里的 uid
	assert.Equal(t, uid, reviewed.ReviewedBy)
	assert.NotZero(t, reviewed.ReviewedAt)

	// 非法状态被拒掉
	req, err = http.NewRequest(http.MethodPatch,
		fmt.Sprintf("/api/resumes/%d/review", resume.Id),
		bytes.NewBufferString(`{"status": "archived"}`))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.Resume]()
	s.server.ServeHTTP(recorder, req)
	assert.NotEqual(t, 0, recorder.MustScan().Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
