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

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	devmocks "github.com/dpickhq/dpick/internal/developer/mocks"
	"github.com/dpickhq/dpick/internal/project/internal/domain"
	"github.com/dpickhq/dpick/internal/project/internal/event"
	repomocks "github.com/dpickhq/dpick/internal/project/internal/repository/mocks"
	svcmocks "github.com/dpickhq/dpick/internal/project/internal/service/mocks"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProducer(t *testing.T) event.AnnouncementEventProducer {
	t.Helper()
	q := memory.NewMQ()
	err := q.CreateTopic(context.Background(), event.AnnouncementTopic, 1)
	require.NoError(t, err)
	p, err := event.NewAnnouncementEventProducer(q)
	require.NoError(t, err)
	return p
}

func TestProjectService_Assign(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		ids     []int64
		setup   func(repo *repomocks.MockProjectRepository, devSvc *devmocks.MockDeveloperService)
		want    domain.Project
		wantErr error
	}{
		{
			name: "成功投入两个开发者",
			ids:  []int64{4, 5},
			setup: func(repo *repomocks.MockProjectRepository, devSvc *devmocks.MockDeveloperService) {
				repo.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Project{
					Id:              1,
					Title:           "웹 서비스 리뉴얼",
					Team:            []int64{3},
					TotalMMRequired: 10,
					ConfirmedMM:     3,
					InDiscussionMM:  2,
				}, nil)
				repo.EXPECT().UpdateStaffing(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.Project) error {
						assert.Equal(t, []int64{3, 4, 5}, p.Team)
						assert.Equal(t, 5, p.ConfirmedMM)
						return nil
					})
				devSvc.EXPECT().AssignProject(gomock.Any(), int64(4), int64(1)).Return(nil)
				devSvc.EXPECT().AssignProject(gomock.Any(), int64(5), int64(1)).Return(nil)
			},
			want: domain.Project{
				Id:              1,
				Title:           "웹 서비스 리뉴얼",
				Team:            []int64{3, 4, 5},
				TotalMMRequired: 10,
				ConfirmedMM:     5,
				InDiscussionMM:  2,
			},
		},
		{
			name: "重复指派不去重",
			ids:  []int64{3},
			setup: func(repo *repomocks.MockProjectRepository, devSvc *devmocks.MockDeveloperService) {
				repo.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Project{
					Id:          1,
					Team:        []int64{3},
					ConfirmedMM: 1,
				}, nil)
				repo.EXPECT().UpdateStaffing(gomock.Any(), gomock.Any()).Return(nil)
				devSvc.EXPECT().AssignProject(gomock.Any(), int64(3), int64(1)).Return(nil)
			},
			want: domain.Project{
				Id:          1,
				Team:        []int64{3, 3},
				ConfirmedMM: 2,
			},
		},
		{
			name:    "没选人",
			ids:     []int64{},
			setup:   func(repo *repomocks.MockProjectRepository, devSvc *devmocks.MockDeveloperService) {},
			wantErr: ErrEmptySelection,
		},
		{
			name: "落库失败，不回写开发者侧",
			ids:  []int64{4},
			setup: func(repo *repomocks.MockProjectRepository, devSvc *devmocks.MockDeveloperService) {
				repo.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Project{Id: 1}, nil)
				repo.EXPECT().UpdateStaffing(gomock.Any(), gomock.Any()).
					Return(errors.New("db 崩了"))
			},
			wantErr: errors.New("投入开发者失败: db 崩了"),
		},
		{
			name: "回写开发者侧失败不影响结果",
			ids:  []int64{4},
			setup: func(repo *repomocks.MockProjectRepository, devSvc *devmocks.MockDeveloperService) {
				repo.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Project{Id: 1}, nil)
				repo.EXPECT().UpdateStaffing(gomock.Any(), gomock.Any()).Return(nil)
				devSvc.EXPECT().AssignProject(gomock.Any(), int64(4), int64(1)).
					Return(errors.New("developer 侧挂了"))
			},
			want: domain.Project{
				Id:          1,
				Team:        []int64{4},
				ConfirmedMM: 1,
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockProjectRepository(ctrl)
			devSvc := devmocks.NewMockDeveloperService(ctrl)
			tc.setup(repo, devSvc)
			svc := NewProjectService(repo, devSvc, svcmocks.NewMockNotifier(ctrl), newTestProducer(t))

			p, err := svc.Assign(context.Background(), 1, tc.ids)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p)
		})
	}
}

func TestProjectService_Remove(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockProjectRepository(ctrl)
	devSvc := devmocks.NewMockDeveloperService(ctrl)
	repo.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Project{
		Id:          1,
		Team:        []int64{3, 4, 3},
		ConfirmedMM: 3,
	}, nil)
	repo.EXPECT().UpdateStaffing(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p domain.Project) error {
			// 同一个人占的坑全部清掉，人月只减一
			assert.Equal(t, []int64{4}, p.Team)
			assert.Equal(t, 2, p.ConfirmedMM)
			return nil
		})
	devSvc.EXPECT().UnassignProject(gomock.Any(), int64(3), int64(1)).Return(nil)
	svc := NewProjectService(repo, devSvc, svcmocks.NewMockNotifier(ctrl), newTestProducer(t))

	p, err := svc.Remove(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, p.Team)
	assert.Equal(t, 2, p.ConfirmedMM)
}

func TestProjectService_Announce(t *testing.T) {
	t.Parallel()
	today := time.Now().Format(time.DateOnly)
	testCases := []struct {
		name    string
		a       domain.Announcement
		setup   func(repo *repomocks.MockProjectRepository, notifier *svcmocks.MockNotifier)
		wantErr string
	}{
		{
			name: "发送成功才落库",
			a: domain.Announcement{
				ProjectId:  1,
				Channel:    domain.ChannelEmail,
				Content:    "프론트엔드 개발자 모집",
				Recipients: []string{"dev@example.com"},
			},
			setup: func(repo *repomocks.MockProjectRepository, notifier *svcmocks.MockNotifier) {
				repo.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Project{Id: 1}, nil)
				notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, a domain.Announcement) error {
						assert.Equal(t, today, a.SentDate)
						return nil
					})
				repo.EXPECT().AddAnnouncement(gomock.Any(), gomock.Any()).Return(int64(10), nil)
			},
		},
		{
			name: "渠道非法",
			a: domain.Announcement{
				ProjectId: 1,
				Channel:   "pigeon",
			},
			setup:   func(repo *repomocks.MockProjectRepository, notifier *svcmocks.MockNotifier) {},
			wantErr: ErrInvalidChannel.Error(),
		},
		{
			name: "项目不存在",
			a: domain.Announcement{
				ProjectId: 99,
				Channel:   domain.ChannelSMS,
			},
			setup: func(repo *repomocks.MockProjectRepository, notifier *svcmocks.MockNotifier) {
				repo.EXPECT().Detail(gomock.Any(), int64(99)).
					Return(domain.Project{}, ErrProjectNotFound)
			},
			wantErr: ErrProjectNotFound.Error(),
		},
		{
			name: "发送失败就不落库",
			a: domain.Announcement{
				ProjectId:  1,
				Channel:    domain.ChannelSMS,
				Recipients: []string{"01012345678"},
			},
			setup: func(repo *repomocks.MockProjectRepository, notifier *svcmocks.MockNotifier) {
				repo.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Project{Id: 1}, nil)
				notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
					Return(errors.New("短信网关超时"))
			},
			wantErr: "发送公告失败: 短信网关超时",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockProjectRepository(ctrl)
			notifier := svcmocks.NewMockNotifier(ctrl)
			tc.setup(repo, notifier)
			svc := NewProjectService(repo,
				devmocks.NewMockDeveloperService(ctrl), notifier, newTestProducer(t))

			got, err := svc.Announce(context.Background(), tc.a)
			if tc.wantErr != "" {
				assert.EqualError(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(10), got.Id)
			assert.Equal(t, today, got.SentDate)
		})
	}
}
