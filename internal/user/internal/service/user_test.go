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

	"github.com/dpickhq/dpick/internal/user/internal/domain"
	"github.com/dpickhq/dpick/internal/user/internal/repository"
	repomocks "github.com/dpickhq/dpick/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Login(t *testing.T) {
	t.Parallel()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		email    string
		password string
		setup    func(repo *repomocks.MockUserRepository)
		wantUser domain.User
		wantErr  error
	}{
		{
			name:     "登录成功",
			email:    "admin@dpick.com",
			password: "password",
			setup: func(repo *repomocks.MockUserRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), "admin@dpick.com").
					Return(domain.User{
						Id:       1,
						Email:    "admin@dpick.com",
						Password: string(hash),
						Name:     "관리자",
						Role:     domain.RoleAdmin,
					}, nil)
			},
			wantUser: domain.User{
				Id:       1,
				Email:    "admin@dpick.com",
				Password: string(hash),
				Name:     "관리자",
				Role:     domain.RoleAdmin,
			},
		},
		{
			name:     "账号不存在",
			email:    "nobody@dpick.com",
			password: "password",
			setup: func(repo *repomocks.MockUserRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), "nobody@dpick.com").
					Return(domain.User{}, repository.ErrUserNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "密码不对",
			email:    "admin@dpick.com",
			password: "wrong-password",
			setup: func(repo *repomocks.MockUserRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), "admin@dpick.com").
					Return(domain.User{
						Id:       1,
						Email:    "admin@dpick.com",
						Password: string(hash),
					}, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "数据库错误",
			email:    "admin@dpick.com",
			password: "password",
			setup: func(repo *repomocks.MockUserRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), "admin@dpick.com").
					Return(domain.User{}, errors.New("db 崩了"))
			},
			wantErr: errors.New("db 崩了"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockUserRepository(ctrl)
			tc.setup(repo)
			svc := NewUserService(repo)

			u, err := svc.Login(context.Background(), tc.email, tc.password)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantUser, u)
		})
	}
}

func TestUserService_Create(t *testing.T) {
	t.Parallel()
	t.Run("密码入库前加密，SN 自动生成", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockUserRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
				assert.NotEqual(t, "password", u.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(u.Password), []byte("password")))
				assert.NotEmpty(t, u.SN)
				return 7, nil
			})
		svc := NewUserService(repo)

		u, err := svc.Create(context.Background(), domain.User{
			Email:    "new@dpick.com",
			Password: "password",
			Name:     "신규 사용자",
			Role:     domain.RoleViewer,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), u.Id)
	})

	t.Run("角色非法", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockUserRepository(ctrl)
		svc := NewUserService(repo)

		_, err := svc.Create(context.Background(), domain.User{
			Email: "new@dpick.com",
			Role:  "superuser",
		})
		assert.Equal(t, ErrInvalidRole, err)
	})
}
