// Copyright 2025 dotting-labs
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
	"testing"

	"github.com/dotting-labs/dotting/internal/user/internal/domain"
	"github.com/dotting-labs/dotting/internal/user/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepository struct {
	users   map[int64]domain.User
	updated *domain.User
}

func newFakeUserRepository(users ...domain.User) *fakeUserRepository {
	m := make(map[int64]domain.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepository{users: m}
}

func (f *fakeUserRepository) Create(_ context.Context, u domain.User) (int64, error) {
	u.ID = int64(len(f.users) + 1)
	f.users[u.ID] = u
	return u.ID, nil
}

func (f *fakeUserRepository) Update(_ context.Context, u domain.User) error {
	f.updated = &u
	return nil
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (f *fakeUserRepository) FindById(_ context.Context, id int64) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func TestUserService_FindOrCreateByEmail(t *testing.T) {
	t.Run("老用户直接返回", func(t *testing.T) {
		repo := newFakeUserRepository(domain.User{
			ID:    1,
			SN:    "sn-1",
			Email: "tourist@dotting.life",
			Role:  domain.RoleOperator,
		})
		svc := NewUserService(repo)
		u, err := svc.FindOrCreateByEmail(context.Background(), "tourist@dotting.life")
		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
		assert.Equal(t, domain.RoleOperator, u.Role)
	})

	t.Run("新用户登录即注册", func(t *testing.T) {
		repo := newFakeUserRepository()
		svc := NewUserService(repo)
		u, err := svc.FindOrCreateByEmail(context.Background(), "new@dotting.life")
		require.NoError(t, err)
		assert.NotZero(t, u.ID)
		assert.NotEmpty(t, u.SN)
		assert.Equal(t, u.SN[:4], u.Nickname)
		assert.Equal(t, domain.RoleMember, u.Role)
		assert.False(t, u.IsStaff())
	})
}

func TestUserService_UpdateNonSensitiveInfo(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)
	err := svc.UpdateNonSensitiveInfo(context.Background(), domain.User{
		ID:       1,
		SN:       "sn-1",
		Nickname: "新昵称",
		Email:    "hack@dotting.life",
		Role:     domain.RoleAdmin,
	})
	require.NoError(t, err)
	// 序列号/邮箱/角色不允许通过该接口修改
	assert.Empty(t, repo.updated.SN)
	assert.Empty(t, repo.updated.Email)
	assert.Empty(t, string(repo.updated.Role))
	assert.Equal(t, "新昵称", repo.updated.Nickname)
}
