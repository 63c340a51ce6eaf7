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
	"errors"

	"github.com/dotting-labs/dotting/internal/user/internal/domain"
	"github.com/dotting-labs/dotting/internal/user/internal/repository"
	"github.com/lithammer/shortuuid/v4"
)

var ErrUserNotFound = repository.ErrUserNotFound

type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	// FindOrCreateByEmail 登录即注册, 新用户默认 member 角色
	FindOrCreateByEmail(ctx context.Context, email string) (domain.User, error)
	// UpdateNonSensitiveInfo 更新非敏感数据, 序列号/邮箱/角色不允许通过这里改
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

type userService struct {
	repo repository.UserRepository
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) FindOrCreateByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if !errors.Is(err, repository.ErrUserNotFound) {
		return u, err
	}
	sn := shortuuid.New()
	u = domain.User{
		SN:       sn,
		Nickname: sn[:4],
		Email:    email,
		Role:     domain.RoleMember,
	}
	u.ID, err = svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	user.SN = ""
	user.Email = ""
	user.Role = ""
	return svc.repo.Update(ctx, user)
}
