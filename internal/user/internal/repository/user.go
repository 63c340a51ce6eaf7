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

package repository

import (
	"context"
	"errors"

	"github.com/dotting-labs/dotting/internal/user/internal/domain"
	"github.com/dotting-labs/dotting/internal/user/internal/repository/dao"
)

var ErrUserNotFound = errors.New("用户不存在")

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	Update(ctx context.Context, u domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
}

func NewUserRepository(d dao.UserDAO) UserRepository {
	return &userRepository{dao: d}
}

type userRepository struct {
	dao dao.UserDAO
}

func (r *userRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(u))
}

func (r *userRepository) Update(ctx context.Context, u domain.User) error {
	return r.dao.UpdateNonZeroFields(ctx, r.toEntity(u))
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := r.dao.FindByEmail(ctx, email)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return r.toDomain(u), nil
}

func (r *userRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return r.toDomain(u), nil
}

func (r *userRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.ID,
		SN:       u.SN,
		Nickname: u.Nickname,
		Email:    u.Email,
		Role:     u.Role.String(),
	}
}

func (r *userRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		ID:       u.Id,
		SN:       u.SN,
		Nickname: u.Nickname,
		Email:    u.Email,
		Role:     domain.Role(u.Role),
		Ctime:    u.Ctime,
		Utime:    u.Utime,
	}
}
