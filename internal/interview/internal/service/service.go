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

	"github.com/dotting-labs/dotting/internal/interview/internal/domain"
	"github.com/dotting-labs/dotting/internal/interview/internal/repository"
	"github.com/dotting-labs/dotting/internal/interview/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var ErrSessionNotFound = errors.New("访谈会话不存在")

type Service interface {
	Start(ctx context.Context, s domain.Session) (int64, error)
	// Complete 结束访谈会话, 仅会话归属人可以操作
	Complete(ctx context.Context, uid, id int64) error
	// RecordRound 记录一轮访谈完成
	RecordRound(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (domain.Session, error)
	FindBySN(ctx context.Context, sn string) (domain.Session, error)
	List(ctx context.Context, offset, limit int, uid int64) (int64, []domain.Session, error)
}

func NewService(repo repository.SessionRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.SessionRepository
}

func (s *service) Start(ctx context.Context, sess domain.Session) (int64, error) {
	sess.Status = domain.SessionStatusInProgress
	return s.repo.Create(ctx, sess)
}

func (s *service) Complete(ctx context.Context, uid, id int64) error {
	sess, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if sess.UID != uid {
		return ErrSessionNotFound
	}
	sess.Status = domain.SessionStatusCompleted
	return s.repo.Update(ctx, sess)
}

func (s *service) RecordRound(ctx context.Context, id int64) error {
	sess, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	sess.RoundCount++
	return s.repo.Update(ctx, sess)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Session, error) {
	sess, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Session{}, ErrSessionNotFound
	}
	return sess, err
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Session, error) {
	sess, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Session{}, ErrSessionNotFound
	}
	return sess, err
}

func (s *service) List(ctx context.Context, offset, limit int, uid int64) (int64, []domain.Session, error) {
	var (
		eg    errgroup.Group
		total int64
		ss    []domain.Session
	)
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		ss, err = s.repo.List(ctx, offset, limit, uid)
		return err
	})
	return total, ss, eg.Wait()
}
