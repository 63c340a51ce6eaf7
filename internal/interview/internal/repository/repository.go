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

	"github.com/dotting-labs/dotting/internal/interview/internal/domain"
	"github.com/dotting-labs/dotting/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type SessionRepository interface {
	Create(ctx context.Context, s domain.Session) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Session, error)
	FindBySN(ctx context.Context, sn string) (domain.Session, error)
	Update(ctx context.Context, s domain.Session) error
	List(ctx context.Context, offset, limit int, uid int64) ([]domain.Session, error)
	Count(ctx context.Context, uid int64) (int64, error)
}

func NewSessionRepository(d dao.SessionDAO) SessionRepository {
	return &sessionRepository{dao: d}
}

type sessionRepository struct {
	dao dao.SessionDAO
}

func (r *sessionRepository) Create(ctx context.Context, s domain.Session) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(s))
}

func (r *sessionRepository) FindByID(ctx context.Context, id int64) (domain.Session, error) {
	s, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	return r.toDomain(s), nil
}

func (r *sessionRepository) FindBySN(ctx context.Context, sn string) (domain.Session, error) {
	s, err := r.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Session{}, err
	}
	return r.toDomain(s), nil
}

func (r *sessionRepository) Update(ctx context.Context, s domain.Session) error {
	return r.dao.Update(ctx, r.toEntity(s))
}

func (r *sessionRepository) List(ctx context.Context, offset, limit int, uid int64) ([]domain.Session, error) {
	ss, err := r.dao.List(ctx, offset, limit, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(ss, func(idx int, src dao.InterviewSession) domain.Session {
		return r.toDomain(src)
	}), nil
}

func (r *sessionRepository) Count(ctx context.Context, uid int64) (int64, error) {
	return r.dao.Count(ctx, uid)
}

func (r *sessionRepository) toEntity(s domain.Session) dao.InterviewSession {
	return dao.InterviewSession{
		Id:               s.ID,
		SN:               s.SN,
		Uid:              s.UID,
		SubjectName:      s.SubjectName,
		SubjectBirthYear: s.SubjectBirthYear,
		Status:           s.Status.String(),
		RoundCount:       s.RoundCount,
		Ctime:            s.Ctime,
		Utime:            s.Utime,
	}
}

func (r *sessionRepository) toDomain(s dao.InterviewSession) domain.Session {
	return domain.Session{
		ID:               s.Id,
		SN:               s.SN,
		UID:              s.Uid,
		SubjectName:      s.SubjectName,
		SubjectBirthYear: s.SubjectBirthYear,
		Status:           domain.SessionStatus(s.Status),
		RoundCount:       s.RoundCount,
		Ctime:            s.Ctime,
		Utime:            s.Utime,
	}
}
