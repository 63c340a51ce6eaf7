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

	"github.com/dotting-labs/dotting/internal/compilation/internal/domain"
	"github.com/dotting-labs/dotting/internal/compilation/internal/repository/cache"
	"github.com/dotting-labs/dotting/internal/compilation/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type CompilationRepository interface {
	Create(ctx context.Context, c domain.Compilation) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Compilation, error)
	FindBySN(ctx context.Context, sn string) (domain.Compilation, error)
	FindBySessionID(ctx context.Context, sessionID int64) (domain.Compilation, error)
	UpdateDraft(ctx context.Context, c domain.Compilation) error
	UpdateReviewStatus(ctx context.Context, id int64, from domain.ReviewStatus, fields map[string]any) error
	List(ctx context.Context, offset, limit int) ([]domain.Compilation, error)
	Count(ctx context.Context) (int64, error)
}

func NewRepository(d dao.CompilationDAO, c cache.CompilationCache) CompilationRepository {
	return &compilationRepository{dao: d, cache: c}
}

type compilationRepository struct {
	dao   dao.CompilationDAO
	cache cache.CompilationCache
}

func (r *compilationRepository) Create(ctx context.Context, c domain.Compilation) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(c))
}

func (r *compilationRepository) FindByID(ctx context.Context, id int64) (domain.Compilation, error) {
	res, err := r.cache.Get(ctx, id)
	if err == nil {
		return res, nil
	}
	c, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Compilation{}, err
	}
	res = r.toDomain(c)
	// 回填缓存失败可以忽略
	_ = r.cache.Set(ctx, res)
	return res, nil
}

func (r *compilationRepository) FindBySN(ctx context.Context, sn string) (domain.Compilation, error) {
	c, err := r.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Compilation{}, err
	}
	return r.toDomain(c), nil
}

func (r *compilationRepository) FindBySessionID(ctx context.Context, sessionID int64) (domain.Compilation, error) {
	c, err := r.dao.FindBySessionID(ctx, sessionID)
	if err != nil {
		return domain.Compilation{}, err
	}
	return r.toDomain(c), nil
}

func (r *compilationRepository) UpdateDraft(ctx context.Context, c domain.Compilation) error {
	err := r.dao.UpdateDraft(ctx, r.toEntity(c))
	if err != nil {
		return err
	}
	return r.cache.Delete(ctx, c.ID)
}

func (r *compilationRepository) UpdateReviewStatus(ctx context.Context, id int64, from domain.ReviewStatus, fields map[string]any) error {
	err := r.dao.UpdateReviewStatus(ctx, id, from.String(), fields)
	if err != nil {
		return err
	}
	return r.cache.Delete(ctx, id)
}

func (r *compilationRepository) List(ctx context.Context, offset, limit int) ([]domain.Compilation, error) {
	cs, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Compilation) domain.Compilation {
		return r.toDomain(src)
	}), nil
}

func (r *compilationRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *compilationRepository) toEntity(c domain.Compilation) dao.Compilation {
	return dao.Compilation{
		Id:             c.ID,
		SN:             c.SN,
		SessionId:      c.SessionID,
		Uid:            c.UID,
		Title:          c.Title,
		Content:        c.Content,
		ReviewStatus:   c.ReviewStatus.String(),
		PDFConfirmedAt: c.PDFConfirmedAt,
		Ctime:          c.Ctime,
		Utime:          c.Utime,
	}
}

func (r *compilationRepository) toDomain(c dao.Compilation) domain.Compilation {
	return domain.Compilation{
		ID:             c.Id,
		SN:             c.SN,
		SessionID:      c.SessionId,
		UID:            c.Uid,
		Title:          c.Title,
		Content:        c.Content,
		ReviewStatus:   domain.ReviewStatus(c.ReviewStatus),
		PDFConfirmedAt: c.PDFConfirmedAt,
		Ctime:          c.Ctime,
		Utime:          c.Utime,
	}
}
