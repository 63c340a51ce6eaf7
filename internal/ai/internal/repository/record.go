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
	"database/sql"

	"github.com/dotting-labs/dotting/internal/ai/internal/domain"
	"github.com/dotting-labs/dotting/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/ekit/sqlx"
)

type CallRecordRepo interface {
	Save(ctx context.Context, r domain.CallRecord) (int64, error)
}

func NewCallRecordRepo(d dao.CallRecordDAO) CallRecordRepo {
	return &callRecordRepo{dao: d}
}

type callRecordRepo struct {
	dao dao.CallRecordDAO
}

func (r *callRecordRepo) Save(ctx context.Context, rec domain.CallRecord) (int64, error) {
	return r.dao.Save(ctx, dao.CallRecord{
		Id:     rec.Id,
		Tid:    rec.Tid,
		Uid:    rec.Uid,
		Biz:    rec.Biz,
		Tokens: rec.Tokens,
		Status: rec.Status.ToUint8(),
		Input:  sqlx.JsonColumn[[]string]{Val: rec.Input, Valid: len(rec.Input) > 0},
		Answer: sql.NullString{String: rec.Answer, Valid: rec.Answer != ""},
	})
}
