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

package job

import (
	"context"
	"testing"
	"time"

	"github.com/dotting-labs/dotting/internal/order/internal/domain"
	"github.com/dotting-labs/dotting/internal/order/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpireService struct {
	service.Service

	candidates  []domain.Order
	transitions []int64
	failIDs     map[int64]error
}

func (f *fakeExpireService) ListExpireCandidates(_ context.Context, _, limit int, _ int64) ([]domain.Order, int64, error) {
	if len(f.candidates) > limit {
		batch := f.candidates[:limit]
		f.candidates = f.candidates[limit:]
		return batch, int64(len(batch) + len(f.candidates)), nil
	}
	batch := f.candidates
	f.candidates = nil
	return batch, int64(len(batch)), nil
}

func (f *fakeExpireService) Transition(_ context.Context, orderID int64, to domain.Status,
	_ domain.TransitionPayload, actor domain.Actor) (domain.Order, error) {
	if err, ok := f.failIDs[orderID]; ok {
		return domain.Order{}, err
	}
	f.transitions = append(f.transitions, orderID)
	return domain.Order{ID: orderID, Status: to}, nil
}

func TestExpirePendingOrdersJob_Run(t *testing.T) {
	t.Run("超时订单全部过期", func(t *testing.T) {
		svc := &fakeExpireService{
			candidates: []domain.Order{
				{ID: 1, Status: domain.StatusPendingPayment},
				{ID: 2, Status: domain.StatusPendingPayment},
				{ID: 3, Status: domain.StatusPendingPayment},
			},
		}
		job := NewExpirePendingOrdersJob(svc, 10, 30, time.Minute)
		require.NoError(t, job.Run())
		assert.Equal(t, []int64{1, 2, 3}, svc.transitions)
	})

	t.Run("分批处理", func(t *testing.T) {
		svc := &fakeExpireService{
			candidates: []domain.Order{
				{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5},
			},
		}
		job := NewExpirePendingOrdersJob(svc, 2, 30, time.Minute)
		require.NoError(t, job.Run())
		assert.Equal(t, []int64{1, 2, 3, 4, 5}, svc.transitions)
	})

	t.Run("单个订单冲突不中断本轮", func(t *testing.T) {
		svc := &fakeExpireService{
			candidates: []domain.Order{
				{ID: 1}, {ID: 2}, {ID: 3},
			},
			// 2号订单刚好被支付, 条件更新失败
			failIDs: map[int64]error{2: service.ErrStatusConflict},
		}
		job := NewExpirePendingOrdersJob(svc, 10, 30, time.Minute)
		require.NoError(t, job.Run())
		assert.Equal(t, []int64{1, 3}, svc.transitions)
	})
}
