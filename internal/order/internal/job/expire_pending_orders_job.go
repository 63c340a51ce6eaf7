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
	"fmt"
	"time"

	"github.com/dotting-labs/dotting/internal/order/internal/domain"
	"github.com/dotting-labs/dotting/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// ExpirePendingOrdersJob 把超时未支付的订单流转到 expired。
// 逐单走状态机, 保证审计日志和并发控制与人工流转一致。
type ExpirePendingOrdersJob struct {
	svc     service.Service
	limit   int
	minute  int64
	timeout time.Duration
	logger  *elog.Component
}

func NewExpirePendingOrdersJob(svc service.Service, limit int, minute int64, timeout time.Duration) *ExpirePendingOrdersJob {
	return &ExpirePendingOrdersJob{
		svc:     svc,
		limit:   limit,
		minute:  minute,
		timeout: timeout,
		logger:  elog.DefaultLogger,
	}
}

func (e *ExpirePendingOrdersJob) Name() string {
	return "ExpirePendingOrdersJob"
}

func (e *ExpirePendingOrdersJob) Run(_ context.Context) error {
	ctx, cancelFunc := context.WithTimeout(context.Background(), e.timeout)
	defer cancelFunc()
	// 冗余10秒
	utime := time.Now().Add(time.Duration(-e.minute)*time.Minute + 10*time.Second).UnixMilli()

	for {
		orders, total, err := e.svc.ListExpireCandidates(ctx, 0, e.limit, utime)
		if err != nil {
			return fmt.Errorf("获取超时订单失败: %w", err)
		}

		for _, order := range orders {
			_, err = e.svc.Transition(ctx, order.ID, domain.StatusExpired,
				domain.TransitionPayload{Reason: "支付超时"},
				domain.Actor{Role: "system"})
			if err != nil {
				// 单个订单失败不中断本轮, 可能是并发流转(刚好支付了)
				e.logger.Warn("订单过期流转失败",
					elog.FieldErr(err),
					elog.Int64("order_id", order.ID))
			}
		}

		if len(orders) < e.limit {
			break
		}
		if int64(e.limit) >= total {
			break
		}
	}
	return nil
}
