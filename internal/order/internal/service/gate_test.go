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

	"github.com/dotting-labs/dotting/internal/order/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentGateService_Check(t *testing.T) {
	testCases := []struct {
		name        string
		status      domain.Status
		wantAllowed bool
	}{
		{
			name:        "待支付拦截",
			status:      domain.StatusPendingPayment,
			wantAllowed: false,
		},
		{
			name:        "已支付放行",
			status:      domain.StatusPaid,
			wantAllowed: true,
		},
		{
			name:        "制作中放行",
			status:      domain.StatusInProduction,
			wantAllowed: true,
		},
		{
			name:        "待发货放行",
			status:      domain.StatusReadyToShip,
			wantAllowed: true,
		},
		{
			name:        "已发货放行",
			status:      domain.StatusShipped,
			wantAllowed: true,
		},
		{
			name:        "已送达放行",
			status:      domain.StatusDelivered,
			wantAllowed: true,
		},
		{
			name:        "已完成放行",
			status:      domain.StatusCompleted,
			wantAllowed: true,
		},
		{
			name:        "已取消拦截",
			status:      domain.StatusCancelled,
			wantAllowed: false,
		},
		{
			name:        "已退款拦截",
			status:      domain.StatusRefunded,
			wantAllowed: false,
		},
		{
			name:        "已过期拦截",
			status:      domain.StatusExpired,
			wantAllowed: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeOrderRepository(domain.Order{
				ID:        1,
				SessionID: 11,
				Status:    tc.status,
			})
			svc := NewPaymentGateService(repo)
			decision, err := svc.Check(context.Background(), 11)
			require.NoError(t, err)
			assert.Equal(t, tc.wantAllowed, decision.Allowed)
			assert.Equal(t, tc.status, decision.Status)
			if !tc.wantAllowed {
				assert.NotEmpty(t, decision.Message)
			}
		})
	}

	t.Run("没有订单时拦截", func(t *testing.T) {
		svc := NewPaymentGateService(newFakeOrderRepository())
		decision, err := svc.Check(context.Background(), 11)
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.NotEmpty(t, decision.Message)
	})

	t.Run("以会话最新一笔订单为准", func(t *testing.T) {
		svc := NewPaymentGateService(newFakeOrderRepository(
			domain.Order{ID: 1, SessionID: 11, Status: domain.StatusCancelled},
			domain.Order{ID: 2, SessionID: 11, Status: domain.StatusPaid},
		))
		decision, err := svc.Check(context.Background(), 11)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	})
}
