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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name    string
		from    Status
		to      Status
		wantRes bool
	}{
		{
			name:    "待支付到已支付",
			from:    StatusPendingPayment,
			to:      StatusPaid,
			wantRes: true,
		},
		{
			name:    "待支付到已取消",
			from:    StatusPendingPayment,
			to:      StatusCancelled,
			wantRes: true,
		},
		{
			name:    "待支付到已过期",
			from:    StatusPendingPayment,
			to:      StatusExpired,
			wantRes: true,
		},
		{
			name:    "待支付不能直接发货",
			from:    StatusPendingPayment,
			to:      StatusShipped,
			wantRes: false,
		},
		{
			name:    "已支付到制作中",
			from:    StatusPaid,
			to:      StatusInProduction,
			wantRes: true,
		},
		{
			name:    "已支付可以退款",
			from:    StatusPaid,
			to:      StatusRefunded,
			wantRes: true,
		},
		{
			name:    "制作中可以退款",
			from:    StatusInProduction,
			to:      StatusRefunded,
			wantRes: true,
		},
		{
			name:    "待发货不能退款",
			from:    StatusReadyToShip,
			to:      StatusRefunded,
			wantRes: false,
		},
		{
			name:    "已发货到已送达",
			from:    StatusShipped,
			to:      StatusDelivered,
			wantRes: true,
		},
		{
			name:    "已送达到已完成",
			from:    StatusDelivered,
			to:      StatusCompleted,
			wantRes: true,
		},
		{
			name:    "不能跨状态跳转",
			from:    StatusPaid,
			to:      StatusShipped,
			wantRes: false,
		},
		{
			name:    "已完成是终态",
			from:    StatusCompleted,
			to:      StatusPendingPayment,
			wantRes: false,
		},
		{
			name:    "已取消是终态",
			from:    StatusCancelled,
			to:      StatusPendingPayment,
			wantRes: false,
		},
		{
			name:    "已过期可以重新下单",
			from:    StatusExpired,
			to:      StatusPendingPayment,
			wantRes: true,
		},
		{
			name:    "未知状态一律拒绝",
			from:    Status("unknown"),
			to:      StatusPaid,
			wantRes: false,
		},
		{
			name:    "不能流转到未知状态",
			from:    StatusPendingPayment,
			to:      Status("unknown"),
			wantRes: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	terminals := []Status{StatusCompleted, StatusRefunded, StatusCancelled}
	for _, s := range terminals {
		assert.True(t, s.IsTerminal(), s.String())
	}
	nonTerminals := []Status{
		StatusPendingPayment, StatusPaid, StatusInProduction,
		StatusReadyToShip, StatusShipped, StatusDelivered, StatusExpired,
	}
	for _, s := range nonTerminals {
		assert.False(t, s.IsTerminal(), s.String())
	}
	// 未知状态既不合法也不是终态
	assert.False(t, Status("unknown").IsTerminal())
	assert.False(t, Status("unknown").IsValid())
}

func TestPackage_Price(t *testing.T) {
	testCases := []struct {
		name    string
		pkg     Package
		wantRes int64
	}{
		{
			name:    "电子版",
			pkg:     PackageDigital,
			wantRes: 9900,
		},
		{
			name:    "精装版",
			pkg:     PackageHardcover,
			wantRes: 29900,
		},
		{
			name:    "尊享版",
			pkg:     PackagePremium,
			wantRes: 49900,
		},
		{
			name:    "未知套餐",
			pkg:     Package("unknown"),
			wantRes: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.pkg.Price())
			assert.Equal(t, tc.wantRes != 0, tc.pkg.IsValid())
		})
	}
}
