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

	"github.com/dotting-labs/dotting/internal/order/internal/domain"
	"github.com/dotting-labs/dotting/internal/order/internal/repository"
	"github.com/dotting-labs/dotting/internal/order/internal/repository/dao"
)

var ErrPaymentRequired = errors.New("该操作需要先完成支付")

// PaymentGateService 付费闸门。任何会产生计量成本的操作(如调用大模型)
// 执行前都要先过这道闸门。每次判定都实时查库, 不做缓存,
// 避免在计费边界上使用过期的支付状态。
type PaymentGateService interface {
	Check(ctx context.Context, sessionID int64) (domain.GateDecision, error)
}

func NewPaymentGateService(repo repository.OrderRepository) PaymentGateService {
	return &paymentGateService{repo: repo}
}

type paymentGateService struct {
	repo repository.OrderRepository
}

func (s *paymentGateService) Check(ctx context.Context, sessionID int64) (domain.GateDecision, error) {
	order, err := s.repo.FindLatestBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return domain.GateDecision{
				Allowed: false,
				Message: "该会话尚未创建订单",
			}, nil
		}
		return domain.GateDecision{}, err
	}
	return domain.GateDecision{
		Allowed: allowed(order.Status),
		Status:  order.Status,
		Message: message(order.Status),
	}, nil
}

// allowed 支付完成及之后的履约状态放行, 支付前和未支付的终态拦截
func allowed(status domain.Status) bool {
	switch status {
	case domain.StatusPaid, domain.StatusInProduction, domain.StatusReadyToShip,
		domain.StatusShipped, domain.StatusDelivered, domain.StatusCompleted:
		return true
	}
	return false
}

func message(status domain.Status) string {
	switch status {
	case domain.StatusPendingPayment:
		return "订单尚未支付, 支付后可使用该功能"
	case domain.StatusExpired:
		return "订单已过期, 请重新下单"
	case domain.StatusCancelled:
		return "订单已取消, 请重新下单"
	case domain.StatusRefunded:
		return "订单已退款, 请重新下单"
	default:
		return ""
	}
}
