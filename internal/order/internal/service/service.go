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
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dotting-labs/dotting/internal/order/internal/domain"
	"github.com/dotting-labs/dotting/internal/order/internal/event"
	"github.com/dotting-labs/dotting/internal/order/internal/repository"
	"github.com/dotting-labs/dotting/internal/order/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound     = errors.New("订单未找到")
	ErrInvalidTransition = errors.New("非法的状态流转")
	ErrMissingField      = errors.New("缺少必填字段")
	ErrStatusConflict    = errors.New("订单状态已被并发修改")
	ErrActiveOrderExists = errors.New("会话已存在进行中的订单")
)

type Service interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrder(ctx context.Context, orderSN string, buyerID int64) (domain.Order, error)
	FindOrderBySN(ctx context.Context, orderSN string) (domain.Order, error)
	// Transition 校验并应用一次单步状态流转。校验顺序: 邻接表、必填字段;
	// 写入以当前状态作为条件, 并发流转只会有一个成功。
	// 审计日志为尽力而为, 写入失败不回滚主流转。
	Transition(ctx context.Context, orderID int64, to domain.Status,
		payload domain.TransitionPayload, actor domain.Actor) (domain.Order, error)
	ListOrders(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, int64, error)
	ListAllOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	ListStatusLogs(ctx context.Context, orderID int64) ([]domain.StatusLog, error)
	// ListExpireCandidates 查找超时未支付的订单, 由定时任务驱动流转到 expired
	ListExpireCandidates(ctx context.Context, offset, limit int, utime int64) ([]domain.Order, int64, error)
}

func NewService(repo repository.OrderRepository, producer event.OrderPaidEventProducer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

type service struct {
	repo     repository.OrderRepository
	producer event.OrderPaidEventProducer
	logger   *elog.Component
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if !order.Package.IsValid() {
		return domain.Order{}, fmt.Errorf("%w: package", ErrMissingField)
	}
	order.Status = domain.StatusPendingPayment
	order.IsActive = true
	created, err := s.repo.Create(ctx, order)
	if err != nil {
		if errors.Is(err, dao.ErrActiveOrderExists) {
			return domain.Order{}, fmt.Errorf("%w: session_id=%d", ErrActiveOrderExists, order.SessionID)
		}
		return domain.Order{}, err
	}
	return created, nil
}

func (s *service) FindOrder(ctx context.Context, orderSN string, buyerID int64) (domain.Order, error) {
	order, err := s.repo.FindBySNAndBuyerID(ctx, orderSN, buyerID)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return domain.Order{}, fmt.Errorf("%w: sn=%s", ErrOrderNotFound, orderSN)
		}
		return domain.Order{}, err
	}
	return order, nil
}

func (s *service) FindOrderBySN(ctx context.Context, orderSN string) (domain.Order, error) {
	order, err := s.repo.FindBySN(ctx, orderSN)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return domain.Order{}, fmt.Errorf("%w: sn=%s", ErrOrderNotFound, orderSN)
		}
		return domain.Order{}, err
	}
	return order, nil
}

func (s *service) Transition(ctx context.Context, orderID int64, to domain.Status,
	payload domain.TransitionPayload, actor domain.Actor) (domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			return domain.Order{}, fmt.Errorf("%w: id=%d", ErrOrderNotFound, orderID)
		}
		return domain.Order{}, err
	}

	if !order.Status.CanTransitionTo(to) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, to)
	}
	if err = checkRequiredFields(to, payload); err != nil {
		return domain.Order{}, err
	}

	from := order.Status
	fields := s.applyTransition(&order, to, payload)
	err = s.repo.UpdateStatus(ctx, order.ID, from, fields)
	if err != nil {
		if errors.Is(err, dao.ErrStatusConflict) {
			return domain.Order{}, fmt.Errorf("%w: id=%d", ErrStatusConflict, orderID)
		}
		return domain.Order{}, err
	}

	s.appendStatusLog(ctx, order.ID, from, to, payload, actor)

	if to == domain.StatusPaid {
		s.produceOrderPaidEvent(ctx, order)
	}
	return order, nil
}

func checkRequiredFields(to domain.Status, payload domain.TransitionPayload) error {
	switch to {
	case domain.StatusShipped:
		if payload.ShippingCarrier == "" || payload.TrackingNumber == "" {
			return fmt.Errorf("%w: 发货需要承运商和运单号", ErrMissingField)
		}
	case domain.StatusRefunded:
		if payload.RefundReason == "" {
			return fmt.Errorf("%w: 退款需要退款原因", ErrMissingField)
		}
	}
	return nil
}

// applyTransition 计算目标状态的派生字段, 同步修改内存中的订单并返回条件更新的字段集
func (s *service) applyTransition(order *domain.Order, to domain.Status,
	payload domain.TransitionPayload) map[string]any {
	now := time.Now().UnixMilli()
	fields := map[string]any{"status": to.String()}
	switch to {
	case domain.StatusPaid:
		order.PaidAt = now
		fields["paid_at"] = now
	case domain.StatusShipped:
		order.ShippedAt = now
		order.ShippingCarrier = payload.ShippingCarrier
		order.TrackingNumber = payload.TrackingNumber
		fields["shipped_at"] = now
		fields["shipping_carrier"] = payload.ShippingCarrier
		fields["tracking_number"] = payload.TrackingNumber
	case domain.StatusDelivered:
		order.DeliveredAt = now
		fields["delivered_at"] = now
	case domain.StatusCompleted:
		order.CompletedAt = now
		order.IsActive = false
		fields["completed_at"] = now
		fields["is_active"] = false
	case domain.StatusCancelled:
		order.CancelledAt = now
		order.CancelReason = payload.Reason
		order.IsActive = false
		fields["cancelled_at"] = now
		fields["cancel_reason"] = payload.Reason
		fields["is_active"] = false
	case domain.StatusRefunded:
		amount := payload.RefundAmount
		if amount == 0 {
			// 未指定退款金额时默认全额退款
			amount = order.Amount
		}
		order.RefundedAt = now
		order.RefundAmount = amount
		order.RefundReason = payload.RefundReason
		order.IsActive = false
		fields["refunded_at"] = now
		fields["refund_amount"] = amount
		fields["refund_reason"] = payload.RefundReason
		fields["is_active"] = false
	case domain.StatusExpired:
		order.IsActive = false
		fields["is_active"] = false
	case domain.StatusPendingPayment:
		// expired -> pending_payment 的重试回边, 重新激活订单。
		// 历史时间戳保留在审计日志里, 不做清理。
		order.IsActive = true
		fields["is_active"] = true
	}
	if payload.AdminNote != "" {
		order.AdminNote = payload.AdminNote
		fields["admin_note"] = payload.AdminNote
	}
	order.Status = to
	order.Utime = now
	return fields
}

func (s *service) appendStatusLog(ctx context.Context, orderID int64,
	from, to domain.Status, payload domain.TransitionPayload, actor domain.Actor) {
	metadata, _ := json.Marshal(payload)
	_, err := s.repo.InsertStatusLog(ctx, domain.StatusLog{
		OrderID:    orderID,
		FromStatus: from,
		ToStatus:   to,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Reason:     payload.Reason,
		Metadata:   string(metadata),
	})
	if err != nil {
		// 审计日志失败不影响主流转
		s.logger.Error("写入订单状态日志失败",
			elog.FieldErr(err),
			elog.Int64("order_id", orderID),
			elog.String("from", from.String()),
			elog.String("to", to.String()))
	}
}

func (s *service) produceOrderPaidEvent(ctx context.Context, order domain.Order) {
	evt := event.OrderPaidEvent{
		OrderSN:   order.SN,
		BuyerID:   order.BuyerID,
		SessionID: order.SessionID,
		Package:   string(order.Package),
		Amount:    order.Amount,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		// 通知失败不回滚支付流转
		s.logger.Error("发送订单支付事件失败",
			elog.FieldErr(err),
			elog.String("order_sn", order.SN))
	}
}

func (s *service) ListOrders(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.List(ctx, offset, limit, buyerID)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx, buyerID)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListAllOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListAll(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalAll(ctx)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListStatusLogs(ctx context.Context, orderID int64) ([]domain.StatusLog, error) {
	return s.repo.ListStatusLogs(ctx, orderID)
}

func (s *service) ListExpireCandidates(ctx context.Context, offset, limit int, utime int64) ([]domain.Order, int64, error) {
	return s.repo.ListPendingBefore(ctx, offset, limit, utime)
}
