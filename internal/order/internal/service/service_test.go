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
	"testing"

	"github.com/dotting-labs/dotting/internal/order/internal/domain"
	"github.com/dotting-labs/dotting/internal/order/internal/event"
	"github.com/dotting-labs/dotting/internal/order/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepository struct {
	orders map[int64]domain.Order

	createErr       error
	updateStatusErr error
	insertLogErr    error

	updatedFields map[string]any
	updatedFrom   domain.Status
	statusLogs    []domain.StatusLog
}

func newFakeOrderRepository(orders ...domain.Order) *fakeOrderRepository {
	m := make(map[int64]domain.Order, len(orders))
	for _, o := range orders {
		m[o.ID] = o
	}
	return &fakeOrderRepository{orders: m}
}

func (f *fakeOrderRepository) Create(_ context.Context, order domain.Order) (domain.Order, error) {
	if f.createErr != nil {
		return domain.Order{}, f.createErr
	}
	order.ID = int64(len(f.orders) + 1)
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeOrderRepository) FindByID(_ context.Context, id int64) (domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return domain.Order{}, dao.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOrderRepository) FindBySN(_ context.Context, sn string) (domain.Order, error) {
	for _, o := range f.orders {
		if o.SN == sn {
			return o, nil
		}
	}
	return domain.Order{}, dao.ErrRecordNotFound
}

func (f *fakeOrderRepository) FindBySNAndBuyerID(_ context.Context, sn string, buyerID int64) (domain.Order, error) {
	for _, o := range f.orders {
		if o.SN == sn && o.BuyerID == buyerID {
			return o, nil
		}
	}
	return domain.Order{}, dao.ErrRecordNotFound
}

func (f *fakeOrderRepository) FindLatestBySessionID(_ context.Context, sessionID int64) (domain.Order, error) {
	var (
		latest domain.Order
		found  bool
	)
	for _, o := range f.orders {
		if o.SessionID == sessionID && o.ID >= latest.ID {
			latest = o
			found = true
		}
	}
	if !found {
		return domain.Order{}, dao.ErrRecordNotFound
	}
	return latest, nil
}

func (f *fakeOrderRepository) UpdateStatus(_ context.Context, id int64, from domain.Status, fields map[string]any) error {
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	f.updatedFrom = from
	f.updatedFields = fields
	return nil
}

func (f *fakeOrderRepository) List(_ context.Context, _, _ int, _ int64) ([]domain.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepository) Total(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func (f *fakeOrderRepository) ListAll(_ context.Context, _, _ int) ([]domain.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepository) TotalAll(_ context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeOrderRepository) ListPendingBefore(_ context.Context, _, _ int, _ int64) ([]domain.Order, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderRepository) InsertStatusLog(_ context.Context, l domain.StatusLog) (int64, error) {
	if f.insertLogErr != nil {
		return 0, f.insertLogErr
	}
	f.statusLogs = append(f.statusLogs, l)
	return int64(len(f.statusLogs)), nil
}

func (f *fakeOrderRepository) ListStatusLogs(_ context.Context, _ int64) ([]domain.StatusLog, error) {
	return f.statusLogs, nil
}

type fakeOrderPaidProducer struct {
	events []event.OrderPaidEvent
	err    error
}

func (f *fakeOrderPaidProducer) Produce(_ context.Context, evt event.OrderPaidEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, evt)
	return nil
}

func TestService_CreateOrder(t *testing.T) {
	t.Run("创建成功_初始为待支付且有效", func(t *testing.T) {
		repo := newFakeOrderRepository()
		svc := NewService(repo, &fakeOrderPaidProducer{})

		created, err := svc.CreateOrder(context.Background(), domain.Order{
			SN:        "order-sn-1",
			BuyerID:   234,
			SessionID: 11,
			Package:   domain.PackageHardcover,
			Amount:    domain.PackageHardcover.Price(),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPendingPayment, created.Status)
		assert.True(t, created.IsActive)
	})

	t.Run("非法套餐", func(t *testing.T) {
		svc := NewService(newFakeOrderRepository(), &fakeOrderPaidProducer{})
		_, err := svc.CreateOrder(context.Background(), domain.Order{
			SN:      "order-sn-2",
			Package: domain.Package("gold"),
		})
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("会话已有进行中订单", func(t *testing.T) {
		repo := newFakeOrderRepository()
		repo.createErr = dao.ErrActiveOrderExists
		svc := NewService(repo, &fakeOrderPaidProducer{})
		_, err := svc.CreateOrder(context.Background(), domain.Order{
			SN:        "order-sn-3",
			SessionID: 11,
			Package:   domain.PackageDigital,
		})
		assert.ErrorIs(t, err, ErrActiveOrderExists)
	})
}

func TestService_Transition(t *testing.T) {
	pendingOrder := func() domain.Order {
		return domain.Order{
			ID:        1,
			SN:        "order-sn-1",
			BuyerID:   234,
			SessionID: 11,
			Package:   domain.PackagePremium,
			Amount:    49900,
			Status:    domain.StatusPendingPayment,
			IsActive:  true,
		}
	}

	t.Run("支付成功_发送支付事件", func(t *testing.T) {
		repo := newFakeOrderRepository(pendingOrder())
		producer := &fakeOrderPaidProducer{}
		svc := NewService(repo, producer)

		updated, err := svc.Transition(context.Background(), 1, domain.StatusPaid,
			domain.TransitionPayload{}, domain.Actor{ID: 234, Role: domain.RoleMember})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPaid, updated.Status)
		assert.NotZero(t, updated.PaidAt)
		// 条件更新以原状态为前提
		assert.Equal(t, domain.StatusPendingPayment, repo.updatedFrom)

		require.Len(t, producer.events, 1)
		assert.Equal(t, event.OrderPaidEvent{
			OrderSN:   "order-sn-1",
			BuyerID:   234,
			SessionID: 11,
			Package:   "premium",
			Amount:    49900,
		}, producer.events[0])

		require.Len(t, repo.statusLogs, 1)
		assert.Equal(t, domain.StatusPendingPayment, repo.statusLogs[0].FromStatus)
		assert.Equal(t, domain.StatusPaid, repo.statusLogs[0].ToStatus)
		assert.Equal(t, int64(234), repo.statusLogs[0].ActorID)
	})

	t.Run("非法流转被拒绝", func(t *testing.T) {
		repo := newFakeOrderRepository(pendingOrder())
		svc := NewService(repo, &fakeOrderPaidProducer{})
		_, err := svc.Transition(context.Background(), 1, domain.StatusShipped,
			domain.TransitionPayload{ShippingCarrier: "顺丰", TrackingNumber: "SF123"},
			domain.Actor{ID: 1, Role: domain.RoleAdmin})
		assert.ErrorIs(t, err, ErrInvalidTransition)
		// 非法流转不产生审计日志
		assert.Empty(t, repo.statusLogs)
	})

	t.Run("发货缺少运单号", func(t *testing.T) {
		o := pendingOrder()
		o.Status = domain.StatusReadyToShip
		repo := newFakeOrderRepository(o)
		svc := NewService(repo, &fakeOrderPaidProducer{})
		_, err := svc.Transition(context.Background(), 1, domain.StatusShipped,
			domain.TransitionPayload{ShippingCarrier: "顺丰"},
			domain.Actor{ID: 1, Role: domain.RoleAdmin})
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("发货写入物流字段", func(t *testing.T) {
		o := pendingOrder()
		o.Status = domain.StatusReadyToShip
		repo := newFakeOrderRepository(o)
		svc := NewService(repo, &fakeOrderPaidProducer{})
		updated, err := svc.Transition(context.Background(), 1, domain.StatusShipped,
			domain.TransitionPayload{ShippingCarrier: "顺丰", TrackingNumber: "SF123"},
			domain.Actor{ID: 1, Role: domain.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, "顺丰", updated.ShippingCarrier)
		assert.Equal(t, "SF123", updated.TrackingNumber)
		assert.Equal(t, "SF123", repo.updatedFields["tracking_number"])
	})

	t.Run("退款缺少原因", func(t *testing.T) {
		o := pendingOrder()
		o.Status = domain.StatusPaid
		repo := newFakeOrderRepository(o)
		svc := NewService(repo, &fakeOrderPaidProducer{})
		_, err := svc.Transition(context.Background(), 1, domain.StatusRefunded,
			domain.TransitionPayload{}, domain.Actor{ID: 1, Role: domain.RoleAdmin})
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("退款默认全额", func(t *testing.T) {
		o := pendingOrder()
		o.Status = domain.StatusPaid
		repo := newFakeOrderRepository(o)
		svc := NewService(repo, &fakeOrderPaidProducer{})
		updated, err := svc.Transition(context.Background(), 1, domain.StatusRefunded,
			domain.TransitionPayload{RefundReason: "用户不满意"},
			domain.Actor{ID: 1, Role: domain.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, int64(49900), updated.RefundAmount)
		assert.False(t, updated.IsActive)
	})

	t.Run("取消后订单失效", func(t *testing.T) {
		repo := newFakeOrderRepository(pendingOrder())
		svc := NewService(repo, &fakeOrderPaidProducer{})
		updated, err := svc.Transition(context.Background(), 1, domain.StatusCancelled,
			domain.TransitionPayload{Reason: "不想要了"},
			domain.Actor{ID: 234, Role: domain.RoleMember})
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
		assert.Equal(t, "不想要了", updated.CancelReason)
		assert.Equal(t, false, repo.updatedFields["is_active"])
	})

	t.Run("过期重试恢复有效", func(t *testing.T) {
		o := pendingOrder()
		o.Status = domain.StatusExpired
		o.IsActive = false
		repo := newFakeOrderRepository(o)
		svc := NewService(repo, &fakeOrderPaidProducer{})
		updated, err := svc.Transition(context.Background(), 1, domain.StatusPendingPayment,
			domain.TransitionPayload{}, domain.Actor{ID: 234, Role: domain.RoleMember})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPendingPayment, updated.Status)
		assert.True(t, updated.IsActive)
	})

	t.Run("并发冲突", func(t *testing.T) {
		repo := newFakeOrderRepository(pendingOrder())
		repo.updateStatusErr = dao.ErrStatusConflict
		svc := NewService(repo, &fakeOrderPaidProducer{})
		_, err := svc.Transition(context.Background(), 1, domain.StatusPaid,
			domain.TransitionPayload{}, domain.Actor{ID: 234, Role: domain.RoleMember})
		assert.ErrorIs(t, err, ErrStatusConflict)
	})

	t.Run("订单不存在", func(t *testing.T) {
		svc := NewService(newFakeOrderRepository(), &fakeOrderPaidProducer{})
		_, err := svc.Transition(context.Background(), 99, domain.StatusPaid,
			domain.TransitionPayload{}, domain.Actor{ID: 234, Role: domain.RoleMember})
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("审计日志失败不影响主流转", func(t *testing.T) {
		repo := newFakeOrderRepository(pendingOrder())
		repo.insertLogErr = errors.New("mock db error")
		svc := NewService(repo, &fakeOrderPaidProducer{})
		updated, err := svc.Transition(context.Background(), 1, domain.StatusPaid,
			domain.TransitionPayload{}, domain.Actor{ID: 234, Role: domain.RoleMember})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPaid, updated.Status)
	})

	t.Run("支付事件发送失败不回滚", func(t *testing.T) {
		repo := newFakeOrderRepository(pendingOrder())
		svc := NewService(repo, &fakeOrderPaidProducer{err: errors.New("mock mq error")})
		updated, err := svc.Transition(context.Background(), 1, domain.StatusPaid,
			domain.TransitionPayload{}, domain.Actor{ID: 234, Role: domain.RoleMember})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPaid, updated.Status)
	})
}
