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

	"github.com/dotting-labs/dotting/internal/order/internal/domain"
	"github.com/dotting-labs/dotting/internal/order/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	FindLatestBySessionID(ctx context.Context, sessionID int64) (domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, from domain.Status, fields map[string]any) error
	List(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, error)
	Total(ctx context.Context, buyerID int64) (int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]domain.Order, error)
	TotalAll(ctx context.Context) (int64, error)
	ListPendingBefore(ctx context.Context, offset, limit int, utime int64) ([]domain.Order, int64, error)
	InsertStatusLog(ctx context.Context, l domain.StatusLog) (int64, error)
	ListStatusLogs(ctx context.Context, orderID int64) ([]domain.StatusLog, error)
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	oid, err := o.d.Create(ctx, o.toEntity(order))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	order, err := o.d.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(order), nil
}

func (o *orderRepository) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(order), nil
}

func (o *orderRepository) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := o.d.FindBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(order), nil
}

func (o *orderRepository) FindLatestBySessionID(ctx context.Context, sessionID int64) (domain.Order, error) {
	order, err := o.d.FindLatestBySessionID(ctx, sessionID)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(order), nil
}

func (o *orderRepository) UpdateStatus(ctx context.Context, id int64, from domain.Status, fields map[string]any) error {
	return o.d.UpdateStatus(ctx, id, from.String(), fields)
}

func (o *orderRepository) List(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, error) {
	os, err := o.d.List(ctx, offset, limit, buyerID)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src)
	}), nil
}

func (o *orderRepository) Total(ctx context.Context, buyerID int64) (int64, error) {
	return o.d.Count(ctx, buyerID)
}

func (o *orderRepository) ListAll(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	os, err := o.d.ListAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src)
	}), nil
}

func (o *orderRepository) TotalAll(ctx context.Context) (int64, error) {
	return o.d.CountAll(ctx)
}

func (o *orderRepository) ListPendingBefore(ctx context.Context, offset, limit int, utime int64) ([]domain.Order, int64, error) {
	os, total, err := o.d.ListPendingBefore(ctx, offset, limit, utime)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src)
	}), total, nil
}

func (o *orderRepository) InsertStatusLog(ctx context.Context, l domain.StatusLog) (int64, error) {
	return o.d.InsertStatusLog(ctx, dao.OrderStatusLog{
		OrderId:    l.OrderID,
		FromStatus: l.FromStatus.String(),
		ToStatus:   l.ToStatus.String(),
		ActorId:    l.ActorID,
		ActorRole:  l.ActorRole,
		Reason:     l.Reason,
		Metadata:   l.Metadata,
	})
}

func (o *orderRepository) ListStatusLogs(ctx context.Context, orderID int64) ([]domain.StatusLog, error) {
	ls, err := o.d.ListStatusLogs(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return slice.Map(ls, func(idx int, src dao.OrderStatusLog) domain.StatusLog {
		return domain.StatusLog{
			ID:         src.Id,
			OrderID:    src.OrderId,
			FromStatus: domain.Status(src.FromStatus),
			ToStatus:   domain.Status(src.ToStatus),
			ActorID:    src.ActorId,
			ActorRole:  src.ActorRole,
			Reason:     src.Reason,
			Metadata:   src.Metadata,
			Ctime:      src.Ctime,
		}
	}), nil
}

func (o *orderRepository) toEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:              order.ID,
		SN:              order.SN,
		BuyerId:         order.BuyerID,
		SessionId:       order.SessionID,
		Package:         string(order.Package),
		Amount:          order.Amount,
		Status:          order.Status.String(),
		IsActive:        order.IsActive,
		PaidAt:          order.PaidAt,
		ShippedAt:       order.ShippedAt,
		DeliveredAt:     order.DeliveredAt,
		CompletedAt:     order.CompletedAt,
		CancelledAt:     order.CancelledAt,
		RefundedAt:      order.RefundedAt,
		ShippingCarrier: order.ShippingCarrier,
		TrackingNumber:  order.TrackingNumber,
		CancelReason:    order.CancelReason,
		RefundAmount:    order.RefundAmount,
		RefundReason:    order.RefundReason,
		AdminNote:       order.AdminNote,
	}
}

func (o *orderRepository) toDomain(order dao.Order) domain.Order {
	return domain.Order{
		ID:              order.Id,
		SN:              order.SN,
		BuyerID:         order.BuyerId,
		SessionID:       order.SessionId,
		Package:         domain.Package(order.Package),
		Amount:          order.Amount,
		Status:          domain.Status(order.Status),
		IsActive:        order.IsActive,
		PaidAt:          order.PaidAt,
		ShippedAt:       order.ShippedAt,
		DeliveredAt:     order.DeliveredAt,
		CompletedAt:     order.CompletedAt,
		CancelledAt:     order.CancelledAt,
		RefundedAt:      order.RefundedAt,
		ShippingCarrier: order.ShippingCarrier,
		TrackingNumber:  order.TrackingNumber,
		CancelReason:    order.CancelReason,
		RefundAmount:    order.RefundAmount,
		RefundReason:    order.RefundReason,
		AdminNote:       order.AdminNote,
		Ctime:           order.Ctime,
		Utime:           order.Utime,
	}
}
