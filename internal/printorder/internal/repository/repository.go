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

	"github.com/dotting-labs/dotting/internal/printorder/internal/domain"
	"github.com/dotting-labs/dotting/internal/printorder/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type PrintOrderRepository interface {
	Create(ctx context.Context, po domain.PrintOrder) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.PrintOrder, error)
	FindBySN(ctx context.Context, sn string) (domain.PrintOrder, error)
	UpdateStatus(ctx context.Context, id int64, from domain.Status, fields map[string]any) error
	List(ctx context.Context, offset, limit int) ([]domain.PrintOrder, error)
	Count(ctx context.Context) (int64, error)
	InsertStatusLog(ctx context.Context, l domain.StatusLog) error
	ListStatusLogs(ctx context.Context, printOrderID int64) ([]domain.StatusLog, error)
}

func NewRepository(d dao.PrintOrderDAO) PrintOrderRepository {
	return &printOrderRepository{dao: d}
}

type printOrderRepository struct {
	dao dao.PrintOrderDAO
}

func (r *printOrderRepository) Create(ctx context.Context, po domain.PrintOrder) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(po))
}

func (r *printOrderRepository) FindByID(ctx context.Context, id int64) (domain.PrintOrder, error) {
	po, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.PrintOrder{}, err
	}
	return r.toDomain(po), nil
}

func (r *printOrderRepository) FindBySN(ctx context.Context, sn string) (domain.PrintOrder, error) {
	po, err := r.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.PrintOrder{}, err
	}
	return r.toDomain(po), nil
}

func (r *printOrderRepository) UpdateStatus(ctx context.Context, id int64, from domain.Status, fields map[string]any) error {
	return r.dao.UpdateStatus(ctx, id, from.String(), fields)
}

func (r *printOrderRepository) List(ctx context.Context, offset, limit int) ([]domain.PrintOrder, error) {
	pos, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(pos, func(idx int, src dao.PrintOrder) domain.PrintOrder {
		return r.toDomain(src)
	}), nil
}

func (r *printOrderRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *printOrderRepository) InsertStatusLog(ctx context.Context, l domain.StatusLog) error {
	return r.dao.InsertStatusLog(ctx, dao.PrintOrderStatusLog{
		PrintOrderId: l.PrintOrderID,
		FromStatus:   l.FromStatus.String(),
		ToStatus:     l.ToStatus.String(),
		ActorId:      l.ActorID,
		ActorRole:    l.ActorRole,
		Reason:       l.Reason,
		Metadata:     l.Metadata,
	})
}

func (r *printOrderRepository) ListStatusLogs(ctx context.Context, printOrderID int64) ([]domain.StatusLog, error) {
	ls, err := r.dao.ListStatusLogs(ctx, printOrderID)
	if err != nil {
		return nil, err
	}
	return slice.Map(ls, func(idx int, src dao.PrintOrderStatusLog) domain.StatusLog {
		return domain.StatusLog{
			ID:           src.Id,
			PrintOrderID: src.PrintOrderId,
			FromStatus:   domain.Status(src.FromStatus),
			ToStatus:     domain.Status(src.ToStatus),
			ActorID:      src.ActorId,
			ActorRole:    src.ActorRole,
			Reason:       src.Reason,
			Metadata:     src.Metadata,
			Ctime:        src.Ctime,
		}
	}), nil
}

func (r *printOrderRepository) toEntity(po domain.PrintOrder) dao.PrintOrder {
	return dao.PrintOrder{
		Id:              po.ID,
		SN:              po.SN,
		CompilationId:   po.CompilationID,
		Status:          po.Status.String(),
		PrintingAt:      po.PrintingAt,
		ShippedAt:       po.ShippedAt,
		DeliveredAt:     po.DeliveredAt,
		ClaimOpenedAt:   po.ClaimOpenedAt,
		ClaimResolvedAt: po.ClaimResolvedAt,
		TrackingCarrier: po.TrackingCarrier,
		TrackingNumber:  po.TrackingNumber,
		ClaimReason:     po.ClaimReason,
		ClaimResolution: po.ClaimResolution,
		ProcessedBy:     po.ProcessedBy,
		Ctime:           po.Ctime,
		Utime:           po.Utime,
	}
}

func (r *printOrderRepository) toDomain(po dao.PrintOrder) domain.PrintOrder {
	return domain.PrintOrder{
		ID:              po.Id,
		SN:              po.SN,
		CompilationID:   po.CompilationId,
		Status:          domain.Status(po.Status),
		PrintingAt:      po.PrintingAt,
		ShippedAt:       po.ShippedAt,
		DeliveredAt:     po.DeliveredAt,
		ClaimOpenedAt:   po.ClaimOpenedAt,
		ClaimResolvedAt: po.ClaimResolvedAt,
		TrackingCarrier: po.TrackingCarrier,
		TrackingNumber:  po.TrackingNumber,
		ClaimReason:     po.ClaimReason,
		ClaimResolution: po.ClaimResolution,
		ProcessedBy:     po.ProcessedBy,
		Ctime:           po.Ctime,
		Utime:           po.Utime,
	}
}
