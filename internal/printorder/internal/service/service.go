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
	"strconv"
	"time"

	"github.com/dotting-labs/dotting/internal/compilation"
	"github.com/dotting-labs/dotting/internal/pkg/snowflake"
	"github.com/dotting-labs/dotting/internal/printorder/internal/domain"
	"github.com/dotting-labs/dotting/internal/printorder/internal/repository"
	"github.com/dotting-labs/dotting/internal/printorder/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrPrintOrderNotFound = errors.New("印刷单不存在")
	ErrInvalidTransition  = errors.New("印刷单状态不允许该流转")
	ErrMissingField       = errors.New("缺少必填字段")
	ErrStatusConflict     = dao.ErrStatusConflict
	ErrInvalidCompilation = errors.New("书稿未确认可付印")
)

// BizPrintOrder 印刷单在雪花ID生成器中的业务线编号
const BizPrintOrder uint = 1

type Service interface {
	// Create 从一份 approved_for_print 的书稿创建印刷单
	Create(ctx context.Context, compilationID int64) (domain.PrintOrder, error)
	// Transition 执行一次状态流转:
	// 校验邻接表 -> 校验必填字段 -> 条件更新 -> 尽力而为写审计日志。
	// delivered 成功落库后联动书稿标记 printed, 联动失败只记日志不回滚
	Transition(ctx context.Context, id int64, to domain.Status, payload domain.TransitionPayload, actor domain.Actor) error
	FindByID(ctx context.Context, id int64) (domain.PrintOrder, error)
	FindBySN(ctx context.Context, sn string) (domain.PrintOrder, error)
	List(ctx context.Context, offset, limit int) (int64, []domain.PrintOrder, error)
	ListStatusLogs(ctx context.Context, id int64) ([]domain.StatusLog, error)
}

func NewService(repo repository.PrintOrderRepository,
	compilationSvc compilation.Service,
	idGenerator snowflake.IDGenerator) Service {
	return &service{
		repo:           repo,
		compilationSvc: compilationSvc,
		idGenerator:    idGenerator,
		logger:         elog.DefaultLogger,
	}
}

type service struct {
	repo           repository.PrintOrderRepository
	compilationSvc compilation.Service
	idGenerator    snowflake.IDGenerator
	logger         *elog.Component
}

func (s *service) Create(ctx context.Context, compilationID int64) (domain.PrintOrder, error) {
	c, err := s.compilationSvc.FindByID(ctx, compilationID)
	if err != nil {
		return domain.PrintOrder{}, err
	}
	if c.ReviewStatus != compilation.ReviewStatusApprovedForPrint {
		return domain.PrintOrder{}, fmt.Errorf("%w: %s", ErrInvalidCompilation, c.ReviewStatus)
	}
	id, err := s.idGenerator.Generate(BizPrintOrder)
	if err != nil {
		return domain.PrintOrder{}, err
	}
	po := domain.PrintOrder{
		SN:            strconv.FormatInt(id.Int64(), 10),
		CompilationID: compilationID,
		Status:        domain.StatusPending,
	}
	po.ID, err = s.repo.Create(ctx, po)
	if err != nil {
		return domain.PrintOrder{}, err
	}
	return po, nil
}

func (s *service) Transition(ctx context.Context, id int64, to domain.Status, payload domain.TransitionPayload, actor domain.Actor) error {
	po, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !po.Status.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, po.Status, to)
	}
	if err = checkRequiredFields(to, payload); err != nil {
		return err
	}
	fields := applyTransition(to, payload, actor)
	if err = s.repo.UpdateStatus(ctx, po.ID, po.Status, fields); err != nil {
		return err
	}
	s.appendStatusLog(ctx, po, to, payload, actor)
	if to == domain.StatusDelivered {
		s.markCompilationPrinted(ctx, po)
	}
	return nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.PrintOrder, error) {
	po, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.PrintOrder{}, ErrPrintOrderNotFound
	}
	return po, err
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.PrintOrder, error) {
	po, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.PrintOrder{}, ErrPrintOrderNotFound
	}
	return po, err
}

func (s *service) List(ctx context.Context, offset, limit int) (int64, []domain.PrintOrder, error) {
	var (
		eg    errgroup.Group
		total int64
		pos   []domain.PrintOrder
	)
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		pos, err = s.repo.List(ctx, offset, limit)
		return err
	})
	return total, pos, eg.Wait()
}

func (s *service) ListStatusLogs(ctx context.Context, id int64) ([]domain.StatusLog, error) {
	return s.repo.ListStatusLogs(ctx, id)
}

// checkRequiredFields 发货只强制运单号, 承运商可以不填
func checkRequiredFields(to domain.Status, payload domain.TransitionPayload) error {
	switch to {
	case domain.StatusShipped:
		if payload.TrackingNumber == "" {
			return fmt.Errorf("%w: trackingNumber", ErrMissingField)
		}
	case domain.StatusClaimOpened:
		if payload.ClaimReason == "" {
			return fmt.Errorf("%w: claimReason", ErrMissingField)
		}
	case domain.StatusClaimResolved:
		if payload.ClaimResolution == "" {
			return fmt.Errorf("%w: claimResolution", ErrMissingField)
		}
	}
	return nil
}

func applyTransition(to domain.Status, payload domain.TransitionPayload, actor domain.Actor) map[string]any {
	now := time.Now().UnixMilli()
	fields := map[string]any{
		"status": to.String(),
	}
	switch to {
	case domain.StatusPrinting:
		fields["printing_at"] = now
	case domain.StatusShipped:
		fields["shipped_at"] = now
		fields["tracking_number"] = payload.TrackingNumber
		if payload.TrackingCarrier != "" {
			fields["tracking_carrier"] = payload.TrackingCarrier
		}
	case domain.StatusDelivered:
		fields["delivered_at"] = now
	case domain.StatusClaimOpened:
		fields["claim_opened_at"] = now
		fields["claim_reason"] = payload.ClaimReason
	case domain.StatusClaimResolved:
		fields["claim_resolved_at"] = now
		fields["claim_resolution"] = payload.ClaimResolution
		fields["processed_by"] = actor.ID
	}
	return fields
}

// appendStatusLog 尽力而为, 失败只记日志, 不影响主流转
func (s *service) appendStatusLog(ctx context.Context, po domain.PrintOrder, to domain.Status, payload domain.TransitionPayload, actor domain.Actor) {
	metadata, _ := json.Marshal(payload)
	err := s.repo.InsertStatusLog(ctx, domain.StatusLog{
		PrintOrderID: po.ID,
		FromStatus:   po.Status,
		ToStatus:     to,
		ActorID:      actor.ID,
		ActorRole:    actor.Role,
		Reason:       payload.ClaimReason,
		Metadata:     string(metadata),
	})
	if err != nil {
		s.logger.Error("写印刷单状态日志失败",
			elog.FieldErr(err),
			elog.Int64("printOrderID", po.ID),
			elog.String("from", po.Status.String()),
			elog.String("to", to.String()))
	}
}

// markCompilationPrinted 送达后的跨实体联动, 失败不回滚印刷单的主流转
func (s *service) markCompilationPrinted(ctx context.Context, po domain.PrintOrder) {
	if err := s.compilationSvc.MarkPrinted(ctx, po.CompilationID); err != nil {
		s.logger.Error("联动书稿标记已印刷失败",
			elog.FieldErr(err),
			elog.Int64("printOrderID", po.ID),
			elog.Int64("compilationID", po.CompilationID))
	}
}
