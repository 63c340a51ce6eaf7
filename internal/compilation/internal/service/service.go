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
	"fmt"
	"time"

	"github.com/dotting-labs/dotting/internal/compilation/internal/domain"
	"github.com/dotting-labs/dotting/internal/compilation/internal/event"
	"github.com/dotting-labs/dotting/internal/compilation/internal/repository"
	"github.com/dotting-labs/dotting/internal/compilation/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrCompilationNotFound  = errors.New("书稿不存在")
	ErrForbidden            = errors.New("无权操作该书稿")
	ErrInvalidReviewStatus  = errors.New("书稿状态不允许该操作")
	ErrReviewStatusConflict = dao.ErrReviewStatusConflict
)

type Service interface {
	// Save 创建或更新草稿, 只允许 draft 状态下修改正文
	Save(ctx context.Context, c domain.Compilation) (int64, error)
	// Submit 提交审校: draft -> in_review
	Submit(ctx context.Context, id, uid int64) error
	// Approve 审校通过: in_review -> approved_for_pdf
	Approve(ctx context.Context, id int64) error
	// Reject 审校退回: in_review -> draft
	Reject(ctx context.Context, id int64) error
	// ConfirmPDF 用户确认电子版 PDF, 幂等:
	// 首次确认写入确认时间并触发归档事件, 重复确认直接返回成功且不改动原确认时间
	ConfirmPDF(ctx context.Context, id, uid int64) (domain.Compilation, error)
	// ApproveForPrint 确认可付印: pdf_confirmed -> approved_for_print
	ApproveForPrint(ctx context.Context, id int64) error
	// MarkPrinted 标记已印刷: approved_for_print -> printed, 由印刷单送达的副作用触发
	MarkPrinted(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (domain.Compilation, error)
	FindBySN(ctx context.Context, sn string) (domain.Compilation, error)
	FindBySessionID(ctx context.Context, sessionID int64) (domain.Compilation, error)
	List(ctx context.Context, offset, limit int) (int64, []domain.Compilation, error)
}

func NewService(repo repository.CompilationRepository, producer event.ArchiveRequestedEventProducer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

type service struct {
	repo     repository.CompilationRepository
	producer event.ArchiveRequestedEventProducer
	logger   *elog.Component
}

func (s *service) Save(ctx context.Context, c domain.Compilation) (int64, error) {
	if c.ID == 0 {
		c.ReviewStatus = domain.ReviewStatusDraft
		return s.repo.Create(ctx, c)
	}
	cur, err := s.FindByID(ctx, c.ID)
	if err != nil {
		return 0, err
	}
	if cur.UID != c.UID {
		return 0, ErrForbidden
	}
	if cur.ReviewStatus != domain.ReviewStatusDraft {
		return 0, fmt.Errorf("%w: %s", ErrInvalidReviewStatus, cur.ReviewStatus)
	}
	return c.ID, s.repo.UpdateDraft(ctx, c)
}

func (s *service) Submit(ctx context.Context, id, uid int64) error {
	cur, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if cur.UID != uid {
		return ErrForbidden
	}
	return s.transition(ctx, cur, domain.ReviewStatusInReview, nil)
}

func (s *service) Approve(ctx context.Context, id int64) error {
	cur, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.transition(ctx, cur, domain.ReviewStatusApprovedForPDF, nil)
}

func (s *service) Reject(ctx context.Context, id int64) error {
	cur, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.transition(ctx, cur, domain.ReviewStatusDraft, nil)
}

func (s *service) ConfirmPDF(ctx context.Context, id, uid int64) (domain.Compilation, error) {
	cur, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.Compilation{}, err
	}
	if cur.UID != uid {
		return domain.Compilation{}, ErrForbidden
	}
	// 重复确认视为成功, 原确认时间保持不变
	if cur.PDFConfirmedAt > 0 {
		return cur, nil
	}
	confirmedAt := time.Now().UnixMilli()
	err = s.transition(ctx, cur, domain.ReviewStatusPDFConfirmed, map[string]any{
		"pdf_confirmed_at": confirmedAt,
	})
	if err != nil {
		return domain.Compilation{}, err
	}
	cur.ReviewStatus = domain.ReviewStatusPDFConfirmed
	cur.PDFConfirmedAt = confirmedAt
	s.produceArchiveRequestedEvent(ctx, cur)
	return cur, nil
}

func (s *service) ApproveForPrint(ctx context.Context, id int64) error {
	cur, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.transition(ctx, cur, domain.ReviewStatusApprovedForPrint, nil)
}

func (s *service) MarkPrinted(ctx context.Context, id int64) error {
	cur, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.transition(ctx, cur, domain.ReviewStatusPrinted, nil)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Compilation, error) {
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Compilation{}, ErrCompilationNotFound
	}
	return c, err
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Compilation, error) {
	c, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Compilation{}, ErrCompilationNotFound
	}
	return c, err
}

func (s *service) FindBySessionID(ctx context.Context, sessionID int64) (domain.Compilation, error) {
	c, err := s.repo.FindBySessionID(ctx, sessionID)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Compilation{}, ErrCompilationNotFound
	}
	return c, err
}

func (s *service) List(ctx context.Context, offset, limit int) (int64, []domain.Compilation, error) {
	var (
		eg    errgroup.Group
		total int64
		cs    []domain.Compilation
	)
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		cs, err = s.repo.List(ctx, offset, limit)
		return err
	})
	return total, cs, eg.Wait()
}

func (s *service) transition(ctx context.Context, cur domain.Compilation, to domain.ReviewStatus, extra map[string]any) error {
	if !cur.ReviewStatus.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidReviewStatus, cur.ReviewStatus, to)
	}
	fields := map[string]any{
		"review_status": to.String(),
	}
	for k, v := range extra {
		fields[k] = v
	}
	return s.repo.UpdateReviewStatus(ctx, cur.ID, cur.ReviewStatus, fields)
}

func (s *service) produceArchiveRequestedEvent(ctx context.Context, c domain.Compilation) {
	evt := event.ArchiveRequestedEvent{
		CompilationSN: c.SN,
		UID:           c.UID,
	}
	// 发送失败只记录日志, 归档 worker 会另行对账补偿
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送归档事件失败",
			elog.FieldErr(err),
			elog.Any("event", evt))
	}
}
