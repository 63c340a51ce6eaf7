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

	"github.com/dotting-labs/dotting/internal/compilation/internal/domain"
	"github.com/dotting-labs/dotting/internal/compilation/internal/event"
	"github.com/dotting-labs/dotting/internal/compilation/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompilationRepository struct {
	compilations map[int64]domain.Compilation

	updateStatusErr error
	updatedFields   map[string]any
	updatedFrom     domain.ReviewStatus
}

func newFakeCompilationRepository(cs ...domain.Compilation) *fakeCompilationRepository {
	m := make(map[int64]domain.Compilation, len(cs))
	for _, c := range cs {
		m[c.ID] = c
	}
	return &fakeCompilationRepository{compilations: m}
}

func (f *fakeCompilationRepository) Create(_ context.Context, c domain.Compilation) (int64, error) {
	c.ID = int64(len(f.compilations) + 1)
	f.compilations[c.ID] = c
	return c.ID, nil
}

func (f *fakeCompilationRepository) FindByID(_ context.Context, id int64) (domain.Compilation, error) {
	c, ok := f.compilations[id]
	if !ok {
		return domain.Compilation{}, dao.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCompilationRepository) FindBySN(_ context.Context, sn string) (domain.Compilation, error) {
	for _, c := range f.compilations {
		if c.SN == sn {
			return c, nil
		}
	}
	return domain.Compilation{}, dao.ErrRecordNotFound
}

func (f *fakeCompilationRepository) FindBySessionID(_ context.Context, sessionID int64) (domain.Compilation, error) {
	for _, c := range f.compilations {
		if c.SessionID == sessionID {
			return c, nil
		}
	}
	return domain.Compilation{}, dao.ErrRecordNotFound
}

func (f *fakeCompilationRepository) UpdateDraft(_ context.Context, c domain.Compilation) error {
	cur := f.compilations[c.ID]
	cur.Title = c.Title
	cur.Content = c.Content
	f.compilations[c.ID] = cur
	return nil
}

func (f *fakeCompilationRepository) UpdateReviewStatus(_ context.Context, id int64,
	from domain.ReviewStatus, fields map[string]any) error {
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	f.updatedFrom = from
	f.updatedFields = fields
	c := f.compilations[id]
	c.ReviewStatus = domain.ReviewStatus(fields["review_status"].(string))
	if v, ok := fields["pdf_confirmed_at"]; ok {
		c.PDFConfirmedAt = v.(int64)
	}
	f.compilations[id] = c
	return nil
}

func (f *fakeCompilationRepository) List(_ context.Context, _, _ int) ([]domain.Compilation, error) {
	return nil, nil
}

func (f *fakeCompilationRepository) Count(_ context.Context) (int64, error) {
	return 0, nil
}

type fakeArchiveProducer struct {
	events []event.ArchiveRequestedEvent
	err    error
}

func (f *fakeArchiveProducer) Produce(_ context.Context, evt event.ArchiveRequestedEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, evt)
	return nil
}

func TestService_Save(t *testing.T) {
	t.Run("新建草稿", func(t *testing.T) {
		repo := newFakeCompilationRepository()
		svc := NewService(repo, &fakeArchiveProducer{})
		id, err := svc.Save(context.Background(), domain.Compilation{
			SN:        "comp-sn-1",
			UID:       234,
			SessionID: 11,
			Title:     "我的前半生",
			Content:   "第一章...",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ReviewStatusDraft, repo.compilations[id].ReviewStatus)
	})

	t.Run("非草稿状态禁止修改正文", func(t *testing.T) {
		repo := newFakeCompilationRepository(domain.Compilation{
			ID:           1,
			UID:          234,
			ReviewStatus: domain.ReviewStatusInReview,
		})
		svc := NewService(repo, &fakeArchiveProducer{})
		_, err := svc.Save(context.Background(), domain.Compilation{ID: 1, UID: 234, Content: "改动"})
		assert.ErrorIs(t, err, ErrInvalidReviewStatus)
	})

	t.Run("不能修改他人书稿", func(t *testing.T) {
		repo := newFakeCompilationRepository(domain.Compilation{
			ID:           1,
			UID:          234,
			ReviewStatus: domain.ReviewStatusDraft,
		})
		svc := NewService(repo, &fakeArchiveProducer{})
		_, err := svc.Save(context.Background(), domain.Compilation{ID: 1, UID: 456, Content: "改动"})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestService_ReviewFlow(t *testing.T) {
	t.Run("提交审校", func(t *testing.T) {
		repo := newFakeCompilationRepository(domain.Compilation{
			ID:           1,
			UID:          234,
			ReviewStatus: domain.ReviewStatusDraft,
		})
		svc := NewService(repo, &fakeArchiveProducer{})
		require.NoError(t, svc.Submit(context.Background(), 1, 234))
		assert.Equal(t, domain.ReviewStatusInReview, repo.compilations[1].ReviewStatus)
		assert.Equal(t, domain.ReviewStatusDraft, repo.updatedFrom)
	})

	t.Run("审校退回草稿", func(t *testing.T) {
		repo := newFakeCompilationRepository(domain.Compilation{
			ID:           1,
			UID:          234,
			ReviewStatus: domain.ReviewStatusInReview,
		})
		svc := NewService(repo, &fakeArchiveProducer{})
		require.NoError(t, svc.Reject(context.Background(), 1))
		assert.Equal(t, domain.ReviewStatusDraft, repo.compilations[1].ReviewStatus)
	})

	t.Run("草稿不能直接付印", func(t *testing.T) {
		repo := newFakeCompilationRepository(domain.Compilation{
			ID:           1,
			UID:          234,
			ReviewStatus: domain.ReviewStatusDraft,
		})
		svc := NewService(repo, &fakeArchiveProducer{})
		err := svc.ApproveForPrint(context.Background(), 1)
		assert.ErrorIs(t, err, ErrInvalidReviewStatus)
	})

	t.Run("并发冲突透传", func(t *testing.T) {
		repo := newFakeCompilationRepository(domain.Compilation{
			ID:           1,
			UID:          234,
			ReviewStatus: domain.ReviewStatusInReview,
		})
		repo.updateStatusErr = dao.ErrReviewStatusConflict
		svc := NewService(repo, &fakeArchiveProducer{})
		err := svc.Approve(context.Background(), 1)
		assert.ErrorIs(t, err, ErrReviewStatusConflict)
	})
}

func TestService_ConfirmPDF(t *testing.T) {
	t.Run("首次确认_触发归档事件", func(t *testing.T) {
		repo := newFakeCompilationRepository(domain.Compilation{
			ID:           1,
			SN:           "comp-sn-1",
			UID:          234,
			ReviewStatus: domain.ReviewStatusApprovedForPDF,
		})
		producer := &fakeArchiveProducer{}
		svc := NewService(repo, producer)

		confirmed, err := svc.ConfirmPDF(context.Background(), 1, 234)
		require.NoError(t, err)
		assert.Equal(t, domain.ReviewStatusPDFConfirmed, confirmed.ReviewStatus)
		assert.NotZero(t, confirmed.PDFConfirmedAt)
		require.Len(t, producer.events, 1)
		assert.Equal(t, event.ArchiveRequestedEvent{
			CompilationSN: "comp-sn-1",
			UID:           234,
		}, producer.events[0])
	})

	t.Run("重复确认幂等_确认时间不变", func(t *testing.T) {
		repo := newFakeCompilationRepository(domain.Compilation{
			ID:           1,
			SN:           "comp-sn-1",
			UID:          234,
			ReviewStatus: domain.ReviewStatusApprovedForPDF,
		})
		producer := &fakeArchiveProducer{}
		svc := NewService(repo, producer)

		first, err := svc.ConfirmPDF(context.Background(), 1, 234)
		require.NoError(t, err)

		second, err := svc.ConfirmPDF(context.Background(), 1, 234)
		require.NoError(t, err)
		assert.Equal(t, first.PDFConfirmedAt, second.PDFConfirmedAt)
		// 归档事件只发一次
		assert.Len(t, producer.events, 1)
	})

	t.Run("未审校通过不能确认", func(t *testing.T) {
		repo := newFakeCompilationRepository(domain.Compilation{
			ID:           1,
			UID:          234,
			ReviewStatus: domain.ReviewStatusInReview,
		})
		svc := NewService(repo, &fakeArchiveProducer{})
		_, err := svc.ConfirmPDF(context.Background(), 1, 234)
		assert.ErrorIs(t, err, ErrInvalidReviewStatus)
	})

	t.Run("不能确认他人书稿", func(t *testing.T) {
		repo := newFakeCompilationRepository(domain.Compilation{
			ID:           1,
			UID:          234,
			ReviewStatus: domain.ReviewStatusApprovedForPDF,
		})
		svc := NewService(repo, &fakeArchiveProducer{})
		_, err := svc.ConfirmPDF(context.Background(), 1, 456)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("归档事件失败不影响确认", func(t *testing.T) {
		repo := newFakeCompilationRepository(domain.Compilation{
			ID:           1,
			SN:           "comp-sn-1",
			UID:          234,
			ReviewStatus: domain.ReviewStatusApprovedForPDF,
		})
		svc := NewService(repo, &fakeArchiveProducer{err: errors.New("mock mq error")})
		confirmed, err := svc.ConfirmPDF(context.Background(), 1, 234)
		require.NoError(t, err)
		assert.Equal(t, domain.ReviewStatusPDFConfirmed, confirmed.ReviewStatus)
	})
}

func TestService_MarkPrinted(t *testing.T) {
	repo := newFakeCompilationRepository(domain.Compilation{
		ID:           1,
		UID:          234,
		ReviewStatus: domain.ReviewStatusApprovedForPrint,
	})
	svc := NewService(repo, &fakeArchiveProducer{})
	require.NoError(t, svc.MarkPrinted(context.Background(), 1))
	assert.Equal(t, domain.ReviewStatusPrinted, repo.compilations[1].ReviewStatus)
	// printed 是终态, 再次标记被拒绝
	assert.ErrorIs(t, svc.MarkPrinted(context.Background(), 1), ErrInvalidReviewStatus)
}
