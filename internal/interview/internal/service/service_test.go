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

	"github.com/dotting-labs/dotting/internal/interview/internal/domain"
	"github.com/dotting-labs/dotting/internal/interview/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionRepository struct {
	sessions map[int64]domain.Session
}

func newFakeSessionRepository(ss ...domain.Session) *fakeSessionRepository {
	m := make(map[int64]domain.Session, len(ss))
	for _, s := range ss {
		m[s.ID] = s
	}
	return &fakeSessionRepository{sessions: m}
}

func (f *fakeSessionRepository) Create(_ context.Context, s domain.Session) (int64, error) {
	s.ID = int64(len(f.sessions) + 1)
	f.sessions[s.ID] = s
	return s.ID, nil
}

func (f *fakeSessionRepository) FindByID(_ context.Context, id int64) (domain.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return domain.Session{}, dao.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeSessionRepository) FindBySN(_ context.Context, sn string) (domain.Session, error) {
	for _, s := range f.sessions {
		if s.SN == sn {
			return s, nil
		}
	}
	return domain.Session{}, dao.ErrRecordNotFound
}

func (f *fakeSessionRepository) Update(_ context.Context, s domain.Session) error {
	f.sessions[s.ID] = s
	return nil
}

func (f *fakeSessionRepository) List(_ context.Context, _, _ int, _ int64) ([]domain.Session, error) {
	return nil, nil
}

func (f *fakeSessionRepository) Count(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func TestService_Start(t *testing.T) {
	repo := newFakeSessionRepository()
	svc := NewService(repo)
	id, err := svc.Start(context.Background(), domain.Session{
		SN:  "session-sn-1",
		UID: 234,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusInProgress, repo.sessions[id].Status)
}

func TestService_Complete(t *testing.T) {
	t.Run("归属人可以结束", func(t *testing.T) {
		repo := newFakeSessionRepository(domain.Session{
			ID:     1,
			UID:    234,
			Status: domain.SessionStatusInProgress,
		})
		svc := NewService(repo)
		require.NoError(t, svc.Complete(context.Background(), 234, 1))
		assert.Equal(t, domain.SessionStatusCompleted, repo.sessions[1].Status)
	})

	t.Run("非归属人看不到会话", func(t *testing.T) {
		repo := newFakeSessionRepository(domain.Session{
			ID:     1,
			UID:    234,
			Status: domain.SessionStatusInProgress,
		})
		svc := NewService(repo)
		assert.ErrorIs(t, svc.Complete(context.Background(), 456, 1), ErrSessionNotFound)
	})
}

func TestService_RecordRound(t *testing.T) {
	repo := newFakeSessionRepository(domain.Session{ID: 1, UID: 234, RoundCount: 2})
	svc := NewService(repo)
	require.NoError(t, svc.RecordRound(context.Background(), 1))
	require.NoError(t, svc.RecordRound(context.Background(), 1))
	assert.Equal(t, int64(4), repo.sessions[1].RoundCount)
}
