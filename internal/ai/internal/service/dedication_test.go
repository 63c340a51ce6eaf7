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

	"github.com/dotting-labs/dotting/internal/ai/internal/domain"
	"github.com/dotting-labs/dotting/internal/interview"
	"github.com/dotting-labs/dotting/internal/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInterviewService struct {
	interview.Service

	sessions map[string]interview.Session
}

func (f *fakeInterviewService) FindBySN(_ context.Context, sn string) (interview.Session, error) {
	sess, ok := f.sessions[sn]
	if !ok {
		return interview.Session{}, interview.ErrSessionNotFound
	}
	return sess, nil
}

type fakeGateService struct {
	decision order.GateDecision
}

func (f *fakeGateService) Check(_ context.Context, _ int64) (order.GateDecision, error) {
	return f.decision, nil
}

type fakeLLMService struct {
	lastReq domain.LLMRequest
	answer  string
}

func (f *fakeLLMService) Invoke(_ context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	f.lastReq = req
	return domain.LLMResponse{Tokens: 100, Answer: f.answer}, nil
}

func TestDedicationService_Suggest(t *testing.T) {
	sessions := map[string]interview.Session{
		"session-sn-1": {
			ID:          11,
			SN:          "session-sn-1",
			UID:         234,
			SubjectName: "王建国",
		},
	}

	t.Run("已支付_正常生成", func(t *testing.T) {
		llmSvc := &fakeLLMService{answer: "谨以此书, 献给我的父亲。"}
		svc := NewDedicationService(
			&fakeInterviewService{sessions: sessions},
			&fakeGateService{decision: order.GateDecision{Allowed: true}},
			llmSvc,
		)
		answer, err := svc.Suggest(context.Background(), 234, "session-sn-1", []string{"感谢父亲"})
		require.NoError(t, err)
		assert.Equal(t, "谨以此书, 献给我的父亲。", answer)
		assert.Equal(t, domain.BizDedication, llmSvc.lastReq.Biz)
		assert.NotEmpty(t, llmSvc.lastReq.Tid)
		assert.Contains(t, llmSvc.lastReq.Prompt, "王建国")
		assert.Contains(t, llmSvc.lastReq.Prompt, "感谢父亲")
	})

	t.Run("未支付被闸门拦截", func(t *testing.T) {
		svc := NewDedicationService(
			&fakeInterviewService{sessions: sessions},
			&fakeGateService{decision: order.GateDecision{
				Allowed: false,
				Message: "订单尚未支付, 支付后可使用该功能",
			}},
			&fakeLLMService{},
		)
		_, err := svc.Suggest(context.Background(), 234, "session-sn-1", nil)
		assert.ErrorIs(t, err, ErrPaymentRequired)
		assert.Contains(t, err.Error(), "订单尚未支付")
	})

	t.Run("非归属人无权操作", func(t *testing.T) {
		svc := NewDedicationService(
			&fakeInterviewService{sessions: sessions},
			&fakeGateService{decision: order.GateDecision{Allowed: true}},
			&fakeLLMService{},
		)
		_, err := svc.Suggest(context.Background(), 456, "session-sn-1", nil)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("会话不存在", func(t *testing.T) {
		svc := NewDedicationService(
			&fakeInterviewService{sessions: sessions},
			&fakeGateService{decision: order.GateDecision{Allowed: true}},
			&fakeLLMService{},
		)
		_, err := svc.Suggest(context.Background(), 234, "session-sn-404", nil)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
