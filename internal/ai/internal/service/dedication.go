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
	"strings"

	"github.com/dotting-labs/dotting/internal/ai/internal/domain"
	"github.com/dotting-labs/dotting/internal/ai/internal/service/llm"
	"github.com/dotting-labs/dotting/internal/interview"
	"github.com/dotting-labs/dotting/internal/order"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrPaymentRequired = order.ErrPaymentRequired
	ErrSessionNotFound = interview.ErrSessionNotFound
	ErrForbidden       = errors.New("无权操作该会话")
)

type DedicationService interface {
	// Suggest 生成题献文案建议。计量成本的操作, 先过付费闸门
	Suggest(ctx context.Context, uid int64, sessionSN string, hints []string) (string, error)
}

func NewDedicationService(interviewSvc interview.Service,
	gateSvc order.PaymentGateService,
	llmSvc llm.Service) DedicationService {
	return &dedicationService{
		interviewSvc: interviewSvc,
		gateSvc:      gateSvc,
		llmSvc:       llmSvc,
	}
}

type dedicationService struct {
	interviewSvc interview.Service
	gateSvc      order.PaymentGateService
	llmSvc       llm.Service
}

func (s *dedicationService) Suggest(ctx context.Context, uid int64, sessionSN string, hints []string) (string, error) {
	sess, err := s.interviewSvc.FindBySN(ctx, sessionSN)
	if err != nil {
		return "", err
	}
	if sess.UID != uid {
		return "", ErrForbidden
	}
	decision, err := s.gateSvc.Check(ctx, sess.ID)
	if err != nil {
		return "", err
	}
	if !decision.Allowed {
		return "", fmt.Errorf("%w: %s", ErrPaymentRequired, decision.Message)
	}
	resp, err := s.llmSvc.Invoke(ctx, domain.LLMRequest{
		Biz:    domain.BizDedication,
		Uid:    uid,
		Tid:    shortuuid.New(),
		Input:  hints,
		Prompt: buildPrompt(sess, hints),
	})
	if err != nil {
		return "", err
	}
	return resp.Answer, nil
}

func buildPrompt(sess interview.Session, hints []string) string {
	var sb strings.Builder
	sb.WriteString("你是一位传记编辑, 请为一本个人回忆录撰写一段题献。\n")
	sb.WriteString(fmt.Sprintf("传主: %s", sess.SubjectName))
	if sess.SubjectBirthYear > 0 {
		sb.WriteString(fmt.Sprintf(", 生于%d年", sess.SubjectBirthYear))
	}
	sb.WriteString("\n")
	if len(hints) > 0 {
		sb.WriteString("家人希望表达: ")
		sb.WriteString(strings.Join(hints, "; "))
		sb.WriteString("\n")
	}
	sb.WriteString("要求: 不超过60字, 真挚朴素, 不要堆砌辞藻。")
	return sb.String()
}
