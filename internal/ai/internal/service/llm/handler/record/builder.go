package record

import (
	"context"

	"github.com/dotting-labs/dotting/internal/ai/internal/domain"
	"github.com/dotting-labs/dotting/internal/ai/internal/repository"
	"github.com/dotting-labs/dotting/internal/ai/internal/service/llm/handler"
	"github.com/gotomicro/ego/core/elog"
)

type HandlerBuilder struct {
	repo   repository.CallRecordRepo
	logger *elog.Component
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandler(repo repository.CallRecordRepo) *HandlerBuilder {
	return &HandlerBuilder{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (h *HandlerBuilder) Name() string {
	return "record"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		rec := domain.CallRecord{
			Tid:    req.Tid,
			Biz:    req.Biz,
			Uid:    req.Uid,
			Input:  req.Input,
			Status: domain.RecordStatusProcessing,
		}
		defer func() {
			if _, err1 := h.repo.Save(ctx, rec); err1 != nil {
				h.logger.Error("保存 LLM 调用记录失败", elog.FieldErr(err1))
			}
		}()
		resp, err := next.Handle(ctx, req)
		if err != nil {
			rec.Status = domain.RecordStatusFailed
			return domain.LLMResponse{}, err
		}
		rec.Tokens = resp.Tokens
		rec.Status = domain.RecordStatusSuccess
		rec.Answer = resp.Answer
		return resp, err
	})
}
