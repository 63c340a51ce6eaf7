package zhipu

import (
	"context"

	"github.com/dotting-labs/dotting/internal/ai/internal/domain"
	"github.com/yankeguo/zhipu"
)

// Handler 智谱平台出口, 链上的最后一环, 不会再调用 next
type Handler struct {
	client *zhipu.Client
	model  string
}

func NewHandler(apikey, model string) (*Handler, error) {
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apikey))
	if err != nil {
		return nil, err
	}
	return &Handler{
		client: client,
		model:  model,
	}, nil
}

func (h *Handler) Name() string {
	return "zhipu"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	chatReq := h.client.ChatCompletion(h.model).
		AddMessage(zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleUser,
			Content: req.Prompt,
		})
	completion, err := chatReq.Do(ctx)
	if err != nil {
		return domain.LLMResponse{}, err
	}
	resp := domain.LLMResponse{
		Tokens: completion.Usage.TotalTokens,
	}
	if len(completion.Choices) > 0 {
		resp.Answer = completion.Choices[0].Message.Content
	}
	return resp, nil
}
