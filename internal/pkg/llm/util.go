package llm

import (
	"Lumina/internal/api/config"
	"context"
	"errors"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
)

// FetchText 单轮文本生成，无重试无编排，纯透传
func FetchText(ctx context.Context, userPrompt string, temp float64) (string, error) {
	if llmClient == nil {
		return "", errors.New("llm client is not initialized")
	}

	if err := TextSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer TextSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	log.InfoContext(ctx, "正在请求AI大模型")
	resp, err := llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.Model),
		llms.WithTemperature(temp),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("模型未返回内容")
	}

	return resp.Choices[0].Content, nil
}
