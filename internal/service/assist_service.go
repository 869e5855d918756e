package service

import (
	"Lumina/internal/pkg/llm"
	"context"
	"fmt"
)

// summaryClipLimit 摘要输入截断长度，控制上下文开销
const summaryClipLimit = 2000

type AssistService interface {
	GenerateIdeas(ctx context.Context, topic string) (string, error)
	GenerateSummary(ctx context.Context, content string) (string, error)
	ImproveWriting(ctx context.Context, text string) (string, error)
}

type assistServiceImpl struct{}

func NewAssistService() AssistService {
	return &assistServiceImpl{}
}

func (s *assistServiceImpl) GenerateIdeas(ctx context.Context, topic string) (string, error) {
	prompt := fmt.Sprintf(
		`Generate 3 catchy blog post titles and a brief 1-sentence premise for a blog about "%s". The output MUST be in Chinese. Format clearly.`,
		topic)
	return llm.FetchText(ctx, prompt, 0.7)
}

func (s *assistServiceImpl) GenerateSummary(ctx context.Context, content string) (string, error) {
	clipped := []rune(content)
	if len(clipped) > summaryClipLimit {
		clipped = clipped[:summaryClipLimit]
	}
	prompt := fmt.Sprintf(
		"Summarize the following blog post content into a 2-sentence excerpt suitable for a card preview. The output MUST be in Chinese:\n\n%s",
		string(clipped))
	return llm.FetchText(ctx, prompt, 0.5)
}

func (s *assistServiceImpl) ImproveWriting(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(
		"Improve the following text for clarity, flow, and grammar. The output MUST be in Chinese. Keep it in Markdown format if provided:\n\n%s",
		text)
	return llm.FetchText(ctx, prompt, 0.3)
}
