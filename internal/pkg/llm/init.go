package llm

import (
	"Lumina/internal/api/config"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var llmClient llms.Model

// InitLLM 初始化写作助手模型客户端，未配置 api_key 时跳过（相关接口返回错误）
func InitLLM() error {
	cfg := config.Cfg.LLM

	if cfg.ApiKey == "" {
		log.Warn("LLM api_key 未配置，写作助手不可用")
		return nil
	}

	llm, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return err
	}

	llmClient = llm

	return nil
}
