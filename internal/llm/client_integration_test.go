package llm

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fachebot/ko-digest-bot/internal/config"
	"github.com/stretchr/testify/require"
)

// integrationTestConfig 从环境变量构建测试配置，若 LLM_API_KEY 未设置则跳过
func integrationTestConfig(t *testing.T) *config.LLM {
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" || apiKey == "your-api-key-here" {
		t.Skip("跳过集成测试：请设置 LLM_API_KEY 环境变量")
	}
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	return &config.LLM{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		Model:      model,
		RetryModel: model,
	}
}

func TestComplete_Integration(t *testing.T) {
	cfg := integrationTestConfig(t)
	client := NewClient(cfg, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	system := "You are an assistant for question-answering tasks." +
		"All of the context provided comes from the content provided" +
		" below so each response should be based on what is provided.\n\n" +
		"Context:Title: 周报\nContent: 本周完成了接口联调与回归测试，下周准备灰度发布。\n"

	result, err := client.Complete(ctx, client.Model(), system, []Turn{
		{Role: RoleUser, Content: "As a professional summarizer, create a brief summary of the provided text in one sentence."},
	})
	require.NoError(t, err)
	require.NotEmpty(t, result)
	t.Logf("摘要结果: %s", result)
}
