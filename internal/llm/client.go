package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fachebot/ko-digest-bot/internal/config"
	"github.com/sashabaranov/go-openai"
)

// defaultMaxOutputTokens 单次请求默认的最大输出 tokens
const defaultMaxOutputTokens = 4096

// openAIClientInterface 定义 OpenAI 客户端接口，便于测试
type openAIClientInterface interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// 会话角色
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn 会话中的一轮消息
type Turn struct {
	Role    string
	Content string
}

type Client struct {
	config          *config.LLM
	openaiClient    openAIClientInterface
	maxOutputTokens int
}

// NewClient 创建 LLM 客户端；transport 非 nil 时经由 SOCKS5 代理访问端点
func NewClient(cfg *config.LLM, transport *http.Transport) *Client {
	openaiConfig := openai.DefaultConfig(cfg.APIKey)
	openaiConfig.BaseURL = cfg.BaseURL
	if transport != nil {
		openaiConfig.HTTPClient = &http.Client{Transport: transport}
	}

	maxOutputTokens := cfg.MaxOutputTokens
	if maxOutputTokens <= 0 {
		maxOutputTokens = defaultMaxOutputTokens
	}

	return &Client{
		config:          cfg,
		openaiClient:    openai.NewClientWithConfig(openaiConfig),
		maxOutputTokens: maxOutputTokens,
	}
}

// Model 基础模型标识
func (c *Client) Model() string {
	return c.config.Model
}

// RetryModel 重试升级使用的模型标识
func (c *Client) RetryModel() string {
	return c.config.RetryModel
}

// Complete 执行一次补全请求：system 上下文 + 有序会话轮次，返回纯文本
// 对返回内容做 markdown 代码块剥离；每次调用设定独立超时
func (c *Client) Complete(ctx context.Context, model string, system string, turns []Turn) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, len(turns)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, turn := range turns {
		role := openai.ChatMessageRoleUser
		if turn.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Content,
		})
	}

	req := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 0.3,
		MaxTokens:   c.maxOutputTokens,
	}

	resp, err := c.openaiClient.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("调用 LLM API 失败: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("LLM API 返回空结果")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)
	return content, nil
}
