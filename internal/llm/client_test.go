package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/fachebot/ko-digest-bot/internal/config"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockOpenAIClient 模拟 OpenAI 客户端
type mockOpenAIClient struct {
	mock.Mock
}

func (m *mockOpenAIClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

// newTestClient 创建用于测试的客户端，注入 mock
func newTestClient(cfg *config.LLM, mockClient openAIClientInterface) *Client {
	maxOutputTokens := cfg.MaxOutputTokens
	if maxOutputTokens <= 0 {
		maxOutputTokens = defaultMaxOutputTokens
	}
	return &Client{
		config:          cfg,
		openaiClient:    mockClient,
		maxOutputTokens: maxOutputTokens,
	}
}

func textResponse(text string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: text}},
		},
	}
}

func TestComplete_Success(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(textResponse(`{"summary": "ok"}`), nil)

	cfg := &config.LLM{Model: "base-model"}
	client := newTestClient(cfg, mockAPI)

	result, err := client.Complete(context.Background(), "base-model", "system context", []Turn{
		{Role: RoleUser, Content: "instruction"},
	})
	assert.NoError(t, err)
	assert.Equal(t, `{"summary": "ok"}`, result)
	mockAPI.AssertExpectations(t)
}

func TestComplete_BuildsMessages(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	var captured openai.ChatCompletionRequest
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
		captured = req
		return true
	})).Return(textResponse("ok"), nil)

	cfg := &config.LLM{Model: "base-model", MaxOutputTokens: 1024}
	client := newTestClient(cfg, mockAPI)

	_, err := client.Complete(context.Background(), "retry-model", "system context", []Turn{
		{Role: RoleUser, Content: "first"},
		{Role: RoleAssistant, Content: "raw answer"},
		{Role: RoleUser, Content: "correction"},
	})
	assert.NoError(t, err)

	assert.Equal(t, "retry-model", captured.Model)
	assert.Equal(t, 1024, captured.MaxTokens)
	assert.Len(t, captured.Messages, 4)
	assert.Equal(t, openai.ChatMessageRoleSystem, captured.Messages[0].Role)
	assert.Equal(t, "system context", captured.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, captured.Messages[1].Role)
	assert.Equal(t, openai.ChatMessageRoleAssistant, captured.Messages[2].Role)
	assert.Equal(t, "raw answer", captured.Messages[2].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, captured.Messages[3].Role)
}

func TestComplete_APIError(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, errors.New("api error"))

	cfg := &config.LLM{Model: "base-model"}
	client := newTestClient(cfg, mockAPI)

	_, err := client.Complete(context.Background(), "base-model", "sys", []Turn{{Role: RoleUser, Content: "x"}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "调用 LLM API 失败")
}

func TestComplete_EmptyResponse(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{Choices: nil}, nil)

	cfg := &config.LLM{Model: "base-model"}
	client := newTestClient(cfg, mockAPI)

	_, err := client.Complete(context.Background(), "base-model", "sys", []Turn{{Role: RoleUser, Content: "x"}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "返回空结果")
}

func TestComplete_TrimsMarkdownCodeBlock(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"json代码块", "```json\n{\"summary\": \"ok\"}\n```", `{"summary": "ok"}`},
		{"普通代码块", "```\n{\"summary\": \"ok\"}\n```", `{"summary": "ok"}`},
		{"无代码块", `{"summary": "ok"}`, `{"summary": "ok"}`},
		{"首尾空白", "  \n{\"summary\": \"ok\"}\n  ", `{"summary": "ok"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := new(mockOpenAIClient)
			mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
				Return(textResponse(tt.raw), nil)

			cfg := &config.LLM{Model: "base-model"}
			client := newTestClient(cfg, mockAPI)

			result, err := client.Complete(context.Background(), "base-model", "sys", []Turn{{Role: RoleUser, Content: "x"}})
			assert.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestModelAccessors(t *testing.T) {
	cfg := &config.LLM{Model: "base-model", RetryModel: "retry-model"}
	client := newTestClient(cfg, &mockOpenAIClient{})
	assert.Equal(t, "base-model", client.Model())
	assert.Equal(t, "retry-model", client.RetryModel())
}
