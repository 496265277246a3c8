package digest

import (
	"context"
	"testing"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/ent/kosummary"
	"github.com/fachebot/ko-digest-bot/internal/llm"
	"github.com/fachebot/ko-digest-bot/internal/prompt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockCompleter 模拟 LLM 客户端
type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Complete(ctx context.Context, model, system string, turns []llm.Turn) (string, error) {
	args := m.Called(ctx, model, system, turns)
	return args.String(0), args.Error(1)
}

func newTestSynthesizer(completer llmCompleter) *Synthesizer {
	return &Synthesizer{
		llmClient:  completer,
		prompts:    prompt.Default(),
		model:      "base-model",
		retryModel: "retry-model",
	}
}

func testKoSummaries() []*ent.KoSummary {
	return []*ent.KoSummary{
		{
			KoID:            uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			KoType:          kosummary.KoTypeEpisode,
			Title:           "节目一",
			SummaryText:     "要点摘要一",
			SummaryOneLiner: "单句一",
		},
		{
			KoID:            uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			KoType:          kosummary.KoTypeArticle,
			Title:           "文章二",
			SummaryText:     "",
			SummaryOneLiner: "单句二",
		},
	}
}

func validSummaryJSON() string {
	return `{
		"summary": "整体摘要",
		"trending_stories": [{"text": "趋势一"}],
		"one_liners": [
			{"text": "单句一", "uuid": "11111111-1111-1111-1111-111111111111", "type": "episode"},
			{"text": "单句二", "uuid": "22222222-2222-2222-2222-222222222222", "type": "article"}
		]
	}`
}

func TestSynthesize_EmptyInput(t *testing.T) {
	mockLLM := new(mockCompleter)
	s := newTestSynthesizer(mockLLM)

	result := s.Synthesize(context.Background(), nil)
	assert.Nil(t, result)
	mockLLM.AssertNotCalled(t, "Complete")
}

func TestSynthesize_FirstAttemptSuccess(t *testing.T) {
	mockLLM := new(mockCompleter)
	mockLLM.On("Complete", mock.Anything, "base-model", mock.Anything, mock.Anything).
		Return(validSummaryJSON(), nil).Once()

	s := newTestSynthesizer(mockLLM)
	result := s.Synthesize(context.Background(), testKoSummaries())

	assert.NotNil(t, result)
	assert.Equal(t, "整体摘要", result.Summary)
	assert.Len(t, result.TrendingStories, 1)
	assert.Len(t, result.OneLiners, 2)
	mockLLM.AssertExpectations(t)
}

func TestSynthesize_SystemContainsContentBlocks(t *testing.T) {
	mockLLM := new(mockCompleter)
	var capturedSystem string
	mockLLM.On("Complete", mock.Anything, "base-model", mock.MatchedBy(func(system string) bool {
		capturedSystem = system
		return true
	}), mock.Anything).Return(validSummaryJSON(), nil).Once()

	s := newTestSynthesizer(mockLLM)
	s.Synthesize(context.Background(), testKoSummaries())

	assert.Contains(t, capturedSystem, "UUID: 11111111-1111-1111-1111-111111111111")
	assert.Contains(t, capturedSystem, "TYPE: episode")
	assert.Contains(t, capturedSystem, "TITLE: 节目一")
	assert.Contains(t, capturedSystem, "CONTENT: 要点摘要一")
	// 要点摘要缺失时内容块退回单句
	assert.Contains(t, capturedSystem, "CONTENT: 单句二")
}

func TestSynthesize_ParseFailureRetriesWithEscalatedModel(t *testing.T) {
	rawBroken := "this is not json"
	mockLLM := new(mockCompleter)
	mockLLM.On("Complete", mock.Anything, "base-model", mock.Anything, mock.Anything).
		Return(rawBroken, nil).Once()

	var retryTurns []llm.Turn
	mockLLM.On("Complete", mock.Anything, "retry-model", mock.Anything, mock.MatchedBy(func(turns []llm.Turn) bool {
		retryTurns = turns
		return true
	})).Return(validSummaryJSON(), nil).Once()

	s := newTestSynthesizer(mockLLM)
	result := s.Synthesize(context.Background(), testKoSummaries())

	assert.NotNil(t, result)
	assert.Equal(t, "整体摘要", result.Summary)
	mockLLM.AssertExpectations(t)

	// 重试请求必须回放完整会话：原始指令、模型上次的原样输出、纠正指令
	assert.Len(t, retryTurns, 3)
	assert.Equal(t, llm.RoleUser, retryTurns[0].Role)
	assert.Equal(t, llm.RoleAssistant, retryTurns[1].Role)
	assert.Equal(t, rawBroken, retryTurns[1].Content)
	assert.Equal(t, llm.RoleUser, retryTurns[2].Role)
	assert.Contains(t, retryTurns[2].Content, "not JSON serializable")
}

func TestSynthesize_ValidationFailureRetries(t *testing.T) {
	// JSON 合法但一句话引用了输入集之外的条目
	foreign := `{
		"summary": "整体摘要",
		"trending_stories": [],
		"one_liners": [{"text": "x", "uuid": "99999999-9999-9999-9999-999999999999", "type": "episode"}]
	}`
	mockLLM := new(mockCompleter)
	mockLLM.On("Complete", mock.Anything, "base-model", mock.Anything, mock.Anything).
		Return(foreign, nil).Once()
	mockLLM.On("Complete", mock.Anything, "retry-model", mock.Anything, mock.Anything).
		Return(validSummaryJSON(), nil).Once()

	s := newTestSynthesizer(mockLLM)
	result := s.Synthesize(context.Background(), testKoSummaries())

	assert.NotNil(t, result)
	assert.Len(t, result.OneLiners, 2)
	mockLLM.AssertExpectations(t)
}

func TestSynthesize_TypeMismatchFailsValidation(t *testing.T) {
	// uuid 在输入集中但 type 对不上，同样视为引用违规
	mismatch := `{
		"summary": "整体摘要",
		"trending_stories": [],
		"one_liners": [{"text": "x", "uuid": "11111111-1111-1111-1111-111111111111", "type": "article"}]
	}`
	mockLLM := new(mockCompleter)
	mockLLM.On("Complete", mock.Anything, "base-model", mock.Anything, mock.Anything).
		Return(mismatch, nil).Once()
	mockLLM.On("Complete", mock.Anything, "retry-model", mock.Anything, mock.Anything).
		Return(validSummaryJSON(), nil).Once()

	s := newTestSynthesizer(mockLLM)
	result := s.Synthesize(context.Background(), testKoSummaries())

	assert.NotNil(t, result)
	mockLLM.AssertExpectations(t)
}

func TestSynthesize_FallbackAfterRetryFailure(t *testing.T) {
	mockLLM := new(mockCompleter)
	mockLLM.On("Complete", mock.Anything, "base-model", mock.Anything, mock.Anything).
		Return("broken", nil).Once()
	mockLLM.On("Complete", mock.Anything, "retry-model", mock.Anything, mock.Anything).
		Return("still broken", nil).Once()
	// 兜底阶段用升级模型，仅请求叙事部分
	mockLLM.On("Complete", mock.Anything, "retry-model", mock.Anything, mock.Anything).
		Return(`{"summary": "兜底叙事", "trending_stories": [{"text": "趋势"}]}`, nil).Once()

	s := newTestSynthesizer(mockLLM)
	result := s.Synthesize(context.Background(), testKoSummaries())

	assert.NotNil(t, result)
	assert.Equal(t, "兜底叙事", result.Summary)
	assert.Len(t, result.TrendingStories, 1)
	// 一句话列表由缓存确定性拼装，保持输入顺序
	assert.Len(t, result.OneLiners, 2)
	assert.Equal(t, "单句一", result.OneLiners[0].Text)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", result.OneLiners[0].UUID)
	assert.Equal(t, "episode", result.OneLiners[0].Type)
	assert.Equal(t, "单句二", result.OneLiners[1].Text)
	mockLLM.AssertExpectations(t)
}

func TestSynthesize_ProviderErrorSkipsRetry(t *testing.T) {
	mockLLM := new(mockCompleter)
	// 首次调用失败时没有可回放内容，直接进入兜底，不做结构化重试
	mockLLM.On("Complete", mock.Anything, "base-model", mock.Anything, mock.Anything).
		Return("", assert.AnError).Once()
	mockLLM.On("Complete", mock.Anything, "retry-model", mock.Anything, mock.Anything).
		Return(`{"summary": "兜底叙事", "trending_stories": []}`, nil).Once()

	s := newTestSynthesizer(mockLLM)
	result := s.Synthesize(context.Background(), testKoSummaries())

	assert.NotNil(t, result)
	assert.Equal(t, "兜底叙事", result.Summary)
	mockLLM.AssertExpectations(t)
	mockLLM.AssertNumberOfCalls(t, "Complete", 2)
}

func TestSynthesize_FallbackNarrativeDegradesToRawText(t *testing.T) {
	mockLLM := new(mockCompleter)
	mockLLM.On("Complete", mock.Anything, "base-model", mock.Anything, mock.Anything).
		Return("broken", nil).Once()
	mockLLM.On("Complete", mock.Anything, "retry-model", mock.Anything, mock.Anything).
		Return("still broken", nil).Once()
	mockLLM.On("Complete", mock.Anything, "retry-model", mock.Anything, mock.Anything).
		Return("plain narrative text", nil).Once()

	s := newTestSynthesizer(mockLLM)
	result := s.Synthesize(context.Background(), testKoSummaries())

	assert.NotNil(t, result)
	assert.Equal(t, "plain narrative text", result.Summary)
	assert.Empty(t, result.TrendingStories)
	assert.Len(t, result.OneLiners, 2)
}

func TestSynthesize_TotalProviderFailureStillReturnsResult(t *testing.T) {
	mockLLM := new(mockCompleter)
	mockLLM.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", assert.AnError)

	s := newTestSynthesizer(mockLLM)
	result := s.Synthesize(context.Background(), testKoSummaries())

	assert.NotNil(t, result)
	assert.Empty(t, result.Summary)
	assert.Empty(t, result.TrendingStories)
	assert.Len(t, result.OneLiners, 2)
}

func TestOneLinersFromCache_MissingOneLinerLeftEmpty(t *testing.T) {
	s := newTestSynthesizer(new(mockCompleter))
	skos := []*ent.KoSummary{
		{
			KoID:   uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			KoType: kosummary.KoTypeEmail,
			Title:  "邮件标题",
		},
	}
	oneLiners := s.oneLinersFromCache(skos)
	assert.Len(t, oneLiners, 1)
	assert.Empty(t, oneLiners[0].Text)
	assert.Equal(t, "33333333-3333-3333-3333-333333333333", oneLiners[0].UUID)
	assert.Equal(t, "email", oneLiners[0].Type)
}

func TestParseAndValidate_EmptySummary(t *testing.T) {
	s := newTestSynthesizer(new(mockCompleter))
	raw := `{"summary": "  ", "trending_stories": [], "one_liners": [{"text": "x", "uuid": "11111111-1111-1111-1111-111111111111", "type": "episode"}]}`
	_, serr := s.parseAndValidate(raw, testKoSummaries(), stageStructured)
	assert.NotNil(t, serr)
	assert.Equal(t, KindResponseValidation, serr.Kind)
}

func TestParseAndValidate_EmptyOneLiners(t *testing.T) {
	s := newTestSynthesizer(new(mockCompleter))
	raw := `{"summary": "ok", "trending_stories": [], "one_liners": []}`
	_, serr := s.parseAndValidate(raw, testKoSummaries(), stageStructured)
	assert.NotNil(t, serr)
	assert.Equal(t, KindResponseValidation, serr.Kind)
}
