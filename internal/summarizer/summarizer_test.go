package summarizer

import (
	"context"
	"testing"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/fachebot/ko-digest-bot/internal/ent/kosummary"
	"github.com/fachebot/ko-digest-bot/internal/llm"
	"github.com/fachebot/ko-digest-bot/internal/model"
	"github.com/fachebot/ko-digest-bot/internal/prompt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Complete(ctx context.Context, model, system string, turns []llm.Turn) (string, error) {
	args := m.Called(ctx, model, system, turns)
	return args.String(0), args.Error(1)
}

type mockSummaryStore struct {
	mock.Mock
}

func (m *mockSummaryStore) GetByKnowledgeObject(ctx context.Context, koID uuid.UUID) (*ent.KoSummary, error) {
	args := m.Called(ctx, koID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.KoSummary), args.Error(1)
}

func (m *mockSummaryStore) Create(ctx context.Context, data *model.KoSummaryData) (*ent.KoSummary, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.KoSummary), args.Error(1)
}

func newTestSummarizer(completer llmCompleter, store summaryStore) *Summarizer {
	return &Summarizer{
		llmClient:    completer,
		summaryModel: store,
		prompts:      prompt.Default(),
		model:        "base-model",
	}
}

func testKnowledgeObject(koType knowledgeobject.KoType) *ent.KnowledgeObject {
	return &ent.KnowledgeObject{
		ID:     uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		KoType: koType,
		Title:  "测试标题",
	}
}

func TestSummarizeKnowledgeObject_CacheHit(t *testing.T) {
	mockLLM := new(mockCompleter)
	store := new(mockSummaryStore)
	store.On("GetByKnowledgeObject", mock.Anything, mock.Anything).
		Return(&ent.KoSummary{Title: "测试标题"}, nil)

	s := newTestSummarizer(mockLLM, store)
	err := s.SummarizeKnowledgeObject(context.Background(), testKnowledgeObject(knowledgeobject.KoTypeEpisode), "正文")
	assert.NoError(t, err)

	mockLLM.AssertNotCalled(t, "Complete")
	store.AssertNotCalled(t, "Create")
}

func TestSummarizeKnowledgeObject_Success(t *testing.T) {
	mockLLM := new(mockCompleter)
	mockLLM.On("Complete", mock.Anything, "base-model", mock.Anything, mock.Anything).
		Return("多条要点摘要", nil).Once()
	mockLLM.On("Complete", mock.Anything, "base-model", mock.Anything, mock.Anything).
		Return("单句摘要", nil).Once()

	var captured *model.KoSummaryData
	store := new(mockSummaryStore)
	store.On("GetByKnowledgeObject", mock.Anything, mock.Anything).
		Return(nil, &ent.NotFoundError{})
	store.On("Create", mock.Anything, mock.MatchedBy(func(data *model.KoSummaryData) bool {
		captured = data
		return true
	})).Return(&ent.KoSummary{}, nil)

	ko := testKnowledgeObject(knowledgeobject.KoTypeEpisode)
	s := newTestSummarizer(mockLLM, store)
	err := s.SummarizeKnowledgeObject(context.Background(), ko, "正文内容")
	assert.NoError(t, err)
	mockLLM.AssertExpectations(t)

	assert.Equal(t, ko.ID, captured.KoID)
	assert.Equal(t, kosummary.KoTypeEpisode, captured.KoType)
	assert.Equal(t, "测试标题", captured.Title)
	assert.Equal(t, "多条要点摘要", captured.SummaryText)
	assert.Equal(t, "单句摘要", captured.SummaryOneLiner)
}

func TestSummarizeKnowledgeObject_SystemContainsContent(t *testing.T) {
	var capturedSystem string
	mockLLM := new(mockCompleter)
	mockLLM.On("Complete", mock.Anything, mock.Anything, mock.MatchedBy(func(system string) bool {
		capturedSystem = system
		return true
	}), mock.Anything).Return("ok", nil)

	store := new(mockSummaryStore)
	store.On("GetByKnowledgeObject", mock.Anything, mock.Anything).Return(nil, &ent.NotFoundError{})
	store.On("Create", mock.Anything, mock.Anything).Return(&ent.KoSummary{}, nil)

	s := newTestSummarizer(mockLLM, store)
	err := s.SummarizeKnowledgeObject(context.Background(), testKnowledgeObject(knowledgeobject.KoTypeArticle), "正文内容")
	assert.NoError(t, err)

	assert.Contains(t, capturedSystem, "Title: 测试标题")
	assert.Contains(t, capturedSystem, "Content: 正文内容")
}

func TestSummarizeKnowledgeObject_PromptVariantByType(t *testing.T) {
	tests := []struct {
		name   string
		koType knowledgeobject.KoType
		want   prompt.Stage
	}{
		{"播客单集用播客变体", knowledgeobject.KoTypeEpisode, prompt.StageShortSummary},
		{"文章用默认变体", knowledgeobject.KoTypeArticle, prompt.StageShortSummary},
	}
	lib := prompt.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var firstUserPrompt string
			mockLLM := new(mockCompleter)
			mockLLM.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.MatchedBy(func(turns []llm.Turn) bool {
				if firstUserPrompt == "" {
					firstUserPrompt = turns[0].Content
				}
				return true
			})).Return("ok", nil)

			store := new(mockSummaryStore)
			store.On("GetByKnowledgeObject", mock.Anything, mock.Anything).Return(nil, &ent.NotFoundError{})
			store.On("Create", mock.Anything, mock.Anything).Return(&ent.KoSummary{}, nil)

			s := newTestSummarizer(mockLLM, store)
			err := s.SummarizeKnowledgeObject(context.Background(), testKnowledgeObject(tt.koType), "正文")
			assert.NoError(t, err)
			assert.Equal(t, lib.Get(tt.want, string(tt.koType)), firstUserPrompt)
		})
	}
}

func TestSummarizeKnowledgeObject_DegradesOnFailure(t *testing.T) {
	mockLLM := new(mockCompleter)
	mockLLM.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", assert.AnError)

	var captured *model.KoSummaryData
	store := new(mockSummaryStore)
	store.On("GetByKnowledgeObject", mock.Anything, mock.Anything).Return(nil, &ent.NotFoundError{})
	store.On("Create", mock.Anything, mock.MatchedBy(func(data *model.KoSummaryData) bool {
		captured = data
		return true
	})).Return(&ent.KoSummary{}, nil)

	s := newTestSummarizer(mockLLM, store)
	err := s.SummarizeKnowledgeObject(context.Background(), testKnowledgeObject(knowledgeobject.KoTypeEmail), "正文")
	assert.NoError(t, err)

	// 生成失败时仍写入记录：要点摘要为空，单句回退到标题
	assert.Empty(t, captured.SummaryText)
	assert.Equal(t, "测试标题", captured.SummaryOneLiner)
}

func TestSummarizeKnowledgeObject_StoreWriteError(t *testing.T) {
	mockLLM := new(mockCompleter)
	mockLLM.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("ok", nil)

	store := new(mockSummaryStore)
	store.On("GetByKnowledgeObject", mock.Anything, mock.Anything).Return(nil, &ent.NotFoundError{})
	store.On("Create", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	s := newTestSummarizer(mockLLM, store)
	err := s.SummarizeKnowledgeObject(context.Background(), testKnowledgeObject(knowledgeobject.KoTypeEpisode), "正文")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "写入摘要缓存失败")
}

func TestSummarizeKnowledgeObject_CacheLookupError(t *testing.T) {
	mockLLM := new(mockCompleter)
	store := new(mockSummaryStore)
	store.On("GetByKnowledgeObject", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	s := newTestSummarizer(mockLLM, store)
	err := s.SummarizeKnowledgeObject(context.Background(), testKnowledgeObject(knowledgeobject.KoTypeEpisode), "正文")
	assert.Error(t, err)
	mockLLM.AssertNotCalled(t, "Complete")
}
