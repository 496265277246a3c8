package ingest

import (
	"context"
	"testing"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockItemSummarizer struct {
	mock.Mock
}

func (m *mockItemSummarizer) SummarizeKnowledgeObject(ctx context.Context, ko *ent.KnowledgeObject, rawText string) error {
	args := m.Called(ctx, ko, rawText)
	return args.Error(0)
}

type mockKoLoader struct {
	mock.Mock
}

func (m *mockKoLoader) GetWithCategories(ctx context.Context, id uuid.UUID) (*ent.KnowledgeObject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.KnowledgeObject), args.Error(1)
}

func koWithCategories(categories ...*ent.BundleCategory) *ent.KnowledgeObject {
	ko := &ent.KnowledgeObject{
		ID:     uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		KoType: knowledgeobject.KoTypeEpisode,
		Title:  "单集",
	}
	ko.Edges.BundleCategories = categories
	return ko
}

func TestHandleNewContent_SummaryRequired(t *testing.T) {
	ko := koWithCategories(
		&ent.BundleCategory{Name: "news", SummaryRequired: false},
		&ent.BundleCategory{Name: "tech", SummaryRequired: true},
	)
	loader := new(mockKoLoader)
	loader.On("GetWithCategories", mock.Anything, ko.ID).Return(ko, nil)

	summarizer := new(mockItemSummarizer)
	summarizer.On("SummarizeKnowledgeObject", mock.Anything, ko, "正文").Return(nil)

	i := NewIngestor(loader, summarizer)
	err := i.HandleNewContent(context.Background(), ko.ID, "正文")
	assert.NoError(t, err)
	summarizer.AssertExpectations(t)
}

func TestHandleNewContent_NoCategoryRequiresSummary(t *testing.T) {
	ko := koWithCategories(
		&ent.BundleCategory{Name: "news", SummaryRequired: false},
	)
	loader := new(mockKoLoader)
	loader.On("GetWithCategories", mock.Anything, ko.ID).Return(ko, nil)

	summarizer := new(mockItemSummarizer)

	i := NewIngestor(loader, summarizer)
	err := i.HandleNewContent(context.Background(), ko.ID, "正文")
	assert.NoError(t, err)
	summarizer.AssertNotCalled(t, "SummarizeKnowledgeObject")
}

func TestHandleNewContent_NoCategories(t *testing.T) {
	ko := koWithCategories()
	loader := new(mockKoLoader)
	loader.On("GetWithCategories", mock.Anything, ko.ID).Return(ko, nil)

	summarizer := new(mockItemSummarizer)

	i := NewIngestor(loader, summarizer)
	err := i.HandleNewContent(context.Background(), ko.ID, "正文")
	assert.NoError(t, err)
	summarizer.AssertNotCalled(t, "SummarizeKnowledgeObject")
}

func TestHandleNewContent_NotFound(t *testing.T) {
	loader := new(mockKoLoader)
	loader.On("GetWithCategories", mock.Anything, mock.Anything).Return(nil, &ent.NotFoundError{})

	summarizer := new(mockItemSummarizer)

	i := NewIngestor(loader, summarizer)
	err := i.HandleNewContent(context.Background(), uuid.New(), "正文")
	assert.NoError(t, err)
	summarizer.AssertNotCalled(t, "SummarizeKnowledgeObject")
}

func TestHandleNewContent_LoaderError(t *testing.T) {
	loader := new(mockKoLoader)
	loader.On("GetWithCategories", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	i := NewIngestor(loader, new(mockItemSummarizer))
	err := i.HandleNewContent(context.Background(), uuid.New(), "正文")
	assert.Error(t, err)
}

func TestHandleNewContent_SummarizerErrorPropagates(t *testing.T) {
	ko := koWithCategories(&ent.BundleCategory{Name: "tech", SummaryRequired: true})
	loader := new(mockKoLoader)
	loader.On("GetWithCategories", mock.Anything, ko.ID).Return(ko, nil)

	summarizer := new(mockItemSummarizer)
	summarizer.On("SummarizeKnowledgeObject", mock.Anything, ko, "正文").Return(assert.AnError)

	i := NewIngestor(loader, summarizer)
	err := i.HandleNewContent(context.Background(), ko.ID, "正文")
	assert.Error(t, err)
}
