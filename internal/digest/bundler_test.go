package digest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/fachebot/ko-digest-bot/internal/ent/kosummary"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSummarySelector struct {
	mock.Mock
}

func (m *mockSummarySelector) GetSummarizedSince(ctx context.Context, categoryID uuid.UUID, since time.Time) ([]*ent.KoSummary, error) {
	args := m.Called(ctx, categoryID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.KoSummary), args.Error(1)
}

type mockKoSelector struct {
	mock.Mock
}

func (m *mockKoSelector) GetByCategorySince(ctx context.Context, categoryID uuid.UUID, since time.Time) ([]*ent.KnowledgeObject, error) {
	args := m.Called(ctx, categoryID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.KnowledgeObject), args.Error(1)
}

type mockBundleWriter struct {
	mock.Mock
}

func (m *mockBundleWriter) CreateForTimezones(ctx context.Context, categoryID uuid.UUID, payload json.RawMessage, timezones []string, kos []*ent.KnowledgeObject) ([]*ent.Bundle, error) {
	args := m.Called(ctx, categoryID, payload, timezones, kos)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Bundle), args.Error(1)
}

type mockDoseSampler struct {
	mock.Mock
}

func (m *mockDoseSampler) Sample(ctx context.Context) (*DailyDoseOut, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DailyDoseOut), args.Error(1)
}

type mockSynthesizer struct {
	mock.Mock
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, skos []*ent.KoSummary) *SummaryJSON {
	args := m.Called(ctx, skos)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*SummaryJSON)
}

type bundlerMocks struct {
	summaryModel *mockSummarySelector
	koModel      *mockKoSelector
	bundleModel  *mockBundleWriter
	sampler      *mockDoseSampler
	synthesizer  *mockSynthesizer
}

func newTestBundler() (*Bundler, *bundlerMocks) {
	m := &bundlerMocks{
		summaryModel: new(mockSummarySelector),
		koModel:      new(mockKoSelector),
		bundleModel:  new(mockBundleWriter),
		sampler:      new(mockDoseSampler),
		synthesizer:  new(mockSynthesizer),
	}
	return NewBundler(m.summaryModel, m.koModel, m.bundleModel, m.sampler, m.synthesizer), m
}

func testCategory() *ent.BundleCategory {
	return &ent.BundleCategory{
		ID:              uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"),
		Name:            "tech",
		SummaryRequired: true,
	}
}

func TestCreateDigest_EmptyInputShortCircuits(t *testing.T) {
	bundler, m := newTestBundler()
	m.summaryModel.On("GetSummarizedSince", mock.Anything, mock.Anything, mock.Anything).
		Return([]*ent.KoSummary{}, nil)

	bundles, err := bundler.CreateDigest(context.Background(), testCategory(), time.Now(), []string{"UTC"})
	assert.NoError(t, err)
	assert.Empty(t, bundles)

	// 输入集为空时不查超集、不合成、不写库
	m.koModel.AssertNotCalled(t, "GetByCategorySince")
	m.synthesizer.AssertNotCalled(t, "Synthesize")
	m.bundleModel.AssertNotCalled(t, "CreateForTimezones")
}

func TestCreateDigest_Success(t *testing.T) {
	bundler, m := newTestBundler()
	category := testCategory()
	skos := []*ent.KoSummary{
		{KoID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), KoType: kosummary.KoTypeEpisode, Title: "节目一"},
	}
	superset := []*ent.KnowledgeObject{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), KoType: knowledgeobject.KoTypeEpisode, Title: "节目一"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), KoType: knowledgeobject.KoTypeArticle, Title: "未摘要文章"},
	}

	m.summaryModel.On("GetSummarizedSince", mock.Anything, category.ID, mock.Anything).Return(skos, nil)
	m.koModel.On("GetByCategorySince", mock.Anything, category.ID, mock.Anything).Return(superset, nil)
	m.synthesizer.On("Synthesize", mock.Anything, skos).Return(&SummaryJSON{
		Summary:         "整体摘要",
		TrendingStories: []TrendingStory{},
		OneLiners: []OneLiner{
			{Text: "单句一", UUID: "11111111-1111-1111-1111-111111111111", Type: "episode"},
		},
	})
	m.sampler.On("Sample", mock.Anything).Return(&DailyDoseOut{Quote: "引言", Source: "出处", DdType: "quote"}, nil)

	var capturedPayload json.RawMessage
	var capturedKos []*ent.KnowledgeObject
	m.bundleModel.On("CreateForTimezones", mock.Anything, category.ID, mock.MatchedBy(func(p json.RawMessage) bool {
		capturedPayload = p
		return true
	}), []string{"UTC", "Asia/Shanghai"}, mock.MatchedBy(func(kos []*ent.KnowledgeObject) bool {
		capturedKos = kos
		return true
	})).Return([]*ent.Bundle{{}, {}}, nil)

	bundles, err := bundler.CreateDigest(context.Background(), category, time.Now(), []string{"UTC", "Asia/Shanghai"})
	assert.NoError(t, err)
	assert.Len(t, bundles, 2)

	// 落库关联的是完整超集，而非仅已摘要条目
	assert.Len(t, capturedKos, 2)

	var payload SummaryJSON
	assert.NoError(t, json.Unmarshal(capturedPayload, &payload))
	assert.Equal(t, "整体摘要", payload.Summary)
	assert.NotNil(t, payload.DailyDose)
	assert.Equal(t, "引言", payload.DailyDose.Quote)
}

func TestCreateDigest_EmptyDosePoolOmitsDailyDose(t *testing.T) {
	bundler, m := newTestBundler()
	category := testCategory()
	skos := []*ent.KoSummary{
		{KoID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), KoType: kosummary.KoTypeEpisode, Title: "节目一"},
	}

	m.summaryModel.On("GetSummarizedSince", mock.Anything, mock.Anything, mock.Anything).Return(skos, nil)
	m.koModel.On("GetByCategorySince", mock.Anything, mock.Anything, mock.Anything).Return([]*ent.KnowledgeObject{}, nil)
	m.synthesizer.On("Synthesize", mock.Anything, mock.Anything).Return(&SummaryJSON{
		Summary:         "整体摘要",
		TrendingStories: []TrendingStory{},
		OneLiners:       []OneLiner{{Text: "x", UUID: "11111111-1111-1111-1111-111111111111", Type: "episode"}},
	})
	m.sampler.On("Sample", mock.Anything).Return(nil, nil)

	var capturedPayload json.RawMessage
	m.bundleModel.On("CreateForTimezones", mock.Anything, mock.Anything, mock.MatchedBy(func(p json.RawMessage) bool {
		capturedPayload = p
		return true
	}), mock.Anything, mock.Anything).Return([]*ent.Bundle{{}}, nil)

	_, err := bundler.CreateDigest(context.Background(), category, time.Now(), []string{"UTC"})
	assert.NoError(t, err)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal(capturedPayload, &payload))
	_, ok := payload["daily_dose"]
	assert.False(t, ok, "引言池为空时载荷不应包含 daily_dose 字段")
}

func TestCreateDigest_SamplerErrorIsNotFatal(t *testing.T) {
	bundler, m := newTestBundler()
	skos := []*ent.KoSummary{
		{KoID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), KoType: kosummary.KoTypeEpisode, Title: "节目一"},
	}

	m.summaryModel.On("GetSummarizedSince", mock.Anything, mock.Anything, mock.Anything).Return(skos, nil)
	m.koModel.On("GetByCategorySince", mock.Anything, mock.Anything, mock.Anything).Return([]*ent.KnowledgeObject{}, nil)
	m.synthesizer.On("Synthesize", mock.Anything, mock.Anything).Return(&SummaryJSON{
		Summary:         "整体摘要",
		TrendingStories: []TrendingStory{},
		OneLiners:       []OneLiner{{Text: "x", UUID: "11111111-1111-1111-1111-111111111111", Type: "episode"}},
	})
	m.sampler.On("Sample", mock.Anything).Return(nil, assert.AnError)
	m.bundleModel.On("CreateForTimezones", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*ent.Bundle{{}}, nil)

	bundles, err := bundler.CreateDigest(context.Background(), testCategory(), time.Now(), []string{"UTC"})
	assert.NoError(t, err)
	assert.Len(t, bundles, 1)
}

func TestCreateDigest_PersistFailure(t *testing.T) {
	bundler, m := newTestBundler()
	skos := []*ent.KoSummary{
		{KoID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), KoType: kosummary.KoTypeEpisode, Title: "节目一"},
	}

	m.summaryModel.On("GetSummarizedSince", mock.Anything, mock.Anything, mock.Anything).Return(skos, nil)
	m.koModel.On("GetByCategorySince", mock.Anything, mock.Anything, mock.Anything).Return([]*ent.KnowledgeObject{}, nil)
	m.synthesizer.On("Synthesize", mock.Anything, mock.Anything).Return(&SummaryJSON{
		Summary:         "整体摘要",
		TrendingStories: []TrendingStory{},
		OneLiners:       []OneLiner{{Text: "x", UUID: "11111111-1111-1111-1111-111111111111", Type: "episode"}},
	})
	m.sampler.On("Sample", mock.Anything).Return(nil, nil)
	m.bundleModel.On("CreateForTimezones", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	bundles, err := bundler.CreateDigest(context.Background(), testCategory(), time.Now(), []string{"UTC"})
	assert.Error(t, err)
	assert.Empty(t, bundles)

	var serr *StageError
	assert.ErrorAs(t, err, &serr)
	assert.Equal(t, KindPersistence, serr.Kind)
}

func TestCreateDigest_SelectorError(t *testing.T) {
	bundler, m := newTestBundler()
	m.summaryModel.On("GetSummarizedSince", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	_, err := bundler.CreateDigest(context.Background(), testCategory(), time.Now(), []string{"UTC"})
	assert.Error(t, err)
	m.synthesizer.AssertNotCalled(t, "Synthesize")
}
