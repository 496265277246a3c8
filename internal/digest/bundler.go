package digest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/logger"
	"github.com/google/uuid"
)

type summarySelector interface {
	GetSummarizedSince(ctx context.Context, categoryID uuid.UUID, since time.Time) ([]*ent.KoSummary, error)
}

type koSelector interface {
	GetByCategorySince(ctx context.Context, categoryID uuid.UUID, since time.Time) ([]*ent.KnowledgeObject, error)
}

type bundleWriter interface {
	CreateForTimezones(ctx context.Context, categoryID uuid.UUID, payload json.RawMessage, timezones []string, kos []*ent.KnowledgeObject) ([]*ent.Bundle, error)
}

type doseSampler interface {
	Sample(ctx context.Context) (*DailyDoseOut, error)
}

type synthesizer interface {
	Synthesize(ctx context.Context, skos []*ent.KoSummary) *SummaryJSON
}

// Bundler 整包创建的编排器：选集、合成、链接、配引言、按时区落库
type Bundler struct {
	summaryModel summarySelector
	koModel      koSelector
	bundleModel  bundleWriter
	sampler      doseSampler
	synthesizer  synthesizer
}

func NewBundler(summaryModel summarySelector, koModel koSelector, bundleModel bundleWriter, sampler doseSampler, synthesizer synthesizer) *Bundler {
	return &Bundler{
		summaryModel: summaryModel,
		koModel:      koModel,
		bundleModel:  bundleModel,
		sampler:      sampler,
		synthesizer:  synthesizer,
	}
}

// CreateDigest 为单个分类创建一轮整包
// 合成输入集为空时直接返回空结果，不发起任何生成调用，也不写库
// 落库关联的是窗口内的完整超集而非仅输入集
func (b *Bundler) CreateDigest(ctx context.Context, category *ent.BundleCategory, selectFrom time.Time, timezones []string) ([]*ent.Bundle, error) {
	skos, err := b.summaryModel.GetSummarizedSince(ctx, category.ID, selectFrom)
	if err != nil {
		return nil, fmt.Errorf("查询个体摘要失败, 分类: %s, %v", category.Name, err)
	}
	if len(skos) == 0 {
		logger.Infof("[Bundler] 分类 %s 窗口内没有可合成的条目, 跳过", category.Name)
		return nil, nil
	}

	allRelevantKos, err := b.koModel.GetByCategorySince(ctx, category.ID, selectFrom)
	if err != nil {
		return nil, fmt.Errorf("查询知识对象超集失败, 分类: %s, %v", category.Name, err)
	}

	result := b.synthesizer.Synthesize(ctx, skos)
	LinkHierarchy(result, allRelevantKos)

	dose, err := b.sampler.Sample(ctx)
	if err != nil {
		logger.Warnf("[Bundler] 采样每日一句失败, 本轮不附带引言, %v", err)
	} else if dose != nil {
		result.DailyDose = dose
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("序列化整包摘要失败, 分类: %s, %v", category.Name, err)
	}

	return b.PersistPrepared(ctx, category.ID, payload, timezones, allRelevantKos)
}

// PersistPrepared 把已就绪的整包载荷按时区扇出写入
func (b *Bundler) PersistPrepared(ctx context.Context, categoryID uuid.UUID, payload json.RawMessage, timezones []string, kos []*ent.KnowledgeObject) ([]*ent.Bundle, error) {
	bundles, err := b.bundleModel.CreateForTimezones(ctx, categoryID, payload, timezones, kos)
	if err != nil {
		serr := newStageError(KindPersistence, stagePersist, err)
		logger.Errorf("[Bundler] 整包写入失败, %v", serr)
		return nil, serr
	}
	return bundles, nil
}
