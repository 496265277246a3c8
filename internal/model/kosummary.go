package model

import (
	"context"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundlecategory"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/fachebot/ko-digest-bot/internal/ent/kosummary"
	"github.com/google/uuid"
)

type KoSummaryModel struct {
	client *ent.KoSummaryClient
}

func NewKoSummaryModel(client *ent.KoSummaryClient) *KoSummaryModel {
	return &KoSummaryModel{client: client}
}

type KoSummaryData struct {
	KoID            uuid.UUID
	KoType          kosummary.KoType
	Title           string
	SummaryText     string
	SummaryOneLiner string
}

// Create 创建个体摘要（只创建不更新，存在即缓存命中）
func (m *KoSummaryModel) Create(ctx context.Context, data *KoSummaryData) (*ent.KoSummary, error) {
	create := m.client.Create().
		SetKoID(data.KoID).
		SetKoType(data.KoType).
		SetTitle(data.Title)

	if data.SummaryText != "" {
		create.SetSummaryText(data.SummaryText)
	}
	if data.SummaryOneLiner != "" {
		create.SetSummaryOneLiner(data.SummaryOneLiner)
	}

	return create.Save(ctx)
}

// GetByKnowledgeObject 按知识对象ID查询摘要，未找到返回 ent.NotFoundError
func (m *KoSummaryModel) GetByKnowledgeObject(ctx context.Context, koID uuid.UUID) (*ent.KoSummary, error) {
	return m.client.Query().
		Where(kosummary.KoIDEQ(koID)).
		First(ctx)
}

// GetSummarizedSince 查询分类下窗口内已有个体摘要的条目（合成输入集），新→旧
// 窗口按摘要创建时间过滤，所属知识对象须未删除且属于该分类
func (m *KoSummaryModel) GetSummarizedSince(ctx context.Context, categoryID uuid.UUID, since time.Time) ([]*ent.KoSummary, error) {
	return m.client.Query().
		Where(
			kosummary.CreateTimeGTE(since),
			kosummary.HasKnowledgeObjectWith(
				knowledgeobject.DeletedEQ(false),
				knowledgeobject.HasBundleCategoriesWith(bundlecategory.IDEQ(categoryID)),
			),
		).
		Order(kosummary.ByCreateTime(sql.OrderDesc())).
		All(ctx)
}
