package model

import (
	"context"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundlecategory"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/google/uuid"
)

type KnowledgeObjectModel struct {
	client *ent.KnowledgeObjectClient
}

func NewKnowledgeObjectModel(client *ent.KnowledgeObjectClient) *KnowledgeObjectModel {
	return &KnowledgeObjectModel{client: client}
}

// GetByCategorySince 查询分类下窗口内的全部未删除知识对象（引用解析超集），新→旧
// 预加载父级及发行方，供交叉引用链接器取层级名称
func (m *KnowledgeObjectModel) GetByCategorySince(ctx context.Context, categoryID uuid.UUID, since time.Time) ([]*ent.KnowledgeObject, error) {
	return m.client.Query().
		Where(
			knowledgeobject.DeletedEQ(false),
			knowledgeobject.CreateTimeGTE(since),
			knowledgeobject.HasBundleCategoriesWith(bundlecategory.IDEQ(categoryID)),
		).
		WithParent(func(q *ent.KnowledgeObjectQuery) {
			q.WithParent()
		}).
		Order(knowledgeobject.ByCreateTime(sql.OrderDesc())).
		All(ctx)
}

// GetWithCategories 按ID查询未删除的知识对象并载入其分类
func (m *KnowledgeObjectModel) GetWithCategories(ctx context.Context, id uuid.UUID) (*ent.KnowledgeObject, error) {
	return m.client.Query().
		Where(
			knowledgeobject.IDEQ(id),
			knowledgeobject.DeletedEQ(false),
		).
		WithBundleCategories().
		Only(ctx)
}
