package model

import (
	"context"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundlecategory"
	"github.com/google/uuid"
)

type BundleCategoryModel struct {
	client *ent.BundleCategoryClient
}

func NewBundleCategoryModel(client *ent.BundleCategoryClient) *BundleCategoryModel {
	return &BundleCategoryModel{client: client}
}

// GetByName 按名称查询分类
func (m *BundleCategoryModel) GetByName(ctx context.Context, name string) (*ent.BundleCategory, error) {
	return m.client.Query().
		Where(bundlecategory.NameEQ(name)).
		Only(ctx)
}

// GetByID 按ID查询分类（任务恢复时使用）
func (m *BundleCategoryModel) GetByID(ctx context.Context, id uuid.UUID) (*ent.BundleCategory, error) {
	return m.client.Get(ctx, id)
}
