package model

import (
	"context"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/ent/dailydose"
)

type DailyDoseModel struct {
	client *ent.DailyDoseClient
}

func NewDailyDoseModel(client *ent.DailyDoseClient) *DailyDoseModel {
	return &DailyDoseModel{client: client}
}

// Count 返回引言池大小
func (m *DailyDoseModel) Count(ctx context.Context) (int, error) {
	return m.client.Query().Count(ctx)
}

// ByOffset 按固定顺序取第 offset 条，配合可播种的均匀采样器使用
func (m *DailyDoseModel) ByOffset(ctx context.Context, offset int) (*ent.DailyDose, error) {
	return m.client.Query().
		Order(dailydose.ByCreateTime()).
		Offset(offset).
		First(ctx)
}
