package model

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/google/uuid"
)

// BundleModel 持有完整客户端而非单实体客户端：时区扇出写入需要跨行事务
type BundleModel struct {
	client *ent.Client
}

func NewBundleModel(client *ent.Client) *BundleModel {
	return &BundleModel{client: client}
}

// CreateForTimezones 在单个事务中为每个时区各创建一条 Bundle
// 所有行共享同一 payload 和同一组关联知识对象；任一失败整体回滚，不存在部分写入
func (m *BundleModel) CreateForTimezones(ctx context.Context, categoryID uuid.UUID, payload json.RawMessage, timezones []string, kos []*ent.KnowledgeObject) ([]*ent.Bundle, error) {
	if len(timezones) == 0 {
		return nil, nil
	}

	tx, err := m.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("开启事务失败: %w", err)
	}

	builders := make([]*ent.BundleCreate, 0, len(timezones))
	for _, tz := range timezones {
		builders = append(builders, tx.Bundle.Create().
			SetSummaryJSON(payload).
			SetTimezone(tz).
			SetBundleCategoryID(categoryID).
			AddKnowledgeObjects(kos...))
	}

	bundles, err := tx.Bundle.CreateBulk(builders...).Save(ctx)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: 回滚失败: %v", err, rerr)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("提交事务失败: %w", err)
	}
	return bundles, nil
}
