package ingest

import (
	"context"
	"fmt"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/logger"
	"github.com/google/uuid"
)

type itemSummarizer interface {
	SummarizeKnowledgeObject(ctx context.Context, ko *ent.KnowledgeObject, rawText string) error
}

type koLoader interface {
	GetWithCategories(ctx context.Context, id uuid.UUID) (*ent.KnowledgeObject, error)
}

// Ingestor 新内容入口：决定新入库的知识对象是否需要立刻做个体摘要
type Ingestor struct {
	koModel    koLoader
	summarizer itemSummarizer
}

func NewIngestor(koModel koLoader, summarizer itemSummarizer) *Ingestor {
	return &Ingestor{koModel: koModel, summarizer: summarizer}
}

// HandleNewContent 处理新到达的知识对象正文
// 仅当对象所属分类中至少有一个要求摘要时才触发摘要；对象不存在只告警不报错
func (i *Ingestor) HandleNewContent(ctx context.Context, koID uuid.UUID, text string) error {
	ko, err := i.koModel.GetWithCategories(ctx, koID)
	if err != nil {
		if ent.IsNotFound(err) {
			logger.Warnf("[Ingest] 知识对象不存在或已删除, 忽略, id: %s", koID)
			return nil
		}
		return fmt.Errorf("查询知识对象失败, %v", err)
	}

	required := false
	for _, category := range ko.Edges.BundleCategories {
		if category.SummaryRequired {
			required = true
			break
		}
	}
	if !required {
		logger.Debugf("[Ingest] 所属分类均不要求摘要, 跳过, id: %s", koID)
		return nil
	}

	return i.summarizer.SummarizeKnowledgeObject(ctx, ko, text)
}
