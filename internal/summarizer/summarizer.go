package summarizer

import (
	"context"
	"fmt"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/ent/kosummary"
	"github.com/fachebot/ko-digest-bot/internal/llm"
	"github.com/fachebot/ko-digest-bot/internal/logger"
	"github.com/fachebot/ko-digest-bot/internal/model"
	"github.com/fachebot/ko-digest-bot/internal/prompt"
	"github.com/google/uuid"
)

type llmCompleter interface {
	Complete(ctx context.Context, model, system string, turns []llm.Turn) (string, error)
}

type summaryStore interface {
	GetByKnowledgeObject(ctx context.Context, koID uuid.UUID) (*ent.KoSummary, error)
	Create(ctx context.Context, data *model.KoSummaryData) (*ent.KoSummary, error)
}

// Summarizer 知识对象的个体摘要器
// 对同一对象重复调用是幂等的：已有摘要直接视作缓存命中
type Summarizer struct {
	llmClient    llmCompleter
	summaryModel summaryStore
	prompts      *prompt.Library
	model        string
}

func NewSummarizer(llmClient *llm.Client, summaryModel *model.KoSummaryModel, prompts *prompt.Library) *Summarizer {
	return &Summarizer{
		llmClient:    llmClient,
		summaryModel: summaryModel,
		prompts:      prompts,
		model:        llmClient.Model(),
	}
}

// SummarizeKnowledgeObject 为单个知识对象生成多条要点摘要与单句摘要并写入缓存
// 生成失败时降级：要点摘要置空，单句摘要回退到标题，记录仍正常写入
// 只有存储读写失败才向上返回错误
func (s *Summarizer) SummarizeKnowledgeObject(ctx context.Context, ko *ent.KnowledgeObject, rawText string) error {
	_, err := s.summaryModel.GetByKnowledgeObject(ctx, ko.ID)
	if err == nil {
		logger.Debugf("[Summarizer] 知识对象已有摘要, 跳过, id: %s", ko.ID)
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("查询摘要缓存失败, %v", err)
	}

	system := s.prompts.Get(prompt.StagePerItemSystem, "") +
		fmt.Sprintf("Title: %s\nContent: %s\n", ko.Title, rawText)

	summaryText := ""
	text, err := s.llmClient.Complete(ctx, s.model, system, []llm.Turn{
		{Role: llm.RoleUser, Content: s.prompts.Get(prompt.StageShortSummary, string(ko.KoType))},
	})
	if err != nil {
		logger.Warnf("[Summarizer] 生成要点摘要失败, id: %s, %v", ko.ID, err)
	} else {
		summaryText = text
	}

	oneLiner := ko.Title
	text, err = s.llmClient.Complete(ctx, s.model, system, []llm.Turn{
		{Role: llm.RoleUser, Content: s.prompts.Get(prompt.StageOneLiner, string(ko.KoType))},
	})
	if err != nil {
		logger.Warnf("[Summarizer] 生成单句摘要失败, 回退到标题, id: %s, %v", ko.ID, err)
	} else {
		oneLiner = text
	}

	_, err = s.summaryModel.Create(ctx, &model.KoSummaryData{
		KoID:            ko.ID,
		KoType:          kosummary.KoType(ko.KoType),
		Title:           ko.Title,
		SummaryText:     summaryText,
		SummaryOneLiner: oneLiner,
	})
	if err != nil {
		return fmt.Errorf("写入摘要缓存失败, %v", err)
	}

	logger.Infof("[Summarizer] 知识对象摘要完成, id: %s, title: %s", ko.ID, ko.Title)
	return nil
}
