package digest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/llm"
	"github.com/fachebot/ko-digest-bot/internal/logger"
	"github.com/fachebot/ko-digest-bot/internal/prompt"
)

type llmCompleter interface {
	Complete(ctx context.Context, model, system string, turns []llm.Turn) (string, error)
}

// Synthesizer 整包合成器，实现三段降级协议
// 第一段用基础模型生成严格 JSON；解析或校验失败时换升级模型带会话回放重试一次；
// 仍失败则进入确定性兜底：一句话列表直接由缓存拼装，叙事部分用精简契约生成
type Synthesizer struct {
	llmClient  llmCompleter
	prompts    *prompt.Library
	model      string
	retryModel string
}

func NewSynthesizer(llmClient *llm.Client, prompts *prompt.Library) *Synthesizer {
	return &Synthesizer{
		llmClient:  llmClient,
		prompts:    prompts,
		model:      llmClient.Model(),
		retryModel: llmClient.RetryModel(),
	}
}

// Synthesize 对窗口内的个体摘要集合成整包摘要
// 输入为空时返回 nil；任何阶段失败都在内部降级，最终结果绝不为空
func (s *Synthesizer) Synthesize(ctx context.Context, skos []*ent.KoSummary) *SummaryJSON {
	if len(skos) == 0 {
		return nil
	}

	result, err := s.structuredAttempt(ctx, skos)
	if err == nil {
		return result
	}
	logger.Warnf("[Synthesizer] 结构化合成失败, 进入兜底阶段, %v", err)

	return s.narrativeFallback(ctx, skos)
}

// structuredAttempt 第一、二段：基础模型严格 JSON，失败时升级模型带回放重试
func (s *Synthesizer) structuredAttempt(ctx context.Context, skos []*ent.KoSummary) (*SummaryJSON, error) {
	system := s.prompts.Get(prompt.StageFullSummarySystem, "") + s.buildContentBlocks(skos)
	userPrompt := s.prompts.Get(prompt.StageFullSummaryUser, "")

	raw, err := s.llmClient.Complete(ctx, s.model, system, []llm.Turn{
		{Role: llm.RoleUser, Content: userPrompt},
	})
	if err != nil {
		// 服务调用本身失败时没有可回放的内容，直接越过重试
		return nil, newStageError(KindProviderCall, stageStructured, err)
	}

	result, serr := s.parseAndValidate(raw, skos, stageStructured)
	if serr == nil {
		return result, nil
	}
	logger.Warnf("[Synthesizer] 首次合成不合法, 升级模型重试, %v", serr)

	// 回放完整会话并附加纠正指令，让升级模型看到上一次的原始输出
	retryRaw, err := s.llmClient.Complete(ctx, s.retryModel, system, []llm.Turn{
		{Role: llm.RoleUser, Content: userPrompt},
		{Role: llm.RoleAssistant, Content: raw},
		{Role: llm.RoleUser, Content: s.prompts.Get(prompt.StageRetryFullSummary, "")},
	})
	if err != nil {
		return nil, newStageError(KindProviderCall, stageEscalatedRetry, err)
	}

	result, serr = s.parseAndValidate(retryRaw, skos, stageEscalatedRetry)
	if serr != nil {
		return nil, serr
	}
	return result, nil
}

// narrativeFallback 第三段：一句话列表由缓存确定性拼装，只让模型写叙事部分
// 叙事生成再失败时把原始文本当作叙事正文，趋势列表置空
func (s *Synthesizer) narrativeFallback(ctx context.Context, skos []*ent.KoSummary) *SummaryJSON {
	result := &SummaryJSON{
		TrendingStories: []TrendingStory{},
		OneLiners:       s.oneLinersFromCache(skos),
	}

	system := s.prompts.Get(prompt.StageFullSummarySystem, "") + s.buildContentBlocks(skos)
	raw, err := s.llmClient.Complete(ctx, s.retryModel, system, []llm.Turn{
		{Role: llm.RoleUser, Content: s.prompts.Get(prompt.StageNarrativeOnly, "")},
	})
	if err != nil {
		logger.Errorf("[Synthesizer] 兜底叙事生成失败, %v",
			newStageError(KindProviderCall, stageNarrativeFallback, err))
		return result
	}

	var narrative struct {
		Summary         string          `json:"summary"`
		TrendingStories []TrendingStory `json:"trending_stories"`
	}
	if err = json.Unmarshal([]byte(raw), &narrative); err != nil {
		logger.Warnf("[Synthesizer] 兜底叙事不是合法 JSON, 降级为纯文本, %v",
			newStageError(KindResponseParse, stageNarrativeFallback, err))
		result.Summary = raw
		return result
	}

	result.Summary = narrative.Summary
	if narrative.TrendingStories != nil {
		result.TrendingStories = narrative.TrendingStories
	}
	return result
}

// oneLinersFromCache 按输入顺序从个体摘要缓存拼一句话列表，单句缺失时留空
func (s *Synthesizer) oneLinersFromCache(skos []*ent.KoSummary) []OneLiner {
	oneLiners := make([]OneLiner, 0, len(skos))
	for _, sko := range skos {
		oneLiners = append(oneLiners, OneLiner{
			Text: sko.SummaryOneLiner,
			UUID: sko.KoID.String(),
			Type: string(sko.KoType),
		})
	}
	return oneLiners
}

// parseAndValidate 解析严格 JSON 并校验引用不变量
// 每条一句话的 (uuid, type) 必须与输入集中某个条目一致
func (s *Synthesizer) parseAndValidate(raw string, skos []*ent.KoSummary, stage string) (*SummaryJSON, *StageError) {
	var result SummaryJSON
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, newStageError(KindResponseParse, stage, err)
	}

	if strings.TrimSpace(result.Summary) == "" {
		return nil, newStageError(KindResponseValidation, stage, fmt.Errorf("summary 字段为空"))
	}
	if len(result.OneLiners) == 0 {
		return nil, newStageError(KindResponseValidation, stage, fmt.Errorf("one_liners 列表为空"))
	}

	for _, ol := range result.OneLiners {
		matched := false
		for _, sko := range skos {
			if ol.UUID == sko.KoID.String() && ol.Type == string(sko.KoType) {
				matched = true
				break
			}
		}
		if !matched {
			return nil, newStageError(KindResponseValidation, stage,
				fmt.Errorf("一句话引用了输入集之外的条目, uuid: %s, type: %s", ol.UUID, ol.Type))
		}
	}

	if result.TrendingStories == nil {
		result.TrendingStories = []TrendingStory{}
	}
	return &result, nil
}

// buildContentBlocks 把个体摘要拼成内容块，正文优先用多条要点摘要，缺失时退回单句
func (s *Synthesizer) buildContentBlocks(skos []*ent.KoSummary) string {
	var sb strings.Builder
	for _, sko := range skos {
		content := sko.SummaryText
		if content == "" {
			content = sko.SummaryOneLiner
		}
		sb.WriteString(fmt.Sprintf("UUID: %s\nTYPE: %s\nTITLE: %s\nCONTENT: %s\n\n",
			sko.KoID.String(), string(sko.KoType), sko.Title, content))
	}
	return sb.String()
}
