package prompt

// Stage 标识管线中需要提示词的环节
type Stage string

const (
	// StageFullSummarySystem 整包合成的 system 上下文（后接内容块）
	StageFullSummarySystem Stage = "full_summary_system"
	// StageFullSummaryUser 整包合成的用户指令（严格 JSON 契约）
	StageFullSummaryUser Stage = "full_summary_user"
	// StageRetryFullSummary 重试时附加的纠正指令
	StageRetryFullSummary Stage = "retry_full_summary"
	// StageNarrativeOnly 兜底阶段仅叙事的精简契约
	StageNarrativeOnly Stage = "narrative_only"
	// StagePerItemSystem 个体摘要的 system 上下文（后接标题与正文）
	StagePerItemSystem Stage = "per_item_system"
	// StageShortSummary 个体多条要点摘要，按知识对象类型取不同变体
	StageShortSummary Stage = "short_summary"
	// StageOneLiner 个体单句摘要
	StageOneLiner Stage = "one_liner"
)

type key struct {
	stage  Stage
	koType string
}

// Library 提示词模板库：按 (环节, 知识对象类型) 查找，类型不匹配时回退到无类型默认项
// 模板内容可整体注入替换，控制流中不内联任何提示词文本
type Library struct {
	templates map[key]string
}

// Default 返回内置模板库
func Default() *Library {
	l := &Library{templates: make(map[key]string)}
	l.Set(StageFullSummarySystem, "", fullSummarySystemPrompt)
	l.Set(StageFullSummaryUser, "", fullSummaryUserPrompt)
	l.Set(StageRetryFullSummary, "", retryFullSummaryPrompt)
	l.Set(StageNarrativeOnly, "", narrativeOnlyPrompt)
	l.Set(StagePerItemSystem, "", perItemSystemPrompt)
	l.Set(StageShortSummary, "", shortGenericSummaryPrompt)
	l.Set(StageShortSummary, "episode", shortPodcastSummaryPrompt)
	l.Set(StageOneLiner, "", oneLinerSummaryPrompt)
	return l
}

// Set 注册或覆盖模板；koType 为空表示该环节的默认模板
func (l *Library) Set(stage Stage, koType, text string) {
	l.templates[key{stage: stage, koType: koType}] = text
}

// Get 查找模板：先精确匹配 (stage, koType)，未命中时回退到 (stage, "")
func (l *Library) Get(stage Stage, koType string) string {
	if text, ok := l.templates[key{stage: stage, koType: koType}]; ok {
		return text
	}
	return l.templates[key{stage: stage, koType: ""}]
}
