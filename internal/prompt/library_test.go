package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_AllStagesCovered(t *testing.T) {
	lib := Default()
	stages := []Stage{
		StageFullSummarySystem,
		StageFullSummaryUser,
		StageRetryFullSummary,
		StageNarrativeOnly,
		StagePerItemSystem,
		StageShortSummary,
		StageOneLiner,
	}
	for _, stage := range stages {
		assert.NotEmpty(t, lib.Get(stage, ""), "环节 %s 缺少默认模板", stage)
	}
}

func TestGet_TypeVariantFallback(t *testing.T) {
	lib := Default()

	// 播客单集有专属的要点摘要变体
	episode := lib.Get(StageShortSummary, "episode")
	generic := lib.Get(StageShortSummary, "article")
	assert.NotEqual(t, episode, generic)
	assert.Equal(t, lib.Get(StageShortSummary, ""), generic)

	// 未注册类型变体的环节回退到默认模板
	assert.Equal(t, lib.Get(StageOneLiner, ""), lib.Get(StageOneLiner, "episode"))
}

func TestSet_Override(t *testing.T) {
	lib := Default()
	lib.Set(StageOneLiner, "email", "custom template")

	assert.Equal(t, "custom template", lib.Get(StageOneLiner, "email"))
	assert.NotEqual(t, "custom template", lib.Get(StageOneLiner, "article"))
}

func TestDefault_ContractTemplates(t *testing.T) {
	lib := Default()

	// 整包指令要求严格 JSON 契约
	user := lib.Get(StageFullSummaryUser, "")
	assert.Contains(t, user, "JSON")
	assert.Contains(t, user, "one_liners")

	// 纠正指令向模型指出上一次输出不可序列化
	retry := lib.Get(StageRetryFullSummary, "")
	assert.Contains(t, retry, "not JSON serializable")
}
