package digest

import "fmt"

// FailureKind 管线内部的失败类别
type FailureKind int

const (
	// KindProviderCall 生成服务调用失败（网络/超时/服务端错误）
	KindProviderCall FailureKind = iota + 1
	// KindResponseParse 返回文本不是合法 JSON
	KindResponseParse
	// KindResponseValidation JSON 可解析但违反契约或引用不变量
	KindResponseValidation
	// KindPersistence 存储写入/提交失败
	KindPersistence
)

func (k FailureKind) String() string {
	switch k {
	case KindProviderCall:
		return "provider_call"
	case KindResponseParse:
		return "response_parse"
	case KindResponseValidation:
		return "response_validation"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// 失败发生的管线阶段
const (
	stageStructured        = "structured"
	stageEscalatedRetry    = "escalated_retry"
	stageNarrativeFallback = "narrative_fallback"
	stagePersist           = "persist"
)

// StageError 带类别与阶段信息的管线错误
// 合成阶段内的 StageError 只驱动降级并记录日志，绝不越过合成器边界
type StageError struct {
	Kind  FailureKind
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Stage, e.Kind, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func newStageError(kind FailureKind, stage string, err error) *StageError {
	return &StageError{Kind: kind, Stage: stage, Err: err}
}
