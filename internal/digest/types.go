package digest

// TrendingStory 跨文档共同话题的短语摘要
type TrendingStory struct {
	Text string `json:"text"`
}

// OneLiner 单个知识对象的单句摘要，携带该对象的身份标识
// Parent/Publisher 由交叉引用链接器补充，缺失时序列化省略
type OneLiner struct {
	Text      string `json:"text"`
	UUID      string `json:"uuid"`
	Type      string `json:"type"`
	Parent    string `json:"parent,omitempty"`
	Publisher string `json:"publisher,omitempty"`
}

// DailyDoseOut 附加到摘要包的每日引言，字段原样拷贝自采样记录
type DailyDoseOut struct {
	Quote  string `json:"quote"`
	Source string `json:"source"`
	DdType string `json:"dd_type"`
}

// SummaryJSON 校验通过的整包合成结果
// 不变量：每条 one-liner 的 (uuid, type) 都对应合成输入集中的某个条目
type SummaryJSON struct {
	Summary         string          `json:"summary"`
	TrendingStories []TrendingStory `json:"trending_stories"`
	OneLiners       []OneLiner      `json:"one_liners"`
	DailyDose       *DailyDoseOut   `json:"daily_dose,omitempty"`
}
