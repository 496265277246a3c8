package digest

import (
	"github.com/fachebot/ko-digest-bot/internal/ent"
)

// LinkHierarchy 为一句话列表补充层级信息
// 在超集中按 (uuid, type) 找到对应知识对象后，父节点标题作为 parent，
// 祖父节点标题作为 publisher；层级缺失时相应字段留空，绝不因此失败
func LinkHierarchy(result *SummaryJSON, kos []*ent.KnowledgeObject) {
	if result == nil {
		return
	}

	for i := range result.OneLiners {
		ol := &result.OneLiners[i]
		for _, ko := range kos {
			if ol.UUID != ko.ID.String() || ol.Type != string(ko.KoType) {
				continue
			}
			if parent := ko.Edges.Parent; parent != nil {
				ol.Parent = parent.Title
				if grandparent := parent.Edges.Parent; grandparent != nil {
					ol.Publisher = grandparent.Title
				}
			}
			break
		}
	}
}
