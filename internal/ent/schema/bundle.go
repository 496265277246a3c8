package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
	"github.com/google/uuid"
)

// Bundle holds the schema definition for the Bundle entity.
// 一次合成为每个时区各写一条，payload 与关联对象完全一致；只写不改。
type Bundle struct {
	ent.Schema
}

func (Bundle) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the Bundle.
func (Bundle) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Comment("摘要包ID"),
		field.JSON("summary_json", json.RawMessage{}).
			Comment("校验通过的合成摘要（序列化后的 SummaryJSON）"),
		field.String("timezone").Comment("目标时区，如 Europe/Stockholm"),
		field.UUID("bundle_category_id", uuid.UUID{}).Comment("所属分类ID"),
	}
}

// Edges of the Bundle.
func (Bundle) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("bundle_category", BundleCategory.Type).
			Field("bundle_category_id").
			Unique().
			Required(),
		edge.To("knowledge_objects", KnowledgeObject.Type),
	}
}

// Indexes of the Bundle.
func (Bundle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bundle_category_id", "timezone"),
	}
}
