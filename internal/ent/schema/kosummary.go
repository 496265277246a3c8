package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
	"github.com/google/uuid"
)

// KoSummary holds the schema definition for the KoSummary entity.
// 每个知识对象至多一条，创建后不再改写；存在即表示"不再重新生成"。
type KoSummary struct {
	ent.Schema
}

func (KoSummary) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the KoSummary.
func (KoSummary) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("ko_id", uuid.UUID{}).
			Unique().
			Comment("所属知识对象ID"),
		field.Enum("ko_type").
			Values("episode", "article", "email").
			Comment("知识对象类型（冗余字段，便于合成时直接取用）"),
		field.String("title").Comment("知识对象标题（冗余字段）"),
		field.Text("summary_text").Optional().Comment("多条要点式短摘要，生成失败时为空"),
		field.Text("summary_one_liner").Optional().Comment("单句摘要，生成失败时回退为标题"),
	}
}

// Edges of the KoSummary.
func (KoSummary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("knowledge_object", KnowledgeObject.Type).
			Ref("summary").
			Field("ko_id").
			Unique().
			Required(),
	}
}
