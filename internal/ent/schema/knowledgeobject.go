package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
	"github.com/google/uuid"
)

// KnowledgeObject holds the schema definition for the KnowledgeObject entity.
// 知识对象由上游摄取流程负责写入，摘要管线只读。
type KnowledgeObject struct {
	ent.Schema
}

func (KnowledgeObject) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the KnowledgeObject.
func (KnowledgeObject) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Comment("知识对象ID"),
		field.Enum("ko_type").
			Values("episode", "article", "email").
			Comment("知识对象类型：episode=播客, article=文章, email=邮件"),
		field.String("title").Comment("标题"),
		field.Bool("deleted").Default(false).Comment("软删除标记"),
	}
}

// Edges of the KnowledgeObject.
func (KnowledgeObject) Edges() []ent.Edge {
	return []ent.Edge{
		// parent 指向所属的出版物/节目，parent 的 parent 视为发行方
		edge.To("children", KnowledgeObject.Type).
			From("parent").
			Unique(),
		edge.To("bundle_categories", BundleCategory.Type),
		edge.To("summary", KoSummary.Type).Unique(),
		edge.From("bundles", Bundle.Type).Ref("knowledge_objects"),
	}
}

// Indexes of the KnowledgeObject.
func (KnowledgeObject) Indexes() []ent.Index {
	return []ent.Index{
		// 索引：选取查询按删除状态和创建时间过滤
		index.Fields("deleted"),
	}
}
