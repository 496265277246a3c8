package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
	"github.com/google/uuid"
)

// BundleCategory holds the schema definition for the BundleCategory entity.
type BundleCategory struct {
	ent.Schema
}

func (BundleCategory) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the BundleCategory.
func (BundleCategory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Comment("分类ID"),
		field.String("name").Unique().Comment("分类名称"),
		field.Bool("summary_required").
			Default(false).
			Comment("该分类下的知识对象是否需要逐条生成个体摘要"),
	}
}

// Edges of the BundleCategory.
func (BundleCategory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("knowledge_objects", KnowledgeObject.Type).Ref("bundle_categories"),
		edge.From("bundles", Bundle.Type).Ref("bundle_category"),
	}
}
