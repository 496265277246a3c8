package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
	"github.com/google/uuid"
)

// DailyDose holds the schema definition for the DailyDose entity.
// 独立的引言池，与知识对象无关，每次合成随机取一条附加到摘要包。
type DailyDose struct {
	ent.Schema
}

func (DailyDose) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the DailyDose.
func (DailyDose) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Comment("引言ID"),
		field.Text("quote").Comment("引言内容"),
		field.String("source").Comment("引言出处"),
		field.String("dd_type").Comment("引言分类标签"),
	}
}
