package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// DigestRun holds the schema definition for the DigestRun entity.
type DigestRun struct {
	ent.Schema
}

func (DigestRun) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the DigestRun.
func (DigestRun) Fields() []ent.Field {
	return []ent.Field{
		field.Time("select_from").Comment("选取窗口的起始时间（cutoff）"),
		field.Time("run_date").Comment("运行所属日期（当日零点）"),
		field.Enum("status").
			Values("in_progress", "completed", "failed").
			Default("in_progress").
			Comment("运行状态：in_progress=执行中, completed=已完成, failed=失败"),
		field.String("error_message").Optional().Comment("错误信息"),
	}
}

// Indexes of the DigestRun.
func (DigestRun) Indexes() []ent.Index {
	return []ent.Index{
		// 唯一索引：防止同一窗口重复创建
		index.Fields("select_from", "run_date").Unique(),
		// 索引：用于查询未完成运行
		index.Fields("status"),
	}
}
