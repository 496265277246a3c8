package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
	"github.com/google/uuid"
)

// DigestTask holds the schema definition for the DigestTask entity.
type DigestTask struct {
	ent.Schema
}

func (DigestTask) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the DigestTask.
func (DigestTask) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("bundle_category_id", uuid.UUID{}).Comment("分类ID"),
		field.Time("select_from").Comment("选取窗口的起始时间（cutoff）"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending").
			Comment("任务状态：pending=待处理, processing=处理中, completed=已完成, failed=失败"),
		field.Time("completed_at").Optional().Comment("完成时间"),
		field.String("error_message").Optional().Comment("错误信息"),
	}
}

// Indexes of the DigestTask.
func (DigestTask) Indexes() []ent.Index {
	return []ent.Index{
		// 唯一索引：同一分类同一窗口只允许一个任务，也由此挡住重复落包
		index.Fields("bundle_category_id", "select_from").Unique(),
		// 索引：用于查询未完成任务
		index.Fields("status"),
	}
}
