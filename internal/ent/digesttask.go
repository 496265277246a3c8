// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/ko-digest-bot/internal/ent/digesttask"
	"github.com/google/uuid"
)

// DigestTask is the model entity for the DigestTask schema.
type DigestTask struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 分类ID
	BundleCategoryID uuid.UUID `json:"bundle_category_id,omitempty"`
	// 选取窗口的起始时间（cutoff）
	SelectFrom time.Time `json:"select_from,omitempty"`
	// 任务状态：pending=待处理, processing=处理中, completed=已完成, failed=失败
	Status digesttask.Status `json:"status,omitempty"`
	// 完成时间
	CompletedAt time.Time `json:"completed_at,omitempty"`
	// 错误信息
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DigestTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case digesttask.FieldID:
			values[i] = new(sql.NullInt64)
		case digesttask.FieldStatus, digesttask.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case digesttask.FieldCreateTime, digesttask.FieldUpdateTime, digesttask.FieldSelectFrom, digesttask.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case digesttask.FieldBundleCategoryID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DigestTask fields.
func (_m *DigestTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case digesttask.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case digesttask.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case digesttask.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case digesttask.FieldBundleCategoryID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field bundle_category_id", values[i])
			} else if value != nil {
				_m.BundleCategoryID = *value
			}
		case digesttask.FieldSelectFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field select_from", values[i])
			} else if value.Valid {
				_m.SelectFrom = value.Time
			}
		case digesttask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = digesttask.Status(value.String)
			}
		case digesttask.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		case digesttask.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DigestTask.
// This includes values selected through modifiers, order, etc.
func (_m *DigestTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DigestTask.
// Note that you need to call DigestTask.Unwrap() before calling this method if this DigestTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DigestTask) Update() *DigestTaskUpdateOne {
	return NewDigestTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DigestTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DigestTask) Unwrap() *DigestTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DigestTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DigestTask) String() string {
	var builder strings.Builder
	builder.WriteString("DigestTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("bundle_category_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BundleCategoryID))
	builder.WriteString(", ")
	builder.WriteString("select_from=")
	builder.WriteString(_m.SelectFrom.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// DigestTasks is a parsable slice of DigestTask.
type DigestTasks []*DigestTask
