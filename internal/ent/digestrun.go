// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/ko-digest-bot/internal/ent/digestrun"
)

// DigestRun is the model entity for the DigestRun schema.
type DigestRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 选取窗口的起始时间（cutoff）
	SelectFrom time.Time `json:"select_from,omitempty"`
	// 运行所属日期（当日零点）
	RunDate time.Time `json:"run_date,omitempty"`
	// 运行状态：in_progress=执行中, completed=已完成, failed=失败
	Status digestrun.Status `json:"status,omitempty"`
	// 错误信息
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DigestRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case digestrun.FieldID:
			values[i] = new(sql.NullInt64)
		case digestrun.FieldStatus, digestrun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case digestrun.FieldCreateTime, digestrun.FieldUpdateTime, digestrun.FieldSelectFrom, digestrun.FieldRunDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DigestRun fields.
func (_m *DigestRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case digestrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case digestrun.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case digestrun.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case digestrun.FieldSelectFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field select_from", values[i])
			} else if value.Valid {
				_m.SelectFrom = value.Time
			}
		case digestrun.FieldRunDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field run_date", values[i])
			} else if value.Valid {
				_m.RunDate = value.Time
			}
		case digestrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = digestrun.Status(value.String)
			}
		case digestrun.FieldErrorMessage:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DigestRun.
// This includes values selected through modifiers, order, etc.
func (_m *DigestRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DigestRun.
// Note that you need to call DigestRun.Unwrap() before calling this method if this DigestRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DigestRun) Update() *DigestRunUpdateOne {
	return NewDigestRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DigestRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DigestRun) Unwrap() *DigestRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DigestRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DigestRun) String() string {
	var builder strings.Builder
	builder.WriteString("DigestRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("select_from=")
	builder.WriteString(_m.SelectFrom.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_date=")
	builder.WriteString(_m.RunDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// DigestRuns is a parsable slice of DigestRun.
type DigestRuns []*DigestRun
