// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/ko-digest-bot/internal/ent/dailydose"
	"github.com/google/uuid"
)

// DailyDose is the model entity for the DailyDose schema.
type DailyDose struct {
	config `json:"-"`
	// ID of the ent.
	// 引言ID
	ID uuid.UUID `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 引言内容
	Quote string `json:"quote,omitempty"`
	// 引言出处
	Source string `json:"source,omitempty"`
	// 引言分类标签
	DdType       string `json:"dd_type,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyDose) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailydose.FieldQuote, dailydose.FieldSource, dailydose.FieldDdType:
			values[i] = new(sql.NullString)
		case dailydose.FieldCreateTime, dailydose.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		case dailydose.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyDose fields.
func (_m *DailyDose) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailydose.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case dailydose.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case dailydose.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case dailydose.FieldQuote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quote", values[i])
			} else if value.Valid {
				_m.Quote = value.String
			}
		case dailydose.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case dailydose.FieldDdType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dd_type", values[i])
			} else if value.Valid {
				_m.DdType = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyDose.
// This includes values selected through modifiers, order, etc.
func (_m *DailyDose) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DailyDose.
// Note that you need to call DailyDose.Unwrap() before calling this method if this DailyDose
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DailyDose) Update() *DailyDoseUpdateOne {
	return NewDailyDoseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DailyDose entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DailyDose) Unwrap() *DailyDose {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyDose is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DailyDose) String() string {
	var builder strings.Builder
	builder.WriteString("DailyDose(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("quote=")
	builder.WriteString(_m.Quote)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("dd_type=")
	builder.WriteString(_m.DdType)
	builder.WriteByte(')')
	return builder.String()
}

// DailyDoses is a parsable slice of DailyDose.
type DailyDoses []*DailyDose
