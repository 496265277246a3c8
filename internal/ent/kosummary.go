// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/fachebot/ko-digest-bot/internal/ent/kosummary"
	"github.com/google/uuid"
)

// KoSummary is the model entity for the KoSummary schema.
type KoSummary struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 所属知识对象ID
	KoID uuid.UUID `json:"ko_id,omitempty"`
	// 知识对象类型（冗余字段，便于合成时直接取用）
	KoType kosummary.KoType `json:"ko_type,omitempty"`
	// 知识对象标题（冗余字段）
	Title string `json:"title,omitempty"`
	// 多条要点式短摘要，生成失败时为空
	SummaryText string `json:"summary_text,omitempty"`
	// 单句摘要，生成失败时回退为标题
	SummaryOneLiner string `json:"summary_one_liner,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the KoSummaryQuery when eager-loading is set.
	Edges        KoSummaryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// KoSummaryEdges holds the relations/edges for other nodes in the graph.
type KoSummaryEdges struct {
	// KnowledgeObject holds the value of the knowledge_object edge.
	KnowledgeObject *KnowledgeObject `json:"knowledge_object,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// KnowledgeObjectOrErr returns the KnowledgeObject value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e KoSummaryEdges) KnowledgeObjectOrErr() (*KnowledgeObject, error) {
	if e.KnowledgeObject != nil {
		return e.KnowledgeObject, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: knowledgeobject.Label}
	}
	return nil, &NotLoadedError{edge: "knowledge_object"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KoSummary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case kosummary.FieldID:
			values[i] = new(sql.NullInt64)
		case kosummary.FieldKoType, kosummary.FieldTitle, kosummary.FieldSummaryText, kosummary.FieldSummaryOneLiner:
			values[i] = new(sql.NullString)
		case kosummary.FieldCreateTime, kosummary.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		case kosummary.FieldKoID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KoSummary fields.
func (_m *KoSummary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case kosummary.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case kosummary.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case kosummary.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case kosummary.FieldKoID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field ko_id", values[i])
			} else if value != nil {
				_m.KoID = *value
			}
		case kosummary.FieldKoType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ko_type", values[i])
			} else if value.Valid {
				_m.KoType = kosummary.KoType(value.String)
			}
		case kosummary.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case kosummary.FieldSummaryText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary_text", values[i])
			} else if value.Valid {
				_m.SummaryText = value.String
			}
		case kosummary.FieldSummaryOneLiner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary_one_liner", values[i])
			} else if value.Valid {
				_m.SummaryOneLiner = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KoSummary.
// This includes values selected through modifiers, order, etc.
func (_m *KoSummary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryKnowledgeObject queries the "knowledge_object" edge of the KoSummary entity.
func (_m *KoSummary) QueryKnowledgeObject() *KnowledgeObjectQuery {
	return NewKoSummaryClient(_m.config).QueryKnowledgeObject(_m)
}

// Update returns a builder for updating this KoSummary.
// Note that you need to call KoSummary.Unwrap() before calling this method if this KoSummary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KoSummary) Update() *KoSummaryUpdateOne {
	return NewKoSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KoSummary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KoSummary) Unwrap() *KoSummary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KoSummary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KoSummary) String() string {
	var builder strings.Builder
	builder.WriteString("KoSummary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ko_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.KoID))
	builder.WriteString(", ")
	builder.WriteString("ko_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.KoType))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("summary_text=")
	builder.WriteString(_m.SummaryText)
	builder.WriteString(", ")
	builder.WriteString("summary_one_liner=")
	builder.WriteString(_m.SummaryOneLiner)
	builder.WriteByte(')')
	return builder.String()
}

// KoSummaries is a parsable slice of KoSummary.
type KoSummaries []*KoSummary
