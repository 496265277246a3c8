// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundle"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundlecategory"
	"github.com/google/uuid"
)

// Bundle is the model entity for the Bundle schema.
type Bundle struct {
	config `json:"-"`
	// ID of the ent.
	// 摘要包ID
	ID uuid.UUID `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 校验通过的合成摘要（序列化后的 SummaryJSON）
	SummaryJSON json.RawMessage `json:"summary_json,omitempty"`
	// 目标时区，如 Europe/Stockholm
	Timezone string `json:"timezone,omitempty"`
	// 所属分类ID
	BundleCategoryID uuid.UUID `json:"bundle_category_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BundleQuery when eager-loading is set.
	Edges        BundleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BundleEdges holds the relations/edges for other nodes in the graph.
type BundleEdges struct {
	// BundleCategory holds the value of the bundle_category edge.
	BundleCategory *BundleCategory `json:"bundle_category,omitempty"`
	// KnowledgeObjects holds the value of the knowledge_objects edge.
	KnowledgeObjects []*KnowledgeObject `json:"knowledge_objects,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BundleCategoryOrErr returns the BundleCategory value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BundleEdges) BundleCategoryOrErr() (*BundleCategory, error) {
	if e.BundleCategory != nil {
		return e.BundleCategory, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: bundlecategory.Label}
	}
	return nil, &NotLoadedError{edge: "bundle_category"}
}

// KnowledgeObjectsOrErr returns the KnowledgeObjects value or an error if the edge
// was not loaded in eager-loading.
func (e BundleEdges) KnowledgeObjectsOrErr() ([]*KnowledgeObject, error) {
	if e.loadedTypes[1] {
		return e.KnowledgeObjects, nil
	}
	return nil, &NotLoadedError{edge: "knowledge_objects"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Bundle) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bundle.FieldSummaryJSON:
			values[i] = new([]byte)
		case bundle.FieldTimezone:
			values[i] = new(sql.NullString)
		case bundle.FieldCreateTime, bundle.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		case bundle.FieldID, bundle.FieldBundleCategoryID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Bundle fields.
func (_m *Bundle) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bundle.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case bundle.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case bundle.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case bundle.FieldSummaryJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field summary_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SummaryJSON); err != nil {
					return fmt.Errorf("unmarshal field summary_json: %w", err)
				}
			}
		case bundle.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case bundle.FieldBundleCategoryID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field bundle_category_id", values[i])
			} else if value != nil {
				_m.BundleCategoryID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Bundle.
// This includes values selected through modifiers, order, etc.
func (_m *Bundle) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBundleCategory queries the "bundle_category" edge of the Bundle entity.
func (_m *Bundle) QueryBundleCategory() *BundleCategoryQuery {
	return NewBundleClient(_m.config).QueryBundleCategory(_m)
}

// QueryKnowledgeObjects queries the "knowledge_objects" edge of the Bundle entity.
func (_m *Bundle) QueryKnowledgeObjects() *KnowledgeObjectQuery {
	return NewBundleClient(_m.config).QueryKnowledgeObjects(_m)
}

// Update returns a builder for updating this Bundle.
// Note that you need to call Bundle.Unwrap() before calling this method if this Bundle
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Bundle) Update() *BundleUpdateOne {
	return NewBundleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Bundle entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Bundle) Unwrap() *Bundle {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Bundle is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Bundle) String() string {
	var builder strings.Builder
	builder.WriteString("Bundle(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("summary_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.SummaryJSON))
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("bundle_category_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BundleCategoryID))
	builder.WriteByte(')')
	return builder.String()
}

// Bundles is a parsable slice of Bundle.
type Bundles []*Bundle
