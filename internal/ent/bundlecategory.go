// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundlecategory"
	"github.com/google/uuid"
)

// BundleCategory is the model entity for the BundleCategory schema.
type BundleCategory struct {
	config `json:"-"`
	// ID of the ent.
	// 分类ID
	ID uuid.UUID `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 分类名称
	Name string `json:"name,omitempty"`
	// 该分类下的知识对象是否需要逐条生成个体摘要
	SummaryRequired bool `json:"summary_required,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BundleCategoryQuery when eager-loading is set.
	Edges        BundleCategoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BundleCategoryEdges holds the relations/edges for other nodes in the graph.
type BundleCategoryEdges struct {
	// KnowledgeObjects holds the value of the knowledge_objects edge.
	KnowledgeObjects []*KnowledgeObject `json:"knowledge_objects,omitempty"`
	// Bundles holds the value of the bundles edge.
	Bundles []*Bundle `json:"bundles,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// KnowledgeObjectsOrErr returns the KnowledgeObjects value or an error if the edge
// was not loaded in eager-loading.
func (e BundleCategoryEdges) KnowledgeObjectsOrErr() ([]*KnowledgeObject, error) {
	if e.loadedTypes[0] {
		return e.KnowledgeObjects, nil
	}
	return nil, &NotLoadedError{edge: "knowledge_objects"}
}

// BundlesOrErr returns the Bundles value or an error if the edge
// was not loaded in eager-loading.
func (e BundleCategoryEdges) BundlesOrErr() ([]*Bundle, error) {
	if e.loadedTypes[1] {
		return e.Bundles, nil
	}
	return nil, &NotLoadedError{edge: "bundles"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BundleCategory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bundlecategory.FieldSummaryRequired:
			values[i] = new(sql.NullBool)
		case bundlecategory.FieldName:
			values[i] = new(sql.NullString)
		case bundlecategory.FieldCreateTime, bundlecategory.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		case bundlecategory.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BundleCategory fields.
func (_m *BundleCategory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bundlecategory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case bundlecategory.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case bundlecategory.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case bundlecategory.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case bundlecategory.FieldSummaryRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field summary_required", values[i])
			} else if value.Valid {
				_m.SummaryRequired = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BundleCategory.
// This includes values selected through modifiers, order, etc.
func (_m *BundleCategory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryKnowledgeObjects queries the "knowledge_objects" edge of the BundleCategory entity.
func (_m *BundleCategory) QueryKnowledgeObjects() *KnowledgeObjectQuery {
	return NewBundleCategoryClient(_m.config).QueryKnowledgeObjects(_m)
}

// QueryBundles queries the "bundles" edge of the BundleCategory entity.
func (_m *BundleCategory) QueryBundles() *BundleQuery {
	return NewBundleCategoryClient(_m.config).QueryBundles(_m)
}

// Update returns a builder for updating this BundleCategory.
// Note that you need to call BundleCategory.Unwrap() before calling this method if this BundleCategory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BundleCategory) Update() *BundleCategoryUpdateOne {
	return NewBundleCategoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BundleCategory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BundleCategory) Unwrap() *BundleCategory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BundleCategory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BundleCategory) String() string {
	var builder strings.Builder
	builder.WriteString("BundleCategory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("summary_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.SummaryRequired))
	builder.WriteByte(')')
	return builder.String()
}

// BundleCategories is a parsable slice of BundleCategory.
type BundleCategories []*BundleCategory
