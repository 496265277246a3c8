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

// KnowledgeObject is the model entity for the KnowledgeObject schema.
type KnowledgeObject struct {
	config `json:"-"`
	// ID of the ent.
	// 知识对象ID
	ID uuid.UUID `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 知识对象类型：episode=播客, article=文章, email=邮件
	KoType knowledgeobject.KoType `json:"ko_type,omitempty"`
	// 标题
	Title string `json:"title,omitempty"`
	// 软删除标记
	Deleted bool `json:"deleted,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the KnowledgeObjectQuery when eager-loading is set.
	Edges                     KnowledgeObjectEdges `json:"edges"`
	knowledge_object_children *uuid.UUID
	selectValues              sql.SelectValues
}

// KnowledgeObjectEdges holds the relations/edges for other nodes in the graph.
type KnowledgeObjectEdges struct {
	// Parent holds the value of the parent edge.
	Parent *KnowledgeObject `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*KnowledgeObject `json:"children,omitempty"`
	// BundleCategories holds the value of the bundle_categories edge.
	BundleCategories []*BundleCategory `json:"bundle_categories,omitempty"`
	// Summary holds the value of the summary edge.
	Summary *KoSummary `json:"summary,omitempty"`
	// Bundles holds the value of the bundles edge.
	Bundles []*Bundle `json:"bundles,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e KnowledgeObjectEdges) ParentOrErr() (*KnowledgeObject, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: knowledgeobject.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e KnowledgeObjectEdges) ChildrenOrErr() ([]*KnowledgeObject, error) {
	if e.loadedTypes[1] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// BundleCategoriesOrErr returns the BundleCategories value or an error if the edge
// was not loaded in eager-loading.
func (e KnowledgeObjectEdges) BundleCategoriesOrErr() ([]*BundleCategory, error) {
	if e.loadedTypes[2] {
		return e.BundleCategories, nil
	}
	return nil, &NotLoadedError{edge: "bundle_categories"}
}

// SummaryOrErr returns the Summary value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e KnowledgeObjectEdges) SummaryOrErr() (*KoSummary, error) {
	if e.Summary != nil {
		return e.Summary, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: kosummary.Label}
	}
	return nil, &NotLoadedError{edge: "summary"}
}

// BundlesOrErr returns the Bundles value or an error if the edge
// was not loaded in eager-loading.
func (e KnowledgeObjectEdges) BundlesOrErr() ([]*Bundle, error) {
	if e.loadedTypes[4] {
		return e.Bundles, nil
	}
	return nil, &NotLoadedError{edge: "bundles"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnowledgeObject) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowledgeobject.FieldDeleted:
			values[i] = new(sql.NullBool)
		case knowledgeobject.FieldKoType, knowledgeobject.FieldTitle:
			values[i] = new(sql.NullString)
		case knowledgeobject.FieldCreateTime, knowledgeobject.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		case knowledgeobject.FieldID:
			values[i] = new(uuid.UUID)
		case knowledgeobject.ForeignKeys[0]: // knowledge_object_children
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnowledgeObject fields.
func (_m *KnowledgeObject) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowledgeobject.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case knowledgeobject.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case knowledgeobject.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case knowledgeobject.FieldKoType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ko_type", values[i])
			} else if value.Valid {
				_m.KoType = knowledgeobject.KoType(value.String)
			}
		case knowledgeobject.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case knowledgeobject.FieldDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field deleted", values[i])
			} else if value.Valid {
				_m.Deleted = value.Bool
			}
		case knowledgeobject.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field knowledge_object_children", values[i])
			} else if value.Valid {
				_m.knowledge_object_children = new(uuid.UUID)
				*_m.knowledge_object_children = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KnowledgeObject.
// This includes values selected through modifiers, order, etc.
func (_m *KnowledgeObject) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParent queries the "parent" edge of the KnowledgeObject entity.
func (_m *KnowledgeObject) QueryParent() *KnowledgeObjectQuery {
	return NewKnowledgeObjectClient(_m.config).QueryParent(_m)
}

// QueryChildren queries the "children" edge of the KnowledgeObject entity.
func (_m *KnowledgeObject) QueryChildren() *KnowledgeObjectQuery {
	return NewKnowledgeObjectClient(_m.config).QueryChildren(_m)
}

// QueryBundleCategories queries the "bundle_categories" edge of the KnowledgeObject entity.
func (_m *KnowledgeObject) QueryBundleCategories() *BundleCategoryQuery {
	return NewKnowledgeObjectClient(_m.config).QueryBundleCategories(_m)
}

// QuerySummary queries the "summary" edge of the KnowledgeObject entity.
func (_m *KnowledgeObject) QuerySummary() *KoSummaryQuery {
	return NewKnowledgeObjectClient(_m.config).QuerySummary(_m)
}

// QueryBundles queries the "bundles" edge of the KnowledgeObject entity.
func (_m *KnowledgeObject) QueryBundles() *BundleQuery {
	return NewKnowledgeObjectClient(_m.config).QueryBundles(_m)
}

// Update returns a builder for updating this KnowledgeObject.
// Note that you need to call KnowledgeObject.Unwrap() before calling this method if this KnowledgeObject
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnowledgeObject) Update() *KnowledgeObjectUpdateOne {
	return NewKnowledgeObjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnowledgeObject entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnowledgeObject) Unwrap() *KnowledgeObject {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnowledgeObject is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnowledgeObject) String() string {
	var builder strings.Builder
	builder.WriteString("KnowledgeObject(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ko_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.KoType))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deleted))
	builder.WriteByte(')')
	return builder.String()
}

// KnowledgeObjects is a parsable slice of KnowledgeObject.
type KnowledgeObjects []*KnowledgeObject
