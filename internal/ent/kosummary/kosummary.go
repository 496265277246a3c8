// Code generated by ent, DO NOT EDIT.

package kosummary

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the kosummary type in the database.
	Label = "ko_summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreateTime holds the string denoting the create_time field in the database.
	FieldCreateTime = "create_time"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// FieldKoID holds the string denoting the ko_id field in the database.
	FieldKoID = "ko_id"
	// FieldKoType holds the string denoting the ko_type field in the database.
	FieldKoType = "ko_type"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSummaryText holds the string denoting the summary_text field in the database.
	FieldSummaryText = "summary_text"
	// FieldSummaryOneLiner holds the string denoting the summary_one_liner field in the database.
	FieldSummaryOneLiner = "summary_one_liner"
	// EdgeKnowledgeObject holds the string denoting the knowledge_object edge name in mutations.
	EdgeKnowledgeObject = "knowledge_object"
	// Table holds the table name of the kosummary in the database.
	Table = "ko_summaries"
	// KnowledgeObjectTable is the table that holds the knowledge_object relation/edge.
	KnowledgeObjectTable = "ko_summaries"
	// KnowledgeObjectInverseTable is the table name for the KnowledgeObject entity.
	// It exists in this package in order to avoid circular dependency with the "knowledgeobject" package.
	KnowledgeObjectInverseTable = "knowledge_objects"
	// KnowledgeObjectColumn is the table column denoting the knowledge_object relation/edge.
	KnowledgeObjectColumn = "ko_id"
)

// Columns holds all SQL columns for kosummary fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldKoID,
	FieldKoType,
	FieldTitle,
	FieldSummaryText,
	FieldSummaryOneLiner,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreateTime holds the default value on creation for the "create_time" field.
	DefaultCreateTime func() time.Time
	// DefaultUpdateTime holds the default value on creation for the "update_time" field.
	DefaultUpdateTime func() time.Time
	// UpdateDefaultUpdateTime holds the default value on update for the "update_time" field.
	UpdateDefaultUpdateTime func() time.Time
)

// KoType defines the type for the "ko_type" enum field.
type KoType string

// KoType values.
const (
	KoTypeEpisode KoType = "episode"
	KoTypeArticle KoType = "article"
	KoTypeEmail   KoType = "email"
)

func (kt KoType) String() string {
	return string(kt)
}

// KoTypeValidator is a validator for the "ko_type" field enum values. It is called by the builders before save.
func KoTypeValidator(kt KoType) error {
	switch kt {
	case KoTypeEpisode, KoTypeArticle, KoTypeEmail:
		return nil
	default:
		return fmt.Errorf("kosummary: invalid enum value for ko_type field: %q", kt)
	}
}

// OrderOption defines the ordering options for the KoSummary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreateTime orders the results by the create_time field.
func ByCreateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreateTime, opts...).ToFunc()
}

// ByUpdateTime orders the results by the update_time field.
func ByUpdateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateTime, opts...).ToFunc()
}

// ByKoID orders the results by the ko_id field.
func ByKoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKoID, opts...).ToFunc()
}

// ByKoType orders the results by the ko_type field.
func ByKoType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKoType, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySummaryText orders the results by the summary_text field.
func BySummaryText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryText, opts...).ToFunc()
}

// BySummaryOneLiner orders the results by the summary_one_liner field.
func BySummaryOneLiner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryOneLiner, opts...).ToFunc()
}

// ByKnowledgeObjectField orders the results by knowledge_object field.
func ByKnowledgeObjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKnowledgeObjectStep(), sql.OrderByField(field, opts...))
	}
}
func newKnowledgeObjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KnowledgeObjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, KnowledgeObjectTable, KnowledgeObjectColumn),
	)
}
