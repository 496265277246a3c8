// Code generated by ent, DO NOT EDIT.

package bundle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the bundle type in the database.
	Label = "bundle"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreateTime holds the string denoting the create_time field in the database.
	FieldCreateTime = "create_time"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// FieldSummaryJSON holds the string denoting the summary_json field in the database.
	FieldSummaryJSON = "summary_json"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldBundleCategoryID holds the string denoting the bundle_category_id field in the database.
	FieldBundleCategoryID = "bundle_category_id"
	// EdgeBundleCategory holds the string denoting the bundle_category edge name in mutations.
	EdgeBundleCategory = "bundle_category"
	// EdgeKnowledgeObjects holds the string denoting the knowledge_objects edge name in mutations.
	EdgeKnowledgeObjects = "knowledge_objects"
	// Table holds the table name of the bundle in the database.
	Table = "bundles"
	// BundleCategoryTable is the table that holds the bundle_category relation/edge.
	BundleCategoryTable = "bundles"
	// BundleCategoryInverseTable is the table name for the BundleCategory entity.
	// It exists in this package in order to avoid circular dependency with the "bundlecategory" package.
	BundleCategoryInverseTable = "bundle_categories"
	// BundleCategoryColumn is the table column denoting the bundle_category relation/edge.
	BundleCategoryColumn = "bundle_category_id"
	// KnowledgeObjectsTable is the table that holds the knowledge_objects relation/edge. The primary key declared below.
	KnowledgeObjectsTable = "bundle_knowledge_objects"
	// KnowledgeObjectsInverseTable is the table name for the KnowledgeObject entity.
	// It exists in this package in order to avoid circular dependency with the "knowledgeobject" package.
	KnowledgeObjectsInverseTable = "knowledge_objects"
)

// Columns holds all SQL columns for bundle fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldSummaryJSON,
	FieldTimezone,
	FieldBundleCategoryID,
}

var (
	// KnowledgeObjectsPrimaryKey and KnowledgeObjectsColumn2 are the table columns denoting the
	// primary key for the knowledge_objects relation (M2M).
	KnowledgeObjectsPrimaryKey = []string{"bundle_id", "knowledge_object_id"}
)

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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Bundle queries.
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

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByBundleCategoryID orders the results by the bundle_category_id field.
func ByBundleCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBundleCategoryID, opts...).ToFunc()
}

// ByBundleCategoryField orders the results by bundle_category field.
func ByBundleCategoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBundleCategoryStep(), sql.OrderByField(field, opts...))
	}
}

// ByKnowledgeObjectsCount orders the results by knowledge_objects count.
func ByKnowledgeObjectsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newKnowledgeObjectsStep(), opts...)
	}
}

// ByKnowledgeObjects orders the results by knowledge_objects terms.
func ByKnowledgeObjects(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKnowledgeObjectsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBundleCategoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BundleCategoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, BundleCategoryTable, BundleCategoryColumn),
	)
}
func newKnowledgeObjectsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KnowledgeObjectsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, KnowledgeObjectsTable, KnowledgeObjectsPrimaryKey...),
	)
}
