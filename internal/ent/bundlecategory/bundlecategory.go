// Code generated by ent, DO NOT EDIT.

package bundlecategory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the bundlecategory type in the database.
	Label = "bundle_category"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreateTime holds the string denoting the create_time field in the database.
	FieldCreateTime = "create_time"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSummaryRequired holds the string denoting the summary_required field in the database.
	FieldSummaryRequired = "summary_required"
	// EdgeKnowledgeObjects holds the string denoting the knowledge_objects edge name in mutations.
	EdgeKnowledgeObjects = "knowledge_objects"
	// EdgeBundles holds the string denoting the bundles edge name in mutations.
	EdgeBundles = "bundles"
	// Table holds the table name of the bundlecategory in the database.
	Table = "bundle_categories"
	// KnowledgeObjectsTable is the table that holds the knowledge_objects relation/edge. The primary key declared below.
	KnowledgeObjectsTable = "knowledge_object_bundle_categories"
	// KnowledgeObjectsInverseTable is the table name for the KnowledgeObject entity.
	// It exists in this package in order to avoid circular dependency with the "knowledgeobject" package.
	KnowledgeObjectsInverseTable = "knowledge_objects"
	// BundlesTable is the table that holds the bundles relation/edge.
	BundlesTable = "bundles"
	// BundlesInverseTable is the table name for the Bundle entity.
	// It exists in this package in order to avoid circular dependency with the "bundle" package.
	BundlesInverseTable = "bundles"
	// BundlesColumn is the table column denoting the bundles relation/edge.
	BundlesColumn = "bundle_category_id"
)

// Columns holds all SQL columns for bundlecategory fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldName,
	FieldSummaryRequired,
}

var (
	// KnowledgeObjectsPrimaryKey and KnowledgeObjectsColumn2 are the table columns denoting the
	// primary key for the knowledge_objects relation (M2M).
	KnowledgeObjectsPrimaryKey = []string{"knowledge_object_id", "bundle_category_id"}
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
	// DefaultSummaryRequired holds the default value on creation for the "summary_required" field.
	DefaultSummaryRequired bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BundleCategory queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySummaryRequired orders the results by the summary_required field.
func BySummaryRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryRequired, opts...).ToFunc()
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

// ByBundlesCount orders the results by bundles count.
func ByBundlesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBundlesStep(), opts...)
	}
}

// ByBundles orders the results by bundles terms.
func ByBundles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBundlesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newKnowledgeObjectsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KnowledgeObjectsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, KnowledgeObjectsTable, KnowledgeObjectsPrimaryKey...),
	)
}
func newBundlesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BundlesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, true, BundlesTable, BundlesColumn),
	)
}
