// Code generated by ent, DO NOT EDIT.

package knowledgeobject

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the knowledgeobject type in the database.
	Label = "knowledge_object"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreateTime holds the string denoting the create_time field in the database.
	FieldCreateTime = "create_time"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// FieldKoType holds the string denoting the ko_type field in the database.
	FieldKoType = "ko_type"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDeleted holds the string denoting the deleted field in the database.
	FieldDeleted = "deleted"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeChildren holds the string denoting the children edge name in mutations.
	EdgeChildren = "children"
	// EdgeBundleCategories holds the string denoting the bundle_categories edge name in mutations.
	EdgeBundleCategories = "bundle_categories"
	// EdgeSummary holds the string denoting the summary edge name in mutations.
	EdgeSummary = "summary"
	// EdgeBundles holds the string denoting the bundles edge name in mutations.
	EdgeBundles = "bundles"
	// Table holds the table name of the knowledgeobject in the database.
	Table = "knowledge_objects"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "knowledge_objects"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "knowledge_object_children"
	// ChildrenTable is the table that holds the children relation/edge.
	ChildrenTable = "knowledge_objects"
	// ChildrenColumn is the table column denoting the children relation/edge.
	ChildrenColumn = "knowledge_object_children"
	// BundleCategoriesTable is the table that holds the bundle_categories relation/edge. The primary key declared below.
	BundleCategoriesTable = "knowledge_object_bundle_categories"
	// BundleCategoriesInverseTable is the table name for the BundleCategory entity.
	// It exists in this package in order to avoid circular dependency with the "bundlecategory" package.
	BundleCategoriesInverseTable = "bundle_categories"
	// SummaryTable is the table that holds the summary relation/edge.
	SummaryTable = "ko_summaries"
	// SummaryInverseTable is the table name for the KoSummary entity.
	// It exists in this package in order to avoid circular dependency with the "kosummary" package.
	SummaryInverseTable = "ko_summaries"
	// SummaryColumn is the table column denoting the summary relation/edge.
	SummaryColumn = "ko_id"
	// BundlesTable is the table that holds the bundles relation/edge. The primary key declared below.
	BundlesTable = "bundle_knowledge_objects"
	// BundlesInverseTable is the table name for the Bundle entity.
	// It exists in this package in order to avoid circular dependency with the "bundle" package.
	BundlesInverseTable = "bundles"
)

// Columns holds all SQL columns for knowledgeobject fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldKoType,
	FieldTitle,
	FieldDeleted,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "knowledge_objects"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"knowledge_object_children",
}

var (
	// BundleCategoriesPrimaryKey and BundleCategoriesColumn2 are the table columns denoting the
	// primary key for the bundle_categories relation (M2M).
	BundleCategoriesPrimaryKey = []string{"knowledge_object_id", "bundle_category_id"}
	// BundlesPrimaryKey and BundlesColumn2 are the table columns denoting the
	// primary key for the bundles relation (M2M).
	BundlesPrimaryKey = []string{"bundle_id", "knowledge_object_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
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
	// DefaultDeleted holds the default value on creation for the "deleted" field.
	DefaultDeleted bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
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
		return fmt.Errorf("knowledgeobject: invalid enum value for ko_type field: %q", kt)
	}
}

// OrderOption defines the ordering options for the KnowledgeObject queries.
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

// ByKoType orders the results by the ko_type field.
func ByKoType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKoType, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDeleted orders the results by the deleted field.
func ByDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeleted, opts...).ToFunc()
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByChildrenCount orders the results by children count.
func ByChildrenCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChildrenStep(), opts...)
	}
}

// ByChildren orders the results by children terms.
func ByChildren(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChildrenStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBundleCategoriesCount orders the results by bundle_categories count.
func ByBundleCategoriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBundleCategoriesStep(), opts...)
	}
}

// ByBundleCategories orders the results by bundle_categories terms.
func ByBundleCategories(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBundleCategoriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySummaryField orders the results by summary field.
func BySummaryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSummaryStep(), sql.OrderByField(field, opts...))
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
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newChildrenStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
	)
}
func newBundleCategoriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BundleCategoriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, BundleCategoriesTable, BundleCategoriesPrimaryKey...),
	)
}
func newSummaryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SummaryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SummaryTable, SummaryColumn),
	)
}
func newBundlesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BundlesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, BundlesTable, BundlesPrimaryKey...),
	)
}
