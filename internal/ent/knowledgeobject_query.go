// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundle"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundlecategory"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/fachebot/ko-digest-bot/internal/ent/kosummary"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
	"github.com/google/uuid"
)

// KnowledgeObjectQuery is the builder for querying KnowledgeObject entities.
type KnowledgeObjectQuery struct {
	config
	ctx                  *QueryContext
	order                []knowledgeobject.OrderOption
	inters               []Interceptor
	predicates           []predicate.KnowledgeObject
	withParent           *KnowledgeObjectQuery
	withChildren         *KnowledgeObjectQuery
	withBundleCategories *BundleCategoryQuery
	withSummary          *KoSummaryQuery
	withBundles          *BundleQuery
	withFKs              bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the KnowledgeObjectQuery builder.
func (_q *KnowledgeObjectQuery) Where(ps ...predicate.KnowledgeObject) *KnowledgeObjectQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *KnowledgeObjectQuery) Limit(limit int) *KnowledgeObjectQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *KnowledgeObjectQuery) Offset(offset int) *KnowledgeObjectQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *KnowledgeObjectQuery) Unique(unique bool) *KnowledgeObjectQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *KnowledgeObjectQuery) Order(o ...knowledgeobject.OrderOption) *KnowledgeObjectQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryParent chains the current query on the "parent" edge.
func (_q *KnowledgeObjectQuery) QueryParent() *KnowledgeObjectQuery {
	query := (&KnowledgeObjectClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgeobject.Table, knowledgeobject.FieldID, selector),
			sqlgraph.To(knowledgeobject.Table, knowledgeobject.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, knowledgeobject.ParentTable, knowledgeobject.ParentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryChildren chains the current query on the "children" edge.
func (_q *KnowledgeObjectQuery) QueryChildren() *KnowledgeObjectQuery {
	query := (&KnowledgeObjectClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgeobject.Table, knowledgeobject.FieldID, selector),
			sqlgraph.To(knowledgeobject.Table, knowledgeobject.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, knowledgeobject.ChildrenTable, knowledgeobject.ChildrenColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBundleCategories chains the current query on the "bundle_categories" edge.
func (_q *KnowledgeObjectQuery) QueryBundleCategories() *BundleCategoryQuery {
	query := (&BundleCategoryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgeobject.Table, knowledgeobject.FieldID, selector),
			sqlgraph.To(bundlecategory.Table, bundlecategory.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, knowledgeobject.BundleCategoriesTable, knowledgeobject.BundleCategoriesPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySummary chains the current query on the "summary" edge.
func (_q *KnowledgeObjectQuery) QuerySummary() *KoSummaryQuery {
	query := (&KoSummaryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgeobject.Table, knowledgeobject.FieldID, selector),
			sqlgraph.To(kosummary.Table, kosummary.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, knowledgeobject.SummaryTable, knowledgeobject.SummaryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBundles chains the current query on the "bundles" edge.
func (_q *KnowledgeObjectQuery) QueryBundles() *BundleQuery {
	query := (&BundleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgeobject.Table, knowledgeobject.FieldID, selector),
			sqlgraph.To(bundle.Table, bundle.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, knowledgeobject.BundlesTable, knowledgeobject.BundlesPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first KnowledgeObject entity from the query.
// Returns a *NotFoundError when no KnowledgeObject was found.
func (_q *KnowledgeObjectQuery) First(ctx context.Context) (*KnowledgeObject, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{knowledgeobject.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *KnowledgeObjectQuery) FirstX(ctx context.Context) *KnowledgeObject {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first KnowledgeObject ID from the query.
// Returns a *NotFoundError when no KnowledgeObject ID was found.
func (_q *KnowledgeObjectQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{knowledgeobject.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *KnowledgeObjectQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single KnowledgeObject entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one KnowledgeObject entity is found.
// Returns a *NotFoundError when no KnowledgeObject entities are found.
func (_q *KnowledgeObjectQuery) Only(ctx context.Context) (*KnowledgeObject, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{knowledgeobject.Label}
	default:
		return nil, &NotSingularError{knowledgeobject.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *KnowledgeObjectQuery) OnlyX(ctx context.Context) *KnowledgeObject {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only KnowledgeObject ID in the query.
// Returns a *NotSingularError when more than one KnowledgeObject ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *KnowledgeObjectQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{knowledgeobject.Label}
	default:
		err = &NotSingularError{knowledgeobject.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *KnowledgeObjectQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of KnowledgeObjects.
func (_q *KnowledgeObjectQuery) All(ctx context.Context) ([]*KnowledgeObject, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*KnowledgeObject, *KnowledgeObjectQuery]()
	return withInterceptors[[]*KnowledgeObject](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *KnowledgeObjectQuery) AllX(ctx context.Context) []*KnowledgeObject {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of KnowledgeObject IDs.
func (_q *KnowledgeObjectQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(knowledgeobject.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *KnowledgeObjectQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *KnowledgeObjectQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*KnowledgeObjectQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *KnowledgeObjectQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *KnowledgeObjectQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *KnowledgeObjectQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the KnowledgeObjectQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *KnowledgeObjectQuery) Clone() *KnowledgeObjectQuery {
	if _q == nil {
		return nil
	}
	return &KnowledgeObjectQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]knowledgeobject.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.KnowledgeObject{}, _q.predicates...),
		withParent:           _q.withParent.Clone(),
		withChildren:         _q.withChildren.Clone(),
		withBundleCategories: _q.withBundleCategories.Clone(),
		withSummary:          _q.withSummary.Clone(),
		withBundles:          _q.withBundles.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithParent tells the query-builder to eager-load the nodes that are connected to
// the "parent" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *KnowledgeObjectQuery) WithParent(opts ...func(*KnowledgeObjectQuery)) *KnowledgeObjectQuery {
	query := (&KnowledgeObjectClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParent = query
	return _q
}

// WithChildren tells the query-builder to eager-load the nodes that are connected to
// the "children" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *KnowledgeObjectQuery) WithChildren(opts ...func(*KnowledgeObjectQuery)) *KnowledgeObjectQuery {
	query := (&KnowledgeObjectClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChildren = query
	return _q
}

// WithBundleCategories tells the query-builder to eager-load the nodes that are connected to
// the "bundle_categories" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *KnowledgeObjectQuery) WithBundleCategories(opts ...func(*BundleCategoryQuery)) *KnowledgeObjectQuery {
	query := (&BundleCategoryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBundleCategories = query
	return _q
}

// WithSummary tells the query-builder to eager-load the nodes that are connected to
// the "summary" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *KnowledgeObjectQuery) WithSummary(opts ...func(*KoSummaryQuery)) *KnowledgeObjectQuery {
	query := (&KoSummaryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSummary = query
	return _q
}

// WithBundles tells the query-builder to eager-load the nodes that are connected to
// the "bundles" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *KnowledgeObjectQuery) WithBundles(opts ...func(*BundleQuery)) *KnowledgeObjectQuery {
	query := (&BundleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBundles = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreateTime time.Time `json:"create_time,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.KnowledgeObject.Query().
//		GroupBy(knowledgeobject.FieldCreateTime).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *KnowledgeObjectQuery) GroupBy(field string, fields ...string) *KnowledgeObjectGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &KnowledgeObjectGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = knowledgeobject.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreateTime time.Time `json:"create_time,omitempty"`
//	}
//
//	client.KnowledgeObject.Query().
//		Select(knowledgeobject.FieldCreateTime).
//		Scan(ctx, &v)
func (_q *KnowledgeObjectQuery) Select(fields ...string) *KnowledgeObjectSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &KnowledgeObjectSelect{KnowledgeObjectQuery: _q}
	sbuild.label = knowledgeobject.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a KnowledgeObjectSelect configured with the given aggregations.
func (_q *KnowledgeObjectQuery) Aggregate(fns ...AggregateFunc) *KnowledgeObjectSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *KnowledgeObjectQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !knowledgeobject.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *KnowledgeObjectQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*KnowledgeObject, error) {
	var (
		nodes       = []*KnowledgeObject{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withParent != nil,
			_q.withChildren != nil,
			_q.withBundleCategories != nil,
			_q.withSummary != nil,
			_q.withBundles != nil,
		}
	)
	if _q.withParent != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgeobject.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*KnowledgeObject).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &KnowledgeObject{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withParent; query != nil {
		if err := _q.loadParent(ctx, query, nodes, nil,
			func(n *KnowledgeObject, e *KnowledgeObject) { n.Edges.Parent = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withChildren; query != nil {
		if err := _q.loadChildren(ctx, query, nodes,
			func(n *KnowledgeObject) { n.Edges.Children = []*KnowledgeObject{} },
			func(n *KnowledgeObject, e *KnowledgeObject) { n.Edges.Children = append(n.Edges.Children, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBundleCategories; query != nil {
		if err := _q.loadBundleCategories(ctx, query, nodes,
			func(n *KnowledgeObject) { n.Edges.BundleCategories = []*BundleCategory{} },
			func(n *KnowledgeObject, e *BundleCategory) {
				n.Edges.BundleCategories = append(n.Edges.BundleCategories, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withSummary; query != nil {
		if err := _q.loadSummary(ctx, query, nodes, nil,
			func(n *KnowledgeObject, e *KoSummary) { n.Edges.Summary = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBundles; query != nil {
		if err := _q.loadBundles(ctx, query, nodes,
			func(n *KnowledgeObject) { n.Edges.Bundles = []*Bundle{} },
			func(n *KnowledgeObject, e *Bundle) { n.Edges.Bundles = append(n.Edges.Bundles, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *KnowledgeObjectQuery) loadParent(ctx context.Context, query *KnowledgeObjectQuery, nodes []*KnowledgeObject, init func(*KnowledgeObject), assign func(*KnowledgeObject, *KnowledgeObject)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*KnowledgeObject)
	for i := range nodes {
		if nodes[i].knowledge_object_children == nil {
			continue
		}
		fk := *nodes[i].knowledge_object_children
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(knowledgeobject.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "knowledge_object_children" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *KnowledgeObjectQuery) loadChildren(ctx context.Context, query *KnowledgeObjectQuery, nodes []*KnowledgeObject, init func(*KnowledgeObject), assign func(*KnowledgeObject, *KnowledgeObject)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*KnowledgeObject)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.KnowledgeObject(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(knowledgeobject.ChildrenColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.knowledge_object_children
		if fk == nil {
			return fmt.Errorf(`foreign-key "knowledge_object_children" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "knowledge_object_children" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *KnowledgeObjectQuery) loadBundleCategories(ctx context.Context, query *BundleCategoryQuery, nodes []*KnowledgeObject, init func(*KnowledgeObject), assign func(*KnowledgeObject, *BundleCategory)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[uuid.UUID]*KnowledgeObject)
	nids := make(map[uuid.UUID]map[*KnowledgeObject]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(knowledgeobject.BundleCategoriesTable)
		s.Join(joinT).On(s.C(bundlecategory.FieldID), joinT.C(knowledgeobject.BundleCategoriesPrimaryKey[1]))
		s.Where(sql.InValues(joinT.C(knowledgeobject.BundleCategoriesPrimaryKey[0]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(knowledgeobject.BundleCategoriesPrimaryKey[0]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(uuid.UUID)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := *values[0].(*uuid.UUID)
				inValue := *values[1].(*uuid.UUID)
				if nids[inValue] == nil {
					nids[inValue] = map[*KnowledgeObject]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*BundleCategory](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "bundle_categories" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}
func (_q *KnowledgeObjectQuery) loadSummary(ctx context.Context, query *KoSummaryQuery, nodes []*KnowledgeObject, init func(*KnowledgeObject), assign func(*KnowledgeObject, *KoSummary)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*KnowledgeObject)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(kosummary.FieldKoID)
	}
	query.Where(predicate.KoSummary(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(knowledgeobject.SummaryColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.KoID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "ko_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *KnowledgeObjectQuery) loadBundles(ctx context.Context, query *BundleQuery, nodes []*KnowledgeObject, init func(*KnowledgeObject), assign func(*KnowledgeObject, *Bundle)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[uuid.UUID]*KnowledgeObject)
	nids := make(map[uuid.UUID]map[*KnowledgeObject]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(knowledgeobject.BundlesTable)
		s.Join(joinT).On(s.C(bundle.FieldID), joinT.C(knowledgeobject.BundlesPrimaryKey[0]))
		s.Where(sql.InValues(joinT.C(knowledgeobject.BundlesPrimaryKey[1]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(knowledgeobject.BundlesPrimaryKey[1]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(uuid.UUID)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := *values[0].(*uuid.UUID)
				inValue := *values[1].(*uuid.UUID)
				if nids[inValue] == nil {
					nids[inValue] = map[*KnowledgeObject]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*Bundle](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "bundles" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}

func (_q *KnowledgeObjectQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *KnowledgeObjectQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(knowledgeobject.Table, knowledgeobject.Columns, sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgeobject.FieldID)
		for i := range fields {
			if fields[i] != knowledgeobject.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *KnowledgeObjectQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(knowledgeobject.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = knowledgeobject.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// KnowledgeObjectGroupBy is the group-by builder for KnowledgeObject entities.
type KnowledgeObjectGroupBy struct {
	selector
	build *KnowledgeObjectQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *KnowledgeObjectGroupBy) Aggregate(fns ...AggregateFunc) *KnowledgeObjectGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *KnowledgeObjectGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*KnowledgeObjectQuery, *KnowledgeObjectGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *KnowledgeObjectGroupBy) sqlScan(ctx context.Context, root *KnowledgeObjectQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// KnowledgeObjectSelect is the builder for selecting fields of KnowledgeObject entities.
type KnowledgeObjectSelect struct {
	*KnowledgeObjectQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *KnowledgeObjectSelect) Aggregate(fns ...AggregateFunc) *KnowledgeObjectSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *KnowledgeObjectSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*KnowledgeObjectQuery, *KnowledgeObjectSelect](ctx, _s.KnowledgeObjectQuery, _s, _s.inters, v)
}

func (_s *KnowledgeObjectSelect) sqlScan(ctx context.Context, root *KnowledgeObjectQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
