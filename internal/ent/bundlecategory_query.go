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
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
	"github.com/google/uuid"
)

// BundleCategoryQuery is the builder for querying BundleCategory entities.
type BundleCategoryQuery struct {
	config
	ctx                  *QueryContext
	order                []bundlecategory.OrderOption
	inters               []Interceptor
	predicates           []predicate.BundleCategory
	withKnowledgeObjects *KnowledgeObjectQuery
	withBundles          *BundleQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BundleCategoryQuery builder.
func (_q *BundleCategoryQuery) Where(ps ...predicate.BundleCategory) *BundleCategoryQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BundleCategoryQuery) Limit(limit int) *BundleCategoryQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BundleCategoryQuery) Offset(offset int) *BundleCategoryQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BundleCategoryQuery) Unique(unique bool) *BundleCategoryQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BundleCategoryQuery) Order(o ...bundlecategory.OrderOption) *BundleCategoryQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryKnowledgeObjects chains the current query on the "knowledge_objects" edge.
func (_q *BundleCategoryQuery) QueryKnowledgeObjects() *KnowledgeObjectQuery {
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
			sqlgraph.From(bundlecategory.Table, bundlecategory.FieldID, selector),
			sqlgraph.To(knowledgeobject.Table, knowledgeobject.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, bundlecategory.KnowledgeObjectsTable, bundlecategory.KnowledgeObjectsPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBundles chains the current query on the "bundles" edge.
func (_q *BundleCategoryQuery) QueryBundles() *BundleQuery {
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
			sqlgraph.From(bundlecategory.Table, bundlecategory.FieldID, selector),
			sqlgraph.To(bundle.Table, bundle.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, bundlecategory.BundlesTable, bundlecategory.BundlesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first BundleCategory entity from the query.
// Returns a *NotFoundError when no BundleCategory was found.
func (_q *BundleCategoryQuery) First(ctx context.Context) (*BundleCategory, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{bundlecategory.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BundleCategoryQuery) FirstX(ctx context.Context) *BundleCategory {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BundleCategory ID from the query.
// Returns a *NotFoundError when no BundleCategory ID was found.
func (_q *BundleCategoryQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{bundlecategory.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BundleCategoryQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BundleCategory entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BundleCategory entity is found.
// Returns a *NotFoundError when no BundleCategory entities are found.
func (_q *BundleCategoryQuery) Only(ctx context.Context) (*BundleCategory, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{bundlecategory.Label}
	default:
		return nil, &NotSingularError{bundlecategory.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BundleCategoryQuery) OnlyX(ctx context.Context) *BundleCategory {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BundleCategory ID in the query.
// Returns a *NotSingularError when more than one BundleCategory ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BundleCategoryQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{bundlecategory.Label}
	default:
		err = &NotSingularError{bundlecategory.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BundleCategoryQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BundleCategories.
func (_q *BundleCategoryQuery) All(ctx context.Context) ([]*BundleCategory, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BundleCategory, *BundleCategoryQuery]()
	return withInterceptors[[]*BundleCategory](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BundleCategoryQuery) AllX(ctx context.Context) []*BundleCategory {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BundleCategory IDs.
func (_q *BundleCategoryQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(bundlecategory.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BundleCategoryQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BundleCategoryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BundleCategoryQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BundleCategoryQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BundleCategoryQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *BundleCategoryQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BundleCategoryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BundleCategoryQuery) Clone() *BundleCategoryQuery {
	if _q == nil {
		return nil
	}
	return &BundleCategoryQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]bundlecategory.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.BundleCategory{}, _q.predicates...),
		withKnowledgeObjects: _q.withKnowledgeObjects.Clone(),
		withBundles:          _q.withBundles.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithKnowledgeObjects tells the query-builder to eager-load the nodes that are connected to
// the "knowledge_objects" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BundleCategoryQuery) WithKnowledgeObjects(opts ...func(*KnowledgeObjectQuery)) *BundleCategoryQuery {
	query := (&KnowledgeObjectClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withKnowledgeObjects = query
	return _q
}

// WithBundles tells the query-builder to eager-load the nodes that are connected to
// the "bundles" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BundleCategoryQuery) WithBundles(opts ...func(*BundleQuery)) *BundleCategoryQuery {
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
//	client.BundleCategory.Query().
//		GroupBy(bundlecategory.FieldCreateTime).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BundleCategoryQuery) GroupBy(field string, fields ...string) *BundleCategoryGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BundleCategoryGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = bundlecategory.Label
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
//	client.BundleCategory.Query().
//		Select(bundlecategory.FieldCreateTime).
//		Scan(ctx, &v)
func (_q *BundleCategoryQuery) Select(fields ...string) *BundleCategorySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BundleCategorySelect{BundleCategoryQuery: _q}
	sbuild.label = bundlecategory.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BundleCategorySelect configured with the given aggregations.
func (_q *BundleCategoryQuery) Aggregate(fns ...AggregateFunc) *BundleCategorySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BundleCategoryQuery) prepareQuery(ctx context.Context) error {
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
		if !bundlecategory.ValidColumn(f) {
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

func (_q *BundleCategoryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BundleCategory, error) {
	var (
		nodes       = []*BundleCategory{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withKnowledgeObjects != nil,
			_q.withBundles != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BundleCategory).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BundleCategory{config: _q.config}
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
	if query := _q.withKnowledgeObjects; query != nil {
		if err := _q.loadKnowledgeObjects(ctx, query, nodes,
			func(n *BundleCategory) { n.Edges.KnowledgeObjects = []*KnowledgeObject{} },
			func(n *BundleCategory, e *KnowledgeObject) {
				n.Edges.KnowledgeObjects = append(n.Edges.KnowledgeObjects, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withBundles; query != nil {
		if err := _q.loadBundles(ctx, query, nodes,
			func(n *BundleCategory) { n.Edges.Bundles = []*Bundle{} },
			func(n *BundleCategory, e *Bundle) { n.Edges.Bundles = append(n.Edges.Bundles, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BundleCategoryQuery) loadKnowledgeObjects(ctx context.Context, query *KnowledgeObjectQuery, nodes []*BundleCategory, init func(*BundleCategory), assign func(*BundleCategory, *KnowledgeObject)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[uuid.UUID]*BundleCategory)
	nids := make(map[uuid.UUID]map[*BundleCategory]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(bundlecategory.KnowledgeObjectsTable)
		s.Join(joinT).On(s.C(knowledgeobject.FieldID), joinT.C(bundlecategory.KnowledgeObjectsPrimaryKey[0]))
		s.Where(sql.InValues(joinT.C(bundlecategory.KnowledgeObjectsPrimaryKey[1]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(bundlecategory.KnowledgeObjectsPrimaryKey[1]))
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
					nids[inValue] = map[*BundleCategory]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*KnowledgeObject](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "knowledge_objects" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}
func (_q *BundleCategoryQuery) loadBundles(ctx context.Context, query *BundleQuery, nodes []*BundleCategory, init func(*BundleCategory), assign func(*BundleCategory, *Bundle)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*BundleCategory)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(bundle.FieldBundleCategoryID)
	}
	query.Where(predicate.Bundle(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(bundlecategory.BundlesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.BundleCategoryID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "bundle_category_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *BundleCategoryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BundleCategoryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(bundlecategory.Table, bundlecategory.Columns, sqlgraph.NewFieldSpec(bundlecategory.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bundlecategory.FieldID)
		for i := range fields {
			if fields[i] != bundlecategory.FieldID {
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

func (_q *BundleCategoryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(bundlecategory.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = bundlecategory.Columns
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

// BundleCategoryGroupBy is the group-by builder for BundleCategory entities.
type BundleCategoryGroupBy struct {
	selector
	build *BundleCategoryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BundleCategoryGroupBy) Aggregate(fns ...AggregateFunc) *BundleCategoryGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BundleCategoryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BundleCategoryQuery, *BundleCategoryGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BundleCategoryGroupBy) sqlScan(ctx context.Context, root *BundleCategoryQuery, v any) error {
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

// BundleCategorySelect is the builder for selecting fields of BundleCategory entities.
type BundleCategorySelect struct {
	*BundleCategoryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BundleCategorySelect) Aggregate(fns ...AggregateFunc) *BundleCategorySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BundleCategorySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BundleCategoryQuery, *BundleCategorySelect](ctx, _s.BundleCategoryQuery, _s, _s.inters, v)
}

func (_s *BundleCategorySelect) sqlScan(ctx context.Context, root *BundleCategoryQuery, v any) error {
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
