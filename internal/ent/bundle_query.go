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

// BundleQuery is the builder for querying Bundle entities.
type BundleQuery struct {
	config
	ctx                  *QueryContext
	order                []bundle.OrderOption
	inters               []Interceptor
	predicates           []predicate.Bundle
	withBundleCategory   *BundleCategoryQuery
	withKnowledgeObjects *KnowledgeObjectQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BundleQuery builder.
func (_q *BundleQuery) Where(ps ...predicate.Bundle) *BundleQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BundleQuery) Limit(limit int) *BundleQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BundleQuery) Offset(offset int) *BundleQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BundleQuery) Unique(unique bool) *BundleQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BundleQuery) Order(o ...bundle.OrderOption) *BundleQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryBundleCategory chains the current query on the "bundle_category" edge.
func (_q *BundleQuery) QueryBundleCategory() *BundleCategoryQuery {
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
			sqlgraph.From(bundle.Table, bundle.FieldID, selector),
			sqlgraph.To(bundlecategory.Table, bundlecategory.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, bundle.BundleCategoryTable, bundle.BundleCategoryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryKnowledgeObjects chains the current query on the "knowledge_objects" edge.
func (_q *BundleQuery) QueryKnowledgeObjects() *KnowledgeObjectQuery {
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
			sqlgraph.From(bundle.Table, bundle.FieldID, selector),
			sqlgraph.To(knowledgeobject.Table, knowledgeobject.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, bundle.KnowledgeObjectsTable, bundle.KnowledgeObjectsPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Bundle entity from the query.
// Returns a *NotFoundError when no Bundle was found.
func (_q *BundleQuery) First(ctx context.Context) (*Bundle, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{bundle.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BundleQuery) FirstX(ctx context.Context) *Bundle {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Bundle ID from the query.
// Returns a *NotFoundError when no Bundle ID was found.
func (_q *BundleQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{bundle.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BundleQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Bundle entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Bundle entity is found.
// Returns a *NotFoundError when no Bundle entities are found.
func (_q *BundleQuery) Only(ctx context.Context) (*Bundle, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{bundle.Label}
	default:
		return nil, &NotSingularError{bundle.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BundleQuery) OnlyX(ctx context.Context) *Bundle {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Bundle ID in the query.
// Returns a *NotSingularError when more than one Bundle ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BundleQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{bundle.Label}
	default:
		err = &NotSingularError{bundle.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BundleQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Bundles.
func (_q *BundleQuery) All(ctx context.Context) ([]*Bundle, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Bundle, *BundleQuery]()
	return withInterceptors[[]*Bundle](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BundleQuery) AllX(ctx context.Context) []*Bundle {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Bundle IDs.
func (_q *BundleQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(bundle.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BundleQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BundleQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BundleQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BundleQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BundleQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *BundleQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BundleQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BundleQuery) Clone() *BundleQuery {
	if _q == nil {
		return nil
	}
	return &BundleQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]bundle.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.Bundle{}, _q.predicates...),
		withBundleCategory:   _q.withBundleCategory.Clone(),
		withKnowledgeObjects: _q.withKnowledgeObjects.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithBundleCategory tells the query-builder to eager-load the nodes that are connected to
// the "bundle_category" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BundleQuery) WithBundleCategory(opts ...func(*BundleCategoryQuery)) *BundleQuery {
	query := (&BundleCategoryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBundleCategory = query
	return _q
}

// WithKnowledgeObjects tells the query-builder to eager-load the nodes that are connected to
// the "knowledge_objects" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BundleQuery) WithKnowledgeObjects(opts ...func(*KnowledgeObjectQuery)) *BundleQuery {
	query := (&KnowledgeObjectClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withKnowledgeObjects = query
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
//	client.Bundle.Query().
//		GroupBy(bundle.FieldCreateTime).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *BundleQuery) GroupBy(field string, fields ...string) *BundleGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BundleGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = bundle.Label
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
//	client.Bundle.Query().
//		Select(bundle.FieldCreateTime).
//		Scan(ctx, &v)
func (_q *BundleQuery) Select(fields ...string) *BundleSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BundleSelect{BundleQuery: _q}
	sbuild.label = bundle.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BundleSelect configured with the given aggregations.
func (_q *BundleQuery) Aggregate(fns ...AggregateFunc) *BundleSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BundleQuery) prepareQuery(ctx context.Context) error {
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
		if !bundle.ValidColumn(f) {
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

func (_q *BundleQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Bundle, error) {
	var (
		nodes       = []*Bundle{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withBundleCategory != nil,
			_q.withKnowledgeObjects != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Bundle).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Bundle{config: _q.config}
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
	if query := _q.withBundleCategory; query != nil {
		if err := _q.loadBundleCategory(ctx, query, nodes, nil,
			func(n *Bundle, e *BundleCategory) { n.Edges.BundleCategory = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withKnowledgeObjects; query != nil {
		if err := _q.loadKnowledgeObjects(ctx, query, nodes,
			func(n *Bundle) { n.Edges.KnowledgeObjects = []*KnowledgeObject{} },
			func(n *Bundle, e *KnowledgeObject) { n.Edges.KnowledgeObjects = append(n.Edges.KnowledgeObjects, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BundleQuery) loadBundleCategory(ctx context.Context, query *BundleCategoryQuery, nodes []*Bundle, init func(*Bundle), assign func(*Bundle, *BundleCategory)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Bundle)
	for i := range nodes {
		fk := nodes[i].BundleCategoryID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(bundlecategory.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "bundle_category_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *BundleQuery) loadKnowledgeObjects(ctx context.Context, query *KnowledgeObjectQuery, nodes []*Bundle, init func(*Bundle), assign func(*Bundle, *KnowledgeObject)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[uuid.UUID]*Bundle)
	nids := make(map[uuid.UUID]map[*Bundle]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(bundle.KnowledgeObjectsTable)
		s.Join(joinT).On(s.C(knowledgeobject.FieldID), joinT.C(bundle.KnowledgeObjectsPrimaryKey[1]))
		s.Where(sql.InValues(joinT.C(bundle.KnowledgeObjectsPrimaryKey[0]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(bundle.KnowledgeObjectsPrimaryKey[0]))
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
					nids[inValue] = map[*Bundle]struct{}{byID[outValue]: {}}
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

func (_q *BundleQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BundleQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(bundle.Table, bundle.Columns, sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bundle.FieldID)
		for i := range fields {
			if fields[i] != bundle.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withBundleCategory != nil {
			_spec.Node.AddColumnOnce(bundle.FieldBundleCategoryID)
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

func (_q *BundleQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(bundle.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = bundle.Columns
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

// BundleGroupBy is the group-by builder for Bundle entities.
type BundleGroupBy struct {
	selector
	build *BundleQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BundleGroupBy) Aggregate(fns ...AggregateFunc) *BundleGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BundleGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BundleQuery, *BundleGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BundleGroupBy) sqlScan(ctx context.Context, root *BundleQuery, v any) error {
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

// BundleSelect is the builder for selecting fields of Bundle entities.
type BundleSelect struct {
	*BundleQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BundleSelect) Aggregate(fns ...AggregateFunc) *BundleSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BundleSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BundleQuery, *BundleSelect](ctx, _s.BundleQuery, _s, _s.inters, v)
}

func (_s *BundleSelect) sqlScan(ctx context.Context, root *BundleQuery, v any) error {
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
