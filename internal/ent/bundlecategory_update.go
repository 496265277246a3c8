// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundle"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundlecategory"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
	"github.com/google/uuid"
)

// BundleCategoryUpdate is the builder for updating BundleCategory entities.
type BundleCategoryUpdate struct {
	config
	hooks    []Hook
	mutation *BundleCategoryMutation
}

// Where appends a list predicates to the BundleCategoryUpdate builder.
func (_u *BundleCategoryUpdate) Where(ps ...predicate.BundleCategory) *BundleCategoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *BundleCategoryUpdate) SetUpdateTime(v time.Time) *BundleCategoryUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetName sets the "name" field.
func (_u *BundleCategoryUpdate) SetName(v string) *BundleCategoryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BundleCategoryUpdate) SetNillableName(v *string) *BundleCategoryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSummaryRequired sets the "summary_required" field.
func (_u *BundleCategoryUpdate) SetSummaryRequired(v bool) *BundleCategoryUpdate {
	_u.mutation.SetSummaryRequired(v)
	return _u
}

// SetNillableSummaryRequired sets the "summary_required" field if the given value is not nil.
func (_u *BundleCategoryUpdate) SetNillableSummaryRequired(v *bool) *BundleCategoryUpdate {
	if v != nil {
		_u.SetSummaryRequired(*v)
	}
	return _u
}

// AddKnowledgeObjectIDs adds the "knowledge_objects" edge to the KnowledgeObject entity by IDs.
func (_u *BundleCategoryUpdate) AddKnowledgeObjectIDs(ids ...uuid.UUID) *BundleCategoryUpdate {
	_u.mutation.AddKnowledgeObjectIDs(ids...)
	return _u
}

// AddKnowledgeObjects adds the "knowledge_objects" edges to the KnowledgeObject entity.
func (_u *BundleCategoryUpdate) AddKnowledgeObjects(v ...*KnowledgeObject) *BundleCategoryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeObjectIDs(ids...)
}

// AddBundleIDs adds the "bundles" edge to the Bundle entity by IDs.
func (_u *BundleCategoryUpdate) AddBundleIDs(ids ...uuid.UUID) *BundleCategoryUpdate {
	_u.mutation.AddBundleIDs(ids...)
	return _u
}

// AddBundles adds the "bundles" edges to the Bundle entity.
func (_u *BundleCategoryUpdate) AddBundles(v ...*Bundle) *BundleCategoryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBundleIDs(ids...)
}

// Mutation returns the BundleCategoryMutation object of the builder.
func (_u *BundleCategoryUpdate) Mutation() *BundleCategoryMutation {
	return _u.mutation
}

// ClearKnowledgeObjects clears all "knowledge_objects" edges to the KnowledgeObject entity.
func (_u *BundleCategoryUpdate) ClearKnowledgeObjects() *BundleCategoryUpdate {
	_u.mutation.ClearKnowledgeObjects()
	return _u
}

// RemoveKnowledgeObjectIDs removes the "knowledge_objects" edge to KnowledgeObject entities by IDs.
func (_u *BundleCategoryUpdate) RemoveKnowledgeObjectIDs(ids ...uuid.UUID) *BundleCategoryUpdate {
	_u.mutation.RemoveKnowledgeObjectIDs(ids...)
	return _u
}

// RemoveKnowledgeObjects removes "knowledge_objects" edges to KnowledgeObject entities.
func (_u *BundleCategoryUpdate) RemoveKnowledgeObjects(v ...*KnowledgeObject) *BundleCategoryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeObjectIDs(ids...)
}

// ClearBundles clears all "bundles" edges to the Bundle entity.
func (_u *BundleCategoryUpdate) ClearBundles() *BundleCategoryUpdate {
	_u.mutation.ClearBundles()
	return _u
}

// RemoveBundleIDs removes the "bundles" edge to Bundle entities by IDs.
func (_u *BundleCategoryUpdate) RemoveBundleIDs(ids ...uuid.UUID) *BundleCategoryUpdate {
	_u.mutation.RemoveBundleIDs(ids...)
	return _u
}

// RemoveBundles removes "bundles" edges to Bundle entities.
func (_u *BundleCategoryUpdate) RemoveBundles(v ...*Bundle) *BundleCategoryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBundleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BundleCategoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BundleCategoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BundleCategoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BundleCategoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BundleCategoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := bundlecategory.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

func (_u *BundleCategoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(bundlecategory.Table, bundlecategory.Columns, sqlgraph.NewFieldSpec(bundlecategory.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(bundlecategory.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(bundlecategory.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SummaryRequired(); ok {
		_spec.SetField(bundlecategory.FieldSummaryRequired, field.TypeBool, value)
	}
	if _u.mutation.KnowledgeObjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   bundlecategory.KnowledgeObjectsTable,
			Columns: bundlecategory.KnowledgeObjectsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeObjectsIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeObjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   bundlecategory.KnowledgeObjectsTable,
			Columns: bundlecategory.KnowledgeObjectsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeObjectsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   bundlecategory.KnowledgeObjectsTable,
			Columns: bundlecategory.KnowledgeObjectsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BundlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   bundlecategory.BundlesTable,
			Columns: []string{bundlecategory.BundlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBundlesIDs(); len(nodes) > 0 && !_u.mutation.BundlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   bundlecategory.BundlesTable,
			Columns: []string{bundlecategory.BundlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BundlesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   bundlecategory.BundlesTable,
			Columns: []string{bundlecategory.BundlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bundlecategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BundleCategoryUpdateOne is the builder for updating a single BundleCategory entity.
type BundleCategoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BundleCategoryMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *BundleCategoryUpdateOne) SetUpdateTime(v time.Time) *BundleCategoryUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetName sets the "name" field.
func (_u *BundleCategoryUpdateOne) SetName(v string) *BundleCategoryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BundleCategoryUpdateOne) SetNillableName(v *string) *BundleCategoryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSummaryRequired sets the "summary_required" field.
func (_u *BundleCategoryUpdateOne) SetSummaryRequired(v bool) *BundleCategoryUpdateOne {
	_u.mutation.SetSummaryRequired(v)
	return _u
}

// SetNillableSummaryRequired sets the "summary_required" field if the given value is not nil.
func (_u *BundleCategoryUpdateOne) SetNillableSummaryRequired(v *bool) *BundleCategoryUpdateOne {
	if v != nil {
		_u.SetSummaryRequired(*v)
	}
	return _u
}

// AddKnowledgeObjectIDs adds the "knowledge_objects" edge to the KnowledgeObject entity by IDs.
func (_u *BundleCategoryUpdateOne) AddKnowledgeObjectIDs(ids ...uuid.UUID) *BundleCategoryUpdateOne {
	_u.mutation.AddKnowledgeObjectIDs(ids...)
	return _u
}

// AddKnowledgeObjects adds the "knowledge_objects" edges to the KnowledgeObject entity.
func (_u *BundleCategoryUpdateOne) AddKnowledgeObjects(v ...*KnowledgeObject) *BundleCategoryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeObjectIDs(ids...)
}

// AddBundleIDs adds the "bundles" edge to the Bundle entity by IDs.
func (_u *BundleCategoryUpdateOne) AddBundleIDs(ids ...uuid.UUID) *BundleCategoryUpdateOne {
	_u.mutation.AddBundleIDs(ids...)
	return _u
}

// AddBundles adds the "bundles" edges to the Bundle entity.
func (_u *BundleCategoryUpdateOne) AddBundles(v ...*Bundle) *BundleCategoryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBundleIDs(ids...)
}

// Mutation returns the BundleCategoryMutation object of the builder.
func (_u *BundleCategoryUpdateOne) Mutation() *BundleCategoryMutation {
	return _u.mutation
}

// ClearKnowledgeObjects clears all "knowledge_objects" edges to the KnowledgeObject entity.
func (_u *BundleCategoryUpdateOne) ClearKnowledgeObjects() *BundleCategoryUpdateOne {
	_u.mutation.ClearKnowledgeObjects()
	return _u
}

// RemoveKnowledgeObjectIDs removes the "knowledge_objects" edge to KnowledgeObject entities by IDs.
func (_u *BundleCategoryUpdateOne) RemoveKnowledgeObjectIDs(ids ...uuid.UUID) *BundleCategoryUpdateOne {
	_u.mutation.RemoveKnowledgeObjectIDs(ids...)
	return _u
}

// RemoveKnowledgeObjects removes "knowledge_objects" edges to KnowledgeObject entities.
func (_u *BundleCategoryUpdateOne) RemoveKnowledgeObjects(v ...*KnowledgeObject) *BundleCategoryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeObjectIDs(ids...)
}

// ClearBundles clears all "bundles" edges to the Bundle entity.
func (_u *BundleCategoryUpdateOne) ClearBundles() *BundleCategoryUpdateOne {
	_u.mutation.ClearBundles()
	return _u
}

// RemoveBundleIDs removes the "bundles" edge to Bundle entities by IDs.
func (_u *BundleCategoryUpdateOne) RemoveBundleIDs(ids ...uuid.UUID) *BundleCategoryUpdateOne {
	_u.mutation.RemoveBundleIDs(ids...)
	return _u
}

// RemoveBundles removes "bundles" edges to Bundle entities.
func (_u *BundleCategoryUpdateOne) RemoveBundles(v ...*Bundle) *BundleCategoryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBundleIDs(ids...)
}

// Where appends a list predicates to the BundleCategoryUpdate builder.
func (_u *BundleCategoryUpdateOne) Where(ps ...predicate.BundleCategory) *BundleCategoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BundleCategoryUpdateOne) Select(field string, fields ...string) *BundleCategoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BundleCategory entity.
func (_u *BundleCategoryUpdateOne) Save(ctx context.Context) (*BundleCategory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BundleCategoryUpdateOne) SaveX(ctx context.Context) *BundleCategory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BundleCategoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BundleCategoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BundleCategoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := bundlecategory.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

func (_u *BundleCategoryUpdateOne) sqlSave(ctx context.Context) (_node *BundleCategory, err error) {
	_spec := sqlgraph.NewUpdateSpec(bundlecategory.Table, bundlecategory.Columns, sqlgraph.NewFieldSpec(bundlecategory.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BundleCategory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bundlecategory.FieldID)
		for _, f := range fields {
			if !bundlecategory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bundlecategory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(bundlecategory.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(bundlecategory.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SummaryRequired(); ok {
		_spec.SetField(bundlecategory.FieldSummaryRequired, field.TypeBool, value)
	}
	if _u.mutation.KnowledgeObjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   bundlecategory.KnowledgeObjectsTable,
			Columns: bundlecategory.KnowledgeObjectsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeObjectsIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeObjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   bundlecategory.KnowledgeObjectsTable,
			Columns: bundlecategory.KnowledgeObjectsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeObjectsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   bundlecategory.KnowledgeObjectsTable,
			Columns: bundlecategory.KnowledgeObjectsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BundlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   bundlecategory.BundlesTable,
			Columns: []string{bundlecategory.BundlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBundlesIDs(); len(nodes) > 0 && !_u.mutation.BundlesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   bundlecategory.BundlesTable,
			Columns: []string{bundlecategory.BundlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BundlesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   bundlecategory.BundlesTable,
			Columns: []string{bundlecategory.BundlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BundleCategory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bundlecategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
