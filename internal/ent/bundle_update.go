// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundle"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundlecategory"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
	"github.com/google/uuid"
)

// BundleUpdate is the builder for updating Bundle entities.
type BundleUpdate struct {
	config
	hooks    []Hook
	mutation *BundleMutation
}

// Where appends a list predicates to the BundleUpdate builder.
func (_u *BundleUpdate) Where(ps ...predicate.Bundle) *BundleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *BundleUpdate) SetUpdateTime(v time.Time) *BundleUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetSummaryJSON sets the "summary_json" field.
func (_u *BundleUpdate) SetSummaryJSON(v json.RawMessage) *BundleUpdate {
	_u.mutation.SetSummaryJSON(v)
	return _u
}

// AppendSummaryJSON appends value to the "summary_json" field.
func (_u *BundleUpdate) AppendSummaryJSON(v json.RawMessage) *BundleUpdate {
	_u.mutation.AppendSummaryJSON(v)
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *BundleUpdate) SetTimezone(v string) *BundleUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *BundleUpdate) SetNillableTimezone(v *string) *BundleUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetBundleCategoryID sets the "bundle_category_id" field.
func (_u *BundleUpdate) SetBundleCategoryID(v uuid.UUID) *BundleUpdate {
	_u.mutation.SetBundleCategoryID(v)
	return _u
}

// SetNillableBundleCategoryID sets the "bundle_category_id" field if the given value is not nil.
func (_u *BundleUpdate) SetNillableBundleCategoryID(v *uuid.UUID) *BundleUpdate {
	if v != nil {
		_u.SetBundleCategoryID(*v)
	}
	return _u
}

// SetBundleCategory sets the "bundle_category" edge to the BundleCategory entity.
func (_u *BundleUpdate) SetBundleCategory(v *BundleCategory) *BundleUpdate {
	return _u.SetBundleCategoryID(v.ID)
}

// AddKnowledgeObjectIDs adds the "knowledge_objects" edge to the KnowledgeObject entity by IDs.
func (_u *BundleUpdate) AddKnowledgeObjectIDs(ids ...uuid.UUID) *BundleUpdate {
	_u.mutation.AddKnowledgeObjectIDs(ids...)
	return _u
}

// AddKnowledgeObjects adds the "knowledge_objects" edges to the KnowledgeObject entity.
func (_u *BundleUpdate) AddKnowledgeObjects(v ...*KnowledgeObject) *BundleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeObjectIDs(ids...)
}

// Mutation returns the BundleMutation object of the builder.
func (_u *BundleUpdate) Mutation() *BundleMutation {
	return _u.mutation
}

// ClearBundleCategory clears the "bundle_category" edge to the BundleCategory entity.
func (_u *BundleUpdate) ClearBundleCategory() *BundleUpdate {
	_u.mutation.ClearBundleCategory()
	return _u
}

// ClearKnowledgeObjects clears all "knowledge_objects" edges to the KnowledgeObject entity.
func (_u *BundleUpdate) ClearKnowledgeObjects() *BundleUpdate {
	_u.mutation.ClearKnowledgeObjects()
	return _u
}

// RemoveKnowledgeObjectIDs removes the "knowledge_objects" edge to KnowledgeObject entities by IDs.
func (_u *BundleUpdate) RemoveKnowledgeObjectIDs(ids ...uuid.UUID) *BundleUpdate {
	_u.mutation.RemoveKnowledgeObjectIDs(ids...)
	return _u
}

// RemoveKnowledgeObjects removes "knowledge_objects" edges to KnowledgeObject entities.
func (_u *BundleUpdate) RemoveKnowledgeObjects(v ...*KnowledgeObject) *BundleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeObjectIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BundleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BundleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BundleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BundleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BundleUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := bundle.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BundleUpdate) check() error {
	if _u.mutation.BundleCategoryCleared() && len(_u.mutation.BundleCategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bundle.bundle_category"`)
	}
	return nil
}

func (_u *BundleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bundle.Table, bundle.Columns, sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(bundle.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SummaryJSON(); ok {
		_spec.SetField(bundle.FieldSummaryJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSummaryJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bundle.FieldSummaryJSON, value)
		})
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(bundle.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.BundleCategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   bundle.BundleCategoryTable,
			Columns: []string{bundle.BundleCategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundlecategory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BundleCategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   bundle.BundleCategoryTable,
			Columns: []string{bundle.BundleCategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundlecategory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeObjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   bundle.KnowledgeObjectsTable,
			Columns: bundle.KnowledgeObjectsPrimaryKey,
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
			Inverse: false,
			Table:   bundle.KnowledgeObjectsTable,
			Columns: bundle.KnowledgeObjectsPrimaryKey,
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
			Inverse: false,
			Table:   bundle.KnowledgeObjectsTable,
			Columns: bundle.KnowledgeObjectsPrimaryKey,
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bundle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BundleUpdateOne is the builder for updating a single Bundle entity.
type BundleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BundleMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *BundleUpdateOne) SetUpdateTime(v time.Time) *BundleUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetSummaryJSON sets the "summary_json" field.
func (_u *BundleUpdateOne) SetSummaryJSON(v json.RawMessage) *BundleUpdateOne {
	_u.mutation.SetSummaryJSON(v)
	return _u
}

// AppendSummaryJSON appends value to the "summary_json" field.
func (_u *BundleUpdateOne) AppendSummaryJSON(v json.RawMessage) *BundleUpdateOne {
	_u.mutation.AppendSummaryJSON(v)
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *BundleUpdateOne) SetTimezone(v string) *BundleUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *BundleUpdateOne) SetNillableTimezone(v *string) *BundleUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetBundleCategoryID sets the "bundle_category_id" field.
func (_u *BundleUpdateOne) SetBundleCategoryID(v uuid.UUID) *BundleUpdateOne {
	_u.mutation.SetBundleCategoryID(v)
	return _u
}

// SetNillableBundleCategoryID sets the "bundle_category_id" field if the given value is not nil.
func (_u *BundleUpdateOne) SetNillableBundleCategoryID(v *uuid.UUID) *BundleUpdateOne {
	if v != nil {
		_u.SetBundleCategoryID(*v)
	}
	return _u
}

// SetBundleCategory sets the "bundle_category" edge to the BundleCategory entity.
func (_u *BundleUpdateOne) SetBundleCategory(v *BundleCategory) *BundleUpdateOne {
	return _u.SetBundleCategoryID(v.ID)
}

// AddKnowledgeObjectIDs adds the "knowledge_objects" edge to the KnowledgeObject entity by IDs.
func (_u *BundleUpdateOne) AddKnowledgeObjectIDs(ids ...uuid.UUID) *BundleUpdateOne {
	_u.mutation.AddKnowledgeObjectIDs(ids...)
	return _u
}

// AddKnowledgeObjects adds the "knowledge_objects" edges to the KnowledgeObject entity.
func (_u *BundleUpdateOne) AddKnowledgeObjects(v ...*KnowledgeObject) *BundleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeObjectIDs(ids...)
}

// Mutation returns the BundleMutation object of the builder.
func (_u *BundleUpdateOne) Mutation() *BundleMutation {
	return _u.mutation
}

// ClearBundleCategory clears the "bundle_category" edge to the BundleCategory entity.
func (_u *BundleUpdateOne) ClearBundleCategory() *BundleUpdateOne {
	_u.mutation.ClearBundleCategory()
	return _u
}

// ClearKnowledgeObjects clears all "knowledge_objects" edges to the KnowledgeObject entity.
func (_u *BundleUpdateOne) ClearKnowledgeObjects() *BundleUpdateOne {
	_u.mutation.ClearKnowledgeObjects()
	return _u
}

// RemoveKnowledgeObjectIDs removes the "knowledge_objects" edge to KnowledgeObject entities by IDs.
func (_u *BundleUpdateOne) RemoveKnowledgeObjectIDs(ids ...uuid.UUID) *BundleUpdateOne {
	_u.mutation.RemoveKnowledgeObjectIDs(ids...)
	return _u
}

// RemoveKnowledgeObjects removes "knowledge_objects" edges to KnowledgeObject entities.
func (_u *BundleUpdateOne) RemoveKnowledgeObjects(v ...*KnowledgeObject) *BundleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeObjectIDs(ids...)
}

// Where appends a list predicates to the BundleUpdate builder.
func (_u *BundleUpdateOne) Where(ps ...predicate.Bundle) *BundleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BundleUpdateOne) Select(field string, fields ...string) *BundleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bundle entity.
func (_u *BundleUpdateOne) Save(ctx context.Context) (*Bundle, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BundleUpdateOne) SaveX(ctx context.Context) *Bundle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BundleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BundleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BundleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := bundle.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BundleUpdateOne) check() error {
	if _u.mutation.BundleCategoryCleared() && len(_u.mutation.BundleCategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bundle.bundle_category"`)
	}
	return nil
}

func (_u *BundleUpdateOne) sqlSave(ctx context.Context) (_node *Bundle, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bundle.Table, bundle.Columns, sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bundle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bundle.FieldID)
		for _, f := range fields {
			if !bundle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bundle.FieldID {
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
		_spec.SetField(bundle.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SummaryJSON(); ok {
		_spec.SetField(bundle.FieldSummaryJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSummaryJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bundle.FieldSummaryJSON, value)
		})
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(bundle.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.BundleCategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   bundle.BundleCategoryTable,
			Columns: []string{bundle.BundleCategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundlecategory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BundleCategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   bundle.BundleCategoryTable,
			Columns: []string{bundle.BundleCategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundlecategory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeObjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   bundle.KnowledgeObjectsTable,
			Columns: bundle.KnowledgeObjectsPrimaryKey,
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
			Inverse: false,
			Table:   bundle.KnowledgeObjectsTable,
			Columns: bundle.KnowledgeObjectsPrimaryKey,
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
			Inverse: false,
			Table:   bundle.KnowledgeObjectsTable,
			Columns: bundle.KnowledgeObjectsPrimaryKey,
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
	_node = &Bundle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bundle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
