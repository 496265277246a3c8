// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundle"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundlecategory"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/google/uuid"
)

// BundleCategoryCreate is the builder for creating a BundleCategory entity.
type BundleCategoryCreate struct {
	config
	mutation *BundleCategoryMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *BundleCategoryCreate) SetCreateTime(v time.Time) *BundleCategoryCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *BundleCategoryCreate) SetNillableCreateTime(v *time.Time) *BundleCategoryCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *BundleCategoryCreate) SetUpdateTime(v time.Time) *BundleCategoryCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *BundleCategoryCreate) SetNillableUpdateTime(v *time.Time) *BundleCategoryCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *BundleCategoryCreate) SetName(v string) *BundleCategoryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSummaryRequired sets the "summary_required" field.
func (_c *BundleCategoryCreate) SetSummaryRequired(v bool) *BundleCategoryCreate {
	_c.mutation.SetSummaryRequired(v)
	return _c
}

// SetNillableSummaryRequired sets the "summary_required" field if the given value is not nil.
func (_c *BundleCategoryCreate) SetNillableSummaryRequired(v *bool) *BundleCategoryCreate {
	if v != nil {
		_c.SetSummaryRequired(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BundleCategoryCreate) SetID(v uuid.UUID) *BundleCategoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BundleCategoryCreate) SetNillableID(v *uuid.UUID) *BundleCategoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddKnowledgeObjectIDs adds the "knowledge_objects" edge to the KnowledgeObject entity by IDs.
func (_c *BundleCategoryCreate) AddKnowledgeObjectIDs(ids ...uuid.UUID) *BundleCategoryCreate {
	_c.mutation.AddKnowledgeObjectIDs(ids...)
	return _c
}

// AddKnowledgeObjects adds the "knowledge_objects" edges to the KnowledgeObject entity.
func (_c *BundleCategoryCreate) AddKnowledgeObjects(v ...*KnowledgeObject) *BundleCategoryCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddKnowledgeObjectIDs(ids...)
}

// AddBundleIDs adds the "bundles" edge to the Bundle entity by IDs.
func (_c *BundleCategoryCreate) AddBundleIDs(ids ...uuid.UUID) *BundleCategoryCreate {
	_c.mutation.AddBundleIDs(ids...)
	return _c
}

// AddBundles adds the "bundles" edges to the Bundle entity.
func (_c *BundleCategoryCreate) AddBundles(v ...*Bundle) *BundleCategoryCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBundleIDs(ids...)
}

// Mutation returns the BundleCategoryMutation object of the builder.
func (_c *BundleCategoryCreate) Mutation() *BundleCategoryMutation {
	return _c.mutation
}

// Save creates the BundleCategory in the database.
func (_c *BundleCategoryCreate) Save(ctx context.Context) (*BundleCategory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BundleCategoryCreate) SaveX(ctx context.Context) *BundleCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BundleCategoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BundleCategoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BundleCategoryCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := bundlecategory.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := bundlecategory.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.SummaryRequired(); !ok {
		v := bundlecategory.DefaultSummaryRequired
		_c.mutation.SetSummaryRequired(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bundlecategory.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BundleCategoryCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "BundleCategory.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "BundleCategory.update_time"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "BundleCategory.name"`)}
	}
	if _, ok := _c.mutation.SummaryRequired(); !ok {
		return &ValidationError{Name: "summary_required", err: errors.New(`ent: missing required field "BundleCategory.summary_required"`)}
	}
	return nil
}

func (_c *BundleCategoryCreate) sqlSave(ctx context.Context) (*BundleCategory, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BundleCategoryCreate) createSpec() (*BundleCategory, *sqlgraph.CreateSpec) {
	var (
		_node = &BundleCategory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bundlecategory.Table, sqlgraph.NewFieldSpec(bundlecategory.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(bundlecategory.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(bundlecategory.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(bundlecategory.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.SummaryRequired(); ok {
		_spec.SetField(bundlecategory.FieldSummaryRequired, field.TypeBool, value)
		_node.SummaryRequired = value
	}
	if nodes := _c.mutation.KnowledgeObjectsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BundlesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BundleCategoryCreateBulk is the builder for creating many BundleCategory entities in bulk.
type BundleCategoryCreateBulk struct {
	config
	err      error
	builders []*BundleCategoryCreate
}

// Save creates the BundleCategory entities in the database.
func (_c *BundleCategoryCreateBulk) Save(ctx context.Context) ([]*BundleCategory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BundleCategory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BundleCategoryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BundleCategoryCreateBulk) SaveX(ctx context.Context) []*BundleCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BundleCategoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BundleCategoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
