// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
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

// BundleCreate is the builder for creating a Bundle entity.
type BundleCreate struct {
	config
	mutation *BundleMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *BundleCreate) SetCreateTime(v time.Time) *BundleCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *BundleCreate) SetNillableCreateTime(v *time.Time) *BundleCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *BundleCreate) SetUpdateTime(v time.Time) *BundleCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *BundleCreate) SetNillableUpdateTime(v *time.Time) *BundleCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetSummaryJSON sets the "summary_json" field.
func (_c *BundleCreate) SetSummaryJSON(v json.RawMessage) *BundleCreate {
	_c.mutation.SetSummaryJSON(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *BundleCreate) SetTimezone(v string) *BundleCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetBundleCategoryID sets the "bundle_category_id" field.
func (_c *BundleCreate) SetBundleCategoryID(v uuid.UUID) *BundleCreate {
	_c.mutation.SetBundleCategoryID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *BundleCreate) SetID(v uuid.UUID) *BundleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BundleCreate) SetNillableID(v *uuid.UUID) *BundleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBundleCategory sets the "bundle_category" edge to the BundleCategory entity.
func (_c *BundleCreate) SetBundleCategory(v *BundleCategory) *BundleCreate {
	return _c.SetBundleCategoryID(v.ID)
}

// AddKnowledgeObjectIDs adds the "knowledge_objects" edge to the KnowledgeObject entity by IDs.
func (_c *BundleCreate) AddKnowledgeObjectIDs(ids ...uuid.UUID) *BundleCreate {
	_c.mutation.AddKnowledgeObjectIDs(ids...)
	return _c
}

// AddKnowledgeObjects adds the "knowledge_objects" edges to the KnowledgeObject entity.
func (_c *BundleCreate) AddKnowledgeObjects(v ...*KnowledgeObject) *BundleCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddKnowledgeObjectIDs(ids...)
}

// Mutation returns the BundleMutation object of the builder.
func (_c *BundleCreate) Mutation() *BundleMutation {
	return _c.mutation
}

// Save creates the Bundle in the database.
func (_c *BundleCreate) Save(ctx context.Context) (*Bundle, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BundleCreate) SaveX(ctx context.Context) *Bundle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BundleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BundleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BundleCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := bundle.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := bundle.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bundle.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BundleCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "Bundle.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "Bundle.update_time"`)}
	}
	if _, ok := _c.mutation.SummaryJSON(); !ok {
		return &ValidationError{Name: "summary_json", err: errors.New(`ent: missing required field "Bundle.summary_json"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "Bundle.timezone"`)}
	}
	if _, ok := _c.mutation.BundleCategoryID(); !ok {
		return &ValidationError{Name: "bundle_category_id", err: errors.New(`ent: missing required field "Bundle.bundle_category_id"`)}
	}
	if len(_c.mutation.BundleCategoryIDs()) == 0 {
		return &ValidationError{Name: "bundle_category", err: errors.New(`ent: missing required edge "Bundle.bundle_category"`)}
	}
	return nil
}

func (_c *BundleCreate) sqlSave(ctx context.Context) (*Bundle, error) {
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

func (_c *BundleCreate) createSpec() (*Bundle, *sqlgraph.CreateSpec) {
	var (
		_node = &Bundle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bundle.Table, sqlgraph.NewFieldSpec(bundle.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(bundle.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(bundle.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.SummaryJSON(); ok {
		_spec.SetField(bundle.FieldSummaryJSON, field.TypeJSON, value)
		_node.SummaryJSON = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(bundle.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if nodes := _c.mutation.BundleCategoryIDs(); len(nodes) > 0 {
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
		_node.BundleCategoryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.KnowledgeObjectsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BundleCreateBulk is the builder for creating many Bundle entities in bulk.
type BundleCreateBulk struct {
	config
	err      error
	builders []*BundleCreate
}

// Save creates the Bundle entities in the database.
func (_c *BundleCreateBulk) Save(ctx context.Context) ([]*Bundle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bundle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BundleMutation)
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
func (_c *BundleCreateBulk) SaveX(ctx context.Context) []*Bundle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BundleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BundleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
