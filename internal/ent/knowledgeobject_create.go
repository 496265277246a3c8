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
	"github.com/fachebot/ko-digest-bot/internal/ent/kosummary"
	"github.com/google/uuid"
)

// KnowledgeObjectCreate is the builder for creating a KnowledgeObject entity.
type KnowledgeObjectCreate struct {
	config
	mutation *KnowledgeObjectMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *KnowledgeObjectCreate) SetCreateTime(v time.Time) *KnowledgeObjectCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *KnowledgeObjectCreate) SetNillableCreateTime(v *time.Time) *KnowledgeObjectCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *KnowledgeObjectCreate) SetUpdateTime(v time.Time) *KnowledgeObjectCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *KnowledgeObjectCreate) SetNillableUpdateTime(v *time.Time) *KnowledgeObjectCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetKoType sets the "ko_type" field.
func (_c *KnowledgeObjectCreate) SetKoType(v knowledgeobject.KoType) *KnowledgeObjectCreate {
	_c.mutation.SetKoType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *KnowledgeObjectCreate) SetTitle(v string) *KnowledgeObjectCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDeleted sets the "deleted" field.
func (_c *KnowledgeObjectCreate) SetDeleted(v bool) *KnowledgeObjectCreate {
	_c.mutation.SetDeleted(v)
	return _c
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_c *KnowledgeObjectCreate) SetNillableDeleted(v *bool) *KnowledgeObjectCreate {
	if v != nil {
		_c.SetDeleted(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnowledgeObjectCreate) SetID(v uuid.UUID) *KnowledgeObjectCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *KnowledgeObjectCreate) SetNillableID(v *uuid.UUID) *KnowledgeObjectCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetParentID sets the "parent" edge to the KnowledgeObject entity by ID.
func (_c *KnowledgeObjectCreate) SetParentID(id uuid.UUID) *KnowledgeObjectCreate {
	_c.mutation.SetParentID(id)
	return _c
}

// SetNillableParentID sets the "parent" edge to the KnowledgeObject entity by ID if the given value is not nil.
func (_c *KnowledgeObjectCreate) SetNillableParentID(id *uuid.UUID) *KnowledgeObjectCreate {
	if id != nil {
		_c = _c.SetParentID(*id)
	}
	return _c
}

// SetParent sets the "parent" edge to the KnowledgeObject entity.
func (_c *KnowledgeObjectCreate) SetParent(v *KnowledgeObject) *KnowledgeObjectCreate {
	return _c.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the KnowledgeObject entity by IDs.
func (_c *KnowledgeObjectCreate) AddChildIDs(ids ...uuid.UUID) *KnowledgeObjectCreate {
	_c.mutation.AddChildIDs(ids...)
	return _c
}

// AddChildren adds the "children" edges to the KnowledgeObject entity.
func (_c *KnowledgeObjectCreate) AddChildren(v ...*KnowledgeObject) *KnowledgeObjectCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChildIDs(ids...)
}

// AddBundleCategoryIDs adds the "bundle_categories" edge to the BundleCategory entity by IDs.
func (_c *KnowledgeObjectCreate) AddBundleCategoryIDs(ids ...uuid.UUID) *KnowledgeObjectCreate {
	_c.mutation.AddBundleCategoryIDs(ids...)
	return _c
}

// AddBundleCategories adds the "bundle_categories" edges to the BundleCategory entity.
func (_c *KnowledgeObjectCreate) AddBundleCategories(v ...*BundleCategory) *KnowledgeObjectCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBundleCategoryIDs(ids...)
}

// SetSummaryID sets the "summary" edge to the KoSummary entity by ID.
func (_c *KnowledgeObjectCreate) SetSummaryID(id int) *KnowledgeObjectCreate {
	_c.mutation.SetSummaryID(id)
	return _c
}

// SetNillableSummaryID sets the "summary" edge to the KoSummary entity by ID if the given value is not nil.
func (_c *KnowledgeObjectCreate) SetNillableSummaryID(id *int) *KnowledgeObjectCreate {
	if id != nil {
		_c = _c.SetSummaryID(*id)
	}
	return _c
}

// SetSummary sets the "summary" edge to the KoSummary entity.
func (_c *KnowledgeObjectCreate) SetSummary(v *KoSummary) *KnowledgeObjectCreate {
	return _c.SetSummaryID(v.ID)
}

// AddBundleIDs adds the "bundles" edge to the Bundle entity by IDs.
func (_c *KnowledgeObjectCreate) AddBundleIDs(ids ...uuid.UUID) *KnowledgeObjectCreate {
	_c.mutation.AddBundleIDs(ids...)
	return _c
}

// AddBundles adds the "bundles" edges to the Bundle entity.
func (_c *KnowledgeObjectCreate) AddBundles(v ...*Bundle) *KnowledgeObjectCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBundleIDs(ids...)
}

// Mutation returns the KnowledgeObjectMutation object of the builder.
func (_c *KnowledgeObjectCreate) Mutation() *KnowledgeObjectMutation {
	return _c.mutation
}

// Save creates the KnowledgeObject in the database.
func (_c *KnowledgeObjectCreate) Save(ctx context.Context) (*KnowledgeObject, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeObjectCreate) SaveX(ctx context.Context) *KnowledgeObject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeObjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeObjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeObjectCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := knowledgeobject.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := knowledgeobject.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		v := knowledgeobject.DefaultDeleted
		_c.mutation.SetDeleted(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := knowledgeobject.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeObjectCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "KnowledgeObject.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "KnowledgeObject.update_time"`)}
	}
	if _, ok := _c.mutation.KoType(); !ok {
		return &ValidationError{Name: "ko_type", err: errors.New(`ent: missing required field "KnowledgeObject.ko_type"`)}
	}
	if v, ok := _c.mutation.KoType(); ok {
		if err := knowledgeobject.KoTypeValidator(v); err != nil {
			return &ValidationError{Name: "ko_type", err: fmt.Errorf(`ent: validator failed for field "KnowledgeObject.ko_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "KnowledgeObject.title"`)}
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		return &ValidationError{Name: "deleted", err: errors.New(`ent: missing required field "KnowledgeObject.deleted"`)}
	}
	return nil
}

func (_c *KnowledgeObjectCreate) sqlSave(ctx context.Context) (*KnowledgeObject, error) {
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

func (_c *KnowledgeObjectCreate) createSpec() (*KnowledgeObject, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeObject{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgeobject.Table, sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(knowledgeobject.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(knowledgeobject.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.KoType(); ok {
		_spec.SetField(knowledgeobject.FieldKoType, field.TypeEnum, value)
		_node.KoType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(knowledgeobject.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Deleted(); ok {
		_spec.SetField(knowledgeobject.FieldDeleted, field.TypeBool, value)
		_node.Deleted = value
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgeobject.ParentTable,
			Columns: []string{knowledgeobject.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.knowledge_object_children = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowledgeobject.ChildrenTable,
			Columns: []string{knowledgeobject.ChildrenColumn},
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
	if nodes := _c.mutation.BundleCategoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   knowledgeobject.BundleCategoriesTable,
			Columns: knowledgeobject.BundleCategoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bundlecategory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   knowledgeobject.SummaryTable,
			Columns: []string{knowledgeobject.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(kosummary.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BundlesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   knowledgeobject.BundlesTable,
			Columns: knowledgeobject.BundlesPrimaryKey,
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

// KnowledgeObjectCreateBulk is the builder for creating many KnowledgeObject entities in bulk.
type KnowledgeObjectCreateBulk struct {
	config
	err      error
	builders []*KnowledgeObjectCreate
}

// Save creates the KnowledgeObject entities in the database.
func (_c *KnowledgeObjectCreateBulk) Save(ctx context.Context) ([]*KnowledgeObject, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeObject, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeObjectMutation)
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
func (_c *KnowledgeObjectCreateBulk) SaveX(ctx context.Context) []*KnowledgeObject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeObjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeObjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
