// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/fachebot/ko-digest-bot/internal/ent/kosummary"
	"github.com/google/uuid"
)

// KoSummaryCreate is the builder for creating a KoSummary entity.
type KoSummaryCreate struct {
	config
	mutation *KoSummaryMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *KoSummaryCreate) SetCreateTime(v time.Time) *KoSummaryCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *KoSummaryCreate) SetNillableCreateTime(v *time.Time) *KoSummaryCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *KoSummaryCreate) SetUpdateTime(v time.Time) *KoSummaryCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *KoSummaryCreate) SetNillableUpdateTime(v *time.Time) *KoSummaryCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetKoID sets the "ko_id" field.
func (_c *KoSummaryCreate) SetKoID(v uuid.UUID) *KoSummaryCreate {
	_c.mutation.SetKoID(v)
	return _c
}

// SetKoType sets the "ko_type" field.
func (_c *KoSummaryCreate) SetKoType(v kosummary.KoType) *KoSummaryCreate {
	_c.mutation.SetKoType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *KoSummaryCreate) SetTitle(v string) *KoSummaryCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSummaryText sets the "summary_text" field.
func (_c *KoSummaryCreate) SetSummaryText(v string) *KoSummaryCreate {
	_c.mutation.SetSummaryText(v)
	return _c
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (_c *KoSummaryCreate) SetNillableSummaryText(v *string) *KoSummaryCreate {
	if v != nil {
		_c.SetSummaryText(*v)
	}
	return _c
}

// SetSummaryOneLiner sets the "summary_one_liner" field.
func (_c *KoSummaryCreate) SetSummaryOneLiner(v string) *KoSummaryCreate {
	_c.mutation.SetSummaryOneLiner(v)
	return _c
}

// SetNillableSummaryOneLiner sets the "summary_one_liner" field if the given value is not nil.
func (_c *KoSummaryCreate) SetNillableSummaryOneLiner(v *string) *KoSummaryCreate {
	if v != nil {
		_c.SetSummaryOneLiner(*v)
	}
	return _c
}

// SetKnowledgeObjectID sets the "knowledge_object" edge to the KnowledgeObject entity by ID.
func (_c *KoSummaryCreate) SetKnowledgeObjectID(id uuid.UUID) *KoSummaryCreate {
	_c.mutation.SetKnowledgeObjectID(id)
	return _c
}

// SetKnowledgeObject sets the "knowledge_object" edge to the KnowledgeObject entity.
func (_c *KoSummaryCreate) SetKnowledgeObject(v *KnowledgeObject) *KoSummaryCreate {
	return _c.SetKnowledgeObjectID(v.ID)
}

// Mutation returns the KoSummaryMutation object of the builder.
func (_c *KoSummaryCreate) Mutation() *KoSummaryMutation {
	return _c.mutation
}

// Save creates the KoSummary in the database.
func (_c *KoSummaryCreate) Save(ctx context.Context) (*KoSummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KoSummaryCreate) SaveX(ctx context.Context) *KoSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KoSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KoSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KoSummaryCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := kosummary.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := kosummary.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KoSummaryCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "KoSummary.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "KoSummary.update_time"`)}
	}
	if _, ok := _c.mutation.KoID(); !ok {
		return &ValidationError{Name: "ko_id", err: errors.New(`ent: missing required field "KoSummary.ko_id"`)}
	}
	if _, ok := _c.mutation.KoType(); !ok {
		return &ValidationError{Name: "ko_type", err: errors.New(`ent: missing required field "KoSummary.ko_type"`)}
	}
	if v, ok := _c.mutation.KoType(); ok {
		if err := kosummary.KoTypeValidator(v); err != nil {
			return &ValidationError{Name: "ko_type", err: fmt.Errorf(`ent: validator failed for field "KoSummary.ko_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "KoSummary.title"`)}
	}
	if len(_c.mutation.KnowledgeObjectIDs()) == 0 {
		return &ValidationError{Name: "knowledge_object", err: errors.New(`ent: missing required edge "KoSummary.knowledge_object"`)}
	}
	return nil
}

func (_c *KoSummaryCreate) sqlSave(ctx context.Context) (*KoSummary, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KoSummaryCreate) createSpec() (*KoSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &KoSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(kosummary.Table, sqlgraph.NewFieldSpec(kosummary.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(kosummary.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(kosummary.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.KoType(); ok {
		_spec.SetField(kosummary.FieldKoType, field.TypeEnum, value)
		_node.KoType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(kosummary.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.SummaryText(); ok {
		_spec.SetField(kosummary.FieldSummaryText, field.TypeString, value)
		_node.SummaryText = value
	}
	if value, ok := _c.mutation.SummaryOneLiner(); ok {
		_spec.SetField(kosummary.FieldSummaryOneLiner, field.TypeString, value)
		_node.SummaryOneLiner = value
	}
	if nodes := _c.mutation.KnowledgeObjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   kosummary.KnowledgeObjectTable,
			Columns: []string{kosummary.KnowledgeObjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgeobject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.KoID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// KoSummaryCreateBulk is the builder for creating many KoSummary entities in bulk.
type KoSummaryCreateBulk struct {
	config
	err      error
	builders []*KoSummaryCreate
}

// Save creates the KoSummary entities in the database.
func (_c *KoSummaryCreateBulk) Save(ctx context.Context) ([]*KoSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KoSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KoSummaryMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *KoSummaryCreateBulk) SaveX(ctx context.Context) []*KoSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KoSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KoSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
