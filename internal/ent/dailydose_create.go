// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/ko-digest-bot/internal/ent/dailydose"
	"github.com/google/uuid"
)

// DailyDoseCreate is the builder for creating a DailyDose entity.
type DailyDoseCreate struct {
	config
	mutation *DailyDoseMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *DailyDoseCreate) SetCreateTime(v time.Time) *DailyDoseCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *DailyDoseCreate) SetNillableCreateTime(v *time.Time) *DailyDoseCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *DailyDoseCreate) SetUpdateTime(v time.Time) *DailyDoseCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *DailyDoseCreate) SetNillableUpdateTime(v *time.Time) *DailyDoseCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetQuote sets the "quote" field.
func (_c *DailyDoseCreate) SetQuote(v string) *DailyDoseCreate {
	_c.mutation.SetQuote(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *DailyDoseCreate) SetSource(v string) *DailyDoseCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetDdType sets the "dd_type" field.
func (_c *DailyDoseCreate) SetDdType(v string) *DailyDoseCreate {
	_c.mutation.SetDdType(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DailyDoseCreate) SetID(v uuid.UUID) *DailyDoseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DailyDoseCreate) SetNillableID(v *uuid.UUID) *DailyDoseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DailyDoseMutation object of the builder.
func (_c *DailyDoseCreate) Mutation() *DailyDoseMutation {
	return _c.mutation
}

// Save creates the DailyDose in the database.
func (_c *DailyDoseCreate) Save(ctx context.Context) (*DailyDose, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DailyDoseCreate) SaveX(ctx context.Context) *DailyDose {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyDoseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyDoseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DailyDoseCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := dailydose.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := dailydose.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := dailydose.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DailyDoseCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "DailyDose.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "DailyDose.update_time"`)}
	}
	if _, ok := _c.mutation.Quote(); !ok {
		return &ValidationError{Name: "quote", err: errors.New(`ent: missing required field "DailyDose.quote"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "DailyDose.source"`)}
	}
	if _, ok := _c.mutation.DdType(); !ok {
		return &ValidationError{Name: "dd_type", err: errors.New(`ent: missing required field "DailyDose.dd_type"`)}
	}
	return nil
}

func (_c *DailyDoseCreate) sqlSave(ctx context.Context) (*DailyDose, error) {
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

func (_c *DailyDoseCreate) createSpec() (*DailyDose, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyDose{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dailydose.Table, sqlgraph.NewFieldSpec(dailydose.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(dailydose.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(dailydose.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.Quote(); ok {
		_spec.SetField(dailydose.FieldQuote, field.TypeString, value)
		_node.Quote = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(dailydose.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.DdType(); ok {
		_spec.SetField(dailydose.FieldDdType, field.TypeString, value)
		_node.DdType = value
	}
	return _node, _spec
}

// DailyDoseCreateBulk is the builder for creating many DailyDose entities in bulk.
type DailyDoseCreateBulk struct {
	config
	err      error
	builders []*DailyDoseCreate
}

// Save creates the DailyDose entities in the database.
func (_c *DailyDoseCreateBulk) Save(ctx context.Context) ([]*DailyDose, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DailyDose, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyDoseMutation)
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
func (_c *DailyDoseCreateBulk) SaveX(ctx context.Context) []*DailyDose {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyDoseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyDoseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
